package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/styleon-app/stylist-scheduler/internal/httperr"
	"github.com/styleon-app/stylist-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := currentUserID(c)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Account not found.")
		return
	}

	resp := gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"phone": user.Phone,
		"role":  user.Role,
	}

	if user.Role == "stylist" {
		var profile models.StylistProfile
		if err := h.db.Where("user_id = ?", user.ID).First(&profile).Error; err == nil {
			resp["stylist_profile"] = profile
		}
	}

	c.JSON(http.StatusOK, resp)
}
