package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/styleon-app/stylist-scheduler/internal/httperr"
	"github.com/styleon-app/stylist-scheduler/internal/models"
)

type StylistHandler struct {
	db *gorm.DB
}

func NewStylistHandler(db *gorm.DB) *StylistHandler {
	return &StylistHandler{db: db}
}

type ProfileUpdateRequest struct {
	DisplayName *string `json:"display_name"`
	Bio         *string `json:"bio"`
	City        *string `json:"city"`
	Active      *bool   `json:"active"`
}

func (h *StylistHandler) UpdateMyProfile(c *gin.Context) {
	var profile models.StylistProfile
	if err := h.db.
		Where("user_id = ?", currentUserID(c)).
		First(&profile).Error; err != nil {
		httperr.Forbidden(c, "stylist_profile_required", "No stylist profile for this account.")
		return
	}

	var req ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid profile payload.")
		return
	}

	if req.DisplayName != nil {
		profile.DisplayName = *req.DisplayName
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.Active != nil {
		profile.Active = *req.Active
	}

	if err := h.db.Save(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Could not update profile.")
		return
	}

	c.JSON(http.StatusOK, profile)
}
