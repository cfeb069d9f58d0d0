package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/styleon-app/stylist-scheduler/internal/httperr"
	"github.com/styleon-app/stylist-scheduler/internal/models"
	ucBooking "github.com/styleon-app/stylist-scheduler/internal/usecase/booking"
)

// PublicHandler serves the client-facing browse surface: stylist profiles,
// their service menus, and the bookable slot grid.
type PublicHandler struct {
	db       *gorm.DB
	getSlots *ucBooking.GetSlots
}

func NewPublicHandler(db *gorm.DB, getSlots *ucBooking.GetSlots) *PublicHandler {
	return &PublicHandler{db: db, getSlots: getSlots}
}

func (h *PublicHandler) GetStylist(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_stylist_id", "Invalid stylist id.")
		return
	}

	var profile models.StylistProfile
	if err := h.db.First(&profile, id).Error; err != nil {
		httperr.NotFound(c, "stylist_not_found", "Stylist not found.")
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *PublicHandler) ListStylistServices(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_stylist_id", "Invalid stylist id.")
		return
	}

	var services []models.Service
	if err := h.db.
		Preload("Category").
		Where("stylist_id = ? AND active = true", id).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (h *PublicHandler) ListSlots(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_stylist_id", "Invalid stylist id.")
		return
	}

	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")
	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Date and service are required.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service id.")
		return
	}

	slots, err := h.getSlots.Execute(
		c.Request.Context(),
		id,
		uint(serviceID),
		dateStr,
	)
	if err != nil {
		httperr.From(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}
