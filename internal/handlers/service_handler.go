package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/styleon-app/stylist-scheduler/internal/httperr"
	"github.com/styleon-app/stylist-scheduler/internal/models"
)

// ServiceHandler lets a stylist manage their own service menu. Category
// administration is not exposed; categories are seeded rows.
type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

type ServiceRequest struct {
	CategoryID  uint   `json:"category_id" binding:"required"`
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=255"`
	DurationMin int    `json:"duration_min" binding:"required,min=5,max=480"`
	PriceCents  int64  `json:"price_cents" binding:"required,min=0"`
}

type ServiceUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	DurationMin *int    `json:"duration_min"`
	PriceCents  *int64  `json:"price_cents"`
	Active      *bool   `json:"active"`
}

func (h *ServiceHandler) profileID(c *gin.Context) (uint, bool) {
	var profile models.StylistProfile
	if err := h.db.
		Where("user_id = ?", currentUserID(c)).
		First(&profile).Error; err != nil {
		httperr.Forbidden(c, "stylist_profile_required", "No stylist profile for this account.")
		return 0, false
	}
	return profile.ID, true
}

func (h *ServiceHandler) List(c *gin.Context) {
	stylistID, ok := h.profileID(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.
		Preload("Category").
		Where("stylist_id = ?", stylistID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	stylistID, ok := h.profileID(c)
	if !ok {
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service payload.")
		return
	}

	var category models.Category
	if err := h.db.First(&category, req.CategoryID).Error; err != nil {
		httperr.BadRequest(c, "category_not_found", "Unknown category.")
		return
	}

	service := models.Service{
		StylistID:   stylistID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		PriceCents:  req.PriceCents,
		Active:      true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create service.")
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	stylistID, ok := h.profileID(c)
	if !ok {
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_service_id", "Invalid service id.")
		return
	}

	var service models.Service
	if err := h.db.
		Where("id = ? AND stylist_id = ?", id, stylistID).
		First(&service).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	var req ServiceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service payload.")
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.DurationMin != nil {
		service.DurationMin = *req.DurationMin
	}
	if req.PriceCents != nil {
		service.PriceCents = *req.PriceCents
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update service.")
		return
	}

	c.JSON(http.StatusOK, service)
}
