package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/styleon-app/stylist-scheduler/internal/httperr"
	"github.com/styleon-app/stylist-scheduler/internal/httpresp"
	"github.com/styleon-app/stylist-scheduler/internal/models"
	ucAvailability "github.com/styleon-app/stylist-scheduler/internal/usecase/availability"
)

type AvailabilityHandler struct {
	db     *gorm.DB
	list   *ucAvailability.ListAvailability
	add    *ucAvailability.AddWindow
	update *ucAvailability.UpdateWindow
	delete *ucAvailability.DeleteWindow
	toggle *ucAvailability.ToggleWindow
}

func NewAvailabilityHandler(
	db *gorm.DB,
	list *ucAvailability.ListAvailability,
	add *ucAvailability.AddWindow,
	update *ucAvailability.UpdateWindow,
	del *ucAvailability.DeleteWindow,
	toggle *ucAvailability.ToggleWindow,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		db:     db,
		list:   list,
		add:    add,
		update: update,
		delete: del,
		toggle: toggle,
	}
}

// --------- Requests ---------

type WindowRequest struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// --------- Helpers ---------

func (h *AvailabilityHandler) profileID(c *gin.Context) (uint, bool) {
	var profile models.StylistProfile
	if err := h.db.
		Where("user_id = ?", currentUserID(c)).
		First(&profile).Error; err != nil {
		httperr.Forbidden(c, "stylist_profile_required", "No stylist profile for this account.")
		return 0, false
	}
	return profile.ID, true
}

// --------- Handlers ---------

func (h *AvailabilityHandler) List(c *gin.Context) {
	stylistID, ok := h.profileID(c)
	if !ok {
		return
	}

	windows, err := h.list.Execute(c.Request.Context(), stylistID)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, windows)
}

func (h *AvailabilityHandler) Add(c *gin.Context) {
	stylistID, ok := h.profileID(c)
	if !ok {
		return
	}

	var req WindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid window payload.")
		return
	}

	w, err := h.add.Execute(c.Request.Context(), ucAvailability.AddWindowInput{
		StylistID: stylistID,
		Weekday:   req.Weekday,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	c.JSON(http.StatusCreated, w)
}

func (h *AvailabilityHandler) Update(c *gin.Context) {
	stylistID, ok := h.profileID(c)
	if !ok {
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_window_id", "Invalid availability id.")
		return
	}

	var req WindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid window payload.")
		return
	}

	w, err := h.update.Execute(c.Request.Context(), ucAvailability.UpdateWindowInput{
		ID:        id,
		StylistID: stylistID,
		Weekday:   req.Weekday,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	c.JSON(http.StatusOK, w)
}

func (h *AvailabilityHandler) Delete(c *gin.Context) {
	stylistID, ok := h.profileID(c)
	if !ok {
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_window_id", "Invalid availability id.")
		return
	}

	if err := h.delete.Execute(c.Request.Context(), stylistID, id); err != nil {
		httperr.From(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *AvailabilityHandler) Toggle(c *gin.Context) {
	stylistID, ok := h.profileID(c)
	if !ok {
		return
	}

	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_window_id", "Invalid availability id.")
		return
	}

	w, err := h.toggle.Execute(c.Request.Context(), stylistID, id)
	if err != nil {
		httperr.From(c, err)
		return
	}

	c.JSON(http.StatusOK, w)
}
