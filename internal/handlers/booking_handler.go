package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/styleon-app/stylist-scheduler/internal/domain/booking"
	"github.com/styleon-app/stylist-scheduler/internal/httperr"
	"github.com/styleon-app/stylist-scheduler/internal/httpresp"
	"github.com/styleon-app/stylist-scheduler/internal/models"
	"github.com/styleon-app/stylist-scheduler/internal/timezone"
	ucBooking "github.com/styleon-app/stylist-scheduler/internal/usecase/booking"
)

type BookingHandler struct {
	db *gorm.DB
	tz string

	create       *ucBooking.CreateBooking
	updateStatus *ucBooking.UpdateBookingStatus
	reschedule   *ucBooking.RescheduleBooking
	listClient   *ucBooking.ListClientBookings
	agendaDate   *ucBooking.ListAgendaByDate
	agendaMonth  *ucBooking.ListAgendaByMonth
}

func NewBookingHandler(
	db *gorm.DB,
	tz string,
	create *ucBooking.CreateBooking,
	updateStatus *ucBooking.UpdateBookingStatus,
	reschedule *ucBooking.RescheduleBooking,
	listClient *ucBooking.ListClientBookings,
	agendaDate *ucBooking.ListAgendaByDate,
	agendaMonth *ucBooking.ListAgendaByMonth,
) *BookingHandler {
	return &BookingHandler{
		db:           db,
		tz:           tz,
		create:       create,
		updateStatus: updateStatus,
		reschedule:   reschedule,
		listClient:   listClient,
		agendaDate:   agendaDate,
		agendaMonth:  agendaMonth,
	}
}

// --------- Requests ---------

type CreateBookingRequest struct {
	StylistID uint   `json:"stylist_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime string `json:"start_time" binding:"required"` // HH:mm
	Address   string `json:"address" binding:"required"`
	City      string `json:"city" binding:"required"`
	Notes     string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RescheduleRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
}

// --------- Handlers ---------

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid reservation payload.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		ClientID:  currentUserID(c),
		Role:      currentRole(c),
		StylistID: req.StylistID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		StartTime: req.StartTime,
		Address:   req.Address,
		City:      req.City,
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid reservation id.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid status payload.")
		return
	}

	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		httperr.From(c, err)
		return
	}

	b, err := h.updateStatus.Execute(
		c.Request.Context(),
		currentUserID(c),
		currentRole(c),
		id,
		status,
	)
	if err != nil {
		httperr.From(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Reschedule(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid reservation id.")
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid reschedule payload.")
		return
	}

	b, err := h.reschedule.Execute(
		c.Request.Context(),
		currentUserID(c),
		currentRole(c),
		id,
		req.Date,
		req.StartTime,
	)
	if err != nil {
		httperr.From(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) MyBookings(c *gin.Context) {
	bookings, err := h.listClient.Execute(c.Request.Context(), currentUserID(c))
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) AgendaByDate(c *gin.Context) {
	stylistID, ok := h.profileID(c)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	date, err := time.ParseInLocation("2006-01-02", dateStr, timezone.Location(h.tz))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be a YYYY-MM-DD value.")
		return
	}

	items, err := h.agendaDate.Execute(c.Request.Context(), stylistID, date)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, items)
}

func (h *BookingHandler) AgendaByMonth(c *gin.Context) {
	stylistID, ok := h.profileID(c)
	if !ok {
		return
	}

	monthStr := c.Query("month")
	month, err := time.ParseInLocation("2006-01", monthStr, timezone.Location(h.tz))
	if err != nil {
		httperr.BadRequest(c, "invalid_month", "Month must be a YYYY-MM value.")
		return
	}

	items, err := h.agendaMonth.Execute(
		c.Request.Context(),
		stylistID,
		month.Year(),
		month.Month(),
	)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, items)
}

func (h *BookingHandler) profileID(c *gin.Context) (uint, bool) {
	var profile models.StylistProfile
	if err := h.db.
		Where("user_id = ?", currentUserID(c)).
		First(&profile).Error; err != nil {
		httperr.Forbidden(c, "stylist_profile_required", "No stylist profile for this account.")
		return 0, false
	}
	return profile.ID, true
}
