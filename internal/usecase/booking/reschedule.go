package booking

import (
	"context"

	"github.com/styleon-app/stylist-scheduler/internal/audit"
	"github.com/styleon-app/stylist-scheduler/internal/config"
	domain "github.com/styleon-app/stylist-scheduler/internal/domain/booking"
	"github.com/styleon-app/stylist-scheduler/internal/faults"
	"github.com/styleon-app/stylist-scheduler/internal/models"
	"github.com/styleon-app/stylist-scheduler/internal/notify"
)

type RescheduleBooking struct {
	repo   domain.Repository
	policy config.SchedulePolicy
	tz     string
	clock  Clock
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
}

func NewRescheduleBooking(
	repo domain.Repository,
	policy config.SchedulePolicy,
	tz string,
	auditDisp *audit.Dispatcher,
	notifyDisp *notify.Dispatcher,
) *RescheduleBooking {
	return &RescheduleBooking{
		repo:   repo,
		policy: policy,
		tz:     tz,
		clock:  realClock{tz: tz},
		audit:  auditDisp,
		notify: notifyDisp,
	}
}

// Execute moves a PENDING reservation to a new date/time in place. The
// service duration travels with the booking (its own start/end), so the new
// end time comes from there, not from the service row. The conflict re-check
// excludes the booking's own current range: it is being moved, not copied.
func (uc *RescheduleBooking) Execute(
	ctx context.Context,
	clientID uint,
	role domain.Role,
	bookingID uint,
	newDate string,
	newStartTime string,
) (*models.Booking, error) {

	if role != domain.RoleClient {
		return nil, faults.Authorization("client_role_required", "Only clients can reschedule reservations.")
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.ClientID != clientID {
		return nil, faults.Authorization("not_your_booking", "This reservation belongs to another client.")
	}
	if b.Status != string(domain.StatusPending) {
		return nil, faults.InvalidTransition(
			"not_pending",
			"Only a pending reservation can be rescheduled.",
		)
	}

	curStart, err := domain.ParseClock(b.StartTime)
	if err != nil {
		return nil, err
	}
	curEnd, err := domain.ParseClock(b.EndTime)
	if err != nil {
		return nil, err
	}
	durationMin := curEnd - curStart

	date, err := parseDate(uc.tz, newDate)
	if err != nil {
		return nil, err
	}

	startMin, err := domain.ParseClock(newStartTime)
	if err != nil {
		return nil, faults.Validation("invalid_start_time", "Start time must be a 24h HH:mm value.")
	}

	endMin := startMin + durationMin
	if endMin > 24*60 {
		return nil, faults.Validation("invalid_start_time", "Service would run past midnight.")
	}

	if err := checkLeadAndHorizon(date, startMin, uc.clock.Now(), uc.policy); err != nil {
		return nil, err
	}

	err = uc.repo.InSerializableTx(ctx, func(tx domain.Repository) error {
		conflict, err := tx.HasBookingConflict(
			ctx,
			b.StylistID,
			date,
			domain.FormatClock(startMin),
			domain.FormatClock(endMin),
			b.ID,
		)
		if err != nil {
			return err
		}
		if conflict {
			return faults.Conflict("slot_taken", "This slot was just booked.")
		}

		b.Date = date
		b.StartTime = domain.FormatClock(startMin)
		b.EndTime = domain.FormatClock(endMin)

		return tx.UpdateBooking(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &clientID,
		Action:   "booking_rescheduled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	uc.notify.Dispatch(notify.Event{
		Type:      notify.EventBookingRescheduled,
		BookingID: b.ID,
		Reference: b.Reference,
		ClientID:  b.ClientID,
		StylistID: b.StylistID,
		Status:    b.Status,
	})

	return b, nil
}
