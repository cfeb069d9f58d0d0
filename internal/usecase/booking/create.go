package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/styleon-app/stylist-scheduler/internal/audit"
	"github.com/styleon-app/stylist-scheduler/internal/config"
	domain "github.com/styleon-app/stylist-scheduler/internal/domain/booking"
	"github.com/styleon-app/stylist-scheduler/internal/faults"
	"github.com/styleon-app/stylist-scheduler/internal/models"
	"github.com/styleon-app/stylist-scheduler/internal/notify"
)

type CreateBookingInput struct {
	ClientID uint
	Role     domain.Role

	StylistID uint
	ServiceID uint

	Date      string // YYYY-MM-DD
	StartTime string // HH:mm

	Address string
	City    string
	Notes   string
}

type CreateBooking struct {
	repo   domain.Repository
	policy config.SchedulePolicy
	tz     string
	clock  Clock
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	policy config.SchedulePolicy,
	tz string,
	auditDisp *audit.Dispatcher,
	notifyDisp *notify.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		policy: policy,
		tz:     tz,
		clock:  realClock{tz: tz},
		audit:  auditDisp,
		notify: notifyDisp,
	}
}

// Execute creates a PENDING reservation. The slot list a client saw is
// advisory, so the conflict check runs again inside a serializable
// transaction together with the insert; of two racing clients exactly one
// commits and the other gets a conflict.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if in.Role != domain.RoleClient {
		return nil, faults.Authorization("client_role_required", "Only clients can place reservations.")
	}

	if err := requireField(in.Address, "address", 255); err != nil {
		return nil, err
	}
	if err := requireField(in.City, "city", 100); err != nil {
		return nil, err
	}
	if len(in.Notes) > 255 {
		return nil, faults.Validation("invalid_notes", "Field notes is too long.")
	}

	date, err := parseDate(uc.tz, in.Date)
	if err != nil {
		return nil, err
	}

	startMin, err := domain.ParseClock(in.StartTime)
	if err != nil {
		return nil, faults.Validation("invalid_start_time", "Start time must be a 24h HH:mm value.")
	}

	profile, err := uc.repo.GetStylistProfile(ctx, in.StylistID)
	if err != nil {
		return nil, err
	}
	if !profile.Active {
		return nil, faults.Conflict("stylist_inactive", "This stylist is not taking reservations.")
	}

	service, err := uc.repo.GetService(ctx, in.StylistID, in.ServiceID)
	if err != nil {
		if faults.IsNotFound(err) {
			return nil, faults.Validation("invalid_service", "Service does not exist for this stylist.")
		}
		return nil, err
	}

	endMin := startMin + service.DurationMin
	if endMin > 24*60 {
		return nil, faults.Validation("invalid_start_time", "Service would run past midnight.")
	}

	if err := checkLeadAndHorizon(date, startMin, uc.clock.Now(), uc.policy); err != nil {
		return nil, err
	}

	b := &models.Booking{
		Reference:       uuid.NewString(),
		ClientID:        in.ClientID,
		StylistID:       in.StylistID,
		ServiceID:       service.ID,
		Date:            date,
		StartTime:       domain.FormatClock(startMin),
		EndTime:         domain.FormatClock(endMin),
		Status:          string(domain.StatusPending),
		TotalPriceCents: service.PriceCents,
		Address:         in.Address,
		City:            in.City,
		Notes:           in.Notes,
	}

	err = uc.repo.InSerializableTx(ctx, func(tx domain.Repository) error {
		conflict, err := tx.HasBookingConflict(
			ctx,
			in.StylistID,
			date,
			b.StartTime,
			b.EndTime,
			0,
		)
		if err != nil {
			return err
		}
		if conflict {
			return faults.Conflict("slot_taken", "This slot was just booked.")
		}

		return tx.CreateBooking(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ClientID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	uc.notify.Dispatch(notify.Event{
		Type:      notify.EventBookingCreated,
		BookingID: b.ID,
		Reference: b.Reference,
		ClientID:  b.ClientID,
		StylistID: b.StylistID,
		Status:    b.Status,
	})

	return b, nil
}
