package booking

import (
	"context"

	"github.com/styleon-app/stylist-scheduler/internal/audit"
	domain "github.com/styleon-app/stylist-scheduler/internal/domain/booking"
	"github.com/styleon-app/stylist-scheduler/internal/faults"
	"github.com/styleon-app/stylist-scheduler/internal/models"
	"github.com/styleon-app/stylist-scheduler/internal/notify"
)

type UpdateBookingStatus struct {
	repo   domain.Repository
	tz     string
	clock  Clock
	audit  *audit.Dispatcher
	notify *notify.Dispatcher
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	tz string,
	auditDisp *audit.Dispatcher,
	notifyDisp *notify.Dispatcher,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:   repo,
		tz:     tz,
		clock:  realClock{tz: tz},
		audit:  auditDisp,
		notify: notifyDisp,
	}
}

// Execute advances or cancels a reservation. Ownership is resolved first
// (clients act on their own bookings, stylists on bookings against their
// profile), then the role-scoped transition table decides.
func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	actorID uint,
	role domain.Role,
	bookingID uint,
	newStatus domain.Status,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	switch role {
	case domain.RoleClient:
		if b.ClientID != actorID {
			return nil, faults.Authorization("not_your_booking", "This reservation belongs to another client.")
		}
	case domain.RoleStylist:
		profile, err := uc.repo.GetStylistProfileByUser(ctx, actorID)
		if err != nil {
			return nil, faults.Authorization("not_your_booking", "This reservation belongs to another stylist.")
		}
		if b.StylistID != profile.ID {
			return nil, faults.Authorization("not_your_booking", "This reservation belongs to another stylist.")
		}
	default:
		return nil, faults.Authorization("role_not_allowed", "This role may not change reservation status.")
	}

	current, err := domain.ParseStatus(b.Status)
	if err != nil {
		return nil, err
	}

	if err := domain.CanTransition(role, current, newStatus); err != nil {
		return nil, err
	}

	domain.ApplyTransition(b, newStatus, uc.clock.Now())

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "booking_" + string(newStatus),
		Entity:   "booking",
		EntityID: &b.ID,
	})

	eventType := notify.EventBookingStatus
	if newStatus == domain.StatusCancelled {
		eventType = notify.EventBookingCancelled
	}
	uc.notify.Dispatch(notify.Event{
		Type:      eventType,
		BookingID: b.ID,
		Reference: b.Reference,
		ClientID:  b.ClientID,
		StylistID: b.StylistID,
		Status:    b.Status,
	})

	return b, nil
}
