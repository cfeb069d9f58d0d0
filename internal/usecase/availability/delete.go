package availability

import (
	"context"

	"github.com/styleon-app/stylist-scheduler/internal/audit"
	domain "github.com/styleon-app/stylist-scheduler/internal/domain/booking"
	"github.com/styleon-app/stylist-scheduler/internal/faults"
)

type DeleteWindow struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteWindow(repo domain.Repository, auditDisp *audit.Dispatcher) *DeleteWindow {
	return &DeleteWindow{repo: repo, audit: auditDisp}
}

// Execute removes a window. Existing bookings are independent records and
// are not touched.
func (uc *DeleteWindow) Execute(
	ctx context.Context,
	stylistID uint,
	windowID uint,
) error {

	w, err := uc.repo.GetAvailability(ctx, windowID)
	if err != nil {
		return err
	}
	if w.StylistID != stylistID {
		return faults.Authorization("not_your_window", "This availability window belongs to another stylist.")
	}

	if err := uc.repo.DeleteAvailability(ctx, windowID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &stylistID,
		Action:   "availability_deleted",
		Entity:   "availability",
		EntityID: &windowID,
	})

	return nil
}
