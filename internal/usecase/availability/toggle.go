package availability

import (
	"context"

	"github.com/styleon-app/stylist-scheduler/internal/audit"
	domain "github.com/styleon-app/stylist-scheduler/internal/domain/booking"
	"github.com/styleon-app/stylist-scheduler/internal/faults"
	"github.com/styleon-app/stylist-scheduler/internal/models"
)

type ToggleWindow struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewToggleWindow(repo domain.Repository, auditDisp *audit.Dispatcher) *ToggleWindow {
	return &ToggleWindow{repo: repo, audit: auditDisp}
}

func (uc *ToggleWindow) Execute(
	ctx context.Context,
	stylistID uint,
	windowID uint,
) (*models.Availability, error) {

	w, err := uc.repo.GetAvailability(ctx, windowID)
	if err != nil {
		return nil, err
	}
	if w.StylistID != stylistID {
		return nil, faults.Authorization("not_your_window", "This availability window belongs to another stylist.")
	}

	w.Active = !w.Active
	if err := uc.repo.UpdateAvailability(ctx, w); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &stylistID,
		Action:   "availability_toggled",
		Entity:   "availability",
		EntityID: &w.ID,
	})

	return w, nil
}
