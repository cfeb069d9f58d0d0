package availability

import (
	"context"

	"github.com/styleon-app/stylist-scheduler/internal/audit"
	domain "github.com/styleon-app/stylist-scheduler/internal/domain/booking"
	"github.com/styleon-app/stylist-scheduler/internal/faults"
	"github.com/styleon-app/stylist-scheduler/internal/models"
)

type UpdateWindowInput struct {
	ID        uint
	StylistID uint // caller's profile; ownership is checked against it
	Weekday   int
	StartTime string
	EndTime   string
}

type UpdateWindow struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateWindow(repo domain.Repository, auditDisp *audit.Dispatcher) *UpdateWindow {
	return &UpdateWindow{repo: repo, audit: auditDisp}
}

func (uc *UpdateWindow) Execute(
	ctx context.Context,
	in UpdateWindowInput,
) (*models.Availability, error) {

	candidate, err := domain.ValidateWindow(in.Weekday, in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	var updated *models.Availability

	err = uc.repo.InSerializableTx(ctx, func(tx domain.Repository) error {
		w, err := tx.GetAvailability(ctx, in.ID)
		if err != nil {
			return err
		}
		if w.StylistID != in.StylistID {
			return faults.Authorization("not_your_window", "This availability window belongs to another stylist.")
		}

		existing, err := tx.ListWindowsForWeekday(ctx, in.StylistID, in.Weekday, false)
		if err != nil {
			return err
		}
		if domain.WindowConflicts(candidate, existing, w.ID) {
			return faults.Conflict("window_overlap", "Overlaps an existing slot on the same day.")
		}

		w.Weekday = in.Weekday
		w.StartTime = domain.FormatClock(candidate.Start)
		w.EndTime = domain.FormatClock(candidate.End)

		if err := tx.UpdateAvailability(ctx, w); err != nil {
			return err
		}

		updated = w
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.StylistID,
		Action:   "availability_updated",
		Entity:   "availability",
		EntityID: &updated.ID,
	})

	return updated, nil
}
