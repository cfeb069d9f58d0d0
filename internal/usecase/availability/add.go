package availability

import (
	"context"

	"github.com/styleon-app/stylist-scheduler/internal/audit"
	domain "github.com/styleon-app/stylist-scheduler/internal/domain/booking"
	"github.com/styleon-app/stylist-scheduler/internal/faults"
	"github.com/styleon-app/stylist-scheduler/internal/models"
)

type AddWindowInput struct {
	StylistID uint
	Weekday   int
	StartTime string
	EndTime   string
}

type AddWindow struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAddWindow(repo domain.Repository, auditDisp *audit.Dispatcher) *AddWindow {
	return &AddWindow{repo: repo, audit: auditDisp}
}

// Execute validates the window and inserts it. The overlap check and the
// insert share a serializable transaction so two concurrent edits to the
// same day cannot both slip past the check.
func (uc *AddWindow) Execute(
	ctx context.Context,
	in AddWindowInput,
) (*models.Availability, error) {

	candidate, err := domain.ValidateWindow(in.Weekday, in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	w := &models.Availability{
		StylistID: in.StylistID,
		Weekday:   in.Weekday,
		StartTime: domain.FormatClock(candidate.Start),
		EndTime:   domain.FormatClock(candidate.End),
		Active:    true,
	}

	err = uc.repo.InSerializableTx(ctx, func(tx domain.Repository) error {
		existing, err := tx.ListWindowsForWeekday(ctx, in.StylistID, in.Weekday, false)
		if err != nil {
			return err
		}
		if domain.WindowConflicts(candidate, existing, 0) {
			return faults.Conflict("window_overlap", "Overlaps an existing slot on the same day.")
		}

		return tx.CreateAvailability(ctx, w)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.StylistID,
		Action:   "availability_added",
		Entity:   "availability",
		EntityID: &w.ID,
	})

	return w, nil
}
