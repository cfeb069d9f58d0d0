package booking

import (
	"context"
	"fmt"

	"github.com/styleon-app/stylist-scheduler/internal/config"
	domain "github.com/styleon-app/stylist-scheduler/internal/domain/booking"
)

type GetSlots struct {
	repo   domain.Repository
	policy config.SchedulePolicy
	tz     string
	clock  Clock
}

func NewGetSlots(
	repo domain.Repository,
	policy config.SchedulePolicy,
	tz string,
) *GetSlots {
	return &GetSlots{
		repo:   repo,
		policy: policy,
		tz:     tz,
		clock:  realClock{tz: tz},
	}
}

// Execute computes the candidate slots for one stylist, service and day.
// Pure read side: no writes, safe to call concurrently. The result is
// advisory; availability is not guaranteed until a booking commits.
func (uc *GetSlots) Execute(
	ctx context.Context,
	stylistID uint,
	serviceID uint,
	dateStr string,
) ([]domain.Slot, error) {

	date, err := parseDate(uc.tz, dateStr)
	if err != nil {
		return nil, err
	}

	windows, err := uc.repo.ListWindowsForWeekday(
		ctx,
		stylistID,
		int(date.Weekday()),
		true,
	)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return []domain.Slot{}, nil
	}

	service, err := uc.repo.GetService(ctx, stylistID, serviceID)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.repo.ListBookingsForDay(ctx, stylistID, date)
	if err != nil {
		return nil, err
	}

	// A stored row that fails the clock codec is corrupt data. Dropping it
	// would hide a booked range and show taken slots as available, so the
	// whole read fails instead.
	windowRanges := make([]domain.Range, 0, len(windows))
	for _, w := range windows {
		start, err := domain.ParseClock(w.StartTime)
		if err != nil {
			return nil, fmt.Errorf("availability %d: %w", w.ID, err)
		}
		end, err := domain.ParseClock(w.EndTime)
		if err != nil {
			return nil, fmt.Errorf("availability %d: %w", w.ID, err)
		}
		windowRanges = append(windowRanges, domain.Range{Start: start, End: end})
	}

	booked := make([]domain.Range, 0, len(bookings))
	for _, b := range bookings {
		start, err := domain.ParseClock(b.StartTime)
		if err != nil {
			return nil, fmt.Errorf("booking %d: %w", b.ID, err)
		}
		end, err := domain.ParseClock(b.EndTime)
		if err != nil {
			return nil, fmt.Errorf("booking %d: %w", b.ID, err)
		}
		booked = append(booked, domain.Range{Start: start, End: end})
	}

	slots := domain.ComputeSlots(domain.SlotParams{
		Date:             date,
		Now:              uc.clock.Now(),
		DurationMin:      service.DurationMin,
		IntervalMin:      uc.policy.SlotIntervalMinutes,
		MinLeadTimeHours: uc.policy.MinLeadTimeHours,
		MaxAdvanceDays:   uc.policy.MaxAdvanceDays,
		Windows:          windowRanges,
		Booked:           booked,
	})

	if slots == nil {
		slots = []domain.Slot{}
	}
	return slots, nil
}
