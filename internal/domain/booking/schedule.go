package booking

import "time"

// Slot is a fixed-width, client-facing candidate start time. EndTime is the
// display width (one interval), not the end of the service itself: the
// service-occupied end is only used for the availability flag.
type Slot struct {
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}

// SlotParams carries everything ComputeSlots needs. Windows must be ordered
// by start time; Booked holds the occupied ranges of non-cancelled bookings
// on the same calendar day.
type SlotParams struct {
	Date time.Time // midnight of the requested day
	Now  time.Time

	DurationMin int
	IntervalMin int

	MinLeadTimeHours int
	MaxAdvanceDays   int

	Windows []Range
	Booked  []Range
}

// WithinHorizon reports whether the requested day is no further out than the
// advance-booking horizon.
func WithinHorizon(date, now time.Time, maxAdvanceDays int) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	maxDate := today.AddDate(0, 0, maxAdvanceDays)
	return !date.After(maxDate)
}

// ComputeSlots generates the ordered candidate slots for one day. It is a
// pure function: all reads happen before the call, so the result is advisory
// and a slot shown available here can still lose the race at booking time.
func ComputeSlots(p SlotParams) []Slot {
	if p.DurationMin <= 0 || p.IntervalMin <= 0 {
		return nil
	}
	if !WithinHorizon(p.Date, p.Now, p.MaxAdvanceDays) {
		return nil
	}

	minStart := p.Now.Add(time.Duration(p.MinLeadTimeHours) * time.Hour)

	var slots []Slot
	for _, w := range p.Windows {
		for s := w.Start; s < w.End; s += p.IntervalMin {
			serviceEnd := s + p.DurationMin

			fits := serviceEnd <= w.End
			taken := OverlapsAny(s, serviceEnd, p.Booked)
			inFuture := AtClock(p.Date, s).After(minStart)

			slots = append(slots, Slot{
				StartTime:   FormatClock(s),
				EndTime:     FormatClock(s + p.IntervalMin),
				IsAvailable: fits && !taken && inFuture,
			})
		}
	}
	return slots
}
