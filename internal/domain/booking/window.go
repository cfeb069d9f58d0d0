package booking

import (
	"github.com/styleon-app/stylist-scheduler/internal/faults"
	"github.com/styleon-app/stylist-scheduler/internal/models"
)

// ValidateWindow checks format and ordering of an availability window and
// returns its bounds in minutes past midnight.
func ValidateWindow(weekday int, start, end string) (Range, error) {
	if weekday < 0 || weekday > 6 {
		return Range{}, faults.Validation("invalid_weekday", "Weekday must be between 0 (Sunday) and 6 (Saturday).")
	}
	s, err := ParseClock(start)
	if err != nil {
		return Range{}, faults.Validation("invalid_start_time", "Start time must be a 24h HH:mm value.")
	}
	e, err := ParseClock(end)
	if err != nil {
		return Range{}, faults.Validation("invalid_end_time", "End time must be a 24h HH:mm value.")
	}
	if e <= s {
		return Range{}, faults.Validation("window_not_ordered", "End time must be after start time.")
	}
	return Range{Start: s, End: e}, nil
}

// WindowConflicts reports whether the candidate range overlaps any existing
// window of the same stylist and weekday. Active and inactive windows both
// count; excludeID skips the record being edited.
func WindowConflicts(candidate Range, existing []models.Availability, excludeID uint) bool {
	for _, w := range existing {
		if w.ID == excludeID {
			continue
		}
		ws, err := ParseClock(w.StartTime)
		if err != nil {
			continue
		}
		we, err := ParseClock(w.EndTime)
		if err != nil {
			continue
		}
		if Overlaps(candidate.Start, candidate.End, ws, we) {
			return true
		}
	}
	return false
}
