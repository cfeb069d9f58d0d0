package booking

import (
	"fmt"
	"time"
)

// ClockFormat is the wire and storage format for times of day.
const ClockFormat = "15:04"

// EndOfDay is the exclusive upper bound of a day in minutes. It renders as
// "24:00" and is valid only as the end of a range, never as a start.
const EndOfDay = 24 * 60

// ParseClock converts a zero-padded 24h "HH:mm" string to minutes past
// midnight. Only the strict format is accepted; "9:00" is rejected.
// "24:00" parses to EndOfDay so ranges ending at midnight round-trip.
func ParseClock(s string) (int, error) {
	if s == "24:00" {
		return EndOfDay, nil
	}
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	t, err := time.Parse(ClockFormat, s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes past midnight as a "HH:mm" string.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Range is a half-open [Start, End) interval in minutes past midnight.
type Range struct {
	Start int
	End   int
}

// Overlaps reports whether [aStart,aEnd) and [bStart,bEnd) intersect.
// Half-open on both sides: ranges that merely touch do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// OverlapsAny reports whether [start,end) intersects any booked range.
func OverlapsAny(start, end int, booked []Range) bool {
	for _, r := range booked {
		if Overlaps(start, end, r.Start, r.End) {
			return true
		}
	}
	return false
}

// AtClock anchors minutes past midnight onto a calendar day.
func AtClock(day time.Time, minutes int) time.Time {
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		minutes/60, minutes%60, 0, 0,
		day.Location(),
	)
}
