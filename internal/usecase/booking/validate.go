package booking

import (
	"time"

	"github.com/styleon-app/stylist-scheduler/internal/config"
	domain "github.com/styleon-app/stylist-scheduler/internal/domain/booking"
	"github.com/styleon-app/stylist-scheduler/internal/faults"
	"github.com/styleon-app/stylist-scheduler/internal/timezone"
)

const dateFormat = "2006-01-02"

func parseDate(tz, s string) (time.Time, error) {
	d, err := time.ParseInLocation(dateFormat, s, timezone.Location(tz))
	if err != nil {
		return time.Time{}, faults.Validation("invalid_date", "Date must be a YYYY-MM-DD value.")
	}
	return d, nil
}

// checkLeadAndHorizon re-validates the booking policy against the actual
// requested slot. A stale slot list must not get past these checks.
func checkLeadAndHorizon(
	date time.Time,
	startMin int,
	now time.Time,
	policy config.SchedulePolicy,
) error {

	if !domain.WithinHorizon(date, now, policy.MaxAdvanceDays) {
		return faults.Validation("too_far_ahead", "Reservations cannot be placed that far in advance.")
	}

	minStart := now.Add(time.Duration(policy.MinLeadTimeHours) * time.Hour)
	if !domain.AtClock(date, startMin).After(minStart) {
		return faults.Validation("too_soon", "Reservations need more notice.")
	}

	return nil
}

func requireField(value, field string, max int) error {
	if value == "" {
		return faults.Validation("missing_"+field, "Field "+field+" is required.")
	}
	if len(value) > max {
		return faults.Validation("invalid_"+field, "Field "+field+" is too long.")
	}
	return nil
}
