package booking

import (
	"testing"

	"github.com/styleon-app/stylist-scheduler/internal/faults"
	"github.com/styleon-app/stylist-scheduler/internal/models"
)

func TestValidateWindow(t *testing.T) {
	cases := []struct {
		name     string
		weekday  int
		start    string
		end      string
		wantCode string
	}{
		{"valid", 1, "09:00", "12:00", ""},
		{"whole day", 0, "00:00", "23:59", ""},
		{"ends at midnight", 5, "20:00", "24:00", ""},
		{"starts at midnight end", 5, "24:00", "24:00", "window_not_ordered"},
		{"weekday low", -1, "09:00", "12:00", "invalid_weekday"},
		{"weekday high", 7, "09:00", "12:00", "invalid_weekday"},
		{"bad start", 1, "9:00", "12:00", "invalid_start_time"},
		{"bad end", 1, "09:00", "25:00", "invalid_end_time"},
		{"reversed", 1, "12:00", "09:00", "window_not_ordered"},
		{"zero width", 1, "09:00", "09:00", "window_not_ordered"},
	}

	for _, tc := range cases {
		r, err := ValidateWindow(tc.weekday, tc.start, tc.end)
		if tc.wantCode == "" {
			if err != nil {
				t.Errorf("%s: unexpected error: %v", tc.name, err)
			}
			continue
		}
		if err == nil {
			t.Errorf("%s: expected error, got %+v", tc.name, r)
			continue
		}
		if got := faults.CodeOf(err); got != tc.wantCode {
			t.Errorf("%s: error code = %q, want %q", tc.name, got, tc.wantCode)
		}
	}
}

func TestWindowConflicts(t *testing.T) {
	existing := []models.Availability{
		{ID: 1, StartTime: "09:00", EndTime: "12:00", Active: true},
		{ID: 2, StartTime: "14:00", EndTime: "18:00", Active: false},
	}

	if !WindowConflicts(Range{Start: 11 * 60, End: 13 * 60}, existing, 0) {
		t.Error("11:00-13:00 should conflict with 09:00-12:00")
	}

	// Inactive windows still occupy their range.
	if !WindowConflicts(Range{Start: 15 * 60, End: 16 * 60}, existing, 0) {
		t.Error("15:00-16:00 should conflict with the inactive 14:00-18:00")
	}

	// Adjacency is not overlap.
	if WindowConflicts(Range{Start: 12 * 60, End: 14 * 60}, existing, 0) {
		t.Error("12:00-14:00 touches both windows but overlaps neither")
	}

	// Editing a window must not collide with itself.
	if WindowConflicts(Range{Start: 9 * 60, End: 11 * 60}, existing, 1) {
		t.Error("window 1 re-saved over its own range should not conflict")
	}
	if !WindowConflicts(Range{Start: 9 * 60, End: 11 * 60}, existing, 2) {
		t.Error("excluding window 2 must not unlock window 1's range")
	}
}
