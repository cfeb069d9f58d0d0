package booking

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", EndOfDay, false}, // exclusive end of day
		{"9:00", 0, true},          // not zero padded
		{"0900", 0, true},          // missing separator
		{"24:01", 0, true},
		{"25:00", 0, true},
		{"09:60", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error, got %d", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{540, "09:00"},
		{571, "09:31"},
		{1439, "23:59"},
		{EndOfDay, "24:00"},
	}
	for _, tc := range cases {
		if got := FormatClock(tc.in); got != tc.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// A range ending at midnight must survive a format/parse round trip; the
// stored "24:00" end time feeds both the conflict SQL and the slot engine.
func TestClockRoundTripAtMidnight(t *testing.T) {
	got, err := ParseClock(FormatClock(EndOfDay))
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if got != EndOfDay {
		t.Fatalf("round trip = %d, want %d", got, EndOfDay)
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"identical", 540, 600, 540, 600, true},
		{"contained", 540, 600, 550, 560, true},
		{"partial left", 540, 600, 500, 550, true},
		{"partial right", 540, 600, 590, 650, true},
		{"touching end-to-start is free", 540, 600, 600, 660, false},
		{"touching start-to-end is free", 600, 660, 540, 600, false},
		{"disjoint", 540, 600, 700, 760, false},
	}
	for _, tc := range cases {
		if got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
			t.Errorf("%s: Overlaps(%d,%d,%d,%d) = %v, want %v",
				tc.name, tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
		}
	}
}

func TestAtClock(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatal(err)
	}
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)

	got := AtClock(day, 570)
	want := time.Date(2026, 3, 10, 9, 30, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("AtClock = %s, want %s", got, want)
	}
	if got.Location() != loc {
		t.Fatalf("AtClock lost location: %s", got.Location())
	}
}
