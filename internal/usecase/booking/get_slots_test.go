package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/styleon-app/stylist-scheduler/internal/domain/booking"
	"github.com/styleon-app/stylist-scheduler/internal/faults"
	"github.com/styleon-app/stylist-scheduler/internal/models"
)

func newSlotsUC(repo *fakeRepo) *GetSlots {
	uc := NewGetSlots(repo, testPolicy, "UTC")
	uc.clock = fixedClock{now: testNow}
	return uc
}

// 2026-03-10 is a Tuesday (weekday 2).
const tuesday = 2

func seedWindow(repo *fakeRepo, id uint, start, end string, active bool) {
	repo.store.windows[id] = models.Availability{
		ID: id, StylistID: 1, Weekday: tuesday,
		StartTime: start, EndTime: end, Active: active,
	}
}

func TestGetSlots_DayWithBooking(t *testing.T) {
	repo := newFakeRepo()
	seedStylist(repo)
	seedWindow(repo, 1, "09:00", "12:00", true)

	create := newCreateUC(repo)
	in := validCreateInput()
	in.StartTime = "10:00" // 60min service: occupies 10:00-11:00
	_, err := create.Execute(context.Background(), in)
	require.NoError(t, err)

	uc := newSlotsUC(repo)
	slots, err := uc.Execute(context.Background(), 1, 10, "2026-03-10")
	require.NoError(t, err)
	require.Len(t, slots, 6)

	available := map[string]bool{}
	for _, s := range slots {
		available[s.StartTime] = s.IsAvailable
	}

	assert.True(t, available["09:00"], "ends exactly where the booking starts")
	assert.False(t, available["09:30"])
	assert.False(t, available["10:00"])
	assert.False(t, available["10:30"])
	assert.True(t, available["11:00"], "starts exactly where the booking ends")
	assert.False(t, available["11:30"], "60min does not fit before 12:00")
}

func TestGetSlots_NoWindowsIsEmptyNotError(t *testing.T) {
	repo := newFakeRepo()
	seedStylist(repo)
	uc := newSlotsUC(repo)

	slots, err := uc.Execute(context.Background(), 1, 10, "2026-03-10")
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGetSlots_InactiveWindowsIgnored(t *testing.T) {
	repo := newFakeRepo()
	seedStylist(repo)
	seedWindow(repo, 1, "09:00", "12:00", false)
	uc := newSlotsUC(repo)

	slots, err := uc.Execute(context.Background(), 1, 10, "2026-03-10")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetSlots_UnknownService(t *testing.T) {
	repo := newFakeRepo()
	seedStylist(repo)
	seedWindow(repo, 1, "09:00", "12:00", true)
	uc := newSlotsUC(repo)

	_, err := uc.Execute(context.Background(), 1, 999, "2026-03-10")
	assert.True(t, faults.IsNotFound(err), "got %v", err)
}

func TestGetSlots_BadDate(t *testing.T) {
	repo := newFakeRepo()
	seedStylist(repo)
	uc := newSlotsUC(repo)

	_, err := uc.Execute(context.Background(), 1, 10, "next tuesday")
	assert.True(t, faults.IsValidation(err), "got %v", err)
}

func TestGetSlots_MidnightEndBookingOccupiesSlots(t *testing.T) {
	repo := newFakeRepo()
	seedStylist(repo)
	seedWindow(repo, 1, "20:00", "24:00", true)

	create := newCreateUC(repo)
	in := validCreateInput()
	in.StartTime = "23:00" // 60min service: occupies 23:00-24:00
	_, err := create.Execute(context.Background(), in)
	require.NoError(t, err)

	uc := newSlotsUC(repo)
	slots, err := uc.Execute(context.Background(), 1, 10, "2026-03-10")
	require.NoError(t, err)

	available := map[string]bool{}
	for _, s := range slots {
		available[s.StartTime] = s.IsAvailable
	}

	assert.True(t, available["22:00"], "ends exactly where the booking starts")
	assert.False(t, available["22:30"], "runs into the 23:00-24:00 booking")
	assert.False(t, available["23:00"])
	assert.False(t, available["23:30"])
}

func TestGetSlots_CorruptStoredTimeIsAnError(t *testing.T) {
	repo := newFakeRepo()
	seedStylist(repo)
	seedWindow(repo, 1, "09:00", "12:00", true)

	repo.store.nextBookingID = 1
	repo.store.bookings[1] = models.Booking{
		ID:        1,
		StylistID: 1,
		Date:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "9am",
		EndTime:   "10:00",
		Status:    string(domain.StatusPending),
	}

	uc := newSlotsUC(repo)
	_, err := uc.Execute(context.Background(), 1, 10, "2026-03-10")
	require.Error(t, err, "an unreadable booked range must fail the read, not vanish from the conflict set")
}

func TestGetSlots_InactiveService(t *testing.T) {
	repo := newFakeRepo()
	seedStylist(repo)
	seedWindow(repo, 1, "09:00", "12:00", true)
	svc := repo.store.services[10]
	svc.Active = false
	repo.store.services[10] = svc

	uc := newSlotsUC(repo)
	_, err := uc.Execute(context.Background(), 1, 10, "2026-03-10")
	assert.True(t, faults.IsNotFound(err), "a deactivated service must not yield slots, got %v", err)
}

func TestGetSlots_CancelledBookingFreesSlot(t *testing.T) {
	repo := newFakeRepo()
	seedStylist(repo)
	seedWindow(repo, 1, "09:00", "12:00", true)

	create := newCreateUC(repo)
	in := validCreateInput()
	in.StartTime = "10:00"
	b, err := create.Execute(context.Background(), in)
	require.NoError(t, err)

	stored := repo.store.bookings[b.ID]
	stored.Status = string(domain.StatusCancelled)
	repo.store.bookings[b.ID] = stored

	uc := newSlotsUC(repo)
	slots, err := uc.Execute(context.Background(), 1, 10, "2026-03-10")
	require.NoError(t, err)

	for _, s := range slots {
		if s.StartTime == "10:00" && !s.IsAvailable {
			t.Fatal("a cancelled booking must not shadow the slot")
		}
	}
}
