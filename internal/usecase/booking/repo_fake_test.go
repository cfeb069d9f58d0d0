package booking

import (
	"context"
	"sync"
	"time"

	domain "github.com/styleon-app/stylist-scheduler/internal/domain/booking"
	"github.com/styleon-app/stylist-scheduler/internal/faults"
	"github.com/styleon-app/stylist-scheduler/internal/models"
)

// fakeStore is the unsynchronized in-memory backing for fakeRepo. It also
// serves as the transaction-bound view handed to InSerializableTx callbacks.
type fakeStore struct {
	profiles map[uint]models.StylistProfile // by profile ID
	services map[uint]models.Service
	windows  map[uint]models.Availability
	bookings map[uint]models.Booking

	nextBookingID uint
	nextWindowID  uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		profiles: map[uint]models.StylistProfile{},
		services: map[uint]models.Service{},
		windows:  map[uint]models.Availability{},
		bookings: map[uint]models.Booking{},
	}
}

var _ domain.Repository = (*fakeStore)(nil)

func (s *fakeStore) GetStylistProfile(ctx context.Context, id uint) (*models.StylistProfile, error) {
	p, ok := s.profiles[id]
	if !ok {
		return nil, faults.NotFound("stylist_not_found", "Stylist not found.")
	}
	return &p, nil
}

func (s *fakeStore) GetStylistProfileByUser(ctx context.Context, userID uint) (*models.StylistProfile, error) {
	for _, p := range s.profiles {
		if p.UserID == userID {
			p := p
			return &p, nil
		}
	}
	return nil, faults.NotFound("stylist_not_found", "Stylist profile not found.")
}

func (s *fakeStore) GetService(ctx context.Context, stylistID, serviceID uint) (*models.Service, error) {
	svc, ok := s.services[serviceID]
	if !ok || svc.StylistID != stylistID || !svc.Active {
		return nil, faults.NotFound("service_not_found", "Service not found.")
	}
	return &svc, nil
}

func (s *fakeStore) ListAvailability(ctx context.Context, stylistID uint) ([]models.Availability, error) {
	var out []models.Availability
	for _, w := range s.windows {
		if w.StylistID == stylistID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *fakeStore) ListWindowsForWeekday(ctx context.Context, stylistID uint, weekday int, activeOnly bool) ([]models.Availability, error) {
	var out []models.Availability
	for _, w := range s.windows {
		if w.StylistID != stylistID || w.Weekday != weekday {
			continue
		}
		if activeOnly && !w.Active {
			continue
		}
		out = append(out, w)
	}
	sortWindows(out)
	return out, nil
}

func sortWindows(ws []models.Availability) {
	for i := 1; i < len(ws); i++ {
		for j := i; j > 0 && ws[j].StartTime < ws[j-1].StartTime; j-- {
			ws[j], ws[j-1] = ws[j-1], ws[j]
		}
	}
}

func (s *fakeStore) GetAvailability(ctx context.Context, id uint) (*models.Availability, error) {
	w, ok := s.windows[id]
	if !ok {
		return nil, faults.NotFound("availability_not_found", "Availability window not found.")
	}
	return &w, nil
}

func (s *fakeStore) CreateAvailability(ctx context.Context, w *models.Availability) error {
	s.nextWindowID++
	w.ID = s.nextWindowID
	s.windows[w.ID] = *w
	return nil
}

func (s *fakeStore) UpdateAvailability(ctx context.Context, w *models.Availability) error {
	s.windows[w.ID] = *w
	return nil
}

func (s *fakeStore) DeleteAvailability(ctx context.Context, id uint) error {
	delete(s.windows, id)
	return nil
}

func (s *fakeStore) ListBookingsForDay(ctx context.Context, stylistID uint, date time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.StylistID == stylistID && b.Date.Equal(date) && b.Status != string(domain.StatusCancelled) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *fakeStore) HasBookingConflict(ctx context.Context, stylistID uint, date time.Time, startTime, endTime string, excludeBookingID uint) (bool, error) {
	for _, b := range s.bookings {
		if b.ID == excludeBookingID {
			continue
		}
		if b.StylistID != stylistID || !b.Date.Equal(date) {
			continue
		}
		if b.Status == string(domain.StatusCancelled) {
			continue
		}
		// Zero-padded HH:mm compares lexically.
		if b.StartTime < endTime && b.EndTime > startTime {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) CreateBooking(ctx context.Context, b *models.Booking) error {
	s.nextBookingID++
	b.ID = s.nextBookingID
	s.bookings[b.ID] = *b
	return nil
}

func (s *fakeStore) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, faults.NotFound("booking_not_found", "Reservation not found.")
	}
	return &b, nil
}

func (s *fakeStore) UpdateBooking(ctx context.Context, b *models.Booking) error {
	if _, ok := s.bookings[b.ID]; !ok {
		return faults.NotFound("booking_not_found", "Reservation not found.")
	}
	s.bookings[b.ID] = *b
	return nil
}

func (s *fakeStore) ListBookingsForClient(ctx context.Context, clientID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.ClientID == clientID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *fakeStore) ListBookingsForPeriod(ctx context.Context, stylistID uint, start, end time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.StylistID == stylistID && !b.Date.Before(start) && b.Date.Before(end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *fakeStore) InSerializableTx(ctx context.Context, fn func(domain.Repository) error) error {
	return fn(s)
}

// fakeRepo serializes every call, including whole transactions, behind one
// mutex. Two racing transactions therefore commit one after the other, the
// same exactly-one-wins outcome a serializable database gives.
type fakeRepo struct {
	mu    sync.Mutex
	store *fakeStore
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{store: newFakeStore()}
}

var _ domain.Repository = (*fakeRepo)(nil)

func (r *fakeRepo) GetStylistProfile(ctx context.Context, id uint) (*models.StylistProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.GetStylistProfile(ctx, id)
}

func (r *fakeRepo) GetStylistProfileByUser(ctx context.Context, userID uint) (*models.StylistProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.GetStylistProfileByUser(ctx, userID)
}

func (r *fakeRepo) GetService(ctx context.Context, stylistID, serviceID uint) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.GetService(ctx, stylistID, serviceID)
}

func (r *fakeRepo) ListAvailability(ctx context.Context, stylistID uint) ([]models.Availability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.ListAvailability(ctx, stylistID)
}

func (r *fakeRepo) ListWindowsForWeekday(ctx context.Context, stylistID uint, weekday int, activeOnly bool) ([]models.Availability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.ListWindowsForWeekday(ctx, stylistID, weekday, activeOnly)
}

func (r *fakeRepo) GetAvailability(ctx context.Context, id uint) (*models.Availability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.GetAvailability(ctx, id)
}

func (r *fakeRepo) CreateAvailability(ctx context.Context, w *models.Availability) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.CreateAvailability(ctx, w)
}

func (r *fakeRepo) UpdateAvailability(ctx context.Context, w *models.Availability) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.UpdateAvailability(ctx, w)
}

func (r *fakeRepo) DeleteAvailability(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.DeleteAvailability(ctx, id)
}

func (r *fakeRepo) ListBookingsForDay(ctx context.Context, stylistID uint, date time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.ListBookingsForDay(ctx, stylistID, date)
}

func (r *fakeRepo) HasBookingConflict(ctx context.Context, stylistID uint, date time.Time, startTime, endTime string, excludeBookingID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.HasBookingConflict(ctx, stylistID, date, startTime, endTime, excludeBookingID)
}

func (r *fakeRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.CreateBooking(ctx, b)
}

func (r *fakeRepo) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.GetBooking(ctx, id)
}

func (r *fakeRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.UpdateBooking(ctx, b)
}

func (r *fakeRepo) ListBookingsForClient(ctx context.Context, clientID uint) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.ListBookingsForClient(ctx, clientID)
}

func (r *fakeRepo) ListBookingsForPeriod(ctx context.Context, stylistID uint, start, end time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.ListBookingsForPeriod(ctx, stylistID, start, end)
}

func (r *fakeRepo) InSerializableTx(ctx context.Context, fn func(domain.Repository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.store)
}

// fixedClock pins "now" for lead-time and horizon assertions.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }
