package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/styleon-app/stylist-scheduler/internal/domain/booking"
	"github.com/styleon-app/stylist-scheduler/internal/faults"
	"github.com/styleon-app/stylist-scheduler/internal/models"
)

// txTimeout bounds every serializable transaction; on expiry the caller
// gets a transient, retryable error and nothing is committed.
const txTimeout = 5 * time.Second

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

// --------------------------------------------------
// Stylist / Service
// --------------------------------------------------

func (r *SchedulingGormRepository) GetStylistProfile(
	ctx context.Context,
	id uint,
) (*models.StylistProfile, error) {

	var profile models.StylistProfile
	if err := r.db.WithContext(ctx).First(&profile, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, faults.NotFound("stylist_not_found", "Stylist not found.")
		}
		return nil, err
	}
	return &profile, nil
}

func (r *SchedulingGormRepository) GetStylistProfileByUser(
	ctx context.Context,
	userID uint,
) (*models.StylistProfile, error) {

	var profile models.StylistProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, faults.NotFound("stylist_not_found", "Stylist profile not found.")
		}
		return nil, err
	}
	return &profile, nil
}

// GetService resolves an active service of one stylist. A deactivated
// service is invisible here, same as in the public listing, so it can
// neither be booked nor yield slots.
func (r *SchedulingGormRepository) GetService(
	ctx context.Context,
	stylistID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND stylist_id = ? AND active = true", serviceID, stylistID).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, faults.NotFound("service_not_found", "Service not found.")
		}
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *SchedulingGormRepository) ListAvailability(
	ctx context.Context,
	stylistID uint,
) ([]models.Availability, error) {

	var windows []models.Availability
	if err := r.db.WithContext(ctx).
		Where("stylist_id = ?", stylistID).
		Order("weekday ASC, start_time ASC").
		Find(&windows).Error; err != nil {
		return nil, err
	}
	return windows, nil
}

func (r *SchedulingGormRepository) ListWindowsForWeekday(
	ctx context.Context,
	stylistID uint,
	weekday int,
	activeOnly bool,
) ([]models.Availability, error) {

	q := r.db.WithContext(ctx).
		Where("stylist_id = ? AND weekday = ?", stylistID, weekday)
	if activeOnly {
		q = q.Where("active = true")
	}

	var windows []models.Availability
	if err := q.Order("start_time ASC").Find(&windows).Error; err != nil {
		return nil, err
	}
	return windows, nil
}

func (r *SchedulingGormRepository) GetAvailability(
	ctx context.Context,
	id uint,
) (*models.Availability, error) {

	var w models.Availability
	if err := r.db.WithContext(ctx).First(&w, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, faults.NotFound("availability_not_found", "Availability window not found.")
		}
		return nil, err
	}
	return &w, nil
}

func (r *SchedulingGormRepository) CreateAvailability(
	ctx context.Context,
	w *models.Availability,
) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *SchedulingGormRepository) UpdateAvailability(
	ctx context.Context,
	w *models.Availability,
) error {
	return r.db.WithContext(ctx).Save(w).Error
}

func (r *SchedulingGormRepository) DeleteAvailability(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Availability{}, id).Error
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *SchedulingGormRepository) ListBookingsForDay(
	ctx context.Context,
	stylistID uint,
	date time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"stylist_id = ? AND date = ? AND status <> ?",
			stylistID, date, string(domain.StatusCancelled),
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// HasBookingConflict runs the half-open overlap predicate in SQL. The
// "HH:mm" columns are zero-padded, so lexical comparison is minute order.
func (r *SchedulingGormRepository) HasBookingConflict(
	ctx context.Context,
	stylistID uint,
	date time.Time,
	startTime string,
	endTime string,
	excludeBookingID uint,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"stylist_id = ? AND date = ? AND status <> ? AND start_time < ? AND end_time > ?",
			stylistID, date, string(domain.StatusCancelled), endTime, startTime,
		)
	if excludeBookingID != 0 {
		q = q.Where("id <> ?", excludeBookingID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SchedulingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// --------------------------------------------------
// Booking (state change / reads)
// --------------------------------------------------

func (r *SchedulingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, faults.NotFound("booking_not_found", "Reservation not found.")
		}
		return nil, err
	}
	return &b, nil
}

func (r *SchedulingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *SchedulingGormRepository) ListBookingsForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("client_id = ?", clientID).
		Order("date DESC, start_time DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *SchedulingGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	stylistID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where(
			"stylist_id = ? AND date >= ? AND date < ?",
			stylistID, start, end,
		).
		Order("date ASC, start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

// InSerializableTx runs fn inside a serializable transaction bound to a
// deadline. A serialization failure is retried once; a second loss, or a
// deadline hit, surfaces as a transient error so callers may retry.
func (r *SchedulingGormRepository) InSerializableTx(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {

	ctx, cancel := context.WithTimeout(ctx, txTimeout)
	defer cancel()

	run := func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(&SchedulingGormRepository{db: tx})
		}, &sql.TxOptions{Isolation: sql.LevelSerializable})
	}

	err := run()
	if isSerializationFailure(err) {
		err = run()
	}
	if err == nil {
		return nil
	}

	if isSerializationFailure(err) {
		return faults.Wrap(err, faults.KindTransient, "store_busy", "The schedule is busy, please retry.")
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return faults.Wrap(err, faults.KindTransient, "store_timeout", "The schedule store timed out, please retry.")
	}
	return err
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// serialization_failure and deadlock_detected
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

// Compile-time check
var _ domain.Repository = (*SchedulingGormRepository)(nil)
