package booking

import (
	"context"
	"time"

	"github.com/styleon-app/stylist-scheduler/internal/models"
)

type Repository interface {
	// -------- Stylist / Service --------
	GetStylistProfile(
		ctx context.Context,
		id uint,
	) (*models.StylistProfile, error)

	GetStylistProfileByUser(
		ctx context.Context,
		userID uint,
	) (*models.StylistProfile, error)

	GetService(
		ctx context.Context,
		stylistID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Availability --------
	ListAvailability(
		ctx context.Context,
		stylistID uint,
	) ([]models.Availability, error)

	ListWindowsForWeekday(
		ctx context.Context,
		stylistID uint,
		weekday int,
		activeOnly bool,
	) ([]models.Availability, error)

	GetAvailability(
		ctx context.Context,
		id uint,
	) (*models.Availability, error)

	CreateAvailability(
		ctx context.Context,
		w *models.Availability,
	) error

	UpdateAvailability(
		ctx context.Context,
		w *models.Availability,
	) error

	DeleteAvailability(
		ctx context.Context,
		id uint,
	) error

	// -------- Booking (create / conflict) --------
	ListBookingsForDay(
		ctx context.Context,
		stylistID uint,
		date time.Time,
	) ([]models.Booking, error)

	HasBookingConflict(
		ctx context.Context,
		stylistID uint,
		date time.Time,
		startTime string,
		endTime string,
		excludeBookingID uint,
	) (bool, error)

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change / reads) --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookingsForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Booking, error)

	ListBookingsForPeriod(
		ctx context.Context,
		stylistID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	// InSerializableTx runs fn against a repository bound to a serializable
	// transaction. The conflict re-check and the insert of a booking must
	// share one such transaction; commit may be retried once on a detected
	// serialization failure before a transient error surfaces.
	InSerializableTx(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
