package booking

import (
	"context"

	domain "github.com/styleon-app/stylist-scheduler/internal/domain/booking"
	"github.com/styleon-app/stylist-scheduler/internal/models"
)

type ListClientBookings struct {
	repo domain.Repository
}

func NewListClientBookings(repo domain.Repository) *ListClientBookings {
	return &ListClientBookings{repo: repo}
}

func (uc *ListClientBookings) Execute(
	ctx context.Context,
	clientID uint,
) ([]models.Booking, error) {
	return uc.repo.ListBookingsForClient(ctx, clientID)
}
