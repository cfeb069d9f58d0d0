package availability

import (
	"context"

	domain "github.com/styleon-app/stylist-scheduler/internal/domain/booking"
	"github.com/styleon-app/stylist-scheduler/internal/models"
)

type ListAvailability struct {
	repo domain.Repository
}

func NewListAvailability(repo domain.Repository) *ListAvailability {
	return &ListAvailability{repo: repo}
}

func (uc *ListAvailability) Execute(
	ctx context.Context,
	stylistID uint,
) ([]models.Availability, error) {
	return uc.repo.ListAvailability(ctx, stylistID)
}
