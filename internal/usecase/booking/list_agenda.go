package booking

import (
	"context"
	"time"

	domain "github.com/styleon-app/stylist-scheduler/internal/domain/booking"
	"github.com/styleon-app/stylist-scheduler/internal/dto"
	"github.com/styleon-app/stylist-scheduler/internal/models"
	"github.com/styleon-app/stylist-scheduler/internal/timezone"
)

type ListAgendaByDate struct {
	repo domain.Repository
	tz   string
}

func NewListAgendaByDate(repo domain.Repository, tz string) *ListAgendaByDate {
	return &ListAgendaByDate{repo: repo, tz: tz}
}

func (uc *ListAgendaByDate) Execute(
	ctx context.Context,
	stylistID uint,
	date time.Time,
) ([]dto.AgendaItemDTO, error) {

	start := timezone.Midnight(date)
	end := start.Add(24 * time.Hour)

	bookings, err := uc.repo.ListBookingsForPeriod(ctx, stylistID, start, end)
	if err != nil {
		return nil, err
	}

	return toAgendaItems(bookings), nil
}

type ListAgendaByMonth struct {
	repo domain.Repository
	tz   string
}

func NewListAgendaByMonth(repo domain.Repository, tz string) *ListAgendaByMonth {
	return &ListAgendaByMonth{repo: repo, tz: tz}
}

func (uc *ListAgendaByMonth) Execute(
	ctx context.Context,
	stylistID uint,
	year int,
	month time.Month,
) ([]dto.AgendaItemDTO, error) {

	loc := timezone.Location(uc.tz)
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	bookings, err := uc.repo.ListBookingsForPeriod(ctx, stylistID, start, end)
	if err != nil {
		return nil, err
	}

	return toAgendaItems(bookings), nil
}

func toAgendaItems(bookings []models.Booking) []dto.AgendaItemDTO {
	out := make([]dto.AgendaItemDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.AgendaItemDTO{
			ID:          b.ID,
			Reference:   b.Reference,
			Date:        b.Date,
			StartTime:   b.StartTime,
			EndTime:     b.EndTime,
			Status:      b.Status,
			ClientName:  b.Client.Name,
			ServiceName: b.Service.Name,
			Address:     b.Address,
			City:        b.City,
		})
	}
	return out
}
