package dto

import "time"

type AgendaItemDTO struct {
	ID          uint      `json:"id"`
	Reference   string    `json:"reference"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Status      string    `json:"status"`
	ClientName  string    `json:"client_name"`
	ServiceName string    `json:"service_name"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
}
