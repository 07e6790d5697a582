package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ServiceSummaryDTO struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Duration int             `json:"duration"`
}

type PersonSummaryDTO struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Phone  string    `json:"phone,omitempty"`
	Avatar string    `json:"avatar,omitempty"`
	Email  string    `json:"email,omitempty"`
}

type BookingDTO struct {
	ID        uuid.UUID         `json:"id"`
	Date      time.Time         `json:"date"`
	Status    string            `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	Service   ServiceSummaryDTO `json:"service"`
	Barber    PersonSummaryDTO  `json:"barber"`
	Client    PersonSummaryDTO  `json:"client"`
}

func NewBookingDTO(b *models.Booking) BookingDTO {
	return BookingDTO{
		ID:        b.ID,
		Date:      b.Date.UTC(),
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
		Service: ServiceSummaryDTO{
			ID:       b.Service.ID,
			Name:     b.Service.Name,
			Price:    b.Service.Price,
			Duration: b.Service.DurationMin,
		},
		Barber: PersonSummaryDTO{
			ID:     b.Barber.ID,
			Name:   b.Barber.Name,
			Avatar: b.Barber.Avatar,
		},
		Client: PersonSummaryDTO{
			ID:     b.Client.ID,
			Name:   b.Client.Name,
			Phone:  b.Client.Phone,
			Avatar: b.Client.Avatar,
			Email:  b.Client.Email,
		},
	}
}

func NewBookingDTOs(bookings []models.Booking) []BookingDTO {
	out := make([]BookingDTO, 0, len(bookings))
	for i := range bookings {
		out = append(out, NewBookingDTO(&bookings[i]))
	}
	return out
}

type CheckoutDTO struct {
	PreferenceID string `json:"preference_id"`
	InitPoint    string `json:"init_point"`
}
