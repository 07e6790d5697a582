package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MonthPointDTO struct {
	Name     string          `json:"name"`
	Revenue  decimal.Decimal `json:"revenue"`
	Services int64           `json:"services"`
}

type RecentBookingDTO struct {
	ID      uuid.UUID        `json:"id"`
	Date    time.Time        `json:"date"`
	Status  string           `json:"status"`
	Client  PersonSummaryDTO `json:"client"`
	Service string           `json:"service"`
}

type TopServiceDTO struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type DashboardDTO struct {
	MonthlyRevenue    decimal.Decimal    `json:"monthly_revenue"`
	AppointmentsToday int64              `json:"appointments_today"`
	TotalClients      int64              `json:"total_clients"`
	Chart             []MonthPointDTO    `json:"chart"`
	RecentBookings    []RecentBookingDTO `json:"recent_bookings"`
	TopServices       []TopServiceDTO    `json:"top_services"`
}

type DayPointDTO struct {
	Name     string          `json:"name"`
	FullDate string          `json:"full_date"`
	Total    decimal.Decimal `json:"total"`
}

type FinanceTransactionDTO struct {
	ID           uuid.UUID       `json:"id"`
	Amount       decimal.Decimal `json:"amount"`
	BarberAmount decimal.Decimal `json:"barber_amount"`
	ShopAmount   decimal.Decimal `json:"shop_amount"`
	Category     string          `json:"category"`
	Status       string          `json:"status"`
	Date         time.Time       `json:"date"`
	ClientName   string          `json:"client_name"`
	ClientAvatar string          `json:"client_avatar,omitempty"`
}

type FinanceDTO struct {
	TotalRevenue  decimal.Decimal         `json:"total_revenue"`
	AverageTicket decimal.Decimal         `json:"average_ticket"`
	Chart         []DayPointDTO           `json:"chart"`
	Transactions  []FinanceTransactionDTO `json:"transactions"`
}
