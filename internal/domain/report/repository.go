package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type PaidTotal struct {
	Total decimal.Decimal
	Count int64
}

type ServiceCount struct {
	Name  string
	Count int64 `gorm:"column:qty"`
}

type Period struct {
	Start time.Time
	End   time.Time
}

// Repository holds the read-only aggregate queries behind the dashboard
// and finance pages. Every range is inclusive on both ends.
type Repository interface {
	SumPaid(
		ctx context.Context,
		barberID uuid.UUID,
		start time.Time,
		end time.Time,
	) (PaidTotal, error)

	CountBookings(
		ctx context.Context,
		barberID uuid.UUID,
		start time.Time,
		end time.Time,
		statuses []string,
	) (int64, error)

	CountUsersByRole(
		ctx context.Context,
		role string,
	) (int64, error)

	RecentBookings(
		ctx context.Context,
		barberID uuid.UUID,
		limit int,
	) ([]models.Booking, error)

	TopServices(
		ctx context.Context,
		barberID uuid.UUID,
		limit int,
	) ([]ServiceCount, error)

	// RecentTransactions lists newest first. A nil period lists across all dates.
	RecentTransactions(
		ctx context.Context,
		barberID uuid.UUID,
		period *Period,
		limit int,
	) ([]models.Transaction, error)
}
