package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/report"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ReportGormRepository struct {
	db *gorm.DB
}

func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db}
}

func (r *ReportGormRepository) SumPaid(
	ctx context.Context,
	barberID uuid.UUID,
	start time.Time,
	end time.Time,
) (report.PaidTotal, error) {

	var out report.PaidTotal
	err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where(
			"barber_id = ? AND status = ? AND created_at >= ? AND created_at <= ?",
			barberID, models.TransactionPaid, start.UTC(), end.UTC(),
		).
		Scan(&out).Error

	return out, err
}

func (r *ReportGormRepository) CountBookings(
	ctx context.Context,
	barberID uuid.UUID,
	start time.Time,
	end time.Time,
	statuses []string,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"barber_id = ? AND status IN ? AND date >= ? AND date <= ?",
			barberID, statuses, start.UTC(), end.UTC(),
		).
		Count(&count).Error

	return count, err
}

func (r *ReportGormRepository) CountUsersByRole(
	ctx context.Context,
	role string,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("role = ?", role).
		Count(&count).Error

	return count, err
}

func (r *ReportGormRepository) RecentBookings(
	ctx context.Context,
	barberID uuid.UUID,
	limit int,
) ([]models.Booking, error) {

	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where("barber_id = ?", barberID).
		Order("date DESC").
		Limit(limit).
		Find(&bookings).Error

	return bookings, err
}

func (r *ReportGormRepository) TopServices(
	ctx context.Context,
	barberID uuid.UUID,
	limit int,
) ([]report.ServiceCount, error) {

	var out []report.ServiceCount
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("services.name AS name, COUNT(bookings.id) AS qty").
		Joins("JOIN services ON services.id = bookings.service_id").
		Where("bookings.barber_id = ? AND bookings.status = ?", barberID, string(booking.StatusCompleted)).
		Group("services.id, services.name").
		Order("qty DESC").
		Limit(limit).
		Scan(&out).Error

	return out, err
}

func (r *ReportGormRepository) RecentTransactions(
	ctx context.Context,
	barberID uuid.UUID,
	period *report.Period,
	limit int,
) ([]models.Transaction, error) {

	q := r.db.WithContext(ctx).
		Preload("Booking").
		Preload("Booking.Client").
		Preload("Booking.Service").
		Where("barber_id = ?", barberID)

	if period != nil {
		q = q.Where("created_at >= ? AND created_at <= ?", period.Start.UTC(), period.End.UTC())
	}

	var txns []models.Transaction
	err := q.Order("created_at DESC").
		Limit(limit).
		Find(&txns).Error

	return txns, err
}

// Compile-time check
var _ report.Repository = (*ReportGormRepository)(nil)
