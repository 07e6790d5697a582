package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// References
// --------------------------------------------------

func (r *BookingGormRepository) GetActiveBarber(
	ctx context.Context,
	id uuid.UUID,
) (*models.User, error) {

	var barber models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND role = ? AND active = ?", id, models.RoleBarber, true).
		First(&barber).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *BookingGormRepository) GetActiveService(
	ctx context.Context,
	id uuid.UUID,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uuid.UUID,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber").
		Preload("Service").
		Where("id = ?", id).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	b.Date = domain.NormalizeDate(b.Date)

	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(b).Error
	return slotError(err)
}

func (r *BookingGormRepository) UpdateBookingStatus(
	ctx context.Context,
	id uuid.UUID,
	status domain.Status,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingGormRepository) UpdateBookingSchedule(
	ctx context.Context,
	id uuid.UUID,
	date time.Time,
	status domain.Status,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"date":   domain.NormalizeDate(date),
			"status": string(status),
		})
	if res.Error != nil {
		return slotError(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingGormRepository) CompleteBooking(
	ctx context.Context,
	id uuid.UUID,
	txn *models.Transaction,
) (bool, error) {

	created := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txn.BookingID = id

		res := tx.
			Omit(clause.Associations).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "booking_id"}},
				DoNothing: true,
			}).
			Create(txn)
		if res.Error != nil {
			return res.Error
		}
		created = res.RowsAffected > 0

		upd := tx.
			Model(&models.Booking{}).
			Where("id = ?", id).
			Update("status", string(domain.StatusCompleted))
		if upd.Error != nil {
			return upd.Error
		}
		if upd.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})

	if err != nil {
		return false, err
	}
	return created, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListOccupied(
	ctx context.Context,
	barberID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]time.Time, error) {

	var dates []time.Time
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"barber_id = ? AND status <> ? AND date >= ? AND date <= ?",
			barberID, string(domain.StatusCancelled), start.UTC(), end.UTC(),
		).
		Order("date ASC").
		Pluck("date", &dates).Error; err != nil {
		return nil, err
	}

	for i := range dates {
		dates[i] = dates[i].UTC()
	}
	return dates, nil
}

func (r *BookingGormRepository) GetSchedule(
	ctx context.Context,
	barberID uuid.UUID,
	weekday int,
) (*models.BarberSchedule, error) {

	var s models.BarberSchedule
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND weekday = ?", barberID, weekday).
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber").
		Preload("Service")

	if f.BarberID != nil {
		q = q.Where("barber_id = ?", *f.BarberID)
	}
	if f.ClientID != nil {
		q = q.Where("client_id = ?", *f.ClientID)
	}
	if f.Start != nil && f.End != nil {
		q = q.Where("date >= ? AND date <= ?", f.Start.UTC(), f.End.UTC())
	}

	var bookings []models.Booking
	if err := q.Order("date DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) NextBookingForClient(
	ctx context.Context,
	clientID uuid.UUID,
	from time.Time,
) (*models.Booking, error) {

	var b models.Booking
	err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Service").
		Where(
			"client_id = ? AND status IN ? AND date >= ?",
			clientID,
			[]string{string(domain.StatusPending), string(domain.StatusConfirmed)},
			from.UTC(),
		).
		Order("date ASC").
		First(&b).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListConfirmedBetween(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber").
		Preload("Service").
		Where(
			"status = ? AND date >= ? AND date <= ?",
			string(domain.StatusConfirmed), start.UTC(), end.UTC(),
		).
		Order("date ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func slotError(err error) error {
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness(domain.ErrSlotUnavailable)
	}
	return err
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
