package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ListFilter struct {
	BarberID *uuid.UUID
	ClientID *uuid.UUID
	Start    *time.Time
	End      *time.Time
}

type Repository interface {
	// -------- References --------
	GetActiveBarber(
		ctx context.Context,
		id uuid.UUID,
	) (*models.User, error)

	GetActiveService(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Service, error)

	// -------- Booking --------
	GetBooking(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Booking, error)

	// CreateBooking fails with slot_unavailable when the barber already
	// has a live booking at the same instant.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	UpdateBookingStatus(
		ctx context.Context,
		id uuid.UUID,
		status Status,
	) error

	// UpdateBookingSchedule writes date and status together and fails with
	// slot_unavailable on a conflict.
	UpdateBookingSchedule(
		ctx context.Context,
		id uuid.UUID,
		date time.Time,
		status Status,
	) error

	// CompleteBooking marks the booking COMPLETED and records txn in one
	// store transaction. created is false when a transaction already existed.
	CompleteBooking(
		ctx context.Context,
		id uuid.UUID,
		txn *models.Transaction,
	) (created bool, err error)

	// -------- Availability --------
	ListOccupied(
		ctx context.Context,
		barberID uuid.UUID,
		start time.Time,
		end time.Time,
	) ([]time.Time, error)

	GetSchedule(
		ctx context.Context,
		barberID uuid.UUID,
		weekday int,
	) (*models.BarberSchedule, error)

	// -------- Listing --------
	ListBookings(
		ctx context.Context,
		f ListFilter,
	) ([]models.Booking, error)

	NextBookingForClient(
		ctx context.Context,
		clientID uuid.UUID,
		from time.Time,
	) (*models.Booking, error)

	ListConfirmedBetween(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)
}
