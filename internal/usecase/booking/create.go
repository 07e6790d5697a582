package booking

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ClientID  uuid.UUID
	BarberID  uuid.UUID
	ServiceID uuid.UUID
	Date      time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	notifier Notifier
	audit    AuditSink
	now      clock
}

func NewCreateBooking(
	repo domain.Repository,
	notifier Notifier,
	audit AuditSink,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
		now:      utcNow,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if in.Date.Before(uc.now()) {
		return nil, httperr.ErrBusiness(domain.ErrDateInPast)
	}

	if _, err := uc.repo.GetActiveBarber(ctx, in.BarberID); err != nil {
		return nil, orBusiness(err, domain.ErrBarberNotFound)
	}

	if _, err := uc.repo.GetActiveService(ctx, in.ServiceID); err != nil {
		return nil, orBusiness(err, domain.ErrServiceNotFound)
	}

	// The store rejects a second live booking on the same barber/instant.
	b := &models.Booking{
		ClientID:  in.ClientID,
		BarberID:  in.BarberID,
		ServiceID: in.ServiceID,
		Date:      in.Date,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	full, err := uc.repo.GetBooking(ctx, b.ID)
	if err != nil {
		log.Printf("booking %s created but reload failed: %v", b.ID, err)
		return b, nil
	}

	uc.notifier.BookingRequested(full)
	uc.audit.Dispatch(bookingEvent("booking_created", full, in.ClientID, map[string]any{
		"date":       full.Date,
		"service_id": full.ServiceID,
	}))

	return full, nil
}
