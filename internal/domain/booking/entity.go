package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Principal is the authenticated caller of an operation.
type Principal struct {
	UserID uuid.UUID
	Role   string
}

func (p Principal) IsBarber() bool {
	return p.Role == models.RoleBarber
}

func (p Principal) IsClient() bool {
	return p.Role == models.RoleClient
}

// Owns reports whether p is the client or the barber of the booking,
// according to p's role.
func (p Principal) Owns(b *models.Booking) bool {
	switch p.Role {
	case models.RoleBarber:
		return b.BarberID == p.UserID
	case models.RoleClient:
		return b.ClientID == p.UserID
	}
	return false
}

// NormalizeDate is the form in which booking instants are stored and compared.
func NormalizeDate(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// ===============================
// Domain Actions
// ===============================

func Approve(b *models.Booking, actingBarberID uuid.UUID) error {
	if b.BarberID != actingBarberID {
		return httperr.ErrBusiness(ErrNotAuthorized)
	}
	if err := CanTransition(Status(b.Status), StatusConfirmed); err != nil {
		return err
	}

	b.Status = string(StatusConfirmed)
	return nil
}

func Cancel(b *models.Booking, p Principal, now time.Time) error {
	if !p.Owns(b) {
		return httperr.ErrBusiness(ErrNotAuthorized)
	}
	if Status(b.Status) == StatusCancelled {
		return httperr.ErrBusiness(ErrAlreadyCancelled)
	}
	if b.Date.Before(now) {
		return httperr.ErrBusiness(ErrCannotCancelPast)
	}
	if err := CanTransition(Status(b.Status), StatusCancelled); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	return nil
}

// Transition applies a status change requested by p. Clients may only
// cancel their own bookings.
func Transition(b *models.Booking, p Principal, next Status) error {
	if !p.Owns(b) {
		return httperr.ErrBusiness(ErrNotAuthorized)
	}
	if p.IsClient() && next != StatusCancelled {
		return httperr.ErrBusiness(ErrNotAuthorized)
	}
	if err := CanTransition(Status(b.Status), next); err != nil {
		return err
	}

	b.Status = string(next)
	return nil
}

// Reschedule moves the booking and puts it back to PENDING. The current
// status is not inspected.
func Reschedule(b *models.Booking, p Principal, newDate, now time.Time) error {
	if !p.Owns(b) {
		return httperr.ErrBusiness(ErrNotAuthorized)
	}
	if newDate.Before(now) {
		return httperr.ErrBusiness(ErrDateInPast)
	}

	b.Date = NormalizeDate(newDate)
	b.Status = string(StatusPending)
	return nil
}
