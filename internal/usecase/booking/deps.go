package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Notifier is fire-and-forget: implementations log their own failures.
type Notifier interface {
	BookingRequested(b *models.Booking)
	BookingConfirmed(b *models.Booking)
}

type AuditSink interface {
	Dispatch(ev audit.Event)
}

type clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}

// orBusiness maps a missing row to the given business code.
func orBusiness(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness(code)
	}
	return err
}

func bookingEvent(action string, b *models.Booking, actor uuid.UUID, meta any) audit.Event {
	barberID, bookingID := b.BarberID, b.ID
	return audit.Event{
		BarberID: &barberID,
		UserID:   &actor,
		Action:   action,
		Entity:   "booking",
		EntityID: &bookingID,
		Metadata: meta,
	}
}
