package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type RescheduleBooking struct {
	repo  domain.Repository
	audit AuditSink
	now   clock
}

func NewRescheduleBooking(
	repo domain.Repository,
	audit AuditSink,
) *RescheduleBooking {
	return &RescheduleBooking{
		repo:  repo,
		audit: audit,
		now:   utcNow,
	}
}

// Execute moves the booking to newDate and resets it to PENDING. The
// store's slot index excludes the booking's own row, so moving onto its
// current slot succeeds.
func (uc *RescheduleBooking) Execute(
	ctx context.Context,
	p domain.Principal,
	bookingID uuid.UUID,
	newDate time.Time,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, orBusiness(err, domain.ErrBookingNotFound)
	}

	oldDate := b.Date
	if err := domain.Reschedule(b, p, newDate, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBookingSchedule(ctx, b.ID, b.Date, domain.StatusPending); err != nil {
		return nil, orBusiness(err, domain.ErrBookingNotFound)
	}

	uc.audit.Dispatch(bookingEvent("booking_rescheduled", b, p.UserID, map[string]any{
		"from": oldDate,
		"to":   b.Date,
	}))

	return b, nil
}
