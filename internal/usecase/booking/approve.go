package booking

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ApproveBooking struct {
	repo     domain.Repository
	notifier Notifier
	audit    AuditSink
}

func NewApproveBooking(
	repo domain.Repository,
	notifier Notifier,
	audit AuditSink,
) *ApproveBooking {
	return &ApproveBooking{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
	}
}

func (uc *ApproveBooking) Execute(
	ctx context.Context,
	bookingID uuid.UUID,
	barberID uuid.UUID,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, orBusiness(err, domain.ErrBookingNotFound)
	}

	previous := domain.Status(b.Status)

	if err := domain.Approve(b, barberID); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBookingStatus(ctx, b.ID, domain.StatusConfirmed); err != nil {
		return nil, orBusiness(err, domain.ErrBookingNotFound)
	}

	if previous != domain.StatusConfirmed {
		uc.notifier.BookingConfirmed(b)
	}
	uc.audit.Dispatch(bookingEvent("booking_confirmed", b, barberID, nil))

	return b, nil
}
