package booking

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type CancelBooking struct {
	repo  domain.Repository
	audit AuditSink
	now   clock
}

func NewCancelBooking(
	repo domain.Repository,
	audit AuditSink,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
		now:   utcNow,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	p domain.Principal,
	bookingID uuid.UUID,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, orBusiness(err, domain.ErrBookingNotFound)
	}

	if err := domain.Cancel(b, p, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBookingStatus(ctx, b.ID, domain.StatusCancelled); err != nil {
		return nil, orBusiness(err, domain.ErrBookingNotFound)
	}

	uc.audit.Dispatch(bookingEvent("booking_cancelled", b, p.UserID, map[string]any{
		"role": p.Role,
	}))

	return b, nil
}
