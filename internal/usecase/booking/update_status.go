package booking

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type UpdateBookingStatus struct {
	repo     domain.Repository
	notifier Notifier
	audit    AuditSink
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	notifier Notifier,
	audit AuditSink,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
	}
}

// Execute moves the booking along the status table. Completing a booking
// also records its transaction; completing it again records nothing new.
func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	p domain.Principal,
	bookingID uuid.UUID,
	next domain.Status,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, orBusiness(err, domain.ErrBookingNotFound)
	}

	previous := domain.Status(b.Status)
	if err := domain.Transition(b, p, next); err != nil {
		return nil, err
	}

	meta := map[string]any{
		"from": previous,
		"to":   next,
	}

	if next == domain.StatusCompleted {
		barberAmount, shopAmount := domain.SplitRevenue(b.Service.Price)

		txn := &models.Transaction{
			BarberID:      b.BarberID,
			Amount:        b.Service.Price,
			BarberAmount:  barberAmount,
			ShopAmount:    shopAmount,
			PaymentMethod: models.PaymentCash,
			Status:        models.TransactionPaid,
		}

		created, err := uc.repo.CompleteBooking(ctx, b.ID, txn)
		if err != nil {
			return nil, orBusiness(err, domain.ErrBookingNotFound)
		}
		if created {
			meta["transaction_id"] = txn.ID
		}
	} else {
		if err := uc.repo.UpdateBookingStatus(ctx, b.ID, next); err != nil {
			return nil, orBusiness(err, domain.ErrBookingNotFound)
		}
	}

	if next == domain.StatusConfirmed && previous != domain.StatusConfirmed {
		uc.notifier.BookingConfirmed(b)
	}

	uc.audit.Dispatch(bookingEvent("booking_status_changed", b, p.UserID, meta))

	return b, nil
}
