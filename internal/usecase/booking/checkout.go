package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/payment"
)

type PaymentGateway interface {
	CreatePreference(ctx context.Context, item payment.CheckoutItem) (*payment.Preference, error)
}

type StartCheckout struct {
	repo    domain.Repository
	gateway PaymentGateway
	audit   AuditSink
}

func NewStartCheckout(
	repo domain.Repository,
	gateway PaymentGateway,
	audit AuditSink,
) *StartCheckout {
	return &StartCheckout{
		repo:    repo,
		gateway: gateway,
		audit:   audit,
	}
}

// Execute opens an online payment for the service price. It does not
// record a transaction: that only happens when the booking is completed.
func (uc *StartCheckout) Execute(
	ctx context.Context,
	p domain.Principal,
	bookingID uuid.UUID,
) (*dto.CheckoutDTO, error) {

	if uc.gateway == nil {
		return nil, httperr.ErrBusiness(domain.ErrCheckoutUnavailable)
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, orBusiness(err, domain.ErrBookingNotFound)
	}

	if !p.IsClient() || !p.Owns(b) {
		return nil, httperr.ErrBusiness(domain.ErrNotAuthorized)
	}
	if domain.Status(b.Status).IsTerminal() {
		return nil, httperr.ErrBusiness(domain.ErrCheckoutUnavailable)
	}

	pref, err := uc.gateway.CreatePreference(ctx, payment.CheckoutItem{
		Reference:   b.ID.String(),
		Title:       b.Service.Name,
		Description: fmt.Sprintf("%s com %s", b.Service.Name, b.Barber.Name),
		Price:       b.Service.Price,
		PayerEmail:  b.Client.Email,
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(bookingEvent("booking_checkout_started", b, p.UserID, map[string]any{
		"preference_id": pref.ID,
	}))

	return &dto.CheckoutDTO{
		PreferenceID: pref.ID,
		InitPoint:    pref.InitPoint,
	}, nil
}
