package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type ListBookingsInput struct {
	Start      *time.Time
	End        *time.Time
	CustomerID *uuid.UUID
}

type ListBookings struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListBookings(repo domain.Repository, loc *time.Location) *ListBookings {
	return &ListBookings{repo: repo, loc: loc}
}

// Execute lists the caller's bookings. Barbers may narrow by customer;
// clients always see only their own. The date range applies only when
// both ends are given, each end widened to its whole shop-local day.
func (uc *ListBookings) Execute(
	ctx context.Context,
	p domain.Principal,
	in ListBookingsInput,
) ([]dto.BookingDTO, error) {

	var f domain.ListFilter

	switch {
	case p.IsBarber():
		f.BarberID = &p.UserID
		f.ClientID = in.CustomerID
	case p.IsClient():
		f.ClientID = &p.UserID
	default:
		return nil, httperr.ErrBusiness(domain.ErrNotAuthorized)
	}

	if in.Start != nil && in.End != nil {
		start, _ := timezone.DayBounds(*in.Start, uc.loc)
		_, end := timezone.DayBounds(*in.End, uc.loc)
		f.Start, f.End = &start, &end
	}

	bookings, err := uc.repo.ListBookings(ctx, f)
	if err != nil {
		return nil, err
	}

	return dto.NewBookingDTOs(bookings), nil
}

// ======================================================
// NEXT BOOKING
// ======================================================

type NextBooking struct {
	repo domain.Repository
	now  clock
}

func NewNextBooking(repo domain.Repository) *NextBooking {
	return &NextBooking{repo: repo, now: utcNow}
}

// Execute returns nil when the client has nothing upcoming.
func (uc *NextBooking) Execute(
	ctx context.Context,
	clientID uuid.UUID,
) (*dto.BookingDTO, error) {

	b, err := uc.repo.NextBookingForClient(ctx, clientID, uc.now())
	if err != nil || b == nil {
		return nil, err
	}

	out := dto.NewBookingDTO(b)
	return &out, nil
}
