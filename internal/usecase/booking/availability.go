package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type CheckAvailability struct {
	repo domain.Repository
	loc  *time.Location
}

func NewCheckAvailability(repo domain.Repository, loc *time.Location) *CheckAvailability {
	return &CheckAvailability{repo: repo, loc: loc}
}

// Execute returns the instants already taken on the shop-local day of
// date. The time of day of date is ignored.
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	barberID uuid.UUID,
	date time.Time,
) ([]time.Time, error) {

	start, end := timezone.DayBounds(date, uc.loc)
	return uc.repo.ListOccupied(ctx, barberID, start, end)
}

// ======================================================
// SLOTS
// ======================================================

type ListSlots struct {
	repo domain.Repository
	loc  *time.Location
	now  clock
}

func NewListSlots(repo domain.Repository, loc *time.Location) *ListSlots {
	return &ListSlots{repo: repo, loc: loc, now: utcNow}
}

func (uc *ListSlots) Execute(
	ctx context.Context,
	barberID uuid.UUID,
	date time.Time,
) ([]domain.Slot, error) {

	if _, err := uc.repo.GetActiveBarber(ctx, barberID); err != nil {
		return nil, orBusiness(err, domain.ErrBarberNotFound)
	}

	start, end := timezone.DayBounds(date, uc.loc)

	occupied, err := uc.repo.ListOccupied(ctx, barberID, start, end)
	if err != nil {
		return nil, err
	}

	var schedule *models.BarberSchedule
	s, err := uc.repo.GetSchedule(ctx, barberID, int(start.Weekday()))
	switch {
	case err == nil:
		schedule = s
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	return domain.BuildSlots(start, uc.loc, occupied, schedule, uc.now()), nil
}
