package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func newReschedule(e *env) *RescheduleBooking {
	uc := NewRescheduleBooking(e.repo, e.audit)
	uc.now = fixedClock
	return uc
}

func TestReschedule_ResetsToPending(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	b := e.booking(t, fixedNow.Add(time.Hour), domain.StatusConfirmed)
	target := fixedNow.Add(26 * time.Hour)

	got, err := newReschedule(e).Execute(ctx, e.clientP, b.ID, target)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), got.Status)

	var stored models.Booking
	require.NoError(t, e.db.First(&stored, "id = ?", b.ID).Error)
	assert.True(t, target.Equal(stored.Date))
	assert.Equal(t, string(domain.StatusPending), stored.Status)
}

func TestReschedule_Conflicts(t *testing.T) {
	e := newEnv(t)
	uc := newReschedule(e)
	ctx := context.Background()

	a := e.booking(t, fixedNow.Add(time.Hour), domain.StatusPending)
	x := e.booking(t, fixedNow.Add(2*time.Hour), domain.StatusConfirmed)

	_, err := uc.Execute(ctx, e.clientP, x.ID, a.Date)
	assert.True(t, httperr.IsBusiness(err, domain.ErrSlotUnavailable))
	assert.Equal(t, string(domain.StatusConfirmed), e.status(t, x))

	// Its own slot is not a conflict.
	_, err = uc.Execute(ctx, e.clientP, x.ID, x.Date)
	assert.NoError(t, err)

	_, err = uc.Execute(ctx, e.clientP, x.ID, fixedNow.Add(-time.Hour))
	assert.True(t, httperr.IsBusiness(err, domain.ErrDateInPast))
}

func TestReschedule_OntoCancelledSlot(t *testing.T) {
	e := newEnv(t)

	cancelled := e.booking(t, fixedNow.Add(time.Hour), domain.StatusCancelled)
	x := e.booking(t, fixedNow.Add(2*time.Hour), domain.StatusPending)

	_, err := newReschedule(e).Execute(context.Background(), e.barberP, x.ID, cancelled.Date)
	assert.NoError(t, err)
}
