package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type fakeMailer struct {
	mu   sync.Mutex
	sent []Message
	err  error
}

func (f *fakeMailer) Send(ctx context.Context, msg Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sent = append(f.sent, msg)
	return f.err
}

func booking() *models.Booking {
	return &models.Booking{
		Date:    time.Date(2026, 8, 3, 13, 30, 0, 0, time.UTC),
		Client:  models.User{Name: "Ana", Email: "ana@example.com"},
		Barber:  models.User{Name: "Bruno", Email: "bruno@example.com"},
		Service: models.Service{Name: "Corte"},
	}
}

func TestNotifier_BookingRequested(t *testing.T) {
	mailer := &fakeMailer{}
	n := NewNotifier(mailer, timezone.Location("America/Sao_Paulo"), "http://app/dashboard")

	n.BookingRequested(booking())
	n.Close()

	require.Len(t, mailer.sent, 2)

	client := mailer.sent[0]
	assert.Equal(t, "ana@example.com", client.To)
	assert.Equal(t, subjectPending, client.Subject)
	assert.Contains(t, client.HTML, "03/08/2026 10:30")
	assert.Contains(t, client.HTML, "Corte")

	barber := mailer.sent[1]
	assert.Equal(t, "bruno@example.com", barber.To)
	assert.Contains(t, barber.HTML, "Ana")
	assert.Contains(t, barber.HTML, "http://app/dashboard")
}

func TestNotifier_EscapesNames(t *testing.T) {
	mailer := &fakeMailer{}
	n := NewNotifier(mailer, time.UTC, "")

	b := booking()
	b.Client.Name = "<script>x</script>"
	n.BookingConfirmed(b)
	n.Close()

	require.Len(t, mailer.sent, 1)
	assert.NotContains(t, mailer.sent[0].HTML, "<script>")
}

func TestNotifier_SkipsMissingEmail(t *testing.T) {
	mailer := &fakeMailer{}
	n := NewNotifier(mailer, time.UTC, "")

	b := booking()
	b.Client.Email = ""
	n.Reminder(b)
	n.Close()

	assert.Empty(t, mailer.sent)
}

func TestNotifier_SendFailureIsSwallowed(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp down")}
	n := NewNotifier(mailer, time.UTC, "")

	n.BookingConfirmed(booking())
	n.Reminder(booking())
	n.Close()

	assert.Len(t, mailer.sent, 2)
}
