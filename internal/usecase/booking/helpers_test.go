package booking

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/testutil"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) BookingRequested(b *models.Booking) {
	m.Called(b)
}

func (m *MockNotifier) BookingConfirmed(b *models.Booking) {
	m.Called(b)
}

type recordingAudit struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recordingAudit) Dispatch(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recordingAudit) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Action)
	}
	return out
}

var fixedNow = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type env struct {
	db       *gorm.DB
	repo     *repository.BookingGormRepository
	notifier *MockNotifier
	audit    *recordingAudit

	client  *models.User
	barber  *models.User
	service *models.Service

	clientP domain.Principal
	barberP domain.Principal
}

func newEnv(t *testing.T) *env {
	gdb := testutil.NewDB(t)

	e := &env{
		db:       gdb,
		repo:     repository.NewBookingGormRepository(gdb),
		notifier: &MockNotifier{},
		audit:    &recordingAudit{},
		client:   testutil.CreateClient(t, gdb, "Ana Client"),
		barber:   testutil.CreateBarber(t, gdb, "Bruno Barber"),
		service:  testutil.CreateService(t, gdb, "Corte", "40.00"),
	}
	e.clientP = domain.Principal{UserID: e.client.ID, Role: models.RoleClient}
	e.barberP = domain.Principal{UserID: e.barber.ID, Role: models.RoleBarber}

	e.notifier.On("BookingRequested", mock.Anything).Return()
	e.notifier.On("BookingConfirmed", mock.Anything).Return()

	return e
}

func (e *env) booking(t *testing.T, at time.Time, status domain.Status) *models.Booking {
	return testutil.CreateBooking(t, e.db, e.client, e.barber, e.service, at, string(status))
}

func (e *env) status(t *testing.T, b *models.Booking) string {
	var got models.Booking
	if err := e.db.First(&got, "id = ?", b.ID).Error; err != nil {
		t.Fatalf("reload booking: %v", err)
	}
	return got.Status
}
