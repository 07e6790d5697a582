package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/routes"
	"github.com/BruksfildServices01/barber-booking/internal/testutil"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

type countingNotifier struct {
	mu        sync.Mutex
	requested int
	confirmed int
}

func (n *countingNotifier) BookingRequested(b *models.Booking) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.requested++
}

func (n *countingNotifier) BookingConfirmed(b *models.Booking) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.confirmed++
}

type server struct {
	t        *testing.T
	db       *gorm.DB
	cfg      *config.Config
	loc      *time.Location
	router   *gin.Engine
	notifier *countingNotifier

	client  *models.User
	barber  *models.User
	service *models.Service
}

func newServer(t *testing.T, opts ...func(*routes.Deps)) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validators.Register())

	gdb := testutil.NewDB(t)
	cfg := &config.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}
	loc := timezone.Location("America/Sao_Paulo")

	dispatcher := audit.NewDispatcher(audit.New(gdb))
	t.Cleanup(dispatcher.Close)

	s := &server{
		t:        t,
		db:       gdb,
		cfg:      cfg,
		loc:      loc,
		router:   gin.New(),
		notifier: &countingNotifier{},
		client:   testutil.CreateClient(t, gdb, "Ana Client"),
		barber:   testutil.CreateBarber(t, gdb, "Bruno Barber"),
		service:  testutil.CreateService(t, gdb, "Corte", "40.00"),
	}

	deps := routes.Deps{
		DB:       gdb,
		Config:   cfg,
		Location: loc,
		Notifier: s.notifier,
		Audit:    dispatcher,
		AuditLog: audit.New(gdb),
	}
	for _, opt := range opts {
		opt(&deps)
	}
	routes.RegisterRoutes(s.router, deps)

	return s
}

func (s *server) token(u *models.User) string {
	s.t.Helper()

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  u.ID.String(),
		"role": u.Role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(s.cfg.JWTSecret))
	require.NoError(s.t, err)
	return tok
}

type response struct {
	Code int
	Body map[string]any
}

func (r response) errorCode() string {
	code, _ := r.Body["error_code"].(string)
	return code
}

func (r response) data() map[string]any {
	d, _ := r.Body["data"].(map[string]any)
	return d
}

func (r response) list() []any {
	d, _ := r.Body["data"].([]any)
	return d
}

// do sends body as JSON. A nil user sends no Authorization header.
func (s *server) do(method, path string, as *models.User, body any) response {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if as != nil {
		req.Header.Set("Authorization", "Bearer "+s.token(as))
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	out := response{Code: w.Code, Body: map[string]any{}}
	if w.Body.Len() > 0 {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &out.Body), w.Body.String())
	}
	return out
}

// slotAt is a future instant at hh:mm shop time, days from today.
func (s *server) slotAt(days, hh, mm int) time.Time {
	d := time.Now().In(s.loc).AddDate(0, 0, days)
	return time.Date(d.Year(), d.Month(), d.Day(), hh, mm, 0, 0, s.loc)
}
