package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/testutil"
)

func (s *server) createBooking(at time.Time) response {
	return s.do(http.MethodPost, "/bookings", s.client, map[string]any{
		"barberId":  s.barber.ID.String(),
		"serviceId": s.service.ID.String(),
		"date":      at.UTC().Format(time.RFC3339),
	})
}

func TestCreateBooking(t *testing.T) {
	s := newServer(t)
	at := s.slotAt(3, 14, 30)

	res := s.createBooking(at)

	require.Equal(t, http.StatusCreated, res.Code, res.Body)
	assert.Equal(t, true, res.Body["success"])
	assert.Equal(t, "PENDING", res.data()["status"])
	assert.Equal(t, "Corte", res.data()["service"].(map[string]any)["name"])
	assert.Equal(t, 1, s.notifier.requested)
}

func TestCreateBooking_SlotTaken(t *testing.T) {
	s := newServer(t)
	at := s.slotAt(3, 14, 30)

	require.Equal(t, http.StatusCreated, s.createBooking(at).Code)

	res := s.createBooking(at)
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "slot_unavailable", res.errorCode())
	assert.NotEmpty(t, res.Body["message"])
}

func TestCreateBooking_PastDate(t *testing.T) {
	s := newServer(t)

	res := s.createBooking(time.Now().Add(-time.Hour))

	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "date_in_past", res.errorCode())
}

func TestCreateBooking_Validation(t *testing.T) {
	s := newServer(t)

	res := s.do(http.MethodPost, "/bookings", s.client, map[string]any{
		"serviceId": "not-a-uuid",
		"date":      time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})

	require.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "validation_error", res.errorCode())

	fields := map[string]bool{}
	for _, e := range res.Body["errors"].([]any) {
		fields[e.(map[string]any)["field"].(string)] = true
	}
	assert.True(t, fields["barberId"])
	assert.True(t, fields["serviceId"])
}

func TestCreateBooking_RequiresToken(t *testing.T) {
	s := newServer(t)

	res := s.do(http.MethodPost, "/bookings", nil, map[string]any{})

	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Equal(t, "missing_authorization_header", res.errorCode())
}

func TestAvailability(t *testing.T) {
	s := newServer(t)
	at := s.slotAt(3, 14, 30)
	testutil.CreateBooking(t, s.db, s.client, s.barber, s.service, at, "CONFIRMED")
	testutil.CreateBooking(t, s.db, s.client, s.barber, s.service, s.slotAt(3, 16, 0), "CANCELLED")

	res := s.do(http.MethodGet,
		"/bookings/availability?barberId="+s.barber.ID.String()+"&date="+at.Format("2006-01-02"),
		s.client, nil)

	require.Equal(t, http.StatusOK, res.Code, res.Body)
	assert.Equal(t, []any{at.UTC().Format("2006-01-02T15:04:05.000Z07:00")}, res.list())
}

func TestAvailability_MissingParams(t *testing.T) {
	s := newServer(t)

	res := s.do(http.MethodGet, "/bookings/availability?barberId="+s.barber.ID.String(), s.client, nil)

	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "missing_params", res.errorCode())
}

func TestSlots_MarksOccupied(t *testing.T) {
	s := newServer(t)
	at := s.slotAt(3, 14, 30)
	testutil.CreateBooking(t, s.db, s.client, s.barber, s.service, at, "PENDING")

	res := s.do(http.MethodGet,
		"/bookings/slots?barberId="+s.barber.ID.String()+"&date="+at.Format("2006-01-02"),
		s.client, nil)

	require.Equal(t, http.StatusOK, res.Code, res.Body)
	require.Len(t, res.list(), 13)
	for _, raw := range res.list() {
		slot := raw.(map[string]any)
		assert.Equal(t, slot["time"] != "14:30", slot["available"], slot["time"])
	}
}

func TestApprove_BarberOnly(t *testing.T) {
	s := newServer(t)
	b := testutil.CreateBooking(t, s.db, s.client, s.barber, s.service, s.slotAt(3, 9, 0), "PENDING")

	res := s.do(http.MethodPatch, "/bookings/"+b.ID.String()+"/approve", s.client, nil)
	assert.Equal(t, http.StatusForbidden, res.Code)

	res = s.do(http.MethodPatch, "/bookings/"+b.ID.String()+"/approve", s.barber, nil)
	require.Equal(t, http.StatusOK, res.Code, res.Body)
	assert.Equal(t, "CONFIRMED", res.data()["status"])
	assert.Equal(t, 1, s.notifier.confirmed)
}

func TestApprove_TwiceSendsOneConfirmation(t *testing.T) {
	s := newServer(t)
	b := testutil.CreateBooking(t, s.db, s.client, s.barber, s.service, s.slotAt(3, 9, 0), "PENDING")
	path := "/bookings/" + b.ID.String() + "/approve"

	for i := 0; i < 2; i++ {
		res := s.do(http.MethodPatch, path, s.barber, nil)
		require.Equal(t, http.StatusOK, res.Code, res.Body)
		assert.Equal(t, "CONFIRMED", res.data()["status"])
	}

	assert.Equal(t, 1, s.notifier.confirmed)
}

func TestApprove_OtherBarber(t *testing.T) {
	s := newServer(t)
	other := testutil.CreateBarber(t, s.db, "Carlos Barber")
	b := testutil.CreateBooking(t, s.db, s.client, s.barber, s.service, s.slotAt(3, 9, 0), "PENDING")

	res := s.do(http.MethodPatch, "/bookings/"+b.ID.String()+"/approve", other, nil)

	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "not_authorized", res.errorCode())
}

func TestUpdateStatus_InvalidEnum(t *testing.T) {
	s := newServer(t)
	b := testutil.CreateBooking(t, s.db, s.client, s.barber, s.service, s.slotAt(3, 9, 0), "PENDING")

	res := s.do(http.MethodPatch, "/bookings/"+b.ID.String()+"/status", s.barber, map[string]any{
		"status": "DONE",
	})

	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "validation_error", res.errorCode())
}

func TestUpdateStatus_CompleteCreatesOneTransaction(t *testing.T) {
	s := newServer(t)
	b := testutil.CreateBooking(t, s.db, s.client, s.barber, s.service, s.slotAt(3, 9, 0), "CONFIRMED")
	path := "/bookings/" + b.ID.String() + "/status"

	for i := 0; i < 2; i++ {
		res := s.do(http.MethodPatch, path, s.barber, map[string]any{"status": "COMPLETED"})
		require.Equal(t, http.StatusOK, res.Code, res.Body)
	}

	var txns []models.Transaction
	require.NoError(t, s.db.Where("booking_id = ?", b.ID).Find(&txns).Error)
	require.Len(t, txns, 1)
	assert.True(t, txns[0].BarberAmount.Equal(decimal.RequireFromString("16.00")), txns[0].BarberAmount.String())
	assert.True(t, txns[0].ShopAmount.Equal(decimal.RequireFromString("24.00")), txns[0].ShopAmount.String())
}

func TestUpdateStatus_IllegalTransition(t *testing.T) {
	s := newServer(t)
	b := testutil.CreateBooking(t, s.db, s.client, s.barber, s.service, s.slotAt(3, 9, 0), "PENDING")

	res := s.do(http.MethodPatch, "/bookings/"+b.ID.String()+"/status", s.barber, map[string]any{
		"status": "COMPLETED",
	})

	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "invalid_status_transition", res.errorCode())
}

func TestUpdateDate_Conflict(t *testing.T) {
	s := newServer(t)
	first := testutil.CreateBooking(t, s.db, s.client, s.barber, s.service, s.slotAt(3, 9, 0), "PENDING")
	taken := s.slotAt(3, 9, 45)
	testutil.CreateBooking(t, s.db, s.client, s.barber, s.service, taken, "CONFIRMED")

	path := "/bookings/" + first.ID.String() + "/date"

	res := s.do(http.MethodPatch, path, s.client, map[string]any{"date": taken.UTC().Format(time.RFC3339)})
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "slot_unavailable", res.errorCode())

	res = s.do(http.MethodPatch, path, s.client, map[string]any{"date": "amanhã"})
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "invalid_date", res.errorCode())

	free := s.slotAt(4, 10, 30)
	res = s.do(http.MethodPatch, path, s.client, map[string]any{"date": free.UTC().Format(time.RFC3339)})
	require.Equal(t, http.StatusOK, res.Code, res.Body)
	assert.Equal(t, "PENDING", res.data()["status"])
}

func TestCancel_Twice(t *testing.T) {
	s := newServer(t)
	b := testutil.CreateBooking(t, s.db, s.client, s.barber, s.service, s.slotAt(3, 9, 0), "PENDING")
	path := "/bookings/" + b.ID.String() + "/cancel"

	res := s.do(http.MethodPatch, path, s.client, nil)
	require.Equal(t, http.StatusOK, res.Code, res.Body)
	assert.Equal(t, "CANCELLED", res.data()["status"])

	res = s.do(http.MethodPatch, path, s.client, nil)
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "already_cancelled", res.errorCode())
}

func TestCancel_OtherClient(t *testing.T) {
	s := newServer(t)
	intruder := testutil.CreateClient(t, s.db, "Eva Client")
	b := testutil.CreateBooking(t, s.db, s.client, s.barber, s.service, s.slotAt(3, 9, 0), "PENDING")

	res := s.do(http.MethodPatch, "/bookings/"+b.ID.String()+"/cancel", intruder, nil)

	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "not_authorized", res.errorCode())
}

func TestListBookings_ClientSeesOwn(t *testing.T) {
	s := newServer(t)
	other := testutil.CreateClient(t, s.db, "Eva Client")
	testutil.CreateBooking(t, s.db, s.client, s.barber, s.service, s.slotAt(3, 9, 0), "PENDING")
	testutil.CreateBooking(t, s.db, other, s.barber, s.service, s.slotAt(3, 9, 45), "PENDING")

	res := s.do(http.MethodGet, "/bookings", s.client, nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Len(t, res.list(), 1)
	assert.EqualValues(t, 1, res.Body["total"])

	res = s.do(http.MethodGet, "/bookings", s.barber, nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Len(t, res.list(), 2)

	res = s.do(http.MethodGet, "/bookings?customerId="+other.ID.String(), s.barber, nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Len(t, res.list(), 1)
}

func TestNextBooking_NullWhenNone(t *testing.T) {
	s := newServer(t)

	res := s.do(http.MethodGet, "/bookings/me", s.client, nil)

	require.Equal(t, http.StatusOK, res.Code)
	data, present := res.Body["data"]
	assert.True(t, present)
	assert.Nil(t, data)
}

func TestCheckout_DisabledWithoutGateway(t *testing.T) {
	s := newServer(t)
	b := testutil.CreateBooking(t, s.db, s.client, s.barber, s.service, s.slotAt(3, 9, 0), "CONFIRMED")

	res := s.do(http.MethodPost, "/bookings/"+b.ID.String()+"/checkout", s.client, nil)

	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "checkout_unavailable", res.errorCode())
}
