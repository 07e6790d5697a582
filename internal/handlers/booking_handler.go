package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	loc *time.Location

	create       *ucBooking.CreateBooking
	list         *ucBooking.ListBookings
	next         *ucBooking.NextBooking
	availability *ucBooking.CheckAvailability
	slots        *ucBooking.ListSlots
	approve      *ucBooking.ApproveBooking
	updateStatus *ucBooking.UpdateBookingStatus
	reschedule   *ucBooking.RescheduleBooking
	cancel       *ucBooking.CancelBooking
	checkout     *ucBooking.StartCheckout
}

type BookingUseCases struct {
	Create       *ucBooking.CreateBooking
	List         *ucBooking.ListBookings
	Next         *ucBooking.NextBooking
	Availability *ucBooking.CheckAvailability
	Slots        *ucBooking.ListSlots
	Approve      *ucBooking.ApproveBooking
	UpdateStatus *ucBooking.UpdateBookingStatus
	Reschedule   *ucBooking.RescheduleBooking
	Cancel       *ucBooking.CancelBooking
	Checkout     *ucBooking.StartCheckout
}

func NewBookingHandler(loc *time.Location, uc BookingUseCases) *BookingHandler {
	return &BookingHandler{
		loc:          loc,
		create:       uc.Create,
		list:         uc.List,
		next:         uc.Next,
		availability: uc.Availability,
		slots:        uc.Slots,
		approve:      uc.Approve,
		updateStatus: uc.UpdateStatus,
		reschedule:   uc.Reschedule,
		cancel:       uc.Cancel,
		checkout:     uc.Checkout,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	BarberID  string `json:"barberId" binding:"required,uuid"`
	ServiceID string `json:"serviceId" binding:"required,uuid"`
	Date      string `json:"date" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,booking_status"`
}

type UpdateDateRequest struct {
	Date string `json:"date" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	date, err := parseInstant(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	p := principal(c)

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		ClientID:  p.UserID,
		BarberID:  uuid.MustParse(req.BarberID),
		ServiceID: uuid.MustParse(req.ServiceID),
		Date:      date,
	})
	if err != nil {
		respondError(c, "create_booking", err)
		return
	}

	httpresp.Created(c, "Agendamento solicitado com sucesso.", dto.NewBookingDTO(b))
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	start, ok := queryDate(c, "start", h.loc)
	if !ok {
		return
	}
	end, ok := queryDate(c, "end", h.loc)
	if !ok {
		return
	}

	in := ucBooking.ListBookingsInput{Start: start, End: end}

	if raw := c.Query("customerId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_customer_id", "Cliente inválido.")
			return
		}
		in.CustomerID = &id
	}

	items, err := h.list.Execute(c.Request.Context(), principal(c), in)
	if err != nil {
		respondError(c, "list_bookings", err)
		return
	}

	httpresp.List(c, items)
}

func (h *BookingHandler) Next(c *gin.Context) {
	item, err := h.next.Execute(c.Request.Context(), principal(c).UserID)
	if err != nil {
		respondError(c, "next_booking", err)
		return
	}

	// null data is meaningful here: no upcoming booking
	c.JSON(200, gin.H{"success": true, "data": item})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) dayQuery(c *gin.Context) (uuid.UUID, time.Time, bool) {
	rawBarber := c.Query("barberId")
	rawDate := c.Query("date")
	if rawBarber == "" || rawDate == "" {
		httperr.BadRequest(c, "missing_params", "Informe barberId e date.")
		return uuid.Nil, time.Time{}, false
	}

	barberID, err := uuid.Parse(rawBarber)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return uuid.Nil, time.Time{}, false
	}

	day, err := timezone.ParseDate(rawDate, h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return uuid.Nil, time.Time{}, false
	}

	return barberID, day, true
}

func (h *BookingHandler) Availability(c *gin.Context) {
	barberID, day, ok := h.dayQuery(c)
	if !ok {
		return
	}

	occupied, err := h.availability.Execute(c.Request.Context(), barberID, day)
	if err != nil {
		respondError(c, "check_availability", err)
		return
	}

	httpresp.List(c, formatInstants(occupied))
}

func (h *BookingHandler) Slots(c *gin.Context) {
	barberID, day, ok := h.dayQuery(c)
	if !ok {
		return
	}

	slots, err := h.slots.Execute(c.Request.Context(), barberID, day)
	if err != nil {
		respondError(c, "list_slots", err)
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// MUTATIONS
// ======================================================

func (h *BookingHandler) Approve(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	b, err := h.approve.Execute(c.Request.Context(), id, principal(c).UserID)
	if err != nil {
		respondError(c, "approve_booking", err)
		return
	}

	httpresp.Message(c, "Agendamento confirmado.", dto.NewBookingDTO(b))
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	b, err := h.updateStatus.Execute(
		c.Request.Context(),
		principal(c),
		id,
		domain.Status(req.Status),
	)
	if err != nil {
		respondError(c, "update_booking_status", err)
		return
	}

	httpresp.Message(c, "Status atualizado.", dto.NewBookingDTO(b))
}

func (h *BookingHandler) UpdateDate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	date, err := parseInstant(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	b, err := h.reschedule.Execute(c.Request.Context(), principal(c), id, date)
	if err != nil {
		respondError(c, "reschedule_booking", err)
		return
	}

	httpresp.Message(c, "Agendamento reagendado.", dto.NewBookingDTO(b))
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), principal(c), id)
	if err != nil {
		respondError(c, "cancel_booking", err)
		return
	}

	httpresp.Message(c, "Agendamento cancelado.", dto.NewBookingDTO(b))
}

func (h *BookingHandler) Checkout(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	out, err := h.checkout.Execute(c.Request.Context(), principal(c), id)
	if err != nil {
		respondError(c, "start_checkout", err)
		return
	}

	httpresp.OK(c, out)
}
