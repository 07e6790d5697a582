package booking

// Business error codes raised by the booking engine.
const (
	ErrDateInPast              = "date_in_past"
	ErrBarberNotFound          = "barber_not_found"
	ErrServiceNotFound         = "service_not_found"
	ErrSlotUnavailable         = "slot_unavailable"
	ErrBookingNotFound         = "booking_not_found"
	ErrNotAuthorized           = "not_authorized"
	ErrAlreadyCancelled        = "already_cancelled"
	ErrCannotCancelPast        = "cannot_cancel_past_booking"
	ErrInvalidStatusTransition = "invalid_status_transition"
	ErrInvalidStatus           = "invalid_status"
	ErrCheckoutUnavailable     = "checkout_unavailable"
)
