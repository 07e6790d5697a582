package booking

import "github.com/BruksfildServices01/barber-booking/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
	StatusNoShow    Status = "NO_SHOW"
)

// transitions lists the legal next states. Terminal states have none.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
	StatusCancelled: nil,
	StatusCompleted: nil,
	StatusNoShow:    nil,
}

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) IsTerminal() bool {
	return s.IsValid() && len(transitions[s]) == 0
}

func ParseStatus(v string) (Status, error) {
	s := Status(v)
	if !s.IsValid() {
		return "", httperr.ErrBusiness(ErrInvalidStatus)
	}
	return s, nil
}

// CanTransition validates current -> next. Writing the current status
// again is accepted as a no-op.
func CanTransition(current, next Status) error {
	if !next.IsValid() {
		return httperr.ErrBusiness(ErrInvalidStatus)
	}
	if current == next {
		return nil
	}
	for _, allowed := range transitions[current] {
		if allowed == next {
			return nil
		}
	}
	return httperr.ErrBusiness(ErrInvalidStatusTransition)
}

func InitialStatus() Status {
	return StatusPending
}
