package httperr

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors flattens validator errors into one message per field.
// Non-validation errors (malformed JSON, wrong types) become a single "body" entry.
func FieldErrors(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []FieldError{{Field: "body", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(ve))
	for _, fe := range ve {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "email":
		return "e-mail inválido"
	case "uuid":
		return "identificador inválido"
	case "min":
		return fmt.Sprintf("deve ser no mínimo %s", fe.Param())
	case "max":
		return fmt.Sprintf("deve ser no máximo %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("deve ser um de [%s]", fe.Param())
	case "booking_status":
		return "deve ser PENDING, CONFIRMED, CANCELLED, COMPLETED ou NO_SHOW"
	case "hhmm":
		return "horário no formato HH:MM"
	default:
		return fmt.Sprintf("valor inválido (%s)", fe.Tag())
	}
}
