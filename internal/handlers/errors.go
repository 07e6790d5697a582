package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

var businessMessages = map[string]string{
	domain.ErrDateInPast:              "Não é possível agendar em uma data passada.",
	domain.ErrBarberNotFound:          "Barbeiro não encontrado ou inativo.",
	domain.ErrServiceNotFound:         "Serviço não encontrado ou inativo.",
	domain.ErrSlotUnavailable:         "Horário indisponível para este barbeiro.",
	domain.ErrBookingNotFound:         "Agendamento não encontrado.",
	domain.ErrNotAuthorized:           "Você não tem permissão para alterar este agendamento.",
	domain.ErrAlreadyCancelled:        "Este agendamento já foi cancelado.",
	domain.ErrCannotCancelPast:        "Não é possível cancelar um agendamento passado.",
	domain.ErrInvalidStatusTransition: "Mudança de status não permitida.",
	domain.ErrInvalidStatus:           "Status inválido.",
	domain.ErrCheckoutUnavailable:     "Pagamento online indisponível para este agendamento.",
}

// respondError maps business errors to 400 and everything else to 500.
func respondError(c *gin.Context, op string, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		msg, known := businessMessages[code]
		if !known {
			msg = "Operação não permitida."
		}
		httperr.BadRequest(c, code, msg)
		return
	}

	log.Printf("[%s] %v", op, err)
	httperr.Internal(c, "internal_error", "Erro interno do servidor.")
}
