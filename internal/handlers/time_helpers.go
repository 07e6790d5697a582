package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

func principal(c *gin.Context) domain.Principal {
	return domain.Principal{
		UserID: c.MustGet(middleware.ContextUserID).(uuid.UUID),
		Role:   c.GetString(middleware.ContextUserRole),
	}
}

// pathID parses :id and writes a 400 when it is not a uuid.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return uuid.Nil, false
	}
	return id, true
}

// queryDate reads an optional date query parameter in the shop location.
// A missing parameter yields nil.
func queryDate(c *gin.Context, key string, loc *time.Location) (*time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	d, err := timezone.ParseDate(raw, loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return nil, false
	}
	return &d, true
}

func parseInstant(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

func formatInstants(ts []time.Time) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.UTC().Format(isoMillis))
	}
	return out
}
