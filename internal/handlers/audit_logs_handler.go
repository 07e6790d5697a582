package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
	loc  *time.Location
}

func NewAuditLogsHandler(logs *audit.Logger, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, loc: loc}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	f := audit.ListFilter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	// invalid dates are ignored, not rejected
	if raw := c.Query("from"); raw != "" {
		if from, err := timezone.ParseDate(raw, h.loc); err == nil {
			f.From = &from
		}
	}
	if raw := c.Query("to"); raw != "" {
		if to, err := timezone.ParseDate(raw, h.loc); err == nil {
			_, end := timezone.DayBounds(to, h.loc)
			f.To = &end
		}
	}

	logs, total, err := h.logs.List(c.Request.Context(), principal(c).UserID, f)
	if err != nil {
		respondError(c, "list_audit_logs", err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"data": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
			"logs":  logs,
		},
	})
}
