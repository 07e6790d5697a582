package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucDashboard "github.com/BruksfildServices01/barber-booking/internal/usecase/dashboard"
)

type DashboardHandler struct {
	loc       *time.Location
	dashboard *ucDashboard.GetDashboard
	finance   *ucDashboard.GetFinance
}

func NewDashboardHandler(
	loc *time.Location,
	dashboard *ucDashboard.GetDashboard,
	finance *ucDashboard.GetFinance,
) *DashboardHandler {
	return &DashboardHandler{loc: loc, dashboard: dashboard, finance: finance}
}

// refDate is ?date in the shop location, or zero for "today".
func (h *DashboardHandler) refDate(c *gin.Context) (time.Time, bool) {
	d, ok := queryDate(c, "date", h.loc)
	if !ok || d == nil {
		return time.Time{}, ok
	}
	return *d, true
}

func (h *DashboardHandler) Dashboard(c *gin.Context) {
	ref, ok := h.refDate(c)
	if !ok {
		return
	}

	out, err := h.dashboard.Execute(c.Request.Context(), principal(c).UserID, ref)
	if err != nil {
		respondError(c, "dashboard", err)
		return
	}

	httpresp.OK(c, out)
}

func (h *DashboardHandler) Finance(c *gin.Context) {
	ref, ok := h.refDate(c)
	if !ok {
		return
	}

	out, err := h.finance.Execute(c.Request.Context(), principal(c).UserID, ref)
	if err != nil {
		respondError(c, "finance", err)
		return
	}

	httpresp.OK(c, out)
}
