package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/report"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

const (
	chartMonths    = 6
	recentBookings = 5
	topServices    = 3
)

var monthNames = [...]string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

type GetDashboard struct {
	repo report.Repository
	loc  *time.Location
	now  func() time.Time
}

func NewGetDashboard(repo report.Repository, loc *time.Location) *GetDashboard {
	return &GetDashboard{repo: repo, loc: loc, now: time.Now}
}

// Execute aggregates the barber's dashboard around ref (today when zero).
// Each figure is an independent read.
func (uc *GetDashboard) Execute(
	ctx context.Context,
	barberID uuid.UUID,
	ref time.Time,
) (*dto.DashboardDTO, error) {

	if ref.IsZero() {
		ref = uc.now()
	}

	dayStart, dayEnd := timezone.DayBounds(ref, uc.loc)
	monthStart, monthEnd := timezone.MonthBounds(ref, uc.loc)

	out := &dto.DashboardDTO{}

	paid, err := uc.repo.SumPaid(ctx, barberID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	out.MonthlyRevenue = paid.Total

	out.AppointmentsToday, err = uc.repo.CountBookings(ctx, barberID, dayStart, dayEnd, []string{
		string(booking.StatusPending),
		string(booking.StatusConfirmed),
	})
	if err != nil {
		return nil, err
	}

	out.TotalClients, err = uc.repo.CountUsersByRole(ctx, models.RoleClient)
	if err != nil {
		return nil, err
	}

	out.Chart = make([]dto.MonthPointDTO, 0, chartMonths)
	for i := chartMonths - 1; i >= 0; i-- {
		start, end := timezone.MonthBounds(monthStart.AddDate(0, -i, 0), uc.loc)

		revenue, err := uc.repo.SumPaid(ctx, barberID, start, end)
		if err != nil {
			return nil, err
		}
		done, err := uc.repo.CountBookings(ctx, barberID, start, end, []string{
			string(booking.StatusCompleted),
		})
		if err != nil {
			return nil, err
		}

		out.Chart = append(out.Chart, dto.MonthPointDTO{
			Name:     monthNames[start.Month()-1],
			Revenue:  revenue.Total,
			Services: done,
		})
	}

	recent, err := uc.repo.RecentBookings(ctx, barberID, recentBookings)
	if err != nil {
		return nil, err
	}
	out.RecentBookings = make([]dto.RecentBookingDTO, 0, len(recent))
	for _, b := range recent {
		out.RecentBookings = append(out.RecentBookings, dto.RecentBookingDTO{
			ID:     b.ID,
			Date:   b.Date.UTC(),
			Status: b.Status,
			Client: dto.PersonSummaryDTO{
				ID:     b.Client.ID,
				Name:   b.Client.Name,
				Avatar: b.Client.Avatar,
				Email:  b.Client.Email,
			},
			Service: b.Service.Name,
		})
	}

	top, err := uc.repo.TopServices(ctx, barberID, topServices)
	if err != nil {
		return nil, err
	}
	out.TopServices = make([]dto.TopServiceDTO, 0, len(top))
	for _, s := range top {
		out.TopServices = append(out.TopServices, dto.TopServiceDTO{Name: s.Name, Count: s.Count})
	}

	return out, nil
}
