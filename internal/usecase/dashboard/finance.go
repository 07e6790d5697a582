package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-booking/internal/domain/report"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

const (
	chartDays          = 7
	recentTransactions = 20
)

var weekdayNames = [...]string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"}

type GetFinance struct {
	repo report.Repository
	loc  *time.Location
	now  func() time.Time
}

func NewGetFinance(repo report.Repository, loc *time.Location) *GetFinance {
	return &GetFinance{repo: repo, loc: loc, now: time.Now}
}

// Execute builds the finance page. With a zero ref the month is the
// current one and the transaction list spans all dates; with a ref the
// list is limited to that day. The daily chart always ends today.
func (uc *GetFinance) Execute(
	ctx context.Context,
	barberID uuid.UUID,
	ref time.Time,
) (*dto.FinanceDTO, error) {

	now := uc.now()

	var listPeriod *report.Period
	if ref.IsZero() {
		ref = now
	} else {
		start, end := timezone.DayBounds(ref, uc.loc)
		listPeriod = &report.Period{Start: start, End: end}
	}

	monthStart, monthEnd := timezone.MonthBounds(ref, uc.loc)

	paid, err := uc.repo.SumPaid(ctx, barberID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	out := &dto.FinanceDTO{
		TotalRevenue:  paid.Total,
		AverageTicket: decimal.Zero,
	}
	if paid.Count > 0 {
		out.AverageTicket = paid.Total.Div(decimal.NewFromInt(paid.Count)).Round(2)
	}

	out.Chart = make([]dto.DayPointDTO, 0, chartDays)
	for i := chartDays - 1; i >= 0; i-- {
		start, end := timezone.DayBounds(now.AddDate(0, 0, -i), uc.loc)

		day, err := uc.repo.SumPaid(ctx, barberID, start, end)
		if err != nil {
			return nil, err
		}

		out.Chart = append(out.Chart, dto.DayPointDTO{
			Name:     weekdayNames[start.Weekday()],
			FullDate: start.Format("02/01"),
			Total:    day.Total,
		})
	}

	txns, err := uc.repo.RecentTransactions(ctx, barberID, listPeriod, recentTransactions)
	if err != nil {
		return nil, err
	}

	out.Transactions = make([]dto.FinanceTransactionDTO, 0, len(txns))
	for _, t := range txns {
		item := dto.FinanceTransactionDTO{
			ID:           t.ID,
			Amount:       t.Amount,
			BarberAmount: t.BarberAmount,
			ShopAmount:   t.ShopAmount,
			Category:     "Serviço Avulso",
			Status:       t.Status,
			Date:         t.CreatedAt.UTC(),
			ClientName:   "Cliente não identificado",
		}
		if t.Booking != nil {
			if t.Booking.Service.Name != "" {
				item.Category = t.Booking.Service.Name
			}
			if t.Booking.Client.Name != "" {
				item.ClientName = t.Booking.Client.Name
			}
			item.ClientAvatar = t.Booking.Client.Avatar
		}
		out.Transactions = append(out.Transactions, item)
	}

	return out, nil
}
