package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/domain/report"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestGetFinance(t *testing.T) {
	repo := &MockReportRepository{}
	uc := NewGetFinance(repo, time.UTC)
	uc.now = func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) }
	barberID := uuid.New()

	march := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	repo.On("SumPaid", mock.Anything, barberID, sameMonth(march), mock.Anything).
		Return(report.PaidTotal{Total: decimal.RequireFromString("100"), Count: 3}, nil)
	repo.On("SumPaid", mock.Anything, barberID, mock.Anything, mock.Anything).
		Return(report.PaidTotal{Total: decimal.RequireFromString("10")}, nil)
	repo.On("RecentTransactions", mock.Anything, barberID, (*report.Period)(nil), 20).Return([]models.Transaction{
		{
			ID:     uuid.New(),
			Amount: decimal.RequireFromString("40"),
			Status: models.TransactionPaid,
			Booking: &models.Booking{
				Client:  models.User{Name: "Ana"},
				Service: models.Service{Name: "Corte"},
			},
		},
		{ID: uuid.New(), Amount: decimal.RequireFromString("25"), Status: models.TransactionPaid},
	}, nil)

	out, err := uc.Execute(context.Background(), barberID, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, "100", out.TotalRevenue.String())
	assert.Equal(t, "33.33", out.AverageTicket.String())

	require.Len(t, out.Chart, 7)
	assert.Equal(t, "09/03", out.Chart[0].FullDate)
	assert.Equal(t, "15/03", out.Chart[6].FullDate)
	assert.Equal(t, "dom", out.Chart[6].Name)

	require.Len(t, out.Transactions, 2)
	assert.Equal(t, "Corte", out.Transactions[0].Category)
	assert.Equal(t, "Ana", out.Transactions[0].ClientName)
	assert.Equal(t, "Serviço Avulso", out.Transactions[1].Category)
	assert.Equal(t, "Cliente não identificado", out.Transactions[1].ClientName)
}

func TestGetFinance_DateLimitsList(t *testing.T) {
	repo := &MockReportRepository{}
	uc := NewGetFinance(repo, time.UTC)
	barberID := uuid.New()
	ref := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	repo.On("SumPaid", mock.Anything, barberID, mock.Anything, mock.Anything).Return(report.PaidTotal{}, nil)
	repo.On("RecentTransactions", mock.Anything, barberID, mock.MatchedBy(func(p *report.Period) bool {
		return p != nil && p.Start.Equal(ref) && p.End.Equal(ref.Add(24*time.Hour-time.Nanosecond))
	}), 20).Return([]models.Transaction{}, nil)

	out, err := uc.Execute(context.Background(), barberID, ref)
	require.NoError(t, err)
	assert.True(t, out.AverageTicket.IsZero())
	assert.Empty(t, out.Transactions)
	repo.AssertExpectations(t)
}
