package booking

import "github.com/shopspring/decimal"

var (
	barberShare = decimal.RequireFromString("0.4")
	shopShare   = decimal.RequireFromString("0.6")
)

// SplitRevenue returns the barber and shop parts of amount. Each part is
// rounded to cents on its own, so their sum may be one cent off amount.
func SplitRevenue(amount decimal.Decimal) (barber, shop decimal.Decimal) {
	return amount.Mul(barberShare).Round(2), amount.Mul(shopShare).Round(2)
}
