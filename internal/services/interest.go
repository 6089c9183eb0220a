package services

import "github.com/shopspring/decimal"

var (
	hundred       = decimal.NewFromInt(100)
	monthsPerYear = decimal.NewFromInt(12)
	balancePlaces = int32(8)
)

// Estimate - simple interest for display only: amount × rate/100 × months/12,
// rounded to the 8 fractional digits the balances use. The backend owns the
// authoritative computation.
func Estimate(amount decimal.Decimal, annualRatePercent decimal.Decimal, months int) decimal.Decimal {
	years := decimal.NewFromInt(int64(months)).Div(monthsPerYear)
	return amount.Mul(annualRatePercent).Div(hundred).Mul(years).Round(balancePlaces)
}
