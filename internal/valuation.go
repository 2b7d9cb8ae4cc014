package internal

import (
	"math"

	"propertyroi/internal/domain"
)

// Grow compounds a value at an annual rate over whole years. Zero or
// negative years return the value unchanged.
func Grow(value, annualRate float64, years int) float64 {
	if years <= 0 {
		return value
	}
	return value * math.Pow(1+annualRate, float64(years))
}

// SaleProceeds prices a sale at the end of yearsHeld: appreciated price,
// minus selling fees, outstanding debt, capital gains tax on the positive
// part of the gain (losses are never taxed or rebated), and the early
// repayment penalty when enabled. The net can be negative; negative equity
// is a valid outcome.
func SaleProceeds(in domain.InvestmentInputs, annual []domain.AnnualScheduleEntry, yearsHeld int) domain.SaleBreakdown {
	salePrice := Grow(in.Price, in.PriceGrowthRate, yearsHeld)
	sellingFees := salePrice * in.SellingFeesRate
	remaining := BalanceAtYear(annual, yearsHeld)

	gain := math.Max(0, salePrice-in.Price)
	capitalGainsTax := gain * in.CapitalGainsRate

	// six months of interest, capped at 3% of the outstanding balance
	penalty := 0.0
	if in.IncludeEarlyRepaymentPenalty && remaining > 0 {
		penalty = math.Min(0.5*in.LoanRate*remaining, 0.03*remaining)
	}

	return domain.SaleBreakdown{
		SalePrice:             salePrice,
		SellingFees:           sellingFees,
		RemainingDebt:         remaining,
		CapitalGainsTax:       capitalGainsTax,
		EarlyRepaymentPenalty: penalty,
		NetProceeds:           salePrice - sellingFees - remaining - capitalGainsTax - penalty,
	}
}
