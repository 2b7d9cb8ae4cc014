package internal

import (
	"fmt"
	"math"

	"propertyroi/internal/calculator"
	"propertyroi/internal/domain"
)

// ValueAt is the compounded value of the down payment yearOffset years
// after purchase. Offset zero returns the down payment itself.
func ValueAt(in domain.InvestmentInputs, yearOffset int) float64 {
	return Grow(in.DownPayment, in.BenchmarkReturnRate, yearOffset)
}

// RunBenchmark projects the alternative deployment: the down payment
// invested at the benchmark rate and left to compound. Each row also
// carries the renter's ledger (cumulative rent paid out of pocket, net
// position) so the comparison against buying is visible year by year.
func RunBenchmark(in domain.InvestmentInputs) (*domain.BenchmarkResult, error) {
	horizon := in.HorizonYears()
	if horizon <= 0 {
		return nil, domain.InvalidInputError{Violations: []string{"sale year must be after purchase year"}}
	}

	years := make([]domain.BenchmarkYear, 0, horizon+1)
	cumulativeRent := 0.0
	for y := 0; y <= horizon; y++ {
		if y > 0 {
			cumulativeRent += 12 * in.BenchmarkMonthlyRent * math.Pow(1+in.InflationRate, float64(y-1))
		}
		value := ValueAt(in, y)
		years = append(years, domain.BenchmarkYear{
			Year:           y,
			Value:          value,
			CumulativeRent: cumulativeRent,
			NetOfRent:      value - cumulativeRent,
		})
	}

	final := ValueAt(in, horizon)
	flows := []domain.Cashflow{
		{Period: 0, Amount: -in.DownPayment},
		{Period: horizon, Amount: final},
	}

	npv, err := calculator.NPV(in.DiscountRate, flows)
	if err != nil {
		return nil, fmt.Errorf("failed to compute benchmark npv: %w", err)
	}

	metrics := domain.Metrics{
		NPV:            npv,
		FinalNetWealth: final,
	}
	if in.DownPayment > 0 {
		metrics.CapitalMultiple = final / in.DownPayment
	}
	if irr, err := calculator.IRR(flows); err == nil {
		metrics.IRR = &irr
	} else if !calculator.Indeterminate(err) {
		return nil, fmt.Errorf("failed to compute benchmark irr: %w", err)
	}

	return &domain.BenchmarkResult{
		Years:     years,
		Cashflows: flows,
		ValueWithRentWithdrawals: FutureValueWithMonthlyWithdrawals(
			in.DownPayment,
			in.BenchmarkReturnRate,
			math.Max(0, in.BenchmarkMonthlyRent),
			horizon*monthsPerYear,
			in.InflationRate,
		),
		Metrics: metrics,
	}, nil
}

// monthlyRateFromAnnual converts a nominal annual rate to the effective
// monthly rate under compounding: (1+r)^(1/12) - 1.
func monthlyRateFromAnnual(annualRate float64) float64 {
	if annualRate <= -1 {
		return 0
	}
	return math.Pow(1+annualRate, 1.0/12.0) - 1
}

// FutureValueWithMonthlyWithdrawals compounds the principal monthly while
// withdrawing a payment each month, the payment itself growing at the
// monthly equivalent of withdrawalGrowthAnnual (e.g. inflation). Models
// paying rent out of the invested capital instead of out of pocket.
func FutureValueWithMonthlyWithdrawals(
	principal float64,
	annualRate float64,
	monthlyWithdrawal float64,
	months int,
	withdrawalGrowthAnnual float64,
) float64 {
	if months <= 0 {
		return principal
	}

	rm := monthlyRateFromAnnual(annualRate)
	gm := monthlyRateFromAnnual(withdrawalGrowthAnnual)

	value := principal
	withdrawal := monthlyWithdrawal
	for m := 0; m < months; m++ {
		value = value*(1+rm) - withdrawal
		withdrawal *= 1 + gm
	}

	return value
}
