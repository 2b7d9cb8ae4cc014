package internal

import (
	"math"

	"propertyroi/internal/domain"
)

const monthsPerYear = 12

// MonthlyPayment is the closed-form constant payment of a fully amortizing
// loan. Returns zero for degenerate inputs so callers can display it
// without pre-checking.
func MonthlyPayment(principal, annualRate float64, years int) float64 {
	if principal <= 0 || years <= 0 {
		return 0
	}
	n := float64(years * monthsPerYear)
	i := annualRate / monthsPerYear
	if i == 0 {
		return principal / n
	}
	compounded := math.Pow(1+i, n)
	return principal * i * compounded / (compounded - 1)
}

// BuildSchedule produces the month-by-month decomposition of the loan
// payment into interest and principal. The final month absorbs the
// floating-point residue so the balance lands on exactly zero. A zero
// principal yields an empty schedule, not an error.
func BuildSchedule(principal, annualRate float64, years int) ([]domain.ScheduleEntry, error) {
	if principal == 0 {
		return []domain.ScheduleEntry{}, nil
	}

	violations := []string{}
	if principal < 0 {
		violations = append(violations, "principal cannot be negative")
	}
	if annualRate < 0 {
		violations = append(violations, "loan rate cannot be negative")
	}
	if years <= 0 {
		violations = append(violations, "loan years must be positive")
	}
	if len(violations) > 0 {
		return nil, domain.InvalidInputError{Violations: violations}
	}

	n := years * monthsPerYear
	i := annualRate / monthsPerYear
	payment := MonthlyPayment(principal, annualRate, years)

	schedule := make([]domain.ScheduleEntry, 0, n)
	balance := principal
	for m := 1; m <= n; m++ {
		interest := balance * i
		principalPaid := payment - interest
		if principalPaid < 0 {
			principalPaid = 0
		}
		balance -= principalPaid

		rowPayment := payment
		if m == n {
			// fold the residue into the last principal portion
			principalPaid += balance
			rowPayment = interest + principalPaid
			balance = 0
		}

		schedule = append(schedule, domain.ScheduleEntry{
			Month:     m,
			Payment:   rowPayment,
			Interest:  interest,
			Principal: principalPaid,
			Balance:   balance,
		})
	}

	return schedule, nil
}

// AggregateAnnual folds the monthly schedule into years, twelve rows per
// group with the remainder in the last. Derived from the monthly schedule
// alone, so it can always be recomputed.
func AggregateAnnual(schedule []domain.ScheduleEntry) []domain.AnnualScheduleEntry {
	annual := []domain.AnnualScheduleEntry{}
	for start := 0; start < len(schedule); start += monthsPerYear {
		end := start + monthsPerYear
		if end > len(schedule) {
			end = len(schedule)
		}

		entry := domain.AnnualScheduleEntry{Year: start/monthsPerYear + 1}
		for _, row := range schedule[start:end] {
			entry.Payment += row.Payment
			entry.Interest += row.Interest
			entry.Principal += row.Principal
		}
		entry.EndBalance = schedule[end-1].Balance

		annual = append(annual, entry)
	}
	return annual
}

// BalanceAtYear is the outstanding balance after the given number of whole
// years, zero once the loan has amortized or when there never was one.
func BalanceAtYear(annual []domain.AnnualScheduleEntry, year int) float64 {
	if year < 1 || year > len(annual) {
		return 0
	}
	return annual[year-1].EndBalance
}
