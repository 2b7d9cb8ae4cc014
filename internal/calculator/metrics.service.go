package calculator

import (
	"errors"
	"fmt"
	"math"

	"propertyroi/internal/domain"
)

const (
	irrBracketLow  = -0.99
	irrBracketHigh = 10.0

	// bisection stops once the bracket is this narrow, or the midpoint
	// NPV is within npvTolerance currency units of zero
	bracketTolerance = 1e-6
	npvTolerance     = 1e-2
	maxIterations    = 200
)

// IrrUndefinedError means the cashflow admits no internal rate: the flows
// never change sign, or no root lies inside the search bracket.
type IrrUndefinedError struct {
	Reason string
}

func (e IrrUndefinedError) Error() string {
	return "irr undefined: " + e.Reason
}

// NoConvergenceError means bisection exhausted its iteration budget.
type NoConvergenceError struct {
	Iterations int
}

func (e NoConvergenceError) Error() string {
	return fmt.Sprintf("irr did not converge after %d iterations", e.Iterations)
}

// Indeterminate reports whether err is one of the IRR outcomes that leave
// the metric undefined without failing the surrounding run.
func Indeterminate(err error) bool {
	var undefined IrrUndefinedError
	var budget NoConvergenceError
	return errors.As(err, &undefined) || errors.As(err, &budget)
}

// NPV discounts the flows at the given rate: sum of amount/(1+rate)^period.
// Defined for any rate above -1.
func NPV(rate float64, flows []domain.Cashflow) (float64, error) {
	if rate <= -1 {
		return 0, domain.InvalidInputError{Violations: []string{"discount rate must be greater than -100"}}
	}
	return npvAt(rate, flows), nil
}

func npvAt(rate float64, flows []domain.Cashflow) float64 {
	total := 0.0
	for _, flow := range flows {
		total += flow.Amount / math.Pow(1+rate, float64(flow.Period))
	}
	return total
}

// IRR finds the rate where the flows' NPV crosses zero, by bisection over
// a fixed bracket. When the NPV is non-monotonic (multiple sign changes)
// the root bisection lands on from the full-interval bracket is the
// answer; enumerating all roots is out of scope.
func IRR(flows []domain.Cashflow) (float64, error) {
	hasNegative := false
	hasPositive := false
	for _, flow := range flows {
		if flow.Amount < 0 {
			hasNegative = true
		}
		if flow.Amount > 0 {
			hasPositive = true
		}
	}
	if !hasNegative || !hasPositive {
		return 0, IrrUndefinedError{Reason: "cashflows are one-signed"}
	}

	low, high := irrBracketLow, irrBracketHigh
	fLow := npvAt(low, flows)
	fHigh := npvAt(high, flows)
	if fLow*fHigh > 0 {
		return 0, IrrUndefinedError{Reason: "npv does not change sign inside the search bracket"}
	}

	for iter := 0; iter < maxIterations; iter++ {
		mid := (low + high) / 2
		fMid := npvAt(mid, flows)
		if math.Abs(fMid) < npvTolerance || high-low < bracketTolerance {
			return mid, nil
		}
		if fLow*fMid <= 0 {
			high = mid
		} else {
			low = mid
			fLow = fMid
		}
	}

	return 0, NoConvergenceError{Iterations: maxIterations}
}
