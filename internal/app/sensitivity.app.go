package app

import (
	"fmt"
	"math"

	"propertyroi/internal"
	"propertyroi/internal/domain"

	"github.com/montanaflynn/stats"
)

// Axis enumerates the inputs the sensitivity grid can shift.
type Axis string

const (
	AxisLoanRate        Axis = "loan_rate"
	AxisPriceGrowth     Axis = "price_growth_rate"
	AxisBenchmarkReturn Axis = "benchmark_return_rate"
)

// GridPoint is one sensitivity evaluation. IRR is nil when the shifted
// scenario admits no internal rate; an undefined point never aborts the
// grid.
type GridPoint struct {
	Delta        float64
	ShiftedValue float64
	IRR          *float64
}

// GridStats summarizes the defined points of a grid.
type GridStats struct {
	Defined int
	Min     float64
	Max     float64
	Mean    float64
}

// SensitivityHandler re-runs the cashflow assembly across a one-axis
// parameter grid. Every point is an independent run on a shifted copy of
// the base inputs; nothing is shared between points.
type SensitivityHandler struct {
	Scenarios ScenarioHandler
}

// Grid shifts the axis field by each delta in turn and records the
// resulting IRR. Loan and benchmark rates are clamped at zero; price
// growth may legitimately go negative (depreciation), so it is not.
func (h SensitivityHandler) Grid(
	base domain.InvestmentInputs,
	kind domain.ScenarioKind,
	axis Axis,
	deltas []float64,
) ([]GridPoint, error) {
	points := make([]GridPoint, 0, len(deltas))
	for _, delta := range deltas {
		shifted, value, err := shiftInputs(base, axis, delta)
		if err != nil {
			return nil, err
		}

		var irr *float64
		if kind == domain.ScenarioBenchmark {
			result, err := internal.RunBenchmark(shifted)
			if err != nil {
				return nil, fmt.Errorf("failed to run benchmark at delta %v: %w", delta, err)
			}
			irr = result.Metrics.IRR
		} else {
			result, err := h.Scenarios.Run(shifted, kind)
			if err != nil {
				return nil, fmt.Errorf("failed to run scenario at delta %v: %w", delta, err)
			}
			irr = result.Metrics.IRR
		}

		points = append(points, GridPoint{Delta: delta, ShiftedValue: value, IRR: irr})
	}
	return points, nil
}

func shiftInputs(base domain.InvestmentInputs, axis Axis, delta float64) (domain.InvestmentInputs, float64, error) {
	shifted := base
	switch axis {
	case AxisLoanRate:
		shifted.LoanRate = math.Max(0, base.LoanRate+delta)
		return shifted, shifted.LoanRate, nil
	case AxisPriceGrowth:
		shifted.PriceGrowthRate = base.PriceGrowthRate + delta
		return shifted, shifted.PriceGrowthRate, nil
	case AxisBenchmarkReturn:
		shifted.BenchmarkReturnRate = math.Max(0, base.BenchmarkReturnRate+delta)
		return shifted, shifted.BenchmarkReturnRate, nil
	}
	return base, 0, domain.InvalidInputError{
		Violations: []string{fmt.Sprintf("unknown sensitivity axis %q", axis)},
	}
}

// Summarize reduces a grid to summary statistics over its defined points.
func Summarize(points []GridPoint) (*GridStats, error) {
	defined := []float64{}
	for _, point := range points {
		if point.IRR != nil {
			defined = append(defined, *point.IRR)
		}
	}
	if len(defined) == 0 {
		return nil, fmt.Errorf("no grid point has a defined irr")
	}

	min, err := stats.Min(defined)
	if err != nil {
		return nil, err
	}
	max, err := stats.Max(defined)
	if err != nil {
		return nil, err
	}
	mean, err := stats.Mean(defined)
	if err != nil {
		return nil, err
	}

	return &GridStats{
		Defined: len(defined),
		Min:     min,
		Max:     max,
		Mean:    mean,
	}, nil
}
