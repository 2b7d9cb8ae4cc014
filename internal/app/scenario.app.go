package app

import (
	"fmt"
	"math"

	"propertyroi/internal"
	"propertyroi/internal/calculator"
	"propertyroi/internal/domain"
)

// ScenarioHandler assembles the year-by-year cashflow timeline for the
// owner-occupied and rental scenarios and derives the scalar metrics. It
// exclusively constructs ScenarioResult; everything downstream only reads
// it.
type ScenarioHandler struct{}

// Run builds the full timeline for one scenario kind. The benchmark kind
// has no cashflow assembly and is rejected here; internal.RunBenchmark
// owns that path.
func (h ScenarioHandler) Run(in domain.InvestmentInputs, kind domain.ScenarioKind) (*domain.ScenarioResult, error) {
	if kind != domain.ScenarioOwnerOccupied && kind != domain.ScenarioRental {
		return nil, domain.InvalidInputError{
			Violations: []string{fmt.Sprintf("scenario kind %q cannot be assembled here", kind)},
		}
	}

	horizon := in.HorizonYears()
	if horizon <= 0 {
		return nil, domain.InvalidInputError{Violations: []string{"sale year must be after purchase year"}}
	}

	principal := in.LoanPrincipal()
	schedule, err := internal.BuildSchedule(principal, in.LoanRate, in.LoanYears)
	if err != nil {
		return nil, fmt.Errorf("failed to build amortization schedule: %w", err)
	}
	annual := internal.AggregateAnnual(schedule)

	sale := internal.SaleProceeds(in, annual, horizon)
	outlay := in.InitialOutlay()

	years := make([]domain.CashflowYear, 0, horizon)
	flows := make([]domain.Cashflow, 0, horizon+1)
	flows = append(flows, domain.Cashflow{Period: 0, Amount: -outlay})

	cumulative := -outlay
	for y := 1; y <= horizon; y++ {
		row := domain.CashflowYear{Year: y}

		if y <= len(annual) {
			row.DebtService = annual[y-1].Payment
			row.RemainingDebt = annual[y-1].EndBalance
		}
		row.PropertyTax = in.PropertyTax
		row.OtherTaxes = in.OtherTaxes
		row.Insurance = in.InsuranceRate * principal
		row.CondoFees = internal.Grow(in.CondoFees, in.CondoFeesGrowth, y-1)
		row.PropertyValue = internal.Grow(in.Price, in.PriceGrowthRate, y)
		if in.MaintenanceFlat > 0 {
			row.Maintenance = in.MaintenanceFlat
		} else {
			row.Maintenance = in.MaintenanceRate * row.PropertyValue
		}

		if kind == domain.ScenarioRental {
			row.GrossRent = internal.Grow(in.MonthlyRent*12*in.OccupancyRate, in.RentGrowthRate, y-1)
			row.ManagementFee = row.GrossRent * in.ManagementFeeRate
			row.RentalTax = math.Max(row.GrossRent-row.ManagementFee, 0) * in.RentalTaxRate
			row.NetRentalIncome = row.GrossRent - row.ManagementFee - row.RentalTax
		}

		row.NetCashflow = row.NetRentalIncome - row.TotalExpenses()

		// cumulative cash stays net of the terminal sale, which is
		// already counted through property value minus debt
		cumulative += row.NetCashflow
		row.CumulativeCashflow = cumulative

		if y == horizon {
			row.SaleProceeds = sale.NetProceeds
			row.NetCashflow += sale.NetProceeds
		}
		row.NetWealth = row.PropertyValue - row.RemainingDebt + row.CumulativeCashflow

		flows = append(flows, domain.Cashflow{Period: y, Amount: row.NetCashflow})
		years = append(years, row)
	}

	npv, err := calculator.NPV(in.DiscountRate, flows)
	if err != nil {
		return nil, fmt.Errorf("failed to compute npv: %w", err)
	}

	final := years[len(years)-1].NetWealth
	metrics := domain.Metrics{
		NPV:            npv,
		FinalNetWealth: final,
		MonthlyPayment: internal.MonthlyPayment(principal, in.LoanRate, in.LoanYears),
	}
	if outlay > 0 {
		metrics.CapitalMultiple = final / outlay
	}
	if irr, err := calculator.IRR(flows); err == nil {
		metrics.IRR = &irr
	} else if !calculator.Indeterminate(err) {
		return nil, fmt.Errorf("failed to compute irr: %w", err)
	}

	return &domain.ScenarioResult{
		Kind:          kind,
		InitialOutlay: outlay,
		Years:         years,
		Sale:          sale,
		Cashflows:     flows,
		Metrics:       metrics,
		Warnings:      in.Warnings,
	}, nil
}
