package export

import (
	"fmt"
	"io"

	"propertyroi/internal/app"
	"propertyroi/internal/domain"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// round2 snaps money columns to cents before marshalling so exported
// tables don't leak float noise.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// ScheduleRow is one monthly amortization line in CSV form.
type ScheduleRow struct {
	Month     int     `csv:"month"`
	Payment   float64 `csv:"payment"`
	Interest  float64 `csv:"interest"`
	Principal float64 `csv:"principal"`
	Balance   float64 `csv:"balance"`
}

// WriteSchedule marshals the monthly schedule, amounts rounded to cents.
func WriteSchedule(w io.Writer, schedule []domain.ScheduleEntry) error {
	rows := make([]ScheduleRow, 0, len(schedule))
	for _, entry := range schedule {
		rows = append(rows, ScheduleRow{
			Month:     entry.Month,
			Payment:   round2(entry.Payment),
			Interest:  round2(entry.Interest),
			Principal: round2(entry.Principal),
			Balance:   round2(entry.Balance),
		})
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write schedule csv: %w", err)
	}
	return nil
}

// AnnualScheduleRow is one aggregated year of the amortization schedule.
type AnnualScheduleRow struct {
	Year       int     `csv:"year"`
	Payment    float64 `csv:"payment"`
	Interest   float64 `csv:"interest"`
	Principal  float64 `csv:"principal"`
	EndBalance float64 `csv:"end_balance"`
}

func WriteAnnualSchedule(w io.Writer, annual []domain.AnnualScheduleEntry) error {
	rows := make([]AnnualScheduleRow, 0, len(annual))
	for _, entry := range annual {
		rows = append(rows, AnnualScheduleRow{
			Year:       entry.Year,
			Payment:    round2(entry.Payment),
			Interest:   round2(entry.Interest),
			Principal:  round2(entry.Principal),
			EndBalance: round2(entry.EndBalance),
		})
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write annual schedule csv: %w", err)
	}
	return nil
}

// CashflowRow flattens one CashflowYear for export.
type CashflowRow struct {
	Year               int     `csv:"year"`
	GrossRent          float64 `csv:"gross_rent"`
	ManagementFee      float64 `csv:"management_fee"`
	RentalTax          float64 `csv:"rental_tax"`
	NetRentalIncome    float64 `csv:"net_rental_income"`
	DebtService        float64 `csv:"debt_service"`
	PropertyTax        float64 `csv:"property_tax"`
	OtherTaxes         float64 `csv:"other_taxes"`
	Insurance          float64 `csv:"insurance"`
	CondoFees          float64 `csv:"condo_fees"`
	Maintenance        float64 `csv:"maintenance"`
	NetCashflow        float64 `csv:"net_cashflow"`
	SaleProceeds       float64 `csv:"sale_proceeds"`
	PropertyValue      float64 `csv:"property_value"`
	RemainingDebt      float64 `csv:"remaining_debt"`
	CumulativeCashflow float64 `csv:"cumulative_cashflow"`
	NetWealth          float64 `csv:"net_wealth"`
}

func WriteScenario(w io.Writer, result domain.ScenarioResult) error {
	rows := make([]CashflowRow, 0, len(result.Years))
	for _, year := range result.Years {
		rows = append(rows, CashflowRow{
			Year:               year.Year,
			GrossRent:          round2(year.GrossRent),
			ManagementFee:      round2(year.ManagementFee),
			RentalTax:          round2(year.RentalTax),
			NetRentalIncome:    round2(year.NetRentalIncome),
			DebtService:        round2(year.DebtService),
			PropertyTax:        round2(year.PropertyTax),
			OtherTaxes:         round2(year.OtherTaxes),
			Insurance:          round2(year.Insurance),
			CondoFees:          round2(year.CondoFees),
			Maintenance:        round2(year.Maintenance),
			NetCashflow:        round2(year.NetCashflow),
			SaleProceeds:       round2(year.SaleProceeds),
			PropertyValue:      round2(year.PropertyValue),
			RemainingDebt:      round2(year.RemainingDebt),
			CumulativeCashflow: round2(year.CumulativeCashflow),
			NetWealth:          round2(year.NetWealth),
		})
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write %s cashflow csv: %w", result.Kind, err)
	}
	return nil
}

// BenchmarkRow is one year-end row of the invested-capital alternative.
type BenchmarkRow struct {
	Year           int     `csv:"year"`
	Value          float64 `csv:"value"`
	CumulativeRent float64 `csv:"cumulative_rent"`
	NetOfRent      float64 `csv:"net_of_rent"`
}

func WriteBenchmark(w io.Writer, result domain.BenchmarkResult) error {
	rows := make([]BenchmarkRow, 0, len(result.Years))
	for _, year := range result.Years {
		rows = append(rows, BenchmarkRow{
			Year:           year.Year,
			Value:          round2(year.Value),
			CumulativeRent: round2(year.CumulativeRent),
			NetOfRent:      round2(year.NetOfRent),
		})
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write benchmark csv: %w", err)
	}
	return nil
}

// GridRow is one sensitivity evaluation. Deltas and IRRs are rates, so
// they keep full precision; IRR stays empty for undefined points.
type GridRow struct {
	Delta        float64  `csv:"delta"`
	ShiftedValue float64  `csv:"shifted_value"`
	IRR          *float64 `csv:"irr"`
}

func WriteGrid(w io.Writer, points []app.GridPoint) error {
	rows := make([]GridRow, 0, len(points))
	for _, point := range points {
		rows = append(rows, GridRow{
			Delta:        point.Delta,
			ShiftedValue: point.ShiftedValue,
			IRR:          point.IRR,
		})
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write sensitivity grid csv: %w", err)
	}
	return nil
}
