package domain

import (
	"fmt"
	"math"
	"strings"
)

// ParamSet is the flat parameter record accepted at the boundary (config
// files, scenario files). Percentage fields are 0-100 here; occupancy_rate
// is already a 0-1 fraction, matching the source configs.
type ParamSet struct {
	Price           float64 `json:"price" mapstructure:"price"`
	NotaryPct       float64 `json:"notary_pct" mapstructure:"notary_pct"`
	AgencyPct       float64 `json:"agency_pct" mapstructure:"agency_pct"`
	RenovationCosts float64 `json:"renovation_costs" mapstructure:"renovation_costs"`
	ExtraFees       float64 `json:"extra_fees" mapstructure:"extra_fees"`

	LoanRatePct float64 `json:"loan_rate" mapstructure:"loan_rate"`
	LoanYears   int     `json:"loan_years" mapstructure:"loan_years"`
	DownPayment float64 `json:"down_payment" mapstructure:"down_payment"`

	PropertyTax        float64 `json:"property_tax" mapstructure:"property_tax"`
	OtherTaxes         float64 `json:"other_taxes" mapstructure:"other_taxes"`
	InsuranceRatePct   float64 `json:"insurance_rate" mapstructure:"insurance_rate"`
	CondoFees          float64 `json:"condo_fees" mapstructure:"condo_fees"`
	CondoFeesGrowthPct float64 `json:"condo_fees_growth" mapstructure:"condo_fees_growth"`
	MaintenanceRatePct float64 `json:"maintenance_rate" mapstructure:"maintenance_rate"`
	MaintenanceFlat    float64 `json:"maintenance_flat" mapstructure:"maintenance_flat"`

	PriceGrowthPct float64 `json:"price_growth_rate" mapstructure:"price_growth_rate"`
	InflationPct   float64 `json:"inflation_rate" mapstructure:"inflation_rate"`
	PurchaseYear   int     `json:"purchase_year" mapstructure:"purchase_year"`
	SaleYear       int     `json:"sale_year" mapstructure:"sale_year"`

	BenchmarkReturnPct   float64 `json:"benchmark_return_rate" mapstructure:"benchmark_return_rate"`
	BenchmarkMonthlyRent float64 `json:"benchmark_monthly_rent" mapstructure:"benchmark_monthly_rent"`

	OccupancyRate    float64 `json:"occupancy_rate" mapstructure:"occupancy_rate"`
	MonthlyRent      float64 `json:"monthly_rent" mapstructure:"monthly_rent"`
	RentGrowthPct    float64 `json:"rent_growth_rate" mapstructure:"rent_growth_rate"`
	ManagementFeePct float64 `json:"management_fee_rate" mapstructure:"management_fee_rate"`
	RentalTaxPct     float64 `json:"rental_tax_rate" mapstructure:"rental_tax_rate"`

	SellingFeesPct  float64 `json:"selling_fees_rate" mapstructure:"selling_fees_rate"`
	CapitalGainsPct float64 `json:"capital_gains_rate" mapstructure:"capital_gains_rate"`

	IncludeEarlyRepaymentPenalty bool `json:"include_early_repayment_penalty" mapstructure:"include_early_repayment_penalty"`

	DiscountRatePct float64 `json:"discount_rate" mapstructure:"discount_rate"`
}

// InvestmentInputs is the validated parameter record the engines consume.
// All rates are decimal fractions here; the percent conversion happens
// exactly once, in NewInvestmentInputs. Treated as immutable after
// construction.
type InvestmentInputs struct {
	Price           float64
	NotaryRate      float64
	AgencyRate      float64
	RenovationCosts float64
	ExtraFees       float64

	LoanRate    float64
	LoanYears   int
	DownPayment float64

	PropertyTax     float64
	OtherTaxes      float64
	InsuranceRate   float64 // on the initial loan principal, per year
	CondoFees       float64
	CondoFeesGrowth float64
	MaintenanceRate float64 // on current property value
	MaintenanceFlat float64 // flat euros per year, wins over the rate when > 0

	PriceGrowthRate float64
	InflationRate   float64
	PurchaseYear    int
	SaleYear        int

	BenchmarkReturnRate  float64
	BenchmarkMonthlyRent float64

	OccupancyRate     float64
	MonthlyRent       float64
	RentGrowthRate    float64
	ManagementFeeRate float64
	RentalTaxRate     float64

	SellingFeesRate  float64
	CapitalGainsRate float64

	IncludeEarlyRepaymentPenalty bool

	DiscountRate float64

	// advisory only, never fatal
	Warnings []string
}

// InvalidInputError reports every violated constraint at once, so callers
// can surface the full list instead of fixing one field per attempt.
type InvalidInputError struct {
	Violations []string
}

func (e InvalidInputError) Error() string {
	return "invalid inputs: " + strings.Join(e.Violations, "; ")
}

// NewInvestmentInputs converts the boundary record into engine inputs and
// validates it. Every percentage field is divided by 100 here and nowhere
// else.
func NewInvestmentInputs(p ParamSet) (*InvestmentInputs, error) {
	in := &InvestmentInputs{
		Price:           p.Price,
		NotaryRate:      p.NotaryPct / 100,
		AgencyRate:      p.AgencyPct / 100,
		RenovationCosts: p.RenovationCosts,
		ExtraFees:       p.ExtraFees,

		LoanRate:    p.LoanRatePct / 100,
		LoanYears:   p.LoanYears,
		DownPayment: p.DownPayment,

		PropertyTax:     p.PropertyTax,
		OtherTaxes:      p.OtherTaxes,
		InsuranceRate:   p.InsuranceRatePct / 100,
		CondoFees:       p.CondoFees,
		CondoFeesGrowth: p.CondoFeesGrowthPct / 100,
		MaintenanceRate: p.MaintenanceRatePct / 100,
		MaintenanceFlat: p.MaintenanceFlat,

		PriceGrowthRate: p.PriceGrowthPct / 100,
		InflationRate:   p.InflationPct / 100,
		PurchaseYear:    p.PurchaseYear,
		SaleYear:        p.SaleYear,

		BenchmarkReturnRate:  p.BenchmarkReturnPct / 100,
		BenchmarkMonthlyRent: p.BenchmarkMonthlyRent,

		OccupancyRate:     p.OccupancyRate,
		MonthlyRent:       p.MonthlyRent,
		RentGrowthRate:    p.RentGrowthPct / 100,
		ManagementFeeRate: p.ManagementFeePct / 100,
		RentalTaxRate:     p.RentalTaxPct / 100,

		SellingFeesRate:  p.SellingFeesPct / 100,
		CapitalGainsRate: p.CapitalGainsPct / 100,

		IncludeEarlyRepaymentPenalty: p.IncludeEarlyRepaymentPenalty,

		DiscountRate: p.DiscountRatePct / 100,
	}

	violations := []string{}
	if in.Price <= 0 {
		violations = append(violations, "price must be positive")
	}
	if in.DownPayment < 0 {
		violations = append(violations, "down payment cannot be negative")
	}
	for _, amount := range []struct {
		name  string
		value float64
	}{
		{"renovation costs", in.RenovationCosts},
		{"extra fees", in.ExtraFees},
		{"property tax", in.PropertyTax},
		{"other taxes", in.OtherTaxes},
		{"condo fees", in.CondoFees},
		{"maintenance flat amount", in.MaintenanceFlat},
		{"monthly rent", in.MonthlyRent},
		{"benchmark monthly rent", in.BenchmarkMonthlyRent},
	} {
		if amount.value < 0 {
			violations = append(violations, amount.name+" cannot be negative")
		}
	}
	for _, rate := range []struct {
		name  string
		value float64
	}{
		{"notary rate", in.NotaryRate},
		{"agency rate", in.AgencyRate},
		{"loan rate", in.LoanRate},
		{"insurance rate", in.InsuranceRate},
		{"maintenance rate", in.MaintenanceRate},
	} {
		if rate.value < 0 {
			violations = append(violations, rate.name+" cannot be negative")
		}
	}
	for _, rate := range []struct {
		name  string
		value float64
	}{
		{"management fee rate", in.ManagementFeeRate},
		{"rental tax rate", in.RentalTaxRate},
		{"selling fees rate", in.SellingFeesRate},
		{"capital gains rate", in.CapitalGainsRate},
	} {
		if rate.value < 0 || rate.value > 1 {
			violations = append(violations, rate.name+" must be between 0 and 100")
		}
	}
	for _, rate := range []struct {
		name  string
		value float64
	}{
		{"price growth rate", in.PriceGrowthRate},
		{"rent growth rate", in.RentGrowthRate},
		{"condo fees growth", in.CondoFeesGrowth},
		{"inflation rate", in.InflationRate},
		{"benchmark return rate", in.BenchmarkReturnRate},
		{"discount rate", in.DiscountRate},
	} {
		if rate.value <= -1 {
			violations = append(violations, rate.name+" must be greater than -100")
		}
	}
	if in.LoanPrincipal() > 0 && in.LoanYears <= 0 {
		violations = append(violations, "loan years must be positive when a loan is required")
	}
	if in.OccupancyRate < 0 || in.OccupancyRate > 1 {
		violations = append(violations, "occupancy rate must be between 0 and 1")
	}
	if in.SaleYear <= in.PurchaseYear {
		violations = append(violations, "sale year must be after purchase year")
	}

	if len(violations) > 0 {
		return nil, InvalidInputError{Violations: violations}
	}

	if in.SaleYear < in.PurchaseYear+2 {
		in.Warnings = append(in.Warnings, fmt.Sprintf(
			"sale year %d is less than 2 years after purchase; acquisition costs will dominate the outcome",
			in.SaleYear,
		))
	}

	return in, nil
}

// LoanPrincipal is the financed amount. Initial costs are paid in cash, so
// only the price net of the down payment is borrowed.
func (in InvestmentInputs) LoanPrincipal() float64 {
	return math.Max(0, in.Price-in.DownPayment)
}

// InitialCosts covers everything owed at purchase beyond the price itself.
func (in InvestmentInputs) InitialCosts() float64 {
	return in.NotaryRate*in.Price + in.AgencyRate*in.Price + in.RenovationCosts + in.ExtraFees
}

// InitialOutlay is the cash leaving the buyer's pocket at year zero.
func (in InvestmentInputs) InitialOutlay() float64 {
	return in.DownPayment + in.InitialCosts()
}

func (in InvestmentInputs) HorizonYears() int {
	return in.SaleYear - in.PurchaseYear
}
