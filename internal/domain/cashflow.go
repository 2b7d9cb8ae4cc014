package domain

// ScenarioKind tags the three deployments of the same capital being
// compared. Closed set; assembly rules switch on it, nothing is added at
// runtime.
type ScenarioKind string

const (
	ScenarioOwnerOccupied ScenarioKind = "owner_occupied"
	ScenarioRental        ScenarioKind = "rental"
	ScenarioBenchmark     ScenarioKind = "benchmark"
)

// Cashflow is one (year offset, amount) pair. Period 0 is the purchase
// moment. This is the uniform shape every metric solver consumes.
type Cashflow struct {
	Period int
	Amount float64
}

// CashflowYear is one simulated year of a scenario. Income fields stay
// zero for the owner-occupied case. SaleProceeds is set on the terminal
// year only.
type CashflowYear struct {
	Year int

	GrossRent       float64
	ManagementFee   float64
	RentalTax       float64
	NetRentalIncome float64

	DebtService float64
	PropertyTax float64
	OtherTaxes  float64
	Insurance   float64
	CondoFees   float64
	Maintenance float64

	NetCashflow  float64
	SaleProceeds float64

	// wealth tracking; CumulativeCashflow excludes the terminal sale
	// proceeds, which already sit in PropertyValue minus RemainingDebt
	PropertyValue      float64
	RemainingDebt      float64
	CumulativeCashflow float64
	NetWealth          float64
}

// TotalExpenses sums the typed expense components of the year.
func (y CashflowYear) TotalExpenses() float64 {
	return y.DebtService + y.PropertyTax + y.OtherTaxes + y.Insurance + y.CondoFees + y.Maintenance
}
