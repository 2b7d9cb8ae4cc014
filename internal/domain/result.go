package domain

// SaleBreakdown decomposes the terminal sale. NetProceeds can go negative
// when the sale does not cover debt and fees; that is a reportable
// outcome, not an error.
type SaleBreakdown struct {
	SalePrice             float64
	SellingFees           float64
	RemainingDebt         float64
	CapitalGainsTax       float64
	EarlyRepaymentPenalty float64
	NetProceeds           float64
}

// Metrics reduce a scenario to comparable scalars. IRR is nil when the
// cashflow admits no internal rate (one-signed flows, or the solver ran
// out of budget).
type Metrics struct {
	IRR             *float64
	NPV             float64
	CapitalMultiple float64
	FinalNetWealth  float64
	MonthlyPayment  float64
}

// ScenarioResult is built once per run by the assembler and read-only
// afterwards.
type ScenarioResult struct {
	Kind          ScenarioKind
	InitialOutlay float64
	Years         []CashflowYear
	Sale          SaleBreakdown
	Cashflows     []Cashflow
	Metrics       Metrics
	Warnings      []string
}

// BenchmarkYear is one year-end row of the alternative deployment: the
// compounded capital, the rent paid to date out of pocket, and their net.
type BenchmarkYear struct {
	Year           int
	Value          float64
	CumulativeRent float64
	NetOfRent      float64
}

// BenchmarkResult mirrors ScenarioResult for the invested-capital
// alternative, with the degenerate two-point cashflow shape.
type BenchmarkResult struct {
	Years     []BenchmarkYear
	Cashflows []Cashflow

	// terminal capital when rent is paid from the invested amount
	// instead of out of pocket
	ValueWithRentWithdrawals float64

	Metrics Metrics
}
