package domain

// ScheduleEntry is one month of the amortization schedule. Payment =
// Interest + Principal on every row; the last row may deviate from the
// constant loan payment because it absorbs the floating-point residue so
// Balance lands on exactly zero.
type ScheduleEntry struct {
	Month     int
	Payment   float64
	Interest  float64
	Principal float64
	Balance   float64
}

// AnnualScheduleEntry aggregates twelve (or fewer, for a partial final
// year) monthly rows. EndBalance is the balance after the year's last
// payment. Computed once from the monthly schedule, never mutated.
type AnnualScheduleEntry struct {
	Year       int
	Payment    float64
	Interest   float64
	Principal  float64
	EndBalance float64
}
