package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func validParams() ParamSet {
	return ParamSet{
		Price:           250_000,
		NotaryPct:       7.5,
		AgencyPct:       3.0,
		RenovationCosts: 10_000,
		ExtraFees:       2_000,

		LoanRatePct: 4.0,
		LoanYears:   25,
		DownPayment: 50_000,

		PropertyTax:      1_200,
		InsuranceRatePct: 0.25,
		CondoFees:        1_200,

		PriceGrowthPct: 2.0,
		InflationPct:   2.0,
		PurchaseYear:   2026,
		SaleYear:       2036,

		BenchmarkReturnPct:   5.0,
		BenchmarkMonthlyRent: 800,

		OccupancyRate:    0.92,
		MonthlyRent:      1_100,
		RentGrowthPct:    2.0,
		ManagementFeePct: 6.0,
		RentalTaxPct:     30.0,

		SellingFeesPct:  5.0,
		DiscountRatePct: 2.0,
	}
}

func TestNewInvestmentInputs(t *testing.T) {
	t.Run("converts percentages to fractions", func(t *testing.T) {
		in, err := NewInvestmentInputs(validParams())
		require.NoError(t, err)

		require.Equal(t, 0.075, in.NotaryRate)
		require.Equal(t, 0.04, in.LoanRate)
		require.Equal(t, 0.0025, in.InsuranceRate)
		require.Equal(t, 0.30, in.RentalTaxRate)
		require.Equal(t, 0.02, in.DiscountRate)

		// already a fraction at the boundary, passed through untouched
		require.Equal(t, 0.92, in.OccupancyRate)
	})

	t.Run("derived amounts", func(t *testing.T) {
		in, err := NewInvestmentInputs(validParams())
		require.NoError(t, err)

		require.InDelta(t, 200_000, in.LoanPrincipal(), 1e-9)
		require.InDelta(t, 38_250, in.InitialCosts(), 1e-9)
		require.InDelta(t, 88_250, in.InitialOutlay(), 1e-9)
		require.Equal(t, 10, in.HorizonYears())
	})

	t.Run("down payment above the price means no loan", func(t *testing.T) {
		params := validParams()
		params.DownPayment = 300_000
		params.LoanYears = 0

		in, err := NewInvestmentInputs(params)
		require.NoError(t, err)
		require.Zero(t, in.LoanPrincipal())
	})

	t.Run("enumerates every violation at once", func(t *testing.T) {
		params := ParamSet{
			Price:         -1,
			DownPayment:   -5,
			MonthlyRent:   -1,
			RentalTaxPct:  150,
			InflationPct:  -150,
			OccupancyRate: 2,
		}

		_, err := NewInvestmentInputs(params)
		require.Error(t, err)
		require.ErrorContains(t, err, "invalid inputs: price must be positive")

		var invalid InvalidInputError
		require.ErrorAs(t, err, &invalid)
		require.Equal(
			t,
			"",
			cmp.Diff(
				[]string{
					"price must be positive",
					"down payment cannot be negative",
					"monthly rent cannot be negative",
					"rental tax rate must be between 0 and 100",
					"inflation rate must be greater than -100",
					"loan years must be positive when a loan is required",
					"occupancy rate must be between 0 and 1",
					"sale year must be after purchase year",
				},
				invalid.Violations,
			),
		)
	})

	t.Run("warns on short holds without failing", func(t *testing.T) {
		params := validParams()
		params.SaleYear = 2027

		in, err := NewInvestmentInputs(params)
		require.NoError(t, err)
		require.Len(t, in.Warnings, 1)

		params.SaleYear = 2028
		in, err = NewInvestmentInputs(params)
		require.NoError(t, err)
		require.Empty(t, in.Warnings)
	})

	t.Run("cash purchases need no loan term", func(t *testing.T) {
		in, err := NewInvestmentInputs(ParamSet{
			Price:        250_000,
			DownPayment:  250_000,
			PurchaseYear: 2026,
			SaleYear:     2030,
		})
		require.NoError(t, err)
		require.Zero(t, in.LoanPrincipal())
	})
}
