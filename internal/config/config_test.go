package config

import (
	"os"
	"path/filepath"
	"testing"

	"propertyroi/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("empty path uses the defaults", func(t *testing.T) {
		params, err := Load("")
		require.NoError(t, err)

		require.Equal(t, 250_000.0, params.Price)
		require.Equal(t, 25, params.LoanYears)
		require.Equal(t, 0.92, params.OccupancyRate)
		require.Equal(t, 30.0, params.RentalTaxPct)

		// the defaults must form a valid parameter set
		_, err = domain.NewInvestmentInputs(*params)
		require.NoError(t, err)
	})

	t.Run("yaml file overrides individual fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scenario.yaml")
		require.NoError(t, os.WriteFile(path, []byte("price: 300000\nmonthly_rent: 950\n"), 0o644))

		params, err := Load(path)
		require.NoError(t, err)

		require.Equal(t, 300_000.0, params.Price)
		require.Equal(t, 950.0, params.MonthlyRent)
		require.Equal(t, 25, params.LoanYears)
	})

	t.Run("a named file must exist", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}
