package integration_tests

import (
	"os"
	"path/filepath"
	"testing"

	"propertyroi/internal"
	"propertyroi/internal/app"
	"propertyroi/internal/config"
	"propertyroi/internal/domain"
	"propertyroi/internal/export"
	"propertyroi/internal/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// Runs the whole pipeline the way the CLI does: defaults through the
// constructor, all three projections, export, and the scenario store.

func loadDefaults(t *testing.T) domain.InvestmentInputs {
	t.Helper()
	params, err := config.Load("")
	require.NoError(t, err)
	in, err := domain.NewInvestmentInputs(*params)
	require.NoError(t, err)
	return *in
}

func TestThreeWayComparison(t *testing.T) {
	in := loadDefaults(t)
	scenarios := app.ScenarioHandler{}

	owner, err := scenarios.Run(in, domain.ScenarioOwnerOccupied)
	require.NoError(t, err)
	rental, err := scenarios.Run(in, domain.ScenarioRental)
	require.NoError(t, err)
	bench, err := internal.RunBenchmark(in)
	require.NoError(t, err)

	t.Run("the same purchase underlies both property scenarios", func(t *testing.T) {
		require.Equal(t, "", cmp.Diff(owner.Sale, rental.Sale))
		require.Equal(t, owner.InitialOutlay, rental.InitialOutlay)

		for y := range owner.Years {
			require.InDelta(t, owner.Years[y].TotalExpenses(), rental.Years[y].TotalExpenses(), 1e-9)
		}
	})

	t.Run("rent income strictly improves the outcome", func(t *testing.T) {
		require.Greater(t, rental.Metrics.FinalNetWealth, owner.Metrics.FinalNetWealth)

		require.NotNil(t, owner.Metrics.IRR)
		require.NotNil(t, rental.Metrics.IRR)
		require.Greater(t, *rental.Metrics.IRR, *owner.Metrics.IRR)
	})

	t.Run("benchmark starts from the down payment", func(t *testing.T) {
		require.Equal(t, in.DownPayment, bench.Years[0].Value)
		require.NotNil(t, bench.Metrics.IRR)
		require.InDelta(t, in.BenchmarkReturnRate, *bench.Metrics.IRR, 1e-5)
	})

	t.Run("identical inputs reproduce identical results", func(t *testing.T) {
		again, err := scenarios.Run(in, domain.ScenarioRental)
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff(rental, again))
	})
}

func TestScenarioFileDrivesARun(t *testing.T) {
	dir := t.TempDir()
	repo := repository.NewScenarioRepository()

	params, err := config.Load("")
	require.NoError(t, err)
	params.Price = 300_000
	params.DownPayment = 60_000

	path := filepath.Join(dir, "bigger-place.json")
	require.NoError(t, repo.Put(path, repository.Scenario{Name: "bigger place", ParamSet: *params}))

	loaded, err := repo.Get(path)
	require.NoError(t, err)
	in, err := domain.NewInvestmentInputs(loaded.ParamSet)
	require.NoError(t, err)

	result, err := app.ScenarioHandler{}.Run(*in, domain.ScenarioRental)
	require.NoError(t, err)
	require.InDelta(t, 240_000, in.LoanPrincipal(), 1e-9)
	require.Greater(t, result.Sale.SalePrice, 300_000.0)
}

func TestExportedTables(t *testing.T) {
	in := loadDefaults(t)
	dir := t.TempDir()

	rental, err := app.ScenarioHandler{}.Run(in, domain.ScenarioRental)
	require.NoError(t, err)
	bench, err := internal.RunBenchmark(in)
	require.NoError(t, err)
	schedule, err := internal.BuildSchedule(in.LoanPrincipal(), in.LoanRate, in.LoanYears)
	require.NoError(t, err)
	points, err := app.SensitivityHandler{}.Grid(
		in, domain.ScenarioRental, app.AxisLoanRate, []float64{-0.02, 0, 0.02})
	require.NoError(t, err)

	writers := map[string]func(f *os.File) error{
		"rental.csv":    func(f *os.File) error { return export.WriteScenario(f, *rental) },
		"benchmark.csv": func(f *os.File) error { return export.WriteBenchmark(f, *bench) },
		"schedule.csv":  func(f *os.File) error { return export.WriteSchedule(f, schedule) },
		"grid.csv":      func(f *os.File) error { return export.WriteGrid(f, points) },
	}
	for name, write := range writers {
		file, err := os.Create(filepath.Join(dir, name))
		require.NoError(t, err)
		require.NoError(t, write(file))
		require.NoError(t, file.Close())

		contents, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		require.NotEmpty(t, contents)
	}
}
