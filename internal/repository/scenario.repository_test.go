package repository

import (
	"os"
	"path/filepath"
	"testing"

	"propertyroi/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestScenarioRepository(t *testing.T) {
	repo := NewScenarioRepository()

	t.Run("put then get round-trips", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "paris-two-bed.json")
		scenario := Scenario{
			Name: "paris two bed",
			ParamSet: domain.ParamSet{
				Price:        320_000,
				DownPayment:  64_000,
				LoanRatePct:  3.6,
				LoanYears:    20,
				MonthlyRent:  1_250,
				PurchaseYear: 2026,
				SaleYear:     2034,
			},
		}

		require.NoError(t, repo.Put(path, scenario))

		loaded, err := repo.Get(path)
		require.NoError(t, err)

		require.NotEqual(t, uuid.Nil, loaded.ID)
		scenario.ID = loaded.ID
		require.Equal(t, "", cmp.Diff(&scenario, loaded))
	})

	t.Run("put keeps an existing id", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "keeper.json")
		id := uuid.New()

		require.NoError(t, repo.Put(path, Scenario{ID: id, Name: "keeper"}))

		loaded, err := repo.Get(path)
		require.NoError(t, err)
		require.Equal(t, id, loaded.ID)
	})

	t.Run("scenario files serialize flat", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "flat.json")
		require.NoError(t, repo.Put(path, Scenario{
			Name:     "flat",
			ParamSet: domain.ParamSet{Price: 250_000},
		}))

		contents, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(contents), `"price": 250000`)
		require.NotContains(t, string(contents), "ParamSet")
	})

	t.Run("list sorts by name and skips non-scenario files", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, repo.Put(filepath.Join(dir, "b.json"), Scenario{Name: "toulouse studio"}))
		require.NoError(t, repo.Put(filepath.Join(dir, "a.json"), Scenario{Name: "lyon loft"}))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644))
		require.NoError(t, os.Mkdir(filepath.Join(dir, "archive.json"), 0o755))

		scenarios, err := repo.List(dir)
		require.NoError(t, err)
		require.Len(t, scenarios, 2)
		require.Equal(t, "lyon loft", scenarios[0].Name)
		require.Equal(t, "toulouse studio", scenarios[1].Name)
	})

	t.Run("get on a missing file errors", func(t *testing.T) {
		_, err := repo.Get(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
	})
}
