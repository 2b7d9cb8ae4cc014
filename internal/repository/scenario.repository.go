package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"propertyroi/internal/domain"

	"github.com/google/uuid"
)

// Scenario is a named, saved parameter set. The embedded ParamSet keeps
// the JSON flat, so fields map 1:1 onto the boundary record; the percent
// conversion still happens only in domain.NewInvestmentInputs.
type Scenario struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	domain.ParamSet
}

// ScenarioRepository loads and saves example scenarios as JSON files.
// This layer only (de)serializes; validation stays in domain.
type ScenarioRepository interface {
	Get(path string) (*Scenario, error)
	Put(path string, scenario Scenario) error
	List(dir string) ([]Scenario, error)
}

type scenarioRepositoryHandler struct{}

func NewScenarioRepository() ScenarioRepository {
	return scenarioRepositoryHandler{}
}

func (h scenarioRepositoryHandler) Get(path string) (*Scenario, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}

	scenario := &Scenario{}
	if err := json.Unmarshal(contents, scenario); err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}

	return scenario, nil
}

func (h scenarioRepositoryHandler) Put(path string, scenario Scenario) error {
	if scenario.ID == uuid.Nil {
		scenario.ID = uuid.New()
	}

	contents, err := json.MarshalIndent(scenario, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize scenario %q: %w", scenario.Name, err)
	}
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		return fmt.Errorf("failed to write scenario %s: %w", path, err)
	}

	return nil
}

func (h scenarioRepositoryHandler) List(dir string) ([]Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios in %s: %w", dir, err)
	}

	scenarios := []Scenario{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		scenario, err := h.Get(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, *scenario)
	}

	sort.Slice(scenarios, func(i, j int) bool {
		return scenarios[i].Name < scenarios[j].Name
	})

	return scenarios, nil
}
