package engine

import (
	"fmt"

	"github.com/rotisserie/eris"

	"github.com/piwi3910/BarCut/internal/model"
)

// Scenario defines a named set of settings to compare.
type Scenario struct {
	Name     string
	Settings model.PlanSettings
}

// ComparisonResult holds the plan and computed statistics for a single
// scenario.
type ComparisonResult struct {
	Scenario      Scenario
	Plan          model.CuttingPlan
	BarsUsed      int
	StockUsed     int // Total stock length consumed (mm)
	TotalWaste    int
	WastePercent  float64
	UnplacedCount int
}

// CompareScenarios plans the same piece list once per scenario and returns
// the results in scenario order. The first scenario that fails validation
// aborts the comparison.
func CompareScenarios(scenarios []Scenario, pieces []model.Piece) ([]ComparisonResult, error) {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		plan, err := New(scenario.Settings).Plan(pieces)
		if err != nil {
			return nil, eris.Wrapf(err, "scenario %q", scenario.Name)
		}

		wastePercent := 0.0
		if len(plan.Bars) > 0 {
			wastePercent = 100.0 - plan.Efficiency()
		}

		results = append(results, ComparisonResult{
			Scenario:      scenario,
			Plan:          plan,
			BarsUsed:      plan.TotalBars,
			StockUsed:     plan.TotalBars * plan.StockLength,
			TotalWaste:    plan.TotalWaste(),
			WastePercent:  wastePercent,
			UnplacedCount: plan.UnplacedCount(),
		})
	}

	return results, nil
}

// BuildScenarios generates what-if alternatives around the current settings:
// one scenario per distinct stock length in the library, and a zero-kerf
// scenario when the current kerf is positive.
func BuildScenarios(base model.PlanSettings, library model.StockLibrary) []Scenario {
	scenarios := []Scenario{
		{
			Name:     "Current Settings",
			Settings: base,
		},
	}

	for _, length := range library.Lengths() {
		if length == base.StockLength {
			continue
		}
		alt := base
		alt.StockLength = length
		scenarios = append(scenarios, Scenario{
			Name:     fmt.Sprintf("Stock %dmm", length),
			Settings: alt,
		})
	}

	// Scenario: thinner blade
	if base.Kerf > 0 {
		noKerf := base
		noKerf.Kerf = 0
		scenarios = append(scenarios, Scenario{
			Name:     "No Kerf",
			Settings: noKerf,
		})
	}

	return scenarios
}

// BuildDefaultScenarios is BuildScenarios over the default stock library.
func BuildDefaultScenarios(base model.PlanSettings) []Scenario {
	return BuildScenarios(base, model.DefaultStockLibrary())
}

// Best returns the index of the preferred result: fewest unplaced pieces,
// then least stock length consumed, then fewest bars. Earlier results win
// ties. It returns -1 for an empty slice.
func Best(results []ComparisonResult) int {
	best := -1
	for i, r := range results {
		if best < 0 || better(r, results[best]) {
			best = i
		}
	}
	return best
}

func better(a, b ComparisonResult) bool {
	if a.UnplacedCount != b.UnplacedCount {
		return a.UnplacedCount < b.UnplacedCount
	}
	if a.StockUsed != b.StockUsed {
		return a.StockUsed < b.StockUsed
	}
	return a.BarsUsed < b.BarsUsed
}
