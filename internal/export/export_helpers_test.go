package export

import (
	"os"
	"testing"

	"github.com/piwi3910/BarCut/internal/model"
)

// buildTestPlan returns the plan for pieces Long 2000 x1 and Short 1000 x3 on
// 4000mm stock.
func buildTestPlan() (model.CuttingPlan, []model.Piece) {
	pieces := []model.Piece{
		{ID: "p1", Label: "Long", Length: 2000, Quantity: 1},
		{ID: "p2", Label: "Short", Length: 1000, Quantity: 3},
	}
	plan := model.CuttingPlan{
		StockLength: 4000,
		Bars: []model.BarResult{
			{Number: 1, Cuts: []int{1000, 1000, 2000}, PieceIndexes: []int{1, 1, 0}, Waste: 0},
			{Number: 2, Cuts: []int{1000}, PieceIndexes: []int{1}, Waste: 3000},
		},
		TotalBars:  2,
		UsedCounts: []int{1, 3},
		Status:     model.StatusDone,
	}
	return plan, pieces
}

func buildStalledPlan() (model.CuttingPlan, []model.Piece) {
	plan, pieces := buildTestPlan()
	pieces = append(pieces, model.Piece{ID: "p3", Label: "Beam", Length: 4500, Quantity: 2})
	plan.UsedCounts = append(plan.UsedCounts, 0)
	plan.Unplaced = []model.UnplacedPiece{{Index: 2, Label: "Beam", Length: 4500, Count: 2}}
	plan.Status = model.StatusStalled
	return plan, pieces
}

func assertFileWritten(t *testing.T, path string, minSize int64) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("file was not created: %v", err)
	}
	if info.Size() < minSize {
		t.Errorf("file seems too small: %d bytes", info.Size())
	}
}
