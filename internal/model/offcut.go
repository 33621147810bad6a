package model

import (
	"sort"

	"github.com/google/uuid"
)

// DefaultMinOffcut is the shortest remnant (in mm) considered worth keeping.
// Anything shorter is scrap.
const DefaultMinOffcut = 300

// Offcut represents a usable remnant left at the end of a cut bar.
type Offcut struct {
	ID        string `json:"id"`
	BarNumber int    `json:"bar_number"` // Bar the remnant comes from
	Offset    int    `json:"offset"`     // Position of the remnant on the bar (mm from start)
	Length    int    `json:"length"`     // mm
}

// ToStockPreset converts an offcut into a stock preset for reuse in future runs.
func (o Offcut) ToStockPreset(material string) StockPreset {
	return NewStockPreset("Offcut "+uuid.New().String()[:4], o.Length, material)
}

// DetectOffcuts returns the remnants of a plan that are at least minLength
// long, longest first. Pieces are cut from the start of each bar, so the
// remnant always sits at the end.
func DetectOffcuts(plan CuttingPlan, minLength int) []Offcut {
	if minLength <= 0 {
		minLength = DefaultMinOffcut
	}
	var offcuts []Offcut
	for _, bar := range plan.Bars {
		if bar.Waste < minLength {
			continue
		}
		offcuts = append(offcuts, Offcut{
			ID:        uuid.New().String()[:8],
			BarNumber: bar.Number,
			Offset:    plan.StockLength - bar.Waste,
			Length:    bar.Waste,
		})
	}
	sort.SliceStable(offcuts, func(i, j int) bool {
		return offcuts[i].Length > offcuts[j].Length
	})
	return offcuts
}

// TotalOffcutLength returns the summed length of the given offcuts.
func TotalOffcutLength(offcuts []Offcut) int {
	total := 0
	for _, o := range offcuts {
		total += o.Length
	}
	return total
}
