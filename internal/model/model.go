package model

import "github.com/google/uuid"

// Piece represents a required length to be cut, as entered by the user or
// loaded from a cut list.
type Piece struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Length   int    `json:"length"`   // mm
	Quantity int    `json:"quantity"` // copies still needed
}

func NewPiece(label string, length, qty int) Piece {
	return Piece{
		ID:       uuid.New().String()[:8],
		Label:    label,
		Length:   length,
		Quantity: qty,
	}
}

// PieceType is the immutable identity of one demanded length. Index is the
// position in the original ordered piece list and never changes during a run.
type PieceType struct {
	Index  int `json:"index"`
	Length int `json:"length"`
}

// PieceTypes derives the ordered piece types and their initial counts from
// a piece list.
func PieceTypes(pieces []Piece) ([]PieceType, []int) {
	types := make([]PieceType, len(pieces))
	counts := make([]int, len(pieces))
	for i, p := range pieces {
		types[i] = PieceType{Index: i, Length: p.Length}
		counts[i] = p.Quantity
	}
	return types, counts
}

// PlanStatus is the state of a cutting-plan run.
type PlanStatus int

const (
	StatusRunning PlanStatus = iota // Still consuming bars
	StatusStalled                   // Demand remains but nothing fits in a fresh bar
	StatusDone                      // Every demanded piece was assigned
)

func (s PlanStatus) String() string {
	switch s {
	case StatusStalled:
		return "Stalled"
	case StatusDone:
		return "Done"
	default:
		return "Running"
	}
}

// PlanSettings holds the parameters of a planning run.
type PlanSettings struct {
	StockLength int `json:"stock_length"` // Stock bar length in mm
	Kerf        int `json:"kerf"`         // Material lost per saw cut in mm
	MinOffcut   int `json:"min_offcut"`   // Shortest remnant worth keeping in mm
}

func DefaultPlanSettings() PlanSettings {
	return PlanSettings{
		StockLength: 4000,
		Kerf:        0,
		MinOffcut:   DefaultMinOffcut,
	}
}

// BarResult is the cutting decision for one stock bar.
type BarResult struct {
	Number       int   `json:"number"`        // 1-based bar number
	Cuts         []int `json:"cuts"`          // Cut lengths in the order they were found
	PieceIndexes []int `json:"piece_indexes"` // Piece type index for each entry of Cuts
	Waste        int   `json:"waste"`         // Leftover length in mm
	KerfLoss     int   `json:"kerf_loss"`     // Length consumed by saw cuts in mm
}

// UsedLength returns the total length of the pieces cut from the bar.
func (b BarResult) UsedLength() int {
	total := 0
	for _, c := range b.Cuts {
		total += c
	}
	return total
}

// Efficiency returns the used percentage of a bar of the given length.
func (b BarResult) Efficiency(stockLength int) float64 {
	if stockLength <= 0 {
		return 0
	}
	return float64(b.UsedLength()) / float64(stockLength) * 100.0
}

// UnplacedPiece reports demand that could not be assigned to any bar.
type UnplacedPiece struct {
	Index  int    `json:"index"`
	Label  string `json:"label"`
	Length int    `json:"length"`
	Count  int    `json:"count"`
}

// CuttingPlan holds the full solution of a run.
type CuttingPlan struct {
	StockLength int             `json:"stock_length"`
	Kerf        int             `json:"kerf"`
	Bars        []BarResult     `json:"bars"`
	TotalBars   int             `json:"total_bars"`
	UsedCounts  []int           `json:"used_counts"` // Per piece type, summed over all bars
	Unplaced    []UnplacedPiece `json:"unplaced,omitempty"`
	Status      PlanStatus      `json:"status"`
}

// Stalled reports whether the run ended with demand that no bar could take.
func (p CuttingPlan) Stalled() bool {
	return p.Status == StatusStalled
}

// UnplacedCount returns the number of demanded copies left unassigned.
func (p CuttingPlan) UnplacedCount() int {
	total := 0
	for _, u := range p.Unplaced {
		total += u.Count
	}
	return total
}

// TotalWaste returns the summed leftover length across all bars.
func (p CuttingPlan) TotalWaste() int {
	total := 0
	for _, b := range p.Bars {
		total += b.Waste
	}
	return total
}

// Efficiency returns overall material usage percentage.
func (p CuttingPlan) Efficiency() float64 {
	stock := p.StockLength * len(p.Bars)
	if stock == 0 {
		return 0
	}
	used := 0
	for _, b := range p.Bars {
		used += b.UsedLength()
	}
	return float64(used) / float64(stock) * 100.0
}

// Project ties everything together for save/load.
type Project struct {
	Name     string       `json:"name"`
	Pieces   []Piece      `json:"pieces"`
	Settings PlanSettings `json:"settings"`
	Result   *CuttingPlan `json:"result,omitempty"`
}

func NewProject() Project {
	return Project{
		Name:     "Untitled",
		Pieces:   []Piece{},
		Settings: DefaultPlanSettings(),
	}
}
