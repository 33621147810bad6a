package engine

import (
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/piwi3910/BarCut/internal/model"
)

// Planner runs the bar-by-bar cutting plan.
type Planner struct {
	Settings model.PlanSettings

	onBar  func(model.BarResult)
	logger zerolog.Logger
}

// Option configures a Planner.
type Option func(*Planner)

// WithBarHandler registers fn to be called once per completed bar, in bar
// order, while the plan is still being computed.
func WithBarHandler(fn func(model.BarResult)) Option {
	return func(p *Planner) {
		p.onBar = fn
	}
}

// WithLogger sets the logger used for per-bar debug output and stall warnings.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Planner) {
		p.logger = l.With().Str("component", "planner").Logger()
	}
}

func New(settings model.PlanSettings, opts ...Option) *Planner {
	p := &Planner{
		Settings: settings,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Plan validates the piece list and cuts it from bars of Settings.StockLength.
// A run that ends with unplaceable demand is reported through
// CuttingPlan.Status and CuttingPlan.Unplaced, not as an error.
func (p *Planner) Plan(pieces []model.Piece) (model.CuttingPlan, error) {
	types, counts := model.PieceTypes(pieces)
	lengths := make([]int, len(types))
	for i, t := range types {
		lengths[i] = t.Length
	}
	if err := Validate(lengths, counts, p.Settings.StockLength); err != nil {
		return model.CuttingPlan{}, err
	}
	if err := validateSettings(p.Settings); err != nil {
		return model.CuttingPlan{}, err
	}

	labels := make([]string, len(pieces))
	for i, pc := range pieces {
		labels[i] = pc.Label
	}
	return p.run(types, counts, labels)
}

// PlanBars runs the driver on bare piece types and counts with no kerf.
func PlanBars(pieceTypes []model.PieceType, counts []int, capacity int) (model.CuttingPlan, error) {
	lengths := make([]int, len(pieceTypes))
	for i, t := range pieceTypes {
		lengths[i] = t.Length
	}
	if err := Validate(lengths, counts, capacity); err != nil {
		return model.CuttingPlan{}, err
	}
	p := New(model.PlanSettings{StockLength: capacity})
	return p.run(pieceTypes, counts, nil)
}

// run is the driver loop. Every cut consumes its length plus one kerf, and
// the bar gets one extra kerf of capacity because the last piece needs no
// trailing cut. With zero kerf the solver sees the bare lengths.
func (p *Planner) run(types []model.PieceType, counts []int, labels []string) (model.CuttingPlan, error) {
	capacity := p.Settings.StockLength
	kerf := p.Settings.Kerf

	effective := make([]model.PieceType, len(types))
	for i, t := range types {
		effective[i] = model.PieceType{Index: t.Index, Length: t.Length + kerf}
	}

	inventory := model.NewInventory(counts)
	plan := model.CuttingPlan{
		StockLength: capacity,
		Kerf:        kerf,
		UsedCounts:  make([]int, len(types)),
		Status:      model.StatusRunning,
	}

	for plan.Status == model.StatusRunning {
		if inventory.Total() == 0 {
			plan.Status = model.StatusDone
			break
		}

		sol := Solve(effective, inventory, capacity+kerf)
		if sol.Used() == 0 {
			plan.Status = model.StatusStalled
			break
		}
		if !inventory.Subtract(sol.UsedCounts) {
			return plan, eris.Wrapf(ErrInventoryMismatch, "bar %d", len(plan.Bars)+1)
		}

		bar := model.BarResult{
			Number:       len(plan.Bars) + 1,
			Cuts:         make([]int, len(sol.Picks)),
			PieceIndexes: sol.Picks,
			KerfLoss:     kerf * (len(sol.Picks) - 1),
		}
		for j, i := range sol.Picks {
			bar.Cuts[j] = types[i].Length
			plan.UsedCounts[i]++
		}
		bar.Waste = capacity - bar.UsedLength() - bar.KerfLoss

		plan.Bars = append(plan.Bars, bar)
		plan.TotalBars++
		p.logger.Debug().
			Int("bar", bar.Number).
			Ints("cuts", bar.Cuts).
			Int("waste", bar.Waste).
			Msg("bar planned")
		if p.onBar != nil {
			p.onBar(bar)
		}
	}

	if plan.Status == model.StatusStalled {
		for i, remaining := range inventory {
			if remaining <= 0 {
				continue
			}
			u := model.UnplacedPiece{Index: i, Length: types[i].Length, Count: remaining}
			if i < len(labels) {
				u.Label = labels[i]
			}
			plan.Unplaced = append(plan.Unplaced, u)
		}
		p.logger.Warn().
			Int("bars", plan.TotalBars).
			Int("unplaced", plan.UnplacedCount()).
			Msg("no remaining piece fits in a fresh bar")
	}

	return plan, nil
}
