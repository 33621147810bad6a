package engine

import (
	"bytes"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/BarCut/internal/model"
)

func testSettings(stock int) model.PlanSettings {
	s := model.DefaultPlanSettings()
	s.StockLength = stock
	s.Kerf = 0
	return s
}

func TestPlan_AllZeroCountsIsDoneAndEmpty(t *testing.T) {
	pieces := []model.Piece{
		model.NewPiece("A", 1200, 0),
		model.NewPiece("B", 800, 0),
	}

	plan, err := New(testSettings(4000)).Plan(pieces)
	require.NoError(t, err)

	assert.Equal(t, model.StatusDone, plan.Status)
	assert.Empty(t, plan.Bars)
	assert.Equal(t, 0, plan.TotalBars)
	assert.Equal(t, []int{0, 0}, plan.UsedCounts)
	assert.Empty(t, plan.Unplaced)
}

func TestPlan_FullLengthPiecesOnePerBar(t *testing.T) {
	plan, err := New(testSettings(4000)).Plan([]model.Piece{model.NewPiece("Rail", 4000, 3)})
	require.NoError(t, err)

	require.Len(t, plan.Bars, 3)
	assert.Equal(t, 3, plan.TotalBars)
	assert.Equal(t, model.StatusDone, plan.Status)
	for i, bar := range plan.Bars {
		assert.Equal(t, i+1, bar.Number)
		assert.Equal(t, []int{4000}, bar.Cuts)
		assert.Equal(t, 0, bar.Waste)
	}
}

func TestPlan_MixedLengths(t *testing.T) {
	pieces := []model.Piece{
		model.NewPiece("Long", 2000, 1),
		model.NewPiece("Short", 1000, 3),
	}

	plan, err := New(testSettings(4000)).Plan(pieces)
	require.NoError(t, err)

	// The first bar is filled exactly. The last short piece needs a second
	// bar since 5000mm of demand never fits in one 4000mm bar.
	require.Len(t, plan.Bars, 2)
	assert.Equal(t, []int{1000, 1000, 2000}, plan.Bars[0].Cuts)
	assert.Equal(t, []int{1, 1, 0}, plan.Bars[0].PieceIndexes)
	assert.Equal(t, 0, plan.Bars[0].Waste)
	assert.Equal(t, []int{1000}, plan.Bars[1].Cuts)
	assert.Equal(t, 3000, plan.Bars[1].Waste)
	assert.Equal(t, []int{1, 3}, plan.UsedCounts)
	assert.Equal(t, model.StatusDone, plan.Status)
}

func TestPlan_OversizePieceStalls(t *testing.T) {
	plan, err := New(testSettings(4000)).Plan([]model.Piece{model.NewPiece("Beam", 4500, 2)})
	require.NoError(t, err)

	assert.Equal(t, model.StatusStalled, plan.Status)
	assert.True(t, plan.Stalled())
	assert.Empty(t, plan.Bars)
	assert.Equal(t, 0, plan.TotalBars)
	require.Len(t, plan.Unplaced, 1)
	assert.Equal(t, model.UnplacedPiece{Index: 0, Label: "Beam", Length: 4500, Count: 2}, plan.Unplaced[0])
	assert.Equal(t, 2, plan.UnplacedCount())
}

func TestPlan_StallsAfterPlacingWhatFits(t *testing.T) {
	pieces := []model.Piece{
		model.NewPiece("Fits", 1500, 2),
		model.NewPiece("TooLong", 5000, 1),
	}

	plan, err := New(testSettings(4000)).Plan(pieces)
	require.NoError(t, err)

	require.Len(t, plan.Bars, 1)
	assert.Equal(t, []int{1500, 1500}, plan.Bars[0].Cuts)
	assert.Equal(t, model.StatusStalled, plan.Status)
	assert.Equal(t, []int{2, 0}, plan.UsedCounts)
	require.Len(t, plan.Unplaced, 1)
	assert.Equal(t, 1, plan.Unplaced[0].Index)
	assert.Equal(t, "TooLong", plan.Unplaced[0].Label)
}

func TestPlan_BarInvariants(t *testing.T) {
	pieces := []model.Piece{
		model.NewPiece("A", 870, 7),
		model.NewPiece("B", 1230, 5),
		model.NewPiece("C", 455, 11),
		model.NewPiece("D", 2010, 3),
	}

	plan, err := New(testSettings(4000)).Plan(pieces)
	require.NoError(t, err)
	require.Equal(t, model.StatusDone, plan.Status)

	used := make([]int, len(pieces))
	for _, bar := range plan.Bars {
		assert.LessOrEqual(t, bar.UsedLength(), 4000)
		assert.Equal(t, 4000-bar.UsedLength(), bar.Waste)
		require.Len(t, bar.PieceIndexes, len(bar.Cuts))
		for j, i := range bar.PieceIndexes {
			assert.Equal(t, pieces[i].Length, bar.Cuts[j])
			used[i]++
		}
	}
	for i, p := range pieces {
		assert.Equal(t, p.Quantity, used[i], "piece %s", p.Label)
	}
	assert.Equal(t, used, plan.UsedCounts)
	assert.Equal(t, len(plan.Bars), plan.TotalBars)
}

func TestPlan_DoesNotModifyPieces(t *testing.T) {
	pieces := []model.Piece{model.NewPiece("A", 1000, 5)}

	_, err := New(testSettings(4000)).Plan(pieces)
	require.NoError(t, err)

	assert.Equal(t, 5, pieces[0].Quantity)
}

func TestPlan_BarHandlerCalledInOrder(t *testing.T) {
	var seen []model.BarResult
	p := New(testSettings(3000), WithBarHandler(func(b model.BarResult) {
		seen = append(seen, b)
	}))

	plan, err := p.Plan([]model.Piece{model.NewPiece("A", 1000, 7)})
	require.NoError(t, err)

	require.Len(t, seen, 3)
	assert.Equal(t, plan.Bars, seen)
	for i, b := range seen {
		assert.Equal(t, i+1, b.Number)
	}
}

func TestPlan_Kerf(t *testing.T) {
	s := testSettings(4000)
	s.Kerf = 10

	plan, err := New(s).Plan([]model.Piece{model.NewPiece("A", 1000, 4)})
	require.NoError(t, err)

	// Four pieces would need three cuts: 4000 + 30 > 4000.
	require.Len(t, plan.Bars, 2)
	assert.Equal(t, []int{1000, 1000, 1000}, plan.Bars[0].Cuts)
	assert.Equal(t, 20, plan.Bars[0].KerfLoss)
	assert.Equal(t, 980, plan.Bars[0].Waste)
	assert.Equal(t, []int{1000}, plan.Bars[1].Cuts)
	assert.Equal(t, 0, plan.Bars[1].KerfLoss)
	assert.Equal(t, 3000, plan.Bars[1].Waste)
	assert.Equal(t, 10, plan.Kerf)
}

func TestPlan_KerfLastPieceNeedsNoTrailingCut(t *testing.T) {
	s := testSettings(1000)
	s.Kerf = 5

	plan, err := New(s).Plan([]model.Piece{model.NewPiece("A", 1000, 1)})
	require.NoError(t, err)

	require.Len(t, plan.Bars, 1)
	assert.Equal(t, 0, plan.Bars[0].Waste)
	assert.Equal(t, model.StatusDone, plan.Status)
}

func TestPlan_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		settings model.PlanSettings
		pieces   []model.Piece
	}{
		{"zero stock", testSettings(0), []model.Piece{model.NewPiece("A", 100, 1)}},
		{"negative stock", testSettings(-5), []model.Piece{model.NewPiece("A", 100, 1)}},
		{"zero length", testSettings(4000), []model.Piece{model.NewPiece("A", 0, 1)}},
		{"negative length", testSettings(4000), []model.Piece{model.NewPiece("A", -100, 1)}},
		{"negative count", testSettings(4000), []model.Piece{model.NewPiece("A", 100, -1)}},
		{"negative kerf", model.PlanSettings{StockLength: 4000, Kerf: -1}, []model.Piece{model.NewPiece("A", 100, 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.settings).Plan(tt.pieces)
			require.Error(t, err)
			assert.True(t, eris.Is(err, ErrInvalidInput), "got %v", err)
		})
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate([]int{100, 200}, []int{0, 3}, 1000))
	assert.NoError(t, Validate(nil, nil, 1000))

	err := Validate([]int{100, 200}, []int{1}, 1000)
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrInvalidInput))
}

func TestPlanBars(t *testing.T) {
	plan, err := PlanBars(typesOf(2000, 1000), []int{1, 3}, 4000)
	require.NoError(t, err)

	assert.Equal(t, 2, plan.TotalBars)
	assert.Equal(t, model.StatusDone, plan.Status)

	_, err = PlanBars(typesOf(2000), []int{1, 2}, 4000)
	assert.True(t, eris.Is(err, ErrInvalidInput))
}

func TestPlan_LogsStall(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := New(testSettings(1000), WithLogger(logger)).
		Plan([]model.Piece{model.NewPiece("A", 600, 1), model.NewPiece("B", 1200, 1)})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"message":"bar planned"`)
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"component":"planner"`)
}
