package ui

import (
	"testing"

	"github.com/piwi3910/BarCut/internal/model"
)

func piecesOf(lengths ...int) []model.Piece {
	pieces := make([]model.Piece, len(lengths))
	for i, l := range lengths {
		pieces[i] = model.Piece{ID: string(rune('a' + i)), Label: "P", Length: l, Quantity: 1}
	}
	return pieces
}

func TestNewHistory(t *testing.T) {
	h := NewHistory()
	if h.maxDepth != defaultMaxDepth {
		t.Errorf("expected maxDepth %d, got %d", defaultMaxDepth, h.maxDepth)
	}
	if h.CanUndo() {
		t.Error("new history should not be undoable")
	}
	if h.CanRedo() {
		t.Error("new history should not be redoable")
	}
}

func TestPushAndUndo(t *testing.T) {
	h := NewHistory()
	settings := model.DefaultPlanSettings()

	h.Push(MakeSnapshot(nil, settings, "initial"))
	if !h.CanUndo() {
		t.Fatal("should be able to undo after push")
	}

	current := MakeSnapshot(piecesOf(1000), settings, "current")
	restored, ok := h.Undo(current)
	if !ok {
		t.Fatal("undo should succeed")
	}
	if len(restored.Pieces) != 0 {
		t.Errorf("expected 0 pieces after undo, got %d", len(restored.Pieces))
	}
	if restored.Label != "initial" {
		t.Errorf("expected label 'initial', got %q", restored.Label)
	}
	if !h.CanRedo() {
		t.Error("should be able to redo after undo")
	}
}

func TestUndoRedoRestoresSettings(t *testing.T) {
	h := NewHistory()
	before := model.PlanSettings{StockLength: 4000, Kerf: 3, MinOffcut: 300}
	after := model.PlanSettings{StockLength: 6000, Kerf: 3, MinOffcut: 300}

	h.Push(MakeSnapshot(piecesOf(1000), before, "change stock"))

	restored, ok := h.Undo(MakeSnapshot(piecesOf(1000), after, ""))
	if !ok {
		t.Fatal("undo should succeed")
	}
	if restored.Settings != before {
		t.Errorf("expected %+v after undo, got %+v", before, restored.Settings)
	}

	redone, ok := h.Redo(restored)
	if !ok {
		t.Fatal("redo should succeed")
	}
	if redone.Settings != after {
		t.Errorf("expected %+v after redo, got %+v", after, redone.Settings)
	}
}

func TestPushClearsRedo(t *testing.T) {
	h := NewHistory()
	s := model.DefaultPlanSettings()

	h.Push(MakeSnapshot(nil, s, "one"))
	h.Undo(MakeSnapshot(piecesOf(500), s, "two"))
	if !h.CanRedo() {
		t.Fatal("expected redo to be available")
	}

	h.Push(MakeSnapshot(piecesOf(700), s, "three"))
	if h.CanRedo() {
		t.Error("push should clear the redo stack")
	}
}

func TestMaxDepth(t *testing.T) {
	h := NewHistory()
	h.maxDepth = 3
	s := model.DefaultPlanSettings()

	for i := 1; i <= 5; i++ {
		h.Push(MakeSnapshot(piecesOf(i*100), s, ""))
	}
	if len(h.undoStack) != 3 {
		t.Fatalf("expected 3 snapshots, got %d", len(h.undoStack))
	}
	if got := h.undoStack[0].Pieces[0].Length; got != 300 {
		t.Errorf("expected oldest kept snapshot to be 300, got %d", got)
	}
}

func TestUndoRedoEmpty(t *testing.T) {
	h := NewHistory()
	if _, ok := h.Undo(Snapshot{}); ok {
		t.Error("undo on empty history should fail")
	}
	if _, ok := h.Redo(Snapshot{}); ok {
		t.Error("redo on empty history should fail")
	}
}

func TestClear(t *testing.T) {
	h := NewHistory()
	s := model.DefaultPlanSettings()
	h.Push(MakeSnapshot(nil, s, "a"))
	h.Push(MakeSnapshot(nil, s, "b"))
	h.Undo(Snapshot{})

	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("clear should empty both stacks")
	}
}

func TestSnapshotCopiesPieces(t *testing.T) {
	pieces := piecesOf(1000, 2000)
	snap := MakeSnapshot(pieces, model.DefaultPlanSettings(), "")

	pieces[0].Quantity = 99
	if snap.Pieces[0].Quantity != 1 {
		t.Error("snapshot should not share the piece slice")
	}

	if MakeSnapshot(nil, model.DefaultPlanSettings(), "").Pieces != nil {
		t.Error("nil pieces should stay nil")
	}
}
