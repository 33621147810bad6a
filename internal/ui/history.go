package ui

import "github.com/piwi3910/BarCut/internal/model"

const defaultMaxDepth = 50

// Snapshot captures the piece list and settings at a point in time.
type Snapshot struct {
	Pieces   []model.Piece
	Settings model.PlanSettings
	Label    string // What the following edit did, e.g. "Remove piece"
}

// History keeps bounded undo and redo stacks of snapshots.
type History struct {
	undoStack []Snapshot
	redoStack []Snapshot
	maxDepth  int
}

func NewHistory() *History {
	return &History{
		maxDepth: defaultMaxDepth,
	}
}

// Push saves the state from before an edit and clears the redo stack.
func (h *History) Push(s Snapshot) {
	h.undoStack = append(h.undoStack, s)
	if len(h.undoStack) > h.maxDepth {
		h.undoStack = h.undoStack[len(h.undoStack)-h.maxDepth:]
	}
	h.redoStack = nil
}

// Undo returns the state to restore and moves current onto the redo stack.
// It reports false when there is nothing to undo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.undoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, current)
	return last, true
}

// Redo is the inverse of Undo.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.redoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, current)
	return last, true
}

func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// Clear drops all undo and redo history, e.g. after opening another file.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

func copyPieces(pieces []model.Piece) []model.Piece {
	if pieces == nil {
		return nil
	}
	cp := make([]model.Piece, len(pieces))
	copy(cp, pieces)
	return cp
}

// MakeSnapshot copies the piece list so later edits do not leak into it.
func MakeSnapshot(pieces []model.Piece, settings model.PlanSettings, label string) Snapshot {
	return Snapshot{
		Pieces:   copyPieces(pieces),
		Settings: settings,
		Label:    label,
	}
}
