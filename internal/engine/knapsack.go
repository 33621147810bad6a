package engine

import (
	"github.com/kelindar/bitmap"

	"github.com/piwi3910/BarCut/internal/model"
)

// noChoice marks a capacity that no non-empty combination reaches.
const noChoice = -1

// Solution is the best-filling combination of pieces for one bar.
type Solution struct {
	UsedCounts  []int // Copies used per piece type
	Waste       int   // capacity minus the total length used
	Combination []int // Piece lengths in backtrack order (high capacity to low)
	Picks       []int // Piece type index for each entry of Combination
}

// Used returns the total number of copies in the solution.
func (s Solution) Used() int {
	total := 0
	for _, u := range s.UsedCounts {
		total += u
	}
	return total
}

// relaxation records which capacities one single-copy pass improved.
type relaxation struct {
	piece int
	took  bitmap.Bitmap
}

// dpTable is rebuilt for every Solve call.
//
// best[c] is the largest total piece length that fits in capacity c.
// choice[c] is the last piece type that improved best[c], or noChoice.
// A single choice array cannot reconstruct a bounded solution: later passes
// overwrite cells that earlier choices were built on, and walking choice
// alone can use a piece more times than the inventory holds. The per-pass
// took bitmaps are walked in reverse instead, which yields exactly the
// combination best[capacity] was built from.
type dpTable struct {
	best   []int
	choice []int
	passes []relaxation
}

func newDPTable(capacity int) *dpTable {
	t := &dpTable{
		best:   make([]int, capacity+1),
		choice: make([]int, capacity+1),
	}
	for c := range t.choice {
		t.choice[c] = noChoice
	}
	return t
}

// relax applies one copy of a piece type as a 0/1 item. The descending scan
// keeps every cell from using this copy twice.
func (t *dpTable) relax(piece, length int) {
	pass := relaxation{piece: piece}
	for c := len(t.best) - 1; c >= length; c-- {
		// Strictly greater only. An equal total found later must not replace
		// the one found first, so ties go to earlier piece types and, within
		// a piece type, to fewer copies. Changing this to >= changes which
		// combination is returned among equal-waste alternatives.
		if v := t.best[c-length] + length; v > t.best[c] {
			t.best[c] = v
			t.choice[c] = piece
			pass.took.Set(uint32(c))
		}
	}
	t.passes = append(t.passes, pass)
}

// backtrack returns the piece indexes of the combination stored in
// best[capacity]. Each step lowers c by a positive length, so it terminates.
func (t *dpTable) backtrack(pieces []model.PieceType) []int {
	var picks []int
	c := len(t.best) - 1
	for p := len(t.passes) - 1; p >= 0 && c > 0; p-- {
		pass := t.passes[p]
		if pass.took.Contains(uint32(c)) {
			picks = append(picks, pass.piece)
			c -= pieces[pass.piece].Length
		}
	}
	return picks
}

// Solve computes the single best-filling combination of pieces for one bar
// of the given capacity, respecting the remaining count of every piece type.
//
// Piece types are processed in input order and each available copy is
// applied as its own 0/1 relaxation pass. A piece type never gets more passes
// than copies that fit in one bar; further passes could not improve any cell.
// Solve never modifies inventory. If nothing fits, UsedCounts is all zero,
// Waste equals capacity and Combination is empty.
//
// inventory must have one entry per piece type and capacity must be >= 0.
func Solve(pieces []model.PieceType, inventory model.Inventory, capacity int) Solution {
	sol := Solution{UsedCounts: make([]int, len(pieces))}
	if capacity <= 0 {
		return sol
	}

	table := newDPTable(capacity)
	for i, pt := range pieces {
		if pt.Length <= 0 || pt.Length > capacity || i >= len(inventory) {
			continue
		}
		copies := min(inventory[i], capacity/pt.Length)
		for n := 0; n < copies; n++ {
			table.relax(i, pt.Length)
		}
	}

	sol.Picks = table.backtrack(pieces)
	used := 0
	for _, i := range sol.Picks {
		sol.UsedCounts[i]++
		sol.Combination = append(sol.Combination, pieces[i].Length)
		used += pieces[i].Length
	}
	sol.Waste = capacity - used
	return sol
}
