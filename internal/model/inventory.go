package model

// Inventory holds the remaining count of each piece type, indexed by
// PieceType.Index. Only the planner mutates it, and only by subtracting
// what a solver call reported as used.
type Inventory []int

// NewInventory copies the initial counts into a fresh inventory.
func NewInventory(counts []int) Inventory {
	inv := make(Inventory, len(counts))
	copy(inv, counts)
	return inv
}

// Total returns the number of copies still demanded.
func (inv Inventory) Total() int {
	total := 0
	for _, c := range inv {
		total += c
	}
	return total
}

// Clone returns an independent copy.
func (inv Inventory) Clone() Inventory {
	return NewInventory(inv)
}

// Subtract removes used copies element-wise. It reports false and leaves the
// inventory untouched if the lengths differ or any count would go negative.
func (inv Inventory) Subtract(used []int) bool {
	if len(used) != len(inv) {
		return false
	}
	for i, u := range used {
		if u < 0 || u > inv[i] {
			return false
		}
	}
	for i, u := range used {
		inv[i] -= u
	}
	return true
}
