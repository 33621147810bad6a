package engine

import "github.com/rotisserie/eris"

var (
	// ErrInvalidInput is wrapped by every error that rejects a run before it
	// starts. Match it with eris.Is.
	ErrInvalidInput = eris.New("invalid input")

	// ErrInventoryMismatch means a solver result could not be subtracted
	// from the inventory it was computed against.
	ErrInventoryMismatch = eris.New("solver result exceeds inventory")
)
