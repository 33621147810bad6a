package engine

import (
	"github.com/rotisserie/eris"

	"github.com/piwi3910/BarCut/internal/model"
)

// Validate checks the raw inputs of a run. Lengths must be positive, counts
// non-negative, both slices the same length and capacity positive.
func Validate(lengths, counts []int, capacity int) error {
	if capacity <= 0 {
		return eris.Wrapf(ErrInvalidInput, "stock length must be positive, got %d", capacity)
	}
	if len(lengths) != len(counts) {
		return eris.Wrapf(ErrInvalidInput, "got %d lengths but %d counts", len(lengths), len(counts))
	}
	for i, l := range lengths {
		if l <= 0 {
			return eris.Wrapf(ErrInvalidInput, "piece %d: length must be positive, got %d", i+1, l)
		}
	}
	for i, c := range counts {
		if c < 0 {
			return eris.Wrapf(ErrInvalidInput, "piece %d: count must not be negative, got %d", i+1, c)
		}
	}
	return nil
}

func validateSettings(s model.PlanSettings) error {
	if s.Kerf < 0 {
		return eris.Wrapf(ErrInvalidInput, "kerf must not be negative, got %d", s.Kerf)
	}
	return nil
}
