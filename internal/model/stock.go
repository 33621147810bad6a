package model

import "github.com/google/uuid"

// StockPreset represents a reusable stock bar definition.
type StockPreset struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Length      int     `json:"length"` // mm
	Material    string  `json:"material"`
	PricePerBar float64 `json:"price_per_bar"` // 0 if not set
}

// NewStockPreset creates a new StockPreset with a generated ID.
func NewStockPreset(name string, length int, material string) StockPreset {
	return StockPreset{
		ID:       uuid.New().String()[:8],
		Name:     name,
		Length:   length,
		Material: material,
	}
}

// NewStockPresetWithPrice creates a StockPreset carrying a unit price.
func NewStockPresetWithPrice(name string, length int, material string, price float64) StockPreset {
	sp := NewStockPreset(name, length, material)
	sp.PricePerBar = price
	return sp
}

// ApplyToSettings copies the preset's stock length into the given settings.
func (sp StockPreset) ApplyToSettings(s *PlanSettings) {
	s.StockLength = sp.Length
}

// StockLibrary holds the user's saved stock presets.
type StockLibrary struct {
	Stocks []StockPreset `json:"stocks"`
}

// DefaultStockLibrary returns a library populated with common bar lengths.
func DefaultStockLibrary() StockLibrary {
	return StockLibrary{
		Stocks: []StockPreset{
			NewStockPreset("Timber 1820 (6 shaku)", 1820, "Timber"),
			NewStockPreset("Timber 3000", 3000, "Timber"),
			NewStockPreset("Timber 3640 (12 shaku)", 3640, "Timber"),
			NewStockPreset("Timber 4000", 4000, "Timber"),
			NewStockPreset("Aluminium extrusion 6000", 6000, "Aluminium"),
			NewStockPreset("Steel tube 6000", 6000, "Steel"),
		},
	}
}

// FindByID returns a pointer to the preset with the given ID, or nil.
func (lib *StockLibrary) FindByID(id string) *StockPreset {
	for i := range lib.Stocks {
		if lib.Stocks[i].ID == id {
			return &lib.Stocks[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first preset with the given name, or nil.
func (lib *StockLibrary) FindByName(name string) *StockPreset {
	for i := range lib.Stocks {
		if lib.Stocks[i].Name == name {
			return &lib.Stocks[i]
		}
	}
	return nil
}

// Names returns the preset names for UI dropdowns.
func (lib *StockLibrary) Names() []string {
	names := make([]string, len(lib.Stocks))
	for i, s := range lib.Stocks {
		names[i] = s.Name
	}
	return names
}

// Lengths returns the distinct preset lengths in library order.
func (lib *StockLibrary) Lengths() []int {
	seen := make(map[int]bool, len(lib.Stocks))
	var lengths []int
	for _, s := range lib.Stocks {
		if s.Length > 0 && !seen[s.Length] {
			seen[s.Length] = true
			lengths = append(lengths, s.Length)
		}
	}
	return lengths
}
