package project

import (
	"os"
	"path/filepath"

	"github.com/piwi3910/BarCut/internal/model"
)

// StockLibraryPath returns the stock library file inside dir.
func StockLibraryPath(dir string) string {
	return filepath.Join(dir, "stock.json")
}

// SaveStockLibrary writes the library to the specified JSON file.
func SaveStockLibrary(path string, lib model.StockLibrary) error {
	return writeJSON(path, lib)
}

// LoadStockLibrary reads the library from the specified JSON file.
// If the file does not exist, the default library is saved there and returned.
func LoadStockLibrary(path string) (model.StockLibrary, error) {
	var lib model.StockLibrary
	if err := readJSON(path, &lib); err != nil {
		if os.IsNotExist(err) {
			lib = model.DefaultStockLibrary()
			return lib, SaveStockLibrary(path, lib)
		}
		return model.StockLibrary{}, err
	}
	return lib, nil
}

// ImportStockLibrary merges the presets stored at path into existing.
// Presets whose ID is already present are skipped.
func ImportStockLibrary(path string, existing model.StockLibrary) (model.StockLibrary, error) {
	var imported model.StockLibrary
	if err := readJSON(path, &imported); err != nil {
		return existing, err
	}

	ids := make(map[string]bool, len(existing.Stocks))
	for _, s := range existing.Stocks {
		ids[s.ID] = true
	}
	for _, s := range imported.Stocks {
		if !ids[s.ID] {
			existing.Stocks = append(existing.Stocks, s)
			ids[s.ID] = true
		}
	}
	return existing, nil
}
