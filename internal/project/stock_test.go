package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/BarCut/internal/model"
)

func TestLoadStockLibraryCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stock.json")

	lib, err := LoadStockLibrary(path)
	if err != nil {
		t.Fatalf("LoadStockLibrary failed: %v", err)
	}
	if len(lib.Stocks) != len(model.DefaultStockLibrary().Stocks) {
		t.Errorf("expected default library, got %d presets", len(lib.Stocks))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected default library to be saved: %v", err)
	}

	again, err := LoadStockLibrary(path)
	if err != nil {
		t.Fatalf("second LoadStockLibrary failed: %v", err)
	}
	if again.Stocks[0].ID != lib.Stocks[0].ID {
		t.Error("expected saved library to be loaded, not a fresh default")
	}
}

func TestSaveAndLoadStockLibrary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stock.json")
	lib := model.StockLibrary{Stocks: []model.StockPreset{
		model.NewStockPresetWithPrice("Pine 2x4", 3640, "Timber", 980),
	}}

	if err := SaveStockLibrary(path, lib); err != nil {
		t.Fatalf("SaveStockLibrary failed: %v", err)
	}
	loaded, err := LoadStockLibrary(path)
	if err != nil {
		t.Fatalf("LoadStockLibrary failed: %v", err)
	}
	if len(loaded.Stocks) != 1 {
		t.Fatalf("expected 1 preset, got %d", len(loaded.Stocks))
	}
	if loaded.Stocks[0] != lib.Stocks[0] {
		t.Errorf("got %+v, want %+v", loaded.Stocks[0], lib.Stocks[0])
	}
}

func TestImportStockLibrarySkipsDuplicateIDs(t *testing.T) {
	shared := model.NewStockPreset("Shared", 4000, "Timber")
	existing := model.StockLibrary{Stocks: []model.StockPreset{shared}}

	path := filepath.Join(t.TempDir(), "import.json")
	incoming := model.StockLibrary{Stocks: []model.StockPreset{
		shared,
		model.NewStockPreset("New", 6000, "Steel"),
	}}
	if err := SaveStockLibrary(path, incoming); err != nil {
		t.Fatal(err)
	}

	merged, err := ImportStockLibrary(path, existing)
	if err != nil {
		t.Fatalf("ImportStockLibrary failed: %v", err)
	}
	if len(merged.Stocks) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(merged.Stocks))
	}
	if merged.Stocks[1].Name != "New" {
		t.Errorf("expected New appended, got %s", merged.Stocks[1].Name)
	}
}

func TestImportStockLibraryMissingFile(t *testing.T) {
	existing := model.DefaultStockLibrary()

	merged, err := ImportStockLibrary(filepath.Join(t.TempDir(), "nope.json"), existing)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if len(merged.Stocks) != len(existing.Stocks) {
		t.Error("expected existing library to be returned unchanged")
	}
}
