package project

import (
	"time"

	"github.com/rotisserie/eris"

	"github.com/piwi3910/BarCut/internal/model"
)

// BackupVersion is written into every backup file.
const BackupVersion = "1.0.0"

// BackupData is the top-level structure for import/export of all application data.
type BackupData struct {
	Version   string             `json:"version"`
	CreatedAt string             `json:"created_at"`
	Config    model.AppConfig    `json:"config"`
	Stock     model.StockLibrary `json:"stock"`
}

// ExportAllData writes the config and stock library to a single JSON file.
func ExportAllData(exportPath string, config model.AppConfig, lib model.StockLibrary) error {
	backup := BackupData{
		Version:   BackupVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Config:    config,
		Stock:     lib,
	}
	return eris.Wrap(writeJSON(exportPath, backup), "export backup")
}

// ImportAllData reads a backup JSON file and returns the contained data.
// The caller is responsible for applying it.
func ImportAllData(importPath string) (BackupData, error) {
	var backup BackupData
	if err := readJSON(importPath, &backup); err != nil {
		return BackupData{}, eris.Wrap(err, "import backup")
	}
	if backup.Version == "" {
		return BackupData{}, eris.New("invalid backup file: missing version field")
	}
	if backup.Config.RecentFiles == nil {
		backup.Config.RecentFiles = []string{}
	}
	return backup, nil
}
