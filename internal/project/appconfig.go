package project

import (
	"os"
	"path/filepath"

	"github.com/piwi3910/BarCut/internal/model"
)

// ConfigPath returns the app config file inside dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, "config.json")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return ConfigPath(DefaultConfigDir())
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
func SaveAppConfig(path string, config model.AppConfig) error {
	return writeJSON(path, config)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	var config model.AppConfig
	if err := readJSON(path, &config); err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	if config.RecentFiles == nil {
		config.RecentFiles = []string{}
	}
	return config, nil
}
