// Package project persists preferences, the stock library, project files and
// full backups as JSON under the user's config directory.
package project

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

// DefaultConfigDir returns the default directory for application data,
// ~/.barcut on all platforms.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".barcut")
}

// writeJSON marshals v with indentation and writes it to path, creating any
// missing parent directories.
func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return eris.Wrapf(err, "create directory for %s", path)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return eris.Wrapf(err, "marshal %s", filepath.Base(path))
	}
	return eris.Wrapf(os.WriteFile(path, data, 0644), "write %s", path)
}

// readJSON unmarshals the file at path into v. A missing file is returned
// unwrapped so callers can test it with os.IsNotExist.
func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return err
		}
		return eris.Wrapf(err, "read %s", path)
	}
	return eris.Wrapf(json.Unmarshal(data, v), "parse %s", path)
}
