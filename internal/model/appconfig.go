package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default planning settings applied to new projects
	DefaultStockLength int `json:"default_stock_length"`
	DefaultKerf        int `json:"default_kerf"`
	DefaultMinOffcut   int `json:"default_min_offcut"`

	// Application preferences
	RecentFiles []string `json:"recent_files"`
	Theme       string   `json:"theme"` // "light", "dark", "system"
}

// maxRecentFiles bounds the recent file list.
const maxRecentFiles = 10

// DefaultAppConfig returns an AppConfig populated with defaults
// matching the values from DefaultPlanSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultPlanSettings()
	return AppConfig{
		DefaultStockLength: defaults.StockLength,
		DefaultKerf:        defaults.Kerf,
		DefaultMinOffcut:   defaults.MinOffcut,
		RecentFiles:        []string{},
		Theme:              "system",
	}
}

// ApplyToSettings copies the default values from AppConfig into a PlanSettings struct.
// This is used when creating a new project so it inherits the user's saved defaults.
func (c AppConfig) ApplyToSettings(s *PlanSettings) {
	if c.DefaultStockLength > 0 {
		s.StockLength = c.DefaultStockLength
	}
	s.Kerf = c.DefaultKerf
	if c.DefaultMinOffcut > 0 {
		s.MinOffcut = c.DefaultMinOffcut
	}
}

// AddRecentFile moves path to the front of the recent list, dropping duplicates
// and trimming the list to maxRecentFiles entries.
func (c *AppConfig) AddRecentFile(path string) {
	recent := []string{path}
	for _, p := range c.RecentFiles {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > maxRecentFiles {
		recent = recent[:maxRecentFiles]
	}
	c.RecentFiles = recent
}
