package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/BarCut/internal/model"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BARCUT_CONFIG_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Nil(t, cfg.StockLength)
	assert.Nil(t, cfg.Kerf)
	assert.Nil(t, cfg.MinOffcut)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "pretty", cfg.LogFormat)

	settings := model.DefaultPlanSettings()
	cfg.ApplyToSettings(&settings)
	assert.Equal(t, model.DefaultPlanSettings(), settings)
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BARCUT_STOCK_LENGTH", "6000")
	t.Setenv("BARCUT_KERF", "0")
	t.Setenv("BARCUT_MIN_OFFCUT", "500")
	t.Setenv("BARCUT_LOG_LEVEL", "DEBUG")
	t.Setenv("BARCUT_LOG_FORMAT", "json")
	t.Setenv("BARCUT_CONFIG_DIR", dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.ConfigDir)

	settings := model.PlanSettings{StockLength: 4000, Kerf: 3, MinOffcut: 300}
	cfg.ApplyToSettings(&settings)
	assert.Equal(t, model.PlanSettings{StockLength: 6000, Kerf: 0, MinOffcut: 500}, settings)
}

func TestLoadConfigDirDefault(t *testing.T) {
	t.Setenv("BARCUT_CONFIG_DIR", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.ConfigDir)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero stock", "BARCUT_STOCK_LENGTH", "0"},
		{"negative kerf", "BARCUT_KERF", "-2"},
		{"negative offcut", "BARCUT_MIN_OFFCUT", "-1"},
		{"not a number", "BARCUT_STOCK_LENGTH", "long"},
		{"bad level", "BARCUT_LOG_LEVEL", "chatty"},
		{"bad format", "BARCUT_LOG_FORMAT", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BARCUT_CONFIG_DIR", t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
