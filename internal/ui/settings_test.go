package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/BarCut/internal/model"
)

func TestParseSettings(t *testing.T) {
	base := model.PlanSettings{StockLength: 4000, Kerf: 3, MinOffcut: 300}

	s, err := parseSettings(base, " 6000 ", "2")
	require.NoError(t, err)
	assert.Equal(t, model.PlanSettings{StockLength: 6000, Kerf: 2, MinOffcut: 300}, s)

	s, err = parseSettings(base, "3000", "")
	require.NoError(t, err)
	assert.Equal(t, 0, s.Kerf)

	for _, tt := range []struct{ stock, kerf string }{
		{"", "0"},
		{"0", "0"},
		{"-10", "0"},
		{"40.5", "0"},
		{"abc", "0"},
		{"4000", "-1"},
		{"4000", "x"},
	} {
		got, err := parseSettings(base, tt.stock, tt.kerf)
		assert.Error(t, err, "stock %q kerf %q", tt.stock, tt.kerf)
		assert.Equal(t, base, got)
	}
}

func TestParsePiece(t *testing.T) {
	p := model.NewPiece("Rail", 1200, 2)

	edited, err := parsePiece(p, " Post ", "900", "0")
	require.NoError(t, err)
	assert.Equal(t, p.ID, edited.ID)
	assert.Equal(t, "Post", edited.Label)
	assert.Equal(t, 900, edited.Length)
	assert.Equal(t, 0, edited.Quantity)

	_, err = parsePiece(p, "Post", "0", "1")
	assert.Error(t, err)
	_, err = parsePiece(p, "Post", "900", "-1")
	assert.Error(t, err)
}
