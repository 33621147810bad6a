package ui

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/piwi3910/BarCut/internal/model"
)

// parseSettings reads the stock length and kerf entries on top of base.
func parseSettings(base model.PlanSettings, stock, kerf string) (model.PlanSettings, error) {
	s := base

	n, err := strconv.Atoi(strings.TrimSpace(stock))
	if err != nil || n <= 0 {
		return base, eris.Errorf("stock length must be a positive whole number of mm, got %q", stock)
	}
	s.StockLength = n

	if strings.TrimSpace(kerf) == "" {
		s.Kerf = 0
		return s, nil
	}
	k, err := strconv.Atoi(strings.TrimSpace(kerf))
	if err != nil || k < 0 {
		return base, eris.Errorf("kerf must be zero or a positive whole number of mm, got %q", kerf)
	}
	s.Kerf = k
	return s, nil
}

// parsePiece applies the edit dialog fields to p.
func parsePiece(p model.Piece, label, length, qty string) (model.Piece, error) {
	l, err := strconv.Atoi(strings.TrimSpace(length))
	if err != nil || l <= 0 {
		return p, eris.Errorf("length must be a positive whole number of mm, got %q", length)
	}
	q, err := strconv.Atoi(strings.TrimSpace(qty))
	if err != nil || q < 0 {
		return p, eris.Errorf("quantity must be zero or more, got %q", qty)
	}
	p.Label = strings.TrimSpace(label)
	p.Length = l
	p.Quantity = q
	return p, nil
}
