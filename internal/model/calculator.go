package model

import "math"

// PurchaseEstimate holds the results of a bar purchasing calculation.
type PurchaseEstimate struct {
	TotalPieceLength int     `json:"total_piece_length"` // Total length of all pieces including kerf (mm)
	TotalMeters      float64 `json:"total_meters"`       // Same total in metres
	StockLength      int     `json:"stock_length"`       // Length of one bar (mm)
	BarsNeededExact  float64 `json:"bars_needed_exact"`  // Exact fractional number of bars
	BarsNeededMin    int     `json:"bars_needed_min"`    // Lower bound (ceiling of exact)
	BarsWithWaste    int     `json:"bars_with_waste"`    // Recommended bars including waste factor
	WastePercent     float64 `json:"waste_percent"`      // Waste factor applied (e.g., 10 for 10%)
	EstimatedCost    float64 `json:"estimated_cost"`     // Total cost if pricing available
	PricePerBar      float64 `json:"price_per_bar"`      // Price used for estimation
	Kerf             int     `json:"kerf"`               // Kerf used in calculation
}

// CalculatePurchaseEstimate computes how many bars to buy for a given cut list
// from total length alone. BarsNeededMin is a lower bound no cutting plan can
// beat; a planned run may need more bars.
func CalculatePurchaseEstimate(pieces []Piece, stockLength, kerf int, wastePercent, pricePerBar float64) PurchaseEstimate {
	total := 0
	for _, p := range pieces {
		if p.Quantity <= 0 {
			continue
		}
		total += (p.Length + kerf) * p.Quantity
	}

	if stockLength <= 0 {
		return PurchaseEstimate{
			TotalPieceLength: total,
			TotalMeters:      float64(total) / 1000.0,
			WastePercent:     wastePercent,
			Kerf:             kerf,
		}
	}

	exactBars := float64(total) / float64(stockLength)
	minBars := int(math.Ceil(exactBars))

	// Apply waste factor
	wasteFactor := 1.0 + (wastePercent / 100.0)
	barsWithWaste := int(math.Ceil(exactBars * wasteFactor))
	if barsWithWaste < minBars {
		barsWithWaste = minBars
	}

	return PurchaseEstimate{
		TotalPieceLength: total,
		TotalMeters:      float64(total) / 1000.0,
		StockLength:      stockLength,
		BarsNeededExact:  exactBars,
		BarsNeededMin:    minBars,
		BarsWithWaste:    barsWithWaste,
		WastePercent:     wastePercent,
		EstimatedCost:    float64(barsWithWaste) * pricePerBar,
		PricePerBar:      pricePerBar,
		Kerf:             kerf,
	}
}
