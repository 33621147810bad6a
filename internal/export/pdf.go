package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/rotisserie/eris"

	"github.com/piwi3910/BarCut/internal/model"
)

// pieceColor represents an RGB color for a cut piece.
type pieceColor struct {
	R, G, B int
}

// pieceColors is indexed by piece type, so a length keeps its color on every bar.
var pieceColors = []pieceColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 8.0
	barHeight    = 9.0
	barGap       = 4.0
	barLabelW    = 22.0
	barsPerPage  = 10
)

// ExportPDF writes a report with proportional bar diagrams, several bars per
// page, followed by a summary page.
func ExportPDF(path string, plan model.CuttingPlan, pieces []model.Piece) error {
	if len(plan.Bars) == 0 {
		return eris.New("no bars to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pages := (len(plan.Bars) + barsPerPage - 1) / barsPerPage
	for page := 0; page < pages; page++ {
		start := page * barsPerPage
		end := min(start+barsPerPage, len(plan.Bars))
		pdf.AddPage()
		renderBarsPage(pdf, plan, pieces, plan.Bars[start:end], page+1, pages)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, plan, pieces)

	return eris.Wrap(pdf.OutputFileAndClose(path), "write pdf")
}

// renderBarsPage draws one page of bar diagrams.
func renderBarsPage(pdf *fpdf.Fpdf, plan model.CuttingPlan, pieces []model.Piece, bars []model.BarResult, page, pages int) {
	contentW := pageWidth - marginLeft - marginRight

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Cutting Plan: %d bars of %d mm (page %d/%d)", plan.TotalBars, plan.StockLength, page, pages)
	pdf.CellFormat(contentW, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Kerf: %d mm | Total waste: %d mm | Efficiency: %.1f%%",
		plan.Kerf, plan.TotalWaste(), plan.Efficiency())
	pdf.CellFormat(contentW, 5, stats, "", 0, "L", false, 0, "")

	drawW := contentW - barLabelW
	scale := drawW / float64(plan.StockLength)

	y := drawAreaTop
	for _, bar := range bars {
		// Bar number and waste on the left
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(barLabelW, barHeight/2, fmt.Sprintf("Bar %d", bar.Number), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 7)
		pdf.SetXY(marginLeft, y+barHeight/2)
		pdf.CellFormat(barLabelW, barHeight/2, fmt.Sprintf("waste %d", bar.Waste), "", 0, "L", false, 0, "")

		x0 := marginLeft + barLabelW

		// Stock bar background (wood color)
		pdf.SetFillColor(210, 180, 140)
		pdf.SetDrawColor(100, 100, 100)
		pdf.SetLineWidth(0.3)
		pdf.Rect(x0, y, drawW, barHeight, "FD")

		for _, pos := range barLayout(bar, plan.Kerf) {
			col := pieceColors[max(pos.PieceIndex, 0)%len(pieceColors)]
			px := x0 + float64(pos.Offset)*scale
			pw := float64(pos.Length) * scale

			pdf.SetFillColor(col.R, col.G, col.B)
			pdf.SetDrawColor(30, 30, 30)
			pdf.SetLineWidth(0.2)
			pdf.Rect(px, y, pw, barHeight, "FD")

			text := fmt.Sprintf("%d", pos.Length)
			if label := pieceLabel(pieces, pos.PieceIndex); label != "" {
				text = fmt.Sprintf("%s %d", label, pos.Length)
			}
			pdf.SetFont("Helvetica", "", 7)
			if tw := pdf.GetStringWidth(text); tw < pw-1 {
				pdf.SetXY(px+(pw-tw)/2, y+(barHeight-3)/2)
				pdf.CellFormat(tw, 3, text, "", 0, "C", false, 0, "")
			}
		}

		// Hatch the remnant
		if bar.Waste > 0 {
			ww := float64(bar.Waste) * scale
			drawHatchPattern(pdf, x0+drawW-ww, y, ww, barHeight)
		}

		y += barHeight + barGap
	}

	pieceLegend(pdf, pieces, y+2)
}

// drawHatchPattern draws diagonal lines within a rectangle.
func drawHatchPattern(pdf *fpdf.Fpdf, x, y, w, h float64) {
	pdf.SetDrawColor(150, 150, 150)
	pdf.SetLineWidth(0.1)
	spacing := 3.0
	for d := -h; d < w; d += spacing {
		t0 := max(0, -d)
		t1 := min(h, w-d)
		if t1 <= t0 {
			continue
		}
		pdf.Line(x+d+t0, y+h-t0, x+d+t1, y+h-t1)
	}
}

// pieceLegend lists each piece type with its color swatch.
func pieceLegend(pdf *fpdf.Fpdf, pieces []model.Piece, y float64) {
	if len(pieces) == 0 || y > pageHeight-marginBottom-6 {
		return
	}
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	x := marginLeft
	for i, p := range pieces {
		text := fmt.Sprintf("%s %d mm x%d", p.Label, p.Length, p.Quantity)
		w := pdf.GetStringWidth(text) + 8
		if x+w > pageWidth-marginRight {
			x = marginLeft
			y += 5
			if y > pageHeight-marginBottom-4 {
				return
			}
		}
		col := pieceColors[i%len(pieceColors)]
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(x, y+0.5, 3, 3, "F")
		pdf.SetXY(x+4, y)
		pdf.CellFormat(w-4, 4, text, "", 0, "L", false, 0, "")
		x += w + 3
	}
}

// renderSummaryPage draws totals, the per-piece table and the unplaced warning.
func renderSummaryPage(pdf *fpdf.Fpdf, plan model.CuttingPlan, pieces []model.Piece) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Summary", "", 0, "L", false, 0, "")

	y := marginTop + headerHeight + 4
	items := []struct {
		label string
		value string
	}{
		{"Bars required", fmt.Sprintf("%d", plan.TotalBars)},
		{"Stock length", fmt.Sprintf("%d mm", plan.StockLength)},
		{"Kerf", fmt.Sprintf("%d mm", plan.Kerf)},
		{"Total waste", fmt.Sprintf("%d mm", plan.TotalWaste())},
		{"Efficiency", fmt.Sprintf("%.1f%%", plan.Efficiency())},
		{"Status", plan.Status.String()},
	}
	for _, item := range items {
		pdf.SetXY(marginLeft, y)
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(50, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		y += 7
	}

	y += 5
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Pieces", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{15, 90, 40, 40, 40}
	headers := []string{"#", "Label", "Length", "Required", "Cut"}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, p := range pieces {
		if y > pageHeight-marginBottom-30 {
			break
		}
		used := 0
		if i < len(plan.UsedCounts) {
			used = plan.UsedCounts[i]
		}
		row := []string{
			fmt.Sprintf("%d", i+1),
			p.Label,
			fmt.Sprintf("%d mm", p.Length),
			fmt.Sprintf("%d", p.Quantity),
			fmt.Sprintf("%d", used),
		}
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		xPos = marginLeft
		for j, cell := range row {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	if len(plan.Unplaced) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNING: Unplaced Pieces", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, u := range plan.Unplaced {
			pdf.SetXY(marginLeft+5, y)
			text := fmt.Sprintf("- %s: %d mm (qty: %d)", u.Label, u.Length, u.Count)
			pdf.CellFormat(200, 5, text, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by BarCut - Bar Cutting Optimizer", "", 0, "C", false, 0, "")
}
