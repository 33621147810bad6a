package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/BarCut/internal/model"
)

// LabelInfo holds the data encoded into each piece label's QR code.
type LabelInfo struct {
	PieceLabel string `json:"label"`
	PieceIndex int    `json:"piece"`
	Length     int    `json:"length_mm"`
	BarNumber  int    `json:"bar"`
	Offset     int    `json:"offset_mm"` // Start of the piece measured from the bar start
	Seq        int    `json:"seq"`       // Position of the cut on its bar, 1-based
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// CollectLabelInfos returns one label per cut piece, in bar order.
func CollectLabelInfos(plan model.CuttingPlan, pieces []model.Piece) []LabelInfo {
	var labels []LabelInfo
	for _, bar := range plan.Bars {
		for j, pos := range barLayout(bar, plan.Kerf) {
			label := pieceLabel(pieces, pos.PieceIndex)
			if label == "" {
				label = fmt.Sprintf("%d mm", pos.Length)
			}
			labels = append(labels, LabelInfo{
				PieceLabel: label,
				PieceIndex: pos.PieceIndex,
				Length:     pos.Length,
				BarNumber:  bar.Number,
				Offset:     pos.Offset,
				Seq:        j + 1,
			})
		}
	}
	return labels
}

// ExportLabels generates a PDF of QR-coded labels, one per cut piece, laid
// out on Avery 5160 sheets (3 columns x 10 rows on US Letter).
func ExportLabels(path string, plan model.CuttingPlan, pieces []model.Piece) error {
	labels := CollectLabelInfos(plan, pieces)
	if len(labels) == 0 {
		return eris.New("no cut pieces to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return eris.Wrapf(err, "render label for bar %d cut %d", label.BarNumber, label.Seq)
		}
	}

	return eris.Wrap(pdf.OutputFileAndClose(path), "write labels pdf")
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return eris.Wrap(err, "marshal label info")
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return eris.Wrap(err, "generate QR code")
	}

	imgName := fmt.Sprintf("qr_%d_%d", info.BarNumber, info.Seq)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	title := info.PieceLabel
	if pdf.GetStringWidth(title) > textW {
		runes := []rune(title)
		for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > textW {
			runes = runes[:len(runes)-1]
		}
		title = string(runes) + "..."
	}
	pdf.CellFormat(textW, 4.5, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetXY(textX, y+labelPadding+5)
	pdf.CellFormat(textW, 3.5, fmt.Sprintf("%d mm", info.Length), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	pdf.CellFormat(textW, 3, fmt.Sprintf("Bar %d, cut %d @ %d mm", info.BarNumber, info.Seq, info.Offset), "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}
