package export

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/BarCut/internal/model"
)

// DXF layer names.
const (
	LayerBars = "BARS"
	LayerCuts = "CUTS"
	LayerText = "TEXT"
)

// Diagram geometry in drawing units (mm along the bar).
const (
	dxfBarHeight  = 50.0
	dxfBarSpacing = 120.0
	dxfTextHeight = 20.0
)

// ExportDXF writes a 1:1 cutting diagram. Each bar is a rectangle stacked
// downward from the origin, with a cut line at the end of every piece that
// does not end at the bar end.
func ExportDXF(path string, plan model.CuttingPlan) error {
	if len(plan.Bars) == 0 {
		return eris.New("no bars to export")
	}

	d := dxf.NewDrawing()
	layers := []struct {
		name  string
		color color.ColorNumber
	}{
		{LayerBars, color.White},
		{LayerCuts, color.Red},
		{LayerText, color.Cyan},
	}
	for _, l := range layers {
		if _, err := d.AddLayer(l.name, l.color, dxf.DefaultLineType, false); err != nil {
			return eris.Wrapf(err, "add layer %s", l.name)
		}
	}

	stock := float64(plan.StockLength)
	for i, bar := range plan.Bars {
		y := -float64(i) * dxfBarSpacing
		if err := drawBar(d, bar, plan.Kerf, stock, y); err != nil {
			return eris.Wrapf(err, "draw bar %d", bar.Number)
		}
	}

	return eris.Wrap(d.SaveAs(path), "write dxf")
}

func drawBar(d *drawing.Drawing, bar model.BarResult, kerf int, stock, y float64) error {
	if err := d.ChangeLayer(LayerBars); err != nil {
		return err
	}
	outline := [][4]float64{
		{0, y, stock, y},
		{stock, y, stock, y + dxfBarHeight},
		{stock, y + dxfBarHeight, 0, y + dxfBarHeight},
		{0, y + dxfBarHeight, 0, y},
	}
	for _, l := range outline {
		if _, err := d.Line(l[0], l[1], 0, l[2], l[3], 0); err != nil {
			return err
		}
	}

	positions := barLayout(bar, kerf)

	if err := d.ChangeLayer(LayerCuts); err != nil {
		return err
	}
	for _, pos := range positions {
		end := float64(pos.Offset + pos.Length)
		if end >= stock {
			continue
		}
		if _, err := d.Line(end, y, 0, end, y+dxfBarHeight, 0); err != nil {
			return err
		}
	}

	if err := d.ChangeLayer(LayerText); err != nil {
		return err
	}
	title := fmt.Sprintf("Bar %d - waste %d", bar.Number, bar.Waste)
	if _, err := d.Text(title, 0, y+dxfBarHeight+10, 0, dxfTextHeight); err != nil {
		return err
	}
	for _, pos := range positions {
		x := float64(pos.Offset) + 10
		if _, err := d.Text(fmt.Sprintf("%d", pos.Length), x, y+15, 0, dxfTextHeight); err != nil {
			return err
		}
	}
	return nil
}
