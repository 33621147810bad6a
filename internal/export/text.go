// Package export renders cutting plans as text, JSON, PDF reports, QR piece
// labels and DXF cutting diagrams.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"

	"github.com/piwi3910/BarCut/internal/model"
)

// WriteBar writes one bar record. It is called once per bar while a plan is
// still running, so the output grows as bars are decided.
func WriteBar(w io.Writer, bar model.BarResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Bar %d:\n", bar.Number)
	fmt.Fprintf(&b, "  Cut lengths: %s\n", joinInts(bar.Cuts))
	if bar.KerfLoss > 0 {
		fmt.Fprintf(&b, "  Kerf loss: %d mm\n", bar.KerfLoss)
	}
	fmt.Fprintf(&b, "  Waste: %d mm\n\n", bar.Waste)
	_, err := io.WriteString(w, b.String())
	return eris.Wrap(err, "write bar")
}

// WriteSummary writes the totals of a finished plan: bar count, used copies
// per piece, any unplaced demand and the offcuts worth keeping.
func WriteSummary(w io.Writer, plan model.CuttingPlan, pieces []model.Piece, minOffcut int) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Bars required: %d (stock %d mm", plan.TotalBars, plan.StockLength)
	if plan.Kerf > 0 {
		fmt.Fprintf(&b, ", kerf %d mm", plan.Kerf)
	}
	b.WriteString(")\n")

	for i, p := range pieces {
		used := 0
		if i < len(plan.UsedCounts) {
			used = plan.UsedCounts[i]
		}
		fmt.Fprintf(&b, "  %s (%d mm): %d of %d\n", p.Label, p.Length, used, p.Quantity)
	}

	if len(plan.Bars) > 0 {
		fmt.Fprintf(&b, "Total waste: %d mm, efficiency %.1f%%\n", plan.TotalWaste(), plan.Efficiency())
	}

	if plan.Stalled() && len(plan.Unplaced) > 0 {
		fmt.Fprintf(&b, "WARNING: %d piece(s) could not be placed:\n", plan.UnplacedCount())
		for _, u := range plan.Unplaced {
			label := u.Label
			if label == "" {
				label = fmt.Sprintf("Piece %d", u.Index+1)
			}
			fmt.Fprintf(&b, "  - %s: %d mm x %d", label, u.Length, u.Count)
			if u.Length > plan.StockLength {
				fmt.Fprintf(&b, " (longer than stock)")
			}
			b.WriteString("\n")
		}
	}

	offcuts := model.DetectOffcuts(plan, minOffcut)
	if len(offcuts) > 0 {
		fmt.Fprintf(&b, "Reusable offcuts (%d mm total):\n", model.TotalOffcutLength(offcuts))
		for _, o := range offcuts {
			fmt.Fprintf(&b, "  - Bar %d: %d mm\n", o.BarNumber, o.Length)
		}
	}

	_, err := io.WriteString(w, b.String())
	return eris.Wrap(err, "write summary")
}

// WriteText writes every bar followed by the summary.
func WriteText(w io.Writer, plan model.CuttingPlan, pieces []model.Piece, minOffcut int) error {
	for _, bar := range plan.Bars {
		if err := WriteBar(w, bar); err != nil {
			return err
		}
	}
	return WriteSummary(w, plan, pieces, minOffcut)
}

// Document is the JSON form of a finished run.
type Document struct {
	Status  string            `json:"status"`
	Pieces  []model.Piece     `json:"pieces"`
	Plan    model.CuttingPlan `json:"plan"`
	Offcuts []model.Offcut    `json:"offcuts,omitempty"`
}

// WriteJSON writes the plan, its pieces and the detected offcuts as indented
// JSON.
func WriteJSON(w io.Writer, plan model.CuttingPlan, pieces []model.Piece, minOffcut int) error {
	doc := Document{
		Status:  plan.Status.String(),
		Pieces:  pieces,
		Plan:    plan,
		Offcuts: model.DetectOffcuts(plan, minOffcut),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return eris.Wrap(enc.Encode(doc), "encode plan")
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
