package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/piwi3910/BarCut/internal/model"
)

func TestWriteBar(t *testing.T) {
	var buf bytes.Buffer
	bar := model.BarResult{Number: 1, Cuts: []int{1000, 1000, 2000}, Waste: 0}

	if err := WriteBar(&buf, bar); err != nil {
		t.Fatalf("WriteBar returned error: %v", err)
	}

	want := "Bar 1:\n  Cut lengths: 1000, 1000, 2000\n  Waste: 0 mm\n\n"
	if buf.String() != want {
		t.Errorf("unexpected output:\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestWriteBar_Kerf(t *testing.T) {
	var buf bytes.Buffer
	bar := model.BarResult{Number: 3, Cuts: []int{1000, 1000, 1000}, Waste: 980, KerfLoss: 20}

	if err := WriteBar(&buf, bar); err != nil {
		t.Fatalf("WriteBar returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "Kerf loss: 20 mm") {
		t.Errorf("expected kerf loss line, got %q", buf.String())
	}
}

func TestWriteText(t *testing.T) {
	plan, pieces := buildTestPlan()
	var buf bytes.Buffer

	if err := WriteText(&buf, plan, pieces, 300); err != nil {
		t.Fatalf("WriteText returned error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Bar 1:\n",
		"Bar 2:\n",
		"  Cut lengths: 1000\n",
		"  Waste: 3000 mm\n",
		"Bars required: 2 (stock 4000 mm)",
		"  Short (1000 mm): 3 of 3",
		"  - Bar 2: 3000 mm",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "WARNING") {
		t.Errorf("finished plan should not warn:\n%s", out)
	}
	if strings.Index(out, "Bar 1:") > strings.Index(out, "Bar 2:") {
		t.Error("bars out of order")
	}
}

func TestWriteSummary_Unplaced(t *testing.T) {
	plan, pieces := buildStalledPlan()
	var buf bytes.Buffer

	if err := WriteSummary(&buf, plan, pieces, 300); err != nil {
		t.Fatalf("WriteSummary returned error: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "WARNING: 2 piece(s) could not be placed") {
		t.Errorf("expected unplaced warning:\n%s", out)
	}
	if !strings.Contains(out, "Beam: 4500 mm x 2 (longer than stock)") {
		t.Errorf("expected unplaced line:\n%s", out)
	}
}

func TestWriteSummary_EmptyPlan(t *testing.T) {
	plan := model.CuttingPlan{StockLength: 4000, Status: model.StatusDone}
	var buf bytes.Buffer

	if err := WriteSummary(&buf, plan, nil, 300); err != nil {
		t.Fatalf("WriteSummary returned error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "Bars required: 0") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	plan, pieces := buildTestPlan()
	var buf bytes.Buffer

	if err := WriteJSON(&buf, plan, pieces, 300); err != nil {
		t.Fatalf("WriteJSON returned error: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc.Status != "Done" {
		t.Errorf("expected status Done, got %q", doc.Status)
	}
	if doc.Plan.TotalBars != 2 || len(doc.Plan.Bars) != 2 {
		t.Errorf("unexpected plan %+v", doc.Plan)
	}
	if len(doc.Pieces) != 2 || doc.Pieces[1].Label != "Short" {
		t.Errorf("unexpected pieces %+v", doc.Pieces)
	}
	if len(doc.Offcuts) != 1 || doc.Offcuts[0].Length != 3000 || doc.Offcuts[0].Offset != 1000 {
		t.Errorf("unexpected offcuts %+v", doc.Offcuts)
	}
}
