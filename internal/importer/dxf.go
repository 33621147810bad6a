package importer

import (
	"fmt"
	"math"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/piwi3910/BarCut/internal/model"
)

// ImportDXF builds a cut list from a frame drawing. Every LINE entity and
// every straight LWPOLYLINE segment is one member to cut; members of the same
// rounded length are merged into one piece with a quantity, in order of first
// appearance. Other entities are skipped with a warning.
func ImportDXF(path string) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var lengths []float64
	skipped := 0
	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.Line:
			lengths = append(lengths, distance(e.Start, e.End))
		case *entity.LwPolyline:
			lengths = append(lengths, polylineSegments(e)...)
		default:
			skipped++
		}
	}
	if skipped > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Skipped %d non-line entities", skipped))
	}

	index := make(map[int]int)
	for _, l := range lengths {
		mm := int(math.Round(l))
		if mm <= 0 {
			result.Warnings = append(result.Warnings, "Skipped zero-length segment")
			continue
		}
		if i, ok := index[mm]; ok {
			result.Pieces[i].Quantity++
			continue
		}
		index[mm] = len(result.Pieces)
		result.Pieces = append(result.Pieces, model.NewPiece(fmt.Sprintf("L%d", mm), mm, 1))
	}

	if len(result.Pieces) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no line segments")
	}
	return result
}

// polylineSegments returns the straight segment lengths of a polyline,
// including the closing segment of a closed outline. Arc segments (non-zero
// bulge) are not cut from straight stock and are left out.
func polylineSegments(lw *entity.LwPolyline) []float64 {
	n := len(lw.Vertices)
	if n < 2 {
		return nil
	}
	last := n - 1
	if lw.Closed {
		last = n
	}

	var out []float64
	for i := 0; i < last; i++ {
		if i < len(lw.Bulges) && math.Abs(lw.Bulges[i]) > 1e-9 {
			continue
		}
		out = append(out, distance(lw.Vertices[i], lw.Vertices[(i+1)%n]))
	}
	return out
}

func distance(a, b []float64) float64 {
	if len(a) < 2 || len(b) < 2 {
		return 0
	}
	return math.Hypot(b[0]-a[0], b[1]-a[1])
}
