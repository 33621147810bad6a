package export

import "github.com/piwi3910/BarCut/internal/model"

// cutPosition is where one piece sits on its bar, measured from the bar start.
type cutPosition struct {
	PieceIndex int
	Offset     int
	Length     int
}

// barLayout places the cuts of a bar end to end from the start of the bar,
// leaving one kerf between neighbours. The remnant is at the far end.
func barLayout(bar model.BarResult, kerf int) []cutPosition {
	positions := make([]cutPosition, len(bar.Cuts))
	offset := 0
	for j, length := range bar.Cuts {
		idx := -1
		if j < len(bar.PieceIndexes) {
			idx = bar.PieceIndexes[j]
		}
		positions[j] = cutPosition{PieceIndex: idx, Offset: offset, Length: length}
		offset += length + kerf
	}
	return positions
}

func pieceLabel(pieces []model.Piece, idx int) string {
	if idx >= 0 && idx < len(pieces) {
		return pieces[idx].Label
	}
	return ""
}
