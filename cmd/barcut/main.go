// BarCut: bar cutting planner.
//
// Plans how to cut a list of piece lengths from fixed-length stock bars,
// bar by bar, and reports the cuts and waste of every bar.
//
// Build:
//
//	go build -o barcut ./cmd/barcut
//
// Usage:
//
//	barcut plan pieces.csv --stock 4000 --kerf 3
//	barcut compare pieces.xlsx
//	barcut estimate pieces.csv --stock 6000 --waste 10 --price 12.5
package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if eris.Is(err, errStalled) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
