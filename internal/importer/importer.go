// Package importer loads cut lists from CSV, Excel and DXF files.
// It supports automatic delimiter detection, flexible column mapping, and
// case-insensitive header recognition, including the Japanese headers used by
// timber-yard spreadsheets (長さ(mm), 本数).
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/BarCut/internal/model"
)

// ImportResult holds the results of an import operation. Row problems are
// collected rather than aborting the import.
type ImportResult struct {
	Pieces   []model.Piece
	Errors   []string
	Warnings []string
}

// Err returns nil when the import produced no errors, otherwise one error
// listing all of them.
func (r ImportResult) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return eris.New(strings.Join(r.Errors, "; "))
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Label    int
	Length   int
	Quantity int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"label":    {"label", "name", "part", "part name", "description", "desc", "piece", "item", "名前", "品名", "部材"},
	"length":   {"length", "len", "l", "length(mm)", "length (mm)", "mm", "長さ", "長さ(mm)", "長さ（mm）"},
	"quantity": {"quantity", "qty", "count", "num", "amount", "pcs", "pieces", "本数", "数量"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := newCSVReader(bytes.NewReader(data), delim)
		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

func newCSVReader(r io.Reader, delimiter rune) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	return reader
}

// DetectColumns examines a header row and returns a ColumnMapping.
// Matching is case-insensitive against the known aliases of each role.
// It returns a positional mapping and false if the row is not a header.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Label: -1, Length: -1, Quantity: -1}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				switch role {
				case "label":
					if mapping.Label == -1 {
						mapping.Label = i
					}
				case "length":
					if mapping.Length == -1 {
						mapping.Length = i
					}
				case "quantity":
					if mapping.Quantity == -1 {
						mapping.Quantity = i
					}
				}
			}
		}
	}

	if !isHeader {
		return positionalMapping(len(row)), false
	}
	return mapping, true
}

// positionalMapping reads two-column rows as length, quantity and wider rows
// as label, length, quantity.
func positionalMapping(cols int) ColumnMapping {
	if cols <= 2 {
		return ColumnMapping{Label: -1, Length: 0, Quantity: 1}
	}
	return ColumnMapping{Label: 0, Length: 1, Quantity: 2}
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseLength accepts integers and decimals. Decimals are rounded to the
// nearest millimetre and reported through the returned flag.
func parseLength(s string) (int, bool, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, false, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false, eris.Errorf("not a number: %q", s)
	}
	rounded := math.Round(f)
	return int(rounded), rounded != f, nil
}

// parseCount accepts whole numbers, including spreadsheet values like "3.0".
func parseCount(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, eris.Errorf("not a whole number: %q", s)
	}
	return int(f), nil
}

// parseRow extracts a Piece from a row using the given column mapping.
// Returns the piece, any error message, and any warning messages.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, pieceCount int) (model.Piece, string, []string) {
	var warnings []string

	label := getCell(row, mapping.Label)
	if label == "" {
		label = fmt.Sprintf("Piece %d", pieceCount+1)
	}

	lengthStr := getCell(row, mapping.Length)
	if lengthStr == "" {
		return model.Piece{}, fmt.Sprintf("%s: Missing length value", rowLabel), nil
	}
	length, rounded, err := parseLength(lengthStr)
	if err != nil {
		return model.Piece{}, fmt.Sprintf("%s: Invalid length '%s'", rowLabel, lengthStr), nil
	}
	if rounded {
		warnings = append(warnings, fmt.Sprintf("%s: Length '%s' rounded to %dmm", rowLabel, lengthStr, length))
	}
	if length <= 0 {
		return model.Piece{}, fmt.Sprintf("%s: Length must be positive", rowLabel), nil
	}

	qtyStr := getCell(row, mapping.Quantity)
	if qtyStr == "" {
		return model.Piece{}, fmt.Sprintf("%s: Missing quantity value", rowLabel), nil
	}
	qty, err := parseCount(qtyStr)
	if err != nil {
		return model.Piece{}, fmt.Sprintf("%s: Invalid quantity '%s'", rowLabel, qtyStr), nil
	}
	if qty < 0 {
		return model.Piece{}, fmt.Sprintf("%s: Quantity must not be negative", rowLabel), nil
	}
	if qty == 0 {
		warnings = append(warnings, fmt.Sprintf("%s: Quantity is 0, nothing will be cut", rowLabel))
	}

	return model.NewPiece(label, length, qty), "", warnings
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportFile picks the CSV, Excel or DXF importer from the file extension.
func ImportFile(path string) ImportResult {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv", ".txt":
		return ImportCSV(path)
	case ".xlsx", ".xlsm":
		return ImportExcel(path)
	case ".dxf":
		return ImportDXF(path)
	case ".xls":
		return ImportResult{Errors: []string{"Legacy .xls files are not supported, save the sheet as .xlsx"}}
	default:
		return ImportResult{Errors: []string{fmt.Sprintf("Unsupported file type '%s'", filepath.Ext(path))}}
	}
}

// ImportCSV imports pieces from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	records, err := newCSVReader(bytes.NewReader(data), delimiter).ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports pieces from a CSV reader with a known delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	records, err := newCSVReader(reader, delimiter).ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports pieces from the first sheet of an Excel workbook.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into pieces.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Length == -1 {
			missing = append(missing, "Length")
		}
		if mapping.Quantity == -1 {
			missing = append(missing, "Quantity")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if _, _, err := parseLength(getCell(rows[0], mapping.Length)); err != nil {
		// Unrecognized header: skip it but keep the positional mapping
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		piece, errMsg, warnings := parseRow(row, mapping, rowLabel, len(result.Pieces))

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Warnings = append(result.Warnings, warnings...)
		result.Pieces = append(result.Pieces, piece)
	}

	return result
}
