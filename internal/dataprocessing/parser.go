package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"confpulse/pkg/contracts/domain"
)

// ParseFile decodes a submission export on disk into headers plus data rows.
// The format is picked from the file extension (.xlsx or .csv).
func ParseFile(path string) (*domain.SheetData, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		defer f.Close()
		return sheetDataFromWorkbook(f)
	case ".csv":
		return parseCSVPath(path)
	default:
		return nil, fmt.Errorf("unsupported file extension %s", ext)
	}
}

// ParseReader decodes a submission export from an in-memory stream, as
// handed over by the upload boundary. filename selects the format.
func ParseReader(r io.Reader, filename string) (*domain.SheetData, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".xlsx":
		f, err := excelize.OpenReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read workbook: %w", err)
		}
		defer f.Close()
		return sheetDataFromWorkbook(f)
	case ".csv":
		return parseCSV(r)
	default:
		return nil, fmt.Errorf("unsupported file extension %s", ext)
	}
}

// sheetDataFromWorkbook extracts the first sheet's header row and data rows.
func sheetDataFromWorkbook(f *excelize.File) (*domain.SheetData, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook contains no sheets")
	}
	sheetName := sheets[0]

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheetName)
	}

	slog.Debug("decoded workbook sheet",
		slog.String("sheet_name", sheetName),
		slog.Int("total_rows", len(rows)))

	return buildSheetData(rows), nil
}

func parseCSVPath(path string) (*domain.SheetData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	return parseCSV(f)
}

func parseCSV(r io.Reader) (*domain.SheetData, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows tolerated

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}
	return buildSheetData(rows), nil
}

// buildSheetData converts raw string rows into the decoder contract: the
// first row becomes the headers, every later row a cell slice. Empty cells
// become nil; cells holding a plain number become float64 so categorical
// grouping treats 42 and "42" identically. Strings that only look numeric
// because of formatting (leading zeros, fixed decimals) are left alone.
func buildSheetData(rows [][]string) *domain.SheetData {
	headers := make([]string, len(rows[0]))
	copy(headers, rows[0])

	data := make([][]domain.Cell, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cells := make([]domain.Cell, len(row))
		for i, raw := range row {
			cells[i] = coerceCell(raw)
		}
		data = append(data, cells)
	}
	return &domain.SheetData{Headers: headers, Rows: data}
}

func coerceCell(raw string) domain.Cell {
	if raw == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		if strconv.FormatFloat(f, 'f', -1, 64) == raw {
			return f
		}
	}
	return raw
}
