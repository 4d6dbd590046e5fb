// Package xlsx reads and writes tables as Excel workbooks. Save produces the
// styled report layout: one sheet named extracted_data, a bold header row,
// and a banded named table region covering every cell.
package xlsx

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/tablescrub/tablescrub/gologger"
	"github.com/tablescrub/tablescrub/table"
	"github.com/tablescrub/tablescrub/utils"
)

var logger = gologger.NewLogger()

const (
	SheetName = "extracted_data"

	tableName  = "DataTable"
	tableStyle = "TableStyleMedium9"
)

var ErrEmptySheet = errors.New("sheet has no header row")

// Load reads one sheet of a workbook into a table. An empty sheet name means
// the first sheet. Cell kinds are inferred per cell: empty cells are missing,
// TRUE/FALSE become bools, parseable numbers become numbers, everything else
// stays a string. Short rows are padded with missing cells.
func Load(path, sheet string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("error reading workbook")
		return nil, fmt.Errorf("error in excelize.OpenFile: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrEmptySheet
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Str("sheet", sheet).Msg("error reading sheet")
		return nil, fmt.Errorf("error in f.GetRows: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}

	cols := make([]table.Column, len(rows[0]))
	for i, name := range rows[0] {
		cols[i].Name = name
	}
	for _, row := range rows[1:] {
		for i := range cols {
			var raw string
			if i < len(row) {
				raw = row[i]
			}
			cols[i].Cells = append(cols[i].Cells, parseCell(raw))
		}
	}

	t, err := table.New(cols...)
	if err != nil {
		return nil, fmt.Errorf("error in table.New: %w", err)
	}
	return t, nil
}

func parseCell(raw string) table.Value {
	if raw == "" {
		return table.Missing()
	}
	if strings.EqualFold(raw, "TRUE") {
		return table.Bool(true)
	}
	if strings.EqualFold(raw, "FALSE") {
		return table.Bool(false)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return table.Number(f)
	}
	return table.String(raw)
}

// Save writes the table to dir/filename, creating dir if absent, and returns
// the full output path. Column widths are sized to the longest rendered value
// per column plus a padding of 2 (WIDTH_PAD overrides).
func Save(t *table.Table, dir, filename string) (string, error) {
	if t.NumCols() == 0 {
		return "", table.ErrNoColumns
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Error().Err(err).Str("dir", dir).Msg("error creating output directory")
		return "", fmt.Errorf("error in os.MkdirAll: %w", err)
	}
	path := filepath.Join(dir, filename)

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return "", fmt.Errorf("error in f.SetSheetName: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(t.NumCols())
	if err != nil {
		return "", fmt.Errorf("error in excelize.ColumnNumberToName: %w", err)
	}

	header := make([]any, t.NumCols())
	for i, name := range t.ColumnNames() {
		header[i] = name
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return "", fmt.Errorf("error in f.SetSheetRow for header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return "", fmt.Errorf("error in f.NewStyle: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", bold); err != nil {
		return "", fmt.Errorf("error in f.SetCellStyle: %w", err)
	}

	for r := 0; r < t.NumRows(); r++ {
		row := make([]any, t.NumCols())
		for c := range t.Columns {
			row[c] = cellValue(t.Columns[c].Cells[r])
		}
		start, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return "", fmt.Errorf("error in excelize.CoordinatesToCellName: %w", err)
		}
		if err := f.SetSheetRow(SheetName, start, &row); err != nil {
			return "", fmt.Errorf("error in f.SetSheetRow for row %d: %w", r, err)
		}
	}

	err = f.AddTable(SheetName, &excelize.Table{
		Range:             fmt.Sprintf("A1:%s%d", lastCol, t.NumRows()+1),
		Name:              tableName,
		StyleName:         tableStyle,
		ShowFirstColumn:   false,
		ShowLastColumn:    false,
		ShowRowStripes:    utils.Ptr(true),
		ShowColumnStripes: false,
	})
	if err != nil {
		return "", fmt.Errorf("error in f.AddTable: %w", err)
	}

	pad := utils.GetEnvOrDefaultInt("WIDTH_PAD", 2)
	for c := range t.Columns {
		width := utf8.RuneCountInString(t.Columns[c].Name)
		for _, v := range t.Columns[c].Cells {
			if l := utf8.RuneCountInString(v.Render()); l > width {
				width = l
			}
		}
		letter, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return "", fmt.Errorf("error in excelize.ColumnNumberToName: %w", err)
		}
		if err := f.SetColWidth(SheetName, letter, letter, float64(width)+float64(pad)); err != nil {
			return "", fmt.Errorf("error in f.SetColWidth: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("error writing workbook")
		return "", fmt.Errorf("error in f.SaveAs: %w", err)
	}
	return path, nil
}

// cellValue maps a cell to what excelize writes: nil leaves the cell blank.
func cellValue(v table.Value) any {
	switch v.Kind {
	case table.KindString:
		return v.Str
	case table.KindNumber:
		return v.Num
	case table.KindBool:
		return v.Bool
	default:
		return nil
	}
}
