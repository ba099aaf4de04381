package table

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/cognicore/pulse/pkg/pulse/internalerr"
)

// loadExcel reads the first sheet of a workbook. The first row is the
// header. OOXML workbooks go through excelize, binary .xls through xls.
func (l *Loader) loadExcel(path string) (*Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xls") {
		return l.loadLegacyExcel(path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", filepath.Base(path), err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets: %w", filepath.Base(path), internalerr.ErrEmptyInput)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q of %s: %w", sheets[0], filepath.Base(path), err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q of %s is empty: %w", sheets[0], filepath.Base(path), internalerr.ErrEmptyInput)
	}
	return fromGrid(rows), nil
}

func (l *Loader) loadLegacyExcel(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	wb, err := xls.OpenReader(f, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", filepath.Base(path), err)
	}
	// OpenReader returns no workbook when the container has no Workbook stream.
	if wb == nil || wb.NumSheets() == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets: %w", filepath.Base(path), internalerr.ErrEmptyInput)
	}
	sheet := wb.GetSheet(0)

	grid := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		grid = append(grid, legacyRow(sheet, i))
	}
	for len(grid) > 0 && len(grid[len(grid)-1]) == 0 {
		grid = grid[:len(grid)-1]
	}
	if len(grid) == 0 {
		return nil, fmt.Errorf("sheet %q of %s is empty: %w", sheet.Name, filepath.Base(path), internalerr.ErrEmptyInput)
	}
	l.logger.Debug("read xls sheet", zap.String("sheet", sheet.Name), zap.Int("rows", len(grid)-1))
	return fromGrid(grid), nil
}

// legacyRow returns the values of row i with trailing blanks trimmed, the
// way excelize reports rows. A row the sheet does not store comes back
// empty; xls.WorkSheet.Row panics on those.
func legacyRow(sheet *xls.WorkSheet, i int) (cells []string) {
	defer func() {
		if recover() != nil {
			cells = nil
		}
	}()
	row := sheet.Row(i)
	for j := 0; j <= row.LastCol(); j++ {
		cells = append(cells, row.Col(j))
	}
	for len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}

// fromGrid builds a table from a grid whose first row is the header. The
// header is widened to the longest row; spreadsheet and HTML sources trim
// trailing empty cells, so ragged rows are expected rather than malformed.
func fromGrid(grid [][]string) *Table {
	width := 0
	for _, row := range grid {
		if len(row) > width {
			width = len(row)
		}
	}
	header := make([]string, width)
	copy(header, grid[0])
	return New(header, grid[1:])
}
