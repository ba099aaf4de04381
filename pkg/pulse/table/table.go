// Package table is the in-memory tabular form every input file is loaded
// into: named columns of string cells, with missing values tracked
// separately from empty strings and each column classified once as text,
// numeric or other.
package table

import (
	"fmt"
	"strings"
)

// Cell is a single table value. Valid is false for a missing value.
type Cell struct {
	Value string
	Valid bool
}

// Str returns a present cell holding s.
func Str(s string) Cell {
	return Cell{Value: s, Valid: true}
}

// Null is the missing cell.
var Null = Cell{}

// Column is one named column of a Table.
type Column struct {
	Name  string
	Kind  Kind
	cells []Cell
}

// Len returns the number of cells in the column.
func (c *Column) Len() int {
	return len(c.cells)
}

// Value returns the i-th cell's value and whether it is present.
func (c *Column) Value(i int) (string, bool) {
	cell := c.cells[i]
	return cell.Value, cell.Valid
}

// Strings returns every value with missing cells replaced by fill.
func (c *Column) Strings(fill string) []string {
	out := make([]string, len(c.cells))
	for i, cell := range c.cells {
		if cell.Valid {
			out[i] = cell.Value
		} else {
			out[i] = fill
		}
	}
	return out
}

// NonMissing returns the present values in row order.
func (c *Column) NonMissing() []string {
	out := make([]string, 0, len(c.cells))
	for _, cell := range c.cells {
		if cell.Valid {
			out = append(out, cell.Value)
		}
	}
	return out
}

// Table holds rows of named columns.
type Table struct {
	columns []*Column
	index   map[string]int
	rows    int
}

// New builds a table from a header and string rows, the way delimited files
// are read: an empty string is a missing value, short rows are padded with
// missing cells and surplus fields are dropped.
func New(header []string, rows [][]string) *Table {
	cells := make([][]Cell, len(rows))
	for i, row := range rows {
		cells[i] = make([]Cell, len(row))
		for j, v := range row {
			if v != "" {
				cells[i][j] = Str(v)
			}
		}
	}
	return FromCells(header, cells)
}

// FromCells builds a table from a header and rows of cells. Short rows are
// padded with missing cells and surplus cells are dropped. Blank header
// names become "Unnamed: i" and repeated names get a ".N" suffix.
func FromCells(header []string, rows [][]Cell) *Table {
	names := uniqueNames(header)
	t := &Table{
		columns: make([]*Column, len(names)),
		index:   make(map[string]int, len(names)),
		rows:    len(rows),
	}
	for j, name := range names {
		col := &Column{Name: name, cells: make([]Cell, len(rows))}
		for i, row := range rows {
			if j < len(row) {
				col.cells[i] = row[j]
			}
		}
		col.Kind = classify(col.cells)
		t.columns[j] = col
		t.index[name] = j
	}
	return t
}

// Columns returns the column names in table order.
func (t *Table) Columns() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.columns))
	for i, c := range t.columns {
		out[i] = c.Name
	}
	return out
}

// Column returns the named column.
func (t *Table) Column(name string) (*Column, bool) {
	if t == nil {
		return nil, false
	}
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.columns[i], true
}

// First returns the first column, or nil for a table without columns.
func (t *Table) First() *Column {
	if t == nil || len(t.columns) == 0 {
		return nil
	}
	return t.columns[0]
}

// Width returns the number of columns.
func (t *Table) Width() int {
	if t == nil {
		return 0
	}
	return len(t.columns)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.rows
}

// Empty reports whether the table has no rows or no columns.
func (t *Table) Empty() bool {
	return t.Len() == 0 || t.Width() == 0
}

func uniqueNames(header []string) []string {
	names := make([]string, len(header))
	used := make(map[string]bool, len(header))
	suffix := make(map[string]int, len(header))
	for i, h := range header {
		base := strings.TrimPrefix(h, "\ufeff")
		if strings.TrimSpace(base) == "" {
			base = fmt.Sprintf("Unnamed: %d", i)
		}
		// A generated suffix may itself collide with a later literal name.
		name := base
		for used[name] {
			suffix[base]++
			name = fmt.Sprintf("%s.%d", base, suffix[base])
		}
		used[name] = true
		names[i] = name
	}
	return names
}
