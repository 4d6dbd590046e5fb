package table

import (
	"fmt"

	"github.com/tablescrub/tablescrub/utils"
)

type (
	// Column is a named, ordered sequence of cells. Kind is the explicit
	// column-level type tag: KindString if any cell is a string, otherwise
	// the kind of the first non-missing cell.
	Column struct {
		Name  string
		Kind  CellKind
		Cells []Value
	}

	// Table is an ordered set of equally sized columns, aligned by row
	// index. Column names are unique. Tables are value-like: operations on
	// them return new tables and never share cell slices with their input.
	Table struct {
		Columns []Column
	}
)

// InferKind derives the column-level tag from a cell slice.
func InferKind(cells []Value) CellKind {
	kind := KindMissing
	for _, c := range cells {
		if c.Kind == KindString {
			return KindString
		}
		if kind == KindMissing && c.Kind != KindMissing {
			kind = c.Kind
		}
	}
	return kind
}

// New builds a table from columns, inferring each column's kind. It rejects
// duplicate names and ragged column lengths.
func New(columns ...Column) (*Table, error) {
	var names []string
	for i := range columns {
		if utils.ContainsString(names, columns[i].Name) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColumn, columns[i].Name)
		}
		names = append(names, columns[i].Name)
		if len(columns[i].Cells) != len(columns[0].Cells) {
			return nil, fmt.Errorf("%w: %s has %d rows, %s has %d", ErrRaggedColumns, columns[i].Name, len(columns[i].Cells), columns[0].Name, len(columns[0].Cells))
		}
		columns[i].Kind = InferKind(columns[i].Cells)
	}
	return &Table{Columns: columns}, nil
}

func (t *Table) NumCols() int {
	return len(t.Columns)
}

func (t *Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Row returns the cells of row i in column order.
func (t *Table) Row(i int) []Value {
	row := make([]Value, len(t.Columns))
	for c := range t.Columns {
		row[c] = t.Columns[c].Cells[i]
	}
	return row
}

// Clone deep-copies the table so mutations of the copy never reach the
// original.
func (t *Table) Clone() *Table {
	cols := make([]Column, len(t.Columns))
	for i, c := range t.Columns {
		cells := make([]Value, len(c.Cells))
		copy(cells, c.Cells)
		cols[i] = Column{Name: c.Name, Kind: c.Kind, Cells: cells}
	}
	return &Table{Columns: cols}
}

// SelectRows builds a new table containing the given row indexes in order.
// Column kinds are re-inferred since a selection can drop the only cells of
// a kind.
func (t *Table) SelectRows(idx []int) *Table {
	cols := make([]Column, len(t.Columns))
	for i, c := range t.Columns {
		cells := make([]Value, 0, len(idx))
		for _, r := range idx {
			cells = append(cells, c.Cells[r])
		}
		cols[i] = Column{Name: c.Name, Kind: InferKind(cells), Cells: cells}
	}
	return &Table{Columns: cols}
}
