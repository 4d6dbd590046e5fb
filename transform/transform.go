// Package transform is the cleaning operation set. Every operation takes a
// table plus parameters and returns a brand new table; inputs are never
// mutated. A missing column is always reported as table.ErrInvalidColumn
// wrapped with the column name.
package transform

import (
	"fmt"
	"unicode/utf8"

	"github.com/tablescrub/tablescrub/gologger"
	"github.com/tablescrub/tablescrub/table"
)

var logger = gologger.NewLogger()

func requireColumn(t *table.Table, column string) (int, error) {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		logger.Warn().Str("column", column).Msg("column does not exist in the table")
		return 0, fmt.Errorf("%w: %s", table.ErrInvalidColumn, column)
	}
	return idx, nil
}

// Dedupe removes all but the first occurrence of each distinct value in
// column, preserving the order of first occurrences. All missing cells count
// as one distinct value.
func Dedupe(t *table.Table, column string) (*table.Table, error) {
	idx, err := requireColumn(t, column)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var keep []int
	for i, v := range t.Columns[idx].Cells {
		k := distinctKey(v)
		if _, exists := seen[k]; exists {
			continue
		}
		seen[k] = struct{}{}
		keep = append(keep, i)
	}
	return t.SelectRows(keep), nil
}

// distinctKey folds a cell to a map key: kind class plus canonical rendering,
// so the number 1 and the string "1" stay distinct.
func distinctKey(v table.Value) string {
	if v.IsMissing() {
		return "\x00"
	}
	return fmt.Sprintf("%d\x00%s", v.Kind, v.Render())
}

// FilterEqual keeps rows whose cell in column equals value. Missing cells
// never match.
func FilterEqual(t *table.Table, column string, value table.Value) (*table.Table, error) {
	idx, err := requireColumn(t, column)
	if err != nil {
		return nil, err
	}

	var keep []int
	for i, v := range t.Columns[idx].Cells {
		if v.Equal(value) {
			keep = append(keep, i)
		}
	}
	return t.SelectRows(keep), nil
}

// FilterByLength keeps rows whose stringified cell in column has a rune
// count different from count.
func FilterByLength(t *table.Table, column string, count int) (*table.Table, error) {
	idx, err := requireColumn(t, column)
	if err != nil {
		return nil, err
	}

	var keep []int
	for i, v := range t.Columns[idx].Cells {
		if utf8.RuneCountInString(v.Render()) != count {
			keep = append(keep, i)
		}
	}
	return t.SelectRows(keep), nil
}

// DropColumn returns the table without the named column, other column order
// unchanged.
func DropColumn(t *table.Table, column string) (*table.Table, error) {
	idx, err := requireColumn(t, column)
	if err != nil {
		return nil, err
	}

	out := t.Clone()
	out.Columns = append(out.Columns[:idx], out.Columns[idx+1:]...)
	return out, nil
}

// RenameColumn renames oldName to newName. Renaming onto an existing column
// name is rejected rather than silently producing a duplicate.
func RenameColumn(t *table.Table, oldName, newName string) (*table.Table, error) {
	idx, err := requireColumn(t, oldName)
	if err != nil {
		return nil, err
	}
	if newName != oldName && t.HasColumn(newName) {
		return nil, fmt.Errorf("%w: %s", table.ErrDuplicateColumn, newName)
	}

	out := t.Clone()
	out.Columns[idx].Name = newName
	return out, nil
}

// LimitColumnSize stringifies every cell in column and truncates it to the
// first limit runes. Missing cells stay missing. The column becomes a string
// column.
func LimitColumnSize(t *table.Table, column string, limit int) (*table.Table, error) {
	idx, err := requireColumn(t, column)
	if err != nil {
		return nil, err
	}

	out := t.Clone()
	col := &out.Columns[idx]
	for i, v := range col.Cells {
		if v.IsMissing() {
			continue
		}
		s := v.Render()
		if runes := []rune(s); len(runes) > limit {
			s = string(runes[:limit])
		}
		col.Cells[i] = table.String(s)
	}
	col.Kind = table.InferKind(col.Cells)
	return out, nil
}
