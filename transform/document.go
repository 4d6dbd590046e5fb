package transform

import (
	"strings"

	"github.com/tablescrub/tablescrub/table"
)

// FormatDocument normalizes numeric document columns (CPF/CNPJ style): each
// cell is reduced to its digits, left-padded with zeros to size or truncated
// to the first size digits. Missing cells, empty strings, and the literal
// strings "nan"/"none" (case-insensitive) become missing. The column becomes a
// string column.
func FormatDocument(t *table.Table, column string, size int) (*table.Table, error) {
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
		s := strings.TrimSpace(v.Render())
		switch strings.ToLower(s) {
		case "", "nan", "none":
			col.Cells[i] = table.Missing()
			continue
		}

		digits := keepDigits(s)
		if len(digits) < size {
			digits = strings.Repeat("0", size-len(digits)) + digits
		} else if len(digits) > size {
			digits = digits[:size]
		}
		col.Cells[i] = table.String(digits)
	}
	col.Kind = table.InferKind(col.Cells)
	return out, nil
}

// FormatPhone strips every non-digit character from the stringified cells of
// column. No fixed length is enforced: callers wanting zero padding should
// follow with FormatDocument. Missing cells stay missing.
func FormatPhone(t *table.Table, column string) (*table.Table, error) {
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
		col.Cells[i] = table.String(keepDigits(v.Render()))
	}
	col.Kind = table.InferKind(col.Cells)
	return out, nil
}

func keepDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
