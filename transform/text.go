package transform

import (
	"strings"
	"unicode"

	"github.com/tablescrub/tablescrub/table"
)

// Strip trims leading and trailing whitespace from every cell of every
// string-tagged column. Numeric and boolean columns are untouched, so Strip
// takes no column argument and cannot fail.
func Strip(t *table.Table) *table.Table {
	out := t.Clone()
	for c := range out.Columns {
		if out.Columns[c].Kind != table.KindString {
			continue
		}
		for i, v := range out.Columns[c].Cells {
			if v.Kind == table.KindString {
				out.Columns[c].Cells[i] = table.String(strings.TrimSpace(v.Str))
			}
		}
	}
	return out
}

// CleanSpecialChars rewrites string cells of column: every literal '&'
// becomes 'E', then every rune that is not a letter, digit, or whitespace is
// dropped. Non-string cells pass through unchanged.
func CleanSpecialChars(t *table.Table, column string) (*table.Table, error) {
	idx, err := requireColumn(t, column)
	if err != nil {
		return nil, err
	}

	out := t.Clone()
	for i, v := range out.Columns[idx].Cells {
		if v.Kind != table.KindString {
			continue
		}
		out.Columns[idx].Cells[i] = table.String(cleanText(v.Str))
	}
	return out, nil
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, "&", "E")
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Lowercase lowercases string cells of column; non-string cells are
// unchanged.
func Lowercase(t *table.Table, column string) (*table.Table, error) {
	idx, err := requireColumn(t, column)
	if err != nil {
		return nil, err
	}

	out := t.Clone()
	for i, v := range out.Columns[idx].Cells {
		if v.Kind != table.KindString {
			continue
		}
		out.Columns[idx].Cells[i] = table.String(strings.ToLower(v.Str))
	}
	return out, nil
}
