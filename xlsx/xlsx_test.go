package xlsx

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tablescrub/tablescrub/table"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	tbl, err := table.New(
		table.Column{Name: "name", Cells: []table.Value{
			table.String("Alice"),
			table.String("Bob"),
		}},
		table.Column{Name: "score", Cells: []table.Value{
			table.Number(12.5),
			table.Missing(),
		}},
		table.Column{Name: "active", Cells: []table.Value{
			table.Bool(true),
			table.Bool(false),
		}},
	)
	if err != nil {
		t.Fatal(err)
	}

	dir := filepath.Join(t.TempDir(), "out")
	path, err := Save(tbl, dir, "report.xlsx")
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(dir, "report.xlsx") {
		t.Fatalf("got path %q", path)
	}

	got, err := Load(path, SheetName)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(got.ColumnNames(), tbl.ColumnNames()) {
		t.Fatalf("got columns %v, want %v", got.ColumnNames(), tbl.ColumnNames())
	}
	if got.NumRows() != tbl.NumRows() {
		t.Fatalf("got %d rows, want %d", got.NumRows(), tbl.NumRows())
	}
	for r := 0; r < tbl.NumRows(); r++ {
		for c := range tbl.Columns {
			want := tbl.Columns[c].Cells[r]
			v := got.Columns[c].Cells[r]
			if want.IsMissing() {
				if !v.IsMissing() {
					t.Fatalf("row %d col %d: got %+v, want missing", r, c, v)
				}
				continue
			}
			if v.Render() != want.Render() {
				t.Fatalf("row %d col %d: got %q, want %q", r, c, v.Render(), want.Render())
			}
		}
	}
}

func TestLoadFirstSheet(t *testing.T) {
	tbl, err := table.New(
		table.Column{Name: "a", Cells: []table.Value{table.String("x")}},
	)
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	path, err := Save(tbl, dir, "one.xlsx")
	if err != nil {
		t.Fatal(err)
	}

	// empty sheet name means the first (and only) sheet
	got, err := Load(path, "")
	if err != nil {
		t.Fatal(err)
	}
	if got.Columns[0].Cells[0].Str != "x" {
		t.Fatalf("got %+v", got.Columns[0].Cells[0])
	}
}

func TestLoadFailures(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.xlsx"), ""); err == nil {
		t.Fatal("expected error for missing file")
	}

	tbl, err := table.New(
		table.Column{Name: "a", Cells: []table.Value{table.String("x")}},
	)
	if err != nil {
		t.Fatal(err)
	}
	path, err := Save(tbl, t.TempDir(), "s.xlsx")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, "no_such_sheet"); err == nil {
		t.Fatal("expected error for missing sheet")
	}
}

func TestSaveNoColumns(t *testing.T) {
	if _, err := Save(&table.Table{}, t.TempDir(), "x.xlsx"); !errors.Is(err, table.ErrNoColumns) {
		t.Fatalf("got %v, want ErrNoColumns", err)
	}
}

func TestParseCell(t *testing.T) {
	if v := parseCell(""); !v.IsMissing() {
		t.Fatalf("got %+v", v)
	}
	if v := parseCell("TRUE"); v.Kind != table.KindBool || !v.Bool {
		t.Fatalf("got %+v", v)
	}
	if v := parseCell("12.5"); v.Kind != table.KindNumber || v.Num != 12.5 {
		t.Fatalf("got %+v", v)
	}
	if v := parseCell("12b"); v.Kind != table.KindString {
		t.Fatalf("got %+v", v)
	}
}
