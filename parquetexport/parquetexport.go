// Package parquetexport writes a table to a parquet file, for feeding cleaned
// extracts into columnar query engines.
package parquetexport

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/tablescrub/tablescrub/gologger"
	"github.com/tablescrub/tablescrub/table"
	"github.com/tablescrub/tablescrub/utils"
)

var logger = gologger.NewLogger()

type (
	jsonSchema struct {
		Tag    string        `json:",omitempty"`
		Fields []*jsonSchema `json:",omitempty"`
	}
)

// SchemaString builds the parquet-go JSON schema for a table. Every field is
// OPTIONAL since any cell can be missing: string columns map to
// BYTE_ARRAY/UTF8, numeric to DOUBLE, boolean to BOOLEAN. An all-missing
// column is typed as a string column.
func SchemaString(t *table.Table) (string, error) {
	root := jsonSchema{
		Tag: "name=parquet_go_root, repetitiontype=REQUIRED",
	}
	for _, col := range t.Columns {
		var parts []string
		switch col.Kind {
		case table.KindNumber:
			parts = []string{"type=DOUBLE"}
		case table.KindBool:
			parts = []string{"type=BOOLEAN"}
		default:
			parts = []string{"type=BYTE_ARRAY", "convertedtype=UTF8", "encoding=PLAIN"}
		}
		parts = append(parts, "name="+col.Name, "repetitiontype=OPTIONAL")
		root.Fields = append(root.Fields, &jsonSchema{Tag: strings.Join(parts, ", ")})
	}

	b, err := json.Marshal(root)
	if err != nil {
		return "", fmt.Errorf("error in json.Marshal: %w", err)
	}
	return string(b), nil
}

// Save writes the table to a parquet file under dir, creating dir if absent.
// The file is named <ksuid>.parquet so repeated exports sort by creation
// time, and the full path is returned. Missing cells are omitted from their
// row, leaving the field null.
func Save(t *table.Table, dir string) (string, error) {
	if t.NumCols() == 0 {
		return "", table.ErrNoColumns
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Error().Err(err).Str("dir", dir).Msg("error creating output directory")
		return "", fmt.Errorf("error in os.MkdirAll: %w", err)
	}

	schema, err := SchemaString(t)
	if err != nil {
		return "", fmt.Errorf("error in SchemaString: %w", err)
	}

	path := filepath.Join(dir, utils.GenKSortedID("")+".parquet")
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("error creating parquet file")
		return "", fmt.Errorf("error in local.NewLocalFileWriter: %w", err)
	}
	defer fw.Close()

	pw, err := writer.NewJSONWriter(schema, fw, 4)
	if err != nil {
		return "", fmt.Errorf("error in writer.NewJSONWriter: %w", err)
	}

	for r := 0; r < t.NumRows(); r++ {
		row := make(map[string]any, t.NumCols())
		for _, col := range t.Columns {
			v := col.Cells[r]
			if v.IsMissing() {
				continue
			}
			switch v.Kind {
			case table.KindNumber:
				row[col.Name] = v.Num
			case table.KindBool:
				row[col.Name] = v.Bool
			default:
				row[col.Name] = v.Str
			}
		}
		rowBytes, err := json.Marshal(row)
		if err != nil {
			return "", fmt.Errorf("error in json.Marshal of row: %w", err)
		}
		if err := pw.Write(string(rowBytes)); err != nil {
			return "", fmt.Errorf("error in pw.Write for row %d: %w", r, err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		return "", fmt.Errorf("error in pw.WriteStop: %w", err)
	}

	return path, nil
}
