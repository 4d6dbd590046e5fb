package table

import "errors"

var (
	// ErrInvalidColumn is returned when a referenced column is not in the
	// table's column set.
	ErrInvalidColumn = errors.New("column does not exist in the table")

	// ErrDuplicateColumn is returned when a column name would appear twice.
	ErrDuplicateColumn = errors.New("duplicate column name")

	// ErrRaggedColumns is returned when columns have differing row counts.
	ErrRaggedColumns = errors.New("columns have differing lengths")

	// ErrNoColumns is returned when an operation needs at least one column.
	ErrNoColumns = errors.New("table has no columns")
)
