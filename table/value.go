package table

import (
	"fmt"
	"strconv"
)

type (
	// CellKind tags what a cell (or a whole column) holds.
	CellKind int

	// Value is a single cell. Exactly one of Str/Num/Bool is meaningful,
	// selected by Kind; a KindMissing value carries nothing.
	Value struct {
		Str  string
		Num  float64
		Bool bool
		Kind CellKind
	}
)

const (
	KindMissing CellKind = iota
	KindString
	KindNumber
	KindBool
)

func (k CellKind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

func String(s string) Value {
	return Value{Str: s, Kind: KindString}
}

func Number(f float64) Value {
	return Value{Num: f, Kind: KindNumber}
}

func Bool(b bool) Value {
	return Value{Bool: b, Kind: KindBool}
}

func Missing() Value {
	return Value{Kind: KindMissing}
}

func (v Value) IsMissing() bool {
	return v.Kind == KindMissing
}

// Render is the canonical stringification used by truncation, length
// filtering, width sizing and dedupe keys. Missing renders as "".
func (v Value) Render() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return ""
	}
}

// Equal reports value equality. Missing never equals anything, missing
// included, matching NaN comparison semantics.
func (v Value) Equal(other Value) bool {
	if v.IsMissing() || other.IsMissing() {
		return false
	}
	return v.Kind == other.Kind && v.Render() == other.Render()
}
