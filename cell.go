// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package spreadsheet

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxStringLength is the maximum number of characters in a cell.
const MaxStringLength = 32767

// Kind is the tag of a Cell value.
type Kind uint8

// Cell value kinds.
const (
	KindEmpty Kind = iota
	KindString
	KindNumber
	KindBool
	KindDate
	KindDuration
	KindError
	KindFormula

	kindCount
)

var kindNames = [...]string{"empty", "string", "number", "bool", "date", "duration", "error", "formula"}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Cell is a single value of a Row: a closed tagged variant, the Kind
// tells which of the accessors is meaningful.
type Cell struct {
	Style   *Style
	Comment *Comment

	s    string
	f    float64
	t    time.Time
	d    time.Duration
	b    bool
	kind Kind
}

// EmptyCell returns a cell without value.
func EmptyCell() Cell { return Cell{} }

// StringCell returns a text cell.
func StringCell(s string) Cell { return Cell{kind: KindString, s: s} }

// NumberCell returns a numeric cell.
func NumberCell(f float64) Cell { return Cell{kind: KindNumber, f: f} }

// IntCell returns a numeric cell holding an integer.
func IntCell(i int64) Cell { return Cell{kind: KindNumber, f: float64(i)} }

// BoolCell returns a boolean cell.
func BoolCell(b bool) Cell { return Cell{kind: KindBool, b: b} }

// DateCell returns a date/time cell. The wall clock of t is kept, the
// location is not converted.
func DateCell(t time.Time) Cell { return Cell{kind: KindDate, t: t} }

// DurationCell returns a date-interval cell.
func DurationCell(d time.Duration) Cell { return Cell{kind: KindDuration, d: d} }

// ErrorCell returns a formula-error cell, code is written verbatim (e.g. #DIV/0!).
func ErrorCell(code string) Cell { return Cell{kind: KindError, s: code} }

// FormulaCell returns a cell with a formula (without the leading '=').
// The formula is stored, never evaluated.
func FormulaCell(formula string) Cell {
	return Cell{kind: KindFormula, s: strings.TrimPrefix(formula, "=")}
}

// WithStyle returns a copy of c with the style set.
func (c Cell) WithStyle(style *Style) Cell { c.Style = style; return c }

// WithComment returns a copy of c with the comment set.
func (c Cell) WithComment(comment *Comment) Cell { c.Comment = comment; return c }

// Kind of the value.
func (c Cell) Kind() Kind { return c.kind }

// IsEmpty reports whether the cell holds no value. An empty string counts as empty.
func (c Cell) IsEmpty() bool {
	return c.kind == KindEmpty || (c.kind == KindString && c.s == "")
}

// String returns the text of string, error and formula cells.
func (c Cell) String() string { return c.s }

// Float returns the value of number cells.
func (c Cell) Float() float64 { return c.f }

// Bool returns the value of bool cells.
func (c Cell) Bool() bool { return c.b }

// Time returns the value of date cells.
func (c Cell) Time() time.Time { return c.t }

// Duration returns the value of duration cells.
func (c Cell) Duration() time.Duration { return c.d }

// Validate checks that the cell can be serialized.
func (c Cell) Validate() error {
	if err := c.validateValue(); err != nil {
		return err
	}
	if c.Comment != nil {
		for i, run := range c.Comment.TextRuns {
			if !utf8.ValidString(run.Text) {
				return fmt.Errorf("%w: comment text run %d is not valid UTF-8", ErrInvalidArgument, i)
			}
		}
	}
	return nil
}

func (c Cell) validateValue() error {
	switch c.kind {
	case KindString, KindFormula, KindError:
		if !utf8.ValidString(c.s) {
			return fmt.Errorf("%w: %s %q is not valid UTF-8", ErrInvalidArgument, c.kind, c.s)
		}
	}
	switch c.kind {
	case KindEmpty, KindBool, KindDate, KindDuration, KindFormula:
		return nil
	case KindString:
		if n := utf8.RuneCountInString(c.s); n > MaxStringLength {
			return fmt.Errorf("%w: text of %d characters, at most %d is allowed", ErrInvalidArgument, n, MaxStringLength)
		}
		return nil
	case KindNumber:
		if math.IsNaN(c.f) || math.IsInf(c.f, 0) {
			return fmt.Errorf("%w: number %v cannot be stored", ErrInvalidArgument, c.f)
		}
		return nil
	case KindError:
		if c.s == "" {
			return fmt.Errorf("%w: empty error code", ErrInvalidArgument)
		}
		return nil
	}
	return fmt.Errorf("%w: unknown cell kind %s", ErrInvalidArgument, c.kind)
}

// CellFromValue converts a plain Go value into a Cell.
//
// nil, "" and invalid sql.Null* values become empty cells.
func CellFromValue(v any) (Cell, error) {
	if v == nil {
		return Cell{}, nil
	}
	if vr, ok := v.(driver.Valuer); ok {
		switch v.(type) {
		case sql.NullTime, sql.NullFloat64, sql.NullInt64, sql.NullString:
		default:
			vv, err := vr.Value()
			if err != nil {
				return Cell{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}
			if vv == nil {
				return Cell{}, nil
			}
			v = vv
		}
	}
	switch x := v.(type) {
	case Cell:
		return x, nil
	case string:
		if x == "" {
			return Cell{}, nil
		}
		return StringCell(x), nil
	case []byte:
		if len(x) == 0 {
			return Cell{}, nil
		}
		return StringCell(string(x)), nil
	case Number:
		if x == "" {
			return Cell{}, nil
		}
		f, err := strconv.ParseFloat(string(x), 64)
		if err != nil {
			return StringCell(string(x)), nil
		}
		return NumberCell(f), nil
	case bool:
		return BoolCell(x), nil
	case int:
		return IntCell(int64(x)), nil
	case int8:
		return IntCell(int64(x)), nil
	case int16:
		return IntCell(int64(x)), nil
	case int32:
		return IntCell(int64(x)), nil
	case int64:
		return IntCell(x), nil
	case uint:
		return NumberCell(float64(x)), nil
	case uint8:
		return NumberCell(float64(x)), nil
	case uint16:
		return NumberCell(float64(x)), nil
	case uint32:
		return NumberCell(float64(x)), nil
	case uint64:
		return NumberCell(float64(x)), nil
	case float32:
		return NumberCell(float64(x)), nil
	case float64:
		return NumberCell(x), nil
	case time.Time:
		if x.IsZero() {
			return Cell{}, nil
		}
		return DateCell(x), nil
	case time.Duration:
		return DurationCell(x), nil
	case sql.NullTime:
		if !x.Valid || x.Time.IsZero() {
			return Cell{}, nil
		}
		return DateCell(x.Time), nil
	case sql.NullFloat64:
		if !x.Valid {
			return Cell{}, nil
		}
		return NumberCell(x.Float64), nil
	case sql.NullInt64:
		if !x.Valid {
			return Cell{}, nil
		}
		return IntCell(x.Int64), nil
	case sql.NullString:
		if !x.Valid || x.String == "" {
			return Cell{}, nil
		}
		return StringCell(x.String), nil
	case fmt.Stringer:
		return CellFromValue(x.String())
	}
	return Cell{}, fmt.Errorf("%w: unsupported cell value %T", ErrInvalidArgument, v)
}
