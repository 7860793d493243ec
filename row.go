// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package spreadsheet

import "fmt"

// Row is an ordered sequence of cells. Rows are consumed when added to a
// writer, they are not retained.
type Row struct {
	Cells []Cell
	// Height in points, 0 means the sheet default.
	Height float64
	// Style is used for the cells without their own style.
	Style *Style
}

// NewRow returns a row of the given cells.
func NewRow(cells ...Cell) Row { return Row{Cells: cells} }

// RowFromValues converts plain Go values into a row, see CellFromValue.
func RowFromValues(values ...any) (Row, error) {
	row := Row{Cells: make([]Cell, len(values))}
	for i, v := range values {
		c, err := CellFromValue(v)
		if err != nil {
			return Row{}, fmt.Errorf("%d: %w", i, err)
		}
		row.Cells[i] = c
	}
	return row, nil
}

// WithHeight returns a copy of the row with the height set.
func (r Row) WithHeight(height float64) Row { r.Height = height; return r }

// WithStyle returns a copy of the row with the style set.
func (r Row) WithStyle(style *Style) Row { r.Style = style; return r }

// IsEmpty reports whether every cell of the row is empty.
func (r Row) IsEmpty() bool {
	for _, c := range r.Cells {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// Validate checks every cell, reporting the first offending column.
func (r Row) Validate() error {
	if r.Height < 0 {
		return fmt.Errorf("%w: negative row height %v", ErrInvalidArgument, r.Height)
	}
	for i, c := range r.Cells {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("column %d: %w", i+1, err)
		}
	}
	return nil
}
