// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/UNO-SOFT/spreadsheet/v2"
)

// Range of cells. Columns are 0-based, rows are 1-based,
// so Range{0, 1, 3, 1} is A1:D1.
type Range struct {
	FromCol, FromRow, ToCol, ToRow int
}

// NewRange returns the range between the two corners.
func NewRange(fromCol, fromRow, toCol, toRow int) Range {
	return Range{FromCol: fromCol, FromRow: fromRow, ToCol: toCol, ToRow: toRow}
}

// Validate the corners.
func (r Range) Validate() error {
	if r.FromCol < 0 || r.ToCol < r.FromCol || r.ToCol >= MaxColumnCount ||
		r.FromRow < 1 || r.ToRow < r.FromRow || r.ToRow > MaxRowCount {
		return fmt.Errorf("%w: range %d,%d:%d,%d", spreadsheet.ErrInvalidArgument, r.FromCol, r.FromRow, r.ToCol, r.ToRow)
	}
	return nil
}

// String returns the reference, such as "A1:D3".
func (r Range) String() string { return r.ref(false) }

// Absolute returns the absolute reference, such as "$A$1:$D$3".
func (r Range) Absolute() string { return r.ref(true) }

func (r Range) ref(abs bool) string {
	from, _ := excelize.CoordinatesToCellName(r.FromCol+1, r.FromRow, abs)
	to, _ := excelize.CoordinatesToCellName(r.ToCol+1, r.ToRow, abs)
	return from + ":" + to
}

// Sheet is a worksheet of the Writer.
//
// The sheet-level settings are read at Close, so they can be changed
// while rows are being added.
type Sheet struct {
	wb         *workbook
	ws         *worksheet
	autoFilter *Range
	protection *SheetProtection

	name           string
	printTitleRows string

	merges       []Range
	columnWidths []columnWidth

	index int
}

// Name of the sheet.
func (s *Sheet) Name() string { return s.name }

// Index of the sheet, 0-based in creation order.
func (s *Sheet) Index() int { return s.index }

// SetName renames the sheet. The name must be unique in the workbook.
func (s *Sheet) SetName(name string) error {
	if s.wb.closed {
		return spreadsheet.ErrNotOpened
	}
	if name == s.name {
		return nil
	}
	if err := validateSheetName(name); err != nil {
		return err
	}
	for _, o := range s.wb.sheets {
		if o != s && strings.EqualFold(o.name, name) {
			return fmt.Errorf("%w: sheet name %q is already used", spreadsheet.ErrInvalidArgument, name)
		}
	}
	s.name = name
	return nil
}

// SetAutoFilter sets the auto filter range, nil removes it.
func (s *Sheet) SetAutoFilter(r *Range) error {
	if r != nil {
		if err := r.Validate(); err != nil {
			return err
		}
		rr := *r
		r = &rr
	}
	s.autoFilter = r
	return nil
}

// AutoFilter returns the auto filter range, if set.
func (s *Sheet) AutoFilter() *Range { return s.autoFilter }

// SetPrintTitleRows sets the rows repeated on each printed page, such as "$1:$1".
func (s *Sheet) SetPrintTitleRows(rows string) { s.printTitleRows = rows }

// SetSheetProtection protects the sheet, nil removes the protection.
func (s *Sheet) SetSheetProtection(p *SheetProtection) { s.protection = p }

// MergeCells merges the cells of the range.
func (s *Sheet) MergeCells(r Range) error {
	if err := r.Validate(); err != nil {
		return err
	}
	s.merges = append(s.merges, r)
	return nil
}

// SetColumnWidth sets the width of the given (1-based) columns.
func (s *Sheet) SetColumnWidth(width float64, columns ...int) {
	for _, c := range columns {
		s.columnWidths = append(s.columnWidths, columnWidth{From: c, To: c, Width: width})
	}
}

// SetColumnWidthForRange sets the width of the columns from..to (1-based, inclusive).
func (s *Sheet) SetColumnWidthForRange(width float64, from, to int) {
	s.columnWidths = append(s.columnWidths, columnWidth{From: from, To: to, Width: width})
}

// WrittenRowCount returns the number of rows consumed by this sheet,
// including the empty ones which were not written.
func (s *Sheet) WrittenRowCount() int { return s.ws.rowNum }

// allMerges returns the merges registered on the options and on the sheet.
func (s *Sheet) allMerges() []Range {
	var rr []Range
	for _, m := range s.wb.opts.merges {
		if m.SheetIndex == s.index {
			rr = append(rr, m.Range)
		}
	}
	return append(rr, s.merges...)
}

func (s *Sheet) allColumnWidths() []columnWidth {
	return append(append([]columnWidth(nil), s.wb.opts.columnWidths...), s.columnWidths...)
}

// quotedName returns the name as used in formulas and defined names.
func (s *Sheet) quotedName() string { return quoteSheetName(s.name) }

func quoteSheetName(name string) string {
	needsQuote := name == ""
	for i, r := range name {
		if !(r == '_' || r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r)) ||
			(i == 0 && unicode.IsDigit(r)) {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		// names looking like a cell reference would be ambiguous
		if _, _, err := excelize.CellNameToCoordinates(name); err == nil {
			needsQuote = true
		}
	}
	if !needsQuote {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

func validateSheetName(s string) error {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return fmt.Errorf("%w: empty sheet name is not allowed", spreadsheet.ErrInvalidArgument)
	} else if n > 31 {
		return fmt.Errorf("%w: the sheet name %q is too long", spreadsheet.ErrInvalidArgument, s)
	}
	if strings.HasPrefix(s, "'") || strings.HasSuffix(s, "'") {
		return fmt.Errorf("%w: the first or last character of the sheet name can not be a single quote", spreadsheet.ErrInvalidArgument)
	}
	if strings.ContainsAny(s, ":\\/?*[]") {
		return fmt.Errorf("%w: the sheet name can not contain any of the characters :\\/?*[]", spreadsheet.ErrInvalidArgument)
	}
	return nil
}
