// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package xlsx writes Office Open XML spreadsheets in a streaming manner:
// rows are serialized to temp files as they arrive, and the package is
// assembled at Close, so memory use does not grow with the row count.
package xlsx

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/UNO-SOFT/spreadsheet/v2"
)

var _ = (spreadsheet.Writer)((*Writer)(nil))

// Writer of an XLSX workbook.
//
// The Writer is not safe for concurrent use, not even for separate sheets.
type Writer struct {
	opts *Options
	wb   *workbook
	w    io.Writer
	// file is set when the Writer owns the target file.
	file *os.File
	// err is the first failure, returned by every later call.
	err error

	defaultStyle *spreadsheet.Style
	adapted      bool
	closed       bool
}

// New returns a Writer using opts, nil means NewOptions().
// The Writer must be opened with one of the Open methods before adding rows.
func New(opts *Options) *Writer {
	if opts == nil {
		opts = NewOptions()
	}
	return &Writer{opts: opts}
}

// Options returns the options of the Writer.
func (w *Writer) Options() *Options { return w.opts }

// OpenToFile creates the file at path and opens the Writer to it.
// The file is removed when writing the workbook fails.
func (w *Writer) OpenToFile(path string) error {
	if err := w.checkOpenable(); err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", spreadsheet.ErrIO, err)
	}
	if err = w.open(fh); err != nil {
		fh.Close()
		_ = os.Remove(path)
		return err
	}
	w.file = fh
	return nil
}

// OpenToWriter opens the Writer to stream the package into dst at Close.
func (w *Writer) OpenToWriter(dst io.Writer) error {
	if err := w.checkOpenable(); err != nil {
		return err
	}
	return w.open(dst)
}

// OpenToHTTP opens the Writer to send the package as an attachment named
// as the base of name.
func (w *Writer) OpenToHTTP(rw http.ResponseWriter, name string) error {
	if err := w.checkOpenable(); err != nil {
		return err
	}
	h := rw.Header()
	h.Set("Content-Type", ContentType)
	h.Set("Content-Disposition", mime.FormatMediaType("attachment",
		map[string]string{"filename": filepath.Base(name)}))
	h.Set("Cache-Control", "max-age=0")
	h.Set("Pragma", "public")
	return w.open(rw)
}

func (w *Writer) checkOpenable() error {
	if w.wb != nil || w.closed {
		return fmt.Errorf("%w: the writer has already been opened", spreadsheet.ErrInvalidArgument)
	}
	return nil
}

func (w *Writer) open(dst io.Writer) error {
	wb, err := newWorkbook(w.opts)
	if err != nil {
		return err
	}
	if w.defaultStyle != nil {
		wb.styles.SetDefault(*w.defaultStyle)
	}
	w.wb, w.w = wb, dst
	return nil
}

func (w *Writer) check() error {
	if w.wb == nil || w.closed {
		return spreadsheet.ErrNotOpened
	}
	return w.err
}

// fail records err as sticky if it is an I/O failure.
func (w *Writer) fail(err error) error {
	if err != nil && w.err == nil && errors.Is(err, spreadsheet.ErrIO) {
		w.err = err
	}
	return err
}

// SetDefaultRowStyle sets the style of every cell without an own or row style.
// It can be called before open, or after open until the first row is added.
func (w *Writer) SetDefaultRowStyle(style spreadsheet.Style) error {
	if w.closed {
		return spreadsheet.ErrNotOpened
	}
	if w.wb == nil {
		w.defaultStyle = &style
		return nil
	}
	if w.wb.writtenRowCount() != 0 {
		return fmt.Errorf("%w: the default row style must be set before adding rows", spreadsheet.ErrInvalidArgument)
	}
	w.defaultStyle = &style
	w.wb.styles.SetDefault(style)
	return nil
}

// AddRow appends the row to the current sheet.
//
// When the current sheet reached Options.MaxRowsPerSheet and
// Options.AutoNewSheet is set, a new sheet is started first.
func (w *Writer) AddRow(row spreadsheet.Row) error {
	if err := w.check(); err != nil {
		return err
	}
	if err := validateRow(row); err != nil {
		return err
	}
	return w.fail(w.wb.addRow(row))
}

// AddRows appends the rows. Every row is validated before the first is written.
func (w *Writer) AddRows(rows []spreadsheet.Row) error {
	if err := w.check(); err != nil {
		return err
	}
	for i, row := range rows {
		if err := validateRow(row); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	for _, row := range rows {
		if err := w.fail(w.wb.addRow(row)); err != nil {
			return err
		}
	}
	return nil
}

func validateRow(row spreadsheet.Row) error {
	if len(row.Cells) > MaxColumnCount {
		return fmt.Errorf("%w: %d cells in a row, at most %d is allowed",
			spreadsheet.ErrInvalidArgument, len(row.Cells), MaxColumnCount)
	}
	return row.Validate()
}

// AddNewSheetAndMakeItCurrent creates a new sheet with the default name.
func (w *Writer) AddNewSheetAndMakeItCurrent() (*Sheet, error) {
	if err := w.check(); err != nil {
		return nil, err
	}
	s, err := w.wb.addNewSheet()
	return s, w.fail(err)
}

// SetCurrentSheet makes s the target of the following rows.
func (w *Writer) SetCurrentSheet(s *Sheet) error {
	if err := w.check(); err != nil {
		return err
	}
	return w.wb.setCurrentSheet(s)
}

// CurrentSheet returns the sheet rows are added to.
func (w *Writer) CurrentSheet() (*Sheet, error) {
	if w.wb == nil || w.closed {
		return nil, spreadsheet.ErrNotOpened
	}
	return w.wb.current, nil
}

// Sheets returns the sheets in creation order.
func (w *Writer) Sheets() []*Sheet {
	if w.wb == nil {
		return nil
	}
	return append([]*Sheet(nil), w.wb.sheets...)
}

// WrittenRowCount returns the number of rows consumed by all the sheets.
func (w *Writer) WrittenRowCount() int {
	if w.wb == nil {
		return 0
	}
	return w.wb.writtenRowCount()
}

// Close finishes the workbook and writes the package.
// Closing a never opened or already closed Writer is a no-op.
func (w *Writer) Close() error {
	if w == nil || w.wb == nil || w.closed {
		return nil
	}
	w.closed = true
	var err error
	if w.err != nil {
		err = errors.Join(w.err, w.wb.cleanup())
	} else {
		err = w.wb.finish(w.w)
	}
	if w.file != nil {
		if closeErr := w.file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: %w", spreadsheet.ErrIO, closeErr)
		}
		if err != nil {
			_ = os.Remove(w.file.Name())
		}
	}
	w.w = nil
	return err
}

// NewSheet implements spreadsheet.Writer: the first call names the initial
// sheet, later ones add new sheets. A header row is written from the
// column names, if any of them is set.
func (w *Writer) NewSheet(name string, cols []spreadsheet.Column) (spreadsheet.Sheet, error) {
	if err := w.check(); err != nil {
		return nil, err
	}
	s := w.wb.current
	if w.adapted || len(w.wb.sheets) != 1 || s.ws.rowNum != 0 {
		var err error
		if s, err = w.AddNewSheetAndMakeItCurrent(); err != nil {
			return nil, err
		}
	}
	w.adapted = true
	if name != "" {
		if err := s.SetName(name); err != nil {
			return nil, err
		}
	}
	sa := &sheetAdapter{w: w, s: s, styles: make([]*spreadsheet.Style, len(cols))}
	var hasHeader bool
	header := spreadsheet.Row{Cells: make([]spreadsheet.Cell, len(cols))}
	for i, c := range cols {
		if !c.Column.IsZero() {
			st := c.Column
			sa.styles[i] = &st
		}
		if c.Name == "" {
			continue
		}
		hasHeader = true
		header.Cells[i] = spreadsheet.StringCell(c.Name)
		if !c.Header.IsZero() {
			st := c.Header
			header.Cells[i].Style = &st
		}
	}
	if hasHeader {
		if err := sa.addRow(header); err != nil {
			return nil, err
		}
	}
	return sa, nil
}

// sheetAdapter is the spreadsheet.Sheet view of a Sheet.
type sheetAdapter struct {
	w      *Writer
	s      *Sheet
	styles []*spreadsheet.Style
	closed bool
}

// AppendRow converts the values with spreadsheet.CellFromValue
// and appends them as a row.
func (sa *sheetAdapter) AppendRow(values ...any) error {
	if sa.closed {
		return spreadsheet.ErrNotOpened
	}
	row, err := spreadsheet.RowFromValues(values...)
	if err != nil {
		return err
	}
	for i := range row.Cells {
		if i < len(sa.styles) && row.Cells[i].Style == nil {
			row.Cells[i].Style = sa.styles[i]
		}
	}
	return sa.addRow(row)
}

// addRow appends to this sheet, following the rollover to a new sheet.
func (sa *sheetAdapter) addRow(row spreadsheet.Row) error {
	if err := sa.w.check(); err != nil {
		return err
	}
	wb := sa.w.wb
	wb.current = sa.s
	err := sa.w.AddRow(row)
	sa.s = wb.current
	return err
}

func (sa *sheetAdapter) Close() error {
	sa.closed = true
	return nil
}
