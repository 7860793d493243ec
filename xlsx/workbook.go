// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/UNO-SOFT/spreadsheet/v2"
	"github.com/UNO-SOFT/spreadsheet/v2/internal/sharedstrings"
	"github.com/UNO-SOFT/spreadsheet/v2/internal/styles"
)

// workbook owns the sheets and the workbook-wide tables,
// and everything in its temp folder.
type workbook struct {
	opts    *Options
	logger  *slog.Logger
	styles  *styles.Registry
	sst     *sharedstrings.Table // nil in inline strings mode
	current *Sheet

	dir      string
	sheets   []*Sheet
	colNames []string

	closed bool
}

func newWorkbook(opts *Options) (*workbook, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	tmp := opts.TempFolder
	if tmp == "" {
		tmp = os.TempDir()
	}
	dir := filepath.Join(tmp, "xlsx-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("%w: create temp folder: %w", spreadsheet.ErrIO, err)
	}
	wb := &workbook{opts: opts, logger: logger, dir: dir, styles: styles.NewRegistry()}
	if !opts.InlineStrings {
		sst, err := sharedstrings.New(dir)
		if err != nil {
			_ = os.RemoveAll(dir)
			return nil, fmt.Errorf("%w: %w", spreadsheet.ErrIO, err)
		}
		wb.sst = sst
	}
	if _, err := wb.addNewSheet(); err != nil {
		wb.cleanup()
		return nil, err
	}
	logger.Debug("workbook opened", "dir", dir, "inlineStrings", opts.InlineStrings)
	return wb, nil
}

// addNewSheet creates the next sheet and makes it current.
func (wb *workbook) addNewSheet() (*Sheet, error) {
	index := len(wb.sheets)
	ws, err := newWorksheet(wb.dir, index)
	if err != nil {
		return nil, err
	}
	s := &Sheet{wb: wb, ws: ws, index: index, name: wb.defaultSheetName(index)}
	wb.sheets = append(wb.sheets, s)
	wb.current = s
	wb.logger.Debug("new sheet", "index", index, "name", s.name)
	return s, nil
}

// defaultSheetName returns "Sheet{index+1}", or the next free number.
func (wb *workbook) defaultSheetName(index int) string {
	for n := index + 1; ; n++ {
		name := "Sheet" + strconv.Itoa(n)
		if !wb.hasSheetName(name) {
			return name
		}
	}
}

func (wb *workbook) hasSheetName(name string) bool {
	for _, s := range wb.sheets {
		if strings.EqualFold(s.name, name) {
			return true
		}
	}
	return false
}

func (wb *workbook) setCurrentSheet(s *Sheet) error {
	if s == nil || s.wb != wb {
		return fmt.Errorf("%w: the sheet does not belong to this workbook", spreadsheet.ErrInvalidArgument)
	}
	wb.current = s
	return nil
}

// addRow appends the row to the current sheet, starting a new one first
// when the current is full and AutoNewSheet is set.
func (wb *workbook) addRow(row spreadsheet.Row) error {
	s := wb.current
	if n := s.ws.rowNum; n >= wb.opts.maxRows() {
		if wb.opts.AutoNewSheet {
			var err error
			if s, err = wb.addNewSheet(); err != nil {
				return err
			}
			wb.logger.Debug("row limit reached, new sheet", "rows", n, "sheet", s.name)
		} else if n >= MaxRowCount {
			return fmt.Errorf("%w: sheet %q has %d rows", spreadsheet.ErrTooManyRows, s.name, n)
		}
	}
	return s.appendRow(row)
}

// colName returns the letters of the 1-based column.
func (wb *workbook) colName(col int) string {
	if col < len(wb.colNames) {
		return wb.colNames[col]
	}
	if col > MaxColumnCount {
		s, _ := excelize.ColumnNumberToName(col)
		return s
	}
	for i := len(wb.colNames); i <= col; i++ {
		var s string
		if i > 0 {
			s, _ = excelize.ColumnNumberToName(i)
		}
		wb.colNames = append(wb.colNames, s)
	}
	return wb.colNames[col]
}

// styleIndex returns the xf index of the cell: its own style, else the
// row style, else the default. Unstyled date and duration cells get an
// implicit number format.
func (wb *workbook) styleIndex(c spreadsheet.Cell, rowStyle *spreadsheet.Style) int {
	style := c.Style
	if style == nil {
		style = rowStyle
	}
	format := implicitFormat(c)
	if style == nil {
		def, i := wb.styles.Default()
		if format == "" || def.Format != "" {
			return i
		}
		return wb.styles.Register(def.WithFormat(format))
	}
	if format != "" && style.Format == "" {
		return wb.styles.Register(style.WithFormat(format))
	}
	return wb.styles.Resolve(style)
}

func (wb *workbook) writtenRowCount() int {
	var n int
	for _, s := range wb.sheets {
		n += s.ws.rowNum
	}
	return n
}

// finish writes the package to w and releases everything.
func (wb *workbook) finish(w io.Writer) error {
	wb.closed = true
	err := wb.writePackage(w)
	if err != nil {
		wb.logger.Warn("write package", "error", err)
	} else {
		wb.logger.Debug("workbook written", "sheets", len(wb.sheets), "rows", wb.writtenRowCount())
	}
	return errors.Join(err, wb.cleanup())
}

// cleanup closes and removes every temp file.
func (wb *workbook) cleanup() error {
	wb.closed = true
	var errs []error
	for _, s := range wb.sheets {
		if err := s.ws.close(); err != nil {
			errs = append(errs, err)
		}
	}
	if wb.sst != nil {
		if err := wb.sst.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := os.RemoveAll(wb.dir); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		wb.logger.Warn("cleanup", "dir", wb.dir, "error", err)
		return fmt.Errorf("%w: cleanup: %w", spreadsheet.ErrIO, err)
	}
	return nil
}
