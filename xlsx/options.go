// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/klauspost/compress/flate"

	"github.com/UNO-SOFT/spreadsheet/v2"
)

// MaxRowCount is the number of maximum rows.
const MaxRowCount = 1_048_576

// MaxColumnCount is the number of maximum columns.
const MaxColumnCount = 16_384

// Default values of the document properties.
const (
	DefaultTitle   = "Untitled Spreadsheet"
	DefaultCreator = "spreadsheet"
)

// Options of the Writer.
//
// The Writer keeps the pointer, so sheet-level settings (page setup, merges,
// column widths) changed after open still apply at Close.
type Options struct {
	// Logger receives debug and warning messages, nil discards them.
	Logger *slog.Logger

	PageSetup          *PageSetup
	PageMargin         *PageMargin
	HeaderFooter       *HeaderFooter
	WorkbookProtection *WorkbookProtection

	// TempFolder is where the per-writer temporary folder is created.
	TempFolder string

	Properties Properties

	merges       []sheetRange
	columnWidths []columnWidth

	// MaxRowsPerSheet is the row limit triggering a new sheet
	// when AutoNewSheet is set.
	MaxRowsPerSheet int
	// CompressionLevel is the flate level of the zip entries.
	CompressionLevel int

	// DefaultColumnWidth and DefaultRowHeight go to sheetFormatPr, 0 leaves
	// them to the application.
	DefaultColumnWidth float64
	DefaultRowHeight   float64

	// InlineStrings embeds strings in the sheets instead of using
	// the shared strings table.
	InlineStrings bool
	// AutoNewSheet starts a new sheet when the current one is full.
	AutoNewSheet bool
}

// NewOptions returns the default options.
func NewOptions() *Options {
	return &Options{
		TempFolder:       os.TempDir(),
		InlineStrings:    true,
		AutoNewSheet:     true,
		MaxRowsPerSheet:  MaxRowCount,
		CompressionLevel: flate.DefaultCompression,
	}
}

// MergeCells registers the range to be merged on the sheet with the given index.
func (o *Options) MergeCells(r Range, sheetIndex int) error {
	if sheetIndex < 0 {
		return fmt.Errorf("%w: sheet index %d", spreadsheet.ErrInvalidArgument, sheetIndex)
	}
	if err := r.Validate(); err != nil {
		return err
	}
	o.merges = append(o.merges, sheetRange{Range: r, SheetIndex: sheetIndex})
	return nil
}

// SetColumnWidth sets the width of the given (1-based) columns on every sheet.
func (o *Options) SetColumnWidth(width float64, columns ...int) {
	for _, c := range columns {
		o.columnWidths = append(o.columnWidths, columnWidth{From: c, To: c, Width: width})
	}
}

// SetColumnWidthForRange sets the width of the columns from..to (1-based, inclusive)
// on every sheet.
func (o *Options) SetColumnWidthForRange(width float64, from, to int) {
	o.columnWidths = append(o.columnWidths, columnWidth{From: from, To: to, Width: width})
}

func (o *Options) maxRows() int {
	if o.MaxRowsPerSheet <= 0 || o.MaxRowsPerSheet > MaxRowCount {
		return MaxRowCount
	}
	return o.MaxRowsPerSheet
}

type sheetRange struct {
	Range
	SheetIndex int
}

type columnWidth struct {
	From, To int
	Width    float64
}

// Properties of the document.
type Properties struct {
	// Created is the creation time, zero means the time of Close.
	Created time.Time
	// Custom properties go to docProps/custom.xml, in key order.
	Custom map[string]string

	Title          string
	Subject        string
	Application    string
	Creator        string
	LastModifiedBy string
	Keywords       string
	Description    string
	Category       string
	Language       string
}

func (p Properties) withDefaults() Properties {
	if p.Title == "" {
		p.Title = DefaultTitle
	}
	if p.Application == "" {
		p.Application = DefaultCreator
	}
	if p.Creator == "" {
		p.Creator = DefaultCreator
	}
	if p.LastModifiedBy == "" {
		p.LastModifiedBy = p.Creator
	}
	if p.Created.IsZero() {
		p.Created = time.Now()
	}
	return p
}

// PageOrientation of the printed sheet.
type PageOrientation string

const (
	Portrait  PageOrientation = "portrait"
	Landscape PageOrientation = "landscape"
)

// PaperSize is the ST_PaperSize code of the paper.
type PaperSize int

const (
	PaperLetter    PaperSize = 1
	PaperTabloid   PaperSize = 3
	PaperLedger    PaperSize = 4
	PaperLegal     PaperSize = 5
	PaperStatement PaperSize = 6
	PaperExecutive PaperSize = 7
	PaperA3        PaperSize = 8
	PaperA4        PaperSize = 9
	PaperA5        PaperSize = 11
	PaperB4        PaperSize = 12
	PaperB5        PaperSize = 13
	PaperFolio     PaperSize = 14
	PaperQuarto    PaperSize = 15
)

// PageSetup is the print setup of every sheet.
//
// Setting any of FitToHeight or FitToWidth turns on fit-to-page.
type PageSetup struct {
	FitToHeight *int
	FitToWidth  *int
	Orientation PageOrientation
	PaperSize   PaperSize
}

func (ps *PageSetup) fitToPage() bool {
	return ps != nil && (ps.FitToHeight != nil || ps.FitToWidth != nil)
}

// PageMargin in inches.
type PageMargin struct {
	Top, Right, Bottom, Left, Header, Footer float64
}

// NewPageMargin returns the margins in the usual order.
func NewPageMargin(top, right, bottom, left, header, footer float64) *PageMargin {
	return &PageMargin{Top: top, Right: right, Bottom: bottom, Left: left, Header: header, Footer: footer}
}

// HeaderFooter texts, using the &-codes of the spreadsheet applications.
//
// The even texts are written only when DifferentOddEven is set.
type HeaderFooter struct {
	OddHeader, OddFooter   string
	EvenHeader, EvenFooter string
	DifferentOddEven       bool
}

// SheetProtection of a sheet. Each Lock* flag is written as the matching
// attribute of the sheetProtection element.
type SheetProtection struct {
	Password string

	LockSheet                  bool
	LockObjects                bool
	LockScenarios              bool
	LockCellFormatting         bool
	LockColumnFormatting       bool
	LockRowFormatting          bool
	LockColumnInsert           bool
	LockRowInsert              bool
	LockColumnDelete           bool
	LockRowDelete              bool
	LockLockedCellSelection    bool
	LockUnlockedCellsSelection bool
	LockAutoFilter             bool
	LockSort                   bool
	LockHyperlinkInsert        bool
	LockPivotTables            bool
}

// WorkbookProtection of the workbook structure.
type WorkbookProtection struct {
	Password      string
	LockStructure bool
	LockWindows   bool
	LockRevisions bool
}
