// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package spreadsheet

// Style is a style for a column/row/cell.
//
// Style is a comparable value: two styles with identical fields are the same
// style, no matter where they were created.
type Style struct {
	// Format is the number format
	Format     string
	Font       Font
	Fill       Fill
	Border     Border
	Alignment  Alignment
	Protection Protection
}

// IsZero reports whether the style carries no formatting at all.
func (s Style) IsZero() bool { return s == Style{} }

// WithFormat returns a copy of s with the number format replaced.
func (s Style) WithFormat(format string) Style {
	s.Format = format
	return s
}

// Bold returns a copy of s with a bold font.
func (s Style) Bold() Style {
	s.Font.Bold = true
	return s
}

// Font of the cell text. Zero Name and Size mean the workbook default
// (Calibri, 11pt).
type Font struct {
	Name          string
	Size          float64
	Color         string // RRGGBB or AARRGGBB
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
}

// Fill is a solid background fill; the zero value means no fill.
type Fill struct {
	Color string // RRGGBB or AARRGGBB
}

// BorderStyle names the line style of a border edge (ST_BorderStyle).
type BorderStyle string

const (
	BorderNone             BorderStyle = ""
	BorderThin             BorderStyle = "thin"
	BorderMedium           BorderStyle = "medium"
	BorderThick            BorderStyle = "thick"
	BorderDashed           BorderStyle = "dashed"
	BorderDotted           BorderStyle = "dotted"
	BorderDouble           BorderStyle = "double"
	BorderHair             BorderStyle = "hair"
	BorderMediumDashed     BorderStyle = "mediumDashed"
	BorderDashDot          BorderStyle = "dashDot"
	BorderMediumDashDot    BorderStyle = "mediumDashDot"
	BorderDashDotDot       BorderStyle = "dashDotDot"
	BorderMediumDashDotDot BorderStyle = "mediumDashDotDot"
	BorderSlantDashDot     BorderStyle = "slantDashDot"
)

// BorderEdge is one side of a cell border.
type BorderEdge struct {
	Style BorderStyle
	Color string
}

// Border of a cell.
type Border struct {
	Left, Right, Top, Bottom BorderEdge
}

// IsZero reports whether no edge is drawn.
func (b Border) IsZero() bool { return b == Border{} }

// Alignment of the cell content.
type Alignment struct {
	Horizontal  string // left, center, right, fill, justify, centerContinuous, distributed
	Vertical    string // top, center, bottom, justify, distributed
	WrapText    bool
	ShrinkToFit bool
	Indent      int
}

// IsZero reports whether the alignment is the default one.
func (a Alignment) IsZero() bool { return a == Alignment{} }

// Protection flags of a cell. Cells are locked by default, which only takes
// effect on protected sheets.
type Protection struct {
	Unlocked bool
	Hidden   bool
}

// IsZero reports whether the protection is the default one.
func (p Protection) IsZero() bool { return p == Protection{} }
