// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package styles deduplicates cell styles and renders styles.xml.
package styles

import (
	"io"
	"strings"

	"github.com/valyala/bytebufferpool"
	qt "github.com/valyala/quicktemplate"

	"github.com/UNO-SOFT/spreadsheet/v2"
	"github.com/UNO-SOFT/spreadsheet/v2/internal/escape"
)

// Default font of the workbook.
const (
	DefaultFontName = "Calibri"
	DefaultFontSize = 11
)

// FirstCustomNumFmtID is the first id available for custom number formats.
const FirstCustomNumFmtID = 164

// builtinNumFmts maps the predefined format codes to their reserved ids.
var builtinNumFmts = map[string]int{
	"General":                  0,
	"0":                        1,
	"0.00":                     2,
	"#,##0":                    3,
	"#,##0.00":                 4,
	"0%":                       9,
	"0.00%":                    10,
	"0.00E+00":                 11,
	"# ?/?":                    12,
	"# ??/??":                  13,
	"mm-dd-yy":                 14,
	"d-mmm-yy":                 15,
	"d-mmm":                    16,
	"mmm-yy":                   17,
	"h:mm AM/PM":               18,
	"h:mm:ss AM/PM":            19,
	"h:mm":                     20,
	"h:mm:ss":                  21,
	"m/d/yy h:mm":              22,
	"#,##0 ;(#,##0)":           37,
	"#,##0 ;[Red](#,##0)":      38,
	"#,##0.00;(#,##0.00)":      39,
	"#,##0.00;[Red](#,##0.00)": 40,
	"mm:ss":                    45,
	"[h]:mm:ss":                46,
	"mmss.0":                   47,
	"##0.0E+0":                 48,
	"@":                        49,
}

type xf struct {
	style                        spreadsheet.Style
	numFmt, font, fill, border int
}

// xfKey identifies an xf by its normalized parts.
type xfKey struct {
	numFmt, font, fill, border int
	alignment                  spreadsheet.Alignment
	protection                 spreadsheet.Protection
}

type numFmt struct {
	code string
	id   int
}

// Registry assigns stable indices to structurally distinct styles.
// Index 0 is always the zero ("no") style.
//
// Not safe for concurrent use.
type Registry struct {
	xfIndex     map[spreadsheet.Style]int
	xfKeyIndex  map[xfKey]int
	fontIndex   map[spreadsheet.Font]int
	fillIndex   map[spreadsheet.Fill]int
	borderIndex map[spreadsheet.Border]int
	numFmtIndex map[string]int

	xfs     []xf
	fonts   []spreadsheet.Font
	fills   []spreadsheet.Fill
	borders []spreadsheet.Border
	numFmts []numFmt

	defaultIdx int
}

// NewRegistry returns a registry holding only the zero style.
func NewRegistry() *Registry {
	r := &Registry{
		xfIndex:     make(map[spreadsheet.Style]int),
		xfKeyIndex:  make(map[xfKey]int),
		fontIndex:   make(map[spreadsheet.Font]int),
		fillIndex:   make(map[spreadsheet.Fill]int),
		borderIndex: make(map[spreadsheet.Border]int),
		numFmtIndex: make(map[string]int),
	}
	r.fontID(spreadsheet.Font{})
	// fills 0 and 1 are reserved (none and gray125)
	r.fills = append(r.fills, spreadsheet.Fill{}, spreadsheet.Fill{Color: "gray125"})
	r.fillIndex[spreadsheet.Fill{}] = 0
	r.borderID(spreadsheet.Border{})
	r.Register(spreadsheet.Style{})
	return r
}

// Register returns the index of style, registering it on first use.
//
// Styles differing only in spelling (color case, leading '#', missing
// alpha, default font) share the same index.
func (r *Registry) Register(style spreadsheet.Style) int {
	if i, ok := r.xfIndex[style]; ok {
		return i
	}
	k := xfKey{
		numFmt:     r.numFmtID(style.Format),
		font:       r.fontID(style.Font),
		fill:       r.fillID(style.Fill),
		border:     r.borderID(style.Border),
		alignment:  style.Alignment,
		protection: style.Protection,
	}
	i, ok := r.xfKeyIndex[k]
	if !ok {
		i = len(r.xfs)
		r.xfs = append(r.xfs, xf{style: style, numFmt: k.numFmt, font: k.font, fill: k.fill, border: k.border})
		r.xfKeyIndex[k] = i
	}
	r.xfIndex[style] = i
	return i
}

// SetDefault registers style as the one applied to unstyled cells.
func (r *Registry) SetDefault(style spreadsheet.Style) int {
	r.defaultIdx = r.Register(style)
	return r.defaultIdx
}

// Default returns the default style and its index.
func (r *Registry) Default() (spreadsheet.Style, int) {
	return r.xfs[r.defaultIdx].style, r.defaultIdx
}

// Resolve returns the index of style, the default index for nil.
func (r *Registry) Resolve(style *spreadsheet.Style) int {
	if style == nil {
		return r.defaultIdx
	}
	return r.Register(*style)
}

// Len returns the number of registered styles.
func (r *Registry) Len() int { return len(r.xfs) }

// Style returns the style registered at index i.
func (r *Registry) Style(i int) spreadsheet.Style { return r.xfs[i].style }

func (r *Registry) numFmtID(code string) int {
	if code == "" {
		return 0
	}
	if id, ok := builtinNumFmts[code]; ok {
		return id
	}
	if id, ok := r.numFmtIndex[code]; ok {
		return id
	}
	id := FirstCustomNumFmtID + len(r.numFmts)
	r.numFmts = append(r.numFmts, numFmt{code: code, id: id})
	r.numFmtIndex[code] = id
	return id
}

func (r *Registry) fontID(f spreadsheet.Font) int {
	if f.Name == "" {
		f.Name = DefaultFontName
	}
	if f.Size <= 0 {
		f.Size = DefaultFontSize
	}
	f.Color = argb(f.Color)
	if i, ok := r.fontIndex[f]; ok {
		return i
	}
	i := len(r.fonts)
	r.fonts = append(r.fonts, f)
	r.fontIndex[f] = i
	return i
}

func (r *Registry) fillID(f spreadsheet.Fill) int {
	f.Color = argb(f.Color)
	if i, ok := r.fillIndex[f]; ok {
		return i
	}
	i := len(r.fills)
	r.fills = append(r.fills, f)
	r.fillIndex[f] = i
	return i
}

func (r *Registry) borderID(b spreadsheet.Border) int {
	for _, e := range []*spreadsheet.BorderEdge{&b.Left, &b.Right, &b.Top, &b.Bottom} {
		if e.Style == spreadsheet.BorderNone {
			*e = spreadsheet.BorderEdge{}
		} else {
			e.Color = argb(e.Color)
		}
	}
	if i, ok := r.borderIndex[b]; ok {
		return i
	}
	i := len(r.borders)
	r.borders = append(r.borders, b)
	r.borderIndex[b] = i
	return i
}

// argb normalizes "#RRGGBB" and "RRGGBB" to "FFRRGGBB".
func argb(color string) string {
	color = strings.ToUpper(strings.TrimPrefix(color, "#"))
	if len(color) == 6 {
		return "FF" + color
	}
	return color
}

// WriteTo writes styles.xml.
func (r *Registry) WriteTo(w io.Writer) (int64, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	qw := qt.AcquireWriter(buf)
	r.stream(qw.N())
	qt.ReleaseWriter(qw)
	n, err := w.Write(buf.B)
	return int64(n), err
}

func (r *Registry) stream(qw *qt.QWriter) {
	qw.S(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	qw.S(`<styleSheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">`)

	if len(r.numFmts) != 0 {
		qw.S(`<numFmts count="`)
		qw.D(len(r.numFmts))
		qw.S(`">`)
		for _, nf := range r.numFmts {
			qw.S(`<numFmt numFmtId="`)
			qw.D(nf.id)
			qw.S(`" formatCode="`)
			qw.S(escape.String(nf.code))
			qw.S(`"/>`)
		}
		qw.S(`</numFmts>`)
	}

	qw.S(`<fonts count="`)
	qw.D(len(r.fonts))
	qw.S(`">`)
	for _, f := range r.fonts {
		qw.S(`<font>`)
		if f.Bold {
			qw.S(`<b/>`)
		}
		if f.Italic {
			qw.S(`<i/>`)
		}
		if f.Underline {
			qw.S(`<u/>`)
		}
		if f.Strikethrough {
			qw.S(`<strike/>`)
		}
		qw.S(`<sz val="`)
		qw.S(escape.Number(f.Size))
		qw.S(`"/>`)
		if f.Color != "" {
			qw.S(`<color rgb="`)
			qw.S(escape.String(f.Color))
			qw.S(`"/>`)
		}
		qw.S(`<name val="`)
		qw.S(escape.String(f.Name))
		qw.S(`"/></font>`)
	}
	qw.S(`</fonts>`)

	qw.S(`<fills count="`)
	qw.D(len(r.fills))
	qw.S(`"><fill><patternFill patternType="none"/></fill><fill><patternFill patternType="gray125"/></fill>`)
	for _, f := range r.fills[2:] {
		qw.S(`<fill><patternFill patternType="solid"><fgColor rgb="`)
		qw.S(escape.String(f.Color))
		qw.S(`"/><bgColor indexed="64"/></patternFill></fill>`)
	}
	qw.S(`</fills>`)

	qw.S(`<borders count="`)
	qw.D(len(r.borders))
	qw.S(`">`)
	for _, b := range r.borders {
		qw.S(`<border>`)
		streamEdge(qw, "left", b.Left)
		streamEdge(qw, "right", b.Right)
		streamEdge(qw, "top", b.Top)
		streamEdge(qw, "bottom", b.Bottom)
		qw.S(`<diagonal/></border>`)
	}
	qw.S(`</borders>`)

	qw.S(`<cellStyleXfs count="1"><xf numFmtId="0" fontId="0" fillId="0" borderId="0"/></cellStyleXfs>`)

	qw.S(`<cellXfs count="`)
	qw.D(len(r.xfs))
	qw.S(`">`)
	for _, x := range r.xfs {
		streamXf(qw, x)
	}
	qw.S(`</cellXfs>`)

	qw.S(`<cellStyles count="1"><cellStyle name="Normal" xfId="0" builtinId="0"/></cellStyles>`)
	qw.S(`<dxfs count="0"/><tableStyles count="0" defaultTableStyle="TableStyleMedium9" defaultPivotStyle="PivotStyleLight16"/>`)
	qw.S(`</styleSheet>`)
}

func streamEdge(qw *qt.QWriter, name string, e spreadsheet.BorderEdge) {
	qw.S(`<`)
	qw.S(name)
	if e.Style == spreadsheet.BorderNone {
		qw.S(`/>`)
		return
	}
	qw.S(` style="`)
	qw.S(string(e.Style))
	qw.S(`">`)
	if e.Color != "" {
		qw.S(`<color rgb="`)
		qw.S(escape.String(e.Color))
		qw.S(`"/>`)
	} else {
		qw.S(`<color auto="1"/>`)
	}
	qw.S(`</`)
	qw.S(name)
	qw.S(`>`)
}

func streamXf(qw *qt.QWriter, x xf) {
	qw.S(`<xf numFmtId="`)
	qw.D(x.numFmt)
	qw.S(`" fontId="`)
	qw.D(x.font)
	qw.S(`" fillId="`)
	qw.D(x.fill)
	qw.S(`" borderId="`)
	qw.D(x.border)
	qw.S(`" xfId="0"`)
	if x.numFmt != 0 {
		qw.S(` applyNumberFormat="1"`)
	}
	if x.font != 0 {
		qw.S(` applyFont="1"`)
	}
	if x.fill != 0 {
		qw.S(` applyFill="1"`)
	}
	if x.border != 0 {
		qw.S(` applyBorder="1"`)
	}
	a, p := x.style.Alignment, x.style.Protection
	if !a.IsZero() {
		qw.S(` applyAlignment="1"`)
	}
	if !p.IsZero() {
		qw.S(` applyProtection="1"`)
	}
	if a.IsZero() && p.IsZero() {
		qw.S(`/>`)
		return
	}
	qw.S(`>`)
	if !a.IsZero() {
		qw.S(`<alignment`)
		if a.Horizontal != "" {
			qw.S(` horizontal="`)
			qw.S(escape.String(a.Horizontal))
			qw.S(`"`)
		}
		if a.Vertical != "" {
			qw.S(` vertical="`)
			qw.S(escape.String(a.Vertical))
			qw.S(`"`)
		}
		if a.WrapText {
			qw.S(` wrapText="1"`)
		}
		if a.ShrinkToFit {
			qw.S(` shrinkToFit="1"`)
		}
		if a.Indent > 0 {
			qw.S(` indent="`)
			qw.D(a.Indent)
			qw.S(`"`)
		}
		qw.S(`/>`)
	}
	if !p.IsZero() {
		qw.S(`<protection`)
		if p.Unlocked {
			qw.S(` locked="0"`)
		}
		if p.Hidden {
			qw.S(` hidden="1"`)
		}
		qw.S(`/>`)
	}
	qw.S(`</xf>`)
}
