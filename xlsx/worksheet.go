// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"

	"github.com/valyala/bytebufferpool"
	qt "github.com/valyala/quicktemplate"
	"github.com/xuri/excelize/v2"

	"github.com/UNO-SOFT/spreadsheet/v2"
	"github.com/UNO-SOFT/spreadsheet/v2/internal/escape"
	"github.com/UNO-SOFT/spreadsheet/v2/internal/passwordhash"
)

// Implicit number formats of unstyled date and duration cells.
const (
	DateFormat     = "yyyy-mm-dd"
	DateTimeFormat = "yyyy-mm-dd hh:mm:ss"
	DurationFormat = "[h]:mm:ss"
)

// worksheet holds the streamed <row> elements of a sheet in a temp file,
// and the extents needed to assemble the sheet part at close.
type worksheet struct {
	f        *os.File
	bw       *bufio.Writer
	comments *commentWriter

	rowNum                         int
	minRow, maxRow, minCol, maxCol int
	cellCount                      int
}

func newWorksheet(dir string, index int) (*worksheet, error) {
	f, err := os.CreateTemp(dir, "sheet"+strconv.Itoa(index+1)+"-*.xml")
	if err != nil {
		return nil, fmt.Errorf("%w: create sheet fragment: %w", spreadsheet.ErrIO, err)
	}
	return &worksheet{f: f, bw: bufio.NewWriterSize(f, 64<<10)}, nil
}

func (ws *worksheet) track(row, col int) {
	ws.cellCount++
	if ws.minRow == 0 || row < ws.minRow {
		ws.minRow = row
	}
	if row > ws.maxRow {
		ws.maxRow = row
	}
	if ws.minCol == 0 || col < ws.minCol {
		ws.minCol = col
	}
	if col > ws.maxCol {
		ws.maxCol = col
	}
}

// dimension returns the reference of the used area.
func (ws *worksheet) dimension() string {
	if ws.maxRow == 0 {
		return "A1"
	}
	from, _ := excelize.CoordinatesToCellName(ws.minCol, ws.minRow)
	if ws.minRow == ws.maxRow && ws.minCol == ws.maxCol {
		return from
	}
	to, _ := excelize.CoordinatesToCellName(ws.maxCol, ws.maxRow)
	return from + ":" + to
}

func (ws *worksheet) close() error {
	var firstErr error
	if ws.comments != nil {
		firstErr = ws.comments.close()
	}
	if ws.f != nil {
		if err := ws.f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		_ = os.Remove(ws.f.Name())
		ws.f = nil
	}
	return firstErr
}

// appendRow serializes the row into the sheet fragment.
// Empty rows only advance the row cursor.
func (s *Sheet) appendRow(row spreadsheet.Row) error {
	ws := s.ws
	ws.rowNum++
	r := ws.rowNum
	if row.IsEmpty() {
		// no <row>, but the comments still need their anchors
		for i, c := range row.Cells {
			if c.Comment == nil {
				continue
			}
			if err := s.addComment(r, i+1, s.wb.colName(i+1), c.Comment); err != nil {
				return err
			}
		}
		return nil
	}
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	b := append(buf.B, `<row r="`...)
	b = strconv.AppendInt(b, int64(r), 10)
	b = append(b, '"')
	if row.Height > 0 {
		b = append(b, ` ht="`...)
		b = escape.AppendNumber(b, row.Height)
		b = append(b, `" customHeight="1"`...)
	}
	b = append(b, '>')
	var err error
	for i, c := range row.Cells {
		if b, err = s.appendCell(b, r, i+1, c, row.Style); err != nil {
			buf.B = b
			return err
		}
	}
	b = append(b, `</row>`...)
	buf.B = b

	if _, err := ws.bw.Write(b); err != nil {
		return fmt.Errorf("%w: write %s: %w", spreadsheet.ErrIO, ws.f.Name(), err)
	}
	return nil
}

func (s *Sheet) appendCell(dst []byte, row, col int, c spreadsheet.Cell, rowStyle *spreadsheet.Style) ([]byte, error) {
	wb := s.wb
	colName := wb.colName(col)
	if c.Comment != nil {
		if err := s.addComment(row, col, colName, c.Comment); err != nil {
			return dst, err
		}
	}
	styleIdx := wb.styleIndex(c, rowStyle)
	empty := c.IsEmpty()
	if empty && styleIdx == 0 {
		return dst, nil
	}
	s.ws.track(row, col)

	dst = append(dst, `<c r="`...)
	dst = append(dst, colName...)
	dst = strconv.AppendInt(dst, int64(row), 10)
	dst = append(dst, '"')
	if styleIdx != 0 {
		dst = append(dst, ` s="`...)
		dst = strconv.AppendInt(dst, int64(styleIdx), 10)
		dst = append(dst, '"')
	}
	if empty {
		return append(dst, `/>`...), nil
	}

	switch c.Kind() {
	case spreadsheet.KindString:
		if wb.sst == nil {
			dst = append(dst, ` t="inlineStr"><is>`...)
			dst = appendText(dst, c.String())
			dst = append(dst, `</is></c>`...)
		} else {
			i, err := wb.sst.Intern(c.String())
			if err != nil {
				return dst, fmt.Errorf("%w: %w", spreadsheet.ErrIO, err)
			}
			dst = append(dst, ` t="s"><v>`...)
			dst = strconv.AppendInt(dst, int64(i), 10)
			dst = append(dst, `</v></c>`...)
		}
	case spreadsheet.KindNumber:
		dst = append(dst, `><v>`...)
		dst = escape.AppendNumber(dst, c.Float())
		dst = append(dst, `</v></c>`...)
	case spreadsheet.KindBool:
		if c.Bool() {
			dst = append(dst, ` t="b"><v>1</v></c>`...)
		} else {
			dst = append(dst, ` t="b"><v>0</v></c>`...)
		}
	case spreadsheet.KindDate:
		dst = append(dst, `><v>`...)
		dst = escape.AppendNumber(dst, escape.DateSerial(c.Time()))
		dst = append(dst, `</v></c>`...)
	case spreadsheet.KindDuration:
		dst = append(dst, `><v>`...)
		dst = escape.AppendNumber(dst, escape.DurationSerial(c.Duration()))
		dst = append(dst, `</v></c>`...)
	case spreadsheet.KindError:
		dst = append(dst, ` t="e"><v>`...)
		dst = escape.Append(dst, c.String())
		dst = append(dst, `</v></c>`...)
	case spreadsheet.KindFormula:
		dst = append(dst, `><f>`...)
		dst = escape.Append(dst, c.String())
		dst = append(dst, `</f></c>`...)
	default:
		return dst, fmt.Errorf("%w: cell kind %s", spreadsheet.ErrInvalidArgument, c.Kind())
	}
	return dst, nil
}

// appendText appends the <t> element of an inline string.
func appendText(dst []byte, s string) []byte {
	if len(s) != 0 && (isSpace(s[0]) || isSpace(s[len(s)-1])) {
		dst = append(dst, `<t xml:space="preserve">`...)
	} else {
		dst = append(dst, `<t>`...)
	}
	dst = escape.Append(dst, s)
	return append(dst, `</t>`...)
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }

// implicitFormat returns the number format of date and duration cells
// whose style has none.
func implicitFormat(c spreadsheet.Cell) string {
	switch c.Kind() {
	case spreadsheet.KindDate:
		t := c.Time()
		if h, m, s := t.Clock(); h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0 {
			return DateFormat
		}
		return DateTimeFormat
	case spreadsheet.KindDuration:
		return DurationFormat
	}
	return ""
}

// writeTo writes the complete sheet part: the head, the streamed rows and the trailer.
func (s *Sheet) writeTo(w io.Writer) error {
	ws := s.ws
	if err := ws.bw.Flush(); err != nil {
		return fmt.Errorf("%w: flush %s: %w", spreadsheet.ErrIO, ws.f.Name(), err)
	}
	if _, err := ws.f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w: seek %s: %w", spreadsheet.ErrIO, ws.f.Name(), err)
	}
	if err := renderTo(w, s.streamHead); err != nil {
		return err
	}
	if _, err := io.Copy(w, ws.f); err != nil {
		return fmt.Errorf("%w: copy %s: %w", spreadsheet.ErrIO, ws.f.Name(), err)
	}
	return renderTo(w, s.streamTail)
}

func (s *Sheet) streamHead(w *qt.Writer) {
	qw := w.N()
	opts := s.wb.opts
	qw.S(xmlHeader)
	qw.S(`<worksheet xmlns="` + nsMain + `" xmlns:r="` + nsRelationships + `">`)

	fit := opts.PageSetup.fitToPage()
	if s.autoFilter != nil || fit {
		qw.S(`<sheetPr`)
		if s.autoFilter != nil {
			qw.S(` filterMode="false"`)
		}
		qw.S(`><pageSetUpPr fitToPage="`)
		qw.S(strconv.FormatBool(fit))
		qw.S(`"/></sheetPr>`)
	}

	qw.S(`<dimension ref="`)
	qw.S(s.ws.dimension())
	qw.S(`"/>`)

	qw.S(`<sheetViews><sheetView workbookViewId="0"`)
	if s == s.wb.current {
		qw.S(` tabSelected="1"`)
	}
	qw.S(`/></sheetViews>`)

	if opts.DefaultColumnWidth > 0 || opts.DefaultRowHeight > 0 {
		qw.S(`<sheetFormatPr`)
		if opts.DefaultColumnWidth > 0 {
			qw.S(` defaultColWidth="`)
			qw.S(escape.Number(opts.DefaultColumnWidth))
			qw.S(`"`)
		}
		if opts.DefaultRowHeight > 0 {
			qw.S(` defaultRowHeight="`)
			qw.S(escape.Number(opts.DefaultRowHeight))
			qw.S(`" customHeight="1"/>`)
		} else {
			qw.S(` defaultRowHeight="15"/>`)
		}
	}

	if cols := mergeColumnWidths(s.allColumnWidths()); len(cols) != 0 {
		qw.S(`<cols>`)
		for _, c := range cols {
			qw.S(`<col min="`)
			qw.D(c.From)
			qw.S(`" max="`)
			qw.D(c.To)
			qw.S(`" width="`)
			qw.S(escape.Number(c.Width))
			qw.S(`" customWidth="1"/>`)
		}
		qw.S(`</cols>`)
	}
	qw.S(`<sheetData>`)
}

func (s *Sheet) streamTail(w *qt.Writer) {
	qw := w.N()
	opts := s.wb.opts
	qw.S(`</sheetData>`)

	if p := s.protection; p != nil {
		qw.S(`<sheetProtection`)
		if p.Password != "" {
			qw.S(` password="`)
			qw.S(passwordhash.Make(p.Password))
			qw.S(`"`)
		}
		for _, a := range []struct {
			Name  string
			Value bool
		}{
			{"sheet", p.LockSheet},
			{"objects", p.LockObjects},
			{"scenarios", p.LockScenarios},
			{"formatCells", p.LockCellFormatting},
			{"formatColumns", p.LockColumnFormatting},
			{"formatRows", p.LockRowFormatting},
			{"insertColumns", p.LockColumnInsert},
			{"insertRows", p.LockRowInsert},
			{"deleteColumns", p.LockColumnDelete},
			{"deleteRows", p.LockRowDelete},
			{"selectLockedCells", p.LockLockedCellSelection},
			{"selectUnlockedCells", p.LockUnlockedCellsSelection},
			{"autoFilter", p.LockAutoFilter},
			{"sort", p.LockSort},
			{"insertHyperlinks", p.LockHyperlinkInsert},
			{"pivotTables", p.LockPivotTables},
		} {
			qw.S(` `)
			qw.S(a.Name)
			qw.S(`="`)
			qw.S(strconv.FormatBool(a.Value))
			qw.S(`"`)
		}
		qw.S(`></sheetProtection>`)
	}

	if s.autoFilter != nil {
		qw.S(`<autoFilter ref="`)
		qw.S(s.autoFilter.String())
		qw.S(`"/>`)
	}

	if merges := s.allMerges(); len(merges) != 0 {
		qw.S(`<mergeCells count="`)
		qw.D(len(merges))
		qw.S(`">`)
		for _, m := range merges {
			qw.S(`<mergeCell ref="`)
			qw.S(m.String())
			qw.S(`"/>`)
		}
		qw.S(`</mergeCells>`)
	}

	if m := opts.PageMargin; m != nil {
		qw.S(`<pageMargins top="`)
		qw.S(escape.Number(m.Top))
		qw.S(`" right="`)
		qw.S(escape.Number(m.Right))
		qw.S(`" bottom="`)
		qw.S(escape.Number(m.Bottom))
		qw.S(`" left="`)
		qw.S(escape.Number(m.Left))
		qw.S(`" header="`)
		qw.S(escape.Number(m.Header))
		qw.S(`" footer="`)
		qw.S(escape.Number(m.Footer))
		qw.S(`"/>`)
	}

	if ps := opts.PageSetup; ps != nil {
		qw.S(`<pageSetup`)
		if ps.Orientation != "" {
			qw.S(` orientation="`)
			qw.S(string(ps.Orientation))
			qw.S(`"`)
		}
		if ps.PaperSize > 0 {
			qw.S(` paperSize="`)
			qw.D(int(ps.PaperSize))
			qw.S(`"`)
		}
		if ps.FitToHeight != nil {
			qw.S(` fitToHeight="`)
			qw.D(*ps.FitToHeight)
			qw.S(`"`)
		}
		if ps.FitToWidth != nil {
			qw.S(` fitToWidth="`)
			qw.D(*ps.FitToWidth)
			qw.S(`"`)
		}
		qw.S(`/>`)
	}

	if hf := opts.HeaderFooter; hf != nil {
		qw.S(`<headerFooter`)
		if hf.DifferentOddEven {
			qw.S(` differentOddEven="1"`)
		}
		qw.S(`>`)
		streamtextElement(w, "oddHeader", hf.OddHeader)
		streamtextElement(w, "oddFooter", hf.OddFooter)
		if hf.DifferentOddEven {
			streamtextElement(w, "evenHeader", hf.EvenHeader)
			streamtextElement(w, "evenFooter", hf.EvenFooter)
		}
		qw.S(`</headerFooter>`)
	}

	if s.ws.comments != nil {
		qw.S(`<legacyDrawing r:id="`)
		qw.S(s.vmlRelID())
		qw.S(`"/>`)
	}
	qw.S(`</worksheet>`)
}

// mergeColumnWidths flattens the width settings (later wins) into
// ascending, non-overlapping column ranges.
func mergeColumnWidths(cws []columnWidth) []columnWidth {
	if len(cws) == 0 {
		return nil
	}
	widths := make(map[int]float64)
	for _, cw := range cws {
		for c := max(cw.From, 1); c <= min(cw.To, MaxColumnCount); c++ {
			widths[c] = cw.Width
		}
	}
	var out []columnWidth
	for _, c := range slices.Sorted(maps.Keys(widths)) {
		w := widths[c]
		if n := len(out); n != 0 && out[n-1].To == c-1 && out[n-1].Width == w {
			out[n-1].To = c
			continue
		}
		out = append(out, columnWidth{From: c, To: c, Width: w})
	}
	return out
}
