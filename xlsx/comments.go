// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/valyala/bytebufferpool"

	"github.com/UNO-SOFT/spreadsheet/v2"
	"github.com/UNO-SOFT/spreadsheet/v2/internal/escape"
)

// commentWriter streams the comments of a sheet into two temp files:
// the <comment> list and the VML note shapes.
type commentWriter struct {
	list, shapes   *os.File
	listW, shapesW *bufio.Writer
	count          int
}

func newCommentWriter(dir string, index int) (*commentWriter, error) {
	prefix := "comments" + strconv.Itoa(index+1)
	list, err := os.CreateTemp(dir, prefix+"-*.xml")
	if err != nil {
		return nil, fmt.Errorf("%w: create comment list: %w", spreadsheet.ErrIO, err)
	}
	shapes, err := os.CreateTemp(dir, prefix+"-*.vml")
	if err != nil {
		list.Close()
		os.Remove(list.Name())
		return nil, fmt.Errorf("%w: create comment shapes: %w", spreadsheet.ErrIO, err)
	}
	return &commentWriter{
		list: list, listW: bufio.NewWriter(list),
		shapes: shapes, shapesW: bufio.NewWriter(shapes),
	}, nil
}

func (s *Sheet) addComment(row, col int, colName string, c *spreadsheet.Comment) error {
	ws := s.ws
	if ws.comments == nil {
		cw, err := newCommentWriter(s.wb.dir, s.index)
		if err != nil {
			return err
		}
		ws.comments = cw
	}
	return ws.comments.add(s.index, row, col, colName, c)
}

func (cw *commentWriter) add(sheetIndex, row, col int, colName string, c *spreadsheet.Comment) error {
	cw.count++
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	b := append(buf.B, `<comment ref="`...)
	b = append(b, colName...)
	b = strconv.AppendInt(b, int64(row), 10)
	b = append(b, `" authorId="0"><text>`...)
	for _, run := range c.TextRuns {
		b = appendTextRun(b, run)
	}
	b = append(b, `</text></comment>`...)
	if _, err := cw.listW.Write(b); err != nil {
		buf.B = b
		return fmt.Errorf("%w: write %s: %w", spreadsheet.ErrIO, cw.list.Name(), err)
	}

	b = appendShape(b[:0], sheetIndex, cw.count, row, col, c)
	buf.B = b
	if _, err := cw.shapesW.Write(b); err != nil {
		return fmt.Errorf("%w: write %s: %w", spreadsheet.ErrIO, cw.shapes.Name(), err)
	}
	return nil
}

func appendTextRun(dst []byte, run spreadsheet.TextRun) []byte {
	dst = append(dst, `<r>`...)
	if run.Bold || run.Italic || run.FontSize > 0 || run.FontColor != "" || run.FontName != "" {
		dst = append(dst, `<rPr>`...)
		if run.Bold {
			dst = append(dst, `<b/>`...)
		}
		if run.Italic {
			dst = append(dst, `<i/>`...)
		}
		if run.FontSize > 0 {
			dst = append(dst, `<sz val="`...)
			dst = escape.AppendNumber(dst, run.FontSize)
			dst = append(dst, `"/>`...)
		}
		if run.FontColor != "" {
			dst = append(dst, `<color rgb="`...)
			dst = escape.Append(dst, run.FontColor)
			dst = append(dst, `"/>`...)
		}
		if run.FontName != "" {
			dst = append(dst, `<rFont val="`...)
			dst = escape.Append(dst, run.FontName)
			dst = append(dst, `"/>`...)
		}
		dst = append(dst, `</rPr>`...)
	}
	dst = appendText(dst, run.Text)
	return append(dst, `</r>`...)
}

func appendShape(dst []byte, sheetIndex, n, row, col int, c *spreadsheet.Comment) []byte {
	def := spreadsheet.NewComment()
	orDefault := func(s, d string) string {
		if s == "" {
			return d
		}
		return s
	}
	fill := escape.String(orDefault(c.FillColor, def.FillColor))

	dst = append(dst, `<v:shape id="_x0000_s`...)
	dst = strconv.AppendInt(dst, int64(shapeID(sheetIndex, n)), 10)
	dst = append(dst, `" type="#_x0000_t202" style="position:absolute;margin-left:`...)
	dst = escape.Append(dst, orDefault(c.MarginLeft, def.MarginLeft))
	dst = append(dst, `;margin-top:`...)
	dst = escape.Append(dst, orDefault(c.MarginTop, def.MarginTop))
	dst = append(dst, `;width:`...)
	dst = escape.Append(dst, orDefault(c.Width, def.Width))
	dst = append(dst, `;height:`...)
	dst = escape.Append(dst, orDefault(c.Height, def.Height))
	dst = append(dst, `;z-index:`...)
	dst = strconv.AppendInt(dst, int64(n), 10)
	if c.Visible {
		dst = append(dst, `;visibility:visible`...)
	} else {
		dst = append(dst, `;visibility:hidden`...)
	}
	dst = append(dst, `" fillcolor="`...)
	dst = append(dst, fill...)
	dst = append(dst, `" o:insetmode="auto"><v:fill color2="`...)
	dst = append(dst, fill...)
	dst = append(dst, `"/><v:shadow on="t" color="black" obscured="t"/><v:path o:connecttype="none"/>`+
		`<v:textbox style="mso-direction-alt:auto"><div style="text-align:left"></div></v:textbox>`+
		`<x:ClientData ObjectType="Note"><x:MoveWithCells/><x:SizeWithCells/><x:AutoFill>False</x:AutoFill><x:Row>`...)
	dst = strconv.AppendInt(dst, int64(row-1), 10)
	dst = append(dst, `</x:Row><x:Column>`...)
	dst = strconv.AppendInt(dst, int64(col-1), 10)
	dst = append(dst, `</x:Column>`...)
	if c.Visible {
		dst = append(dst, `<x:Visible/>`...)
	}
	return append(dst, `</x:ClientData></v:shape>`...)
}

// shapeID gives every sheet its own block of 1024 shape ids.
func shapeID(sheetIndex, n int) int { return 1024*(sheetIndex+1) + n }

// writeComments writes the commentsN.xml part.
func (cw *commentWriter) writeComments(w io.Writer) error {
	if _, err := io.WriteString(w, xmlHeader+
		`<comments xmlns="`+nsMain+`"><authors><author></author></authors><commentList>`); err != nil {
		return err
	}
	if err := copyBack(w, cw.list, cw.listW); err != nil {
		return err
	}
	_, err := io.WriteString(w, `</commentList></comments>`)
	return err
}

// writeVML writes the vmlDrawingN.vml part.
func (cw *commentWriter) writeVML(w io.Writer, sheetIndex int) error {
	if _, err := io.WriteString(w, `<xml xmlns:v="urn:schemas-microsoft-com:vml" `+
		`xmlns:o="urn:schemas-microsoft-com:office:office" `+
		`xmlns:x="urn:schemas-microsoft-com:office:excel">`+
		`<o:shapelayout v:ext="edit"><o:idmap v:ext="edit" data="`+strconv.Itoa(sheetIndex+1)+`"/></o:shapelayout>`+
		`<v:shapetype id="_x0000_t202" coordsize="21600,21600" o:spt="202" path="m,l,21600r21600,l21600,xe">`+
		`<v:stroke joinstyle="miter"/><v:path gradientshapeok="t" o:connecttype="rect"/></v:shapetype>`); err != nil {
		return err
	}
	if err := copyBack(w, cw.shapes, cw.shapesW); err != nil {
		return err
	}
	_, err := io.WriteString(w, `</xml>`)
	return err
}

// copyBack flushes bw and copies the whole content of f to w.
func copyBack(w io.Writer, f *os.File, bw *bufio.Writer) error {
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: flush %s: %w", spreadsheet.ErrIO, f.Name(), err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w: seek %s: %w", spreadsheet.ErrIO, f.Name(), err)
	}
	_, err := io.Copy(w, f)
	return err
}

func (cw *commentWriter) close() error {
	var errs []error
	for _, f := range []*os.File{cw.list, cw.shapes} {
		if err := f.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			errs = append(errs, err)
		}
		_ = os.Remove(f.Name())
	}
	return errors.Join(errs...)
}

func (s *Sheet) commentsPart() string { return "xl/comments" + strconv.Itoa(s.index+1) + ".xml" }
func (s *Sheet) vmlPart() string {
	return "xl/drawings/vmlDrawing" + strconv.Itoa(s.index+1) + ".vml"
}
func (s *Sheet) vmlRelID() string      { return "rId_comments_vml" + strconv.Itoa(s.index+1) }
func (s *Sheet) commentsRelID() string { return "rId_comments" + strconv.Itoa(s.index+1) }
