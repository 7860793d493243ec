// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"
	"github.com/valyala/bytebufferpool"
	qt "github.com/valyala/quicktemplate"

	"github.com/UNO-SOFT/spreadsheet/v2"
)

//go:generate qtc -file=parts.qtpl

const (
	xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

	nsMain           = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"
	nsRelationships  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPackageRels    = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes   = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsDocPropsVTypes = "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes"

	relTypeOfficeDocument = nsRelationships + "/officeDocument"
	relTypeCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relTypeExtendedProps  = nsRelationships + "/extended-properties"
	relTypeCustomProps    = nsRelationships + "/custom-properties"
	relTypeWorksheet      = nsRelationships + "/worksheet"
	relTypeStyles         = nsRelationships + "/styles"
	relTypeSharedStrings  = nsRelationships + "/sharedStrings"
	relTypeComments       = nsRelationships + "/comments"
	relTypeVMLDrawing     = nsRelationships + "/vmlDrawing"

	ctWorkbook      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"
	ctWorksheet     = "application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"
	ctStyles        = "application/vnd.openxmlformats-officedocument.spreadsheetml.styles+xml"
	ctSharedStrings = "application/vnd.openxmlformats-officedocument.spreadsheetml.sharedStrings+xml"
	ctComments      = "application/vnd.openxmlformats-officedocument.spreadsheetml.comments+xml"
	ctVMLDrawing    = "application/vnd.openxmlformats-officedocument.vmlDrawing"
	ctCoreProps     = "application/vnd.openxmlformats-package.core-properties+xml"
	ctExtendedProps = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	ctCustomProps   = "application/vnd.openxmlformats-officedocument.custom-properties+xml"
	ctRelationships = "application/vnd.openxmlformats-package.relationships+xml"

	// ContentType is the MIME type of the produced package.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// fmtidUserDefined is the format id of the user defined custom properties.
	fmtidUserDefined = "{D5CDD505-2E9C-101B-9397-08002B2CF9AE}"
)

// renderTo renders a part into a pooled buffer and writes it to w.
func renderTo(w io.Writer, stream func(*qt.Writer)) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	qw := qt.AcquireWriter(buf)
	stream(qw)
	qt.ReleaseWriter(qw)
	_, err := w.Write(buf.B)
	return err
}

// zipPackage writes the parts of the package as deflated zip entries.
type zipPackage struct {
	zw       *zip.Writer
	modified time.Time
}

func newZipPackage(w io.Writer, level int, modified time.Time) *zipPackage {
	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, level)
	})
	return &zipPackage{zw: zw, modified: modified}
}

func (p *zipPackage) create(name string) (io.Writer, error) {
	w, err := p.zw.CreateHeader(&zip.FileHeader{
		Name: name, Method: zip.Deflate, Modified: p.modified,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create %s: %w", spreadsheet.ErrIO, name, err)
	}
	return w, nil
}

// render writes a rendered part.
func (p *zipPackage) render(name string, stream func(*qt.Writer)) error {
	w, err := p.create(name)
	if err != nil {
		return err
	}
	if err = renderTo(w, stream); err != nil {
		return fmt.Errorf("%w: write %s: %w", spreadsheet.ErrIO, name, err)
	}
	return nil
}

// copy writes a part produced by a writer function.
func (p *zipPackage) copy(name string, write func(io.Writer) error) error {
	w, err := p.create(name)
	if err != nil {
		return err
	}
	if err = write(w); err != nil {
		return fmt.Errorf("%w: write %s: %w", spreadsheet.ErrIO, name, err)
	}
	return nil
}

func (p *zipPackage) close() error {
	if err := p.zw.Close(); err != nil {
		return fmt.Errorf("%w: close zip: %w", spreadsheet.ErrIO, err)
	}
	return nil
}

// writePackage assembles every part of the workbook into w.
// [Content_Types].xml goes first, so MIME sniffers recognize the package.
func (wb *workbook) writePackage(w io.Writer) error {
	props := wb.opts.Properties.withDefaults()
	p := newZipPackage(w, wb.opts.CompressionLevel, props.Created)

	if err := p.render("[Content_Types].xml", func(qw *qt.Writer) { streamcontentTypes(qw, wb) }); err != nil {
		return err
	}
	if err := p.render("_rels/.rels", func(qw *qt.Writer) { streamrootRels(qw, len(props.Custom) != 0) }); err != nil {
		return err
	}
	if err := p.render("docProps/app.xml", func(qw *qt.Writer) { streamappProps(qw, props) }); err != nil {
		return err
	}
	if err := p.render("docProps/core.xml", func(qw *qt.Writer) { streamcoreProps(qw, props) }); err != nil {
		return err
	}
	if len(props.Custom) != 0 {
		if err := p.render("docProps/custom.xml", func(qw *qt.Writer) { streamcustomProps(qw, props.Custom) }); err != nil {
			return err
		}
	}
	if err := p.render("xl/workbook.xml", func(qw *qt.Writer) { streamworkbookXML(qw, wb) }); err != nil {
		return err
	}
	if err := p.render("xl/_rels/workbook.xml.rels", func(qw *qt.Writer) { streamworkbookRels(qw, wb) }); err != nil {
		return err
	}
	if err := p.copy("xl/styles.xml", func(w io.Writer) error {
		_, err := wb.styles.WriteTo(w)
		return err
	}); err != nil {
		return err
	}
	if wb.sst != nil {
		if err := p.copy("xl/sharedStrings.xml", func(w io.Writer) error {
			_, err := wb.sst.WriteTo(w)
			return err
		}); err != nil {
			return err
		}
	}
	for _, s := range wb.sheets {
		if err := p.copy("xl/worksheets/sheet"+strconv.Itoa(s.index+1)+".xml", s.writeTo); err != nil {
			return err
		}
		cw := s.ws.comments
		if cw == nil {
			continue
		}
		if err := p.render("xl/worksheets/_rels/sheet"+strconv.Itoa(s.index+1)+".xml.rels", func(qw *qt.Writer) { streamsheetRels(qw, s) }); err != nil {
			return err
		}
		if err := p.copy(s.commentsPart(), cw.writeComments); err != nil {
			return err
		}
		if err := p.copy(s.vmlPart(), func(w io.Writer) error { return cw.writeVML(w, s.index) }); err != nil {
			return err
		}
	}
	return p.close()
}

func (wb *workbook) hasComments() bool {
	for _, s := range wb.sheets {
		if s.ws.comments != nil {
			return true
		}
	}
	return false
}

func (wb *workbook) hasDefinedNames() bool {
	for _, s := range wb.sheets {
		if s.autoFilter != nil || s.printTitleRows != "" {
			return true
		}
	}
	return false
}

func (wb *workbook) activeTab() int {
	if wb.current == nil {
		return 0
	}
	return wb.current.index
}
