// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package sharedstrings implements the workbook-wide shared strings table.
//
// Unique strings are appended to a temporary file as <si> elements the first
// time they are seen, so only the index map is held in memory.
package sharedstrings

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"

	"github.com/UNO-SOFT/spreadsheet/v2/internal/escape"
)

const (
	header = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
		`<sst xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" count="`
	footer = `</sst>`
)

// Table assigns insertion ordered indices to strings.
//
// Not safe for concurrent use.
type Table struct {
	index map[string]int
	f     *os.File
	bw    *bufio.Writer
	count int
	err   error
}

// New creates the table with its back-store in dir.
func New(dir string) (*Table, error) {
	f, err := os.CreateTemp(dir, "sharedStrings-*.xml")
	if err != nil {
		return nil, fmt.Errorf("create shared strings back-store: %w", err)
	}
	return &Table{
		index: make(map[string]int, 1024),
		f:     f,
		bw:    bufio.NewWriterSize(f, 64<<10),
	}, nil
}

// Intern returns the index of s, appending it to the back-store
// if it has not been seen yet.
func (t *Table) Intern(s string) (int, error) {
	if t.err != nil {
		return 0, t.err
	}
	t.count++
	if i, ok := t.index[s]; ok {
		return i, nil
	}
	buf := bytebufferpool.Get()
	buf.B = AppendItem(buf.B, s)
	_, err := t.bw.Write(buf.B)
	bytebufferpool.Put(buf)
	if err != nil {
		t.err = fmt.Errorf("write %s: %w", t.f.Name(), err)
		return 0, t.err
	}
	i := len(t.index)
	t.index[s] = i
	return i, nil
}

// AppendItem appends the <si> element of s to dst.
func AppendItem(dst []byte, s string) []byte {
	if s != strings.TrimSpace(s) {
		dst = append(dst, `<si><t xml:space="preserve">`...)
	} else {
		dst = append(dst, `<si><t>`...)
	}
	dst = escape.Append(dst, s)
	return append(dst, `</t></si>`...)
}

// Len returns the number of unique strings.
func (t *Table) Len() int { return len(t.index) }

// Count returns the number of references handed out.
func (t *Table) Count() int { return t.count }

// WriteTo writes the complete sharedStrings.xml part to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	if t.err != nil {
		return 0, t.err
	}
	if t.f == nil {
		return 0, errors.New("shared strings table is closed")
	}
	if err := t.bw.Flush(); err != nil {
		return 0, fmt.Errorf("flush %s: %w", t.f.Name(), err)
	}
	if _, err := t.f.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("seek %s: %w", t.f.Name(), err)
	}
	head := header + strconv.Itoa(t.count) + `" uniqueCount="` + strconv.Itoa(len(t.index)) + `">`
	n, err := io.WriteString(w, head)
	written := int64(n)
	if err != nil {
		return written, err
	}
	m, err := io.Copy(w, t.f)
	written += m
	if err != nil {
		return written, err
	}
	n, err = io.WriteString(w, footer)
	written += int64(n)
	return written, err
}

// Close removes the back-store.
func (t *Table) Close() error {
	f := t.f
	t.f = nil
	if f == nil {
		return nil
	}
	err := f.Close()
	if rmErr := os.Remove(f.Name()); rmErr != nil && err == nil && !errors.Is(rmErr, os.ErrNotExist) {
		err = rmErr
	}
	return err
}
