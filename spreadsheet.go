// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package spreadsheet holds the value model (rows, cells, styles, comments)
// consumed by the spreadsheet writers of this module, and the generic
// Writer/Sheet contract they implement.
package spreadsheet

import (
	"errors"
	"io"
)

// Writer writes the spreadsheet consisting of the sheets created
// with NewSheet. The write finishes when Close is called.
//
// The writer SHOULD allow writing to separate sheets concurrently,
// and document if it does not provide this functionality.
type Writer interface {
	io.Closer
	NewSheet(name string, cols []Column) (Sheet, error)
}

// Sheet should be Closed when finished.
type Sheet interface {
	io.Closer
	AppendRow(values ...any) error
}

// Column contains the Name of the column and header's style and column's style.
type Column struct {
	Name           string
	Header, Column Style
}

var (
	// ErrTooManyRows is returned when a sheet cannot hold more rows.
	ErrTooManyRows = errors.New("too many rows")
	// ErrNotOpened is returned for row or sheet operations before open or after close.
	ErrNotOpened = errors.New("writer not opened")
	// ErrInvalidArgument is returned for malformed input or sheet misuse.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIO wraps every failure of the underlying storage.
	ErrIO = errors.New("i/o failure")
)

// Number is a string that contains a number.
type Number string
