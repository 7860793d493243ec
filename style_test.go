// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package spreadsheet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/UNO-SOFT/spreadsheet/v2"
)

func TestStyleIdentity(t *testing.T) {
	assert.True(t, spreadsheet.Style{}.IsZero())
	a := spreadsheet.Style{}.Bold().WithFormat("0.00")
	b := spreadsheet.Style{Format: "0.00", Font: spreadsheet.Font{Bold: true}}
	assert.False(t, a.IsZero())
	assert.Equal(t, a, b)

	seen := map[spreadsheet.Style]int{a: 1}
	assert.Equal(t, 1, seen[b])
	assert.Zero(t, seen[b.WithFormat("0")])
}
