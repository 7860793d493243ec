// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package escape_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/UNO-SOFT/spreadsheet/v2/internal/escape"
)

func TestString(t *testing.T) {
	for _, tc := range []struct {
		In, Want string
	}{
		{"plain", "plain"},
		{`I'm in "great" mood`, "I&#039;m in &quot;great&quot; mood"},
		{"<must> be escaped & ...", "&lt;must&gt; be escaped &amp; ..."},
		{"control \x15 character", "control _x0015_ character"},
		{"tab\tand\nnewline\r", "tab\tand\nnewline\r"},
		{"\x00\x1F", "_x0000__x001F_"},
		{"árvíztűrő", "árvíztűrő"},
		{"_x0041_", "_x005F_x0041_"},
		{"_x0041_x0042_", "_x005F_x0041_x005F_x0042_"},
		{"_xabcd_ _x12_ _xZZZZ_", "_x005F_xabcd_ _x12_ _xZZZZ_"},
		{"a\xffb", "a\uFFFDb"},
	} {
		assert.Equal(t, tc.Want, escape.String(tc.In), tc.In)
		assert.Equal(t, tc.Want, string(escape.Append(nil, tc.In)), tc.In)
	}
}

func TestUnescapeRoundTrip(t *testing.T) {
	for _, s := range []string{
		"", "plain", `I'm in "great" mood`, "<a> & <b>",
		"control \x15 character", "\x01\x02\x03", "_x_ not a token _x12_",
		"tűrő _xZZZZ_", "_x0041_", "_x0041_x0042_", "__x005F__", "_x0015_\x15",
	} {
		assert.Equal(t, s, escape.Unescape(escape.String(s)), "%q", s)
	}
	assert.Equal(t, "'", escape.Unescape("&#39;"))
}

func TestNumber(t *testing.T) {
	for _, tc := range []struct {
		In   float64
		Want string
	}{
		{0, "0"},
		{1.5, "1.5"},
		{-42, "-42"},
		{1234567890123, "1234567890123"},
		{0.1, "0.1"},
		{1e20, "1e+20"},
	} {
		assert.Equal(t, tc.Want, escape.Number(tc.In))
		assert.Equal(t, tc.Want, string(escape.AppendNumber(nil, tc.In)))
	}
}

func TestDateSerial(t *testing.T) {
	for _, tc := range []struct {
		In   time.Time
		Want float64
	}{
		{time.Date(2020, 3, 4, 6, 0, 0, 0, time.UTC), 43894.25},
		{time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC), 1},
		{time.Date(1900, 3, 1, 0, 0, 0, 0, time.UTC), 61},
		{time.Date(1970, 1, 1, 12, 0, 0, 0, time.UTC), 25569.5},
		// wall clock is kept, no conversion to UTC
		{time.Date(2020, 3, 4, 6, 0, 0, 0, time.FixedZone("CET", 3600)), 43894.25},
	} {
		assert.InDelta(t, tc.Want, escape.DateSerial(tc.In), 1e-9, tc.In.String())
	}
}

func TestDurationSerial(t *testing.T) {
	assert.Equal(t, 1.5, escape.DurationSerial(36*time.Hour))
	assert.Equal(t, 0.25, escape.DurationSerial(6*time.Hour))
}

func TestText(t *testing.T) {
	assert.Equal(t, `'Sheet First'!$A$1:$D$3`, escape.Text(`'Sheet First'!$A$1:$D$3`))
	assert.Equal(t, `"a" &amp; &lt;b&gt;`, escape.Text(`"a" & <b>`))
	assert.Equal(t, `&amp;quot;`, escape.Text(`&quot;`))
	assert.Equal(t, `it's _x005F_x0041_`, escape.Text(`it's _x0041_`))
}
