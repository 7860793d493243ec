// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package escape converts values into text that is safe inside OOXML parts.
//
// Control characters which XML 1.0 cannot carry are written as _xHHHH_,
// the convention the spreadsheet applications use themselves.
package escape

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const hexDigits = "0123456789ABCDEF"

// needsEscape is indexed by byte; 1 for XML specials, 2 for illegal controls,
// 3 for '_' which may start a literal _xHHHH_ token.
var needsEscape [256]uint8

func init() {
	for _, c := range "&<>\"'" {
		needsEscape[c] = 1
	}
	for c := 0; c < 0x20; c++ {
		if c != '\t' && c != '\n' && c != '\r' {
			needsEscape[c] = 2
		}
	}
	needsEscape['_'] = 3
}

// String escapes s for use as XML text or attribute value.
//
// A literal _xHHHH_ in s gets its underscore escaped as _x005F_, so readers
// do not decode it. Invalid UTF-8 sequences are replaced by U+FFFD.
func String(s string) string {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "\uFFFD")
	}
	i := indexEscape(s)
	if i < 0 {
		return s
	}
	b := make([]byte, 0, len(s)+16)
	return string(appendFrom(append(b, s[:i]...), s, i))
}

// Append appends the escaped s to dst, see String.
func Append(dst []byte, s string) []byte {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "\uFFFD")
	}
	i := indexEscape(s)
	if i < 0 {
		return append(dst, s...)
	}
	return appendFrom(append(dst, s[:i]...), s, i)
}

func appendFrom(dst []byte, s string, i int) []byte {
	for j := i; j < len(s); j++ {
		c := s[j]
		switch needsEscape[c] {
		case 0:
			dst = append(dst, c)
		case 1:
			dst = append(dst, entity(c)...)
		case 2:
			dst = append(dst, '_', 'x', '0', '0', hexDigits[c>>4], hexDigits[c&0xF], '_')
		default:
			if isToken(s[j:]) {
				dst = append(dst, "_x005F_"...)
			} else {
				dst = append(dst, c)
			}
		}
	}
	return dst
}

func indexEscape(s string) int {
	for i := 0; i < len(s); i++ {
		switch needsEscape[s[i]] {
		case 0:
		case 3:
			if isToken(s[i:]) {
				return i
			}
		default:
			return i
		}
	}
	return -1
}

// isToken reports whether s starts with _xHHHH_.
func isToken(s string) bool {
	if len(s) < 7 || s[0] != '_' || s[1] != 'x' || s[6] != '_' {
		return false
	}
	for _, c := range []byte(s[2:6]) {
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

// Text escapes s for use as element content, where quotes stay as they are.
func Text(s string) string {
	if !strings.ContainsAny(s, `"'`) {
		return String(s)
	}
	return quoteUnescaper.Replace(String(s))
}

var quoteUnescaper = strings.NewReplacer("&quot;", `"`, "&#039;", "'")

func entity(c byte) string {
	switch c {
	case '&':
		return "&amp;"
	case '<':
		return "&lt;"
	case '>':
		return "&gt;"
	case '"':
		return "&quot;"
	case '\'':
		return "&#039;"
	}
	return string(c)
}

var unescaper = strings.NewReplacer(
	"&amp;", "&", "&lt;", "<", "&gt;", ">",
	"&quot;", `"`, "&#039;", "'", "&#39;", "'", "&apos;", "'",
)

// Unescape reverses String, including the _xHHHH_ control character tokens.
func Unescape(s string) string {
	s = unescaper.Replace(s)
	if !strings.Contains(s, "_x") {
		return s
	}
	var buf strings.Builder
	for {
		i := strings.Index(s, "_x")
		if i < 0 || len(s) < i+7 {
			buf.WriteString(s)
			return buf.String()
		}
		if s[i+6] == '_' {
			if n, err := strconv.ParseUint(s[i+2:i+6], 16, 16); err == nil {
				buf.WriteString(s[:i])
				buf.WriteRune(rune(n))
				s = s[i+7:]
				continue
			}
		}
		buf.WriteString(s[:i+2])
		s = s[i+2:]
	}
}

// Number formats f with '.' as decimal separator, whatever the locale is.
func Number(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// AppendNumber is the appending version of Number.
func AppendNumber(dst []byte, f float64) []byte {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.AppendInt(dst, int64(f), 10)
	}
	return strconv.AppendFloat(dst, f, 'g', -1, 64)
}

// excelEpoch is day 0 of the 1900 date system, shifted by the phantom
// 1900-02-29 the spreadsheet applications keep for compatibility.
var (
	excelEpoch     = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)
	excelLeapBugAt = time.Date(1900, 3, 1, 0, 0, 0, 0, time.UTC)
)

// DateSerial returns the spreadsheet serial number of the wall clock of t.
func DateSerial(t time.Time) float64 {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	wall := time.Date(y, m, d, hh, mm, ss, t.Nanosecond(), time.UTC)
	days := float64(wall.Sub(excelEpoch).Truncate(time.Millisecond)) / float64(24*time.Hour)
	if wall.Before(excelLeapBugAt) {
		days--
	}
	return days
}

// DurationSerial returns d as fraction of days.
func DurationSerial(d time.Duration) float64 {
	return float64(d) / float64(24*time.Hour)
}
