// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package passwordhash computes the legacy 16-bit hash used by the
// sheetProtection and workbookProtection elements.
//
// This is obfuscation, not security: anyone can remove such a protection.
package passwordhash

import "fmt"

// Make returns the hash of password as 4 uppercase hexadecimal digits.
func Make(password string) string {
	b := []byte(password)
	var v uint16
	for i := len(b) - 1; i >= 0; i-- {
		v = rotate(v) ^ uint16(b[i])
	}
	v = rotate(v) ^ uint16(len(b))
	v ^= 0xCE4B
	return fmt.Sprintf("%04X", v)
}

// rotate is a left rotation inside 15 bits.
func rotate(v uint16) uint16 {
	return ((v >> 14) & 1) | ((v << 1) & 0x7FFF)
}
