// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package styles_test

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UNO-SOFT/spreadsheet/v2"
	"github.com/UNO-SOFT/spreadsheet/v2/internal/styles"
)

func TestRegisterDedup(t *testing.T) {
	r := styles.NewRegistry()
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 0, r.Register(spreadsheet.Style{}))

	bold := spreadsheet.Style{}.Bold()
	i := r.Register(bold)
	assert.Equal(t, 1, i)
	// structurally equal, created elsewhere
	assert.Equal(t, i, r.Register(spreadsheet.Style{Font: spreadsheet.Font{Bold: true}}))

	j := r.Register(spreadsheet.Style{Format: "0.00"})
	assert.Equal(t, 2, j)
	assert.Equal(t, i, r.Register(bold), "index must be stable")
	assert.Equal(t, 3, r.Len())
}

func TestRegisterNormalizesColors(t *testing.T) {
	r := styles.NewRegistry()
	red := func(c string) spreadsheet.Style {
		return spreadsheet.Style{Font: spreadsheet.Font{Color: c}, Fill: spreadsheet.Fill{Color: c}}
	}
	i := r.Register(red("#ff0000"))
	assert.Equal(t, i, r.Register(red("FF0000")))
	assert.Equal(t, i, r.Register(red("ffff0000")))
	assert.Equal(t, i, r.Register(red("#FFFF0000")))
	assert.Equal(t, 0, r.Register(spreadsheet.Style{Font: spreadsheet.Font{Name: styles.DefaultFontName, Size: styles.DefaultFontSize}}))
	assert.Equal(t, 0, r.Register(spreadsheet.Style{Border: spreadsheet.Border{Left: spreadsheet.BorderEdge{Color: "FF0000"}}}))
	assert.Equal(t, 2, r.Len())

	var buf strings.Builder
	_, err := r.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(buf.String(), `<xf numFmtId="0" fontId="1"`))
}

func TestDefault(t *testing.T) {
	r := styles.NewRegistry()
	assert.Equal(t, 0, r.Resolve(nil))

	def := spreadsheet.Style{Fill: spreadsheet.Fill{Color: "FFFF00"}}
	i := r.SetDefault(def)
	assert.Equal(t, i, r.Resolve(nil))
	st, j := r.Default()
	assert.Equal(t, def, st)
	assert.Equal(t, i, j)

	explicit := spreadsheet.Style{}.Bold()
	assert.NotEqual(t, i, r.Resolve(&explicit))
}

func TestWriteTo(t *testing.T) {
	r := styles.NewRegistry()
	r.Register(spreadsheet.Style{Format: "yyyy-mm-dd", Font: spreadsheet.Font{Bold: true, Color: "#ff0000"}})
	r.Register(spreadsheet.Style{Format: "0.00"})
	r.Register(spreadsheet.Style{Format: "yyyy-mm-dd"})
	r.Register(spreadsheet.Style{
		Fill:       spreadsheet.Fill{Color: "00FF00"},
		Border:     spreadsheet.Border{Bottom: spreadsheet.BorderEdge{Style: spreadsheet.BorderThin}},
		Alignment:  spreadsheet.Alignment{Horizontal: "center", WrapText: true},
		Protection: spreadsheet.Protection{Unlocked: true},
	})

	var buf strings.Builder
	_, err := r.WriteTo(&buf)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(buf.String()))
	root := doc.SelectElement("styleSheet")
	require.NotNil(t, root)

	numFmts := root.FindElements("./numFmts/numFmt")
	require.Len(t, numFmts, 1, "0.00 is built in")
	assert.Equal(t, "164", numFmts[0].SelectAttrValue("numFmtId", ""))
	assert.Equal(t, "yyyy-mm-dd", numFmts[0].SelectAttrValue("formatCode", ""))

	fonts := root.FindElements("./fonts/font")
	require.Len(t, fonts, 2)
	assert.Equal(t, "Calibri", fonts[0].FindElement("./name").SelectAttrValue("val", ""))
	assert.NotNil(t, fonts[1].FindElement("./b"))
	assert.Equal(t, "FFFF0000", fonts[1].FindElement("./color").SelectAttrValue("rgb", ""))

	fills := root.FindElements("./fills/fill")
	require.Len(t, fills, 3)
	assert.Equal(t, "gray125", fills[1].FindElement("./patternFill").SelectAttrValue("patternType", ""))
	assert.Equal(t, "FF00FF00", fills[2].FindElement("./patternFill/fgColor").SelectAttrValue("rgb", ""))

	borders := root.FindElements("./borders/border")
	require.Len(t, borders, 2)
	assert.Equal(t, "thin", borders[1].FindElement("./bottom").SelectAttrValue("style", ""))

	xfs := root.FindElements("./cellXfs/xf")
	require.Len(t, xfs, 5)
	assert.Equal(t, "5", root.FindElement("./cellXfs").SelectAttrValue("count", ""))
	assert.Equal(t, "164", xfs[1].SelectAttrValue("numFmtId", ""))
	assert.Equal(t, "1", xfs[1].SelectAttrValue("fontId", ""))
	assert.Equal(t, "2", xfs[2].SelectAttrValue("numFmtId", ""))
	assert.Equal(t, "164", xfs[3].SelectAttrValue("numFmtId", ""))
	assert.Equal(t, "0", xfs[3].SelectAttrValue("fontId", ""))
	assert.Equal(t, "center", xfs[4].FindElement("./alignment").SelectAttrValue("horizontal", ""))
	assert.Equal(t, "1", xfs[4].FindElement("./alignment").SelectAttrValue("wrapText", ""))
	assert.Equal(t, "0", xfs[4].FindElement("./protection").SelectAttrValue("locked", ""))
	assert.Equal(t, "2", xfs[4].SelectAttrValue("fillId", ""))
	assert.Equal(t, "1", xfs[4].SelectAttrValue("borderId", ""))
}
