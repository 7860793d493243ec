// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/UNO-SOFT/spreadsheet/v2"
)

func TestRangeString(t *testing.T) {
	for _, tc := range []struct {
		Range     Range
		Rel, Abs  string
		WantValid bool
	}{
		{NewRange(0, 1, 3, 1), "A1:D1", "$A$1:$D$1", true},
		{NewRange(2, 3, 10, 3), "C3:K3", "$C$3:$K$3", true},
		{NewRange(26, 1, 27, 10), "AA1:AB10", "$AA$1:$AB$10", true},
		{NewRange(0, 0, 1, 1), "", "", false},
		{NewRange(0, 1, MaxColumnCount, 1), "", "", false},
	} {
		err := tc.Range.Validate()
		if !tc.WantValid {
			assert.ErrorIs(t, err, spreadsheet.ErrInvalidArgument, "%+v", tc.Range)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tc.Rel, tc.Range.String())
		assert.Equal(t, tc.Abs, tc.Range.Absolute())
	}
}

func TestQuoteSheetName(t *testing.T) {
	for in, want := range map[string]string{
		"Sheet1":      "Sheet1",
		"Data_2024.x": "Data_2024.x",
		"Sheet First": "'Sheet First'",
		"1st":         "'1st'",
		"A1":          "'A1'",
		"XFD100":      "'XFD100'",
		"it's":        "'it''s'",
		"árvíztűrő":   "árvíztűrő",
	} {
		assert.Equal(t, want, quoteSheetName(in), in)
	}
}

func TestMergeColumnWidths(t *testing.T) {
	assert.Nil(t, mergeColumnWidths(nil))
	assert.Equal(t,
		[]columnWidth{{1, 2, 10}, {3, 3, 15}, {4, 5, 10}, {8, 8, 12}},
		mergeColumnWidths([]columnWidth{
			{From: 1, To: 5, Width: 10},
			{From: 3, To: 3, Width: 15},
			{From: 8, To: 8, Width: 12},
		}))
}

func TestColName(t *testing.T) {
	wb := &workbook{}
	assert.Equal(t, "A", wb.colName(1))
	assert.Equal(t, "Z", wb.colName(26))
	assert.Equal(t, "AA", wb.colName(27))
	assert.Equal(t, "XFD", wb.colName(MaxColumnCount))
	assert.Equal(t, "B", wb.colName(2))
}

func TestImplicitFormat(t *testing.T) {
	assert.Equal(t, DateFormat, implicitFormat(spreadsheet.DateCell(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))))
	assert.Equal(t, DateTimeFormat, implicitFormat(spreadsheet.DateCell(time.Date(2024, 1, 2, 0, 0, 1, 0, time.UTC))))
	assert.Equal(t, DurationFormat, implicitFormat(spreadsheet.DurationCell(time.Minute)))
	assert.Equal(t, "", implicitFormat(spreadsheet.NumberCell(1)))
}

func TestOptionsMaxRows(t *testing.T) {
	o := NewOptions()
	assert.Equal(t, MaxRowCount, o.maxRows())
	o.MaxRowsPerSheet = 10
	assert.Equal(t, 10, o.maxRows())
	o.MaxRowsPerSheet = MaxRowCount + 1
	assert.Equal(t, MaxRowCount, o.maxRows())
	o.MaxRowsPerSheet = -1
	assert.Equal(t, MaxRowCount, o.maxRows())
}

func TestPropertiesDefaults(t *testing.T) {
	p := Properties{}.withDefaults()
	assert.Equal(t, DefaultTitle, p.Title)
	assert.Equal(t, DefaultCreator, p.Creator)
	assert.Equal(t, DefaultCreator, p.LastModifiedBy)
	assert.False(t, p.Created.IsZero())

	p = Properties{Creator: "me", LastModifiedBy: "you"}.withDefaults()
	assert.Equal(t, "you", p.LastModifiedBy)
}

func TestPartTemplates(t *testing.T) {
	assert.Equal(t,
		`<Relationship Id="rId3" Type="`+relTypeStyles+`" Target="styles.xml"/>`,
		relationship("rId3", relTypeStyles, "styles.xml"))
	assert.Equal(t, "", textElement("dc:title", ""))
	assert.Equal(t, `<dc:title>a &amp; b_x005F_x0041_</dc:title>`, textElement("dc:title", "a & b_x0041_"))

	assert.Equal(t, xmlHeader+`<Relationships xmlns="`+nsPackageRels+`">`+
		`<Relationship Id="rId1" Type="`+relTypeOfficeDocument+`" Target="xl/workbook.xml"/>`+
		`<Relationship Id="rId2" Type="`+relTypeCoreProps+`" Target="docProps/core.xml"/>`+
		`<Relationship Id="rId3" Type="`+relTypeExtendedProps+`" Target="docProps/app.xml"/>`+
		`</Relationships>`, rootRels(false))
	assert.Contains(t, rootRels(true), `Target="docProps/custom.xml"/></Relationships>`)

	custom := customProps(map[string]string{"b": "2", "a": "<1>"})
	assert.Contains(t, custom, `pid="2" name="a"><vt:lpwstr>&lt;1&gt;</vt:lpwstr></property>`)
	assert.Contains(t, custom, `pid="3" name="b"><vt:lpwstr>2</vt:lpwstr></property>`)

	core := coreProps(Properties{Title: "T", Created: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)})
	assert.Contains(t, core, `<dcterms:created xsi:type="dcterms:W3CDTF">2026-01-02T03:04:05Z</dcterms:created>`)
	assert.Contains(t, core, `core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms=`)
	assert.Contains(t, core, `<dc:title>T</dc:title><cp:revision>0</cp:revision>`)
	assert.NotContains(t, strings.TrimPrefix(core, xmlHeader), "\n")
}
