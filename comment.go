// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package spreadsheet

// Comment is a note attached to a cell.
//
// The geometry fields are CSS lengths / colors as understood by VML
// (e.g. "96pt", "200px", "#FFFFE1"); empty fields get the defaults of
// NewComment.
type Comment struct {
	TextRuns   []TextRun
	Height     string
	Width      string
	MarginTop  string
	MarginLeft string
	FillColor  string
	Visible    bool
}

// TextRun is a piece of comment text sharing the same font.
type TextRun struct {
	Text      string
	FontName  string
	FontColor string // RRGGBB
	FontSize  float64
	Bold      bool
	Italic    bool
}

// NewComment returns a comment with the default geometry and the given text.
func NewComment(text ...string) *Comment {
	c := &Comment{
		Height:     "55.5pt",
		Width:      "96pt",
		MarginTop:  "1.5pt",
		MarginLeft: "59.25pt",
		FillColor:  "#FFFFE1",
	}
	for _, t := range text {
		c.AddText(t)
	}
	return c
}

// AddText appends a run with the default font.
func (c *Comment) AddText(text string) *Comment {
	c.TextRuns = append(c.TextRuns, TextRun{Text: text})
	return c
}

// AddTextRun appends the run.
func (c *Comment) AddTextRun(run TextRun) *Comment {
	c.TextRuns = append(c.TextRuns, run)
	return c
}
