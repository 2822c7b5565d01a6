// Package render prints colorings to a terminal, one foreground color per edge
// color. Output degrades to the plain canonical text when the writer is not a
// color terminal.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/ramsey-tabu/pkg/coloring"
	"github.com/dd0wney/ramsey-tabu/pkg/tabu"
)

var palette = []lipgloss.Color{
	"#888888", // color 0 stays muted; it is usually the majority
	"#FF00FF",
	"#00FFFF",
	"#FFFF00",
	"#00FF00",
	"#FF8800",
}

// Printer writes colorings and improvement announcements to one writer.
type Printer struct {
	w        io.Writer
	cells    []lipgloss.Style
	header   lipgloss.Style
	success  lipgloss.Style
	diagonal lipgloss.Style
	showID   bool
}

// NewPrinter detects the color profile of w. showID adds the search number to
// announcements, for runs with more than one search.
func NewPrinter(w io.Writer, showID bool) *Printer {
	r := lipgloss.NewRenderer(w)
	p := &Printer{
		w:        w,
		header:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF")),
		success:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF00")),
		diagonal: r.NewStyle().Faint(true),
		showID:   showID,
	}
	p.cells = make([]lipgloss.Style, len(palette))
	for i, c := range palette {
		p.cells[i] = r.NewStyle().Foreground(c)
	}
	return p
}

// Matrix renders m row by row with comma separated cells, the same layout as
// the canonical text form.
func (p *Printer) Matrix(m coloring.Matrix) string {
	var b strings.Builder
	for i, row := range m {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, c := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(p.cell(i, j, c))
		}
	}
	return b.String()
}

func (p *Printer) cell(i, j, c int) string {
	s := strconv.Itoa(c)
	if i == j {
		return p.diagonal.Render(s)
	}
	return p.cells[c%len(p.cells)].Render(s)
}

// Header renders the one-line summary above an announced coloring.
func (p *Printer) Header(imp tabu.Improvement) string {
	text := fmt.Sprintf("step %d, score %d", imp.Step, imp.Score)
	if p.showID {
		text = fmt.Sprintf("search %d, %s", imp.SearchID, text)
	}
	if imp.Score == 0 {
		return p.success.Render(text)
	}
	return p.header.Render(text)
}

// Announce writes an improvement. It is safe to pass as tabu.Options.OnImprove
// for a single search; parallel searches need a Locked printer.
func (p *Printer) Announce(imp tabu.Improvement) {
	fmt.Fprintf(p.w, "%s\n%s\n\n", p.Header(imp), p.Matrix(imp.Coloring))
}
