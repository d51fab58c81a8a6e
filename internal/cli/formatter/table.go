package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Align controls how a table column pads its cells.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// RenderTable renders a left-aligned table with a header separator line.
func RenderTable(headers []string, rows [][]string) string {
	return RenderAlignedTable(headers, rows, nil)
}

// RenderAlignedTable renders an aligned table with a header separator line.
// Headers are rendered with the Header style. Columns are padded to the
// maximum visible width found in each column; aligns gives per-column
// alignment and defaults to left when shorter than the header row. Hour
// columns read better right-aligned.
func RenderAlignedTable(headers []string, rows [][]string, aligns []Align) string {
	if len(headers) == 0 {
		return ""
	}

	cols := len(headers)

	// Measure visible width so ANSI escape sequences don't skew padding.
	widths := make([]int, cols)
	for i, h := range headers {
		if w := lipgloss.Width(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	alignOf := func(i int) Align {
		if i < len(aligns) {
			return aligns[i]
		}
		return AlignLeft
	}

	const colGap = 2

	var b strings.Builder

	writeCell := func(text string, col int, last bool) {
		pad := widths[col] - lipgloss.Width(text)
		if pad < 0 {
			pad = 0
		}
		if alignOf(col) == AlignRight {
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(text)
			if !last {
				b.WriteString(strings.Repeat(" ", colGap))
			}
			return
		}
		b.WriteString(text)
		if !last {
			b.WriteString(strings.Repeat(" ", pad+colGap))
		}
	}

	for i, h := range headers {
		writeCell(StyleHeader.Render(h), i, i == cols-1)
	}
	b.WriteString("\n")

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			writeCell(cell, i, i == cols-1)
		}
		b.WriteString("\n")
	}

	return b.String()
}
