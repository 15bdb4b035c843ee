package editor

import (
	"unicode/utf8"

	"github.com/iw2rmb/codeblock/buffer"
	graphemeutil "github.com/iw2rmb/codeblock/internal/grapheme"
)

// screenToDocPos maps viewport-local cell coordinates to a document position.
// (0,0) is the top-left cell of the visible content. Clicks in the gutter
// map to the start of the line; clicks past the end of a line map to its end.
func (m *Model) screenToDocPos(x, y int) buffer.Pos {
	n := m.buf.LineCount()
	row := clampInt(m.viewport.YOffset+y, 0, n-1)

	cell := max(x-m.gutterWidth(n), 0)
	return buffer.Pos{Row: row, Col: m.colForCell(m.buf.Line(row), cell)}
}

// colForCell returns the rune column of the grapheme cluster drawn at cell.
// Wide clusters and tabs cover several cells; any of them maps to the
// cluster's start.
func (m *Model) colForCell(line string, cell int) int {
	col, at := 0, 0
	for _, cluster := range graphemeutil.Split(line) {
		w := graphemeutil.Width(cluster)
		if cluster == "\t" {
			w = tabAdvance(at, m.cfg.TabWidth)
		}
		if cell < at+w {
			return col
		}
		at += w
		col += utf8.RuneCountInString(cluster)
	}
	return col
}

func (m *Model) gutterWidth(lines int) int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(lines) + 1
}
