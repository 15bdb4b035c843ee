package editor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/codeblock/buffer"
	graphemeutil "github.com/iw2rmb/codeblock/internal/grapheme"
)

func (m *Model) renderContent() string {
	n := m.buf.LineCount()
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()

	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(n)
	}

	firstVisible, lastVisible := m.visibleRows(n)

	out := make([]string, 0, n)
	for row := 0; row < n; row++ {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cursor.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		line := m.buf.Line(row)
		if n == 1 && line == "" && m.cfg.Placeholder != "" {
			sb.WriteString(m.renderPlaceholder())
			out = append(out, sb.String())
			continue
		}

		var spans []HighlightSpan
		if row >= firstVisible && row < lastVisible {
			spans = m.highlightForLine(row, line, cursor)
		}
		sb.WriteString(m.renderLine(row, line, cursor, sel, selOK, spans))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderLine(row int, line string, cursor buffer.Pos, sel buffer.Range, selOK bool, spans []HighlightSpan) string {
	st := m.cfg.Style
	cursorHere := m.focused && cursor.Row == row

	var sb strings.Builder
	col, cell, spanIdx := 0, 0, 0
	for _, cluster := range graphemeutil.Split(line) {
		runes := utf8.RuneCountInString(cluster)

		text := cluster
		if cluster == "\t" {
			adv := tabAdvance(cell, m.cfg.TabWidth)
			text = strings.Repeat(" ", adv)
			cell += adv
		} else {
			cell += graphemeutil.Width(cluster)
		}

		style := st.Text
		if sp, ok := spanAt(spans, &spanIdx, col); ok {
			style = sp.Style.Inherit(style)
		}
		if selOK && inSelection(sel, row, col) {
			style = st.Selection.Inherit(style)
		}
		if cursorHere && cursor.Col >= col && cursor.Col < col+runes {
			style = st.Cursor.Inherit(style)
		}
		sb.WriteString(style.Render(text))
		col += runes
	}

	if cursorHere && cursor.Col >= col {
		sb.WriteString(st.Cursor.Inherit(st.Text).Render(" "))
	}
	return sb.String()
}

func (m *Model) renderPlaceholder() string {
	st := m.cfg.Style
	if !m.focused {
		return st.Placeholder.Render(m.cfg.Placeholder)
	}
	clusters := graphemeutil.Split(m.cfg.Placeholder)
	return st.Cursor.Inherit(st.Placeholder).Render(clusters[0]) +
		st.Placeholder.Render(strings.Join(clusters[1:], ""))
}

func (m *Model) highlightForLine(row int, line string, cursor buffer.Pos) []HighlightSpan {
	if m.cfg.Highlighter == nil {
		return nil
	}

	ctx := LineContext{Row: row, Text: line, CursorCol: -1}
	if cursor.Row == row {
		ctx.HasCursor = true
		ctx.CursorCol = cursor.Col
	}
	spans, err := m.cfg.Highlighter.HighlightLine(ctx)
	if err != nil {
		return nil
	}
	return normalizeHighlightSpans(spans, utf8.RuneCountInString(line))
}

// visibleRows returns the half-open row range inside the viewport.
func (m *Model) visibleRows(n int) (int, int) {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return 0, 0
	}
	start := clampInt(m.viewport.YOffset, 0, n)
	return start, min(start+h, n)
}

func inSelection(sel buffer.Range, row, col int) bool {
	p := buffer.Pos{Row: row, Col: col}
	return buffer.ComparePos(p, sel.Start) >= 0 && buffer.ComparePos(p, sel.End) < 0
}

func tabAdvance(cell, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = defaultTabWidth
	}
	return tabWidth - cell%tabWidth
}

func gutterDigits(lines int) int {
	return max(len(fmt.Sprint(lines)), 1)
}
