package editor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/codeblock/buffer"
)

func TestRender_LineNumberAlignment_1To120(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 120; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("x")
	}

	m := New(Config{
		Text:         sb.String(),
		ShowLineNums: true,
	})
	m = m.Blur()
	m = m.SetSize(10, 120)

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 120 {
		t.Fatalf("expected 120 lines, got %d", len(lines))
	}

	digits := 3
	for i, line := range lines {
		wantPrefix := fmt.Sprintf("%*d ", digits, i+1)
		if !strings.HasPrefix(stripANSI(line), wantPrefix) {
			t.Fatalf("line %d prefix: got %q, want prefix %q", i+1, line, wantPrefix)
		}
	}
}

func TestRender_CursorProducesANSIWhenFocused(t *testing.T) {
	m := New(Config{
		Text:  "ab",
		Style: Style{Text: lipgloss.NewStyle(), Cursor: lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)},
	})

	got := m.renderContent()
	want := " a b"
	if got != want {
		t.Fatalf("unexpected cursor rendering:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_CursorAtEndOfLineAddsCell(t *testing.T) {
	m := New(Config{
		Text:  "ab",
		Style: Style{Cursor: lipgloss.NewStyle().PaddingLeft(1)},
	})
	m.buf.SetCursor(buffer.Pos{Row: 0, Col: 2})

	got := m.renderContent()
	if want := "ab  "; got != want {
		t.Fatalf("unexpected eol cursor rendering:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_TabExpandsToNextStop(t *testing.T) {
	m := New(Config{Text: "a\tb", TabWidth: 4})
	m = m.Blur()

	got := m.renderContent()
	if want := "a   b"; got != want {
		t.Fatalf("unexpected tab rendering:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_PlaceholderOnlyWhenEmpty(t *testing.T) {
	m := New(Config{Placeholder: "Enter a code"})
	m = m.Blur()
	if got, want := m.renderContent(), "Enter a code"; got != want {
		t.Fatalf("placeholder: got %q, want %q", got, want)
	}

	m = m.Focus()
	m, _ = m.Update(keyRunes("x"))
	if got, want := m.renderContent(), "x "; stripANSI(got) != want {
		t.Fatalf("content after typing: got %q, want %q", stripANSI(got), want)
	}
}

func TestRender_SelectionUsesSelectionStyle(t *testing.T) {
	sel := lipgloss.NewStyle().PaddingLeft(1)
	m := New(Config{
		Text:  "abc",
		Style: Style{Selection: sel},
	})
	m = m.Blur()
	m.buf.SetSelection(buffer.Range{Start: buffer.Pos{Row: 0, Col: 1}, End: buffer.Pos{Row: 0, Col: 2}})

	got := m.renderContent()
	if want := "a bc"; got != want {
		t.Fatalf("unexpected selection rendering:\n got: %q\nwant: %q", got, want)
	}
}
