package editor

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/codeblock/buffer"
)

func TestHighlighting_CalledOnlyForVisibleLines(t *testing.T) {
	var rows []int
	h := &stubHighlighter{
		fn: func(ctx LineContext) ([]HighlightSpan, error) {
			rows = append(rows, ctx.Row)
			return nil, nil
		},
	}

	m := New(Config{
		Text:        "a\nb\nc",
		Highlighter: h,
	})
	rows = nil

	m = m.SetSize(10, 1)
	rows = nil
	_ = m.renderContent()

	if len(rows) != 1 || rows[0] != 0 {
		t.Fatalf("highlighter rows: got %v, want %v", rows, []int{0})
	}
}

func TestHighlighting_ErrorFallsBackToPlainText(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)

	st := Style{Text: r.NewStyle()}

	m := New(Config{
		Text:  "abcd",
		Style: st,
		Highlighter: &stubHighlighter{
			fn: func(ctx LineContext) ([]HighlightSpan, error) {
				return []HighlightSpan{{StartCol: 1, EndCol: 3, Style: r.NewStyle().Underline(true)}}, errors.New("boom")
			},
		},
	})
	m = m.SetSize(10, 1)
	m = m.Blur()

	got := m.renderContent()
	want := st.Text.Render("a") + st.Text.Render("b") + st.Text.Render("c") + st.Text.Render("d")
	if got != want {
		t.Fatalf("unexpected render with highlighter error:\n got: %q\nwant: %q", got, want)
	}
}

func TestHighlighting_RebuildsAfterAutoFollowScroll(t *testing.T) {
	var rows []int
	h := &stubHighlighter{
		fn: func(ctx LineContext) ([]HighlightSpan, error) {
			rows = append(rows, ctx.Row)
			return nil, nil
		},
	}

	m := New(Config{
		Text:        "a\nb\nc",
		Highlighter: h,
	})
	m = m.SetSize(10, 1)
	rows = nil

	m.buf.SetCursor(buffer.Pos{Row: 2, Col: 0})
	m, _ = m.Update(struct{}{})

	if len(rows) != 2 || rows[0] != 0 || rows[1] != 2 {
		t.Fatalf("highlighter rows after auto-follow scroll: got %v, want %v", rows, []int{0, 2})
	}
}

func TestHighlighting_AppliesSpansToVisibleDocText(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)

	textStyle := r.NewStyle()
	hlStyle := r.NewStyle().Underline(true)
	st := Style{Text: textStyle}

	m := New(Config{
		Text:  "abcd",
		Style: st,
		Highlighter: &stubHighlighter{
			fn: func(ctx LineContext) ([]HighlightSpan, error) {
				return []HighlightSpan{{StartCol: 1, EndCol: 3, Style: hlStyle}}, nil
			},
		},
	})
	m = m.SetSize(10, 1)
	m = m.Blur()

	got := m.renderContent()
	want := textStyle.Render("a") + hlStyle.Inherit(textStyle).Render("b") + hlStyle.Inherit(textStyle).Render("c") + textStyle.Render("d")
	if got != want {
		t.Fatalf("unexpected highlighted render:\n got: %q\nwant: %q", got, want)
	}
}

type stubHighlighter struct {
	fn func(LineContext) ([]HighlightSpan, error)
}

func (s *stubHighlighter) HighlightLine(ctx LineContext) ([]HighlightSpan, error) {
	if s.fn == nil {
		return nil, nil
	}
	return s.fn(ctx)
}

func TestHighlighting_ReceivesCursorContext(t *testing.T) {
	var got []LineContext
	m := New(Config{
		Text: "ab\ncd",
		Highlighter: &stubHighlighter{
			fn: func(ctx LineContext) ([]HighlightSpan, error) {
				got = append(got, ctx)
				return nil, nil
			},
		},
	})
	m = m.SetSize(10, 2)
	m.buf.SetCursor(buffer.Pos{Row: 1, Col: 1})
	got = nil
	_ = m.renderContent()

	want := []LineContext{
		{Row: 0, Text: "ab", CursorCol: -1},
		{Row: 1, Text: "cd", CursorCol: 1, HasCursor: true},
	}
	if len(got) != len(want) {
		t.Fatalf("contexts: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("context %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestNormalizeHighlightSpans(t *testing.T) {
	st := lipgloss.NewStyle()
	spans := []HighlightSpan{
		{StartCol: 4, EndCol: 9, Style: st},
		{StartCol: 0, EndCol: 2, Style: st},
		{StartCol: 1, EndCol: 3, Style: st},
		{StartCol: 2, EndCol: 2, Style: st},
		{StartCol: -3, EndCol: -1, Style: st},
	}

	got := normalizeHighlightSpans(spans, 6)
	want := [][2]int{{0, 2}, {4, 6}}
	if len(got) != len(want) {
		t.Fatalf("spans: got %d, want %d (%v)", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].StartCol != w[0] || got[i].EndCol != w[1] {
			t.Fatalf("span %d: got [%d,%d), want [%d,%d)", i, got[i].StartCol, got[i].EndCol, w[0], w[1])
		}
	}
}
