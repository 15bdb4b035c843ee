package indent

import (
	"testing"
	"unicode/utf8"
)

func TestLineStart(t *testing.T) {
	cases := []struct {
		text string
		pos  int
		want int
	}{
		{text: "", pos: 0, want: 0},
		{text: "abc", pos: 2, want: 0},
		{text: "ab\ncd", pos: 4, want: 3},
		{text: "ab\ncd", pos: 3, want: 3},
		{text: "ab\ncd", pos: 2, want: 0},
		{text: "1234\n2eda dadd\n", pos: 10, want: 5},
		{text: "a\n\nb", pos: 2, want: 2},
		{text: "a\n", pos: 2, want: 2},
		{text: "ab\ncd", pos: 99, want: 3},
		{text: "ab\ncd", pos: -4, want: 0},
		{text: "π\nテx", pos: 3, want: 2},
	}

	for _, tc := range cases {
		if got := LineStart(tc.text, tc.pos); got != tc.want {
			t.Fatalf("LineStart(%q, %d)=%d, want %d", tc.text, tc.pos, got, tc.want)
		}
	}
}

func TestApply(t *testing.T) {
	cases := []struct {
		name      string
		text      string
		caret     int
		shift     bool
		wantText  string
		wantCaret int
	}{
		{name: "indent at start", text: "hello", caret: 0, wantText: "  hello", wantCaret: 2},
		{name: "indent mid line", text: "ab", caret: 1, wantText: "a  b", wantCaret: 3},
		{name: "indent empty", text: "", caret: 0, wantText: "  ", wantCaret: 2},
		{name: "indent second line", text: "a\nb", caret: 2, wantText: "a\n  b", wantCaret: 4},
		{name: "outdent", text: "  x", caret: 3, shift: true, wantText: "x", wantCaret: 1},
		{name: "outdent without indent", text: "x", caret: 1, shift: true, wantText: "x", wantCaret: 1},
		{name: "outdent single space", text: " x", caret: 2, shift: true, wantText: " x", wantCaret: 2},
		{name: "outdent only current line", text: "  a\n  b", caret: 7, shift: true, wantText: "  a\nb", wantCaret: 5},
		{name: "outdent keeps deeper indent", text: "    x", caret: 5, shift: true, wantText: "  x", wantCaret: 3},
		{name: "outdent caret inside indent", text: "  x", caret: 1, shift: true, wantText: "x", wantCaret: 0},
		{name: "outdent caret inside indent second line", text: "a\n  b", caret: 3, shift: true, wantText: "a\nb", wantCaret: 2},
		{name: "outdent caret at second line start", text: "a\n  b", caret: 2, shift: true, wantText: "a\nb", wantCaret: 2},
		{name: "outdent caret after second line indent", text: "a\n  b", caret: 4, shift: true, wantText: "a\nb", wantCaret: 2},
		{name: "outdent tab is not indent", text: "\tx", caret: 2, shift: true, wantText: "\tx", wantCaret: 2},
		{name: "indent unicode", text: "πテ", caret: 1, wantText: "π  テ", wantCaret: 3},
	}

	for _, tc := range cases {
		gotText, gotCaret := Apply(tc.text, tc.caret, tc.shift)
		if gotText != tc.wantText || gotCaret != tc.wantCaret {
			t.Fatalf("%s: Apply(%q, %d, %v)=(%q, %d), want (%q, %d)",
				tc.name, tc.text, tc.caret, tc.shift, gotText, gotCaret, tc.wantText, tc.wantCaret)
		}
	}
}

func TestTab_ReportsNoOpOutdent(t *testing.T) {
	if r := Tab("x", 1, true); r.Changed {
		t.Fatalf("expected Changed=false for outdent without indentation, got %+v", r)
	}
	if r := Tab("  x", 3, true); !r.Changed {
		t.Fatalf("expected Changed=true for outdent, got %+v", r)
	}
	if r := Tab("x", 0, false); !r.Changed {
		t.Fatalf("expected Changed=true for indent, got %+v", r)
	}
}

func TestIndentThenOutdent_RestoresUnindentedLine(t *testing.T) {
	text := "func f() {\nreturn\n}"
	caret := 11 // start of "return"

	in := Indent(text, caret)
	if got, want := in.Text, "func f() {\n  return\n}"; got != want {
		t.Fatalf("indented text=%q, want %q", got, want)
	}

	out := Outdent(in.Text, in.Caret)
	if out.Text != text || out.Caret != caret {
		t.Fatalf("round trip=(%q, %d), want (%q, %d)", out.Text, out.Caret, text, caret)
	}
}

func FuzzLineStart(f *testing.F) {
	f.Add("", 0)
	f.Add("ab\ncd", 4)
	f.Add("\n\n\n", 2)
	f.Add("π\nテ\n👨‍👩‍👧", 5)

	f.Fuzz(func(t *testing.T, text string, pos int) {
		rs := []rune(text)
		got := LineStart(text, pos)
		if got < 0 || got > len(rs) {
			t.Fatalf("LineStart out of range: %d (len %d)", got, len(rs))
		}
		if p := clamp(pos, 0, len(rs)); got > p {
			t.Fatalf("LineStart=%d past position %d", got, p)
		}
		if got != 0 && rs[got-1] != '\n' {
			t.Fatalf("LineStart=%d does not follow a newline in %q", got, text)
		}
	})
}

func FuzzIndentOutdent_RoundTrip(f *testing.F) {
	f.Add("hello", 0)
	f.Add("a\nb\nc", 3)
	f.Add("  already", 9)

	f.Fuzz(func(t *testing.T, text string, pos int) {
		if !utf8.ValidString(text) {
			t.Skip()
		}
		caret := LineStart(text, pos)

		in := Indent(text, caret)
		if in.Caret != caret+len(Unit) {
			t.Fatalf("indent caret=%d, want %d", in.Caret, caret+len(Unit))
		}
		out := Outdent(in.Text, in.Caret)
		if out.Text != text || out.Caret != caret {
			t.Fatalf("round trip=(%q, %d), want (%q, %d)", out.Text, out.Caret, text, caret)
		}
	})
}
