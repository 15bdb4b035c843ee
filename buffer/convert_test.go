package buffer

import "testing"

func TestBuffer_RuneOffsets_RoundTrip(t *testing.T) {
	b := New("πb\n\nテxy", Options{})
	if got, want := b.RuneLen(), 7; got != want {
		t.Fatalf("rune len=%d, want %d", got, want)
	}

	cases := []struct {
		off int
		pos Pos
	}{
		{off: 0, pos: Pos{Row: 0, Col: 0}},
		{off: 2, pos: Pos{Row: 0, Col: 2}},
		{off: 3, pos: Pos{Row: 1, Col: 0}},
		{off: 4, pos: Pos{Row: 2, Col: 0}},
		{off: 7, pos: Pos{Row: 2, Col: 3}},
	}
	for _, tc := range cases {
		p, ok := b.PosFromRuneOffset(tc.off)
		if !ok || p != tc.pos {
			t.Fatalf("PosFromRuneOffset(%d)=(%v,%v), want (%v,true)", tc.off, p, ok, tc.pos)
		}
		off, ok := b.RuneOffsetFromPos(tc.pos)
		if !ok || off != tc.off {
			t.Fatalf("RuneOffsetFromPos(%v)=(%d,%v), want (%d,true)", tc.pos, off, ok, tc.off)
		}
	}
}

func TestBuffer_RuneOffsets_OutOfRange(t *testing.T) {
	b := New("ab", Options{})
	if _, ok := b.PosFromRuneOffset(3); ok {
		t.Fatalf("expected offset past end to fail")
	}
	if _, ok := b.PosFromRuneOffset(-1); ok {
		t.Fatalf("expected negative offset to fail")
	}
	if _, ok := b.RuneOffsetFromPos(Pos{Row: 0, Col: 3}); ok {
		t.Fatalf("expected pos past end to fail")
	}
}

func TestBuffer_SetCursorOffset_Clamps(t *testing.T) {
	b := New("ab\ncd", Options{})

	b.SetCursorOffset(4)
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if got := b.CursorOffset(); got != 4 {
		t.Fatalf("cursor offset=%d, want 4", got)
	}

	b.SetCursorOffset(99)
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}
