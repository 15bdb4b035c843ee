package buffer

// RuneLen returns the document length in runes; each line break counts as one.
func (b *Buffer) RuneLen() int {
	total := 0
	for _, line := range b.lines {
		total += len(line)
	}
	return total + len(b.lines) - 1
}

// RuneOffsetFromPos converts p to a flat rune offset. Positions outside the
// document report false.
func (b *Buffer) RuneOffsetFromPos(p Pos) (int, bool) {
	if b.clampPos(p) != p {
		return 0, false
	}
	off := 0
	for row := 0; row < p.Row; row++ {
		off += len(b.lines[row]) + 1
	}
	return off + p.Col, true
}

// PosFromRuneOffset converts a flat rune offset to a Pos. Offsets outside
// [0, RuneLen] report false.
func (b *Buffer) PosFromRuneOffset(off int) (Pos, bool) {
	if off < 0 {
		return Pos{}, false
	}
	for row, line := range b.lines {
		if off <= len(line) {
			return Pos{Row: row, Col: off}, true
		}
		off -= len(line) + 1
	}
	return Pos{}, false
}

// CursorOffset is the cursor as a flat rune offset.
func (b *Buffer) CursorOffset() int {
	off, _ := b.RuneOffsetFromPos(b.cursor)
	return off
}

// SetCursorOffset moves the cursor to a flat rune offset, clamped into the
// document.
func (b *Buffer) SetCursorOffset(off int) {
	off = clampInt(off, 0, b.RuneLen())
	p, _ := b.PosFromRuneOffset(off)
	b.SetCursor(p)
}
