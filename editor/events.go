package editor

import "github.com/iw2rmb/codeblock/buffer"

type ChangeEvent struct {
	Version     uint64
	TextVersion uint64
	Cursor      buffer.Pos
	// CursorOffset is Cursor as a flat rune offset into Text.
	CursorOffset int
	Selection    buffer.SelectionState

	// Full text; hosts diff if they need to.
	Text string
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	ev := ChangeEvent{
		Version:      b.Version(),
		TextVersion:  b.TextVersion(),
		Cursor:       b.Cursor(),
		CursorOffset: b.CursorOffset(),
		Text:         b.Text(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection = buffer.SelectionState{Active: true, Range: r}
	}
	return ev
}
