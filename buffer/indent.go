package buffer

import (
	"unicode/utf8"

	"github.com/iw2rmb/codeblock/indent"
)

// Indent inserts indent.Unit at the cursor (or at the start of the active
// selection) and collapses the selection after it.
func (b *Buffer) Indent() bool { return b.tab(false) }

// Outdent removes indent.Unit from the start of the cursor's line. It is a
// no-op, with no version bump, when the line does not start with indent.Unit.
func (b *Buffer) Outdent() bool { return b.tab(true) }

func (b *Buffer) tab(shift bool) bool {
	at := b.cursor
	if r, ok := b.Selection(); ok {
		at = r.Start
	}
	caret, _ := b.RuneOffsetFromPos(at)
	text := b.Text()

	res := indent.Tab(text, caret, shift)
	if !res.Changed {
		return false
	}

	unitLen := utf8.RuneCountInString(indent.Unit)
	edit := TextEdit{Range: Range{Start: at, End: at}, Text: indent.Unit}
	if shift {
		start, _ := b.PosFromRuneOffset(indent.LineStart(text, caret))
		end := Pos{Row: start.Row, Col: start.Col + unitLen}
		edit = TextEdit{Range: Range{Start: start, End: end}}
	}

	prev := b.snapshot()
	change := b.beginChange()
	_, applied, changed := b.replaceRange(edit.Range, edit.Text)
	if !changed {
		return false
	}

	next, _ := b.PosFromRuneOffset(res.Caret)
	b.cursor = b.clampPos(next)
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	b.recordUndo(prev)
	change.addAppliedEdit(applied)
	b.commitChange(change)
	return true
}
