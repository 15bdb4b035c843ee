package block

import (
	"unicode/utf8"

	"github.com/iw2rmb/codeblock/indent"
)

// Textarea is the rendered input of a block. Selection offsets are in runes.
type Textarea struct {
	Classes []string

	Value          string
	SelectionStart int
	SelectionEnd   int

	Placeholder string
	Disabled    bool
}

// KeyEvent is a key press delivered to a Textarea.
type KeyEvent struct {
	// Code names the physical key, e.g. "Tab" or "KeyA".
	Code  string
	Shift bool
}

// SetValue replaces the text and puts the caret at its end.
func (ta *Textarea) SetValue(s string) {
	ta.Value = s
	n := utf8.RuneCountInString(s)
	ta.SelectionStart, ta.SelectionEnd = n, n
}

// SetSelectionRange sets both selection ends, clamped into the value.
func (ta *Textarea) SetSelectionRange(start, end int) {
	n := utf8.RuneCountInString(ta.Value)
	start = min(max(start, 0), n)
	end = min(max(end, start), n)
	ta.SelectionStart, ta.SelectionEnd = start, end
}

// KeyDown handles a key press and reports whether the event was consumed.
// A consumed event must not reach the host or the default key action.
func (ta *Textarea) KeyDown(ev KeyEvent) bool {
	if ta.Disabled {
		return false
	}
	switch ev.Code {
	case "Tab":
		ta.tab(ev.Shift)
		return true
	}
	return false
}

// tab consumes Tab even when outdent has nothing to remove, so focus never
// leaves the block.
func (ta *Textarea) tab(shift bool) {
	caret := min(max(ta.SelectionStart, 0), utf8.RuneCountInString(ta.Value))
	res := indent.Tab(ta.Value, caret, shift)
	if !res.Changed {
		return
	}
	ta.Value = res.Text
	ta.SetSelectionRange(res.Caret, res.Caret)
}
