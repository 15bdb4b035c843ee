// Package indent implements Tab / Shift+Tab handling for a flat text value.
//
// Offsets are rune indices into the text, in [0, runeLen(text)].
// Out-of-range offsets are clamped.
package indent

// Unit is the string inserted by Tab and removed by Shift+Tab.
const Unit = "  "

var unitRunes = []rune(Unit)

// Result is the outcome of one Tab key press.
type Result struct {
	Text  string
	Caret int
	// Changed is false when Shift+Tab found no indentation to remove.
	Changed bool
}

// LineStart returns the offset of the start of the line containing pos:
// 0, or the offset immediately after the nearest '\n' before pos.
func LineStart(text string, pos int) int {
	return lineStart([]rune(text), pos)
}

func lineStart(rs []rune, pos int) int {
	pos = clamp(pos, 0, len(rs))
	for pos > 0 {
		pos--
		if rs[pos] == '\n' {
			return pos + 1
		}
	}
	return 0
}

// Apply inserts Unit at caret, or with shift removes Unit from the start of
// the caret's line. It returns the new text and caret.
func Apply(text string, caret int, shift bool) (string, int) {
	r := Tab(text, caret, shift)
	return r.Text, r.Caret
}

// Indent is Apply without shift.
func Indent(text string, caret int) Result {
	rs := []rune(text)
	caret = clamp(caret, 0, len(rs))

	out := make([]rune, 0, len(rs)+len(unitRunes))
	out = append(out, rs[:caret]...)
	out = append(out, unitRunes...)
	out = append(out, rs[caret:]...)
	return Result{Text: string(out), Caret: caret + len(unitRunes), Changed: true}
}

// Outdent is Apply with shift. When the caret's line does not start with
// Unit, the text and caret are returned unchanged.
func Outdent(text string, caret int) Result {
	rs := []rune(text)
	caret = clamp(caret, 0, len(rs))

	start := lineStart(rs, caret)
	if !hasUnitAt(rs, start) {
		return Result{Text: text, Caret: caret}
	}

	out := make([]rune, 0, len(rs)-len(unitRunes))
	out = append(out, rs[:start]...)
	out = append(out, rs[start+len(unitRunes):]...)

	// A caret inside the removed indentation lands on the line start.
	next := caret - len(unitRunes)
	if next < start {
		next = start
	}
	return Result{Text: string(out), Caret: next, Changed: true}
}

// Tab dispatches to Indent or Outdent.
func Tab(text string, caret int, shift bool) Result {
	if shift {
		return Outdent(text, caret)
	}
	return Indent(text, caret)
}

func hasUnitAt(rs []rune, at int) bool {
	if at+len(unitRunes) > len(rs) {
		return false
	}
	for i, u := range unitRunes {
		if rs[at+i] != u {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
