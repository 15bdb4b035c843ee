// Package buffer implements the document model behind a code block.
//
// Coordinates are 0-based (Row, Col) in runes. Ranges are half-open:
// [Start, End). Flat rune offsets (the caret positions used by the indent
// package) convert to and from Pos with RuneOffsetFromPos and
// PosFromRuneOffset.
package buffer
