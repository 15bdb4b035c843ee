// Package editor provides the Bubble Tea textarea that hosts a code block in
// a terminal.
//
// The component owns a buffer.Buffer and maps key presses onto it: Tab and
// Shift+Tab indent and outdent by two spaces, the rest behaves like a plain
// multi-line text area (movement, selection, clipboard, undo). Hosts observe
// edits through Config.OnChange and read the final value with Model.Value.
package editor
