package editor

// Clipboard provides editor-level clipboard integration.
//
// Errors never reach the UI; a failed read or write is ignored.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
