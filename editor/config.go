package editor

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Placeholder is shown while the buffer is empty.
	Placeholder string

	// ReadOnly blocks every mutation; movement, selection and copy still work.
	ReadOnly bool

	// Rendering options.
	ShowLineNums bool
	TabWidth     int // display width of '\t'; default 4
	Style        Style

	// KeyMap defaults to DefaultKeyMap when left zero.
	KeyMap    KeyMap
	Clipboard Clipboard

	// OnChange is called after each update that changed text, cursor or
	// selection.
	OnChange func(ChangeEvent)

	Highlighter Highlighter

	// Forwarded to buffer.Options.
	HistoryLimit int
}

const defaultTabWidth = 4

func normalizeConfig(cfg Config) Config {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = defaultTabWidth
	}
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	return cfg
}
