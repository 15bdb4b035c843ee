package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codeblock/buffer"
)

// Model is a Bubble Tea component that renders and edits one code block.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model

	mouseAnchor   buffer.Pos
	mouseDragging bool

	lastBufVersion uint64
	lastCursor     buffer.Pos
	emittedVersion uint64
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.emittedVersion = m.buf.Version()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Value returns the current text.
func (m Model) Value() string { return m.buf.Text() }

// SetValue replaces the text, as the host does when block data is set after
// render. It fires OnChange like any other edit.
func (m Model) SetValue(s string) Model {
	m.buf.SetText(s)
	if m.syncFromBuffer() {
		m.followCursor()
	}
	m.emitChange()
	return m
}

func (m Model) ReadOnly() bool { return m.cfg.ReadOnly }

func (m Model) KeyMap() KeyMap { return m.cfg.KeyMap }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
		// Don't force-follow the cursor; the wheel scrolls freely.
		m.syncFromBuffer()
	case tea.KeyMsg:
		m = m.updateKey(msg)
		if m.syncFromBuffer() {
			m.followCursor()
		}
	default:
		// Hosts may mutate the buffer directly between messages.
		if m.syncFromBuffer() {
			m.followCursor()
		}
	}
	m.emitChange()
	return m, cmd
}

func (m Model) View() string { return m.viewport.View() }

func (m *Model) emitChange() {
	if m.cfg.OnChange == nil {
		return
	}
	if m.buf.Version() == m.emittedVersion {
		return
	}
	m.emittedVersion = m.buf.Version()
	m.cfg.OnChange(buildChangeEvent(m.buf))
}

// syncFromBuffer rebuilds the rendered content when the buffer moved on and
// reports whether the cursor changed.
func (m *Model) syncFromBuffer() (cursorChanged bool) {
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return false
	}
	cursorChanged = cur != m.lastCursor
	m.lastBufVersion = ver
	m.lastCursor = cur
	m.rebuildContent()
	return cursorChanged
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	cur := m.buf.Cursor()
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	switch {
	case cur.Row < y:
		m.viewport.SetYOffset(cur.Row)
	case cur.Row >= y+h:
		m.viewport.SetYOffset(cur.Row - h + 1)
	default:
		return
	}
	// Highlighting depends on the visible rows.
	if m.cfg.Highlighter != nil {
		m.rebuildContent()
	}
}
