package main

import (
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/codeblock/block"
	"github.com/iw2rmb/codeblock/editor"
	"github.com/iw2rmb/codeblock/highlight"
)

type keyMap struct {
	editor.KeyMap
	Save key.Binding
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return append([]key.Binding{k.Save, k.Quit}, k.KeyMap.ShortHelp()...)
}

func (k keyMap) FullHelp() [][]key.Binding {
	return append([][]key.Binding{{k.Save, k.Quit}}, k.KeyMap.FullHelp()...)
}

type savedMsg struct {
	path  string
	bytes int
	// textVersion is the buffer's TextVersion when the save was issued.
	textVersion uint64
	err         error
}

type model struct {
	tool   *block.Tool
	editor editor.Model
	help   help.Model
	keys   keyMap

	out    string
	status string
	dirty  bool

	// savedText is the TextVersion last loaded or saved; seenText is the
	// last TextVersion reported by OnChange.
	savedText uint64
	seenText  uint64
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))

func newModel(tool *block.Tool, opts options) *model {
	m := &model{
		tool: tool,
		help: help.New(),
		out:  opts.Out,
	}

	cfg := editor.Config{
		ShowLineNums: opts.LineNums,
		Style:        editor.DefaultStyle(),
		OnChange:     m.handleChange,
	}
	if opts.Lang != "" {
		cfg.Highlighter = highlight.New(opts.Lang, opts.Style)
	}
	m.editor = tool.Editor(cfg)
	m.keys = keyMap{
		KeyMap: m.editor.KeyMap(),
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	}
	if tool.ReadOnly() {
		m.keys.Save.SetEnabled(false)
	}
	return m
}

// handleChange runs inside editor.Update, so it only records state.
func (m *model) handleChange(ev editor.ChangeEvent) {
	if ev.TextVersion != m.seenText {
		m.seenText = ev.TextVersion
		m.status = ""
	}
	m.dirty = ev.TextVersion != m.savedText
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.editor = m.editor.SetSize(msg.Width, max(msg.Height-2, 0))
		return m, nil
	case savedMsg:
		if msg.err != nil {
			log.Printf("save failed: %v", msg.err)
			m.status = "save failed: " + msg.err.Error()
			return m, nil
		}
		log.Printf("saved %d bytes to %s", msg.bytes, msg.path)
		m.savedText = msg.textVersion
		m.dirty = m.editor.Buffer().TextVersion() != m.savedText
		m.status = "saved " + msg.path
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Save):
			return m, m.save()
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *model) save() tea.Cmd {
	data := m.tool.Save(m.tool.Render())
	if !block.Validate(data) {
		m.status = "nothing to save: block is empty"
		return nil
	}
	if m.out == "" {
		m.status = "no output file, pass -out"
		return nil
	}
	m.tool.SetData(data)

	path := m.out
	ver := m.editor.Buffer().TextVersion()
	return func() tea.Msg {
		raw, err := data.Encode()
		if err != nil {
			return savedMsg{path: path, textVersion: ver, err: fmt.Errorf("encode: %w", err)}
		}
		if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
			return savedMsg{path: path, textVersion: ver, err: err}
		}
		return savedMsg{path: path, bytes: len(raw) + 1, textVersion: ver}
	}
}

func (m *model) View() string {
	status := m.status
	switch {
	case m.tool.ReadOnly():
		status = "read-only"
	case status == "" && m.dirty:
		status = "modified"
	}
	return m.editor.View() + "\n" + statusStyle.Render(status) + "\n" + m.help.View(m.keys)
}
