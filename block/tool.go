package block

import (
	"github.com/iw2rmb/codeblock/editor"
)

const (
	DefaultPlaceholder = "Enter a code"

	WrapperClass  = "ce-code"
	TextareaClass = "ce-code__textarea"
)

// Styles carries the host's shared CSS class names.
type Styles struct {
	Block string
	Input string
}

// API is the subset of the host editor the tool talks to.
type API interface {
	// Translate returns the localized form of a UI string.
	Translate(s string) string
	Styles() Styles
}

// NopAPI is an API without localization that returns the host's stock
// class names.
type NopAPI struct{}

func (NopAPI) Translate(s string) string { return s }

func (NopAPI) Styles() Styles { return Styles{Block: "cdx-block", Input: "cdx-input"} }

type Config struct {
	// Placeholder overrides DefaultPlaceholder. It is passed through
	// API.Translate either way.
	Placeholder string
}

type Params struct {
	Data     Data
	Config   Config
	API      API
	ReadOnly bool
}

// Holder is the rendered block: a wrapper with one textarea.
type Holder struct {
	Classes  []string
	Textarea *Textarea
}

// Tool is one code block instance.
type Tool struct {
	api         API
	readOnly    bool
	placeholder string

	data   Data
	holder *Holder
}

func New(p Params) *Tool {
	if p.API == nil {
		p.API = NopAPI{}
	}
	placeholder := p.Config.Placeholder
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}

	t := &Tool{
		api:         p.API,
		readOnly:    p.ReadOnly,
		placeholder: p.API.Translate(placeholder),
	}
	t.holder = t.drawView()
	t.SetData(Data{Code: p.Data.Code})
	return t
}

func (t *Tool) drawView() *Holder {
	st := t.api.Styles()
	ta := &Textarea{
		Classes:     []string{TextareaClass, st.Input},
		Placeholder: t.placeholder,
		Disabled:    t.readOnly,
	}
	return &Holder{
		Classes:  []string{st.Block, WrapperClass},
		Textarea: ta,
	}
}

// Render returns the block's holder. The same holder is returned on every
// call.
func (t *Tool) Render() *Holder { return t.holder }

// Save reads the block data back from a rendered holder.
func (t *Tool) Save(h *Holder) Data {
	if h == nil || h.Textarea == nil {
		return Data{}
	}
	return Data{Code: h.Textarea.Value}
}

func (t *Tool) Data() Data { return t.data }

// SetData replaces the block data and the rendered textarea value.
func (t *Tool) SetData(d Data) {
	t.data = d
	if t.holder != nil && t.holder.Textarea != nil {
		t.holder.Textarea.SetValue(d.Code)
	}
}

func (t *Tool) Placeholder() string { return t.placeholder }

func (t *Tool) ReadOnly() bool { return t.readOnly }

// Editor returns a terminal textarea for the block. Edits made through it
// are mirrored into the rendered holder so Save sees them.
func (t *Tool) Editor(cfg editor.Config) editor.Model {
	cfg.Text = t.data.Code
	if t.holder != nil && t.holder.Textarea != nil {
		cfg.Text = t.holder.Textarea.Value
	}
	cfg.Placeholder = t.placeholder
	cfg.ReadOnly = cfg.ReadOnly || t.readOnly

	next := cfg.OnChange
	cfg.OnChange = func(ev editor.ChangeEvent) {
		if t.holder != nil && t.holder.Textarea != nil {
			ta := t.holder.Textarea
			ta.Value = ev.Text
			ta.SetSelectionRange(ev.CursorOffset, ev.CursorOffset)
		}
		if next != nil {
			next(ev)
		}
	}
	return editor.New(cfg)
}

// SaveEditor reads block data from a terminal textarea.
func SaveEditor(m editor.Model) Data {
	return Data{Code: m.Value()}
}
