// Package highlight adapts chroma lexers and styles to editor.Highlighter.
package highlight

import (
	"sync"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/codeblock/editor"
)

const maxCachedLines = 2000

// Chroma highlights single lines with a chroma lexer. Lines are tokenised on
// their own, so constructs spanning lines (block comments, raw strings) are
// only styled on the line where they start.
type Chroma struct {
	lexer chroma.Lexer
	style *chroma.Style

	mu    sync.RWMutex
	cache map[string][]editor.HighlightSpan
}

var _ editor.Highlighter = (*Chroma)(nil)

// New returns a highlighter for the named language and chroma style. Unknown
// languages fall back to plain text and unknown styles to chroma's default.
func New(lang, style string) *Chroma {
	return &Chroma{
		lexer: chroma.Coalesce(resolveLexer(lang)),
		style: styles.Get(style),
		cache: make(map[string][]editor.HighlightSpan),
	}
}

// resolveLexer returns the lexer for lang, or the plaintext lexer when lang
// is unknown. lexers.Fallback is used only if plaintext is not registered.
func resolveLexer(lang string) chroma.Lexer {
	if l := lexers.Get(lang); l != nil {
		return l
	}
	if l := lexers.Get("plaintext"); l != nil {
		return l
	}
	return lexers.Fallback
}

// Language reports the resolved lexer name.
func (c *Chroma) Language() string { return c.lexer.Config().Name }

func (c *Chroma) HighlightLine(ctx editor.LineContext) ([]editor.HighlightSpan, error) {
	if ctx.Text == "" {
		return nil, nil
	}

	c.mu.RLock()
	spans, ok := c.cache[ctx.Text]
	c.mu.RUnlock()
	if ok {
		return spans, nil
	}

	it, err := c.lexer.Tokenise(nil, ctx.Text)
	if err != nil {
		return nil, err
	}

	col := 0
	for _, tok := range it.Tokens() {
		n := utf8.RuneCountInString(tok.Value)
		if st, ok := c.styleFor(tok.Type); ok {
			spans = append(spans, editor.HighlightSpan{StartCol: col, EndCol: col + n, Style: st})
		}
		col += n
	}

	c.mu.Lock()
	if len(c.cache) > maxCachedLines {
		c.cache = make(map[string][]editor.HighlightSpan)
	}
	c.cache[ctx.Text] = spans
	c.mu.Unlock()
	return spans, nil
}

func (c *Chroma) styleFor(t chroma.TokenType) (lipgloss.Style, bool) {
	e := c.style.Get(t)
	st := lipgloss.NewStyle()
	set := false
	if e.Colour.IsSet() {
		st = st.Foreground(lipgloss.Color(e.Colour.String()))
		set = true
	}
	if e.Bold == chroma.Yes {
		st = st.Bold(true)
		set = true
	}
	if e.Italic == chroma.Yes {
		st = st.Italic(true)
		set = true
	}
	if e.Underline == chroma.Yes {
		st = st.Underline(true)
		set = true
	}
	return st, set
}
