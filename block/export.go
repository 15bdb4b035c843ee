package block

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/iw2rmb/codeblock/indent"
)

// ExportStyle is the chroma style used by RenderHTML.
var ExportStyle = "github"

// RenderHTML writes d as a highlighted <pre> fragment. Unknown languages are
// written as escaped plain text.
func RenderHTML(w io.Writer, d Data, lang string) error {
	l := lexers.Get(lang)
	if l == nil {
		l = lexers.Get("plaintext")
	}
	if l == nil {
		l = lexers.Fallback
	}
	l = chroma.Coalesce(l)

	it, err := l.Tokenise(nil, d.Code)
	if err != nil {
		return fmt.Errorf("tokenise %s: %w", l.Config().Name, err)
	}

	f := chromahtml.New(chromahtml.TabWidth(len(indent.Unit)))
	if err := f.Format(w, styles.Get(ExportStyle), it); err != nil {
		return fmt.Errorf("format html: %w", err)
	}
	return nil
}
