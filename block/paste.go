package block

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var ErrNoPre = errors.New("block: no <pre> element in pasted html")

// PasteEvent is a paste the host matched against PasteRules.
type PasteEvent struct {
	// Node is the matched element.
	Node *html.Node
}

// PasteEventFromHTML parses an HTML fragment and returns an event for its
// first <pre> element.
func PasteEventFromHTML(s string) (PasteEvent, error) {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return PasteEvent{}, fmt.Errorf("parse pasted html: %w", err)
	}
	pre := findFirst(doc, atom.Pre)
	if pre == nil {
		return PasteEvent{}, ErrNoPre
	}
	return PasteEvent{Node: pre}, nil
}

// OnPaste replaces the block data with the text content of the pasted
// element, verbatim.
func (t *Tool) OnPaste(ev PasteEvent) {
	t.SetData(Data{Code: textContent(ev.Node)})
}

func findFirst(n *html.Node, a atom.Atom) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, a); found != nil {
			return found
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
