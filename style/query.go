package style

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/inkmarrow/bloggc/core"
	"golang.org/x/net/html"
)

// Query parses html as a document fragment and returns the text content
// of every node matching the CSS selector sel, in document order. This
// is the "query" CLI subcommand's engine (cmd/bloggc/main.go): running a
// generated article through a selector is a quick way to sanity-check
// what the generator actually produced without reading raw markup.
func Query(htmlSrc, sel string) ([]string, error) {
	root, err := parseFragment(htmlSrc)
	if err != nil {
		return nil, err
	}
	selector, err := cascadia.Compile(sel)
	if err != nil {
		return nil, &SelectorError{Selector: sel, Cause: err}
	}
	var texts []string
	for _, n := range cascadia.QueryAll(root, selector) {
		texts = append(texts, textContent(n))
	}
	return texts, nil
}

// parseFragment wraps htmlSrc in a minimal document so x/net/html's
// parser -- which expects a full document, not a bare fragment -- has a
// root to hang the generator's br/h3/p/pre/div/ul nodes from.
func parseFragment(htmlSrc string) (*html.Node, error) {
	doc, err := html.Parse(strings.NewReader("<html><body>" + htmlSrc + "</body></html>"))
	if err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "generated HTML did not re-parse")
	}
	return doc, nil
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}

// SelectorError reports a CSS selector cascadia could not compile.
type SelectorError struct {
	Selector string
	Cause    error
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("invalid selector %q: %v", e.Selector, e.Cause)
}

func (e *SelectorError) Unwrap() error { return e.Cause }

func (e *SelectorError) ErrorCode() int { return core.EINTERNAL }

func (e *SelectorError) UserMessage() string {
	return fmt.Sprintf("invalid CSS selector %q", e.Selector)
}
