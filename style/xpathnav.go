package style

import (
	"fmt"
	"strings"

	"github.com/antchfx/xpath"
	"github.com/inkmarrow/bloggc/core"
	"golang.org/x/net/html"
)

// htmlNavigator adapts an x/net/html node tree to antchfx/xpath's
// NodeNavigator, the same role antchfx/htmlquery plays for goquery-style
// trees. Kept local instead of depending on htmlquery directly so the
// "query" CLI subcommand's HTML source is the same re-parsed tree
// query.go's cascadia path already builds.
type htmlNavigator struct {
	root, curr *html.Node
	attr       int
}

func newHTMLNavigator(top *html.Node) *htmlNavigator {
	return &htmlNavigator{root: top, curr: top, attr: -1}
}

func (n *htmlNavigator) NodeType() xpath.NodeType {
	switch n.curr.Type {
	case html.CommentNode:
		return xpath.CommentNode
	case html.TextNode:
		return xpath.TextNode
	case html.DocumentNode:
		return xpath.RootNode
	case html.ElementNode:
		return xpath.ElementNode
	case html.DoctypeNode:
		return xpath.RootNode
	default:
		return xpath.TextNode
	}
}

func (n *htmlNavigator) LocalName() string {
	if n.attr != -1 {
		return n.curr.Attr[n.attr].Key
	}
	return n.curr.Data
}

func (n *htmlNavigator) Prefix() string { return "" }

func (n *htmlNavigator) Value() string {
	switch n.curr.Type {
	case html.CommentNode, html.TextNode:
		return n.curr.Data
	case html.ElementNode:
		return textContent(n.curr)
	}
	if n.attr != -1 {
		return n.curr.Attr[n.attr].Val
	}
	return ""
}

func (n *htmlNavigator) Copy() xpath.NodeNavigator {
	c := *n
	return &c
}

func (n *htmlNavigator) MoveToRoot() { n.curr = n.root }

func (n *htmlNavigator) MoveToParent() bool {
	if p := n.curr.Parent; p != nil {
		n.curr = p
		return true
	}
	return false
}

func (n *htmlNavigator) MoveToNextAttribute() bool {
	if n.attr >= len(n.curr.Attr)-1 {
		return false
	}
	n.attr++
	return true
}

func (n *htmlNavigator) MoveToChild() bool {
	if c := n.curr.FirstChild; c != nil {
		n.curr = c
		return true
	}
	return false
}

func (n *htmlNavigator) MoveToFirst() bool {
	if n.curr.PrevSibling == nil {
		return false
	}
	for n.curr.PrevSibling != nil {
		n.curr = n.curr.PrevSibling
	}
	return true
}

func (n *htmlNavigator) MoveToNext() bool {
	if s := n.curr.NextSibling; s != nil {
		n.curr = s
		return true
	}
	return false
}

func (n *htmlNavigator) MoveToPrevious() bool {
	if s := n.curr.PrevSibling; s != nil {
		n.curr = s
		return true
	}
	return false
}

func (n *htmlNavigator) MoveTo(other xpath.NodeNavigator) bool {
	o, ok := other.(*htmlNavigator)
	if !ok || o.root != n.root {
		return false
	}
	n.curr, n.attr = o.curr, o.attr
	return true
}

func (n *htmlNavigator) String() string { return n.Value() }

// Eval compiles and runs an XPath expression over htmlSrc, returning the
// matched nodes' Value() text in iteration order.
func Eval(htmlSrc, expr string) ([]string, error) {
	root, err := parseFragment(htmlSrc)
	if err != nil {
		return nil, err
	}
	compiled, err := xpath.Compile(expr)
	if err != nil {
		return nil, &XPathError{Expr: expr, Cause: err}
	}
	iter := compiled.Select(newHTMLNavigator(root))
	var out []string
	for iter.MoveNext() {
		out = append(out, strings.TrimSpace(iter.Current().Value()))
	}
	return out, nil
}

// XPathError reports an XPath expression antchfx/xpath could not compile.
type XPathError struct {
	Expr  string
	Cause error
}

func (e *XPathError) Error() string {
	return fmt.Sprintf("invalid xpath %q: %v", e.Expr, e.Cause)
}

func (e *XPathError) Unwrap() error { return e.Cause }

func (e *XPathError) ErrorCode() int { return core.EINTERNAL }

func (e *XPathError) UserMessage() string {
	return fmt.Sprintf("invalid XPath expression %q", e.Expr)
}
