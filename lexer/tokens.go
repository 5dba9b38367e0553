package lexer

import (
	"github.com/inkmarrow/bloggc/core/position"
	"github.com/inkmarrow/bloggc/core/regex"
)

// Kind enumerates the DSL's closed token set: eight keywords, two
// structural braces, identifiers, raw text blocks, and an internal
// whitespace kind the lexer consumes but never emits.
type Kind int

const (
	KindSection Kind = iota
	KindArticle
	KindParagraph
	KindHeading
	KindCode
	KindAside
	KindList
	KindItem
	KindLBrace
	KindRBrace
	KindIdent
	KindRawText
	kindWhitespace // lexer-internal only, never reaches the token stream
)

func (k Kind) String() string {
	switch k {
	case KindSection:
		return "section"
	case KindArticle:
		return "article"
	case KindParagraph:
		return "paragraph"
	case KindHeading:
		return "heading"
	case KindCode:
		return "code"
	case KindAside:
		return "aside"
	case KindList:
		return "list"
	case KindItem:
		return "item"
	case KindLBrace:
		return "{"
	case KindRBrace:
		return "}"
	case KindIdent:
		return "identifier"
	case KindRawText:
		return "raw text"
	case kindWhitespace:
		return "whitespace"
	}
	return "unknown"
}

// Spec pairs a Kind with a compiled Matcher. Order in the table is
// tie-break priority: the first spec to produce the longest match wins,
// which is how keyword matchers shadow the identifier matcher for
// lexemes like "section".
type Spec struct {
	Kind    Kind
	Matcher *regex.Matcher
}

func mustMatcher(pattern string) *regex.Matcher {
	m, err := regex.New(pattern)
	if err != nil {
		panic("lexer: bad built-in token pattern " + pattern + ": " + err.Error())
	}
	return m
}

// identifierPattern is a configurable constant: letters and digits,
// zero or more.
const identifierPattern = "[a-zA-Z0-9]*"

// Specs is the token spec table compiled once at package init. Keywords
// precede Ident so the longest-match tie-break always resolves a
// keyword lexeme to its keyword kind rather than to Ident.
var Specs = []Spec{
	{KindLBrace, mustMatcher("{")},
	{KindRBrace, mustMatcher("}")},
	{KindSection, mustMatcher("section")},
	{KindArticle, mustMatcher("article")},
	{KindParagraph, mustMatcher("paragraph")},
	{KindHeading, mustMatcher("heading")},
	{KindCode, mustMatcher("code")},
	{KindAside, mustMatcher("aside")},
	{KindList, mustMatcher("list")},
	{KindItem, mustMatcher("item")},
	{kindWhitespace, mustMatcher("[ \t\n\r]+")},
	{KindIdent, mustMatcher(identifierPattern)},
}

// Token is an immutable (kind, lexeme, position) triple.
type Token struct {
	Kind   Kind
	Lexeme string
	Pos    position.Position
}
