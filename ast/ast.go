// Package ast defines the compiler's typed tree: a Program owning a
// section-name-to-declaration map plus an ordered article sequence,
// down to the individual statement kinds a paragraph can hold.
// Statement is a tagged variant, not an interface hierarchy -- the
// generator's tree walker dispatches on Kind.
package ast

// Program is the parser's output: every section keyed by name (the
// second declaration of a duplicate name overwrites the first) plus
// the articles in source declaration order.
type Program struct {
	Sections map[string]*SectionDeclaration
	Articles []*ArticleDeclaration
}

// NewProgram returns an empty Program ready to receive declarations.
func NewProgram() *Program {
	return &Program{Sections: make(map[string]*SectionDeclaration)}
}

// ArticleDeclaration composes sections by name, in the order they were
// referenced inside the article's braces. Name may be empty.
type ArticleDeclaration struct {
	Name        string
	SectionRefs []string
}

// SectionDeclaration is a named, ordered sequence of paragraphs.
type SectionDeclaration struct {
	Name       string
	Paragraphs []*Paragraph
}

// Paragraph is an ordered sequence of statements.
type Paragraph struct {
	Statements []Statement
}

// StatementKind tags a Statement's variant.
type StatementKind int

const (
	StatementHeading StatementKind = iota
	StatementTextBlock
	StatementCodeBlock
	StatementAside
	StatementList
)

// Statement is one paragraph-level node. Only the fields relevant to
// Kind are populated: Level and Text for Heading, Text alone for
// TextBlock/CodeBlock/Aside, Items for List.
type Statement struct {
	Kind  StatementKind
	Level int
	Text  string
	Items []string
}

// DefaultHeadingLevel is the level assigned to every Heading statement.
// The grammar has a single 'heading' keyword with no numeric suffix, so
// the level here is a fixed constant, not parsed data.
const DefaultHeadingLevel = 3
