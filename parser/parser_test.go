package parser_test

import (
	"testing"

	"github.com/inkmarrow/bloggc/ast"
	"github.com/inkmarrow/bloggc/lexer"
	"github.com/inkmarrow/bloggc/parser"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func parse(t *testing.T, src string) (*ast.Program, error) {
	teardown := gotestingadapter.QuickConfig(t, "bloggc.parser")
	defer teardown()
	return parser.New(lexer.New(src, lexer.Specs)).Parse()
}

func TestParseEmptyArticleAndSection(t *testing.T) {
	prog, err := parse(t, "section s { } article a { s }")
	assert.NoError(t, err)
	assert.Len(t, prog.Sections, 1)
	assert.Len(t, prog.Articles, 1)
	assert.Equal(t, []string{"s"}, prog.Articles[0].SectionRefs)
}

func TestParseHeading(t *testing.T) {
	prog, err := parse(t, "section s { paragraph { heading `Hi` } } article a { s }")
	assert.NoError(t, err)
	stmt := prog.Sections["s"].Paragraphs[0].Statements[0]
	assert.Equal(t, ast.StatementHeading, stmt.Kind)
	assert.Equal(t, "Hi", stmt.Text)
	assert.Equal(t, ast.DefaultHeadingLevel, stmt.Level)
}

func TestParseTextBlock(t *testing.T) {
	prog, err := parse(t, "section s { paragraph { `hello world` } } article a { s }")
	assert.NoError(t, err)
	stmt := prog.Sections["s"].Paragraphs[0].Statements[0]
	assert.Equal(t, ast.StatementTextBlock, stmt.Kind)
	assert.Equal(t, "hello world", stmt.Text)
}

func TestParseAside(t *testing.T) {
	prog, err := parse(t, "section s { paragraph { aside `note` } } article a { s }")
	assert.NoError(t, err)
	stmt := prog.Sections["s"].Paragraphs[0].Statements[0]
	assert.Equal(t, ast.StatementAside, stmt.Kind)
	assert.Equal(t, "note", stmt.Text)
}

func TestParseCodeBlock(t *testing.T) {
	prog, err := parse(t, "section s { paragraph { code `let x = 1;` } } article a { s }")
	assert.NoError(t, err)
	stmt := prog.Sections["s"].Paragraphs[0].Statements[0]
	assert.Equal(t, ast.StatementCodeBlock, stmt.Kind)
	assert.Equal(t, "let x = 1;", stmt.Text)
}

func TestParseList(t *testing.T) {
	prog, err := parse(t, "section s { paragraph { list { item `one` item `two` } } } article a { s }")
	assert.NoError(t, err)
	stmt := prog.Sections["s"].Paragraphs[0].Statements[0]
	assert.Equal(t, ast.StatementList, stmt.Kind)
	assert.Equal(t, []string{"one", "two"}, stmt.Items)
}

func TestParseDuplicateSectionOverwrites(t *testing.T) {
	prog, err := parse(t, "section s { paragraph { `first` } } section s { paragraph { `second` } } article a { s }")
	assert.NoError(t, err)
	assert.Len(t, prog.Sections, 1)
	stmt := prog.Sections["s"].Paragraphs[0].Statements[0]
	assert.Equal(t, "second", stmt.Text)
}

func TestParseMultipleArticlesPreserveOrder(t *testing.T) {
	prog, err := parse(t, "section s1 { } section s2 { } article first { s1 } article second { s2 s1 }")
	assert.NoError(t, err)
	assert.Len(t, prog.Articles, 2)
	assert.Equal(t, "first", prog.Articles[0].Name)
	assert.Equal(t, "second", prog.Articles[1].Name)
	assert.Equal(t, []string{"s2", "s1"}, prog.Articles[1].SectionRefs)
}

func TestParseArticleWithEmptyName(t *testing.T) {
	prog, err := parse(t, "section s { } article { s }")
	assert.NoError(t, err)
	assert.Equal(t, "", prog.Articles[0].Name)
}

func TestParseUnexpectedTokenForMisspelledKeyword(t *testing.T) {
	_, err := parse(t, "sectoin s { }")
	assert.Error(t, err)
	var target *parser.UnexpectedTokenError
	assert.ErrorAs(t, err, &target)
}

func TestParseUnexpectedEof(t *testing.T) {
	_, err := parse(t, "section s {")
	assert.Error(t, err)
	var target *parser.UnexpectedEofError
	assert.ErrorAs(t, err, &target)
}
