// Package parser implements a single-pass, one-token-lookahead
// recursive-descent parser: one method per grammar nonterminal,
// expect/expectIdent/expectRawText as the shared helpers (each
// brace-delimited body loops until the next token is '}'), and no
// backtracking or error recovery -- the first error aborts.
package parser

import (
	"github.com/derekparker/trie"
	"github.com/inkmarrow/bloggc/ast"
	"github.com/inkmarrow/bloggc/lexer"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'bloggc.parser'.
func tracer() tracing.Trace {
	return tracing.Select("bloggc.parser")
}

// keywordTrie backs the "did you mean 'section'?" suggestion attached to
// UnexpectedTokenError when the offending token is an identifier that
// nearly matches a keyword.
var keywordTrie = buildKeywordTrie()

func buildKeywordTrie() *trie.Trie {
	t := trie.New()
	for _, kw := range []string{
		"section", "article", "paragraph", "heading", "code", "aside", "list", "item",
	} {
		t.Add(kw, nil)
	}
	return t
}

func suggestKeyword(lexeme string) string {
	if lexeme == "" {
		return ""
	}
	matches := keywordTrie.FuzzySearch(lexeme)
	if len(matches) == 0 {
		return ""
	}
	return matches[0]
}

// Parser consumes a lexer.Lexer's token stream and produces a Program.
type Parser struct {
	lex     *lexer.Lexer
	peeked  *lexer.Token
	peekErr error
	done    bool
}

// New constructs a Parser over a freshly built lexer. Callers own the
// lexer's token spec table; most call sites pass
// lexer.New(source, lexer.Specs).
func New(lex *lexer.Lexer) *Parser {
	return &Parser{lex: lex}
}

// Parse consumes the entire token stream and returns a Program, or the
// first error encountered -- there is no backtracking beyond one-token
// lookahead.
func (p *Parser) Parse() (*ast.Program, error) {
	prog := ast.NewProgram()
	for {
		tok, ok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		switch tok.Kind {
		case lexer.KindSection:
			sec, err := p.parseSection()
			if err != nil {
				return nil, err
			}
			tracer().Debugf("parser: section %q (%d paragraphs)", sec.Name, len(sec.Paragraphs))
			prog.Sections[sec.Name] = sec
		case lexer.KindArticle:
			art, err := p.parseArticle()
			if err != nil {
				return nil, err
			}
			tracer().Debugf("parser: article %q (%d section refs)", art.Name, len(art.SectionRefs))
			prog.Articles = append(prog.Articles, art)
		default:
			return nil, p.unexpected(lexer.KindSection, tok)
		}
	}
	return prog, nil
}

func (p *Parser) parseSection() (*ast.SectionDeclaration, error) {
	if err := p.expect(lexer.KindSection); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.KindLBrace); err != nil {
		return nil, err
	}
	var paragraphs []*ast.Paragraph
	for {
		tok, ok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &UnexpectedEofError{Expected: lexer.KindRBrace}
		}
		if tok.Kind == lexer.KindRBrace {
			break
		}
		para, err := p.parseParagraph()
		if err != nil {
			return nil, err
		}
		paragraphs = append(paragraphs, para)
	}
	if err := p.expect(lexer.KindRBrace); err != nil {
		return nil, err
	}
	return &ast.SectionDeclaration{Name: name, Paragraphs: paragraphs}, nil
}

func (p *Parser) parseArticle() (*ast.ArticleDeclaration, error) {
	if err := p.expect(lexer.KindArticle); err != nil {
		return nil, err
	}
	name := ""
	tok, ok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if ok && tok.Kind == lexer.KindIdent {
		name, err = p.expectIdent()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect(lexer.KindLBrace); err != nil {
		return nil, err
	}
	var refs []string
	for {
		tok, ok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &UnexpectedEofError{Expected: lexer.KindRBrace}
		}
		if tok.Kind == lexer.KindRBrace {
			break
		}
		ref, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	if err := p.expect(lexer.KindRBrace); err != nil {
		return nil, err
	}
	return &ast.ArticleDeclaration{Name: name, SectionRefs: refs}, nil
}

func (p *Parser) parseParagraph() (*ast.Paragraph, error) {
	if err := p.expect(lexer.KindParagraph); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.KindLBrace); err != nil {
		return nil, err
	}
	var statements []ast.Statement
	for {
		tok, ok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &UnexpectedEofError{Expected: lexer.KindRBrace}
		}
		if tok.Kind == lexer.KindRBrace {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	if err := p.expect(lexer.KindRBrace); err != nil {
		return nil, err
	}
	return &ast.Paragraph{Statements: statements}, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	tok, ok, err := p.peek()
	if err != nil {
		return ast.Statement{}, err
	}
	if !ok {
		return ast.Statement{}, &UnexpectedEofError{Expected: lexer.KindRawText}
	}
	switch tok.Kind {
	case lexer.KindHeading:
		p.next()
		text, err := p.expectRawText()
		if err != nil {
			return ast.Statement{}, err
		}
		return ast.Statement{Kind: ast.StatementHeading, Level: ast.DefaultHeadingLevel, Text: text}, nil
	case lexer.KindRawText:
		text, _ := p.expectRawText()
		return ast.Statement{Kind: ast.StatementTextBlock, Text: text}, nil
	case lexer.KindCode:
		p.next()
		text, err := p.expectRawText()
		if err != nil {
			return ast.Statement{}, err
		}
		return ast.Statement{Kind: ast.StatementCodeBlock, Text: text}, nil
	case lexer.KindAside:
		p.next()
		text, err := p.expectRawText()
		if err != nil {
			return ast.Statement{}, err
		}
		return ast.Statement{Kind: ast.StatementAside, Text: text}, nil
	case lexer.KindList:
		items, err := p.parseList()
		if err != nil {
			return ast.Statement{}, err
		}
		return ast.Statement{Kind: ast.StatementList, Items: items}, nil
	default:
		return ast.Statement{}, p.unexpected(lexer.KindRawText, tok)
	}
}

func (p *Parser) parseList() ([]string, error) {
	if err := p.expect(lexer.KindList); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.KindLBrace); err != nil {
		return nil, err
	}
	var items []string
	for {
		tok, ok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &UnexpectedEofError{Expected: lexer.KindRBrace}
		}
		if tok.Kind == lexer.KindRBrace {
			break
		}
		if err := p.expect(lexer.KindItem); err != nil {
			return nil, err
		}
		text, err := p.expectRawText()
		if err != nil {
			return nil, err
		}
		items = append(items, text)
	}
	if err := p.expect(lexer.KindRBrace); err != nil {
		return nil, err
	}
	return items, nil
}

// --- token-stream plumbing ---

func (p *Parser) peek() (lexer.Token, bool, error) {
	if p.peeked != nil {
		return *p.peeked, true, nil
	}
	if p.done {
		return lexer.Token{}, false, p.peekErr
	}
	tok, ok, err := p.lex.Next()
	if err != nil {
		p.done = true
		p.peekErr = nil
		return lexer.Token{}, false, err
	}
	if !ok {
		p.done = true
		return lexer.Token{}, false, nil
	}
	p.peeked = &tok
	return tok, true, nil
}

func (p *Parser) next() (lexer.Token, bool, error) {
	tok, ok, err := p.peek()
	if ok {
		p.peeked = nil
	}
	return tok, ok, err
}

func (p *Parser) expect(k lexer.Kind) error {
	tok, ok, err := p.next()
	if err != nil {
		return err
	}
	if !ok {
		return &UnexpectedEofError{Expected: k}
	}
	if tok.Kind != k {
		return p.unexpected(k, tok)
	}
	return nil
}

func (p *Parser) expectIdent() (string, error) {
	tok, ok, err := p.next()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &UnexpectedEofError{Expected: lexer.KindIdent}
	}
	if tok.Kind != lexer.KindIdent {
		return "", p.unexpected(lexer.KindIdent, tok)
	}
	return tok.Lexeme, nil
}

func (p *Parser) expectRawText() (string, error) {
	tok, ok, err := p.next()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &UnexpectedEofError{Expected: lexer.KindRawText}
	}
	if tok.Kind != lexer.KindRawText {
		return "", p.unexpected(lexer.KindRawText, tok)
	}
	return tok.Lexeme, nil
}

func (p *Parser) unexpected(expected lexer.Kind, found lexer.Token) error {
	suggestion := ""
	if found.Kind == lexer.KindIdent {
		suggestion = suggestKeyword(found.Lexeme)
	}
	return &UnexpectedTokenError{
		Expected:   expected,
		Found:      found.Kind,
		Lexeme:     found.Lexeme,
		Pos:        found.Pos,
		Suggestion: suggestion,
	}
}
