package lexer_test

import (
	"testing"

	"github.com/inkmarrow/bloggc/lexer"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestLongestMatchPrefersKeywordOverIdent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bloggc.lexer")
	defer teardown()
	toks, err := lexer.New("section", lexer.Specs).All()
	assert.NoError(t, err)
	assert.Len(t, toks, 1)
	assert.Equal(t, lexer.KindSection, toks[0].Kind)
}

func TestTieBreakPrefersEarlierSpec(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bloggc.lexer")
	defer teardown()
	// "code" is both a keyword and a valid identifier lexeme; the
	// keyword spec precedes Ident in the table, so it wins the tie.
	toks, err := lexer.New("code", lexer.Specs).All()
	assert.NoError(t, err)
	assert.Equal(t, lexer.KindCode, toks[0].Kind)
}

func TestIdentWhenNoKeywordMatches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bloggc.lexer")
	defer teardown()
	toks, err := lexer.New("myArticle42", lexer.Specs).All()
	assert.NoError(t, err)
	assert.Len(t, toks, 1)
	assert.Equal(t, lexer.KindIdent, toks[0].Kind)
	assert.Equal(t, "myArticle42", toks[0].Lexeme)
}

func TestBracesAndWhitespaceSkipped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bloggc.lexer")
	defer teardown()
	toks, err := lexer.New("section foo { }", lexer.Specs).All()
	assert.NoError(t, err)
	kinds := make([]lexer.Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []lexer.Kind{
		lexer.KindSection, lexer.KindIdent, lexer.KindLBrace, lexer.KindRBrace,
	}, kinds)
}

func TestRawTextBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bloggc.lexer")
	defer teardown()
	toks, err := lexer.New("`hello world`", lexer.Specs).All()
	assert.NoError(t, err)
	assert.Len(t, toks, 1)
	assert.Equal(t, lexer.KindRawText, toks[0].Kind)
	assert.Equal(t, "hello world", toks[0].Lexeme)
}

func TestUnterminatedRawText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bloggc.lexer")
	defer teardown()
	_, err := lexer.New("`oops", lexer.Specs).All()
	assert.Error(t, err)
	var target *lexer.UnterminatedRawTextError
	assert.ErrorAs(t, err, &target)
}

func TestUnrecognizedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bloggc.lexer")
	defer teardown()
	_, err := lexer.New("@", lexer.Specs).All()
	assert.Error(t, err)
	var target *lexer.UnrecognizedInputError
	assert.ErrorAs(t, err, &target)
}

func TestPositionAdvancesWithNewlines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bloggc.lexer")
	defer teardown()
	toks, err := lexer.New("section\nfoo", lexer.Specs).All()
	assert.NoError(t, err)
	assert.Equal(t, 1, toks[0].Pos.Line)
	assert.Equal(t, 2, toks[1].Pos.Line)
	assert.Equal(t, 1, toks[1].Pos.Column)
}
