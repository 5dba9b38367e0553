package generator_test

import (
	"strings"
	"testing"

	"github.com/inkmarrow/bloggc/generator"
	"github.com/inkmarrow/bloggc/lexer"
	"github.com/inkmarrow/bloggc/parser"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func compile(t *testing.T, src string) (string, error) {
	teardown := gotestingadapter.QuickConfig(t, "bloggc.generator")
	defer teardown()
	prog, err := parser.New(lexer.New(src, lexer.Specs)).Parse()
	if err != nil {
		return "", err
	}
	var buf strings.Builder
	err = generator.Generate(&buf, prog)
	return buf.String(), err
}

func TestScenarioEmptyArticleEmptySection(t *testing.T) {
	out, err := compile(t, "section s { } article a { s }")
	assert.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestScenarioSingleHeading(t *testing.T) {
	out, err := compile(t, "section s { paragraph { heading `Hi` } } article a { s }")
	assert.NoError(t, err)
	assert.Equal(t, "<br/><h3 className='text-3xl'>'Hi'</h3>", out)
}

func TestScenarioTextBlock(t *testing.T) {
	out, err := compile(t, "section s { paragraph { `hello world` } } article a { s }")
	assert.NoError(t, err)
	assert.Equal(t, "<br/><p>hello world</p>", out)
}

func TestScenarioAside(t *testing.T) {
	out, err := compile(t, "section s { paragraph { aside `note` } } article a { s }")
	assert.NoError(t, err)
	assert.Equal(t, "<br/><div className='p-8 bg-opacity-10 bg-black italic'><p>note</p></div>", out)
}

func TestScenarioUnknownSection(t *testing.T) {
	_, err := compile(t, "article a { missing }")
	assert.Error(t, err)
	var target *generator.UnknownSectionError
	assert.ErrorAs(t, err, &target)
	assert.Equal(t, "missing", target.Name)
}

func TestScenarioUnterminatedRawText(t *testing.T) {
	_, err := compile(t, "section s { paragraph { `oops } }")
	assert.Error(t, err)
}

func TestCodeBlockFragment(t *testing.T) {
	out, err := compile(t, "section s { paragraph { code `let x = 1;` } } article a { s }")
	assert.NoError(t, err)
	assert.Equal(t, "<br/><pre className='w-full overflow-x-auto'><code>{{'let x = 1;'}}</code></pre>", out)
}

func TestListFragment(t *testing.T) {
	out, err := compile(t, "section s { paragraph { list { item `one` item `two` } } } article a { s }")
	assert.NoError(t, err)
	assert.Equal(t, "<br/><ul><li>one</li><li>two</li></ul>", out)
}

func TestIdempotence(t *testing.T) {
	src := "section s { paragraph { heading `Hi` `body` } } article a { s }"
	first, err := compile(t, src)
	assert.NoError(t, err)
	second, err := compile(t, src)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
