package style_test

import (
	"testing"

	"github.com/inkmarrow/bloggc/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

const sampleHTML = `<br/><h3 className='text-3xl'>'Hi'</h3><br/><p>hello world</p>`

func TestAuditFindsNoUnknownClasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bloggc.style")
	defer teardown()
	unknown, err := style.Audit(sampleHTML)
	assert.NoError(t, err)
	assert.Empty(t, unknown)
}

func TestAuditFlagsUnknownClass(t *testing.T) {
	unknown, err := style.Audit(`<div className='text-3xl rogue-class'></div>`)
	assert.NoError(t, err)
	assert.Equal(t, []string{"rogue-class"}, unknown)
}

func TestQuerySelectsHeadingText(t *testing.T) {
	texts, err := style.Query(sampleHTML, "h3")
	assert.NoError(t, err)
	assert.Equal(t, []string{"'Hi'"}, texts)
}

func TestQueryInvalidSelector(t *testing.T) {
	_, err := style.Query(sampleHTML, ":::not-a-selector")
	assert.Error(t, err)
	var target *style.SelectorError
	assert.ErrorAs(t, err, &target)
}

func TestEvalXPathSelectsParagraphText(t *testing.T) {
	texts, err := style.Eval(sampleHTML, "//p")
	assert.NoError(t, err)
	assert.Equal(t, []string{"hello world"}, texts)
}

func TestEvalInvalidExpression(t *testing.T) {
	_, err := style.Eval(sampleHTML, "///[[[")
	assert.Error(t, err)
	var target *style.XPathError
	assert.ErrorAs(t, err, &target)
}
