package wikitext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gowikitext/pkg/site"
)

func TestRenderHeadings(t *testing.T) {
	for level := 1; level <= 6; level++ {
		tag := "h" + string(rune('0'+level))
		marker := strings.Repeat("=", level)

		out := renderHTML(t, Options{}, "<"+tag+">Section</"+tag+">")
		assert.Equal(t, marker+" Section "+marker+"\n", out, tag)
	}
}

func TestRenderParagraphsAndEmphasis(t *testing.T) {
	out := renderHTML(t, Options{},
		`<p>Hello <b>world</b></p><p>Plain <i>slanted</i></p>`)

	assert.Equal(t, "Hello '''world'''\n\nPlain ''slanted''\n", out)
}

func TestRenderEscapedText(t *testing.T) {
	out := renderHTML(t, Options{}, `<p>some ''quoted'' text</p>`)

	assert.Equal(t, "<nowiki>some ''quoted'' text</nowiki>\n", out)
}

func TestRenderNestedLists(t *testing.T) {
	out := renderHTML(t, Options{},
		`<ul><li>one</li><li>two<ul><li>deep</li></ul></li></ul>`)

	assert.Equal(t, "* one\n* two\n** deep\n", out)
}

func TestRenderDefinitionList(t *testing.T) {
	out := renderHTML(t, Options{},
		`<dl><dt>Term</dt><dd>Meaning</dd></dl>`)

	assert.Equal(t, "; Term\n: Meaning\n", out)
}

func TestRenderHorizontalRule(t *testing.T) {
	out := renderHTML(t, Options{}, `<p>a</p><hr><p>b</p>`)

	assert.Equal(t, "a\n\n----\n\nb\n", out)
}

func TestRenderLineBreak(t *testing.T) {
	out := renderHTML(t, Options{}, `<p>a<br>b</p>`)

	assert.Equal(t, "a<br />b\n", out)
}

func TestRenderPreservedTags(t *testing.T) {
	out := renderHTML(t, Options{}, `<p><tt>mono</tt> and <sup>up</sup></p>`)

	assert.Equal(t, "<tt>mono</tt> and <sup>up</sup>\n", out)
}

func TestRenderPreserveAttributesFiltered(t *testing.T) {
	out := renderHTML(t, Options{PreserveBold: true},
		`<p><b class="x" onclick="evil()">bold</b></p>`)

	assert.Equal(t, `<b class="x">bold</b>`+"\n", out)
}

func TestRenderDeletedTags(t *testing.T) {
	out := renderHTML(t, Options{},
		`<p>keep</p><script>var a = 1;</script>`)

	assert.Equal(t, "keep\n", out)
}

func TestRenderPreBlock(t *testing.T) {
	out := renderHTML(t, Options{}, "<pre>line1\nline2</pre>")

	assert.Equal(t, " line1\n line2\n", out)
}

func TestRenderPreBlockLanguageDetection(t *testing.T) {
	out := renderHTML(t, Options{DetectCodeLanguage: true},
		"<pre>package main\n\nfunc main() {}</pre>")

	assert.Equal(t,
		"<syntaxhighlight lang=\"go\">\npackage main\n\nfunc main() {}\n</syntaxhighlight>\n",
		out)
}

func TestRenderUnknownTagPassesChildren(t *testing.T) {
	out := renderHTML(t, Options{}, `<p><span>inner</span></p>`)

	assert.Equal(t, "inner\n", out)
}

func TestRenderImage(t *testing.T) {
	out := renderHTML(t, Options{}, `<p><img src="http://x.com/a/b/pic.png"></p>`)
	assert.Equal(t, "[[Image:pic.png]]\n", out)

	out = renderHTML(t, Options{}, `<p><img></p>`)
	assert.Equal(t, "", out)
}

func TestRenderInternalLinkDocument(t *testing.T) {
	out := renderHTML(t, Options{},
		`<p>See <a href="/wiki/Foo_Bar">Foo Bar</a>.</p>`)

	assert.Equal(t, "See [[Foo Bar]].\n", out)
}

func TestConvert(t *testing.T) {
	table, err := NewTable(Options{})
	require.NoError(t, err)
	resolver, err := site.New("https://wiki.example.org/wiki/")
	require.NoError(t, err)

	result, err := Convert(strings.NewReader(`<h1>Title</h1><p><img></p>`), ConvertOptions{
		Table:    table,
		Resolver: resolver,
	})
	require.NoError(t, err)

	assert.Equal(t, "= Title =\n", result.Markup)
	assert.Equal(t, 1, result.Warnings)
}

func TestConvertWithSelector(t *testing.T) {
	table, err := NewTable(Options{})
	require.NoError(t, err)

	const doc = `<body><div id="nav"><p>skip</p></div><div id="content"><p>keep</p></div></body>`
	result, err := Convert(strings.NewReader(doc), ConvertOptions{
		Table:    table,
		Selector: "#content",
	})
	require.NoError(t, err)

	assert.Equal(t, "keep\n", result.Markup)
}
