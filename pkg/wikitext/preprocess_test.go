package wikitext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gowikitext/pkg/htmldom"
)

func TestPreprocessRemovesBoilerplate(t *testing.T) {
	const doc = `<body>` +
		`<div id="catlinks"><p>cats</p></div>` +
		`<span class="editsection">edit</span>` +
		`<div class="printfooter">footer</div>` +
		`<span class="urlexpansion">(http://x.com)</span>` +
		`<p>keep</p></body>`

	root, err := htmldom.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	Preprocess(root)

	assert.Empty(t, htmldom.FindAll(root, isBoilerplate))
	paras := htmldom.FindAll(root, func(n *htmldom.Node) bool { return n.Tag == "p" })
	require.Len(t, paras, 1)
	assert.Equal(t, "keep", paras[0].FirstChild.Text)
}

func TestPreprocessUnwrapsNamedAnchors(t *testing.T) {
	root, err := htmldom.Parse(strings.NewReader(
		`<p><a name="section1">heading text</a> and <a href="/x">link</a></p>`))
	require.NoError(t, err)

	Preprocess(root)

	anchors := htmldom.FindAll(root, func(n *htmldom.Node) bool { return n.Tag == "a" })
	require.Len(t, anchors, 1)
	_, hasHref := anchors[0].AttrValue("href")
	assert.True(t, hasHref)

	texts := htmldom.FindAll(root, func(n *htmldom.Node) bool {
		return n.IsText() && strings.Contains(n.Text, "heading text")
	})
	assert.Len(t, texts, 1)
}

func TestPreprocessEscapesText(t *testing.T) {
	root, err := htmldom.Parse(strings.NewReader(`<p>''quoted''</p>`))
	require.NoError(t, err)

	Preprocess(root)

	texts := htmldom.FindAll(root, (*htmldom.Node).IsText)
	require.NotEmpty(t, texts)
	assert.Equal(t, "<nowiki>''quoted''</nowiki>", texts[0].Text)
}

func TestPreprocessIdempotentOnStructure(t *testing.T) {
	root, err := htmldom.Parse(strings.NewReader(
		`<div id="catlinks">x</div><p><a name="n">y</a></p>`))
	require.NoError(t, err)

	Preprocess(root)

	// A second pass finds nothing left to remove or unwrap.
	assert.Empty(t, htmldom.FindAll(root, isBoilerplate))
	assert.Empty(t, htmldom.FindAll(root, isNamedAnchorOnly))
}

func TestIsNamedAnchorOnly(t *testing.T) {
	target := htmldom.NewElement("a")
	target.SetAttr("name", "x")
	assert.True(t, isNamedAnchorOnly(target))

	link := htmldom.NewElement("a")
	link.SetAttr("name", "x")
	link.SetAttr("href", "/y")
	assert.False(t, isNamedAnchorOnly(link))

	plain := htmldom.NewElement("a")
	assert.False(t, isNamedAnchorOnly(plain))
}
