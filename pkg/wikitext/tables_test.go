package wikitext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gowikitext/pkg/htmldom"
)

func renderHTML(t *testing.T, opts Options, src string) string {
	t.Helper()

	root, err := htmldom.Parse(strings.NewReader(src))
	require.NoError(t, err)
	Preprocess(root)

	r := newTestRenderer(t, opts)
	return r.Render(root)
}

func TestTableRoundTripStructure(t *testing.T) {
	out := renderHTML(t, Options{},
		`<table><tr><th>H1</th><th>H2</th></tr><tr><td>a</td><td>b</td></tr></table>`)

	assert.Equal(t, "{|\n! H1\n! H2\n|-\n| a\n| b\n|}\n", out)

	// One header row and one data row survive as structural tokens.
	assert.Equal(t, 1, strings.Count(out, "|-"))
	assert.Equal(t, 2, strings.Count(out, "\n!"))
	assert.Equal(t, 2, strings.Count(out, "\n|")-2) // minus |- and |}
}

func TestTableCellInlineContentStaysOnLine(t *testing.T) {
	out := renderHTML(t, Options{},
		`<table><tr><td><b>x</b> text</td></tr></table>`)

	assert.Equal(t, "{|\n| '''x''' text\n|}\n", out)
}

func TestTableCellBlockContentBreaksLine(t *testing.T) {
	out := renderHTML(t, Options{},
		`<table><tr><td><div>block</div></td></tr></table>`)

	assert.Equal(t, "{|\n|\nblock\n|}\n", out)
}

func TestTableAttributesAndCaption(t *testing.T) {
	out := renderHTML(t, Options{},
		`<table border="1"><caption>Cap</caption><tr><td>x</td></tr></table>`)

	assert.Equal(t, "{| border=\"1\"\n|+ Cap\n| x\n|}\n", out)
}

func TestTableFirstRowWithAttributesKept(t *testing.T) {
	out := renderHTML(t, Options{},
		`<table><tr bgcolor="red"><td>x</td></tr></table>`)

	assert.Equal(t, "{|\n|- bgcolor=\"red\"\n| x\n|}\n", out)
}

func TestTableCellWithAttributes(t *testing.T) {
	out := renderHTML(t, Options{},
		`<table><tr><td colspan="2">x</td></tr></table>`)

	assert.Equal(t, "{|\n| colspan=\"2\" | x\n|}\n", out)
}

func TestPhrasalContentOnly(t *testing.T) {
	cell := htmldom.NewElement("td")
	htmldom.AppendChild(cell, htmldom.NewText("x"))
	htmldom.AppendChild(cell, htmldom.NewElement("b"))
	assert.True(t, phrasalContentOnly(cell))

	htmldom.AppendChild(cell, htmldom.NewElement("div"))
	assert.False(t, phrasalContentOnly(cell))
}
