package wikitext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gowikitext/pkg/htmldom"
	"github.com/yaklabco/gowikitext/pkg/site"
)

func newTestRenderer(t *testing.T, opts Options) *Renderer {
	t.Helper()

	table, err := NewTable(opts)
	require.NoError(t, err)
	resolver, err := site.New("https://wiki.example.org/wiki/")
	require.NoError(t, err)
	return NewRenderer(table, resolver, nil)
}

func anchor(href, text string) *htmldom.Node {
	a := htmldom.NewElement("a")
	if href != "" {
		a.SetAttr("href", href)
	}
	if text != "" {
		htmldom.AppendChild(a, htmldom.NewText(text))
	}
	return a
}

func TestLinkRepl(t *testing.T) {
	r := newTestRenderer(t, Options{})

	tests := []struct {
		name string
		href string
		text string
		want string
	}{
		{
			name: "internal text matches title",
			href: "https://wiki.example.org/wiki/Foo_Bar",
			text: "Foo Bar",
			want: "[[Foo Bar]]",
		},
		{
			name: "internal text differs in first-letter case",
			href: "https://wiki.example.org/wiki/Foo_Bar",
			text: "foo Bar",
			want: "[[foo Bar]]",
		},
		{
			name: "internal text differs",
			href: "https://wiki.example.org/wiki/Foo_Bar",
			text: "Click here",
			want: "[[Foo Bar|Click here]]",
		},
		{
			name: "internal without text",
			href: "/wiki/Foo",
			text: "",
			want: "[[Foo]]",
		},
		{
			name: "external href equals text",
			href: "http://x.com",
			text: "http://x.com",
			want: "http://x.com",
		},
		{
			name: "external with text",
			href: "http://x.com",
			text: "X",
			want: "[http://x.com X]",
		},
		{
			name: "external without text",
			href: "http://x.com",
			text: "",
			want: "[http://x.com]",
		},
		{
			name: "no href degrades to text",
			href: "",
			text: "just text",
			want: "just text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := linkRepl(r, anchor(tt.href, tt.text))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLinkReplCountsWarnings(t *testing.T) {
	r := newTestRenderer(t, Options{})
	r.warnings = 0

	linkRepl(r, anchor("", "x"))
	assert.Equal(t, 1, r.Warnings())
}

func TestImageRepl(t *testing.T) {
	r := newTestRenderer(t, Options{})

	img := htmldom.NewElement("img")
	img.SetAttr("src", "http://x.com/a/b/pic.png")
	assert.Equal(t, "[[Image:pic.png]]", imageRepl(r, img))

	bare := htmldom.NewElement("img")
	assert.Equal(t, "", imageRepl(r, bare))
	assert.Equal(t, 1, r.Warnings())
}

func TestLcFirst(t *testing.T) {
	assert.Equal(t, "foo Bar", lcFirst("Foo Bar"))
	assert.Equal(t, "already", lcFirst("already"))
	assert.Equal(t, "", lcFirst(""))
	assert.Equal(t, "éclair", lcFirst("Éclair"))
}
