package wikitext

import (
	"net/url"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/gowikitext/pkg/htmldom"
)

// linkRepl renders an anchor element. Targets that resolve to an
// internal page title become [[...]] links; everything else is an
// external link. An anchor without an href degrades to its text.
func linkRepl(r *Renderer, n *htmldom.Node) string {
	text := strings.TrimSpace(r.renderChildren(n))

	href, ok := n.AttrValue("href")
	if !ok || href == "" {
		r.warn("anchor without href", "text", text)
		return text
	}

	if title, internal := r.site.PageTitle(href); internal {
		switch {
		case text == "" || text == title:
			return "[[" + title + "]]"
		case text == lcFirst(title):
			// MediaWiki treats titles as equivalent up to the case of
			// the first character, so the shorter form suffices.
			return "[[" + text + "]]"
		default:
			return "[[" + title + "|" + text + "]]"
		}
	}

	if text == href {
		return href
	}
	if text == "" {
		return "[" + href + "]"
	}
	return "[" + href + " " + text + "]"
}

// imageRepl renders an img element as [[Image:name]] using the final
// path segment of its src. An image without a src renders as nothing.
func imageRepl(r *Renderer, n *htmldom.Node) string {
	src, ok := n.AttrValue("src")
	if !ok || src == "" {
		r.warn("image without src")
		return ""
	}

	name := src
	if u, err := url.Parse(src); err == nil && u.Path != "" {
		name = u.Path
	}
	return "[[Image:" + path.Base(name) + "]]"
}

// lcFirst lowercases the first character of s using the simple Unicode
// case mapping. Non-ASCII leading characters keep the literal
// first-character comparison semantics.
func lcFirst(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(first)) + s[size:]
}
