package wikitext

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/gowikitext/pkg/htmldom"
	"github.com/yaklabco/gowikitext/pkg/site"
)

// ConvertOptions assembles the collaborators for one conversion.
type ConvertOptions struct {
	// Table is the session rule table. Required.
	Table *Table

	// Resolver classifies internal links. Nil treats all links external.
	Resolver *site.Resolver

	// Logger receives malformed-input warnings. May be nil.
	Logger *log.Logger

	// Selector optionally restricts conversion to the first subtree
	// matching a CSS selector.
	Selector string
}

// Result is the outcome of converting one document.
type Result struct {
	// Markup is the generated MediaWiki markup.
	Markup string

	// Warnings counts malformed-input degradations (images without src,
	// anchors without href).
	Warnings int
}

// Convert parses an HTML document, preprocesses it, and renders it to
// wiki markup under the given options.
func Convert(src io.Reader, opts ConvertOptions) (*Result, error) {
	root, err := htmldom.ParseFragment(src, opts.Selector)
	if err != nil {
		return nil, err
	}

	Preprocess(root)

	renderer := NewRenderer(opts.Table, opts.Resolver, opts.Logger)
	markup := renderer.Render(root)

	return &Result{Markup: markup, Warnings: renderer.Warnings()}, nil
}
