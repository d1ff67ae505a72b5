package wikitext

import (
	"strings"

	"github.com/yaklabco/gowikitext/pkg/htmldom"
)

// Site-furniture element ids and classes with no markup equivalent.
//
//nolint:gochecknoglobals // Read-only lookup tables.
var (
	boilerplateIDs = map[string]bool{
		"catlinks": true, // category links container
	}

	boilerplateClasses = map[string]bool{
		"urlexpansion": true, // print-view URL annotation
		"printfooter":  true,
		"editsection":  true,
	}
)

// Preprocess mutates the tree in place before rendering: boilerplate
// elements are discarded, named-anchor targets are unwrapped to their
// content, and text nodes are escaped against wiki syntax collisions.
// Running it again on an already-filtered tree finds no further
// boilerplate or anchor targets.
func Preprocess(root *htmldom.Node) {
	for _, n := range htmldom.FindAll(root, isBoilerplate) {
		htmldom.Detach(n)
	}

	for _, n := range htmldom.FindAll(root, isNamedAnchorOnly) {
		htmldom.Unwrap(n)
	}

	for _, n := range htmldom.FindAll(root, (*htmldom.Node).IsText) {
		n.Text = EscapeText(n.Text)
	}
}

// isNamedAnchorOnly reports whether an anchor exists purely as a jump
// target: it carries a name but no href.
func isNamedAnchorOnly(n *htmldom.Node) bool {
	if n.Tag != "a" {
		return false
	}
	_, hasName := n.AttrValue("name")
	_, hasHref := n.AttrValue("href")
	return hasName && !hasHref
}

func isBoilerplate(n *htmldom.Node) bool {
	if n.IsText() {
		return false
	}

	if id, ok := n.AttrValue("id"); ok && boilerplateIDs[id] {
		return true
	}

	if class, ok := n.AttrValue("class"); ok {
		for _, token := range strings.Fields(class) {
			if boilerplateClasses[token] {
				return true
			}
		}
	}
	return false
}
