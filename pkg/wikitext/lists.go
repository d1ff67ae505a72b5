package wikitext

import (
	"strings"

	"github.com/yaklabco/gowikitext/pkg/htmldom"
)

// listItemStart computes the nesting prefix for a list-item-like node
// (li, dt, dd) from its list-container ancestors, outermost first.
// Each ancestor contributes one marker: ul '*', ol '#', dl ':' (or ';'
// when the item itself is a definition term directly under that dl).
// The item starts on its own line with a space after the markers.
func listItemStart(_ *Renderer, n *htmldom.Node) string {
	containers := n.Ancestors(isListContainer)

	var prefix strings.Builder
	for _, container := range containers {
		switch container.Tag {
		case "ul":
			prefix.WriteByte('*')
		case "ol":
			prefix.WriteByte('#')
		case "dl":
			if n.Tag == "dt" && container == n.Parent {
				prefix.WriteByte(';')
			} else {
				prefix.WriteByte(':')
			}
		}
	}

	return "\n" + prefix.String() + " "
}

func isListContainer(n *htmldom.Node) bool {
	switch n.Tag {
	case "ul", "ol", "dl":
		return true
	default:
		return false
	}
}
