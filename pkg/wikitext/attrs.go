package wikitext

import (
	"html"
	"strings"

	"github.com/yaklabco/gowikitext/pkg/htmldom"
)

// Attribute allow-lists per element category. MediaWiki passes these
// through to the generated HTML, so only presentation-safe names are kept.
//
//nolint:gochecknoglobals // Read-only lookup tables.
var (
	commonAttrs = []string{"id", "class", "lang", "dir", "title", "style"}

	blockAttrs = appendAttrs(commonAttrs, "align")

	tableAttrs = appendAttrs(commonAttrs,
		"summary", "width", "border", "frame", "rules",
		"cellspacing", "cellpadding", "align", "bgcolor")

	rowAlignAttrs = []string{"align", "char", "charoff", "valign"}

	tableRowAttrs = appendAttrs(appendAttrs(commonAttrs, "bgcolor"), rowAlignAttrs...)

	tableCellAttrs = appendAttrs(appendAttrs(commonAttrs,
		"abbr", "axis", "headers", "scope", "rowspan", "colspan",
		"nowrap", "width", "height", "bgcolor"), rowAlignAttrs...)

	captionAttrs = appendAttrs(commonAttrs, "align")

	fontAttrs = []string{"color", "face", "size"}
)

func appendAttrs(base []string, names ...string) []string {
	out := make([]string, 0, len(base)+len(names))
	out = append(out, base...)
	out = append(out, names...)
	return out
}

// FormatAttributes builds a name="value" sequence for the node's
// attributes that appear in the allow-list, in allow-list order.
// Values are HTML-escaped. Returns "" when no allowed attribute is present.
func FormatAttributes(n *htmldom.Node, allowed []string) string {
	var parts []string
	for _, name := range allowed {
		if value, ok := n.AttrValue(name); ok {
			parts = append(parts, name+`="`+html.EscapeString(value)+`"`)
		}
	}
	return strings.Join(parts, " ")
}
