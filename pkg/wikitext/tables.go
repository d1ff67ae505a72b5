package wikitext

import (
	"github.com/yaklabco/gowikitext/pkg/htmldom"
)

// Elements whose presence in a table cell does not force block layout.
// Text nodes are phrasal as well.
//
//nolint:gochecknoglobals // Read-only lookup table.
var phrasalTags = map[string]bool{
	"a": true, "abbr": true, "acronym": true, "b": true, "bdo": true,
	"big": true, "br": true, "cite": true, "code": true, "dfn": true,
	"em": true, "font": true, "hr": true, "i": true, "img": true,
	"kbd": true, "q": true, "s": true, "samp": true, "small": true,
	"span": true, "strike": true, "strong": true, "sub": true,
	"sup": true, "tt": true, "u": true, "var": true,
}

// tableStart opens a table: "{|" plus the formatted attribute string
// when any allowed attribute is present.
func tableStart(_ *Renderer, n *htmldom.Node) string {
	start := "{|"
	if attrs := FormatAttributes(n, tableAttrs); attrs != "" {
		start += " " + attrs
	}
	return start
}

// tableRowStart opens a row with "|-". The first row of a table with no
// attributes is elided: the table start line already implies it. Rows
// and cells begin with their own line break, so no trailing newline is
// emitted here.
func tableRowStart(_ *Renderer, n *htmldom.Node) string {
	attrs := FormatAttributes(n, tableRowAttrs)
	if attrs == "" && isFirstRow(n) {
		return ""
	}

	start := "\n|-"
	if attrs != "" {
		start += " " + attrs
	}
	return start
}

// tableCellStart opens a data or header cell. Cells whose children are
// all phrasal stay on the prefix line; cells with block-level content
// start their content on the next line.
func tableCellStart(_ *Renderer, n *htmldom.Node) string {
	prefix := "|"
	if n.Tag == "th" {
		prefix = "!"
	}

	start := "\n" + prefix
	if attrs := FormatAttributes(n, tableCellAttrs); attrs != "" {
		start += " " + attrs + " |"
	}

	if phrasalContentOnly(n) {
		return start + " "
	}
	return start + "\n"
}

// captionStart opens a table caption.
func captionStart(_ *Renderer, n *htmldom.Node) string {
	start := "\n|+ "
	if attrs := FormatAttributes(n, captionAttrs); attrs != "" {
		start += attrs + " |"
	}
	return start
}

func phrasalContentOnly(n *htmldom.Node) bool {
	for child := n.FirstChild; child != nil; child = child.Next {
		if child.IsText() {
			continue
		}
		if !phrasalTags[child.Tag] {
			return false
		}
	}
	return true
}

// isFirstRow reports whether n is the first row of its containing table.
// Rows may sit under thead/tbody/tfoot, so sibling position alone is not
// enough.
func isFirstRow(n *htmldom.Node) bool {
	tables := n.Ancestors(func(a *htmldom.Node) bool { return a.Tag == "table" })
	if len(tables) == 0 {
		return n.Prev == nil
	}

	// Innermost enclosing table.
	table := tables[len(tables)-1]
	rows := htmldom.FindAll(table, func(c *htmldom.Node) bool { return c.Tag == "tr" })
	return len(rows) > 0 && rows[0] == n
}
