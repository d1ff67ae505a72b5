package wikitext

import (
	"strings"

	"github.com/yaklabco/gowikitext/pkg/htmldom"
	"github.com/yaklabco/gowikitext/pkg/langdetect"
)

// preRepl renders a preformatted block. Each line is prefixed with the
// reserved placeholder so surrounding whitespace normalization cannot
// disturb the leading space MediaWiki needs; postprocessing turns the
// placeholder into that space. With language detection enabled,
// recognizably code-shaped content becomes a syntaxhighlight block
// instead.
func preRepl(r *Renderer, n *htmldom.Node) string {
	content := strings.TrimRight(rawText(n), "\n")
	if content == "" {
		return ""
	}

	if r.table.Options().DetectCodeLanguage {
		if lang := langdetect.Detect([]byte(content)); lang != langdetect.Unknown {
			return `<syntaxhighlight lang="` + lang + "\">\n" + content + "\n</syntaxhighlight>"
		}
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = PreLinePrefix + line
	}
	return strings.Join(lines, "\n")
}

// rawText concatenates the subtree's text content verbatim.
func rawText(n *htmldom.Node) string {
	if n.IsText() {
		return n.Text
	}
	var b strings.Builder
	for child := n.FirstChild; child != nil; child = child.Next {
		b.WriteString(rawText(child))
	}
	return b.String()
}
