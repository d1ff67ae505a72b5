package wikitext

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/gowikitext/pkg/htmldom"
	"github.com/yaklabco/gowikitext/pkg/site"
)

// PreLinePrefix is the reserved placeholder that protects the leading
// space of preformatted lines during rendering. Postprocessing replaces
// every occurrence with a single space. The sequence contains NUL bytes
// so it cannot collide with document content.
const PreLinePrefix = "\x00pre:\x00"

//nolint:gochecknoglobals // Compiled once, read-only.
var (
	whitespaceRun  = regexp.MustCompile(`[ \t\r\n]+`)
	trailingSpaces = regexp.MustCompile(`[ \t]+\n`)
	excessNewlines = regexp.MustCompile(`\n{3,}`)
)

// Renderer applies a rule table to a document tree, producing MediaWiki
// markup. A Renderer holds per-document state (warning counts) and is
// not safe for concurrent use; build one per document over a shared Table.
type Renderer struct {
	table    *Table
	site     *site.Resolver
	logger   *log.Logger
	warnings int
}

// NewRenderer creates a renderer over an immutable rule table.
// resolver decides internal-vs-external link classification; a nil
// resolver treats every link as external. logger may be nil.
func NewRenderer(table *Table, resolver *site.Resolver, logger *log.Logger) *Renderer {
	if resolver == nil {
		resolver, _ = site.New("")
	}
	return &Renderer{table: table, site: resolver, logger: logger}
}

// Warnings returns the number of malformed-input degradations seen
// during the last Render call.
func (r *Renderer) Warnings() int {
	return r.warnings
}

// Render converts the tree rooted at root into wiki markup.
// The tree is expected to have been run through Preprocess first.
func (r *Renderer) Render(root *htmldom.Node) string {
	r.warnings = 0
	return postprocess(r.renderChildren(root))
}

func (r *Renderer) render(n *htmldom.Node) string {
	if n.IsText() {
		return whitespaceRun.ReplaceAllString(n.Text, " ")
	}

	rule, ok := r.table.Lookup(n.Tag)
	if !ok {
		// Unknown tags contribute their content only.
		return r.renderChildren(n)
	}

	var out string
	switch rule.Behavior {
	case BehaviorDelete:
		return ""
	case BehaviorReplace:
		out = rule.Replace
		if rule.ReplaceFunc != nil {
			out = rule.ReplaceFunc(r, n)
		}
	case BehaviorPreserve:
		out = r.preserve(n, rule)
	default:
		out = r.wrap(n, rule)
	}

	if rule.Block {
		out = "\n\n" + out + "\n\n"
	}
	return out
}

func (r *Renderer) renderChildren(n *htmldom.Node) string {
	var b strings.Builder
	for child := n.FirstChild; child != nil; child = child.Next {
		b.WriteString(r.render(child))
	}
	return b.String()
}

func (r *Renderer) wrap(n *htmldom.Node, rule *Rule) string {
	start := rule.Start
	if rule.StartFunc != nil {
		start = rule.StartFunc(r, n)
	}
	end := rule.End
	if rule.EndFunc != nil {
		end = rule.EndFunc(r, n)
	}

	inner := applyTrim(r.renderChildren(n), rule.Trim)
	return start + inner + end
}

// preserve re-emits the element as HTML, keeping allowed attributes.
// Childless elements become self-closing tags.
func (r *Renderer) preserve(n *htmldom.Node, rule *Rule) string {
	open := "<" + n.Tag
	if attrs := FormatAttributes(n, rule.AllowedAttrs); attrs != "" {
		open += " " + attrs
	}
	if !n.HasChildren() {
		return open + " />"
	}
	return open + ">" + r.renderChildren(n) + "</" + n.Tag + ">"
}

func (r *Renderer) warn(msg string, keyvals ...any) {
	r.warnings++
	if r.logger != nil {
		r.logger.Warn(msg, keyvals...)
	}
}

func applyTrim(s string, trim Trim) string {
	switch trim {
	case TrimSpace:
		return strings.Trim(s, " \t")
	case TrimAll:
		return strings.TrimSpace(s)
	default:
		return s
	}
}

// postprocess normalizes the rendered document: trailing whitespace is
// stripped from lines, blank-line runs collapse to a single blank line,
// and the preformatted-line placeholder becomes its final space. The
// placeholder must be resolved after the outer trim so that indentation
// on the first and last preformatted lines survives.
func postprocess(s string) string {
	s = trailingSpaces.ReplaceAllString(s, "\n")
	s = excessNewlines.ReplaceAllString(s, "\n\n")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, PreLinePrefix, " ")
	if s == "" {
		return ""
	}
	return s + "\n"
}
