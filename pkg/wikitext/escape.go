package wikitext

import "regexp"

const (
	nowikiOpen  = "<nowiki>"
	nowikiClose = "</nowiki>"
)

// Text patterns that collide with wiki syntax. A text node matching any
// of these is wrapped whole in nowiki markers.
//
//nolint:gochecknoglobals // Compiled once, read-only.
var collisionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`''`),                // italic/bold markers
	regexp.MustCompile(`(?m)^[*#;:=!|]`),    // list/heading/table line starters
	regexp.MustCompile(`(?m)^----[ \t]*$`),  // horizontal rule
	regexp.MustCompile(`(?m)^\{\|`),         // table start
	regexp.MustCompile(`\[\[`),              // internal link open
	regexp.MustCompile(`\{\{`),              // template open
}

// literalLinkPattern matches single-bracket spans that MediaWiki would
// interpret as external links: a recognized URL scheme, URL-safe
// characters, and optional trailing link text.
//
//nolint:gochecknoglobals // Compiled once, read-only.
var literalLinkPattern = regexp.MustCompile(
	`\[(?:https?|ftp|irc|gopher|news|mailto):[^][ \t\n]*(?:[ \t][^]\n]*)?\]`)

// EscapeText protects raw text from wiki markup interpretation.
// Text containing a colliding pattern is wrapped whole in nowiki
// markers. Otherwise, each literal external-link bracket span is wrapped
// individually and the rest of the text is left untouched.
func EscapeText(text string) string {
	for _, pattern := range collisionPatterns {
		if pattern.MatchString(text) {
			return nowikiOpen + text + nowikiClose
		}
	}

	return literalLinkPattern.ReplaceAllString(text, nowikiOpen+"$0"+nowikiClose)
}
