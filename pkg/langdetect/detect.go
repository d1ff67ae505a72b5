// Package langdetect provides language detection for preformatted code
// content. It uses go-enry to detect programming languages from code
// snippets, primarily for choosing syntaxhighlight language identifiers.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Unknown is returned when no language can be detected with confidence.
const Unknown = "text"

// Detect returns the detected language for code content, lowercased for
// use as a syntaxhighlight lang attribute. Returns Unknown if detection
// fails or confidence is low.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return Unknown
	}

	// Shebang lines are the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang := detectByPattern(content); lang != "" {
		return lang
	}

	// Classifier over common-language candidates; only trust a
	// high-confidence result.
	candidates := []string{
		"Go", "Python", "Shell", "JavaScript", "TypeScript",
		"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
		"YAML", "HTML", "CSS",
	}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return Unknown
}

// detectByPattern checks for highly indicative language-specific shapes
// that the classifier tends to miss on short snippets.
func detectByPattern(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	text := string(content)

	if bytes.HasPrefix(trimmed, []byte("package ")) {
		return "go"
	}
	if strings.Contains(text, "def ") && strings.Contains(text, "):") {
		return "python"
	}
	if (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`"`)) {
		return "json"
	}
	upper := strings.ToUpper(strings.TrimSpace(text))
	if strings.HasPrefix(upper, "SELECT ") || strings.HasPrefix(upper, "INSERT ") ||
		strings.HasPrefix(upper, "CREATE TABLE") {
		return "sql"
	}
	return ""
}

func normalize(lang string) string {
	switch lang {
	case "C++":
		return "cpp"
	case "C#":
		return "csharp"
	case "Shell":
		return "bash"
	default:
		return strings.ToLower(lang)
	}
}
