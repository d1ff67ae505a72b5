package config

// Template returns a commented starter configuration file, written by
// the init command.
func Template() []byte {
	return []byte(`# gowikitext configuration
# See https://github.com/yaklabco/gowikitext for documentation.

# Base article URL of the target wiki. Links under this URL render as
# internal [[Page]] links; everything else is external.
base_url: ""

# Emit <b>/<i> tags verbatim instead of '''/'' markup.
preserve_bold: false
preserve_italic: false

# Render code-shaped <pre> blocks as <syntaxhighlight lang="...">.
detect_code_language: false

# CSS selector restricting conversion to one subtree (e.g. "#content").
select: ""

# Glob patterns skipped during directory walks.
ignore: []
`)
}
