// Package config defines core configuration types for gowikitext.
// These types are pure data structures with no dependency on the
// loaders that populate them.
package config

// Config is the root configuration structure for gowikitext.
type Config struct {
	// BaseURL is the wiki's base article URL used to recognize internal
	// page links (e.g. "https://en.wikipedia.org/wiki/"). Empty means
	// every link is treated as external.
	BaseURL string `yaml:"base_url"`

	// PreserveBold emits <b> tags verbatim instead of ''' markup.
	PreserveBold bool `yaml:"preserve_bold"`

	// PreserveItalic emits <i> tags verbatim instead of '' markup.
	PreserveItalic bool `yaml:"preserve_italic"`

	// DetectCodeLanguage renders recognizably code-shaped pre blocks as
	// <syntaxhighlight> with a detected language.
	DetectCodeLanguage bool `yaml:"detect_code_language"`

	// Select restricts conversion to the first subtree matching this
	// CSS selector. Empty converts the whole document.
	Select string `yaml:"select"`

	// Ignore contains glob patterns for files to skip during
	// directory walks.
	Ignore []string `yaml:"ignore"`

	// Jobs is the number of parallel conversion workers. CLI-level,
	// not persisted to config files.
	Jobs int `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Jobs: 0, // 0 means use GOMAXPROCS
	}
}

// Merge overlays non-zero fields from other onto c. Used to apply
// higher-precedence sources (env, CLI flags) over file configuration.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.BaseURL != "" {
		c.BaseURL = other.BaseURL
	}
	if other.PreserveBold {
		c.PreserveBold = true
	}
	if other.PreserveItalic {
		c.PreserveItalic = true
	}
	if other.DetectCodeLanguage {
		c.DetectCodeLanguage = true
	}
	if other.Select != "" {
		c.Select = other.Select
	}
	if len(other.Ignore) > 0 {
		c.Ignore = append(c.Ignore, other.Ignore...)
	}
	if other.Jobs != 0 {
		c.Jobs = other.Jobs
	}
}
