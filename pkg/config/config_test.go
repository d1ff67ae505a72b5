package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromYAML(t *testing.T) {
	data := []byte(`
base_url: "https://en.wikipedia.org/wiki/"
preserve_bold: true
select: "#content"
ignore:
  - "vendor/**"
`)

	cfg, err := FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, "https://en.wikipedia.org/wiki/", cfg.BaseURL)
	assert.True(t, cfg.PreserveBold)
	assert.False(t, cfg.PreserveItalic)
	assert.Equal(t, "#content", cfg.Select)
	assert.Equal(t, []string{"vendor/**"}, cfg.Ignore)
}

func TestFromYAMLInvalid(t *testing.T) {
	_, err := FromYAML([]byte("base_url: [nope"))
	assert.Error(t, err)
}

func TestYAMLRoundTrip(t *testing.T) {
	cfg := NewConfig()
	cfg.BaseURL = "https://wiki.example.org/wiki/"
	cfg.DetectCodeLanguage = true

	data, err := cfg.ToYAML()
	require.NoError(t, err)

	parsed, err := FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, cfg.BaseURL, parsed.BaseURL)
	assert.True(t, parsed.DetectCodeLanguage)
}

func TestMerge(t *testing.T) {
	base := NewConfig()
	base.BaseURL = "https://a.example/wiki/"
	base.Ignore = []string{"a"}

	base.Merge(&Config{
		BaseURL:      "https://b.example/wiki/",
		PreserveBold: true,
		Ignore:       []string{"b"},
		Jobs:         4,
	})

	assert.Equal(t, "https://b.example/wiki/", base.BaseURL)
	assert.True(t, base.PreserveBold)
	assert.Equal(t, []string{"a", "b"}, base.Ignore)
	assert.Equal(t, 4, base.Jobs)

	base.Merge(nil)
	assert.Equal(t, 4, base.Jobs)
}

func TestTemplateParses(t *testing.T) {
	cfg, err := FromYAML(Template())
	require.NoError(t, err)
	assert.Equal(t, "", cfg.BaseURL)
}
