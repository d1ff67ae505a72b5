package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gowikitext/pkg/config"
	"github.com/yaklabco/gowikitext/pkg/wikitext"
)

// writeFiles creates the given relative-path files under dir with trivial content.
func writeFiles(t *testing.T, dir string, paths map[string]string) {
	t.Helper()
	for rel, content := range paths {
		full := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
}

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	table, err := wikitext.NewTable(wikitext.Options{})
	require.NoError(t, err)
	return New(table, nil, nil)
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"index.html":        "<p>a</p>",
		"docs/page.htm":     "<p>b</p>",
		"docs/notes.txt":    "skip",
		".hidden/page.html": "skip",
		"vendor/v.html":     "skip",
	})

	files, err := Discover(context.Background(), dir, Options{
		ExcludeGlobs: []string{"vendor/**"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "docs", "page.htm"),
		filepath.Join(dir, "index.html"),
	}, files)
}

func TestDiscoverExplicitFileSkipsExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"snippet.xhtml": "<p>a</p>"})

	files, err := Discover(context.Background(), dir, Options{
		Paths: []string{"snippet.xhtml"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "snippet.xhtml")}, files)
}

func TestDiscoverMissingPath(t *testing.T) {
	_, err := Discover(context.Background(), t.TempDir(), Options{
		Paths: []string{"no-such-file.html"},
	})
	assert.Error(t, err)
}

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"vendor/x.html", "vendor/**", true},
		{"vendor", "vendor/**", true},
		{"evendor/x.html", "vendor/**", false},
		{"a/b/node_modules/c.html", "**/node_modules", true},
		{"docs/draft.html", "*.html", true},
		{"docs/draft.html", "docs/*.html", true},
		{"docs/draft.html", "drafts/*.html", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, matchGlob(tt.path, tt.pattern),
			"matchGlob(%q, %q)", tt.path, tt.pattern)
	}
}

func TestOutputPathFor(t *testing.T) {
	got, err := outputPathFor(filepath.Join("/w", "docs", "a.html"), "/w", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/w", "docs", "a.wiki"), got)

	got, err = outputPathFor(filepath.Join("/w", "docs", "a.html"), "/w", "/out")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/out", "docs", "a.wiki"), got)

	// Input outside the working directory flattens to the base name.
	got, err = outputPathFor("/elsewhere/b.htm", "/w", "/out")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/out", "b.wiki"), got)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"index.html":   "<h1>Home</h1><p>Hello <b>world</b></p>",
		"docs/faq.htm": "<ul><li>one</li><li>two</li></ul>",
	})

	r := newTestRunner(t)
	result, err := r.Run(context.Background(), Options{WorkingDir: dir})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stats.FilesDiscovered)
	assert.Equal(t, 2, result.Stats.FilesConverted)
	assert.Equal(t, 0, result.Stats.FilesErrored)
	assert.False(t, result.HasFailures())
	require.Len(t, result.Files, 2)

	// Outcomes come back in discovery (sorted) order.
	assert.Equal(t, filepath.Join(dir, "docs", "faq.htm"), result.Files[0].Path)
	assert.Equal(t, filepath.Join(dir, "index.html"), result.Files[1].Path)

	data, err := os.ReadFile(filepath.Join(dir, "index.wiki"))
	require.NoError(t, err)
	assert.Equal(t, "= Home =\n\nHello '''world'''\n", string(data))

	data, err = os.ReadFile(filepath.Join(dir, "docs", "faq.wiki"))
	require.NoError(t, err)
	assert.Equal(t, "* one\n* two\n", string(data))
}

func TestRunOutputDir(t *testing.T) {
	dir := t.TempDir()
	outDir := t.TempDir()
	writeFiles(t, dir, map[string]string{"sub/page.html": "<p>x</p>"})

	r := newTestRunner(t)
	result, err := r.Run(context.Background(), Options{
		WorkingDir: dir,
		OutputDir:  outDir,
	})
	require.NoError(t, err)
	require.Equal(t, 1, result.Stats.FilesConverted)

	data, err := os.ReadFile(filepath.Join(outDir, "sub", "page.wiki"))
	require.NoError(t, err)
	assert.Equal(t, "x\n", string(data))
}

func TestRunEmptyDirectory(t *testing.T) {
	r := newTestRunner(t)
	result, err := r.Run(context.Background(), Options{WorkingDir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Stats.FilesDiscovered)
	assert.Empty(t, result.Files)
}

func TestRunSelectorFromConfig(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"page.html": `<div id="main"><p>kept</p></div><p>dropped</p>`,
	})

	r := newTestRunner(t)
	result, err := r.Run(context.Background(), Options{
		WorkingDir: dir,
		Config:     &config.Config{Select: "#main"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, result.Stats.FilesConverted)

	data, err := os.ReadFile(filepath.Join(dir, "page.wiki"))
	require.NoError(t, err)
	assert.Equal(t, "kept\n", string(data))
}

func TestRunCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.html": "<p>a</p>"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newTestRunner(t)
	_, err := r.Run(ctx, Options{WorkingDir: dir})
	assert.Error(t, err)
}
