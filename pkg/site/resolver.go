// Package site resolves hyperlink targets against a wiki's article
// namespace, deciding whether an href points at an internal page.
package site

import (
	"net/url"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Resolver recognizes internal page links for a single wiki site.
// A zero Resolver recognizes nothing: every link is treated as external.
type Resolver struct {
	host        string
	articlePath string
}

// New creates a Resolver from a base article URL such as
// "https://en.wikipedia.org/wiki/". An empty baseURL yields a resolver
// that treats all links as external.
func New(baseURL string) (*Resolver, error) {
	if baseURL == "" {
		return &Resolver{}, nil
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	path := u.Path
	if path == "" {
		path = "/"
	}
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}

	return &Resolver{host: u.Host, articlePath: path}, nil
}

// PageTitle resolves href to a canonical internal page title.
// It recognizes absolute URLs on the resolver's host under the article
// path, and same-site rooted paths under the article path. The returned
// title is percent-decoded, underscore-to-space mapped, and
// NFC-normalized. The second return is false for external targets.
func (r *Resolver) PageTitle(href string) (string, bool) {
	if href == "" || r.articlePath == "" {
		return "", false
	}

	u, err := url.Parse(href)
	if err != nil {
		return "", false
	}

	// Absolute URLs must match the configured host.
	if u.Host != "" && !strings.EqualFold(u.Host, r.host) {
		return "", false
	}
	// Scheme-only targets like mailto: never resolve internal.
	if u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	// Relative references without a rooted path are not page links.
	if u.Host == "" && !strings.HasPrefix(u.Path, "/") {
		return "", false
	}

	if !strings.HasPrefix(u.Path, r.articlePath) {
		return "", false
	}

	// u.Path is already percent-decoded by url.Parse.
	title := strings.TrimPrefix(u.Path, r.articlePath)
	if title == "" {
		return "", false
	}

	title = strings.ReplaceAll(title, "_", " ")
	return norm.NFC.String(title), true
}
