// Package url validates URL values found in pages and resolves them against
// the page address.
package url

import (
	neturl "net/url"
	"strings"
	"unicode"

	"github.com/fwojciec/metarule"
)

// Ensure Resolver implements metarule.URLResolver at compile time.
var _ metarule.URLResolver = (*Resolver)(nil)

// Resolver accepts http(s) URLs and relative references.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// IsURL reports whether value is an absolute http(s) URL with a host, a
// protocol-relative URL, or a relative reference with a path. Surrounding
// whitespace is ignored; values containing inner whitespace are never URLs.
// References that only point back at the page or its directory ("#", "?q",
// ".", "../") are rejected.
func (r *Resolver) IsURL(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" || strings.IndexFunc(value, unicode.IsSpace) >= 0 {
		return false
	}

	u, err := neturl.Parse(value)
	if err != nil {
		return false
	}

	if u.Scheme == "" {
		if strings.HasPrefix(value, "//") {
			return u.Host != ""
		}
		return strings.Trim(u.Path, "./") != ""
	}

	return isHTTP(u) && u.Host != ""
}

// Resolve resolves value against baseURL. Absolute values are returned in
// normalized form. Returns false if the result is not an absolute http(s)
// URL.
func (r *Resolver) Resolve(baseURL, value string) (string, bool) {
	ref, err := neturl.Parse(strings.TrimSpace(value))
	if err != nil {
		return "", false
	}

	if ref.IsAbs() {
		if !isHTTP(ref) || ref.Host == "" {
			return "", false
		}
		return ref.String(), true
	}

	base, err := neturl.Parse(strings.TrimSpace(baseURL))
	if err != nil || !base.IsAbs() || !isHTTP(base) {
		return "", false
	}
	return base.ResolveReference(ref).String(), true
}

func isHTTP(u *neturl.URL) bool {
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}
