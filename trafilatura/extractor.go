// Package trafilatura finds the main content of a page with go-trafilatura
// for the read time content fallback.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/metarule"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ metarule.ContentExtractor = (*Extractor)(nil)

// Extractor finds the main content of a page using trafilatura, falling back
// to its bundled readability and dom-distiller heuristics.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the main content of rawHTML with images kept and comments
// dropped. Pages without content text are reported as ENOTFOUND.
func (e *Extractor) Extract(rawHTML string) (*metarule.ContentResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, metarule.Errorf(metarule.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		IncludeImages:   true,
	})
	if err != nil {
		return nil, metarule.Errorf(metarule.ENOTFOUND, "no main content: %v", err)
	}
	if result == nil || result.ContentNode == nil || !hasText(result.ContentNode) {
		return nil, metarule.Errorf(metarule.ENOTFOUND, "no main content")
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, result.ContentNode); err != nil {
		return nil, metarule.Errorf(metarule.EINTERNAL, "render content: %v", err)
	}
	return &metarule.ContentResult{ContentHTML: buf.String()}, nil
}

// hasText reports whether any text node below n contains non-space text.
func hasText(n *html.Node) bool {
	if n.Type == html.TextNode {
		return strings.TrimSpace(n.Data) != ""
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if hasText(child) {
			return true
		}
	}
	return false
}
