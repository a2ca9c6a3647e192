// Package readability finds the main content of a page with go-readability
// for the read time content fallback.
package readability

import (
	"strings"

	"github.com/fwojciec/metarule"
	"github.com/go-shiori/go-readability"
)

var _ metarule.ContentExtractor = (*Extractor)(nil)

// Extractor finds the article body of a page using the Readability
// algorithm.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the article body of rawHTML. Pages without readable text
// are reported as ENOTFOUND.
func (e *Extractor) Extract(rawHTML string) (*metarule.ContentResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, metarule.Errorf(metarule.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, metarule.Errorf(metarule.ENOTFOUND, "no article content: %v", err)
	}
	if strings.TrimSpace(article.TextContent) == "" || strings.TrimSpace(article.Content) == "" {
		return nil, metarule.Errorf(metarule.ENOTFOUND, "no article content")
	}

	return &metarule.ContentResult{ContentHTML: article.Content}, nil
}
