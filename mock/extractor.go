package mock

import "github.com/fwojciec/metarule"

var _ metarule.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of metarule.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*metarule.ContentResult, error)
}

func (e *ContentExtractor) Extract(html string) (*metarule.ContentResult, error) {
	return e.ExtractFn(html)
}
