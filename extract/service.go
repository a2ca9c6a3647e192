// Package extract runs rule sets over fetched pages, one Context per page.
package extract

import (
	"context"

	"github.com/fwojciec/metarule"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages processed in parallel when no
// limit is given.
const DefaultConcurrency = 4

// Page is a fetched HTML page.
type Page struct {
	URL  string
	HTML string
}

// PageResult is the outcome of extracting one page.
type PageResult struct {
	URL    string
	Result metarule.Result
	Err    error
}

// Service extracts metadata from pages. All fields must be set except
// Estimator, without which read time rules never match.
// Service holds no per-page state and is safe for concurrent use.
type Service struct {
	Parser    metarule.DocumentParser
	Resolver  metarule.Resolver
	Rules     metarule.RuleSet
	URLs      metarule.URLResolver
	Estimator metarule.ReadTimeEstimator
}

// Extract parses a page and resolves every field of the rule set.
// Returns EINVALID if the page has no URL or its HTML cannot be parsed.
func (s *Service) Extract(page Page) (metarule.Result, error) {
	if page.URL == "" {
		return nil, metarule.Errorf(metarule.EINVALID, "page URL required")
	}

	doc, err := s.Parser.Parse(page.HTML)
	if err != nil {
		return nil, err
	}

	c := &metarule.Context{
		Document:  doc,
		URL:       page.URL,
		URLs:      s.URLs,
		Estimator: s.Estimator,
	}
	return metarule.Extract(s.Resolver, s.Rules, c), nil
}

// ExtractAll extracts pages concurrently and returns their results in input
// order. A page that fails does not affect the others; its error is
// reported in its PageResult. Only cancellation of ctx returns an error.
func (s *Service) ExtractAll(ctx context.Context, pages []Page, concurrency int) ([]PageResult, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]PageResult, len(pages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, page := range pages {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := s.Extract(page)
			results[i] = PageResult{URL: page.URL, Result: result, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
