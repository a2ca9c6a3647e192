package mock

import "github.com/fwojciec/metarule"

var _ metarule.URLResolver = (*URLResolver)(nil)

// URLResolver is a mock implementation of metarule.URLResolver.
type URLResolver struct {
	IsURLFn   func(value string) bool
	ResolveFn func(baseURL, value string) (string, bool)
}

func (r *URLResolver) IsURL(value string) bool {
	return r.IsURLFn(value)
}

func (r *URLResolver) Resolve(baseURL, value string) (string, bool) {
	return r.ResolveFn(baseURL, value)
}

var _ metarule.ReadTimeEstimator = (*ReadTimeEstimator)(nil)

// ReadTimeEstimator is a mock implementation of metarule.ReadTimeEstimator.
type ReadTimeEstimator struct {
	EstimateFn func(html string) (*metarule.ReadTime, error)
}

func (e *ReadTimeEstimator) Estimate(html string) (*metarule.ReadTime, error) {
	return e.EstimateFn(html)
}
