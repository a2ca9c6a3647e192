package metarule

// Context is the read-only input shared by every rule during one
// extraction. A Context is built per document and must not be reused across
// documents or modified while rules run.
type Context struct {
	// Document is the parsed page.
	Document Document

	// URL is the address the page was fetched from. Relative URLs found in
	// the page are resolved against it.
	URL string

	// URLs validates and resolves URL values.
	URLs URLResolver

	// Estimator converts HTML fragments into reading time estimates.
	Estimator ReadTimeEstimator
}

// URLResolver validates and resolves URL values found in a page.
type URLResolver interface {
	// IsURL reports whether value is syntactically an absolute URL or a
	// relative reference.
	IsURL(value string) bool

	// Resolve resolves value against baseURL.
	// Returns false if either cannot be resolved.
	Resolve(baseURL, value string) (string, bool)
}

// ReadTimeEstimator estimates how long an HTML fragment takes to read.
type ReadTimeEstimator interface {
	// Estimate returns the estimate for the fragment.
	// Returns EINVALID if the fragment is empty.
	Estimate(html string) (*ReadTime, error)
}
