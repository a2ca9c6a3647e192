package metarule

// ContentResult holds the main content found in an HTML page.
type ContentResult struct {
	// ContentHTML is the main content as clean HTML with boilerplate
	// (navigation, footers, sidebars, comments) removed. Images inside the
	// content are kept so that they count towards the reading time.
	ContentHTML string
}

// ContentExtractor finds the main content of an HTML page, removing
// boilerplate. It backs the last-resort read time rule for pages that match
// none of the known content selectors.
type ContentExtractor interface {
	// Extract processes raw HTML and returns the main content.
	// Returns EINVALID for blank input and ENOTFOUND when the page has no
	// readable content.
	Extract(html string) (*ContentResult, error)
}
