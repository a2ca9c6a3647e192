package metarule

// Node is a single element selected from a Document.
type Node interface {
	// Attr returns the value of the named attribute.
	// Returns false if the attribute is not present.
	Attr(name string) (string, bool)

	// Text returns the combined text of the node and its descendants.
	Text() string

	// InnerHTML returns the node's inner HTML.
	// Returns false if the HTML cannot be rendered.
	InnerHTML() (string, bool)
}

// Document is a parsed HTML page that can be queried with CSS selectors.
type Document interface {
	// Select returns the nodes matching a CSS selector in document order.
	// An invalid selector matches nothing.
	Select(selector string) []Node

	// HTML returns the full markup of the document.
	HTML() string
}

// DocumentParser parses raw HTML into a queryable Document.
type DocumentParser interface {
	// Parse parses HTML. Returns EINVALID if the input is empty.
	Parse(html string) (Document, error)
}
