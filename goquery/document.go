package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/metarule"
)

// Ensure Parser implements metarule.DocumentParser at compile time.
var _ metarule.DocumentParser = (*Parser)(nil)

// Parser parses HTML into goquery-backed documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses raw HTML into a Document.
func (p *Parser) Parse(html string) (metarule.Document, error) {
	return NewDocument(html)
}

// Ensure Document implements metarule.Document at compile time.
var _ metarule.Document = (*Document)(nil)

// Document is a parsed page queried with CSS selectors.
// Document is safe for concurrent reads.
type Document struct {
	doc  *goquery.Document
	html string
}

// NewDocument parses raw HTML into a Document.
func NewDocument(html string) (*Document, error) {
	if strings.TrimSpace(html) == "" {
		return nil, metarule.Errorf(metarule.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, metarule.Errorf(metarule.EINVALID, "failed to parse HTML: %v", err)
	}

	return &Document{doc: doc, html: html}, nil
}

// Select returns the nodes matching selector in document order.
// An invalid selector matches nothing.
func (d *Document) Select(selector string) []metarule.Node {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}

	found := d.doc.FindMatcher(sel)
	nodes := make([]metarule.Node, 0, found.Length())
	found.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &Node{sel: s})
	})
	return nodes
}

// HTML returns the markup the document was parsed from.
func (d *Document) HTML() string {
	return d.html
}

// Ensure Node implements metarule.Node at compile time.
var _ metarule.Node = (*Node)(nil)

// Node is a single element of a Document.
type Node struct {
	sel *goquery.Selection
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

// Text returns the combined text of the node and its descendants.
func (n *Node) Text() string {
	return n.sel.Text()
}

// InnerHTML returns the node's inner HTML. The body of a script or style
// element is returned verbatim.
func (n *Node) InnerHTML() (string, bool) {
	if n.sel.Is("script, style") {
		return n.sel.Text(), true
	}
	html, err := n.sel.Html()
	if err != nil {
		return "", false
	}
	return html, true
}
