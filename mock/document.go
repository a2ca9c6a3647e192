package mock

import "github.com/fwojciec/metarule"

var _ metarule.Document = (*Document)(nil)

// Document is a mock implementation of metarule.Document.
type Document struct {
	SelectFn func(selector string) []metarule.Node
	HTMLFn   func() string
}

func (d *Document) Select(selector string) []metarule.Node {
	return d.SelectFn(selector)
}

func (d *Document) HTML() string {
	return d.HTMLFn()
}

var _ metarule.Node = (*Node)(nil)

// Node is a mock implementation of metarule.Node.
type Node struct {
	AttrFn      func(name string) (string, bool)
	TextFn      func() string
	InnerHTMLFn func() (string, bool)
}

func (n *Node) Attr(name string) (string, bool) {
	return n.AttrFn(name)
}

func (n *Node) Text() string {
	return n.TextFn()
}

func (n *Node) InnerHTML() (string, bool) {
	return n.InnerHTMLFn()
}

var _ metarule.DocumentParser = (*DocumentParser)(nil)

// DocumentParser is a mock implementation of metarule.DocumentParser.
type DocumentParser struct {
	ParseFn func(html string) (metarule.Document, error)
}

func (p *DocumentParser) Parse(html string) (metarule.Document, error) {
	return p.ParseFn(html)
}
