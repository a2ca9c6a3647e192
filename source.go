package metarule

import "strings"

// Source pulls a raw string out of a document. It returns false when the
// document does not contain it.
type Source func(doc Document) (string, bool)

// ListSource pulls a list of raw strings out of a document.
type ListSource func(doc Document) []string

// Attr returns a Source reading attribute name of the first node matching
// selector.
func Attr(selector, name string) Source {
	return func(doc Document) (string, bool) {
		node := first(doc, selector)
		if node == nil {
			return "", false
		}
		return node.Attr(name)
	}
}

// InnerHTML returns a Source reading the inner HTML of the first node
// matching selector.
func InnerHTML(selector string) Source {
	return func(doc Document) (string, bool) {
		node := first(doc, selector)
		if node == nil {
			return "", false
		}
		return node.InnerHTML()
	}
}

// Texts returns a ListSource reading the text of every node matching
// selector.
func Texts(selector string) ListSource {
	return func(doc Document) []string {
		if doc == nil {
			return nil
		}
		nodes := doc.Select(selector)
		texts := make([]string, 0, len(nodes))
		for _, n := range nodes {
			texts = append(texts, n.Text())
		}
		return texts
	}
}

// Content returns a Source yielding the main content HTML that ext finds in
// the whole document. Extraction errors and empty content yield false.
func Content(ext ContentExtractor) Source {
	return func(doc Document) (string, bool) {
		if doc == nil || ext == nil {
			return "", false
		}
		res, err := ext.Extract(doc.HTML())
		if err != nil || res == nil || strings.TrimSpace(res.ContentHTML) == "" {
			return "", false
		}
		return res.ContentHTML, true
	}
}

func first(doc Document, selector string) Node {
	if doc == nil {
		return nil
	}
	nodes := doc.Select(selector)
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}
