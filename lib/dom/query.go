package dom

import (
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Query returns all nodes in the container's subtree matching the CSS
// selector, in document order. An invalid selector matches nothing.
func Query(c Container, selector string) []*html.Node {
	sel, err := cascadia.Parse(selector)
	if err != nil {
		return nil
	}
	var out []*html.Node
	for _, child := range c.ChildNodes() {
		if sel.Match(child) {
			out = append(out, child)
		}
		out = append(out, cascadia.QueryAll(child, sel)...)
	}
	return out
}

// QueryFirst returns the first match of Query, or nil.
func QueryFirst(c Container, selector string) *html.Node {
	matches := Query(c, selector)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}
