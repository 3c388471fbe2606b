// Package dom provides the minimal host-tree substrate that lumen renders
// into: documents, elements, shadow roots with an adopted-stylesheet slot,
// and selector queries. Nodes wrap golang.org/x/net/html nodes so rendered
// markup and queried subtrees stay interoperable with the wider HTML
// ecosystem.
package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Handler is an event callback bound to a node within a container.
type Handler func(Event)

// Event is delivered to handlers by Dispatch.
type Event struct {
	Type   string
	Target *html.Node
	Data   any
}

// Container is a node whose child list can be managed directly: a regular
// element or a shadow root. The template engine owns a contiguous range of a
// container's children; anything else (fallback style elements, manually
// appended nodes) is left alone.
type Container interface {
	AppendChild(n *html.Node)
	InsertBefore(n, ref *html.Node)
	RemoveChild(n *html.Node)
	ChildNodes() []*html.Node
	Document() *Document

	// Bind registers an event handler for a node in this container's
	// subtree. HandlerFor returns the bound handler, or nil.
	Bind(n *html.Node, event string, h Handler)
	HandlerFor(n *html.Node, event string) Handler

	// SetScope records the style-scope name the last render was performed
	// under. Scoping shims and tests read it; the container itself does not
	// interpret it.
	SetScope(name string)
	Scope() string
}

// Document is a detached HTML document with the usual head/body split.
type Document struct {
	root *html.Node
	head *Element
	body *Element
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	doc := &Document{
		root: &html.Node{Type: html.ElementNode, Data: "html", DataAtom: atom.Html},
	}
	doc.head = doc.adopt(&html.Node{Type: html.ElementNode, Data: "head", DataAtom: atom.Head})
	doc.body = doc.adopt(&html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body})
	doc.root.AppendChild(doc.head.node)
	doc.root.AppendChild(doc.body.node)
	return doc
}

// Head returns the document head element.
func (d *Document) Head() *Element { return d.head }

// Body returns the document body element.
func (d *Document) Body() *Element { return d.body }

// CreateElement creates a detached element owned by this document.
func (d *Document) CreateElement(tag string) *Element {
	return d.adopt(&html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	})
}

// CreateText creates a detached text node.
func (d *Document) CreateText(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

func (d *Document) adopt(n *html.Node) *Element {
	return &Element{node: n, doc: d}
}

// Element wraps an html.Node and adds the container surface plus shadow-root
// attachment.
type Element struct {
	node     *html.Node
	doc      *Document
	shadow   *ShadowRoot
	scope    string
	handlers handlerTable
}

// Node returns the wrapped html node.
func (e *Element) Node() *html.Node { return e.node }

// Document returns the owning document.
func (e *Element) Document() *Document { return e.doc }

// TagName returns the element's tag name.
func (e *Element) TagName() string { return e.node.Data }

// SetAttribute sets or replaces an attribute.
func (e *Element) SetAttribute(key, val string) {
	for i := range e.node.Attr {
		if e.node.Attr[i].Key == key {
			e.node.Attr[i].Val = val
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: val})
}

// Attribute returns an attribute value and whether it was present.
func (e *Element) Attribute(key string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetText replaces the element's children with a single text node.
func (e *Element) SetText(text string) {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	e.node.AppendChild(e.doc.CreateText(text))
}

// Text returns the concatenated text content of the element's subtree.
func (e *Element) Text() string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return sb.String()
}

// AppendChild appends a detached node to the element.
func (e *Element) AppendChild(n *html.Node) { e.node.AppendChild(n) }

// InsertBefore inserts n before ref. A nil ref appends.
func (e *Element) InsertBefore(n, ref *html.Node) {
	if ref == nil {
		e.node.AppendChild(n)
		return
	}
	e.node.InsertBefore(n, ref)
}

// RemoveChild detaches a direct child.
func (e *Element) RemoveChild(n *html.Node) { e.node.RemoveChild(n) }

// ChildNodes returns the element's direct children in order.
func (e *Element) ChildNodes() []*html.Node { return childNodes(e.node) }

// Bind registers an event handler for a node in this element's subtree.
func (e *Element) Bind(n *html.Node, event string, h Handler) { e.handlers.bind(n, event, h) }

// HandlerFor returns the handler bound for (node, event), or nil.
func (e *Element) HandlerFor(n *html.Node, event string) Handler {
	return e.handlers.handlerFor(n, event)
}

// SetScope records the style-scope name for this element.
func (e *Element) SetScope(name string) { e.scope = name }

// Scope returns the recorded style-scope name.
func (e *Element) Scope() string { return e.scope }

// Dispatch fires the handler bound for (target, event type) in the given
// container. It reports whether a handler ran.
func Dispatch(c Container, ev Event) bool {
	h := c.HandlerFor(ev.Target, ev.Type)
	if h == nil {
		return false
	}
	h(ev)
	return true
}

// InnerHTML serializes a container's children to markup.
func InnerHTML(c Container) string {
	var sb strings.Builder
	for _, n := range c.ChildNodes() {
		html.Render(&sb, n)
	}
	return sb.String()
}

// OuterHTML serializes an element including its own tag.
func OuterHTML(e *Element) string {
	var sb strings.Builder
	html.Render(&sb, e.node)
	return sb.String()
}

func childNodes(parent *html.Node) []*html.Node {
	var out []*html.Node
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// handlerTable stores event handlers per (node, event type).
type handlerTable struct {
	m map[*html.Node]map[string]Handler
}

func (t *handlerTable) bind(n *html.Node, event string, h Handler) {
	if t.m == nil {
		t.m = make(map[*html.Node]map[string]Handler)
	}
	byEvent := t.m[n]
	if byEvent == nil {
		byEvent = make(map[string]Handler)
		t.m[n] = byEvent
	}
	byEvent[event] = h
}

func (t *handlerTable) handlerFor(n *html.Node, event string) Handler {
	return t.m[n][event]
}
