package dom

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ShadowMode controls whether a shadow root is reachable from its host.
type ShadowMode string

const (
	// ShadowOpen roots are returned by Element.Shadow.
	ShadowOpen ShadowMode = "open"
	// ShadowClosed roots are only reachable through the reference returned
	// by AttachShadow.
	ShadowClosed ShadowMode = "closed"
)

// ShadowRootInit configures AttachShadow.
type ShadowRootInit struct {
	Mode ShadowMode
}

// ShadowRoot is an isolated subtree attached to a host element. It owns its
// own child list (hidden from the host's children) and carries the
// adopted-stylesheet slot used by constructable-stylesheet styling.
type ShadowRoot struct {
	host     *Element
	mode     ShadowMode
	frag     *html.Node
	adopted  []*Stylesheet
	scope    string
	handlers handlerTable
}

// AttachShadow creates the element's shadow root. Attaching twice is a
// programming error and panics, matching host-platform behavior.
func (e *Element) AttachShadow(init ShadowRootInit) *ShadowRoot {
	if e.shadow != nil {
		panic("dom: shadow root already attached to <" + e.TagName() + ">")
	}
	mode := init.Mode
	if mode == "" {
		mode = ShadowOpen
	}
	sr := &ShadowRoot{
		host: e,
		mode: mode,
		frag: &html.Node{Type: html.ElementNode, Data: "template", DataAtom: atom.Template},
	}
	e.shadow = sr
	return sr
}

// Shadow returns the element's open shadow root, or nil if none is attached
// or the root is closed.
func (e *Element) Shadow() *ShadowRoot {
	if e.shadow != nil && e.shadow.mode == ShadowClosed {
		return nil
	}
	return e.shadow
}

// Host returns the element this root is attached to.
func (sr *ShadowRoot) Host() *Element { return sr.host }

// Mode returns the root's open/closed mode.
func (sr *ShadowRoot) Mode() ShadowMode { return sr.mode }

// Document returns the host element's document.
func (sr *ShadowRoot) Document() *Document { return sr.host.doc }

// SetAdoptedSheets assigns the root's adopted stylesheets, replacing any
// previous assignment. Sheets apply in slice order; later sheets win.
func (sr *ShadowRoot) SetAdoptedSheets(sheets []*Stylesheet) { sr.adopted = sheets }

// AdoptedSheets returns the currently adopted stylesheets.
func (sr *ShadowRoot) AdoptedSheets() []*Stylesheet { return sr.adopted }

// AppendChild appends a detached node to the shadow root.
func (sr *ShadowRoot) AppendChild(n *html.Node) { sr.frag.AppendChild(n) }

// InsertBefore inserts n before ref. A nil ref appends.
func (sr *ShadowRoot) InsertBefore(n, ref *html.Node) {
	if ref == nil {
		sr.frag.AppendChild(n)
		return
	}
	sr.frag.InsertBefore(n, ref)
}

// RemoveChild detaches a direct child.
func (sr *ShadowRoot) RemoveChild(n *html.Node) { sr.frag.RemoveChild(n) }

// ChildNodes returns the shadow root's direct children in order.
func (sr *ShadowRoot) ChildNodes() []*html.Node { return childNodes(sr.frag) }

// Bind registers an event handler for a node in this root's subtree.
func (sr *ShadowRoot) Bind(n *html.Node, event string, h Handler) { sr.handlers.bind(n, event, h) }

// HandlerFor returns the handler bound for (node, event), or nil.
func (sr *ShadowRoot) HandlerFor(n *html.Node, event string) Handler {
	return sr.handlers.handlerFor(n, event)
}

// SetScope records the style-scope name for this root.
func (sr *ShadowRoot) SetScope(name string) { sr.scope = name }

// Scope returns the recorded style-scope name.
func (sr *ShadowRoot) Scope() string { return sr.scope }
