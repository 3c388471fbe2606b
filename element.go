package lumen

import (
	"context"

	"github.com/a-h/templ"

	"github.com/lumen-ui/lumen/lib/dom"
)

// Element is the base type embedded by user components. It pairs the
// reactive core with a render root and component-scoped styling.
//
// Components embed *Element to gain the lifecycle; the embedding pattern
// promotes its methods directly onto the user's component type, and a host
// overrides a lifecycle step by shadowing the method and calling the
// embedded version first:
//
//	type Counter struct {
//	    *lumen.Element
//	}
//
//	func NewCounter(reg *lumen.Registry) *Counter {
//	    return &Counter{Element: lumen.NewElement(reg.Type("x-counter"))}
//	}
//
//	func (c *Counter) Render(ctx context.Context) templ.Component {
//	    return counterTemplate(c.Int("count"))
//	}
type Element struct {
	ReactiveElement

	typ      *ComponentType
	host     any
	hostNode *dom.Element

	renderRoot           dom.Container
	pendingStyleFallback bool
	strategy             StyleStrategy
}

// NewElement creates the base element for a component of the given type.
func NewElement(t *ComponentType) *Element {
	if t == nil {
		panic("lumen: NewElement requires a defined component type")
	}
	return &Element{typ: t}
}

// Host is satisfied by any type embedding *Element.
type Host interface {
	base() *Element
}

func (e *Element) base() *Element { return e }

// SetHost records the concrete component embedding this element, so
// lifecycle hooks (Render, CreateRenderRoot) dispatch to the outermost type.
// Mount calls this; set it manually only when driving the lifecycle by hand.
func (e *Element) SetHost(host any) { e.host = host }

// Type returns the component's type.
func (e *Element) Type() *ComponentType { return e.typ }

// HostNode returns the component's host element, or nil before Mount.
func (e *Element) HostNode() *dom.Element { return e.hostNode }

// RenderRoot returns the isolated rendering target, created once at
// initialize and never replaced.
func (e *Element) RenderRoot() dom.Container { return e.renderRoot }

// Strategy returns the style application strategy selected at initialize.
func (e *Element) Strategy() StyleStrategy { return e.strategy }

// Platform returns the capability probe for this component's registry.
func (e *Element) Platform() Platform { return e.typ.reg.platform }

// Mount attaches a component under parent: it creates the host element named
// after the component's type, appends it, runs Initialize, and fires
// ConnectedCallback (which schedules the first update). The caller flushes
// the registry's scheduler to run updates.
func Mount(parent dom.Container, host Host) *dom.Element {
	e := host.base()
	if e.host == nil {
		e.SetHost(host)
	}
	doc := parent.Document()
	hostEl := doc.CreateElement(e.typ.name)
	parent.AppendChild(hostEl.Node())
	e.hostNode = hostEl
	lc, ok := e.host.(Lifecycle)
	if !ok {
		lc = e
	}
	e.bind(lc, e.typ.reg.scheduler)
	e.self.Initialize()
	e.self.ConnectedCallback()
	return hostEl
}

// Initialize creates the render root and, when the root is a native
// isolation boundary on a platform that has one, applies the type's resolved
// styles. Runs once, before the first update.
func (e *Element) Initialize() {
	e.ReactiveElement.Initialize()

	if f, ok := e.host.(RenderRootFactory); ok {
		e.renderRoot = f.CreateRenderRoot()
	} else {
		e.renderRoot = e.CreateRenderRoot()
	}

	if sr, ok := e.renderRoot.(*dom.ShadowRoot); ok && e.Platform().SupportsShadowRoot() {
		e.adoptStyles(sr)
	}
}

// CreateRenderRoot is the default render root factory: an open shadow root
// on the host element. On platforms without native isolation this fails
// outright — such hosts must override CreateRenderRoot (and own their
// styling).
func (e *Element) CreateRenderRoot() dom.Container {
	if !e.Platform().SupportsShadowRoot() {
		panic("lumen: platform cannot attach a shadow root; override CreateRenderRoot")
	}
	return e.hostNode.AttachShadow(dom.ShadowRootInit{Mode: dom.ShadowOpen})
}

// adoptStyles applies the type's resolved styles to the shadow root,
// selecting exactly one strategy by capability priority: scoping shim,
// constructable-stylesheet adoption, deferred style-element fallback.
func (e *Element) adoptStyles(sr *dom.ShadowRoot) {
	styles := e.typ.reg.ResolveStyles(e.typ)
	if len(styles) == 0 {
		return
	}

	p := e.Platform()
	switch {
	case p.Shim() != nil && p.Shim().Active():
		texts := make([]string, len(styles))
		for i, s := range styles {
			texts[i] = s.Text()
		}
		p.Shim().ScopeStyles(texts, e.typ.name)
		e.strategy = StyleStrategyShim
	case p.SupportsAdoptedSheets():
		// Every resolved style must carry a native handle here; a missing
		// handle is an environment bug and fails at the platform boundary.
		sheets := make([]*dom.Stylesheet, len(styles))
		for i, s := range styles {
			sheets[i] = s.Sheet()
		}
		sr.SetAdoptedSheets(sheets)
		e.strategy = StyleStrategyAdopt
	default:
		e.pendingStyleFallback = true
		e.strategy = StyleStrategyFallback
	}

	e.typ.reg.log.Debug().
		Str("type", e.typ.name).
		Stringer("strategy", e.strategy).
		Msg("applied styles")
}

// Update runs one reactive update cycle: base bookkeeping, then the host's
// render hook into the render root, then any pending style fallback. The
// fallback appends its style elements strictly after the rendered content so
// they win the cascade, and it runs even when the render hook produced
// nothing.
func (e *Element) Update(ctx context.Context, changed ChangedProperties) {
	e.ReactiveElement.Update(ctx, changed)

	var description templ.Component
	if r, ok := e.host.(Renderer); ok {
		description = r.Render(ctx)
	}
	if description != nil {
		err := e.typ.reg.engine.Render(ctx, description, e.renderRoot, RenderOptions{
			ScopeName:    e.typ.name,
			EventContext: e.host,
		})
		if err != nil {
			e.typ.reg.log.Error().Err(err).Str("type", e.typ.name).Msg("render failed")
		}
	}

	if e.pendingStyleFallback {
		e.pendingStyleFallback = false
		doc := e.hostNode.Document()
		for _, s := range e.typ.reg.ResolveStyles(e.typ) {
			styleEl := doc.CreateElement("style")
			styleEl.SetText(s.Text())
			e.renderRoot.AppendChild(styleEl.Node())
		}
	}
}

// ConnectedCallback handles (re-)attachment to a document. After the first
// update has completed, a present scoping shim is notified so it can rebuild
// whatever per-host bookkeeping a tree move invalidated; before the first
// update this is skipped, since first-update styling covers it.
func (e *Element) ConnectedCallback() {
	e.ReactiveElement.ConnectedCallback()
	if e.HasUpdated() {
		if shim := e.Platform().Shim(); shim != nil {
			shim.RestyleHost(e.hostNode, e.typ.name)
		}
	}
}
