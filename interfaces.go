package lumen

import (
	"context"

	"github.com/a-h/templ"

	"github.com/lumen-ui/lumen/lib/dom"
)

// Renderer is implemented by components to produce their template output.
// Called on every update; returning nil skips rendering for that cycle
// (not an error).
//
//	func (c *Counter) Render(ctx context.Context) templ.Component {
//	    return counterTemplate(c.Int("count"))
//	}
type Renderer interface {
	Render(ctx context.Context) templ.Component
}

// RenderRootFactory is implemented by components that need a render target
// other than the default open shadow root — rendering into the host element
// itself, for example. A component that overrides this and returns something
// that is not a shadow root takes over its own styling strategy: resolved
// styles are not applied automatically.
type RenderRootFactory interface {
	CreateRenderRoot() dom.Container
}

// RenderOptions accompany a render call into a target.
type RenderOptions struct {
	// ScopeName is the component's tag name, used for style-scoping
	// coordination.
	ScopeName string
	// EventContext is the object against which declared event bindings
	// resolve (the component instance).
	EventContext any
}

// Engine is the templating primitive: diff/patch target's children to match
// the rendered description. Only the engine-owned child range is touched;
// nodes appended outside a render (fallback style elements) survive.
type Engine interface {
	Render(ctx context.Context, description templ.Component, target dom.Container, opts RenderOptions) error
}

// ScopingShim is the legacy-polyfill scoping interface. When present and
// active it owns scoped style injection entirely, including timing and
// placement.
type ScopingShim interface {
	// Active reports whether the shim is emulating isolation. A present but
	// inactive shim (native isolation available underneath) still receives
	// RestyleHost notifications but not ScopeStyles.
	Active() bool
	// ScopeStyles injects the style texts scoped under the component's tag
	// name.
	ScopeStyles(texts []string, scope string)
	// RestyleHost re-applies scoped styling bookkeeping for a host that was
	// re-attached to a document after its first update.
	RestyleHost(host *dom.Element, scope string)
}

// Platform is the capability probe consumed at style application time.
// Injected rather than sniffed so strategy selection is decidable in tests
// without a real rendering host.
type Platform interface {
	// SupportsShadowRoot reports whether the native isolation-boundary
	// constructor exists. Without it, styling logic does not engage at all.
	SupportsShadowRoot() bool
	// SupportsAdoptedSheets reports whether render targets carry a
	// constructable-stylesheet adoption slot.
	SupportsAdoptedSheets() bool
	// Shim returns the scoping shim, or nil when absent.
	Shim() ScopingShim
}
