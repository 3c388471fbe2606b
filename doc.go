// Package lumen is a base for reactive components that pairs a declarative
// template description with encapsulated styling and isolated rendering.
// Given a component's properties and a render hook producing a template, it
// re-renders the component's isolated subtree whenever relevant properties
// change and applies component-scoped styles to that subtree, using native
// isolation primitives where the host platform has them and degrading
// gracefully where it doesn't.
//
// # Core Concepts
//
// Component types form a single-inheritance chain and are registered
// explicitly with a Registry:
//
//	reg := lumen.NewRegistry()
//	base := reg.Define("x-panel", lumen.WithStyles(panelCSS))
//	reg.Define("x-card", lumen.WithParent(base))
//
// Component instances embed *Element, which promotes the lifecycle onto the
// user's type. The render hook is an ordinary method returning a templ
// component; returning nil skips rendering for that cycle:
//
//	type Card struct {
//	    *lumen.Element
//	}
//
//	func (c *Card) Render(ctx context.Context) templ.Component {
//	    return cardTemplate(c.String("title"))
//	}
//
// Mount attaches an instance under a parent container, creates its render
// root (an open shadow root by default; override CreateRenderRoot to choose
// another target), and schedules the first update. Updates run when the host
// flushes the registry's scheduler — the model is single-threaded and
// cooperative, one update completing before the next begins.
//
// # Styles
//
// A type declares styles once: a single value or an arbitrarily nested
// sequence (see Group). Resolution flattens the declaration, de-duplicates
// by identity keeping each style's last occurrence, and caches the result
// per type; instances of the same type share one resolved list, and a
// subtype with no declaration of its own inherits its ancestor's resolution
// without recomputing it.
//
// How resolved styles reach the subtree is decided once per instance, at
// initialize, by capability priority: a scoping shim when one is active,
// native stylesheet adoption when the platform supports it, and otherwise
// style elements appended after the next render so they still win the
// cascade. Capabilities are injected (see Platform), not sniffed, so every
// branch is reachable in tests.
//
// # Design Rationale
//
// The system favors explicitness over magic:
//   - Explicit registration (a Registry, not package-level side effects)
//   - Explicit inheritance (WithParent, not reflection over embedded types)
//   - Explicit capability probing (an injected Platform, not feature sniffing)
//   - Explicit scheduling (the host flushes updates, nothing runs behind it)
package lumen
