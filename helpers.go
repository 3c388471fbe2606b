package lumen

import (
	"github.com/lumen-ui/lumen/lib/dom"
)

// RootHTML serializes a mounted component's render root to markup.
func RootHTML(host Host) string {
	e := host.base()
	if e.renderRoot == nil {
		return ""
	}
	return dom.InnerHTML(e.renderRoot)
}

// Fire dispatches an event to the first node in the component's render root
// matching the selector. It reports whether a handler ran. Handlers are
// bound by the template engine from on-<event> attributes:
//
//	<button on-click="HandleIncrement">+</button>
//	...
//	lumen.Fire(counter, "button", "click")
func Fire(host Host, selector, event string) bool {
	e := host.base()
	if e.renderRoot == nil {
		return false
	}
	target := dom.QueryFirst(e.renderRoot, selector)
	if target == nil {
		return false
	}
	return dom.Dispatch(e.renderRoot, dom.Event{Type: event, Target: target})
}
