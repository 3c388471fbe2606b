// Package scoping emulates style isolation for hosts without a native
// boundary. The shim rewrites component styles so their selectors only match
// inside the component's tag, then owns their placement in the document
// head. It stands in for the legacy polyfill layer: lumen hands it style
// text and a scope name and otherwise stays out of the way.
package scoping

import (
	"strings"
	"sync"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"

	"github.com/lumen-ui/lumen/lib/dom"
)

// Shim scopes component styles into a document's head.
type Shim struct {
	mu     sync.Mutex
	doc    *dom.Document
	scopes map[string]*dom.Element
	native bool
}

// New creates a shim that injects scoped styles into doc's head.
func New(doc *dom.Document) *Shim {
	return &Shim{doc: doc, scopes: make(map[string]*dom.Element)}
}

// NewOverNative creates a present-but-inactive shim: the host has native
// isolation underneath, so the shim only tracks bookkeeping notifications.
func NewOverNative(doc *dom.Document) *Shim {
	s := New(doc)
	s.native = true
	return s
}

// Active reports whether the shim is emulating isolation.
func (s *Shim) Active() bool { return !s.native }

// ScopeStyles rewrites the style texts so they apply only under the scope's
// tag name and installs them as a single style element in the document head.
// Repeated calls for the same scope replace its element in place.
func (s *Shim) ScopeStyles(texts []string, scope string) {
	var sb strings.Builder
	for _, text := range texts {
		sb.WriteString(scopeCSS(text, scope))
	}
	scoped := sb.String()

	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.scopes[scope]
	if !ok {
		el = s.doc.CreateElement("style")
		el.SetAttribute("data-scope", scope)
		s.scopes[scope] = el
		s.doc.Head().AppendChild(el.Node())
	}
	el.SetText(scoped)
}

// RestyleHost re-attaches the scope's style element if a tree move detached
// it from the head. Hosts call this on reconnection after the first update.
func (s *Shim) RestyleHost(host *dom.Element, scope string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.scopes[scope]
	if !ok {
		return
	}
	if el.Node().Parent == nil {
		s.doc.Head().AppendChild(el.Node())
	}
}

// StyleTextFor returns the scoped CSS currently installed for a scope.
func (s *Shim) StyleTextFor(scope string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if el, ok := s.scopes[scope]; ok {
		return el.Text()
	}
	return ""
}

// scopeCSS rewrites every selector in the CSS text to match only inside the
// scope tag: ":host" becomes the tag itself, anything else is prefixed as a
// descendant. Conditional at-rules (@media and friends) are rewritten
// recursively; other at-rules pass through untouched.
func scopeCSS(text, scope string) string {
	sheet, err := parser.Parse(text)
	if err != nil || sheet == nil {
		return text
	}
	var sb strings.Builder
	for _, rule := range sheet.Rules {
		writeScopedRule(&sb, rule, scope)
	}
	return sb.String()
}

func writeScopedRule(sb *strings.Builder, rule *css.Rule, scope string) {
	switch rule.Kind {
	case css.QualifiedRule:
		sels := make([]string, 0, len(rule.Selectors))
		for _, sel := range rule.Selectors {
			sels = append(sels, scopeSelector(sel, scope))
		}
		sb.WriteString(strings.Join(sels, ", "))
		sb.WriteString(" { ")
		for _, d := range rule.Declarations {
			sb.WriteString(d.String())
			sb.WriteString(" ")
		}
		sb.WriteString("}\n")
	case css.AtRule:
		if len(rule.Rules) == 0 {
			// Non-conditional at-rule (@import, @charset): pass through.
			sb.WriteString(rule.String())
			sb.WriteString("\n")
			return
		}
		sb.WriteString(rule.Name)
		sb.WriteString(" ")
		sb.WriteString(rule.Prelude)
		sb.WriteString(" {\n")
		for _, inner := range rule.Rules {
			writeScopedRule(sb, inner, scope)
		}
		sb.WriteString("}\n")
	}
}

func scopeSelector(sel, scope string) string {
	sel = strings.TrimSpace(sel)
	switch {
	case sel == ":host":
		return scope
	case strings.HasPrefix(sel, ":host(") && strings.HasSuffix(sel, ")"):
		inner := sel[len(":host(") : len(sel)-1]
		return scope + inner
	default:
		return scope + " " + sel
	}
}
