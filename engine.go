package lumen

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/lumen-ui/lumen/lib/dom"
)

// TemplateEngine is the default Engine: it renders the template description
// to markup, parses it, and swaps only the child range it previously
// produced for the same target. Nodes appended outside a render — fallback
// style elements in particular — keep their position after the rendered
// content across re-renders.
type TemplateEngine struct {
	mu    sync.Mutex
	parts map[dom.Container][]*html.Node
}

// NewTemplateEngine creates an engine with an empty part table.
func NewTemplateEngine() *TemplateEngine {
	return &TemplateEngine{parts: make(map[dom.Container][]*html.Node)}
}

var _ Engine = (*TemplateEngine)(nil)

// Render patches target's engine-owned children to match description.
// Event-binding attributes in the output (on-click="MethodName" and the
// like) are resolved against opts.EventContext and registered on the target.
func (te *TemplateEngine) Render(ctx context.Context, description templ.Component, target dom.Container, opts RenderOptions) error {
	var buf bytes.Buffer
	if err := description.Render(ctx, &buf); err != nil {
		return fmt.Errorf("lumen: template render: %w", err)
	}
	nodes, err := parseFragment(buf.String())
	if err != nil {
		return fmt.Errorf("lumen: template parse: %w", err)
	}

	bindEvents(target, nodes, opts.EventContext)

	te.mu.Lock()
	old := te.parts[target]
	te.parts[target] = nodes
	te.mu.Unlock()

	// The new range goes exactly where the old one was: just before the
	// node that followed it, or at the end on first render.
	var ref *html.Node
	if len(old) > 0 {
		ref = old[len(old)-1].NextSibling
	}
	for _, n := range old {
		target.RemoveChild(n)
	}
	for _, n := range nodes {
		detach(n)
		target.InsertBefore(n, ref)
	}

	if opts.ScopeName != "" {
		target.SetScope(opts.ScopeName)
	}
	return nil
}

// parseFragment parses markup into a list of detached sibling nodes.
func parseFragment(markup string) ([]*html.Node, error) {
	ctxNode := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	return html.ParseFragment(strings.NewReader(markup), ctxNode)
}

func detach(n *html.Node) {
	n.Parent = nil
	n.PrevSibling = nil
	n.NextSibling = nil
}

// bindEvents walks the rendered nodes for on-<event> attributes and binds
// the named method of the event context as the handler. Methods are looked
// up by reflection and must have the signature func(dom.Event); anything
// else is ignored.
func bindEvents(target dom.Container, nodes []*html.Node, eventContext any) {
	if eventContext == nil {
		return
	}
	ctxVal := reflect.ValueOf(eventContext)
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if !strings.HasPrefix(a.Key, "on-") || a.Val == "" {
					continue
				}
				m := ctxVal.MethodByName(a.Val)
				if !m.IsValid() {
					continue
				}
				if h, ok := m.Interface().(func(dom.Event)); ok {
					target.Bind(n, strings.TrimPrefix(a.Key, "on-"), dom.Handler(h))
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
}
