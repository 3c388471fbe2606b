package lumen

import (
	"context"
	"testing"

	"github.com/a-h/templ"

	"github.com/lumen-ui/lumen/lib/dom"
)

func TestEngineReplacesOnlyItsOwnRange(t *testing.T) {
	engine := NewTemplateEngine()
	doc := dom.NewDocument()
	target := doc.CreateElement("div")
	ctx := context.Background()

	if err := engine.Render(ctx, templ.Raw("<p>one</p><p>two</p>"), target, RenderOptions{}); err != nil {
		t.Fatal(err)
	}

	// A node appended outside the engine, after the rendered range.
	marker := doc.CreateElement("style")
	marker.SetText("m{}")
	target.AppendChild(marker.Node())

	if err := engine.Render(ctx, templ.Raw("<p>three</p>"), target, RenderOptions{}); err != nil {
		t.Fatal(err)
	}

	kids := target.ChildNodes()
	if len(kids) != 2 {
		t.Fatalf("children = %d, want rendered p + marker", len(kids))
	}
	if kids[0].Data != "p" || kids[0].FirstChild.Data != "three" {
		t.Errorf("first child = %v, want <p>three</p>", kids[0])
	}
	if kids[1] != marker.Node() {
		t.Error("marker node lost its trailing position")
	}
}

func TestEngineRecordsScope(t *testing.T) {
	engine := NewTemplateEngine()
	doc := dom.NewDocument()
	target := doc.CreateElement("div")

	err := engine.Render(context.Background(), templ.Raw("<p>x</p>"), target, RenderOptions{ScopeName: "x-thing"})
	if err != nil {
		t.Fatal(err)
	}
	if got := target.Scope(); got != "x-thing" {
		t.Errorf("scope = %q, want x-thing", got)
	}
}

type clickComp struct {
	*Element
	clicks int
}

func (c *clickComp) Render(ctx context.Context) templ.Component {
	return templ.Raw(`<button on-click="HandleClick">+</button>`)
}

func (c *clickComp) HandleClick(ev dom.Event) { c.clicks++ }

func TestEngineBindsEventHandlers(t *testing.T) {
	reg := NewRegistry()
	reg.Define("x-click")

	c := &clickComp{Element: NewElement(reg.Type("x-click"))}
	c.SetHost(c)
	TestMount(dom.NewDocument(), c)

	if !Fire(c, "button", "click") {
		t.Fatal("no handler bound for button click")
	}
	if c.clicks != 1 {
		t.Errorf("clicks = %d, want 1", c.clicks)
	}

	if Fire(c, "button", "hover") {
		t.Error("handler fired for unbound event")
	}
}

func TestEngineIgnoresUnknownHandlerNames(t *testing.T) {
	engine := NewTemplateEngine()
	doc := dom.NewDocument()
	target := doc.CreateElement("div")

	c := &clickComp{}
	err := engine.Render(context.Background(), templ.Raw(`<button on-click="NoSuchMethod">x</button>`), target, RenderOptions{EventContext: c})
	if err != nil {
		t.Fatal(err)
	}
	btn := dom.QueryFirst(target, "button")
	if target.HandlerFor(btn, "click") != nil {
		t.Error("handler bound for a method that does not exist")
	}
}
