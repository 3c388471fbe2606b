package lumen

import (
	"context"
	"strings"

	"github.com/lumen-ui/lumen/lib/dom"
)

// TestResult holds the observable output of mounting a component for
// testing: the render root's markup, the selected style strategy, and the
// texts of any fallback style elements.
type TestResult struct {
	HTML       string
	Strategy   StyleStrategy
	StyleTexts []string

	Host *dom.Element
	Root dom.Container
}

// HTMLContains reports whether the rendered markup contains s.
func (tr *TestResult) HTMLContains(s string) bool {
	return strings.Contains(tr.HTML, s)
}

// QueryCount returns how many nodes in the render root match the selector.
func (tr *TestResult) QueryCount(selector string) int {
	return len(dom.Query(tr.Root, selector))
}

// TestMount mounts a component into a fresh spot under the document body,
// flushes the scheduler through the first update, and captures the result.
//
// Use this for unit tests of rendering and styling when you drive property
// changes directly:
//
//	result := lumen.TestMount(doc, comp)
//	if !result.HTMLContains("<p>X</p>") {
//	    t.Fatal("missing rendered content")
//	}
func TestMount(doc *dom.Document, host Host) *TestResult {
	hostEl := Mount(doc.Body(), host)
	e := host.base()
	e.typ.reg.scheduler.Flush(context.Background())
	return capture(hostEl, e)
}

// TestUpdate flushes the component's scheduler and re-captures the result
// after property changes:
//
//	comp.SetProperty("count", 2)
//	result = lumen.TestUpdate(comp)
func TestUpdate(host Host) *TestResult {
	e := host.base()
	e.typ.reg.scheduler.Flush(context.Background())
	return capture(e.hostNode, e)
}

func capture(hostEl *dom.Element, e *Element) *TestResult {
	tr := &TestResult{
		Strategy: e.strategy,
		Host:     hostEl,
		Root:     e.renderRoot,
	}
	if e.renderRoot != nil {
		tr.HTML = dom.InnerHTML(e.renderRoot)
		for _, n := range dom.Query(e.renderRoot, "style") {
			if n.FirstChild != nil {
				tr.StyleTexts = append(tr.StyleTexts, n.FirstChild.Data)
			} else {
				tr.StyleTexts = append(tr.StyleTexts, "")
			}
		}
	}
	return tr
}
