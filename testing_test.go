package lumen

import (
	"testing"

	"github.com/lumen-ui/lumen/lib/dom"
)

func TestTestMountCapturesEverything(t *testing.T) {
	reg := NewRegistry(WithPlatform(TransitionalPlatform()))
	reg.Define("x-harness", WithStyles(CSS("h{}")))

	c := &markupComp{Element: NewElement(reg.Type("x-harness")), markup: `<div class="box">hi</div>`}
	c.SetHost(c)
	result := TestMount(dom.NewDocument(), c)

	if !result.HTMLContains(`class="box"`) {
		t.Errorf("HTML = %q", result.HTML)
	}
	if result.Strategy != StyleStrategyFallback {
		t.Errorf("Strategy = %v", result.Strategy)
	}
	if len(result.StyleTexts) != 1 || result.StyleTexts[0] != "h{}" {
		t.Errorf("StyleTexts = %v", result.StyleTexts)
	}
	if result.QueryCount("div.box") != 1 {
		t.Errorf("QueryCount(div.box) = %d", result.QueryCount("div.box"))
	}
	if result.Host == nil || result.Host.TagName() != "x-harness" {
		t.Error("Host element not captured")
	}
}

func TestTestUpdateReflectsChanges(t *testing.T) {
	reg := NewRegistry()
	reg.Define("x-harness2")

	c := &counterComp{Element: NewElement(reg.Type("x-harness2"))}
	c.SetHost(c)
	c.SetProperty("count", 5)
	result := TestMount(dom.NewDocument(), c)
	if !result.HTMLContains("<span>5</span>") {
		t.Fatalf("HTML = %q", result.HTML)
	}

	c.SetProperty("count", 6)
	result = TestUpdate(c)
	if !result.HTMLContains("<span>6</span>") {
		t.Fatalf("HTML after update = %q", result.HTML)
	}
}
