package lumen

// StyleStrategy identifies which style application path ran for an instance.
// Exactly one strategy (or none, for empty style lists and non-isolated
// render roots) is selected per instance, at initialize time.
type StyleStrategy int

const (
	// StyleStrategyNone: no styles to apply, or the render root is not a
	// native isolation boundary.
	StyleStrategyNone StyleStrategy = iota
	// StyleStrategyShim: style text handed to the scoping shim.
	StyleStrategyShim
	// StyleStrategyAdopt: native stylesheet handles assigned to the render
	// root's adoption slot.
	StyleStrategyAdopt
	// StyleStrategyFallback: style elements appended after the next render.
	StyleStrategyFallback
)

func (s StyleStrategy) String() string {
	switch s {
	case StyleStrategyShim:
		return "shim"
	case StyleStrategyAdopt:
		return "adopt"
	case StyleStrategyFallback:
		return "fallback"
	default:
		return "none"
	}
}

// Capabilities is a static Platform implementation.
type Capabilities struct {
	ShadowRoot    bool
	AdoptedSheets bool
	ScopeShim     ScopingShim
}

func (c Capabilities) SupportsShadowRoot() bool    { return c.ShadowRoot }
func (c Capabilities) SupportsAdoptedSheets() bool { return c.AdoptedSheets }
func (c Capabilities) Shim() ScopingShim           { return c.ScopeShim }

var _ Platform = Capabilities{}

// NativePlatform describes a fully capable host: native isolation and
// constructable stylesheets, no shim.
func NativePlatform() Capabilities {
	return Capabilities{ShadowRoot: true, AdoptedSheets: true}
}

// LegacyPlatform describes a host where isolation is emulated by a scoping
// shim.
func LegacyPlatform(shim ScopingShim) Capabilities {
	return Capabilities{ShadowRoot: true, ScopeShim: shim}
}

// TransitionalPlatform describes a host with native isolation but no
// constructable-stylesheet adoption: styles go through the deferred
// style-element fallback.
func TransitionalPlatform() Capabilities {
	return Capabilities{ShadowRoot: true}
}
