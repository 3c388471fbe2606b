package lumen

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lumen-ui/lumen/lib/encoding"
)

// Registry manages component type definitions and the per-type resolved
// style cache. Types are registered explicitly with Define; the registry
// owns the platform capability probe, the template engine, and the update
// scheduler shared by every instance it produces.
type Registry struct {
	mu         sync.RWMutex
	types      map[string]*ComponentType
	styleCache map[*ComponentType]*styleCacheEntry
	platform   Platform
	engine     Engine
	encoder    *encoding.Encoder
	scheduler  *Scheduler
	log        zerolog.Logger
}

type styleCacheEntry struct {
	resolved  []*Style
	declaring *ComponentType
}

// RegistryOption configures a Registry at creation time.
type RegistryOption func(*Registry)

// WithPlatform injects the capability probe used for style application
// strategy selection. Defaults to NativePlatform.
func WithPlatform(p Platform) RegistryOption {
	return func(reg *Registry) { reg.platform = p }
}

// WithEngine injects the template engine. Defaults to NewTemplateEngine.
func WithEngine(e Engine) RegistryOption {
	return func(reg *Registry) { reg.engine = e }
}

// WithLogger attaches a logger for registry diagnostics (style cache
// recomputation, strategy selection). Logging is disabled by default.
func WithLogger(log zerolog.Logger) RegistryOption {
	return func(reg *Registry) { reg.log = log }
}

// WithStateKey sets the key for state snapshot encoding. Snapshots are
// signed by default and encrypted for sensitive types. Without a key,
// EncodeState and DecodeState fail.
func WithStateKey(key []byte) RegistryOption {
	return func(reg *Registry) {
		enc, err := encoding.NewEncoder(key)
		if err != nil {
			panic(fmt.Sprintf("lumen: failed to create state encoder: %v", err))
		}
		reg.encoder = enc
	}
}

// NewRegistry creates a component registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	reg := &Registry{
		types:      make(map[string]*ComponentType),
		styleCache: make(map[*ComponentType]*styleCacheEntry),
		platform:   NativePlatform(),
		scheduler:  NewScheduler(),
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(reg)
	}
	if reg.engine == nil {
		reg.engine = NewTemplateEngine()
	}
	return reg
}

// Scheduler returns the registry's update scheduler. Hosts flush it once per
// update tick.
func (reg *Registry) Scheduler() *Scheduler { return reg.scheduler }

// Platform returns the registry's capability probe.
func (reg *Registry) Platform() Platform { return reg.platform }

// Define registers a component type under its tag name.
// Panics on a duplicate tag name or a parent from a different registry.
func (reg *Registry) Define(name string, opts ...TypeOption) *ComponentType {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if _, exists := reg.types[name]; exists {
		panic(fmt.Sprintf("lumen: tag name collision for %q", name))
	}
	t := &ComponentType{reg: reg, name: name}
	for _, opt := range opts {
		opt(t)
	}
	if t.parent != nil && t.parent.reg != reg {
		panic(fmt.Sprintf("lumen: parent of %q belongs to a different registry", name))
	}
	reg.types[name] = t
	return t
}

// Type returns a registered component type by tag name, or nil.
func (reg *Registry) Type(name string) *ComponentType {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return reg.types[name]
}

// ComponentType describes a component class in a single-inheritance chain:
// its tag name, its parent type, and its own style declaration (if any).
// Style declarations are resolved lazily and cached by the registry; see
// ResolveStyles.
type ComponentType struct {
	reg       *Registry
	name      string
	parent    *ComponentType
	sensitive bool

	hasStyles bool
	styles    any
	stylesFn  func() any
}

// TypeOption configures a ComponentType at definition time.
type TypeOption func(*ComponentType)

// WithParent sets the type's parent in the inheritance chain.
func WithParent(parent *ComponentType) TypeOption {
	return func(t *ComponentType) { t.parent = parent }
}

// WithStyles declares the type's own styles: a *Style, or an arbitrarily
// nested sequence of styles and sequences (see Group).
func WithStyles(spec any) TypeOption {
	return func(t *ComponentType) {
		t.hasStyles = true
		t.styles = spec
		t.stylesFn = nil
	}
}

// WithStylesFunc declares the type's styles through a thunk. The thunk is
// invoked exactly once per cache computation, so expensive style
// construction is never repeated for instances of the same type.
func WithStylesFunc(fn func() any) TypeOption {
	return func(t *ComponentType) {
		t.hasStyles = true
		t.styles = nil
		t.stylesFn = fn
	}
}

// Name returns the type's tag name.
func (t *ComponentType) Name() string { return t.name }

// Parent returns the type's parent, or nil.
func (t *ComponentType) Parent() *ComponentType { return t.parent }

// Sensitive marks the type's state snapshots for encryption rather than
// signing. Use for components whose properties must be opaque off-host.
func (t *ComponentType) Sensitive() *ComponentType {
	t.sensitive = true
	return t
}

// SetStyles declares or replaces the type's own styles after definition.
// Cached resolutions anywhere in the chain below this type become stale and
// are recomputed on next resolve; see ResolveStyles.
func (t *ComponentType) SetStyles(spec any) {
	t.reg.mu.Lock()
	defer t.reg.mu.Unlock()
	t.hasStyles = true
	t.styles = spec
	t.stylesFn = nil
}

// declaresOwnStyles reports whether the type has its own declaration, as
// opposed to one visible through its parent chain. Caller holds reg.mu.
func (t *ComponentType) declaresOwnStyles() bool { return t.hasStyles }

// readStyles reads the type's own style specification. Reading may be
// observable (thunk declarations); the resolver calls this exactly once per
// cache computation. Caller holds reg.mu.
func (t *ComponentType) readStyles() any {
	if t.stylesFn != nil {
		return t.stylesFn()
	}
	return t.styles
}
