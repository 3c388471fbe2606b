package lumen

import (
	"context"
	"reflect"
)

// ChangedProperties maps a property name to its value before the current
// update cycle.
type ChangedProperties map[string]any

// Lifecycle is the set of callbacks the scheduler drives on a component.
// Element implements it; hosts override individual methods by shadowing and
// call the embedded version first.
type Lifecycle interface {
	Initialize()
	Update(ctx context.Context, changed ChangedProperties)
	ConnectedCallback()
}

// ReactiveElement is the reactive-property core embedded (via Element) in
// every component: a property bag, the changed-property map for the pending
// update, and update scheduling. It performs no rendering; Element layers
// that on top.
type ReactiveElement struct {
	self  Lifecycle
	sched *Scheduler

	props         map[string]any
	changed       ChangedProperties
	connected     bool
	initialized   bool
	hasUpdated    bool
	updatePending bool
}

// bind wires the outermost lifecycle implementation and the scheduler.
// Called by Mount before Initialize.
func (r *ReactiveElement) bind(self Lifecycle, sched *Scheduler) {
	r.self = self
	r.sched = sched
}

// Initialize prepares the reactive state. Properties set before
// initialization survive it and are reported as changed by the first
// update. Overriding lifecycles call this first.
func (r *ReactiveElement) Initialize() {
	r.ensureMaps()
	r.initialized = true
}

func (r *ReactiveElement) ensureMaps() {
	if r.props == nil {
		r.props = make(map[string]any)
	}
	if r.changed == nil {
		r.changed = make(ChangedProperties)
	}
}

// SetProperty sets a reactive property and requests an update. The previous
// value is recorded once per update cycle, so multiple writes before a flush
// report the value the property had when the cycle began.
func (r *ReactiveElement) SetProperty(name string, value any) {
	r.ensureMaps()
	old, existed := r.props[name]
	if existed && reflect.DeepEqual(old, value) {
		return
	}
	if _, seen := r.changed[name]; !seen {
		r.changed[name] = old
	}
	r.props[name] = value
	r.RequestUpdate()
}

// Property returns a property value and whether it is set.
func (r *ReactiveElement) Property(name string) (any, bool) {
	v, ok := r.props[name]
	return v, ok
}

// Int returns an int property, or 0 when unset or of another type.
func (r *ReactiveElement) Int(name string) int {
	v, _ := r.props[name].(int)
	return v
}

// String returns a string property, or "" when unset or of another type.
func (r *ReactiveElement) String(name string) string {
	v, _ := r.props[name].(string)
	return v
}

// Properties returns a copy of the property bag.
func (r *ReactiveElement) Properties() map[string]any {
	out := make(map[string]any, len(r.props))
	for k, v := range r.props {
		out[k] = v
	}
	return out
}

// RequestUpdate enqueues this component for the next scheduler flush.
// Requesting while already pending is a no-op.
func (r *ReactiveElement) RequestUpdate() {
	if r.updatePending || r.sched == nil {
		return
	}
	r.updatePending = true
	r.sched.enqueue(r)
}

// HasUpdated reports whether at least one update has completed.
func (r *ReactiveElement) HasUpdated() bool { return r.hasUpdated }

// IsConnected reports whether the component is attached to a document.
func (r *ReactiveElement) IsConnected() bool { return r.connected }

// Update is the base update step: property bookkeeping only. Attribute
// reflection and declaration semantics live outside this core. Overriding
// lifecycles call this first.
func (r *ReactiveElement) Update(ctx context.Context, changed ChangedProperties) {}

// ConnectedCallback marks the component attached to a document and schedules
// the first update if none has completed yet. Overriding lifecycles call
// this first.
func (r *ReactiveElement) ConnectedCallback() {
	r.connected = true
	if !r.hasUpdated {
		r.RequestUpdate()
	}
}

// performUpdate runs one update cycle: snapshot and reset the changed map,
// then invoke the outermost Update.
func (r *ReactiveElement) performUpdate(ctx context.Context) {
	if !r.updatePending || !r.initialized {
		r.updatePending = false
		return
	}
	changed := r.changed
	r.changed = make(ChangedProperties)
	r.updatePending = false
	r.self.Update(ctx, changed)
	r.hasUpdated = true
}

// Scheduler serializes update callbacks for the components of a registry.
// The model is single-threaded and cooperative: lifecycle callbacks enqueue
// work, the host environment calls Flush, and one update always completes
// before the next begins. The scheduler is not safe for concurrent use.
type Scheduler struct {
	queue []*ReactiveElement
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler { return &Scheduler{} }

// Flush drains the queue, running each pending update in FIFO order.
// Updates enqueued during a flush run within the same flush.
func (s *Scheduler) Flush(ctx context.Context) {
	for len(s.queue) > 0 {
		r := s.queue[0]
		s.queue = s.queue[1:]
		r.performUpdate(ctx)
	}
}

// Pending reports the number of queued updates.
func (s *Scheduler) Pending() int { return len(s.queue) }

func (s *Scheduler) enqueue(r *ReactiveElement) {
	s.queue = append(s.queue, r)
}
