package lumen

// ResolveStyles computes the ordered, de-duplicated style list that applies
// to instances of t, respecting the inheritance chain.
//
// The nearest type in the chain (starting at t itself) that declares its own
// styles is the declaring type; its declaration alone produces the list — a
// subtype's declaration fully replaces its ancestors' rather than merging.
// The declaration is read exactly once, flattened to its pre-order leaf
// traversal, and de-duplicated by identity with last-occurrence-wins
// ordering, so a style repeated later in the sequence keeps its later
// (higher-precedence) cascade position.
//
// The result is cached per exact type together with the declaring type that
// produced it. A cached list is reused until the nearest declaring type for
// t changes (a type closer to t gains its own declaration via SetStyles), at
// which point it is stale and recomputed. The returned slice is shared and
// must not be mutated.
func (reg *Registry) ResolveStyles(t *ComponentType) []*Style {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	declaring := closestDeclaring(t)
	if entry, ok := reg.styleCache[t]; ok && entry.declaring == declaring {
		return entry.resolved
	}

	var resolved []*Style
	if declaring != nil {
		if spec := declaring.readStyles(); spec != nil {
			resolved = dedupeStyles(flattenStyles(spec, nil))
		}
	}
	reg.styleCache[t] = &styleCacheEntry{resolved: resolved, declaring: declaring}

	declaringName := ""
	if declaring != nil {
		declaringName = declaring.name
	}
	reg.log.Debug().
		Str("type", t.name).
		Str("declaring", declaringName).
		Int("styles", len(resolved)).
		Msg("resolved styles")

	return resolved
}

// closestDeclaring walks the parent chain from t and returns the first type
// with its own style declaration, or nil. Caller holds reg.mu.
func closestDeclaring(t *ComponentType) *ComponentType {
	for c := t; c != nil; c = c.parent {
		if c.declaresOwnStyles() {
			return c
		}
	}
	return nil
}
