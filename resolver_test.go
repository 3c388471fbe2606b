package lumen

import "testing"

func sameList(a, b []*Style) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}

func TestResolveStylesIdempotent(t *testing.T) {
	reg := NewRegistry()
	a := reg.Define("x-a", WithStyles(Group(CSS("s1{}"), CSS("s2{}"))))

	first := reg.ResolveStyles(a)
	second := reg.ResolveStyles(a)
	if !sameList(first, second) {
		t.Error("second resolve returned a different list; cache not reused")
	}
}

func TestResolveStylesInherited(t *testing.T) {
	s1 := CSS("s1{}")
	s2 := CSS("s2{}")
	reg := NewRegistry()
	a := reg.Define("x-a", WithStyles(Group(s1, s2)))
	b := reg.Define("x-b", WithParent(a))

	got := reg.ResolveStyles(b)
	if len(got) != 2 || got[0] != s1 || got[1] != s2 {
		t.Fatalf("resolving subtype without own styles = %v, want [s1 s2]", got)
	}

	// The subtype caches its own entry; repeated resolves reuse it.
	if !sameList(got, reg.ResolveStyles(b)) {
		t.Error("subtype resolve not cached")
	}
}

func TestResolveStylesOverrideReplaces(t *testing.T) {
	s1 := CSS("s1{}")
	s2 := CSS("s2{}")
	reg := NewRegistry()
	a := reg.Define("x-a", WithStyles(s1))
	b := reg.Define("x-b", WithParent(a), WithStyles(s2))

	got := reg.ResolveStyles(b)
	if len(got) != 1 || got[0] != s2 {
		t.Fatalf("subtype declaration should fully replace, got %v", got)
	}
}

func TestResolveStylesNoDeclaration(t *testing.T) {
	reg := NewRegistry()
	a := reg.Define("x-a")
	b := reg.Define("x-b", WithParent(a))

	if got := reg.ResolveStyles(b); len(got) != 0 {
		t.Fatalf("chain without declarations resolved to %v, want empty", got)
	}
	// Cached: resolving again is still the empty result, no recompute panic.
	if got := reg.ResolveStyles(b); len(got) != 0 {
		t.Fatalf("second resolve = %v, want empty", got)
	}
}

func TestResolveStylesReadsDeclarationOnce(t *testing.T) {
	s1 := CSS("s1{}")
	reads := 0
	reg := NewRegistry()
	a := reg.Define("x-a", WithStylesFunc(func() any {
		reads++
		return Group(s1)
	}))
	reg.Define("x-b", WithParent(a))

	reg.ResolveStyles(a)
	reg.ResolveStyles(a)
	if reads != 1 {
		t.Fatalf("declaration read %d times resolving the declaring type, want 1", reads)
	}

	// Resolving the subtype reuses the recorded declaring type but computes
	// its own cache entry, so the declaration is read once more, not per
	// instance or per call.
	b := reg.Type("x-b")
	reg.ResolveStyles(b)
	reg.ResolveStyles(b)
	if reads != 2 {
		t.Fatalf("declaration read %d times in total, want 2", reads)
	}
}

func TestResolveStylesStaleWhenCloserTypeDeclares(t *testing.T) {
	s1 := CSS("s1{}")
	s2 := CSS("s2{}")
	reg := NewRegistry()
	a := reg.Define("x-a", WithStyles(s1))
	b := reg.Define("x-b", WithParent(a))
	c := reg.Define("x-c", WithParent(b))

	got := reg.ResolveStyles(c)
	if len(got) != 1 || got[0] != s1 {
		t.Fatalf("initial resolve = %v, want [s1]", got)
	}

	// An intermediate type gains its own declaration: the nearest declaring
	// type for x-c changes, so its cache is stale and must be recomputed.
	b.SetStyles(s2)
	got = reg.ResolveStyles(c)
	if len(got) != 1 || got[0] != s2 {
		t.Fatalf("post-declaration resolve = %v, want [s2]", got)
	}

	// The declaring ancestor's own cache was produced by itself and stays
	// valid.
	if gotA := reg.ResolveStyles(a); len(gotA) != 1 || gotA[0] != s1 {
		t.Fatalf("ancestor resolve = %v, want [s1]", gotA)
	}

	// And the recomputed entry is cached again.
	if !sameList(got, reg.ResolveStyles(c)) {
		t.Error("recomputed resolve not cached")
	}
}

func TestResolveStylesChainEndToEnd(t *testing.T) {
	sA := CSS("sA{}")
	reg := NewRegistry()
	a := reg.Define("x-a", WithStyles(sA))
	b := reg.Define("x-b", WithParent(a))
	c := reg.Define("x-c", WithParent(b))

	got := reg.ResolveStyles(c)
	if len(got) != 1 || got[0] != sA {
		t.Fatalf("resolve across chain = %v, want [sA]", got)
	}
	if !sameList(got, reg.ResolveStyles(c)) {
		t.Error("resolve across chain not cached")
	}
}

func TestDefineCollisionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("duplicate Define did not panic")
		}
	}()
	reg := NewRegistry()
	reg.Define("x-a")
	reg.Define("x-a")
}
