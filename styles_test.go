package lumen

import "testing"

func TestFlattenStylesDepth(t *testing.T) {
	s1 := CSS("a{}")
	s2 := CSS("b{}")
	s3 := CSS("c{}")
	s4 := CSS("d{}")

	spec := Group(s1, Group(Group(s2), Group(s3, Group(s4))))
	flat := flattenStyles(spec, nil)

	want := []*Style{s1, s2, s3, s4}
	if len(flat) != len(want) {
		t.Fatalf("len(flat) = %d, want %d", len(flat), len(want))
	}
	for i := range want {
		if flat[i] != want[i] {
			t.Errorf("flat[%d] = %q, want %q", i, flat[i].Text(), want[i].Text())
		}
	}
}

func TestFlattenStylesSingleValue(t *testing.T) {
	s := CSS("a{}")
	flat := flattenStyles(s, nil)
	if len(flat) != 1 || flat[0] != s {
		t.Fatalf("flatten of flat value = %v, want [s]", flat)
	}
}

func TestFlattenStylesSkipsNil(t *testing.T) {
	s := CSS("a{}")
	flat := flattenStyles(Group(nil, s, Group(nil)), nil)
	if len(flat) != 1 || flat[0] != s {
		t.Fatalf("flatten with nils = %v, want [s]", flat)
	}
}

func TestDedupeLastOccurrenceWins(t *testing.T) {
	s1 := CSS("s1{}")
	s2 := CSS("s2{}")
	s3 := CSS("s3{}")

	// [s1, [s2, s1], s3] flattens to [s1, s2, s1, s3]; the surviving order
	// keeps each style at its last occurrence.
	flat := flattenStyles(Group(s1, Group(s2, s1), s3), nil)
	got := dedupeStyles(flat)

	want := []*Style{s2, s1, s3}
	if len(got) != len(want) {
		t.Fatalf("len(deduped) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("deduped[%d] = %q, want %q", i, got[i].Text(), want[i].Text())
		}
	}
}

func TestDedupeByIdentityNotText(t *testing.T) {
	a := CSS("same{}")
	b := CSS("same{}")
	got := dedupeStyles([]*Style{a, b})
	if len(got) != 2 {
		t.Fatalf("styles with equal text but distinct identity deduped: %d, want 2", len(got))
	}
}

func TestStyleSheetHandle(t *testing.T) {
	s := CSS("p { color: red; }")
	sheet := s.Sheet()
	if sheet == nil {
		t.Fatal("CSS style has no native handle")
	}
	if s.Sheet() != sheet {
		t.Error("Sheet() not stable across calls")
	}
	if got := len(sheet.Rules()); got != 1 {
		t.Errorf("parsed rules = %d, want 1", got)
	}

	if TextOnly("p{}").Sheet() != nil {
		t.Error("TextOnly style has a native handle, want nil")
	}
}
