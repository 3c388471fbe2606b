package lumen

import (
	"sync"

	"github.com/lumen-ui/lumen/lib/dom"
)

// Style is an immutable style value: CSS text plus, optionally, a native
// stylesheet handle. Identity matters — the resolver de-duplicates styles by
// pointer, not by text, so sharing one *Style across declarations shares one
// adopted stylesheet.
type Style struct {
	text     string
	native   bool
	once     sync.Once
	sheet    *dom.Stylesheet
}

// CSS creates a style value with a native stylesheet handle. The handle is
// created lazily on first Sheet call.
func CSS(text string) *Style {
	return &Style{text: text, native: true}
}

// TextOnly creates a style value with no native handle, for hosts without
// constructable-stylesheet support. Such styles can only be applied through
// the scoping shim or the fallback style-element path.
func TextOnly(text string) *Style {
	return &Style{text: text}
}

// Text returns the style's CSS text.
func (s *Style) Text() string { return s.text }

// Sheet returns the style's native stylesheet handle, or nil for text-only
// styles. The handle is created once and reused.
func (s *Style) Sheet() *dom.Stylesheet {
	if !s.native {
		return nil
	}
	s.once.Do(func() {
		s.sheet = dom.NewStylesheet(s.text)
	})
	return s.sheet
}

func (s *Style) String() string { return s.text }

// Group nests style values for a declaration. Groups may contain styles and
// other groups to any depth:
//
//	WithStyles(lumen.Group(base, lumen.Group(theme, base), layout))
func Group(items ...any) []any { return items }

// flattenStyles appends the pre-order leaf traversal of a style
// specification to out. Leaves are *Style; branches are []any or []*Style.
// Nil leaves and unknown values are skipped.
func flattenStyles(spec any, out []*Style) []*Style {
	switch v := spec.(type) {
	case nil:
	case *Style:
		if v != nil {
			out = append(out, v)
		}
	case []*Style:
		for _, s := range v {
			out = flattenStyles(s, out)
		}
	case []any:
		for _, item := range v {
			out = flattenStyles(item, out)
		}
	}
	return out
}

// dedupeStyles removes duplicate styles by identity, keeping each style at
// the position of its last occurrence: the flat list is walked in reverse
// and unseen styles are prepended, so later duplicates win cascade order.
func dedupeStyles(flat []*Style) []*Style {
	seen := make(map[*Style]struct{}, len(flat))
	out := make([]*Style, 0, len(flat))
	for i := len(flat) - 1; i >= 0; i-- {
		s := flat[i]
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, nil)
		copy(out[1:], out)
		out[0] = s
	}
	return out
}
