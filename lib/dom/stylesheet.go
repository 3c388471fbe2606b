package dom

import (
	"sync"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// Stylesheet is the native stylesheet handle behind a style value: raw CSS
// text plus a lazily parsed rule list. Parsing is deferred until the rules
// are first needed so that constructing many style values stays cheap.
type Stylesheet struct {
	mu    sync.Mutex
	text  string
	once  *sync.Once
	sheet *css.Stylesheet
}

// NewStylesheet creates a stylesheet from CSS text without parsing it.
func NewStylesheet(text string) *Stylesheet {
	return &Stylesheet{text: text, once: new(sync.Once)}
}

// Text returns the stylesheet's CSS text.
func (s *Stylesheet) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// Rules returns the parsed rule list. Invalid CSS yields an empty rule list
// rather than an error.
func (s *Stylesheet) Rules() []*css.Rule {
	s.mu.Lock()
	once, text := s.once, s.text
	s.mu.Unlock()

	once.Do(func() {
		sheet, err := parser.Parse(text)
		if err != nil || sheet == nil {
			sheet = css.NewStylesheet()
		}
		s.mu.Lock()
		s.sheet = sheet
		s.mu.Unlock()
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sheet.Rules
}

// Replace swaps the stylesheet's contents for new CSS text, mirroring
// constructable-stylesheet replacement. Previously parsed rules are
// discarded and reparsed on next access.
func (s *Stylesheet) Replace(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
	s.sheet = nil
	s.once = new(sync.Once)
}
