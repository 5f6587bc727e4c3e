package dom

import (
	"sort"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/pkg/errors"
)

// Style is a flat property bag. Nothing here cascades or inherits.
type Style struct {
	props map[string]string
}

func NewStyle() *Style {
	return &Style{props: make(map[string]string)}
}

func normalizeProperty(property string) string {
	return strings.ToLower(strings.TrimSpace(property))
}

// Set stores value under the lower-cased property name. Empty names are ignored.
func (s *Style) Set(property, value string) {
	property = normalizeProperty(property)
	if property == "" {
		return
	}
	if s.props == nil {
		s.props = make(map[string]string)
	}
	s.props[property] = value
}

func (s *Style) Get(property string) (string, bool) {
	v, ok := s.props[normalizeProperty(property)]
	return v, ok
}

func (s *Style) Remove(property string) {
	delete(s.props, normalizeProperty(property))
}

func (s *Style) Len() int {
	return len(s.props)
}

// Properties returns the set property names in sorted order.
func (s *Style) Properties() []string {
	names := make([]string, 0, len(s.props))
	for name := range s.props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyDeclarations parses an inline declaration block such as
// "color: red; margin: 0" and stores every declaration. On a parse error
// the bag is left untouched.
func (s *Style) ApplyDeclarations(text string) error {
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return errors.Wrapf(err, "parsing style declarations %q", text)
	}
	for _, d := range decls {
		value := d.Value
		if d.Important {
			value += " !important"
		}
		s.Set(d.Property, value)
	}
	return nil
}
