package parser

import (
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrUnterminatedAttributeValue is returned when a quoted attribute value
// has no closing quote.
var ErrUnterminatedAttributeValue = errors.New("unterminated quoted attribute value")

// attributeScanner walks an attribute substring such as
// `src="a.png" alt=logo`.
type attributeScanner struct {
	s   string
	pos int
}

func (a *attributeScanner) eof() bool {
	return a.pos >= len(a.s)
}

func (a *attributeScanner) peek() rune {
	r, _ := utf8.DecodeRuneInString(a.s[a.pos:])
	return r
}

func (a *attributeScanner) skipWhitespace() {
	for !a.eof() {
		r, size := utf8.DecodeRuneInString(a.s[a.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		a.pos += size
	}
}

// scanUntil consumes runes up to the first one for which stop returns true.
func (a *attributeScanner) scanUntil(stop func(rune) bool) string {
	start := a.pos
	for !a.eof() {
		r, size := utf8.DecodeRuneInString(a.s[a.pos:])
		if stop(r) {
			break
		}
		a.pos += size
	}
	return a.s[start:a.pos]
}

func isNameEnd(r rune) bool {
	return r == '=' || unicode.IsSpace(r)
}

func isUnquotedValueEnd(r rune) bool {
	return r == '>' || unicode.IsSpace(r)
}

// parseAttributes turns an attribute substring into a map. Attributes
// without a value are dropped and later duplicates overwrite earlier ones.
func parseAttributes(s string) (map[string]string, error) {
	attrs := make(map[string]string)
	a := &attributeScanner{s: s}
	for {
		a.skipWhitespace()
		if a.eof() {
			return attrs, nil
		}

		name := a.scanUntil(isNameEnd)
		a.skipWhitespace()
		if a.eof() || a.peek() != '=' {
			continue
		}
		a.pos++ // '='
		a.skipWhitespace()

		var value string
		if !a.eof() && (a.peek() == '"' || a.peek() == '\'') {
			quote := a.peek()
			a.pos++
			value = a.scanUntil(func(r rune) bool { return r == quote })
			if a.eof() {
				return nil, errors.Wrapf(ErrUnterminatedAttributeValue, "attribute %q", name)
			}
			a.pos++ // closing quote
		} else {
			value = a.scanUntil(isUnquotedValueEnd)
		}

		if name != "" {
			attrs[name] = value
		}
	}
}
