package parser

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html/atom"
)

type TokenType uint

const (
	StartTagToken TokenType = iota
	EndTagToken
	SelfClosingTagToken
	TextToken
	CommentToken
)

func (t TokenType) String() string {
	switch t {
	case StartTagToken:
		return "StartTag"
	case EndTagToken:
		return "EndTag"
	case SelfClosingTagToken:
		return "SelfClosingTag"
	case TextToken:
		return "Text"
	case CommentToken:
		return "Comment"
	default:
		return fmt.Sprintf("TokenType(%d)", uint(t))
	}
}

// Tag names used throughout the tests and the CLI.
var (
	TagDiv       = atom.Div.String()
	TagSpan      = atom.Span.String()
	TagParagraph = atom.P.String()
	TagImage     = atom.Img.String()
	TagBold      = atom.B.String()
)

// Token is one lexical unit. Data holds the tag name for tag tokens and the
// payload for text and comment tokens. Attributes is only set on start and
// self-closing tags.
type Token struct {
	TokenType  TokenType
	Data       string
	Attributes map[string]string
}

func newTagToken(tt TokenType, name string, attrs map[string]string) *Token {
	if attrs == nil {
		attrs = make(map[string]string)
	}
	return &Token{
		TokenType:  tt,
		Data:       name,
		Attributes: attrs,
	}
}

func (t *Token) String() string {
	switch t.TokenType {
	case StartTagToken, SelfClosingTagToken:
		var b strings.Builder
		b.WriteString("<" + t.Data)
		keys := make([]string, 0, len(t.Attributes))
		for k := range t.Attributes {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%q", k, t.Attributes[k])
		}
		if t.TokenType == SelfClosingTagToken {
			b.WriteString(" /")
		}
		b.WriteString(">")
		return b.String()
	case EndTagToken:
		return "</" + t.Data + ">"
	case CommentToken:
		return "<!-- " + t.Data + " -->"
	default:
		return fmt.Sprintf("%q", t.Data)
	}
}
