package parser

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

const (
	commentOpen  = "<!--"
	commentClose = "-->"
	endTagOpen   = "</"
)

// HTMLTokenizer scans a resident character buffer into tokens. The scan
// state lives in the tokenizer, so independent tokenizers never share a
// cursor. Malformed markup is dropped; the only hard error is an
// unterminated quoted attribute value.
type HTMLTokenizer struct {
	input string
	pos   int
	token *Token
	err   error
}

// NewHTMLTokenizer creates a tokenizer positioned at the start of text.
func NewHTMLTokenizer(text string) *HTMLTokenizer {
	t := &HTMLTokenizer{}
	t.Reset(text)
	return t
}

// Reset starts a fresh scan over text at offset 0.
func (t *HTMLTokenizer) Reset(text string) {
	t.input = text
	t.pos = 0
	t.token = nil
	t.err = nil
}

// Next advances to the next token. It returns false once the input is
// exhausted or a hard error occurred; Err tells the two apart.
func (t *HTMLTokenizer) Next() bool {
	t.token = nil
	if t.err != nil {
		return false
	}
	for t.pos < len(t.input) {
		tok, err := t.scan()
		if err != nil {
			t.err = err
			return false
		}
		if tok != nil {
			t.token = tok
			return true
		}
	}
	return false
}

// Token returns the token produced by the last successful call to Next.
func (t *HTMLTokenizer) Token() *Token {
	return t.token
}

func (t *HTMLTokenizer) Err() error {
	return t.err
}

// NextToken returns the next token, or nil when there are no more.
func (t *HTMLTokenizer) NextToken() (*Token, error) {
	if t.Next() {
		return t.token, nil
	}
	return nil, t.err
}

// Tokenize collects every token of text.
func Tokenize(text string) ([]*Token, error) {
	t := NewHTMLTokenizer(text)
	var tokens []*Token
	for t.Next() {
		tokens = append(tokens, t.Token())
	}
	return tokens, t.Err()
}

// scan consumes one lexical unit at the cursor. A nil token with a nil
// error means the unit was dropped.
func (t *HTMLTokenizer) scan() (*Token, error) {
	rest := t.input[t.pos:]
	switch {
	case strings.HasPrefix(rest, commentOpen):
		return t.scanComment(), nil
	case strings.HasPrefix(rest, endTagOpen):
		return t.scanEndTag(), nil
	case rest[0] == '<':
		return t.scanTag()
	default:
		return t.scanText(), nil
	}
}

// consumeRest moves the cursor to the end of the buffer.
func (t *HTMLTokenizer) consumeRest() {
	t.pos = len(t.input)
}

func (t *HTMLTokenizer) scanComment() *Token {
	start := t.pos + len(commentOpen)
	end := strings.Index(t.input[start:], commentClose)
	if end < 0 {
		t.consumeRest()
		return nil
	}
	data := strings.TrimSpace(t.input[start : start+end])
	t.pos = start + end + len(commentClose)
	return &Token{TokenType: CommentToken, Data: data}
}

func (t *HTMLTokenizer) scanEndTag() *Token {
	start := t.pos + len(endTagOpen)
	end := strings.IndexByte(t.input[start:], '>')
	if end < 0 {
		t.consumeRest()
		return nil
	}
	name := strings.TrimSpace(t.input[start : start+end])
	t.pos = start + end + 1
	if name == "" {
		return nil
	}
	return &Token{TokenType: EndTagToken, Data: name}
}

func (t *HTMLTokenizer) scanTag() (*Token, error) {
	start := t.pos + 1
	end := strings.IndexByte(t.input[start:], '>')
	if end < 0 {
		t.consumeRest()
		return nil, nil
	}
	raw := t.input[start : start+end]
	t.pos = start + end + 1

	content := strings.TrimSpace(raw)
	if content == "" {
		return nil, nil
	}
	tt := StartTagToken
	if strings.HasSuffix(content, "/") {
		tt = SelfClosingTagToken
		content = strings.TrimSpace(strings.TrimSuffix(content, "/"))
	}

	name, attrText := content, ""
	if i := strings.IndexFunc(content, unicode.IsSpace); i >= 0 {
		name, attrText = content[:i], content[i+1:]
	}
	// Declarations (<!DOCTYPE ...>) and processing instructions are not
	// elements.
	if name == "" || name[0] == '!' || name[0] == '?' {
		return nil, nil
	}

	attrs, err := parseAttributes(attrText)
	if err != nil {
		return nil, errors.Wrapf(err, "tag <%s> at offset %d", name, start-1)
	}
	return newTagToken(tt, name, attrs), nil
}

func (t *HTMLTokenizer) scanText() *Token {
	rest := t.input[t.pos:]
	end := strings.IndexByte(rest, '<')
	if end < 0 {
		end = len(rest)
	}
	run := rest[:end]
	t.pos += end
	if strings.TrimSpace(run) == "" {
		return nil
	}
	return &Token{TokenType: TextToken, Data: html.UnescapeString(run)}
}
