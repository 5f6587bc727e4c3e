package parser

import (
	"github.com/heathj/webengine/parser/dom"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type config struct {
	log          logrus.FieldLogger
	inlineStyles bool
}

// Option configures a Parser or HTMLTreeConstructor.
type Option func(*config)

// WithLogger sets the logger tree construction diagnostics go to.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *config) {
		c.log = log
	}
}

// WithInlineStyles controls whether style attributes are copied into each
// element's Style. Enabled by default.
func WithInlineStyles(enabled bool) Option {
	return func(c *config) {
		c.inlineStyles = enabled
	}
}

func newConfig(opts []Option) config {
	c := config{
		log:          logrus.StandardLogger(),
		inlineStyles: true,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Parser pumps tokens from its tokenizer into its tree constructor.
type Parser struct {
	Tokenizer       *HTMLTokenizer
	TreeConstructor *HTMLTreeConstructor
}

func NewParser(html string, opts ...Option) *Parser {
	return &Parser{
		Tokenizer:       NewHTMLTokenizer(html),
		TreeConstructor: NewHTMLTreeConstructor(opts...),
	}
}

// Start consumes every token and returns the document root. Unclosed tags
// are left where they are; the tree is complete once the input runs out.
func (p *Parser) Start() (*dom.Node, error) {
	for p.Tokenizer.Next() {
		p.TreeConstructor.ProcessToken(p.Tokenizer.Token())
	}
	if err := p.Tokenizer.Err(); err != nil {
		return nil, errors.Wrap(err, "tokenizing html")
	}
	return p.TreeConstructor.Document, nil
}

// Parse builds a fresh tree from html.
func Parse(html string, opts ...Option) (*dom.Node, error) {
	return NewParser(html, opts...).Start()
}
