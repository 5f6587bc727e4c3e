package parser

import (
	"github.com/heathj/webengine/parser/dom"
	"github.com/sirupsen/logrus"
)

// HTMLTreeConstructor builds a tree one token at a time. It keeps a single
// insertion cursor instead of a stack of open elements: an end tag only
// closes the cursor when the names match, and a mismatched end tag is
// ignored rather than closing ancestors.
type HTMLTreeConstructor struct {
	Document     *dom.Node
	currentNode  *dom.Node
	inlineStyles bool
	log          logrus.FieldLogger
}

// NewHTMLTreeConstructor creates a constructor with an empty document as its
// insertion point.
func NewHTMLTreeConstructor(opts ...Option) *HTMLTreeConstructor {
	cfg := newConfig(opts)
	doc := dom.NewDocument()
	return &HTMLTreeConstructor{
		Document:     doc,
		currentNode:  doc,
		inlineStyles: cfg.inlineStyles,
		log:          cfg.log,
	}
}

// CurrentNode returns the node new children are attached to.
func (c *HTMLTreeConstructor) CurrentNode() *dom.Node {
	return c.currentNode
}

// ProcessToken applies one token to the tree.
func (c *HTMLTreeConstructor) ProcessToken(t *Token) {
	switch t.TokenType {
	case StartTagToken:
		c.currentNode = c.insertElement(t)
	case SelfClosingTagToken:
		c.insertElement(t)
	case EndTagToken:
		c.closeElement(t)
	case TextToken:
		c.insert(dom.NewTextNode(t.Data))
	case CommentToken:
		c.log.WithField("comment", t.Data).Debug("[TREE]: comment dropped")
	}
}

func (c *HTMLTreeConstructor) insert(n *dom.Node) *dom.Node {
	// The new node is detached and the cursor is never inside it, so this
	// cannot fail.
	if _, err := c.currentNode.AppendChild(n); err != nil {
		c.log.WithError(err).Error("[TREE]: insert failed")
	}
	return n
}

func (c *HTMLTreeConstructor) insertElement(t *Token) *dom.Node {
	attrs := make(map[string]string, len(t.Attributes))
	for k, v := range t.Attributes {
		attrs[k] = v
	}
	n := dom.NewElement(t.Data, attrs)
	if style, ok := attrs["style"]; ok && c.inlineStyles {
		if err := n.Style.ApplyDeclarations(style); err != nil {
			c.log.WithError(err).WithField("tag", t.Data).Warn("[TREE]: ignoring inline style")
		}
	}
	return c.insert(n)
}

func (c *HTMLTreeConstructor) closeElement(t *Token) {
	if c.currentNode.NodeName != t.Data {
		c.log.WithFields(logrus.Fields{
			"end":     t.Data,
			"current": c.currentNode.NodeName,
		}).Debug("[TREE]: unmatched end tag ignored")
		return
	}
	if parent := c.currentNode.ParentNode(); parent != nil {
		c.currentNode = parent
	}
}
