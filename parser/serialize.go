package parser

import (
	"sort"
	"strings"

	"github.com/heathj/webengine/parser/dom"
	"golang.org/x/net/html/atom"
)

// https://html.spec.whatwg.org/#escapingString
func escapeString(s string, attrVal bool) string {
	s = strings.Replace(s, "&", "&amp;", -1)
	s = strings.Replace(s, "\u00A0", "&nbsp;", -1)
	if attrVal {
		s = strings.Replace(s, "\"", "&quot;", -1)
	} else {
		s = strings.Replace(s, "<", "&lt;", -1)
		s = strings.Replace(s, ">", "&gt;", -1)
	}

	return s
}

// void elements are written as self-closing when they have no children.
var voidElements = map[string]bool{
	atom.Area.String():  true,
	atom.Br.String():    true,
	atom.Col.String():   true,
	atom.Embed.String(): true,
	atom.Hr.String():    true,
	atom.Img.String():   true,
	atom.Input.String(): true,
	atom.Link.String():  true,
	atom.Meta.String():  true,
	atom.Wbr.String():   true,
}

// SerializeHTML writes the children of n back out as markup. Attributes are
// sorted by name so the output is stable.
func SerializeHTML(n *dom.Node) string {
	var b strings.Builder
	for _, child := range n.ChildNodes() {
		serializeNode(&b, child)
	}
	return b.String()
}

func serializeNode(b *strings.Builder, n *dom.Node) {
	if n.IsText() {
		b.WriteString(escapeString(n.Text, false))
		return
	}

	b.WriteString("<" + n.NodeName)
	keys := make([]string, 0, len(n.Attributes))
	for name := range n.Attributes {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(" " + k + "=\"" + escapeString(n.Attributes[k], true) + "\"")
	}

	if !n.HasChildNodes() && voidElements[n.NodeName] {
		b.WriteString(" />")
		return
	}
	b.WriteString(">")
	for _, child := range n.ChildNodes() {
		serializeNode(b, child)
	}
	b.WriteString("</" + n.NodeName + ">")
}
