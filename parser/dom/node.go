package dom

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Reserved node names for the non-element nodes.
const (
	RootNodeName = "Document"
	TextNodeName = "#text"
)

var (
	// ErrHierarchyRequest is returned when an insertion would break the tree shape.
	ErrHierarchyRequest = errors.New("hierarchy request error")
	// ErrNotFound is returned when the node to remove is not a child.
	ErrNotFound = errors.New("node not found")
)

// Node is an element, a text run or the document root. A node's child list
// owns its children; the parent pointer is a back-link that only
// AppendChild and RemoveChild touch.
type Node struct {
	NodeName   string
	Attributes map[string]string
	Text       string
	Geometry   Geometry
	Style      *Style

	parentNode *Node
	childNodes []*Node

	EventTarget
}

// NewDocument returns the synthetic root of a tree.
func NewDocument() *Node {
	return &Node{
		NodeName: RootNodeName,
		Style:    NewStyle(),
	}
}

// NewElement creates a detached element. A nil attrs map is replaced by an
// empty one.
func NewElement(name string, attrs map[string]string) *Node {
	if attrs == nil {
		attrs = make(map[string]string)
	}
	return &Node{
		NodeName:   name,
		Attributes: attrs,
		Style:      NewStyle(),
	}
}

// NewTextNode creates a detached text node holding text.
func NewTextNode(text string) *Node {
	return &Node{
		NodeName: TextNodeName,
		Text:     text,
		Style:    NewStyle(),
	}
}

func (n *Node) ParentNode() *Node {
	return n.parentNode
}

// ChildNodes returns a copy of the child list.
func (n *Node) ChildNodes() []*Node {
	children := make([]*Node, len(n.childNodes))
	copy(children, n.childNodes)
	return children
}

func (n *Node) HasChildNodes() bool {
	return len(n.childNodes) > 0
}

func (n *Node) FirstChild() *Node {
	if len(n.childNodes) == 0 {
		return nil
	}
	return n.childNodes[0]
}

func (n *Node) LastChild() *Node {
	if len(n.childNodes) == 0 {
		return nil
	}
	return n.childNodes[len(n.childNodes)-1]
}

func (n *Node) IsText() bool {
	return n.NodeName == TextNodeName
}

func (n *Node) IsDocument() bool {
	return n.NodeName == RootNodeName && n.parentNode == nil
}

// Attribute returns the value of the named attribute.
func (n *Node) Attribute(name string) (string, bool) {
	if n.Attributes == nil {
		return "", false
	}
	v, ok := n.Attributes[name]
	return v, ok
}

// Root walks up the parent links to the node without a parent.
func (n *Node) Root() *Node {
	cur := n
	for cur.parentNode != nil {
		cur = cur.parentNode
	}
	return cur
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parentNode {
		if cur == n {
			return true
		}
	}
	return false
}

// AppendChild attaches child as the last child of n, detaching it from its
// previous parent first.
func (n *Node) AppendChild(child *Node) (*Node, error) {
	if child == nil {
		return nil, errors.Wrap(ErrHierarchyRequest, "cannot append a nil node")
	}
	if child.Contains(n) {
		return nil, errors.Wrapf(ErrHierarchyRequest, "cannot append <%s> into itself or its descendant <%s>", child.NodeName, n.NodeName)
	}
	if child.parentNode != nil {
		if _, err := child.parentNode.RemoveChild(child); err != nil {
			return nil, err
		}
	}
	child.parentNode = n
	n.childNodes = append(n.childNodes, child)
	return child, nil
}

// RemoveChild detaches child from n and clears its parent link.
func (n *Node) RemoveChild(child *Node) (*Node, error) {
	for i, c := range n.childNodes {
		if c != child {
			continue
		}
		children := make([]*Node, 0, len(n.childNodes)-1)
		children = append(children, n.childNodes[:i]...)
		children = append(children, n.childNodes[i+1:]...)
		n.childNodes = children
		child.parentNode = nil
		return child, nil
	}
	return nil, errors.Wrapf(ErrNotFound, "<%s> is not a child of <%s>", nodeLabel(child), n.NodeName)
}

func nodeLabel(n *Node) string {
	if n == nil {
		return "nil"
	}
	return n.NodeName
}

func serializeNode(node *Node, ident int) string {
	switch {
	case node.IsText():
		return "\"" + node.Text + "\""
	case node.NodeName == RootNodeName && node.parentNode == nil:
		return "#document"
	}

	e := "<" + node.NodeName + ">"
	if len(node.Attributes) == 0 {
		return e
	}
	keys := make([]string, 0, len(node.Attributes))
	for name := range node.Attributes {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	spaces := "| "
	for i := 1; i < ident; i++ {
		spaces += "  "
	}
	for _, name := range keys {
		e += "\n" + spaces + name + "=\"" + node.Attributes[name] + "\""
	}
	return e
}

func (n *Node) serialize(ident int) string {
	ser := serializeNode(n, ident+1) + "\n"
	if !n.IsDocument() {
		spaces := "| "
		for i := 1; i < ident; i++ {
			spaces += "  "
		}
		ser = spaces + ser
	}
	for _, child := range n.childNodes {
		ser += child.serialize(ident + 1)
	}
	return ser
}

// String renders the subtree in the indented "| <tag>" test format.
func (n *Node) String() string {
	return strings.TrimRight(n.serialize(0), "\n")
}
