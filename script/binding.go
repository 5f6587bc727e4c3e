// Package script exposes the read-only tree lookups a scripting engine
// needs. Selectors are limited to "#id", ".class" and a bare tag name; any
// other syntax matches nothing.
package script

import (
	"strings"

	"github.com/heathj/webengine/parser/dom"
	"github.com/pkg/errors"
)

var (
	// ErrNotBound is returned by lookups made before BindDOM.
	ErrNotBound = errors.New("dom tree is not bound")
	// ErrNilTree is returned when BindDOM is given nil.
	ErrNilTree = errors.New("cannot bind a nil dom tree")
)

// DOMBinding answers lookups against one bound tree.
type DOMBinding struct {
	tree *dom.Node
}

func NewDOMBinding() *DOMBinding {
	return &DOMBinding{}
}

// BindDOM binds tree. Lookups always start from the root of the tree that
// contains it.
func (b *DOMBinding) BindDOM(tree *dom.Node) error {
	if tree == nil {
		return ErrNilTree
	}
	b.tree = tree
	return nil
}

func (b *DOMBinding) root() (*dom.Node, error) {
	if b.tree == nil {
		return nil, ErrNotBound
	}
	return b.tree.Root(), nil
}

// GetElementByID returns the first node in breadth-first order whose id
// attribute equals id, or nil.
func (b *DOMBinding) GetElementByID(id string) (*dom.Node, error) {
	root, err := b.root()
	if err != nil {
		return nil, errors.Wrapf(err, "getElementById(%q)", id)
	}
	var found *dom.Node
	walkBreadthFirst(root, func(n *dom.Node) bool {
		if v, ok := n.Attribute("id"); ok && v == id {
			found = n
			return false
		}
		return true
	})
	return found, nil
}

// QuerySelector returns the first node in breadth-first order matching
// selector, or nil.
func (b *DOMBinding) QuerySelector(selector string) (*dom.Node, error) {
	root, err := b.root()
	if err != nil {
		return nil, errors.Wrapf(err, "querySelector(%q)", selector)
	}
	m := compileSelector(selector)
	var found *dom.Node
	walkBreadthFirst(root, func(n *dom.Node) bool {
		if m(n) {
			found = n
			return false
		}
		return true
	})
	return found, nil
}

// QuerySelectorAll returns every node matching selector in breadth-first
// order.
func (b *DOMBinding) QuerySelectorAll(selector string) ([]*dom.Node, error) {
	root, err := b.root()
	if err != nil {
		return nil, errors.Wrapf(err, "querySelectorAll(%q)", selector)
	}
	m := compileSelector(selector)
	var found []*dom.Node
	walkBreadthFirst(root, func(n *dom.Node) bool {
		if m(n) {
			found = append(found, n)
		}
		return true
	})
	return found, nil
}

// walkBreadthFirst visits the tree level by level until visit returns false.
func walkBreadthFirst(root *dom.Node, visit func(*dom.Node) bool) {
	queue := []*dom.Node{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if !visit(n) {
			return
		}
		queue = append(queue, n.ChildNodes()...)
	}
}

type matcher func(*dom.Node) bool

func matchNothing(*dom.Node) bool { return false }

func compileSelector(selector string) matcher {
	if selector == "" || strings.IndexFunc(selector, isSelectorSyntax) >= 0 {
		return matchNothing
	}
	switch selector[0] {
	case '#':
		id := selector[1:]
		if id == "" || strings.ContainsAny(id, "#.") {
			return matchNothing
		}
		return func(n *dom.Node) bool {
			v, ok := n.Attribute("id")
			return ok && v == id
		}
	case '.':
		class := selector[1:]
		if class == "" || strings.ContainsAny(class, "#.") {
			return matchNothing
		}
		return func(n *dom.Node) bool {
			v, ok := n.Attribute("class")
			if !ok {
				return false
			}
			for _, c := range strings.Fields(v) {
				if c == class {
					return true
				}
			}
			return false
		}
	default:
		if strings.ContainsAny(selector, "#.") {
			return matchNothing
		}
		return func(n *dom.Node) bool {
			return n.NodeName == selector
		}
	}
}

// isSelectorSyntax reports runes that only appear in selector forms this
// binding does not support: combinators, attribute and pseudo selectors,
// selector lists and whitespace.
func isSelectorSyntax(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '>', '+', '~', ',', '[', ']', ':', '*', '(', ')':
		return true
	}
	return false
}
