package dom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xlab/treeprint"
)

// Dump renders the subtree as an ASCII tree for debugging.
func (n *Node) Dump() string {
	tree := treeprint.NewWithRoot(dumpLabel(n))
	for _, child := range n.childNodes {
		dumpInto(tree, child)
	}
	return tree.String()
}

func dumpInto(branch treeprint.Tree, n *Node) {
	if len(n.childNodes) == 0 {
		branch.AddNode(dumpLabel(n))
		return
	}
	sub := branch.AddBranch(dumpLabel(n))
	for _, child := range n.childNodes {
		dumpInto(sub, child)
	}
}

func dumpLabel(n *Node) string {
	if n.IsText() {
		return fmt.Sprintf("%q", n.Text)
	}
	if len(n.Attributes) == 0 {
		return n.NodeName
	}
	keys := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString(n.NodeName)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%q", k, n.Attributes[k])
	}
	return b.String()
}
