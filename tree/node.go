package tree

import (
	"slices"

	"github.com/signadot/fieldpath/token"
)

// Node is one path segment in a [Tree]. The caller sets Key (and usually
// Value) before handing the node to [Tree.Add]; the remaining state is
// maintained by the tree.
type Node[T any] struct {
	Key   token.Token
	Value T

	hash       uint32
	children   []*Node[T]
	childCount int
	siblingIdx int
	parent     *Node[T]
}

// Parent returns the node n was added under; for top level nodes that is
// the tree root. It is nil for the root and for nodes never added. A
// deleted node keeps its parent.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

func (n *Node[T]) IsRoot() bool {
	return n.Key.Type == token.EndType
}

// SiblingIndex returns the slot of n in its parent's children.
func (n *Node[T]) SiblingIndex() int {
	return n.siblingIdx
}

// ChildCount returns the highest occupied child slot plus one. Slots below
// it may be empty.
func (n *Node[T]) ChildCount() int {
	return n.childCount
}

// Child returns the child in slot i, or nil.
func (n *Node[T]) Child(i int) *Node[T] {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Hash returns the rolling hash assigned when n was added.
func (n *Node[T]) Hash() uint32 {
	return n.hash
}

func (n *Node[T]) Depth() int {
	d := 0
	for x := n; x.parent != nil; x = x.parent {
		d++
	}
	return d
}

// Keys returns the keys from the top level ancestor of n down to n.
func (n *Node[T]) Keys() []token.Token {
	var res []token.Token
	for x := n; x != nil && !x.IsRoot(); x = x.parent {
		res = append(res, x.Key)
	}
	slices.Reverse(res)
	return res
}

// Path returns the canonical path of n, which looks n up again with
// [Tree.LookupPath] from the root.
func (n *Node[T]) Path() string {
	return token.Format(n.Keys())
}

func (n *Node[T]) String() string {
	return n.Path()
}

func (n *Node[T]) release() {
	n.children = nil
	n.childCount = 0
}
