package tree

// childNext returns the first child of parent in a slot after pos, or the
// first child at all if pos is nil.
func childNext[T any](parent, pos *Node[T]) *Node[T] {
	idx := 0
	if pos != nil {
		idx = pos.siblingIdx + 1
	}
	for ; idx < len(parent.children); idx++ {
		if c := parent.children[idx]; c != nil {
			return c
		}
	}
	return nil
}

func firstChild[T any](n *Node[T]) *Node[T] {
	return childNext(n, nil)
}

// leftmost descends from pos through first children to a leaf.
func leftmost[T any](pos *Node[T]) *Node[T] {
	for {
		next := firstChild(pos)
		if next == nil {
			return pos
		}
		pos = next
	}
}

// PreorderNext returns the node after pos in a pre-order walk of the
// subtree under root. A nil pos starts the walk. Parents come before their
// children and siblings come in slot order. root itself is not visited.
func PreorderNext[T any](root, pos *Node[T]) *Node[T] {
	if pos == nil {
		pos = root
	}
	if next := firstChild(pos); next != nil {
		return next
	}
	for pos != root {
		if next := childNext(pos.parent, pos); next != nil {
			return next
		}
		pos = pos.parent
	}
	return nil
}

// PostorderNext returns the node after pos in a post-order walk of the
// subtree under root. A nil pos starts the walk. Every node comes after
// all of its descendants. root itself is not visited.
func PostorderNext[T any](root, pos *Node[T]) *Node[T] {
	if pos == nil {
		next := leftmost(root)
		if next == root {
			return nil
		}
		return next
	}
	if pos == root {
		return nil
	}
	if next := childNext(pos.parent, pos); next != nil {
		return leftmost(next)
	}
	if pos.parent == root {
		return nil
	}
	return pos.parent
}
