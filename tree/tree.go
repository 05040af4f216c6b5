package tree

import (
	"fmt"

	"github.com/signadot/fieldpath/debug"
	"github.com/signadot/fieldpath/token"
)

type Tree[T any] struct {
	root  Node[T]
	index index[T]
	cfg   Config
}

func New[T any](opts ...Option) *Tree[T] {
	cfg := newConfig(opts)
	t := &Tree[T]{
		index: newIndex[T](cfg.MaxNodes),
		cfg:   cfg,
	}
	t.root.Key = token.End()
	t.root.hash = rootSeed
	return t
}

// Root returns the root sentinel. It has no key of its own and is never
// yielded by traversals started from it.
func (t *Tree[T]) Root() *Node[T] {
	return &t.root
}

// Len returns the number of nodes attached to t.
func (t *Tree[T]) Len() int {
	return t.index.len()
}

// Destroy releases the root's children and the index. Nodes still attached
// are left as they are; delete them first.
func (t *Tree[T]) Destroy() {
	if debug.Checks() && t.index.len() != 0 {
		panic(fmt.Sprintf("tree: destroy with %d attached nodes", t.index.len()))
	}
	t.root.release()
	t.index.clear()
}

// Lookup returns the child of parent with the given key, or nil. A nil
// parent means the root.
func (t *Tree[T]) Lookup(parent *Node[T], key token.Token) *Node[T] {
	if parent == nil {
		parent = &t.root
	}
	switch key.Type {
	case token.StrType:
		return t.index.find(parent, key, keyHash(key, parent.hash))
	case token.NumType:
		// numeric children are read from their slot, never from the index
		if key.Num == 0 || key.Num > uint64(len(parent.children)) {
			return nil
		}
		return parent.children[key.Num-1]
	}
	return nil
}

// Add attaches node under parent, or under the root if parent is nil. The
// parent must not already have a child with node's key.
//
// Add fails with ErrAlloc if the children slice or the index cannot grow,
// with ErrIndex for the numeric key 0 and with ErrSlotTaken if node's slot
// is used by another child. A failed Add leaves the tree as it was, except
// that parent's children slice may have grown.
func (t *Tree[T]) Add(parent, node *Node[T]) error {
	if parent == nil {
		parent = &t.root
	}
	if debug.Checks() {
		if x := t.Lookup(parent, node.Key); x != nil && x.Key.Equal(node.Key) {
			panic(fmt.Sprintf("tree: duplicate key %s under %q", node.Key, parent.Path()))
		}
	}
	hash := keyHash(node.Key, parent.hash)
	var idx int
	switch node.Key.Type {
	case token.NumType:
		if node.Key.Num == 0 || node.Key.Num > uint64(maxSlots) {
			return fmt.Errorf("%w: %d", ErrIndex, node.Key.Num)
		}
		idx = int(node.Key.Num - 1)
	default:
		idx = parent.childCount
	}
	if idx >= len(parent.children) {
		if err := t.grow(parent, idx); err != nil {
			return err
		}
	}
	if parent.children[idx] != nil {
		return fmt.Errorf("%w: slot %d of %q holds %s", ErrSlotTaken, idx, parent.Path(),
			parent.children[idx].Key)
	}
	count := parent.childCount
	parent.children[idx] = node
	parent.childCount = max(count, idx+1)
	node.siblingIdx = idx
	node.hash = hash
	node.parent = parent

	if err := t.index.put(node); err != nil {
		parent.children[idx] = nil
		parent.childCount = count
		node.parent = nil
		return err
	}
	if debug.Tree() {
		debug.Logf("tree add %q slot %d hash %#x\n", node.Path(), idx, hash)
	}
	return nil
}

// maxSlots bounds slot numbers so that doubling never overflows an int.
const maxSlots = 1 << 40

// grow doubles the children slice of parent until slot idx fits. Newly
// exposed slots are nil. The existing slice is not modified.
func (t *Tree[T]) grow(parent *Node[T], idx int) error {
	size := len(parent.children)
	newSize := 1
	if size != 0 {
		newSize = 2 * size
	}
	for idx >= newSize {
		newSize *= 2
	}
	if limit := t.cfg.MaxChildren; limit > 0 && newSize > limit {
		if idx >= limit {
			return fmt.Errorf("%w: slot %d exceeds the limit of %d children", ErrAlloc, idx, limit)
		}
		newSize = limit
	}
	children := make([]*Node[T], newSize)
	copy(children, parent.children)
	parent.children = children
	return nil
}

// Delete detaches node from the tree and releases its children slice.
// The node must be attached and have no children.
func (t *Tree[T]) Delete(node *Node[T]) {
	parent := node.parent
	if debug.Checks() {
		if parent == nil || t.Lookup(parent, node.Key) != node {
			panic(fmt.Sprintf("tree: delete of detached node %s", node.Key))
		}
		if firstChild(node) != nil {
			panic(fmt.Sprintf("tree: delete of %q with children", node.Path()))
		}
	}
	if parent == nil {
		return
	}
	idx := -1
	if node.Key.Type == token.NumType {
		n := node.Key.Num
		if n >= 1 && n <= uint64(len(parent.children)) && parent.children[n-1] == node {
			idx = int(n - 1)
		}
	} else {
		for i, c := range parent.children {
			if c == node {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		return
	}
	parent.children[idx] = nil
	for parent.childCount > 0 && parent.children[parent.childCount-1] == nil {
		parent.childCount--
	}
	t.index.remove(node)
	node.release()
	if debug.Tree() {
		debug.Logf("tree del %q slot %d\n", node.Path(), idx)
	}
}

// DeleteSubtree deletes the descendants of node in post-order and then
// node itself, unless node is the root.
func (t *Tree[T]) DeleteSubtree(node *Node[T]) {
	if node == nil {
		node = &t.root
	}
	for n := range SafePostOrder(node) {
		t.Delete(n)
	}
	if node != &t.root {
		t.Delete(node)
	}
}

// LookupPath resolves path one token at a time starting at parent, or at
// the root if parent is nil. It returns nil if a segment is missing, if
// path does not lex or if path is empty.
func (t *Tree[T]) LookupPath(parent *Node[T], path string) *Node[T] {
	if parent == nil {
		parent = &t.root
	}
	var l token.Lexer
	l.Reset(path)
	res := parent
	steps := 0
	for {
		tok, err := l.Next()
		if err != nil {
			return nil
		}
		if tok.Type == token.EndType {
			break
		}
		res = t.Lookup(res, tok)
		if res == nil {
			return nil
		}
		steps++
	}
	if steps == 0 {
		return nil
	}
	return res
}
