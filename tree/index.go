package tree

import (
	"fmt"

	"github.com/signadot/fieldpath/token"
)

// index maps rolling hashes to the nodes carrying them. Nodes in a bucket
// are told apart by parent identity and key.
type index[T any] struct {
	buckets map[uint32][]*Node[T]
	n       int
	limit   int
}

func newIndex[T any](limit int) index[T] {
	return index[T]{
		buckets: map[uint32][]*Node[T]{},
		limit:   limit,
	}
}

func (ix *index[T]) len() int {
	return ix.n
}

func (ix *index[T]) find(parent *Node[T], key token.Token, hash uint32) *Node[T] {
	for _, n := range ix.buckets[hash] {
		if n.parent == parent && n.Key.Equal(key) {
			return n
		}
	}
	return nil
}

func (ix *index[T]) put(n *Node[T]) error {
	if ix.limit > 0 && ix.n >= ix.limit {
		return fmt.Errorf("%w: index holds %d nodes", ErrAlloc, ix.n)
	}
	ix.buckets[n.hash] = append(ix.buckets[n.hash], n)
	ix.n++
	return nil
}

func (ix *index[T]) remove(n *Node[T]) bool {
	bucket := ix.buckets[n.hash]
	for i, x := range bucket {
		if x != n {
			continue
		}
		last := len(bucket) - 1
		bucket[i] = bucket[last]
		bucket[last] = nil
		if last == 0 {
			delete(ix.buckets, n.hash)
		} else {
			ix.buckets[n.hash] = bucket[:last]
		}
		ix.n--
		return true
	}
	return false
}

func (ix *index[T]) clear() {
	clear(ix.buckets)
	ix.n = 0
}
