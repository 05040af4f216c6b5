package tree

import "iter"

// PreOrder yields the nodes under root in pre-order.
func PreOrder[T any](root *Node[T]) iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for n := PreorderNext(root, nil); n != nil; n = PreorderNext(root, n) {
			if !yield(n) {
				return
			}
		}
	}
}

// PostOrder yields the nodes under root in post-order. The tree must not
// be modified during the walk; see [SafePostOrder].
func PostOrder[T any](root *Node[T]) iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for n := PostorderNext(root, nil); n != nil; n = PostorderNext(root, n) {
			if !yield(n) {
				return
			}
		}
	}
}

// SafePostOrder is like [PostOrder] but finds the next node before
// yielding the current one, so the consumer may delete the node it was
// given.
func SafePostOrder[T any](root *Node[T]) iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		next := PostorderNext(root, nil)
		for next != nil {
			n := next
			next = PostorderNext(root, n)
			if !yield(n) {
				return
			}
		}
	}
}
