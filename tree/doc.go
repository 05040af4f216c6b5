// Package tree interns field path keys into a tree of nodes.
//
// # Overview
//
// A [Tree] holds a root sentinel and a hash index of every attached node.
// Each [Node] stands for one path segment. Children of a node live in a
// slice: a numeric key n occupies slot n-1, a string key is appended after
// the highest occupied slot. Slot order is sibling order for traversal.
//
// Lookups by string key go through the hash index, keyed by the node's
// rolling hash (a murmur3 hash of the key seeded with the parent's rolling
// hash) and resolved by comparing parent and key. Lookups by numeric key
// read the parent's slot directly; numeric nodes are in the index too but
// it is never consulted for them.
//
// # Ownership
//
// Nodes are allocated by the caller, which usually stores its own record
// in [Node.Value]. The tree only manages each node's children slice and the
// index. Before [Tree.Destroy], remove remaining nodes, for example with
// [SafePostOrder] or [Tree.DeleteSubtree].
//
// # Contracts
//
// Adding a key that already exists under the same parent, deleting a node
// that still has children and deleting a node that is not in the tree are
// caller errors. They are only detected when contract checks are enabled
// (see the debug package), in which case they panic.
//
// # Thread Safety
//
// Trees are not safe for concurrent use. Callers serialize mutation and any
// traversal that overlaps it.
package tree
