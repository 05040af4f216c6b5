package tree

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/fieldpath/debug"
	"github.com/signadot/fieldpath/token"
)

// build adds path to tr, creating missing intermediate nodes, and returns
// the node for its last segment.
func build(t *testing.T, tr *Tree[string], path string) *Node[string] {
	t.Helper()
	toks, err := token.Tokenize(path)
	if err != nil {
		t.Fatalf("tokenize %q: %v", path, err)
	}
	parent := tr.Root()
	for _, tok := range toks {
		n := tr.Lookup(parent, tok)
		if n == nil {
			n = &Node[string]{Key: tok}
			if err := tr.Add(parent, n); err != nil {
				t.Fatalf("add %s under %q: %v", tok, parent.Path(), err)
			}
		}
		parent = n
	}
	parent.Value = path
	return parent
}

func paths(seq func(func(*Node[string]) bool)) []string {
	var res []string
	for n := range seq {
		res = append(res, n.Path())
	}
	return res
}

func withChecks(t *testing.T) {
	prev := debug.SetChecks(true)
	t.Cleanup(func() { debug.SetChecks(prev) })
}

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	f()
}

func TestAddLookup(t *testing.T) {
	tr := New[string]()
	in := []string{
		"a",
		"a.b",
		"a.c",
		"x[2]",
		"x[1]",
		"x[1].y",
		`["k k"]`,
		"поле.ключ",
	}
	nodes := map[string]*Node[string]{}
	for _, p := range in {
		nodes[p] = build(t, tr, p)
	}
	for _, p := range in {
		got := tr.LookupPath(nil, p)
		if got != nodes[p] {
			t.Errorf("LookupPath(%q) = %v, want %v", p, got, nodes[p])
			continue
		}
		if got.Value != p {
			t.Errorf("LookupPath(%q).Value = %q", p, got.Value)
		}
		if back := tr.LookupPath(nil, got.Path()); back != got {
			t.Errorf("Path() of %q does not resolve back: %q", p, got.Path())
		}

		// chained lookups reach the same node
		toks, _ := token.Tokenize(p)
		chained := tr.Root()
		for _, tok := range toks {
			chained = tr.Lookup(chained, tok)
		}
		if chained != got {
			t.Errorf("chained lookup of %q = %v", p, chained)
		}
		if direct := tr.Lookup(got.Parent(), got.Key); direct != got {
			t.Errorf("Lookup(parent, %s) = %v", got.Key, direct)
		}
	}
	// a, a.b, a.c, x, x[2], x[1], x[1].y, ["k k"], поле, поле.ключ
	if diff := cmp.Diff(10, tr.Len()); diff != "" {
		t.Errorf("Len (-want +got):\n%s", diff)
	}
	if tr.Lookup(nil, token.Str("a")) != nodes["a"] {
		t.Errorf("nil parent does not mean root")
	}
}

func TestLookupMiss(t *testing.T) {
	tr := New[string]()
	build(t, tr, "a.b")
	build(t, tr, "x[3]")
	for _, p := range []string{
		"",
		"z",
		"a.z",
		"a.b.c",
		"x[1]",
		"x[2]",
		"x[4]",
		"x[0]",
		"a[",
		"1a",
	} {
		if got := tr.LookupPath(nil, p); got != nil {
			t.Errorf("LookupPath(%q) = %v, want nil", p, got)
		}
	}
	a := tr.LookupPath(nil, "a")
	if got := tr.LookupPath(a, "b"); got == nil || got.Path() != "a.b" {
		t.Errorf("relative LookupPath = %v", got)
	}
	if got := tr.LookupPath(a, ""); got != nil {
		t.Errorf("empty relative LookupPath = %v, want nil", got)
	}
}

func TestSparseNumeric(t *testing.T) {
	tr := New[string]()
	x3 := build(t, tr, "x[3]")
	x := x3.Parent()
	if diff := cmp.Diff(3, x.ChildCount()); diff != "" {
		t.Errorf("ChildCount (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(2, x3.SiblingIndex()); diff != "" {
		t.Errorf("SiblingIndex (-want +got):\n%s", diff)
	}
	for i := range 2 {
		if x.Child(i) != nil {
			t.Errorf("slot %d not empty", i)
		}
	}
	if diff := cmp.Diff([]string{"x", "x[3]"}, paths(PreOrder(tr.Root()))); diff != "" {
		t.Errorf("preorder (-want +got):\n%s", diff)
	}
}

func TestGrowth(t *testing.T) {
	tr := New[string]()
	var sizes []int
	for _, p := range []string{"x[1]", "x[2]", "x[3]", "x[5]", "x[9]", "x[4]"} {
		n := build(t, tr, p)
		sizes = append(sizes, len(n.Parent().children))
	}
	if diff := cmp.Diff([]int{1, 2, 4, 8, 16, 16}, sizes); diff != "" {
		t.Errorf("children sizes (-want +got):\n%s", diff)
	}

	tr = New[string](WithMaxChildren(3))
	build(t, tr, "x[1]")
	n := build(t, tr, "x[3]")
	if diff := cmp.Diff(3, len(n.Parent().children)); diff != "" {
		t.Errorf("capped size (-want +got):\n%s", diff)
	}
}

func TestAddErrors(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		pre  []string
		key  token.Token
		want error
	}{
		{
			name: "zero index",
			key:  token.Num(0),
			want: ErrIndex,
		},
		{
			name: "huge index",
			key:  token.Num(1 << 62),
			want: ErrIndex,
		},
		{
			name: "index over child limit",
			opts: []Option{WithMaxChildren(4)},
			key:  token.Num(5),
			want: ErrAlloc,
		},
		{
			name: "default child limit",
			key:  token.Num(DefaultMaxChildren + 1),
			want: ErrAlloc,
		},
		{
			name: "string over child limit",
			opts: []Option{WithMaxChildren(2)},
			pre:  []string{"a.x", "a.y"},
			key:  token.Str("z"),
			want: ErrAlloc,
		},
		{
			name: "node limit",
			opts: []Option{WithMaxNodes(3)},
			pre:  []string{"a.x", "a.y"},
			key:  token.Str("z"),
			want: ErrAlloc,
		},
		{
			name: "numeric key on string slot",
			pre:  []string{"a.b", "a.c"},
			key:  token.Num(1),
			want: ErrSlotTaken,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := New[string](tc.opts...)
			a := build(t, tr, "a")
			for _, p := range tc.pre {
				build(t, tr, p)
			}
			count, n := a.ChildCount(), tr.Len()
			before := slices.Clone(a.children)

			node := &Node[string]{Key: tc.key}
			err := tr.Add(a, node)
			if !errors.Is(err, tc.want) {
				t.Fatalf("Add error = %v, want %v", err, tc.want)
			}
			if got := tr.Lookup(a, tc.key); got == node {
				t.Errorf("failed node is visible")
			}
			if node.Parent() != nil {
				t.Errorf("failed node has a parent")
			}
			if diff := cmp.Diff(count, a.ChildCount()); diff != "" {
				t.Errorf("ChildCount (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(n, tr.Len()); diff != "" {
				t.Errorf("Len (-want +got):\n%s", diff)
			}
			for i, c := range before {
				if a.Child(i) != c {
					t.Errorf("slot %d changed", i)
				}
			}
		})
	}
}

func TestFailedAddRetry(t *testing.T) {
	tr := New[string](WithMaxNodes(2))
	a := build(t, tr, "a")
	b := build(t, tr, "a.b")
	c := &Node[string]{Key: token.Str("c")}
	if err := tr.Add(a, c); !errors.Is(err, ErrAlloc) {
		t.Fatalf("Add = %v, want ErrAlloc", err)
	}
	if tr.Lookup(a, c.Key) != nil {
		t.Fatalf("a.c visible after failed add")
	}
	tr.Delete(b)
	if err := tr.Add(a, c); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if tr.LookupPath(nil, "a.c") != c {
		t.Errorf("a.c not found after retry")
	}
}

func TestDelete(t *testing.T) {
	tr := New[string]()
	a := build(t, tr, "a")
	b := build(t, tr, "a.b")
	c := build(t, tr, "a.c")
	d := build(t, tr, "a.d")

	tr.Delete(c)
	if tr.Lookup(c.Parent(), c.Key) != nil {
		t.Errorf("a.c visible after delete")
	}
	if c.Parent() != a {
		t.Errorf("deleted node lost its parent")
	}
	if diff := cmp.Diff([]int{0, 2}, []int{b.SiblingIndex(), d.SiblingIndex()}); diff != "" {
		t.Errorf("sibling indices (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "a.b", "a.d"}, paths(PreOrder(tr.Root()))); diff != "" {
		t.Errorf("preorder (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a.b", "a.d", "a"}, paths(PostOrder(tr.Root()))); diff != "" {
		t.Errorf("postorder (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(3, a.ChildCount()); diff != "" {
		t.Errorf("ChildCount (-want +got):\n%s", diff)
	}

	tr.Delete(d)
	if diff := cmp.Diff(1, a.ChildCount()); diff != "" {
		t.Errorf("ChildCount after trailing delete (-want +got):\n%s", diff)
	}
	e := build(t, tr, "a.e")
	if diff := cmp.Diff(1, e.SiblingIndex()); diff != "" {
		t.Errorf("reused slot (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(3, tr.Len()); diff != "" {
		t.Errorf("Len (-want +got):\n%s", diff)
	}

	x1 := build(t, tr, "x[1]")
	x2 := build(t, tr, "x[2]")
	tr.Delete(x1)
	if tr.LookupPath(nil, "x[1]") != nil {
		t.Errorf("x[1] visible after delete")
	}
	if tr.LookupPath(nil, "x[2]") != x2 {
		t.Errorf("x[2] lost")
	}
	if diff := cmp.Diff(1, x2.SiblingIndex()); diff != "" {
		t.Errorf("x[2] sibling index (-want +got):\n%s", diff)
	}
}

func TestTraversalOrder(t *testing.T) {
	tr := New[string]()
	for _, p := range []string{"a", "a[1]", "a.b", "a.c", "a.b.x", "z"} {
		build(t, tr, p)
	}
	pre := paths(PreOrder(tr.Root()))
	if diff := cmp.Diff([]string{"a", "a[1]", "a.b", "a.b.x", "a.c", "z"}, pre); diff != "" {
		t.Errorf("preorder (-want +got):\n%s", diff)
	}
	post := paths(PostOrder(tr.Root()))
	if diff := cmp.Diff([]string{"a[1]", "a.b.x", "a.b", "a.c", "a", "z"}, post); diff != "" {
		t.Errorf("postorder (-want +got):\n%s", diff)
	}

	order := map[*Node[string]]int{}
	i := 0
	for n := range PostOrder(tr.Root()) {
		order[n] = i
		i++
	}
	for n, at := range order {
		if p := n.Parent(); !p.IsRoot() && order[p] <= at {
			t.Errorf("%q visited before its child %q", p.Path(), n.Path())
		}
	}

	a := tr.LookupPath(nil, "a")
	if diff := cmp.Diff([]string{"a[1]", "a.b", "a.b.x", "a.c"}, paths(PreOrder(a))); diff != "" {
		t.Errorf("subtree preorder (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a[1]", "a.b.x", "a.b", "a.c"}, paths(PostOrder(a))); diff != "" {
		t.Errorf("subtree postorder (-want +got):\n%s", diff)
	}

	// resume from a held position
	b := tr.LookupPath(nil, "a.b")
	if got := PreorderNext(tr.Root(), b); got == nil || got.Path() != "a.b.x" {
		t.Errorf("PreorderNext(a.b) = %v", got)
	}
	if got := PostorderNext(tr.Root(), b); got == nil || got.Path() != "a.c" {
		t.Errorf("PostorderNext(a.b) = %v", got)
	}
	if got := PostorderNext(a, a); got != nil {
		t.Errorf("PostorderNext(root, root) = %v", got)
	}

	var seen []string
	for n := range PreOrder(tr.Root()) {
		seen = append(seen, n.Path())
		if len(seen) == 2 {
			break
		}
	}
	if diff := cmp.Diff([]string{"a", "a[1]"}, seen); diff != "" {
		t.Errorf("early stop (-want +got):\n%s", diff)
	}
}

func TestTraversalEmpty(t *testing.T) {
	tr := New[string]()
	if got := PreorderNext(tr.Root(), nil); got != nil {
		t.Errorf("PreorderNext on empty tree = %v", got)
	}
	if got := PostorderNext(tr.Root(), nil); got != nil {
		t.Errorf("PostorderNext on empty tree = %v", got)
	}
	leaf := build(t, tr, "a")
	if got := PostorderNext(leaf, nil); got != nil {
		t.Errorf("PostorderNext on leaf = %v", got)
	}
}

func TestHashChain(t *testing.T) {
	tr := New[string]()
	for _, p := range []string{"[1][1]", "a.b[2]", "a.c", "b['x y']"} {
		build(t, tr, p)
	}
	if diff := cmp.Diff(rootSeed, tr.Root().Hash()); diff != "" {
		t.Errorf("root hash (-want +got):\n%s", diff)
	}
	for n := range PreOrder(tr.Root()) {
		if want := keyHash(n.Key, n.Parent().Hash()); n.Hash() != want {
			t.Errorf("hash of %q = %#x, want %#x", n.Path(), n.Hash(), want)
		}
	}
	// the same key hashes differently under different parents
	ab := tr.LookupPath(nil, "a.b")
	if keyHash(token.Str("k"), ab.Hash()) == keyHash(token.Str("k"), rootSeed) {
		t.Errorf("hash does not depend on parent")
	}
}

func TestIndexCollisions(t *testing.T) {
	ix := newIndex[int](0)
	p1, p2 := &Node[int]{}, &Node[int]{}
	n1 := &Node[int]{Key: token.Str("a"), hash: 7, parent: p1}
	n2 := &Node[int]{Key: token.Str("a"), hash: 7, parent: p2}
	n3 := &Node[int]{Key: token.Str("b"), hash: 7, parent: p1}
	for _, n := range []*Node[int]{n1, n2, n3} {
		if err := ix.put(n); err != nil {
			t.Fatal(err)
		}
	}
	if ix.find(p1, token.Str("a"), 7) != n1 || ix.find(p2, token.Str("a"), 7) != n2 ||
		ix.find(p1, token.Str("b"), 7) != n3 {
		t.Errorf("bucket entries not told apart")
	}
	if ix.find(p1, token.Str("a"), 8) != nil {
		t.Errorf("found node under wrong hash")
	}
	if !ix.remove(n1) || ix.remove(n1) {
		t.Errorf("remove not idempotent")
	}
	if ix.find(p1, token.Str("a"), 7) != nil || ix.find(p2, token.Str("a"), 7) != n2 {
		t.Errorf("remove dropped the wrong entry")
	}
	ix.remove(n2)
	ix.remove(n3)
	if diff := cmp.Diff(0, len(ix.buckets)); diff != "" {
		t.Errorf("buckets (-want +got):\n%s", diff)
	}
}

func TestNumericNodesIndexed(t *testing.T) {
	tr := New[string]()
	x1 := build(t, tr, "x[1]")
	if tr.index.find(x1.Parent(), x1.Key, x1.Hash()) != x1 {
		t.Errorf("numeric node missing from index")
	}
	// numeric lookup reads the slot, so a stale index entry is never seen
	x1.Parent().children[0] = nil
	if tr.Lookup(x1.Parent(), token.Num(1)) != nil {
		t.Errorf("numeric lookup went through the index")
	}
}

func TestDeleteSubtree(t *testing.T) {
	withChecks(t)
	tr := New[string]()
	for _, p := range []string{"a.b.c", "a.b[2]", "a.d", "z.y"} {
		build(t, tr, p)
	}
	a := tr.LookupPath(nil, "a")
	tr.DeleteSubtree(a)
	if diff := cmp.Diff([]string{"z", "z.y"}, paths(PreOrder(tr.Root()))); diff != "" {
		t.Errorf("after subtree delete (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(2, tr.Len()); diff != "" {
		t.Errorf("Len (-want +got):\n%s", diff)
	}
	tr.DeleteSubtree(nil)
	if diff := cmp.Diff(0, tr.Len()); diff != "" {
		t.Errorf("Len after clearing (-want +got):\n%s", diff)
	}
	tr.Destroy()
}

func TestContracts(t *testing.T) {
	withChecks(t)

	tr := New[string]()
	ab := build(t, tr, "a.b")
	mustPanic(t, "duplicate add", func() {
		_ = tr.Add(nil, &Node[string]{Key: token.Str("a")})
	})
	mustPanic(t, "delete with children", func() {
		tr.Delete(ab.Parent())
	})
	mustPanic(t, "delete detached", func() {
		tr.Delete(&Node[string]{Key: token.Str("q")})
	})
	mustPanic(t, "destroy non-empty", func() {
		tr.Destroy()
	})
	mustPanic(t, "hash of end key", func() {
		keyHash(token.End(), rootSeed)
	})

	tr.Delete(ab)
	mustPanic(t, "double delete", func() {
		tr.Delete(ab)
	})
}

func TestUncheckedDeleteDetached(t *testing.T) {
	prev := debug.SetChecks(false)
	defer debug.SetChecks(prev)
	tr := New[string]()
	build(t, tr, "a")
	tr.Delete(&Node[string]{Key: token.Str("q")})
	if diff := cmp.Diff(1, tr.Len()); diff != "" {
		t.Errorf("Len (-want +got):\n%s", diff)
	}
}
