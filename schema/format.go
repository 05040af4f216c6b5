package schema

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/signadot/fieldpath/debug"
	"github.com/signadot/fieldpath/token"
	"github.com/signadot/fieldpath/tree"
)

// Field is one node of a format. Intermediate fields are maps or arrays;
// leaf fields are referenced by the index parts naming them.
type Field struct {
	Type FieldType

	// refs maps index names to the nullability their part declared.
	refs map[string]bool
	node *tree.Node[*Field]
}

func (f *Field) Path() string {
	return f.node.Path()
}

func (f *Field) Key() token.Token {
	return f.node.Key
}

func (f *Field) Depth() int {
	return f.node.Depth()
}

func (f *Field) Leaf() bool {
	return len(f.refs) != 0
}

// Nullable reports whether every part naming f allows null.
func (f *Field) Nullable() bool {
	if len(f.refs) == 0 {
		return false
	}
	for _, n := range f.refs {
		if !n {
			return false
		}
	}
	return true
}

// Indexes returns the sorted names of the indexes referencing f.
func (f *Field) Indexes() []string {
	return slices.Sorted(maps.Keys(f.refs))
}

// Node returns the tree node holding f.
func (f *Field) Node() *tree.Node[*Field] {
	return f.node
}

// Format is the set of fields named by the indexes of a spec.
type Format struct {
	tree    *tree.Tree[*Field]
	indexes map[string][]Part
}

func NewFormat(opts ...tree.Option) *Format {
	return &Format{
		tree:    tree.New[*Field](opts...),
		indexes: map[string][]Part{},
	}
}

// Build validates spec and adds the deduplicated parts of each of its
// indexes to a new format.
func Build(spec *Spec, opts ...tree.Option) (*Format, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if debug.Schema() {
		debug.LogAny(spec)
	}
	f := NewFormat(opts...)
	for _, idx := range spec.Indexes {
		for j, p := range Dedup(idx.Parts) {
			if err := f.AddPart(idx.Name, p); err != nil {
				f.Destroy()
				return nil, &PartError{Index: idx.Name, Part: j, Path: p.Path, Err: err}
			}
		}
	}
	return f, nil
}

// Tree returns the tree of f. Callers must not modify it.
func (f *Format) Tree() *tree.Tree[*Field] {
	return f.tree
}

// AddPart adds the field named by p, and any missing intermediate fields,
// on behalf of the index named index. If AddPart fails, the fields it
// created are removed again.
func (f *Format) AddPart(index string, p Part) error {
	if err := p.Validate(); err != nil {
		return err
	}
	toks, err := token.Tokenize(p.Path)
	if err != nil {
		return err
	}
	var created []*tree.Node[*Field]
	rollback := func() {
		for _, n := range slices.Backward(created) {
			f.tree.Delete(n)
		}
	}
	parent := f.tree.Root()
	for i, tok := range toks {
		want := p.Type
		if i < len(toks)-1 {
			want = containerFor(toks[i+1])
		}
		n := f.tree.Lookup(parent, tok)
		if n != nil && !n.Key.Equal(tok) {
			// only at the root, where string and numeric keys may mix
			rollback()
			return fmt.Errorf("%w: slot of %s is held by %q", ErrConflict, tok, n.Path())
		}
		if n == nil {
			n = &tree.Node[*Field]{Key: tok}
			n.Value = &Field{Type: want, node: n}
			if err := f.tree.Add(parent, n); err != nil {
				rollback()
				return fmt.Errorf("adding %q: %w", p.Path, err)
			}
			created = append(created, n)
			if debug.Schema() {
				debug.Logf("schema add %q as %s\n", n.Path(), want)
			}
		} else if err := checkField(n.Value, want, i == len(toks)-1); err != nil {
			rollback()
			return err
		}
		parent = n
	}
	leaf := parent.Value
	if leaf.refs == nil {
		leaf.refs = map[string]bool{}
	}
	leaf.refs[index] = p.Nullable
	f.indexes[index] = append(f.indexes[index], p)
	return nil
}

func containerFor(next token.Token) FieldType {
	if next.Type == token.NumType {
		return ArrayType
	}
	return MapType
}

func checkField(fd *Field, want FieldType, last bool) error {
	switch {
	case !last && fd.Leaf():
		return fmt.Errorf("%w: %q is a %s leaf, not a %s", ErrConflict, fd.Path(), fd.Type, want)
	case last && !fd.Leaf():
		return fmt.Errorf("%w: %q is a %s, not a %s leaf", ErrConflict, fd.Path(), fd.Type, want)
	case fd.Type != want:
		return fmt.Errorf("%w: %q is %s, not %s", ErrConflict, fd.Path(), fd.Type, want)
	}
	return nil
}

// Lookup returns the field at path, or nil.
func (f *Format) Lookup(path string) *Field {
	n := f.tree.LookupPath(nil, path)
	if n == nil {
		return nil
	}
	return n.Value
}

// All yields every field of f, parents before children.
func (f *Format) All() iter.Seq[*Field] {
	return func(yield func(*Field) bool) {
		for n := range tree.PreOrder(f.tree.Root()) {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Paths returns the paths of the leaf fields of f in path order.
func (f *Format) Paths() []string {
	var res []string
	for fd := range f.All() {
		if fd.Leaf() {
			res = append(res, fd.Path())
		}
	}
	slices.SortFunc(res, token.ComparePaths)
	return res
}

// Indexes returns the sorted names of the indexes in f.
func (f *Format) Indexes() []string {
	return slices.Sorted(maps.Keys(f.indexes))
}

// Parts returns the parts added for index, in the order they were added.
func (f *Format) Parts(index string) []Part {
	return slices.Clone(f.indexes[index])
}

// RemoveIndex drops the references of index from f. Leaf fields no other
// index references are removed, as are intermediate fields left empty.
func (f *Format) RemoveIndex(index string) error {
	if _, ok := f.indexes[index]; !ok {
		return fmt.Errorf("%w %q", ErrNoIndex, index)
	}
	delete(f.indexes, index)
	for n := range tree.SafePostOrder(f.tree.Root()) {
		fd := n.Value
		if fd.Leaf() {
			delete(fd.refs, index)
			if fd.Leaf() {
				continue
			}
		} else if n.ChildCount() != 0 {
			continue
		}
		if debug.Schema() {
			debug.Logf("schema remove %q\n", n.Path())
		}
		f.tree.Delete(n)
	}
	return nil
}

// Destroy removes every field of f.
func (f *Format) Destroy() {
	f.tree.DeleteSubtree(nil)
	f.tree.Destroy()
	clear(f.indexes)
}
