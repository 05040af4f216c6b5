package eval

import (
	"github.com/signadot/fieldpath/token"
	"github.com/signadot/fieldpath/tree"
)

// Env is what a filter sees of a node.
type Env struct {
	Path  string `expr:"path"`
	Key   string `expr:"key"`
	Kind  string `expr:"kind"`
	Index int    `expr:"index"`
	Depth int    `expr:"depth"`
	Leaf  bool   `expr:"leaf"`
	Type  string `expr:"type"`
}

// NodeEnv describes n. Leaf is set for nodes without children and Type is
// left empty.
func NodeEnv[T any](n *tree.Node[T]) Env {
	env := Env{
		Path:  n.Path(),
		Kind:  n.Key.Type.String(),
		Depth: n.Depth(),
		Leaf:  n.ChildCount() == 0,
	}
	switch n.Key.Type {
	case token.StrType:
		env.Key = n.Key.Str
	case token.NumType:
		env.Key = n.Key.String()
		env.Index = int(n.Key.Num)
	}
	return env
}
