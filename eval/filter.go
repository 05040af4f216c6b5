package eval

import (
	"errors"
	"fmt"

	"github.com/signadot/fieldpath/debug"
	"github.com/signadot/fieldpath/token"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrFilter = errors.New("invalid filter")

type Filter struct {
	src  string
	prog *vm.Program
}

// Compile compiles src into a filter. src must evaluate to a bool.
func Compile(src string) (*Filter, error) {
	opts := append([]expr.Option{expr.Env(Env{}), expr.AsBool()}, exprOpts()...)
	prog, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFilter, err)
	}
	return &Filter{src: src, prog: prog}, nil
}

func (f *Filter) String() string {
	return f.src
}

// Match evaluates f against env.
func (f *Filter) Match(env Env) (bool, error) {
	out, err := expr.Run(f.prog, env)
	if err != nil {
		return false, fmt.Errorf("filter %q on %q: %w", f.src, env.Path, err)
	}
	if debug.Tree() {
		debug.Logf("filter %q on %q: %v\n", f.src, env.Path, out)
	}
	return out.(bool), nil
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("cmppath", func(params ...any) (any, error) {
			a, b := params[0].(string), params[1].(string)
			if err := token.Validate(a); err != nil {
				return nil, err
			}
			return token.ComparePaths(a, b), nil
		},
			new(func(string, string) int)),
		expr.Function("validpath", func(params ...any) (any, error) {
			return token.Validate(params[0].(string)) == nil, nil
		},
			new(func(string) bool)),
		expr.Function("prefix", func(params ...any) (any, error) {
			return hasPrefix(params[0].(string), params[1].(string))
		},
			new(func(string, string) bool)),
	}
}

func hasPrefix(p, q string) (bool, error) {
	pt, err := token.Tokenize(p)
	if err != nil {
		return false, err
	}
	qt, err := token.Tokenize(q)
	if err != nil {
		return false, err
	}
	if len(qt) > len(pt) {
		return false, nil
	}
	for i, t := range qt {
		if !t.Equal(pt[i]) {
			return false, nil
		}
	}
	return true, nil
}
