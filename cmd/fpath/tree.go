package main

import (
	"fmt"

	"github.com/signadot/fieldpath/encode"
	"github.com/signadot/fieldpath/eval"
	"github.com/signadot/fieldpath/schema"
	"github.com/signadot/fieldpath/tree"

	"github.com/scott-cotton/cli"
)

func showTree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		cfg.Tree.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: tree requires 1 spec file, got %v", cli.ErrUsage, args)
	}
	var filter *eval.Filter
	if cfg.Where != "" {
		filter, err = eval.Compile(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	f, err := loadFormat(cc, args[0])
	if err != nil {
		return err
	}
	defer f.Destroy()

	var matchErr error
	label := func(n *tree.Node[*schema.Field]) (string, bool) {
		fd := n.Value
		if filter == nil {
			return fieldLabel(fd), true
		}
		if matchErr != nil {
			return "", false
		}
		env := eval.NodeEnv(n)
		env.Leaf = fd.Leaf()
		env.Type = fd.Type.String()
		ok, err := filter.Match(env)
		if err != nil {
			matchErr = err
			return "", false
		}
		return fieldLabel(fd), ok
	}
	opts := append(cfg.encOpts(cc.Out),
		encode.EncodePostOrder(cfg.Post),
		encode.EncodeFlat(filter != nil))
	if err := encode.EncodeTree(cc.Out, f.Tree().Root(), label, opts...); err != nil {
		return err
	}
	return matchErr
}
