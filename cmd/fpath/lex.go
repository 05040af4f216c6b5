package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/signadot/fieldpath/encode"
	"github.com/signadot/fieldpath/token"

	"github.com/scott-cotton/cli"
)

func lex(cfg *LexConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Lex.Parse(cc, args)
	if err != nil {
		cfg.Lex.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: lex requires at least one path", cli.ErrUsage)
	}
	opts := cfg.encOpts(cc.Out)
	bad := 0
	for _, p := range args {
		toks, err := token.Tokenize(p)
		if err != nil {
			bad++
			if err := encode.EncodeError(cc.Out, p, err, opts...); err != nil {
				return err
			}
			continue
		}
		if cfg.Path {
			if err := encode.EncodePath(cc.Out, toks, opts...); err != nil {
				return err
			}
			_, err = io.WriteString(cc.Out, "\n")
		} else {
			err = encode.EncodeTokens(cc.Out, toks, opts...)
		}
		if err != nil {
			return err
		}
	}
	if bad != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func cmpPaths(cfg *CmpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cmp.Parse(cc, args)
	if err != nil {
		cfg.Cmp.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	opts := cfg.encOpts(cc.Out)
	if cfg.Sort {
		for _, p := range args {
			if err := token.Validate(p); err != nil {
				encode.EncodeError(cc.Out, p, err, opts...)
				return cli.ExitCodeErr(1)
			}
		}
		sorted := slices.Clone(args)
		slices.SortStableFunc(sorted, token.ComparePaths)
		for _, p := range sorted {
			fmt.Fprintln(cc.Out, p)
		}
		return nil
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: cmp requires at least 2 paths, got %d", cli.ErrUsage, len(args))
	}
	a := args[0]
	if err := token.Validate(a); err != nil {
		encode.EncodeError(cc.Out, a, err, opts...)
		return cli.ExitCodeErr(1)
	}
	for _, b := range args[1:] {
		fmt.Fprintf(cc.Out, "%d\t%s\n", token.ComparePaths(a, b), b)
	}
	return nil
}
