package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "fpath").
		WithSynopsis("fpath [opts] command [opts]").
		WithDescription("fpath is a tool for working with field paths and index definitions.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fpathMain(cfg, cc, args)
		}).
		WithSubs(
			LexCommand(cfg),
			CmpCommand(cfg),
			TreeCommand(cfg),
			LookupCommand(cfg),
			DiffCommand(cfg))
}

func LexCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LexConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Lex, "lex").
		WithAliases("l").
		WithSynopsis("lex [opts] <path>...").
		WithDescription("split paths into tokens, reporting the position of syntax errors").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return lex(cfg, cc, args)
		})
}

func CmpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CmpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Cmp, "cmp").
		WithAliases("c").
		WithSynopsis("cmp [opts] <path> <path>... | cmp -sort <path>...").
		WithDescription(cmpDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return cmpPaths(cfg, cc, args)
		})
}

const cmpDescription = `cmp compares a path with each following path.

For each pair it prints -1, 0 or 1. Paths are compared token by token: numeric
keys sort before string keys, string keys by length and then bytes, numeric
keys by value. A path extending another sorts after it. If the comparison
runs into a syntax error in a later path, the position of the error is printed
instead.

With -sort, cmp prints its arguments in path order.`

func TreeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TreeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Tree, "tree").
		WithAliases("t").
		WithSynopsis("tree [opts] <spec.yaml>").
		WithDescription(treeDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return showTree(cfg, cc, args)
		})
}

const treeDescription = `tree builds the field format of an index spec and prints its fields.

Fields are listed parents first, or children first with -post. With -where,
only fields matching the filter expression are listed, by full path. Filters
see path, key, kind ("str" or "num"), index, depth, leaf and type, and may call
cmppath(a, b), validpath(p) and prefix(p, q).

  fpath tree -where 'leaf && type == "string"' users.yaml`

func LookupCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LookupConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Lookup, "lookup").
		WithAliases("get", "g").
		WithSynopsis("lookup <spec.yaml> <path>...").
		WithDescription("look up paths in the field format of an index spec").
		WithRun(func(cc *cli.Context, args []string) error {
			return lookup(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff [opts] <a.yaml> <b.yaml>").
		WithDescription("diff the indexed fields of two index specs, exiting 1 if they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diffSpecs(cfg, cc, args)
		})
}
