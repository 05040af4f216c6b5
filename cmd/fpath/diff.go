package main

import (
	"fmt"

	"github.com/signadot/fieldpath/libdiff"

	"github.com/scott-cotton/cli"
)

func diffSpecs(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 spec files, got %v", cli.ErrUsage, args)
	}
	from, err := loadFormat(cc, args[0])
	if err != nil {
		return err
	}
	defer from.Destroy()
	to, err := loadFormat(cc, args[1])
	if err != nil {
		return err
	}
	defer to.Destroy()

	edits := libdiff.DiffPaths(from.Paths(), to.Paths())
	if cfg.Reverse {
		edits = libdiff.Reverse(edits)
	}
	for _, e := range edits {
		fmt.Fprintln(cc.Out, e)
	}
	if libdiff.Changed(edits) {
		return cli.ExitCodeErr(1)
	}
	return nil
}
