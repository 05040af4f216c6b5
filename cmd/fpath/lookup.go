package main

import (
	"fmt"

	"github.com/signadot/fieldpath/encode"
	"github.com/signadot/fieldpath/token"

	"github.com/scott-cotton/cli"
)

func lookup(cfg *LookupConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Lookup.Parse(cc, args)
	if err != nil {
		cfg.Lookup.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: lookup requires a spec file and at least one path", cli.ErrUsage)
	}
	f, err := loadFormat(cc, args[0])
	if err != nil {
		return err
	}
	defer f.Destroy()

	opts := cfg.encOpts(cc.Out)
	missing := 0
	for _, p := range args[1:] {
		if err := token.Validate(p); err != nil {
			missing++
			if err := encode.EncodeError(cc.Out, p, err, opts...); err != nil {
				return err
			}
			continue
		}
		fd := f.Lookup(p)
		if fd == nil {
			missing++
			fmt.Fprintf(cc.Out, "%s: not found\n", p)
			continue
		}
		fmt.Fprintf(cc.Out, "%s: %s\n", fd.Path(), fieldLabel(fd))
	}
	if missing != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
