package main

import (
	"io"
	"os"

	"github.com/signadot/fieldpath/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	Gops  bool `cli:"name=gops desc='start a gops diagnostics agent'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type LexConfig struct {
	*MainConfig
	Path bool `cli:"name=p aliases=path desc='print the canonical path instead of tokens'"`

	Lex *cli.Command
}

type CmpConfig struct {
	*MainConfig
	Sort bool `cli:"name=sort desc='print the paths in path order'"`

	Cmp *cli.Command
}

type TreeConfig struct {
	*MainConfig
	Post  bool   `cli:"name=post desc='list children before their parents'"`
	Where string `cli:"name=where desc='only list fields matching the filter expression'"`

	Tree *cli.Command
}

type LookupConfig struct {
	*MainConfig

	Lookup *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}
