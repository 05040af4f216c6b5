package main

import (
	"fmt"
	"io"

	"github.com/signadot/fieldpath/schema"

	"github.com/scott-cotton/cli"
)

// loadFormat builds the format of the spec in file, or in the command
// input if file is "-".
func loadFormat(cc *cli.Context, file string) (*schema.Format, error) {
	var (
		spec *schema.Spec
		err  error
	)
	if file == "-" {
		var d []byte
		d, err = io.ReadAll(cc.In)
		if err != nil {
			return nil, err
		}
		spec, err = schema.Load(d)
	} else {
		spec, err = schema.LoadFile(file)
	}
	if err != nil {
		return nil, err
	}
	f, err := schema.Build(spec)
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", file, err)
	}
	return f, nil
}

func fieldLabel(fd *schema.Field) string {
	if !fd.Leaf() {
		return fd.Type.String()
	}
	res := fd.Type.String()
	if fd.Nullable() {
		res += "?"
	}
	return fmt.Sprintf("%s %v", res, fd.Indexes())
}
