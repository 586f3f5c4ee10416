package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/scott-cotton/cli"

	"github.com/signadot/go-dfe/xmlmap"
)

func types(cfg *TypesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Types.Parse(cc, args)
	if err != nil {
		cfg.Types.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: types takes no arguments", cli.ErrUsage)
	}
	m, err := cfg.mapper()
	if err != nil {
		return err
	}
	reg := m.Registry()
	for _, name := range reg.Names() {
		model, err := reg.ByName(name)
		if err != nil {
			return err
		}
		root := ""
		if model.Root != nil {
			root = " root=" + model.Root.String()
		}
		fmt.Fprintf(cc.Out, "%s (%s)%s\n", model.Name, model.Type, root)
		for _, f := range model.Fields {
			tags := lo.Map(f.Descriptors, func(d xmlmap.Descriptor, _ int) string { return d.String() })
			fmt.Fprintf(cc.Out, "\t%s %s %s\n", f.Name, f.Class(), strings.Join(tags, " | "))
		}
	}
	return nil
}
