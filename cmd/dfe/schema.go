package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/go-dfe/schemapath"
)

func schema(cfg *SchemaConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Schema.Parse(cc, args)
	if err != nil {
		cfg.Schema.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.List {
		for _, s := range schemapath.All() {
			fmt.Fprintln(cc.Out, s)
		}
		return nil
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: schema requires an id and an optional version", cli.ErrUsage)
	}
	s, err := schemapath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	version := cfg.version()
	if len(args) == 2 {
		version = args[1]
	}
	p, err := cfg.resolver(cfg.Stat).Resolve(s, version)
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, p)
	return nil
}
