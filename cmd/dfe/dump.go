package main

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/signadot/go-dfe/fragment"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if count(cfg.J, cfg.Y) > 1 {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	m, err := cfg.mapper()
	if err != nil {
		return err
	}
	return cfg.eachDoc(cc, args, func(name string, doc *fragment.Fragment) error {
		_, obj, err := m.UnmarshalRoot(doc)
		if err != nil {
			return err
		}
		var d []byte
		if cfg.J {
			d, err = json.MarshalIndent(obj, "", "  ")
			d = append(d, '\n')
		} else {
			d, err = yaml.Marshal(obj)
		}
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(d)
		return err
	})
}
