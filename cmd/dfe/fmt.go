package main

import (
	"github.com/scott-cotton/cli"

	"github.com/signadot/go-dfe/encode"
	"github.com/signadot/go-dfe/fragment"
)

func format(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	indent := cfg.Indent
	if indent == "" {
		indent = "  "
	}
	if cfg.Compact {
		indent = ""
	}
	return cfg.eachDoc(cc, args, func(_ string, doc *fragment.Fragment) error {
		if err := encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out, indent)...); err != nil {
			return err
		}
		if indent != "" {
			return nil
		}
		_, err := cc.Out.Write([]byte{'\n'})
		return err
	})
}
