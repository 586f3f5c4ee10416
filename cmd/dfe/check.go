package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/go-dfe/fragment"
	"github.com/signadot/go-dfe/libdiff"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	m, err := cfg.mapper()
	if err != nil {
		return err
	}
	differ := 0
	err = cfg.eachDoc(cc, args, func(name string, doc *fragment.Fragment) error {
		model, obj, err := m.UnmarshalRoot(doc)
		if err != nil {
			return err
		}
		out, err := m.Marshal(obj)
		if err != nil {
			return err
		}
		changes := libdiff.Diff(doc, out)
		theLog.Debug("checked", "file", name, "model", model.Name, "changes", len(changes))
		if len(changes) == 0 {
			fmt.Fprintf(cc.Out, "%s: ok\n", name)
			return nil
		}
		differ++
		fmt.Fprintf(cc.Out, "%s: %s\n", name, libdiff.Summary(changes))
		if cfg.Quiet {
			return nil
		}
		return libdiff.Write(cc.Out, changes, cfg.colored(cc.Out))
	})
	if err != nil {
		return err
	}
	if differ != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
