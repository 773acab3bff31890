package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.validate("check"); err != nil {
		return err
	}
	failed := 0
	for _, arg := range inputs(args) {
		doc, err := readDoc(cfg.MainConfig, cc, arg)
		if err != nil {
			failed++
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: %v\n", arg, err)
			}
			continue
		}
		theLog.Info("ok", "file", arg, "tags", len(doc.Tags))
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
