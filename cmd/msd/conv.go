package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func conv(cfg *ConvConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Conv.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.validate("conv"); err != nil {
		return err
	}
	for _, arg := range inputs(args) {
		doc, err := readDoc(cfg.MainConfig, cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, doc); err != nil {
			return fmt.Errorf("error converting %s to %s: %w", arg, cfg.outFormat(), err)
		}
	}
	return nil
}
