package main

import (
	"fmt"

	"github.com/witchof0x20/msd-sub000/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if err := cfg.validate("diff"); err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := readDoc(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := readDoc(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	edits := libdiff.Diff(a, b)
	if !libdiff.Changed(edits) {
		return nil
	}
	if cfg.Reverse {
		edits = libdiff.Reverse(edits)
	}
	var opts []libdiff.FormatOption
	if cfg.useColor(cc.Out) {
		opts = append(opts, libdiff.FormatColors())
	}
	if cfg.Context {
		opts = append(opts, libdiff.FormatContext())
	}
	if err := libdiff.Write(cc.Out, edits, opts...); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
