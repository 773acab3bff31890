package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/witchof0x20/msd-sub000/format"

	"github.com/scott-cotton/cli"
)

func msdMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	if cfg.Verbose {
		theLog = newLog(os.Stderr, true)
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// validate checks the global options against the subcommand sub, which
// calls it once its own options are parsed. view, check and diff only ever
// write msd, and only msd output is colored or written on one line.
func (cfg *MainConfig) validate(sub string) error {
	switch sub {
	case "view", "check", "diff":
		if cfg.OutFormat != nil && *cfg.OutFormat != format.MSDFormat {
			return fmt.Errorf("%w: %s does not take -O %s", cli.ErrUsage, sub, *cfg.OutFormat)
		}
		return nil
	}
	out := cfg.outFormat()
	if out == format.MSDFormat {
		return nil
	}
	switch {
	case cfg.Color:
		return fmt.Errorf("%w: -color needs msd output, not %s", cli.ErrUsage, out)
	case cfg.OneLine:
		return fmt.Errorf("%w: -1 needs msd output, not %s", cli.ErrUsage, out)
	}
	return nil
}

// outOpt redirects output to a file. Unless -O says otherwise, the file's
// extension picks the output format.
func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	if f, ok := format.ForPath(a); ok {
		cfg.outGuess = &f
	}
	f, err := os.Create(a)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}
