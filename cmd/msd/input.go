package main

import (
	"fmt"
	"io"
	"os"

	"github.com/witchof0x20/msd-sub000/format"
	"github.com/witchof0x20/msd-sub000/ir"

	"github.com/scott-cotton/cli"
)

func openArg(cc *cli.Context, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cc.In), nil
	}
	return os.Open(path)
}

// readDoc reads the document at path ("-" for stdin) in its input format.
func readDoc(cfg *MainConfig, cc *cli.Context, path string) (*ir.Document, error) {
	r, err := openArg(cc, path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	f := cfg.inFormat(path)
	if f == format.MSDFormat {
		return ir.Parse(r)
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	switch f {
	case format.JSONFormat:
		return ir.FromJSON(d)
	case format.YAMLFormat:
		return ir.FromYAML(d)
	case format.TOMLFormat:
		return ir.FromTOML(d)
	}
	return nil, fmt.Errorf("%w: %v", format.ErrBadFormat, f)
}

func writeDoc(cfg *MainConfig, w io.Writer, doc *ir.Document) error {
	var (
		d   []byte
		err error
	)
	switch cfg.outFormat() {
	case format.MSDFormat:
		return doc.Encode(w, cfg.encOpts(w)...)
	case format.JSONFormat:
		d, err = doc.JSON()
		d = append(d, '\n')
	case format.YAMLFormat:
		d, err = doc.YAML()
	case format.TOMLFormat:
		d, err = doc.TOML()
	}
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// inputs is args, or stdin when there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
