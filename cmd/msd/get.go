package main

import (
	"fmt"

	"github.com/witchof0x20/msd-sub000/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

// tagEnv is what a get expression sees of a tag.
type tagEnv struct {
	Name  string     `expr:"name"`
	Cells []string   `expr:"cells"`
	Rows  [][]string `expr:"rows"`
	Line  int        `expr:"line"`
}

func newTagEnv(t *ir.Tag) tagEnv {
	env := tagEnv{Name: t.Name(), Line: int(t.Pos.Line) + 1}
	for i, r := range t.Rows {
		vs := r.Values()
		if i == 0 {
			env.Cells = vs
		}
		env.Rows = append(env.Rows, vs)
	}
	return env
}

func compileQuery(src string) (*vm.Program, error) {
	return expr.Compile(src, expr.Env(tagEnv{}), expr.AsBool())
}

// query lists the tags of doc for which prg holds.
func query(prg *vm.Program, doc *ir.Document) ([]*ir.Tag, error) {
	var res []*ir.Tag
	for _, t := range doc.Tags {
		out, err := expr.Run(prg, newTagEnv(t))
		if err != nil {
			return nil, fmt.Errorf("tag at %s: %w", t.Pos, err)
		}
		if out.(bool) {
			res = append(res, t)
		}
	}
	return res, nil
}

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if err := cfg.validate("get"); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an expression", cli.ErrUsage)
	}
	prg, err := compileQuery(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for _, arg := range inputs(args[1:]) {
		doc, err := readDoc(cfg.MainConfig, cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		tags, err := query(prg, doc)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, args[0], err)
		}
		if cfg.Count {
			fmt.Fprintf(cc.Out, "%d\n", len(tags))
			continue
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, &ir.Document{Tags: tags}); err != nil {
			return err
		}
	}
	return nil
}
