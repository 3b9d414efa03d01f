package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/sjinzh/zig-yaml/ast"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	opts := cfg.renderOpts(cc.Out)
	for _, file := range args {
		tree, err := getTree(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		for _, doc := range tree.Docs() {
			fmt.Fprintln(cc.Out, ast.Render(doc, tree, opts...))
		}
	}
	return nil
}
