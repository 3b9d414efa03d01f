package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/sjinzh/zig-yaml/ast"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := renderInput(cfg, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := renderInput(cfg, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if a == b {
		return nil
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, true)
	fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
	return cli.ExitCodeErr(1)
}

// renderInput renders without color so the diff operates on stable text.
func renderInput(cfg *DiffConfig, cc *cli.Context, path string) (string, error) {
	tree, err := getTree(cc, path, cfg.parseOpts()...)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, doc := range tree.Docs() {
		sb.WriteString(ast.Render(doc, tree, ast.RenderSpans(cfg.Pos)))
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
