package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/sjinzh/zig-yaml/ast"
	"github.com/sjinzh/zig-yaml/parse"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render with color'"`
	Pos   bool `cli:"name=pos desc='annotate rendered nodes with token spans'"`

	MaxDepth int `cli:"name=maxDepth desc='max structural nesting depth'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.Option {
	return []parse.Option{parse.WithMaxDepth(cfg.MaxDepth)}
}

func (cfg *MainConfig) renderOpts(w io.Writer) []ast.RenderOption {
	res := []ast.RenderOption{ast.RenderSpans(cfg.Pos)}
	if cfg.Color {
		return append(res, ast.RenderColors(ast.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, ast.RenderColors(ast.NewColors()))
	}
	return res
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type TokensConfig struct {
	*MainConfig
	Text bool `cli:"name=t desc='include raw token text'"`

	Tokens *cli.Command
}

type YamlConfig struct {
	*MainConfig

	Yaml *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
