package main

import (
	"github.com/scott-cotton/cli"

	"github.com/sjinzh/zig-yaml/parse"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{MaxDepth: parse.DefaultMaxDepth}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "zy").
		WithSynopsis("zy [opts] command [opts] [files]").
		WithDescription("zy is a tool for inspecting structured text documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return zyMain(cfg, cc, args)
		}).
		WithSubs(
			DumpCommand(cfg),
			TokensCommand(cfg),
			YamlCommand(cfg),
			DiffCommand(cfg))
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithAliases("d").
		WithSynopsis("dump [files]").
		WithDescription("parse documents and render their trees").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func TokensCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TokensConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Tokens, "tokens").
		WithAliases("t", "tok").
		WithSynopsis("tokens [-t] [files]").
		WithDescription("tokenize input and print the token buffer").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tokens(cfg, cc, args)
		})
}

func YamlCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &YamlConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Yaml, "yaml").
		WithAliases("y").
		WithSynopsis("yaml [files]").
		WithDescription("parse documents and re-emit them as yaml").
		WithRun(func(cc *cli.Context, args []string) error {
			return yamlRun(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("di").
		WithSynopsis("diff a b").
		WithDescription("diff the rendered trees of two inputs").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
