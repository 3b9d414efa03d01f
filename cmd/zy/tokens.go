package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/sjinzh/zig-yaml/token"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		for i, tok := range token.Tokenize(d) {
			if cfg.Text && tok.Start < tok.End && tok.Type != token.TNewLine {
				fmt.Fprintf(cc.Out, "%4d %s %q\n", i, tok.Info(), d[tok.Start:tok.End])
				continue
			}
			fmt.Fprintf(cc.Out, "%4d %s\n", i, tok.Info())
		}
	}
	return nil
}
