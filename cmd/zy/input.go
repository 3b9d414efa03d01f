package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/sjinzh/zig-yaml/parse"
)

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getTree(cc *cli.Context, path string, opts ...parse.Option) (*parse.Tree, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	tree := parse.New()
	if err := tree.Parse(d, opts...); err != nil {
		return nil, err
	}
	return tree, nil
}
