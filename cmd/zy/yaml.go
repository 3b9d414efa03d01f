package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/sjinzh/zig-yaml/ast"
)

func yamlRun(cfg *YamlConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Yaml.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	n := 0
	for _, file := range args {
		tree, err := getTree(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		for i, doc := range tree.Docs() {
			out, err := yaml.Marshal(yamlValue(doc, tree))
			if err != nil {
				return fmt.Errorf("error encoding document %d of %s: %w", i, file, err)
			}
			if n > 0 {
				if _, err := cc.Out.Write([]byte("---\n")); err != nil {
					return err
				}
			}
			if _, err := cc.Out.Write(out); err != nil {
				return err
			}
			n++
		}
	}
	return nil
}

// yamlValue lowers a document tree to plain values for re-encoding.  Map
// entries keep their source order; scalars stay strings.
func yamlValue(n *ast.Node, src ast.Source) any {
	switch n.Type {
	case ast.DocumentType:
		if n.Value == nil {
			return nil
		}
		return yamlValue(n.Value, src)
	case ast.MapType:
		m := yaml.MapSlice{}
		for _, e := range n.Entries {
			m = append(m, yaml.MapItem{
				Key:   src.GetRaw(e.Key, e.Key),
				Value: yamlValue(e.Value, src),
			})
		}
		return m
	case ast.ListType:
		vs := make([]any, 0, len(n.Values))
		for _, v := range n.Values {
			vs = append(vs, yamlValue(v, src))
		}
		return vs
	case ast.ScalarType:
		return n.String
	}
	return nil
}
