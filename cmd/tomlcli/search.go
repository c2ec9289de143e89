package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/lixenwraith/tomlcli"
)

func search(cfg *SearchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Search.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: search requires a TOML file and a pattern", cli.ErrUsage)
	}
	doc, err := tomlcli.LoadFile(args[0])
	if err != nil {
		return err
	}
	matches := doc.Search(args[1])
	if len(matches) == 0 {
		fmt.Fprintln(cc.Out, "No matches found.")
		return nil
	}
	for _, m := range matches {
		fmt.Fprintln(cc.Out, m)
	}
	return nil
}
