package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/lixenwraith/tomlcli"
)

func listKeys(cfg *ListKeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.ListKeys.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: list-keys requires one argument, a TOML file", cli.ErrUsage)
	}
	doc, err := tomlcli.LoadFile(args[0])
	if err != nil {
		return err
	}
	for _, key := range doc.Keys() {
		fmt.Fprintln(cc.Out, key)
	}
	return nil
}

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: get requires a TOML file and a key path", cli.ErrUsage)
	}
	doc, err := tomlcli.LoadFile(args[0])
	if err != nil {
		return err
	}
	value, err := doc.Get(args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, value)
	return nil
}
