package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/lixenwraith/tomlcli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: set requires a TOML file, a key path and a value", cli.ErrUsage)
	}
	file, path, raw := args[0], args[1], args[2]

	value := tomlcli.Coerce(raw)

	doc, err := tomlcli.LoadFile(file)
	if err != nil {
		return err
	}
	if err := doc.Set(path, value); err != nil {
		return err
	}
	if err := tomlcli.SaveFile(file, doc); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "Successfully set %s = %s\n", path, value)
	return nil
}

func remove(cfg *RemoveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Remove.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: remove requires a TOML file and a key path", cli.ErrUsage)
	}
	file, path := args[0], args[1]

	doc, err := tomlcli.LoadFile(file)
	if err != nil {
		return err
	}
	if err := doc.Remove(path); err != nil {
		return err
	}
	if err := tomlcli.SaveFile(file, doc); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "Successfully removed '%s'\n", path)
	return nil
}

func rename(cfg *RenameConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rename.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: rename requires a TOML file, an old key path and a new key path", cli.ErrUsage)
	}
	file, oldPath, newPath := args[0], args[1], args[2]

	doc, err := tomlcli.LoadFile(file)
	if err != nil {
		return err
	}
	if err := doc.Rename(oldPath, newPath); err != nil {
		return err
	}
	if err := tomlcli.SaveFile(file, doc); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "Successfully renamed '%s' -> '%s'\n", oldPath, newPath)
	return nil
}
