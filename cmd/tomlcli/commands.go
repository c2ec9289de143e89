package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	return cli.NewCommandAt(&cfg.Main, "tomlcli").
		WithSynopsis("tomlcli command [opts] <file> [args]").
		WithDescription("tomlcli is a tool for manipulating TOML files by dotted key path.").
		WithRun(func(cc *cli.Context, args []string) error {
			return tomlcliMain(cfg, cc, args)
		}).
		WithSubs(
			ListKeysCommand(cfg),
			GetCommand(cfg),
			SetCommand(cfg),
			RemoveCommand(cfg),
			RenameCommand(cfg),
			SearchCommand(cfg),
			BulkSetCommand(cfg),
			ExportCommand(cfg))
}

func tomlcliMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func ListKeysCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListKeysConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.ListKeys, "list-keys").
		WithAliases("ls").
		WithSynopsis("list-keys <file>").
		WithDescription("list the top-level keys of a TOML file").
		WithRun(func(cc *cli.Context, args []string) error {
			return listKeys(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <file> <key.path>").
		WithDescription("print the value at a dotted key path").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Set, "set").
		WithAliases("s").
		WithSynopsis("set <file> <key.path> <value>").
		WithDescription("set a value at a dotted key path, creating intermediate tables; "+
			"the value goes through extended type parsing: true/false, {inline=tables}, [arrays], numbers, strings").
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func RemoveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RemoveConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Remove, "remove").
		WithAliases("rm").
		WithSynopsis("remove <file> <key.path>").
		WithDescription("remove the key at a dotted key path").
		WithRun(func(cc *cli.Context, args []string) error {
			return remove(cfg, cc, args)
		})
}

func RenameCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenameConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Rename, "rename").
		WithAliases("mv").
		WithSynopsis("rename <file> <old.path> <new.path>").
		WithDescription("move a value from one dotted key path to another").
		WithRun(func(cc *cli.Context, args []string) error {
			return rename(cfg, cc, args)
		})
}

func SearchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SearchConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Search, "search").
		WithSynopsis("search <file> <pattern>").
		WithDescription("search keys and values for a substring").
		WithRun(func(cc *cli.Context, args []string) error {
			return search(cfg, cc, args)
		})
}

func BulkSetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BulkSetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.BulkSet, "bulk-set").
		WithSynopsis("bulk-set <file> <json-file-or-inline-json>").
		WithDescription("deep-merge a JSON (or YAML) payload into the TOML file; "+
			"the argument is a payload file path if such a file exists, otherwise it is parsed inline").
		WithRun(func(cc *cli.Context, args []string) error {
			return bulkSet(cfg, cc, args)
		})
}

func ExportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExportConfig{MainConfig: mainCfg, Format: "plaintext"}
	opts := []*cli.Opt{
		{
			Name:        "format",
			Aliases:     []string{"f"},
			Description: "export format: plaintext, csv, json, table",
			Type:        cli.NamedFuncOpt(cfg.formatOpt, "(format)"),
		},
		{
			Name:        "output",
			Aliases:     []string{"o"},
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
	}
	return cli.NewCommandAt(&cfg.Export, "export").
		WithSynopsis("export [-format plaintext|csv|json|table] [-output path] <file>").
		WithDescription("export the flattened document in the requested format").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return export(cfg, cc, args)
		})
}
