package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/lixenwraith/tomlcli"
)

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: export requires one argument, a TOML file", cli.ErrUsage)
	}

	format, err := tomlcli.ParseExportFormat(cfg.Format)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}

	doc, err := tomlcli.LoadFile(args[0])
	if err != nil {
		return err
	}

	opts := tomlcli.ExportOptions{
		Colorize: cfg.Out == "" && isatty.IsTerminal(os.Stdout.Fd()),
	}
	return tomlcli.Export(cc.Out, doc, format, opts)
}
