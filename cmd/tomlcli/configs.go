package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/lixenwraith/tomlcli"
)

type MainConfig struct {
	Main *cli.Command
}

type ListKeysConfig struct {
	*MainConfig
	ListKeys *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	Set *cli.Command
}

type RemoveConfig struct {
	*MainConfig
	Remove *cli.Command
}

type RenameConfig struct {
	*MainConfig
	Rename *cli.Command
}

type SearchConfig struct {
	*MainConfig
	Search *cli.Command
}

type BulkSetConfig struct {
	*MainConfig
	BulkSet *cli.Command
}

type ExportConfig struct {
	*MainConfig
	Export *cli.Command

	Format   string
	Out      string
	CloseOut func() error
}

func (cfg *ExportConfig) formatOpt(_ *cli.Context, a string) (any, error) {
	if _, err := tomlcli.ParseExportFormat(a); err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Format = a
	return a, nil
}

func (cfg *ExportConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		cfg.Out = ""
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}
