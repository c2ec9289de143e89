package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/lixenwraith/tomlcli"
)

func bulkSet(cfg *BulkSetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.BulkSet.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: bulk-set requires a TOML file and a payload (file or inline)", cli.ErrUsage)
	}
	file, payloadArg := args[0], args[1]

	payload := []byte(payloadArg)
	if stat, err := os.Stat(payloadArg); err == nil && !stat.IsDir() {
		payload, err = os.ReadFile(payloadArg)
		if err != nil {
			return fmt.Errorf("failed to read payload file '%s': %w", payloadArg, err)
		}
	}

	patch, err := tomlcli.ParsePatch(payload)
	if err != nil {
		return fmt.Errorf("error parsing bulk update payload: %w", err)
	}

	doc, err := tomlcli.LoadFile(file)
	if err != nil {
		return err
	}
	if err := doc.Merge(patch); err != nil {
		return err
	}
	if err := tomlcli.SaveFile(file, doc); err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, "Bulk-set operation successful.")
	return nil
}
