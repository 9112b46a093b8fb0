// Copyright 2024 Brim Data, Inc.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/brimdata/suricata/pkg/cmd/ui"
	"github.com/brimdata/suricata/pkg/conf"
)

type DumpOptions struct {
	File  string
	Debug bool
}

func NewDumpOptions() *DumpOptions {
	return &DumpOptions{}
}

func NewDumpCmd(o *DumpOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Load a configuration file and print the resulting tree",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run(ui.NewTTY(o.Debug)) },
	}
	cmd.Flags().StringVarP(&o.File, "file", "f", "", "Configuration file (YAML, or TOML by extension)")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	cmd.MarkFlagRequired("file")
	return cmd
}

func (o *DumpOptions) Run(ui ui.UI) error {
	if err := loadConfigFile(o.File); err != nil {
		return err
	}

	var buf bytes.Buffer
	conf.Dump(&buf)
	ui.Printf("%s", buf.String())

	return nil
}
