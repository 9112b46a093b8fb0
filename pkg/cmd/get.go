// Copyright 2024 Brim Data, Inc.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brimdata/suricata/pkg/cmd/ui"
	"github.com/brimdata/suricata/pkg/conf"
)

type GetOptions struct {
	File  string
	Key   string
	Debug bool
}

func NewGetOptions() *GetOptions {
	return &GetOptions{}
}

func NewGetCmd(o *GetOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Load a configuration file and print one value or subtree",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run(ui.NewTTY(o.Debug)) },
	}
	cmd.Flags().StringVarP(&o.File, "file", "f", "", "Configuration file (YAML, or TOML by extension)")
	cmd.Flags().StringVarP(&o.Key, "key", "k", "", "Dotted key path (eg logging.output.0.interface)")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	cmd.MarkFlagRequired("file")
	cmd.MarkFlagRequired("key")
	return cmd
}

func (o *GetOptions) Run(ui ui.UI) error {
	if err := loadConfigFile(o.File); err != nil {
		return err
	}

	node := conf.GetNode(o.Key)
	if node == nil {
		return fmt.Errorf("key '%s' not found", o.Key)
	}

	if node.HasValue() {
		ui.Printf("%s\n", node.Value)
		return nil
	}

	var buf bytes.Buffer
	node.Dump(&buf, o.Key)
	ui.Printf("%s", buf.String())

	return nil
}
