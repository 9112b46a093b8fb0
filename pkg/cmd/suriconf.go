// Copyright 2024 Brim Data, Inc.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"

	"github.com/brimdata/suricata/pkg/version"
)

type SuriconfOptions struct{}

func NewDefaultSuriconfOptions() *SuriconfOptions {
	return &SuriconfOptions{}
}

func NewDefaultSuriconfCmd() *cobra.Command {
	return NewSuriconfCmd(NewDefaultSuriconfOptions())
}

func NewSuriconfCmd(o *SuriconfOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "suriconf",
		Version: version.Version,
		Short:   "suriconf inspects YAML configuration trees",
	}

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(NewDumpCmd(NewDumpOptions()))
	cmd.AddCommand(NewGetCmd(NewGetOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
