// Copyright 2024 Brim Data, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	uierrs "github.com/cppforlife/go-cli-ui/errors"

	"github.com/brimdata/suricata/pkg/cmd"
)

func main() {
	command := cmd.NewDefaultSuriconfCmd()

	err := command.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "suriconf: Error: %s\n", uierrs.NewMultiLineError(err))
		os.Exit(1)
	}
}
