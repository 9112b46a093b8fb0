// Copyright 2024 Brim Data, Inc.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"path/filepath"
	"strings"

	"github.com/brimdata/suricata/pkg/conftoml"
	"github.com/brimdata/suricata/pkg/confyaml"
)

// loadConfigFile loads path into the process-wide tree, picking the loader
// by file extension. Everything that is not TOML is treated as YAML.
func loadConfigFile(path string) error {
	if strings.ToLower(filepath.Ext(path)) == ".toml" {
		return conftoml.LoadFile(path)
	}
	return confyaml.LoadFile(path)
}
