// Copyright 2024 Brim Data, Inc.
// SPDX-License-Identifier: Apache-2.0

package confyaml

import (
	"github.com/brimdata/suricata/pkg/conf"
)

// LoadFile loads the YAML configuration file at path into the process-wide
// tree rooted at conf.Root(). The load merges into whatever the tree
// already holds: seeded nodes that allow override are replaced, seeded
// nodes that do not are kept and the incoming value is dropped.
//
// On failure the tree is left in whatever partially populated state the
// load reached; callers should treat a failed load as fatal.
func LoadFile(path string) error {
	src, err := NewFileEventSource(path)
	if err != nil {
		return err
	}
	defer src.Close()

	return buildLayer(src, conf.Root(), false)
}

// LoadBytes loads an in-memory YAML document into the process-wide tree.
// Same merge semantics as LoadFile.
func LoadBytes(data []byte) error {
	src, err := NewEventSource(data)
	if err != nil {
		return err
	}
	defer src.Close()

	return buildLayer(src, conf.Root(), false)
}
