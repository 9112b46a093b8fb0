// Copyright 2024 Brim Data, Inc.
// SPDX-License-Identifier: Apache-2.0

package confyaml

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/brimdata/suricata/pkg/conf"
	goversion "github.com/hashicorp/go-version"
)

// ErrMissingVersion and ErrBadVersion mark prologue failures: the stream
// either had no %YAML directive or one naming a version other than 1.1.
var (
	ErrMissingVersion = errors.New("missing %YAML version directive")
	ErrBadVersion     = errors.New("invalid YAML version")
)

var requiredVersion = goversion.Must(goversion.NewVersion("1.1"))

// checkDocumentVersion validates the version directive attached to a
// document-start event.
func checkDocumentVersion(ev Event) error {
	if ev.Version == nil {
		return fmt.Errorf("%w: the configuration file must begin with the following two lines: \"%%YAML 1.1\" and \"---\"", ErrMissingVersion)
	}
	if !ev.Version.Equal(requiredVersion) {
		return fmt.Errorf("%w: %s given, must be %s", ErrBadVersion, ev.Version, requiredVersion)
	}
	return nil
}

// Builder phases: keys and values arrive as alternating scalar events.
type phase int

const (
	phaseKey phase = iota
	phaseValue
)

// buildLayer consumes events until the current layer's structural
// terminator, appending children to parent.
//
// node is the cursor: the most recently created child, initially the
// parent itself. Sequence-start and mapping-start recurse on the cursor,
// which is how "key:" followed by a nested collection attaches the
// collection under the key's node. A sequence-start while already in
// sequence mode therefore recurses on the previous sequence element; that
// matches the behavior this loader is ported from and is left as is.
func buildLayer(src *EventSource, parent *conf.Node, inSequence bool) error {
	node := parent
	state := phaseKey
	skipValue := false
	seqIdx := 0

	for {
		ev, err := src.Next()
		if err != nil {
			return fmt.Errorf("failed to parse configuration: %w", err)
		}

		switch ev.Type {
		case EventDocumentStart:
			if err := checkDocumentVersion(ev); err != nil {
				return err
			}

		case EventScalar:
			if inSequence {
				seqNode := conf.NewNode()
				seqNode.Name = strconv.Itoa(seqIdx)
				seqNode.Value = ev.Value
				seqIdx++
				parent.AppendChild(seqNode)
				break
			}
			if state == phaseValue {
				if skipValue {
					skipValue = false
				} else {
					node.Value = ev.Value
				}
				state = phaseKey
				break
			}
			if existing := parent.LookupChild(ev.Value); existing != nil {
				if !existing.AllowOverride {
					// Keep the seeded node. Flip to value phase so
					// the value that follows is consumed and
					// discarded.
					state = phaseValue
					skipValue = true
					break
				}
				existing.Remove()
			}
			if parent.IsSequence && !parent.HasValue() {
				// A sequence element that is a mapping is identified
				// by its first key.
				parent.Value = ev.Value
			}
			node = conf.NewNode()
			node.Name = ev.Value
			parent.AppendChild(node)
			state = phaseValue

		case EventSequenceStart:
			if err := buildLayer(src, node, true); err != nil {
				return err
			}
			state = phaseKey
			skipValue = false

		case EventSequenceEnd:
			return nil

		case EventMappingStart:
			if inSequence {
				seqNode := conf.NewNode()
				seqNode.IsSequence = true
				seqNode.Name = strconv.Itoa(seqIdx)
				seqIdx++
				node.AppendChild(seqNode)
				if err := buildLayer(src, seqNode, false); err != nil {
					return err
				}
			} else {
				if err := buildLayer(src, node, inSequence); err != nil {
					return err
				}
			}
			state = phaseKey
			skipValue = false

		case EventMappingEnd, EventStreamEnd:
			return nil

		default:
			// stream-start, document-end and alias events carry no
			// structure for the tree
		}
	}
}
