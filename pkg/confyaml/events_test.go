// Copyright 2024 Brim Data, Inc.
// SPDX-License-Identifier: Apache-2.0

package confyaml_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brimdata/suricata/pkg/confyaml"
)

func collectEvents(t *testing.T, data string) []confyaml.Event {
	src, err := confyaml.NewEventSource([]byte(data))
	require.NoError(t, err)
	defer src.Close()

	var events []confyaml.Event
	for {
		ev, err := src.Next()
		require.NoError(t, err)
		events = append(events, ev)
		if ev.Type == confyaml.EventStreamEnd {
			return events
		}
	}
}

func TestEventStreamForMapping(t *testing.T) {
	events := collectEvents(t, "%YAML 1.1\n---\nhost: localhost\nports:\n  - 80\n  - 443\n")

	types := make([]confyaml.EventType, len(events))
	for i, ev := range events {
		types[i] = ev.Type
	}
	require.Equal(t, []confyaml.EventType{
		confyaml.EventStreamStart,
		confyaml.EventDocumentStart,
		confyaml.EventMappingStart,
		confyaml.EventScalar, // host
		confyaml.EventScalar, // localhost
		confyaml.EventScalar, // ports
		confyaml.EventSequenceStart,
		confyaml.EventScalar, // 80
		confyaml.EventScalar, // 443
		confyaml.EventSequenceEnd,
		confyaml.EventMappingEnd,
		confyaml.EventDocumentEnd,
		confyaml.EventStreamEnd,
	}, types)

	require.Equal(t, "host", events[3].Value)
	require.Equal(t, "localhost", events[4].Value)
	require.Equal(t, "80", events[7].Value)
}

func TestEventStreamCarriesVersionDirective(t *testing.T) {
	events := collectEvents(t, "%YAML 1.1\n---\nkey: value\n")

	require.Equal(t, confyaml.EventDocumentStart, events[1].Type)
	require.NotNil(t, events[1].Version)
	require.Equal(t, "1.1", events[1].Version.Original())
}

func TestEventStreamWithoutDirective(t *testing.T) {
	events := collectEvents(t, "key: value\n")

	require.Equal(t, confyaml.EventDocumentStart, events[1].Type)
	require.Nil(t, events[1].Version)
}

func TestEventStreamEmptyInput(t *testing.T) {
	events := collectEvents(t, "")

	types := make([]confyaml.EventType, len(events))
	for i, ev := range events {
		types[i] = ev.Type
	}
	require.Equal(t, []confyaml.EventType{
		confyaml.EventStreamStart,
		confyaml.EventStreamEnd,
	}, types)
}

func TestEventStreamParseError(t *testing.T) {
	src, err := confyaml.NewEventSource([]byte("%YAML 1.1\n---\nkey: [unclosed\n"))
	require.NoError(t, err)
	defer src.Close()

	sawError := false
	for i := 0; i < 16; i++ {
		ev, err := src.Next()
		if err != nil {
			sawError = true
			break
		}
		if ev.Type == confyaml.EventStreamEnd {
			break
		}
	}
	require.True(t, sawError)
}

func TestEventStreamInvalidDirective(t *testing.T) {
	_, err := confyaml.NewEventSource([]byte("%YAML nope\n---\nkey: value\n"))
	require.Error(t, err)
}
