// Copyright 2024 Brim Data, Inc.
// SPDX-License-Identifier: Apache-2.0

package confyaml

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	goversion "github.com/hashicorp/go-version"
	"gopkg.in/yaml.v3"
)

// EventType enumerates the structural events a YAML stream linearizes into.
type EventType int

const (
	EventNone EventType = iota
	EventStreamStart
	EventStreamEnd
	EventDocumentStart
	EventDocumentEnd
	EventScalar
	EventSequenceStart
	EventSequenceEnd
	EventMappingStart
	EventMappingEnd
	EventAlias
)

func (t EventType) String() string {
	switch t {
	case EventStreamStart:
		return "stream-start"
	case EventStreamEnd:
		return "stream-end"
	case EventDocumentStart:
		return "document-start"
	case EventDocumentEnd:
		return "document-end"
	case EventScalar:
		return "scalar"
	case EventSequenceStart:
		return "sequence-start"
	case EventSequenceEnd:
		return "sequence-end"
	case EventMappingStart:
		return "mapping-start"
	case EventMappingEnd:
		return "mapping-end"
	case EventAlias:
		return "alias"
	}
	return "none"
}

// Event is one element of the linearized stream. Value is set for scalar
// events; Version carries the stream's %YAML directive on document-start
// events and is nil when the document has none.
type Event struct {
	Type    EventType
	Value   string
	Version *goversion.Version
}

type sourceState int

const (
	stateStreamStart sourceState = iota
	stateFirstDocument
	stateDocumentBody
	stateNextDocument
	stateDone
)

// Directives live on the first few lines of the stream, before the first
// document marker.
const prologueScanLimit = 1024

// EventSource adapts a yaml.v3 decoder into a linear event stream.
// Documents are decoded one at a time, so an error in a later document
// surfaces only after the events of the earlier ones have been consumed.
//
// yaml.v3 does not expose the %YAML directive, so the source scans the
// stream prologue for it and attaches the result to document-start events.
type EventSource struct {
	dec     *yaml.Decoder
	closer  io.Closer
	version *goversion.Version
	queue   []Event
	state   sourceState
}

// NewEventSource returns an event source over an in-memory document.
func NewEventSource(data []byte) (*EventSource, error) {
	version, err := scanVersionDirective(data)
	if err != nil {
		return nil, err
	}
	return &EventSource{
		dec:     yaml.NewDecoder(bytes.NewReader(data)),
		version: version,
	}, nil
}

// NewFileEventSource returns an event source reading from the file at path.
// The file stays open until Close.
func NewFileEventSource(path string) (*EventSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	reader := bufio.NewReaderSize(file, prologueScanLimit)
	head, _ := reader.Peek(prologueScanLimit)

	version, err := scanVersionDirective(head)
	if err != nil {
		file.Close()
		return nil, err
	}

	return &EventSource{
		dec:     yaml.NewDecoder(reader),
		closer:  file,
		version: version,
	}, nil
}

// Close releases the underlying file, if any.
func (s *EventSource) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

// Next returns the next event. A returned error means the underlying
// parser rejected the document; the stream is not usable afterwards.
func (s *EventSource) Next() (Event, error) {
	for {
		if len(s.queue) > 0 {
			ev := s.queue[0]
			s.queue = s.queue[1:]
			return ev, nil
		}

		switch s.state {
		case stateStreamStart:
			s.state = stateFirstDocument
			return Event{Type: EventStreamStart}, nil

		case stateFirstDocument:
			if s.version != nil {
				// A directive guarantees an explicit document
				// follows; its body is decoded on demand.
				s.state = stateDocumentBody
				return Event{Type: EventDocumentStart, Version: s.version}, nil
			}
			var node yaml.Node
			err := s.dec.Decode(&node)
			if err == io.EOF {
				s.state = stateDone
				return Event{Type: EventStreamEnd}, nil
			}
			if err != nil {
				return Event{}, err
			}
			s.flatten(&node)
			s.queue = append(s.queue, Event{Type: EventDocumentEnd})
			s.state = stateNextDocument
			return Event{Type: EventDocumentStart}, nil

		case stateDocumentBody:
			var node yaml.Node
			err := s.dec.Decode(&node)
			if err == io.EOF {
				s.state = stateDone
				s.queue = append(s.queue, Event{Type: EventStreamEnd})
				return Event{Type: EventDocumentEnd}, nil
			}
			if err != nil {
				return Event{}, err
			}
			s.flatten(&node)
			s.queue = append(s.queue, Event{Type: EventDocumentEnd})
			s.state = stateNextDocument

		case stateNextDocument:
			var node yaml.Node
			err := s.dec.Decode(&node)
			if err == io.EOF {
				s.state = stateDone
				return Event{Type: EventStreamEnd}, nil
			}
			if err != nil {
				return Event{}, err
			}
			s.queue = append(s.queue, Event{Type: EventDocumentStart, Version: s.version})
			s.flatten(&node)
			s.queue = append(s.queue, Event{Type: EventDocumentEnd})

		case stateDone:
			return Event{Type: EventStreamEnd}, nil
		}
	}
}

// flatten appends the events for one decoded document to the queue. A
// mapping node's content alternates key, value, key, value, which is
// exactly the scalar alternation the builder expects.
func (s *EventSource) flatten(node *yaml.Node) {
	switch node.Kind {
	case yaml.DocumentNode:
		for _, child := range node.Content {
			s.flatten(child)
		}
	case yaml.ScalarNode:
		s.queue = append(s.queue, Event{Type: EventScalar, Value: node.Value})
	case yaml.MappingNode:
		s.queue = append(s.queue, Event{Type: EventMappingStart})
		for _, child := range node.Content {
			s.flatten(child)
		}
		s.queue = append(s.queue, Event{Type: EventMappingEnd})
	case yaml.SequenceNode:
		s.queue = append(s.queue, Event{Type: EventSequenceStart})
		for _, child := range node.Content {
			s.flatten(child)
		}
		s.queue = append(s.queue, Event{Type: EventSequenceEnd})
	case yaml.AliasNode:
		s.queue = append(s.queue, Event{Type: EventAlias})
	}
}

// scanVersionDirective finds the stream's %YAML directive, if any. Only
// blank lines, comments and other directives may precede it; the first
// content line ends the scan.
func scanVersionDirective(head []byte) (*goversion.Version, error) {
	for _, line := range strings.Split(string(head), "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "" || strings.HasPrefix(trimmed, "#"):
			continue
		case strings.HasPrefix(trimmed, "%YAML"):
			arg := strings.TrimSpace(strings.TrimPrefix(trimmed, "%YAML"))
			version, err := goversion.NewVersion(arg)
			if err != nil {
				return nil, fmt.Errorf("invalid %%YAML directive %q: %w", trimmed, err)
			}
			return version, nil
		case strings.HasPrefix(trimmed, "%"):
			// other directives (eg %TAG) are of no interest
			continue
		default:
			return nil, nil
		}
	}
	return nil, nil
}
