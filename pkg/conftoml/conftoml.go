// Copyright 2024 Brim Data, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package conftoml loads TOML documents into the configuration tree of
pkg/conf, using the same node shape as the YAML loader: tables become named
children, arrays become children named "0", "1", ... and an array-of-tables
element exposes its first key as the element's value.
*/
package conftoml

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/brimdata/suricata/pkg/conf"
)

// LoadFile loads the TOML file at path into the process-wide tree rooted
// at conf.Root(). Merge semantics match the YAML loader: seeded nodes that
// allow override are replaced, others are kept.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return LoadBytes(data)
}

// LoadBytes loads an in-memory TOML document into the process-wide tree.
func LoadBytes(data []byte) error {
	var raw map[string]interface{}
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return fmt.Errorf("failed to parse configuration: %w", err)
	}

	b := builder{order: keyOrder(md)}
	b.buildTable(conf.Root(), raw, "")
	return nil
}

// keyOrder records the document position of every key path, so map
// iteration can be put back into file order.
func keyOrder(md toml.MetaData) map[string]int {
	order := map[string]int{}
	for i, key := range md.Keys() {
		path := key.String()
		if _, seen := order[path]; !seen {
			order[path] = i
		}
	}
	return order
}

type builder struct {
	order map[string]int
}

func (b *builder) buildTable(parent *conf.Node, table map[string]interface{}, prefix string) {
	for _, key := range b.sortedKeys(table, prefix) {
		if existing := parent.LookupChild(key); existing != nil {
			if !existing.AllowOverride {
				continue
			}
			existing.Remove()
		}

		if parent.IsSequence && !parent.HasValue() {
			parent.Value = key
		}

		node := conf.NewNode()
		node.Name = key
		parent.AppendChild(node)
		b.buildValue(node, table[key], childPath(prefix, key))
	}
}

func (b *builder) buildValue(node *conf.Node, value interface{}, path string) {
	switch typed := value.(type) {
	case map[string]interface{}:
		b.buildTable(node, typed, path)
	case []map[string]interface{}:
		for i, elem := range typed {
			child := conf.NewNode()
			child.Name = strconv.Itoa(i)
			child.IsSequence = true
			node.AppendChild(child)
			b.buildTable(child, elem, path)
		}
	case []interface{}:
		for i, elem := range typed {
			child := conf.NewNode()
			child.Name = strconv.Itoa(i)
			node.AppendChild(child)
			b.buildValue(child, elem, path)
		}
	default:
		node.Value = scalarString(value)
	}
}

// sortedKeys returns the table's keys in document order. Keys the
// metadata does not place (it can happen for repeated array-of-tables
// elements) sort last, alphabetically.
func (b *builder) sortedKeys(table map[string]interface{}, prefix string) []string {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		oi, iok := b.order[childPath(prefix, keys[i])]
		oj, jok := b.order[childPath(prefix, keys[j])]
		if iok && jok {
			return oi < oj
		}
		if iok != jok {
			return iok
		}
		return keys[i] < keys[j]
	})
	return keys
}

func childPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func scalarString(value interface{}) string {
	switch typed := value.(type) {
	case string:
		return typed
	case int64:
		return strconv.FormatInt(typed, 10)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(typed)
	case time.Time:
		return typed.Format(time.RFC3339)
	}
	return strings.TrimSpace(fmt.Sprintf("%v", value))
}
