// Copyright 2024 Brim Data, Inc.
// SPDX-License-Identifier: Apache-2.0

package conf

import (
	"io"
	"strconv"
	"strings"
)

// The configuration tree is process-wide state. Loaders and readers assume
// exclusive access for the duration of a load; there is no locking here.
var (
	rootNode   = NewNode()
	backupNode *Node
)

// Init resets the process-wide tree to a fresh empty root.
func Init() {
	rootNode = NewNode()
}

// Deinit drops the process-wide tree.
func Deinit() {
	rootNode = nil
}

// Root returns the root of the process-wide tree.
func Root() *Node {
	return rootNode
}

// CreateContextBackup stashes the current tree so a test (or a reload) can
// run against a fresh one. Single slot: a second backup replaces the first.
func CreateContextBackup() {
	backupNode = rootNode
}

// RestoreContextBackup puts the stashed tree back.
func RestoreContextBackup() {
	rootNode = backupNode
	backupNode = nil
}

// GetNode returns the node at the dotted path name ("logging.output"), or
// nil if any segment is missing.
func GetNode(name string) *Node {
	node := rootNode
	for _, key := range strings.Split(name, ".") {
		node = node.LookupChild(key)
		if node == nil {
			return nil
		}
	}
	return node
}

// Get returns the value at the dotted path name.
func Get(name string) (string, bool) {
	node := GetNode(name)
	if node == nil {
		return "", false
	}
	return node.Value, true
}

// GetInt returns the value at name parsed as a base 10 integer.
func GetInt(name string) (int64, bool) {
	val, ok := Get(name)
	if !ok {
		return 0, false
	}
	i, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

// GetBool returns the value at name interpreted as a boolean. The values
// "1", "yes", "true" and "on" (case insensitive) are true, anything else
// is false.
func GetBool(name string) (value bool, found bool) {
	val, ok := Get(name)
	if !ok {
		return false, false
	}
	return ValueIsTrue(val), true
}

// ValueIsTrue reports whether a configuration value spells a true boolean.
func ValueIsTrue(val string) bool {
	switch strings.ToLower(val) {
	case "1", "yes", "true", "on":
		return true
	}
	return false
}

// Set stores value at the dotted path name, creating intermediate nodes as
// needed. The node remains overridable by a later load.
func Set(name, value string) bool {
	return set(name, value, true)
}

// SetFinal stores value at the dotted path name and pins it: a later load
// that names the same key will be ignored.
func SetFinal(name, value string) bool {
	return set(name, value, false)
}

func set(name, value string, allowOverride bool) bool {
	if rootNode == nil {
		return false
	}
	node := rootNode
	for _, key := range strings.Split(name, ".") {
		child := node.LookupChild(key)
		if child == nil {
			child = NewNode()
			child.Name = key
			// The override flag rides along the whole path so a later
			// load can merge into (or past) the seeded branch.
			child.AllowOverride = allowOverride
			node.AppendChild(child)
		}
		node = child
	}
	node.Value = value
	node.AllowOverride = allowOverride
	return true
}

// Dump writes the whole tree as "path = value" lines.
func Dump(w io.Writer) {
	rootNode.Dump(w, "")
}
