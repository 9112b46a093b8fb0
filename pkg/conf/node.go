// Copyright 2024 Brim Data, Inc.
// SPDX-License-Identifier: Apache-2.0

package conf

import (
	"fmt"
	"io"
)

// Node is a single entry in the configuration tree. A node carries a name,
// an optional scalar value and an ordered list of named children; mappings,
// sequences and scalars are all represented by this one shape. An empty
// Value means the value is unset.
type Node struct {
	Name  string
	Value string

	// Children are kept in insertion order; that order is the source of
	// truth for sequence indexes.
	Children []*Node

	// IsSequence marks a node created as a sequence element that is itself
	// a mapping. Its Value holds the mapping's first key.
	IsSequence bool

	// AllowOverride controls whether a later load may replace this node.
	// Only consulted on nodes that exist before a load starts.
	AllowOverride bool

	parent *Node
}

// NewNode returns a fresh detached node.
func NewNode() *Node {
	return &Node{}
}

// HasValue reports whether the node carries a scalar value.
func (n *Node) HasValue() bool {
	return n.Value != ""
}

// AppendChild appends child to n's child list, transferring ownership.
func (n *Node) AppendChild(child *Node) {
	child.parent = n
	n.Children = append(n.Children, child)
}

// LookupChild returns the first direct child named name, or nil.
func (n *Node) LookupChild(name string) *Node {
	for _, child := range n.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// LookupChildValue returns the value of the first direct child named name.
func (n *Node) LookupChildValue(name string) (string, bool) {
	child := n.LookupChild(name)
	if child == nil {
		return "", false
	}
	return child.Value, true
}

// Remove detaches n (and its subtree) from its parent. Detaching the same
// node twice is a no-op.
func (n *Node) Remove() {
	if n.parent == nil {
		return
	}
	siblings := n.parent.Children
	for i, child := range siblings {
		if child == n {
			n.parent.Children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Dump writes the subtree rooted at n as "path = value" lines in tree
// order. prefix is prepended to every path (pass "" for the root).
func (n *Node) Dump(w io.Writer, prefix string) {
	for _, child := range n.Children {
		path := child.Name
		if prefix != "" {
			path = prefix + "." + child.Name
		}
		if child.HasValue() {
			fmt.Fprintf(w, "%s = %s\n", path, child.Value)
		}
		child.Dump(w, path)
	}
}
