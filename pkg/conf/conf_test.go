// Copyright 2024 Brim Data, Inc.
// SPDX-License-Identifier: Apache-2.0

package conf_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/k14s/difflib"
	"github.com/stretchr/testify/require"

	"github.com/brimdata/suricata/pkg/conf"
)

func freshTree(t *testing.T) {
	conf.CreateContextBackup()
	conf.Init()
	t.Cleanup(conf.RestoreContextBackup)
}

func assertEqual(t *testing.T, expected, actual string) {
	if expected != actual {
		t.Fatalf("Not equal; diff expected...actual:\n%v\n",
			difflib.PPDiff(strings.Split(expected, "\n"), strings.Split(actual, "\n")))
	}
}

func TestNodeAppendAndLookup(t *testing.T) {
	parent := conf.NewNode()
	parent.Name = "parent"

	for _, name := range []string{"one", "two", "three"} {
		child := conf.NewNode()
		child.Name = name
		parent.AppendChild(child)
	}

	require.Len(t, parent.Children, 3)
	require.Equal(t, "one", parent.Children[0].Name)
	require.Equal(t, "three", parent.Children[2].Name)

	two := parent.LookupChild("two")
	require.NotNil(t, two)
	require.Equal(t, "two", two.Name)

	require.Nil(t, parent.LookupChild("four"))
}

func TestNodeRemove(t *testing.T) {
	parent := conf.NewNode()
	for _, name := range []string{"a", "b", "c"} {
		child := conf.NewNode()
		child.Name = name
		parent.AppendChild(child)
	}

	b := parent.LookupChild("b")
	b.Remove()

	require.Len(t, parent.Children, 2)
	require.Equal(t, "a", parent.Children[0].Name)
	require.Equal(t, "c", parent.Children[1].Name)

	// Detaching twice is a no-op.
	b.Remove()
	require.Len(t, parent.Children, 2)
}

func TestLookupChildValue(t *testing.T) {
	parent := conf.NewNode()
	child := conf.NewNode()
	child.Name = "log-level"
	child.Value = "info"
	parent.AppendChild(child)

	val, ok := parent.LookupChildValue("log-level")
	require.True(t, ok)
	require.Equal(t, "info", val)

	_, ok = parent.LookupChildValue("facility")
	require.False(t, ok)
}

func TestSetAndGet(t *testing.T) {
	freshTree(t)

	require.True(t, conf.Set("logging.output.interface", "console"))

	val, ok := conf.Get("logging.output.interface")
	require.True(t, ok)
	require.Equal(t, "console", val)

	node := conf.GetNode("logging.output")
	require.NotNil(t, node)
	require.Len(t, node.Children, 1)

	_, ok = conf.Get("logging.missing")
	require.False(t, ok)
}

func TestSetFinalPinsNode(t *testing.T) {
	freshTree(t)

	conf.Set("a", "1")
	conf.SetFinal("b", "2")

	require.True(t, conf.Root().LookupChild("a").AllowOverride)
	require.False(t, conf.Root().LookupChild("b").AllowOverride)
}

func TestGetInt(t *testing.T) {
	freshTree(t)

	conf.Set("max-pending-packets", "50")
	conf.Set("default-log-dir", "/tmp")

	val, ok := conf.GetInt("max-pending-packets")
	require.True(t, ok)
	require.EqualValues(t, 50, val)

	_, ok = conf.GetInt("default-log-dir")
	require.False(t, ok)

	_, ok = conf.GetInt("missing")
	require.False(t, ok)
}

func TestGetBool(t *testing.T) {
	freshTree(t)

	for val, expected := range map[string]bool{
		"1":    true,
		"yes":  true,
		"TRUE": true,
		"on":   true,
		"0":    false,
		"no":   false,
		"off":  false,
	} {
		conf.Set("flag", val)
		got, found := conf.GetBool("flag")
		require.True(t, found)
		require.Equal(t, expected, got, "value %q", val)
	}

	_, found := conf.GetBool("missing")
	require.False(t, found)
}

func TestContextBackupRestore(t *testing.T) {
	conf.CreateContextBackup()
	conf.Init()

	conf.Set("scratch", "value")
	_, ok := conf.Get("scratch")
	require.True(t, ok)

	conf.RestoreContextBackup()

	_, ok = conf.Get("scratch")
	require.False(t, ok)
}

func TestDump(t *testing.T) {
	freshTree(t)

	conf.Set("default-log-dir", "/tmp")
	conf.Set("logging.output.interface", "console")
	conf.Set("logging.output.log-level", "error")

	var buf bytes.Buffer
	conf.Dump(&buf)

	expected := `default-log-dir = /tmp
logging.output.interface = console
logging.output.log-level = error
`
	assertEqual(t, expected, buf.String())
}
