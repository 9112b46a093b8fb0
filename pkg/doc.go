// Copyright 2024 Brim Data, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the configuration
subsystem.

From top-down, the code is layered in this way:

# Entry Point

	./cmd/suriconf   // a command-line tool for inspecting configuration files

# Commands

	pkg/cmd      // cobra commands: dump, get, version
	pkg/cmd/ui   // terminal output abstraction

# Loaders

Loaders project a document onto the configuration tree. The YAML loader is
the primary one; the TOML loader applies the same node-construction rules to
TOML documents.

	pkg/confyaml
	pkg/conftoml

# The Tree

The process-wide configuration tree itself: named nodes with optional scalar
values and ordered children, looked up through dotted paths.

	pkg/conf

# Utilities

	pkg/version
*/
package pkg
