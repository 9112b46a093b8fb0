// Copyright 2024 Brim Data, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package ui is a thin abstraction over the terminal: regular output goes to
stdout, diagnostics and debug output to stderr.
*/
package ui
