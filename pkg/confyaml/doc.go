// Copyright 2024 Brim Data, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package confyaml loads YAML 1.1 documents into the configuration tree of
pkg/conf.

A document must begin with the two-line prologue

	%YAML 1.1
	---

and is consumed as a linear event stream. Mappings become named children,
sequences become children named "0", "1", ... and a sequence element that is
itself a mapping additionally exposes its first key as the element's value.
*/
package confyaml
