// Copyright 2024 Brim Data, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package conf holds the process-wide configuration tree: a hierarchy of named
nodes where every node may carry a scalar value, ordered children, or both.

The tree is populated by the loaders (see pkg/confyaml, pkg/conftoml) and read
through dotted paths:

	val, ok := conf.Get("logging.output.0.interface")

Values seeded with SetFinal survive later loads; values seeded with Set are
replaced by them.
*/
package conf
