// Copyright 2024 Brim Data, Inc.
// SPDX-License-Identifier: Apache-2.0

package version

// Version of the suriconf binary. Set via ldflags at release time.
var Version = "0.1.0"
