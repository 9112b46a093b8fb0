// Copyright 2024 Brim Data, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd is home to suriconf's commands -- instances of cobra.Command
(not to be confused with ./cmd which contains the bootstrapping for the
suriconf binary).

For a list of commands run:

	$ suriconf help
*/
package cmd
