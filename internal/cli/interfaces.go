// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

// Client defines the minimal lifecycle contract for runnable command-line
// applications.
type Client interface {
	// Run executes the subcommand named by args and blocks until it finishes.
	Run(args []string) error
}
