// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the asosync command-line application runtime.
//
// It wires the platform adapters, local storage, and sync services into the
// push / pull / version subcommands and renders their results to stdout.
package cli
