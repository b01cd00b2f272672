// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command defines the CLI command set for reposcore. It wires flags,
// validators and actions for the badge, log, cache and token subcommands.
package command
