// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package meta

import (
	"context"
	"io"

	"github.com/decord0455/reposcore/internal/config"
	"github.com/decord0455/reposcore/internal/log"
)

// Meta is the per-invocation state shared by all commands.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
	Logger  *log.Logger
	// Stdin and Stdout are swapped out by tests.
	Stdin  io.Reader
	Stdout io.Writer
}
