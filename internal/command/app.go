// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"os"
	"sort"

	apex "github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/decord0455/reposcore/internal/config"
	"github.com/decord0455/reposcore/internal/log"
	"github.com/decord0455/reposcore/internal/meta"
)

// Version is stamped at build time.
var Version = "dev"

// InitApp loads the config file and builds the command tree around the
// process streams.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	cfg, err := config.Load()
	if err != nil {
		apex.WithError(err).Debug("running without config file")
	}

	return NewApp(&meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
	}), nil
}

// NewApp builds the command tree for m. The console logger is created in the
// root Before hook, once flags are resolved, and stored on m.
func NewApp(m *meta.Meta) *cli.Command {
	app := &cli.Command{
		Name:    "reposcore",
		Usage:   "repository score utilities",
		Version: Version,
		Writer:  m.Stdout,
		Flags:   NewGlobalFlags(m.Config.Source),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			m.Logger = log.InitLogger(log.Config{
				Threshold: log.ParseThreshold(cmd.String("log-level")),
				Out:       m.Stdout,
				Location:  log.LoadLocation(cmd.String("timezone")),
				TextColor: cmd.String("text-color"),
				Color:     cmd.Bool("color"),
			})
			return ctx, nil
		},
	}

	app.Commands = append(app.Commands,
		BadgeCommandBuilder(m),
		CacheCommandBuilder(m),
		LogCommandBuilder(m),
		TokenCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	sortFlags(app)

	return app
}

func sortFlags(cmd *cli.Command) {
	sort.Slice(cmd.Flags, func(i, j int) bool {
		return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
	})
	for _, sub := range cmd.Commands {
		sortFlags(sub)
	}
}

// GetMeta returns the meta.Meta stored in the command's Metadata, looking at
// parents as well. If none is found it returns an empty Meta.
func GetMeta(cmd *cli.Command) *meta.Meta {
	for _, c := range cmd.Lineage() {
		if c.Metadata == nil {
			continue
		}
		if m, ok := c.Metadata["meta"].(*meta.Meta); ok {
			return m
		}
	}
	return &meta.Meta{Stdout: os.Stdout, Stdin: os.Stdin}
}

func withMeta(m *meta.Meta) map[string]any {
	return map[string]any{"meta": m}
}
