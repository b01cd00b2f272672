// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/decord0455/reposcore/internal/meta"
)

// LogCommandAction prints the arguments as one console message. Messages
// below the threshold print nothing.
func LogCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)

	message := strings.Join(cmd.Args().Slice(), " ")
	if message == "" {
		return errors.New("a message is required")
	}
	m.Logger.Log(message, cmd.String("level"))
	return nil
}

func LogCommandBuilder(m *meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "log",
		Usage:     "print a message through the console logger",
		UsageText: "reposcore log [--level LEVEL] <message...>",
		Metadata:  withMeta(m),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "level",
				Aliases: []string{"l"},
				Usage:   "message level: LOG, DEBUG, INFO, WARN or ERROR",
				Value:   "LOG",
				Validator: func(value string) error {
					return FlagValidators(value, LevelValidator)
				},
			},
		},
		Action: LogCommandAction,
	}
}
