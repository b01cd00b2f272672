// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/decord0455/reposcore/internal/badge"
	"github.com/decord0455/reposcore/internal/meta"
)

// BadgeCommandAction prints the badge for the score argument, or the whole
// band table with --list.
func BadgeCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)

	if cmd.Bool("list") {
		for _, b := range badge.Bands() {
			upper := "∞"
			if !math.IsInf(b.Max, 1) {
				upper = strconv.FormatFloat(b.Max, 'f', -1, 64)
			}
			fmt.Fprintf(m.Stdout, "%g-%s\t%s\n", b.Min, upper, b)
		}
		return nil
	}

	arg := cmd.Args().First()
	if arg == "" {
		return errors.New("a score is required")
	}
	if err := FlagValidators(arg, ScoreValidator); err != nil {
		return err
	}
	score, _ := strconv.ParseFloat(arg, 64)

	b := badge.Lookup(score)
	if b == "" {
		return fmt.Errorf("no badge for score %s", arg)
	}
	fmt.Fprintln(m.Stdout, b)
	return nil
}

func BadgeCommandBuilder(m *meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "badge",
		Usage:     "show the badge earned by a score",
		UsageText: "reposcore badge <score>\nreposcore badge --list",
		Metadata:  withMeta(m),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "list",
				Aliases:     []string{"l"},
				Usage:       "list every badge band",
				HideDefault: true,
			},
		},
		Action: BadgeCommandAction,
	}
}
