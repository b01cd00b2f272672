// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/decord0455/reposcore/internal/cache"
	"github.com/decord0455/reposcore/internal/envfile"
	"github.com/decord0455/reposcore/internal/log"
)

// NewGlobalFlags builds the flags shared by every command. cfgSource is the
// config file backing the yaml sources; it may be empty.
func NewGlobalFlags(cfgSource string) []cli.Flag {
	src := altsrc.StringSourcer(cfgSource)

	return []cli.Flag{
		&cli.StringFlag{
			Name:  "cache-file",
			Usage: "path of the JSON cache file",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("REPOSCORE_CACHE_FILE"),
				yaml.YAML("cache.path", src),
			),
			Value: cache.DefaultPath,
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		&cli.StringFlag{
			Name:  "env-file",
			Usage: "path of the env file holding the token",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("REPOSCORE_ENV_FILE"),
				yaml.YAML("env.path", src),
			),
			Value: envfile.DefaultPath,
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "minimum level printed: LOG, DEBUG, INFO, WARN or ERROR",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("LOG_LEVEL"),
				yaml.YAML("log.level", src),
			),
			Value: log.LevelInfo.String(),
		},
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("REPOSCORE_COLOR"),
				yaml.YAML("color", src),
			),
			Value: true,
		},
		&cli.StringFlag{
			Name:  "text-color",
			Usage: "color of log message text",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("REPOSCORE_TEXT_COLOR"),
				yaml.YAML("log.color", src),
			),
			Value: log.DefaultTextColor,
		},
		&cli.StringFlag{
			Name:  "timezone",
			Usage: "time zone of log timestamps",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("log.timezone", src),
			),
			Value: log.DefaultTimeZone,
		},
	}
}

func newOutputFlags(cfgSource string) []cli.Flag {
	src := altsrc.StringSourcer(cfgSource)

	return []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("cache.output", src),
				yaml.YAML("output", src),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "sort text output by key or value, '-' for descending",
			Validator: func(value string) error {
				return FlagValidators(value, SortValidator)
			},
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("titles", src),
			),
			Value: false,
		},
	}
}
