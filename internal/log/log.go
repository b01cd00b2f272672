// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // Asia/Seoul must resolve on hosts without zoneinfo.

	apex "github.com/apex/log"
)

// DefaultTimeZone is the zone console timestamps are rendered in.
const DefaultTimeZone = "Asia/Seoul"

// Config is the explicit logger configuration.
type Config struct {
	Threshold Level
	Out       io.Writer
	Location  *time.Location
	TextColor string
	Color     bool
	Now       func() time.Time
}

// Logger filters messages by threshold and prints them formatted.
type Logger struct {
	threshold Level
	out       io.Writer
	loc       *time.Location
	now       func() time.Time
	formatter *Formatter
}

// New builds a Logger. Zero fields fall back to stdout, Asia/Seoul and
// time.Now.
func New(cfg Config) *Logger {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Location == nil {
		cfg.Location = LoadLocation(DefaultTimeZone)
	}
	return &Logger{
		threshold: cfg.Threshold,
		out:       cfg.Out,
		loc:       cfg.Location,
		now:       cfg.Now,
		formatter: NewFormatter(cfg.Out, cfg.Color, cfg.TextColor),
	}
}

// InitLogger builds a Logger and installs it as the apex/log handler so the
// rest of the program logs through it. Apex itself passes everything; the
// threshold does the filtering.
func InitLogger(cfg Config) *Logger {
	l := New(cfg)
	apex.SetHandler(l)
	apex.SetLevel(apex.DebugLevel)
	return l
}

// LoadLocation resolves name, falling back to a fixed UTC+9 zone.
func LoadLocation(name string) *time.Location {
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.FixedZone("KST", 9*60*60) //nolint:mnd
}

// Threshold returns the minimum level that is printed.
func (l *Logger) Threshold() Level {
	return l.threshold
}

// SetTextColor changes the message body color.
func (l *Logger) SetTextColor(color string) {
	if color == "" {
		color = DefaultTextColor
	}
	l.formatter.textColor = color
}

// TextColor returns the message body color.
func (l *Logger) TextColor() string {
	return l.formatter.textColor
}

// Log prints message at level (default "LOG"). It returns the printed line
// and true, or "" and false when the level is below the threshold.
func (l *Logger) Log(message string, level ...string) (string, bool) {
	name := "LOG"
	if len(level) > 0 {
		name = level[0]
	}
	lvl := NormalizeLevel(name)
	if lvl < l.threshold {
		return "", false
	}

	line := l.formatter.Format(lvl.String(), message, Timestamp(l.now(), l.loc))
	fmt.Fprintln(l.out, line)
	return line, true
}

func (l *Logger) Debug(message string) (string, bool) { return l.Log(message, "DEBUG") }
func (l *Logger) Info(message string) (string, bool)  { return l.Log(message, "INFO") }
func (l *Logger) Warn(message string) (string, bool)  { return l.Log(message, "WARN") }
func (l *Logger) Error(message string) (string, bool) { return l.Log(message, "ERROR") }

// HandleLog implements the apex/log Handler interface.
func (l *Logger) HandleLog(e *apex.Entry) error {
	message := e.Message
	if names := e.Fields.Names(); len(names) > 0 {
		pairs := make([]string, 0, len(names))
		for _, n := range names {
			pairs = append(pairs, fmt.Sprintf("%s=%v", n, e.Fields.Get(n)))
		}
		message += " " + strings.Join(pairs, " ")
	}
	l.Log(message, fromApex(e.Level).String())
	return nil
}

func fromApex(level apex.Level) Level {
	switch level {
	case apex.DebugLevel:
		return LevelDebug
	case apex.InfoLevel:
		return LevelInfo
	case apex.WarnLevel:
		return LevelWarn
	case apex.ErrorLevel, apex.FatalLevel:
		return LevelError
	default:
		return LevelLog
	}
}
