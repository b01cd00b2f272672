// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import "strings"

// Level is the rank of a console message. Messages ranked below the logger
// threshold are suppressed.
type Level int

const (
	LevelLog Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"LOG", "DEBUG", "INFO", "WARN", "ERROR"}

func (l Level) String() string {
	if l < LevelLog || l > LevelError {
		return levelNames[LevelLog]
	}
	return levelNames[l]
}

// Levels returns the level-rank table keyed by upper-case level name.
func Levels() map[string]Level {
	m := make(map[string]Level, len(levelNames))
	for i, n := range levelNames {
		m[n] = Level(i)
	}
	return m
}

// ParseLevel converts a case-insensitive level name. ok is false when the name
// is not one of the five known levels.
func ParseLevel(s string) (level Level, ok bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, n := range levelNames {
		if n == s {
			return Level(i), true
		}
	}
	return LevelLog, false
}

// NormalizeLevel is ParseLevel for per-message levels: unknown names become
// LevelLog.
func NormalizeLevel(s string) Level {
	l, _ := ParseLevel(s)
	return l
}

// ParseThreshold resolves the minimum printed level. Empty and unrecognized
// names resolve to INFO.
func ParseThreshold(s string) Level {
	if l, ok := ParseLevel(s); ok {
		return l
	}
	return LevelInfo
}
