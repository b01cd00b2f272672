// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// DefaultTextColor is the message body color used when none is configured.
const DefaultTextColor = "#FFFFFF"

type levelStyle struct {
	emoji string
	fg    string
	bg    string
}

// ERROR and WARN carry a background; the rest are foreground only.
var levelStyles = map[Level]levelStyle{
	LevelLog:   {emoji: "📝", fg: "#D0D0DC"},
	LevelDebug: {emoji: "🐛", fg: "#8B7CB3"},
	LevelInfo:  {emoji: "💡", fg: "#5B8FB9"},
	LevelWarn:  {emoji: "⚠️", fg: "#0C0C10", bg: "#D4915D"},
	LevelError: {emoji: "🚨", fg: "#EEEEF8", bg: "#E54B4B"},
}

// Formatter renders a console line. Styles are resolved against the renderer,
// so a writer that is not a terminal receives plain text.
type Formatter struct {
	renderer  *lipgloss.Renderer
	color     bool
	textColor string
}

// NewFormatter binds a formatter to w. When color is false no styling is
// emitted at all.
func NewFormatter(w io.Writer, color bool, textColor string) *Formatter {
	if textColor == "" {
		textColor = DefaultTextColor
	}
	return &Formatter{
		renderer:  lipgloss.NewRenderer(w),
		color:     color,
		textColor: textColor,
	}
}

// Format renders level, message and a pre-formatted timestamp.
func (f *Formatter) Format(level string, message string, timestamp string) string {
	l := NormalizeLevel(level)
	ls := levelStyles[l]

	tag := "[" + l.String() + "]"
	if f.color {
		style := f.renderer.NewStyle().Foreground(lipgloss.Color(ls.fg))
		if ls.bg != "" {
			style = style.Background(lipgloss.Color(ls.bg))
		}
		tag = style.Render(tag)
		message = f.renderer.NewStyle().Foreground(lipgloss.Color(f.textColor)).Render(message)
	}

	return timestamp + " " + ls.emoji + " " + tag + " " + message
}

var plain = NewFormatter(io.Discard, false, "")

// Format renders a line without any color.
func Format(level string, message string, timestamp string) string {
	return plain.Format(level, message, timestamp)
}

// Timestamp renders t in loc using the Korean 12-hour layout with the dots
// dropped, e.g. "2025 5 3 오후 3:04:05".
func Timestamp(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	s := t.Format("2006. 1. 2. PM 3:04:05")
	s = strings.NewReplacer("AM", "오전", "PM", "오후", ".", "").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
