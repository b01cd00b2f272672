// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package badge

import "math"

// Band maps an inclusive score range to a badge.
type Band struct {
	Min   float64
	Max   float64
	Emoji string
	Title string
}

// String renders the badge as shown next to a contributor.
func (b Band) String() string {
	return b.Emoji + " " + b.Title
}

// bands are contiguous, ascending and non-overlapping. The last one is open
// ended.
var bands = []Band{
	{Min: 0, Max: 9, Emoji: "🌱", Title: "새싹 기여자"},
	{Min: 10, Max: 19, Emoji: "🌿", Title: "성장하는 기여자"},
	{Min: 20, Max: 29, Emoji: "🌳", Title: "든든한 기여자"},
	{Min: 30, Max: 49, Emoji: "🌟", Title: "빛나는 기여자"},
	{Min: 50, Max: 99, Emoji: "🚀", Title: "핵심 기여자"},
	{Min: 100, Max: math.Inf(1), Emoji: "☀️", Title: "태양 기여자"},
}

// Bands returns a copy of the badge table.
func Bands() []Band {
	return append([]Band(nil), bands...)
}

// Lookup returns the badge of the first band containing score, or "" when no
// band does (negative scores and NaN).
func Lookup(score float64) string {
	for _, b := range bands {
		if score >= b.Min && score <= b.Max {
			return b.String()
		}
	}
	return ""
}
