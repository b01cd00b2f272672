// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package cache persists a small key/value document as a JSON file. The
// document is held in memory as an OrderedMap that is converted for at most
// two levels; anything deeper stays a plain decoded JSON value.
package cache
