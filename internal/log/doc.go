// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package log is the console logger. Lines look like
//
//	2025 5 3 오후 3:04:05 💡 [INFO] message
//
// with the timestamp rendered in Asia/Seoul. The Logger doubles as an apex/log
// handler so package level apex calls share its format and threshold.
package log
