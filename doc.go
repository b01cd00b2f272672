// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// reposcore is the command line front end for the repository score
// utilities: contributor badges, the console logger, the JSON cache and the
// GitHub token env file.
package main
