// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/decord0455/reposcore/internal/envfile"
	"github.com/decord0455/reposcore/internal/meta"
)

// TokenCommandAction stores the token in the env file. Without an argument
// the token is read from stdin, hidden when stdin is a terminal.
func TokenCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)

	token := cmd.Args().First()
	if token == "" {
		var err error
		if token, err = readToken(m.Stdin); err != nil {
			return err
		}
	}
	if token == "" {
		return errors.New("a token is required")
	}

	return envfile.New(cmd.String("env-file")).UpdateToken(token)
}

func readToken(in io.Reader) (string, error) {
	if isTerminal(in) {
		fmt.Fprint(os.Stderr, "GitHub token: ")
		b, err := term.ReadPassword(int(in.(*os.File).Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read token: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func TokenCommandBuilder(m *meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "token",
		Usage:     "save the GitHub token in the env file",
		UsageText: "reposcore token [token]\necho $TOKEN | reposcore token",
		Metadata:  withMeta(m),
		Action:    TokenCommandAction,
	}
}
