// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/decord0455/reposcore/internal/log"
	"github.com/decord0455/reposcore/internal/output"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// JammedFlagValidator verifies that the arg following a flag does not begin
// with '--'.  urfave/cli allows this and I don't see how to turn it off.
func JammedFlagValidator(value any) error {
	if strings.HasPrefix(value.(string), "--") {
		return errors.New("must not begin with '--'")
	}
	return nil
}

func OutputValidator(value any) error {
	if !slices.Contains(output.Formats, value.(string)) {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}

func LevelValidator(value any) error {
	if _, ok := log.ParseLevel(value.(string)); !ok {
		return fmt.Errorf("must be one of LOG, DEBUG, INFO, WARN, ERROR")
	}
	return nil
}

func SortValidator(value any) error {
	switch strings.TrimPrefix(value.(string), "-") {
	case "", "key", "value":
		return nil
	}
	return errors.New("must be key or value, optionally prefixed with '-'")
}

// ScoreValidator accepts anything strconv can read as a float.
func ScoreValidator(value any) error {
	if _, err := strconv.ParseFloat(value.(string), 64); err != nil {
		return fmt.Errorf("score %q is not a number", value)
	}
	return nil
}
