// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"encoding/json"
	"fmt"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

// Diff renders the differences between two cache documents as an annotated
// JSON listing. It returns "" when the documents are equal. A nil document
// compares as an empty object.
func Diff(left, right *OrderedMap, color bool) (string, error) {
	lb, err := diffBytes(left)
	if err != nil {
		return "", err
	}
	rb, err := diffBytes(right)
	if err != nil {
		return "", err
	}

	d, err := gojsondiff.New().Compare(lb, rb)
	if err != nil {
		return "", fmt.Errorf("failed to compare caches: %w", err)
	}
	if !d.Modified() {
		return "", nil
	}

	var base map[string]interface{}
	if err := json.Unmarshal(lb, &base); err != nil {
		return "", fmt.Errorf("failed to compare caches: %w", err)
	}

	f := formatter.NewAsciiFormatter(base, formatter.AsciiFormatterConfig{
		ShowArrayIndex: true,
		Coloring:       color,
	})
	out, err := f.Format(d)
	if err != nil {
		return "", fmt.Errorf("failed to format cache diff: %w", err)
	}
	return out, nil
}

func diffBytes(m *OrderedMap) ([]byte, error) {
	if m == nil {
		m = NewOrderedMap()
	}
	b, err := m.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to encode cache: %w", err)
	}
	return b, nil
}
