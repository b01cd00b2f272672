// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

// maxDepth is how many object levels become OrderedMaps.
const maxDepth = 2

var (
	ErrInvalidJSON = errors.New("invalid JSON")
	ErrNotObject   = errors.New("top-level JSON value is not an object")
)

// ToNestedMap converts a decoded JSON object into OrderedMaps for the first
// two levels. Go maps carry no order, so keys are inserted sorted. Arrays,
// scalars and anything deeper are returned unchanged.
func ToNestedMap(v any) any {
	return toNestedMap(v, 0)
}

func toNestedMap(v any, depth int) any {
	obj, ok := v.(map[string]any)
	if !ok || depth >= maxDepth {
		return v
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m := NewOrderedMap()
	for _, k := range keys {
		m.Set(k, toNestedMap(obj[k], depth+1))
	}
	return m
}

// FromNestedMap turns every OrderedMap, at any depth, back into a plain map.
func FromNestedMap(v any) any {
	m, ok := v.(*OrderedMap)
	if !ok {
		return v
	}
	if m == nil {
		return map[string]any(nil)
	}

	out := make(map[string]any, m.Len())
	for _, k := range m.keys {
		out[k] = FromNestedMap(m.values[k])
	}
	return out
}

// ParseNested decodes a JSON object straight into OrderedMaps, keeping the
// document's key order. The depth bound matches ToNestedMap.
func ParseNested(data []byte) (*OrderedMap, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	res := gjson.ParseBytes(data)
	if !res.IsObject() {
		return nil, ErrNotObject
	}
	return fromResult(res, 0).(*OrderedMap), nil
}

func fromResult(r gjson.Result, depth int) any {
	if !r.IsObject() || depth >= maxDepth {
		return r.Value()
	}

	m := NewOrderedMap()
	r.ForEach(func(k, v gjson.Result) bool {
		m.Set(k.String(), fromResult(v, depth+1))
		return true
	})
	return m
}

// Get resolves a dotted path of at most two segments. Dots after the first
// one belong to the second key.
func Get(m *OrderedMap, path string) (any, bool) {
	first, rest, nested := strings.Cut(path, ".")
	v, ok := m.Get(first)
	if !ok || !nested {
		return v, ok
	}
	inner, ok := v.(*OrderedMap)
	if !ok {
		return nil, false
	}
	return inner.Get(rest)
}

// Set stores value at a dotted path of at most two segments, creating the
// first level when needed. Plain objects in value are converted as if the
// whole document had gone through ToNestedMap.
func Set(m *OrderedMap, path string, value any) error {
	first, rest, nested := strings.Cut(path, ".")
	if first == "" || (nested && rest == "") {
		return fmt.Errorf("invalid cache key %q", path)
	}
	if !nested {
		m.Set(first, toNestedMap(value, 1))
		return nil
	}

	v, ok := m.Get(first)
	if !ok {
		inner := NewOrderedMap()
		inner.Set(rest, toNestedMap(value, 2))
		m.Set(first, inner)
		return nil
	}
	inner, ok := v.(*OrderedMap)
	if !ok {
		return fmt.Errorf("cache key %q is not an object", first)
	}
	inner.Set(rest, toNestedMap(value, 2))
	return nil
}

// Delete removes the entry at a dotted path and reports whether it existed.
func Delete(m *OrderedMap, path string) bool {
	first, rest, nested := strings.Cut(path, ".")
	if m == nil {
		return false
	}
	if !nested {
		return m.Delete(first)
	}
	v, _ := m.Get(first)
	inner, ok := v.(*OrderedMap)
	if !ok {
		return false
	}
	return inner.Delete(rest)
}
