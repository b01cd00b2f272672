// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/decord0455/reposcore/internal/cache"
	"github.com/decord0455/reposcore/internal/config"
)

// Formats accepted by Spit.
var Formats = []string{"text", "json", "yaml"}

// Row is one flattened cache entry.
type Row struct {
	Key   string
	Value any
}

// Options control how a document is rendered.
type Options struct {
	Format string
	Sort   string
	Color  bool
	Titles bool
}

// Spit renders m to w in the requested format. A nil document renders as an
// empty object.
func Spit(w io.Writer, m *cache.OrderedMap, opts Options) error {
	if m == nil {
		m = cache.NewOrderedMap()
	}

	switch opts.Format {
	case "json":
		out, err := m.MarshalIndent()
		if err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		_, err = w.Write(out)
		return err
	case "yaml":
		out, err := yaml.Marshal(m)
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	case "text", "":
		rows := Flatten(m)
		SortRows(rows, opts.Sort)
		TableWriter(w, rows, opts)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", opts.Format)
	}
}

// Flatten lists the entries of m, descending one level into nested maps.
// Nested keys are joined with a dot.
func Flatten(m *cache.OrderedMap) []Row {
	var rows []Row
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		inner, ok := v.(*cache.OrderedMap)
		if !ok {
			rows = append(rows, Row{Key: k, Value: v})
			continue
		}
		for _, ik := range inner.Keys() {
			iv, _ := inner.Get(ik)
			rows = append(rows, Row{Key: k + "." + ik, Value: iv})
		}
	}
	return rows
}

// SortRows orders rows by "key" or "value". A leading '-' sorts descending.
// Numbers compare numerically, everything else by its string form. An empty
// value keeps document order.
func SortRows(rows []Row, by string) {
	if by == "" {
		return
	}
	desc := strings.HasPrefix(by, "-")
	field := strings.TrimPrefix(by, "-")

	less := func(a, b Row) bool {
		if field == "value" {
			af, aok := a.Value.(float64)
			bf, bok := b.Value.(float64)
			if aok && bok {
				return af < bf
			}
			return InterfaceToString(a.Value) < InterfaceToString(b.Value)
		}
		return a.Key < b.Key
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if desc {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
}

// TableWriter renders rows as a borderless two column table.
func TableWriter(w io.Writer, rows []Row, opts Options) {
	if len(rows) == 0 {
		return
	}

	r := lipgloss.NewRenderer(w)
	var (
		headerStyle  = r.NewStyle().Align(lipgloss.Left)
		cellStyle    = r.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	pad, _ := config.GetInt("padding", 1)

	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{row.Key, InterfaceToString(row.Value, "-")})
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Rows(cells...)

	if opts.Titles {
		t = t.Headers("KEY", "VALUE").BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}

// InterfaceToString converts a decoded JSON value to display text. nil and
// the empty string render as the optional empty value.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	switch value := value.(type) {
	case nil:
		return emptyValue[0]
	case string:
		if value == "" {
			return emptyValue[0]
		}
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}
