// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/decord0455/reposcore/internal/cache"
	"github.com/decord0455/reposcore/internal/meta"
	"github.com/decord0455/reposcore/internal/output"
)

func cacheStore(cmd *cli.Command) *cache.Store {
	return cache.NewStore(cmd.String("cache-file"))
}

// CacheShowAction renders the whole cache document.
func CacheShowAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	return output.Spit(m.Stdout, cacheStore(cmd).Load(), output.Options{
		Format: cmd.String("output"),
		Sort:   cmd.String("sort"),
		Color:  cmd.Bool("color"),
		Titles: cmd.Bool("titles"),
	})
}

// CacheGetAction prints one value. Nested documents print as JSON.
func CacheGetAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)

	key := cmd.Args().First()
	if key == "" {
		return errors.New("a key is required")
	}

	v, ok := cache.Get(cacheStore(cmd).Load(), key)
	if !ok {
		return fmt.Errorf("key %q not found in cache", key)
	}
	if inner, ok := v.(*cache.OrderedMap); ok {
		return output.Spit(m.Stdout, inner, output.Options{Format: "json"})
	}
	fmt.Fprintln(m.Stdout, output.InterfaceToString(v))
	return nil
}

// CacheSetAction stores a value and saves the document. Values that parse as
// JSON are stored decoded, anything else as a string.
func CacheSetAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 { //nolint:mnd
		return errors.New("a key and a value are required")
	}
	key, raw := cmd.Args().Get(0), cmd.Args().Get(1)

	var value any = raw
	if gjson.Valid(raw) {
		value = gjson.Parse(raw).Value()
	}

	store := cacheStore(cmd)
	doc := store.Load()
	if doc == nil {
		doc = cache.NewOrderedMap()
	}
	if err := cache.Set(doc, key, value); err != nil {
		return err
	}
	if err := store.Save(doc); err != nil {
		return err
	}
	log.Infof("cache %s updated", key)
	return nil
}

// CacheDeleteAction removes a key and saves the document.
func CacheDeleteAction(ctx context.Context, cmd *cli.Command) error {
	key := cmd.Args().First()
	if key == "" {
		return errors.New("a key is required")
	}

	store := cacheStore(cmd)
	doc := store.Load()
	if !cache.Delete(doc, key) {
		return fmt.Errorf("key %q not found in cache", key)
	}
	if err := store.Save(doc); err != nil {
		return err
	}
	log.Infof("cache %s deleted", key)
	return nil
}

// CacheDiffAction compares the cache with another cache file. Nothing is
// printed when they hold the same data.
func CacheDiffAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)

	other := cmd.Args().First()
	if other == "" {
		return errors.New("a file to compare with is required")
	}
	if _, err := os.Stat(other); err != nil {
		return fmt.Errorf("failed to read %s: %w", other, err)
	}

	out, err := cache.Diff(cacheStore(cmd).Load(), cache.NewStore(other).Load(),
		cmd.Bool("color") && isTerminal(m.Stdout))
	if err != nil {
		return err
	}
	if out == "" {
		log.Infof("cache matches %s", other)
		return nil
	}
	fmt.Fprint(m.Stdout, out)
	return nil
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// CacheInfoAction describes the cache file.
func CacheInfoAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	store := cacheStore(cmd)

	info, err := store.Info()
	if err != nil {
		return err
	}
	entries := len(output.Flatten(store.Load()))

	fmt.Fprintf(m.Stdout, "path:     %s\n", info.Path)
	fmt.Fprintf(m.Stdout, "size:     %s\n", humanize.Bytes(uint64(info.Size))) //nolint:gosec
	fmt.Fprintf(m.Stdout, "modified: %s\n", humanize.Time(info.ModTime))
	fmt.Fprintf(m.Stdout, "entries:  %s\n", humanize.Comma(int64(entries)))
	return nil
}

func CacheCommandBuilder(m *meta.Meta) *cli.Command {
	return &cli.Command{
		Name:     "cache",
		Usage:    "inspect and edit the JSON cache",
		Metadata: withMeta(m),
		Commands: []*cli.Command{
			{
				Name:     "show",
				Usage:    "print the cache document",
				Metadata: withMeta(m),
				Flags:    newOutputFlags(m.Config.Source),
				Action:   CacheShowAction,
			},
			{
				Name:      "get",
				Usage:     "print one cache value",
				UsageText: "reposcore cache get <key|key.sub>",
				Metadata:  withMeta(m),
				Action:    CacheGetAction,
			},
			{
				Name:      "set",
				Usage:     "store one cache value",
				UsageText: "reposcore cache set <key|key.sub> <value>",
				Metadata:  withMeta(m),
				Action:    CacheSetAction,
			},
			{
				Name:      "delete",
				Usage:     "remove one cache value",
				UsageText: "reposcore cache delete <key|key.sub>",
				Metadata:  withMeta(m),
				Action:    CacheDeleteAction,
			},
			{
				Name:      "diff",
				Usage:     "compare the cache with another cache file",
				UsageText: "reposcore cache diff <file>",
				Metadata:  withMeta(m),
				Action:    CacheDiffAction,
			},
			{
				Name:     "info",
				Usage:    "describe the cache file",
				Metadata: withMeta(m),
				Action:   CacheInfoAction,
			},
		},
	}
}
