// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/poiesic/reasonit"
	"github.com/poiesic/reasonit/core"
	"github.com/poiesic/reasonit/export"
	"github.com/poiesic/reasonit/search"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "reasonit",
		Usage: "Search and indexing for reasoning session records",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:     "db",
				Aliases:  []string{"d"},
				Usage:    "Path to BadgerDB database directory",
				Required: true,
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "add",
				Usage:  "Add sessions from a JSON or YAML file (or stdin)",
				Action: addCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "Input file path (defaults to stdin)",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Input format (json, yaml)",
						Value: "json",
					},
				},
			},
			{
				Name:      "get",
				Usage:     "Print a session by id",
				ArgsUsage: "<session-id>",
				Action:    getCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "Output format (json, yaml, markdown)",
						Value: "json",
					},
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a session by id",
				ArgsUsage: "<session-id>",
				Action:    deleteCommand,
			},
			{
				Name:   "search",
				Usage:  "Search sessions",
				Action: searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "text",
						Aliases: []string{"t"},
						Usage:   "Full-text query",
					},
					&cli.StringSliceFlag{
						Name:    "mode",
						Aliases: []string{"m"},
						Usage:   "Reasoning mode filter (repeatable)",
					},
					&cli.StringFlag{
						Name:  "author",
						Usage: "Exact author filter",
					},
					&cli.StringFlag{
						Name:  "domain",
						Usage: "Exact domain filter",
					},
					&cli.StringSliceFlag{
						Name:  "category",
						Usage: "Taxonomy category filter (repeatable)",
					},
					&cli.StringSliceFlag{
						Name:  "type",
						Usage: "Taxonomy type filter (repeatable)",
					},
					&cli.TimestampFlag{
						Name:   "created-after",
						Usage:  "Only sessions created at or after this time",
						Layout: time.RFC3339,
					},
					&cli.TimestampFlag{
						Name:   "created-before",
						Usage:  "Only sessions created before this time",
						Layout: time.RFC3339,
					},
					&cli.StringFlag{
						Name:  "sort",
						Usage: "Result order (relevance, date, title)",
					},
					&cli.IntFlag{
						Name:  "offset",
						Usage: "Number of results to skip",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum results per page",
						Value: search.DefaultLimit,
					},
					&cli.BoolFlag{
						Name:  "facets",
						Usage: "Include facet counts in the output",
					},
				},
			},
			{
				Name:   "export",
				Usage:  "Export all sessions",
				Action: exportCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "Output format (json, yaml, markdown)",
						Value: "json",
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output file path (defaults to stdout)",
					},
				},
			},
			{
				Name:   "reindex",
				Usage:  "Rebuild the search index from storage",
				Action: reindexCommand,
			},
			{
				Name:      "backup",
				Usage:     "Write a full database backup",
				ArgsUsage: "<backup-file>",
				Action:    backupCommand,
			},
			{
				Name:      "restore",
				Usage:     "Load a database backup",
				ArgsUsage: "<backup-file>",
				Action:    restoreCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openLibrary(c *cli.Context) (*reasonit.Library, error) {
	dbPath := c.String("db")
	if dbPath == "" {
		return nil, fmt.Errorf("database path is required")
	}
	lib, err := reasonit.OpenLibrary(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open library: %w", err)
	}
	return lib, nil
}

func addCommand(c *cli.Context) error {
	ctx := context.Background()

	input := os.Stdin
	if path := c.String("file"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open input file: %w", err)
		}
		defer f.Close()
		input = f
	}

	sessions, err := export.ParseSessions(input, c.String("format"))
	if err != nil {
		return err
	}

	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	for _, session := range sessions {
		stored, err := lib.AddSession(ctx, session)
		if err != nil {
			return fmt.Errorf("failed to add session %q: %w", session.Title, err)
		}
		fmt.Fprintf(os.Stderr, "added %s (%s)\n", stored.Id, stored.Title)
	}

	return nil
}

func getCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one session id")
	}

	formatter, err := export.NewFormatter(c.String("format"))
	if err != nil {
		return err
	}

	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	session, err := lib.GetSession(context.Background(), core.ID(c.Args().First()))
	if err != nil {
		return err
	}
	return formatter.Format(os.Stdout, []*core.Session{session})
}

func deleteCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one session id")
	}

	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	return lib.DeleteSession(context.Background(), core.ID(c.Args().First()))
}

func searchCommand(c *cli.Context) error {
	query, err := buildQuery(c)
	if err != nil {
		return err
	}

	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	result := lib.Search(query)
	printResult(result)
	return nil
}

// buildQuery translates command-line flags into a search query.
func buildQuery(c *cli.Context) (search.Query, error) {
	query := search.Query{
		Text:               c.String("text"),
		Author:             c.String("author"),
		Domain:             c.String("domain"),
		TaxonomyCategories: c.StringSlice("category"),
		TaxonomyTypes:      c.StringSlice("type"),
		Offset:             c.Int("offset"),
		Limit:              c.Int("limit"),
		IncludeFacets:      c.Bool("facets"),
	}

	for _, name := range c.StringSlice("mode") {
		mode, err := core.ParseMode(name)
		if err != nil {
			return search.Query{}, fmt.Errorf("%w: %q", err, name)
		}
		query.Modes = append(query.Modes, mode)
	}

	sort, err := search.ParseSort(c.String("sort"))
	if err != nil {
		return search.Query{}, fmt.Errorf("%w: %q", err, c.String("sort"))
	}
	query.Sort = sort

	if after := c.Timestamp("created-after"); after != nil {
		query.CreatedAfter = *after
	}
	if before := c.Timestamp("created-before"); before != nil {
		query.CreatedBefore = *before
	}

	return query, nil
}

func printResult(result *search.Result) {
	fmt.Printf("%d results (showing %d from offset %d, took %s)\n",
		result.Total, len(result.Sessions), result.Offset, result.ExecutionTime)
	for i, session := range result.Sessions {
		fmt.Printf("%d: %s [%s] %s\n", result.Offset+i+1, session.Title, session.Mode, session.Id)
	}
	if result.HasMore {
		fmt.Println("... more results available")
	}
	if result.Facets != nil {
		fmt.Println("\nFacets:")
		for mode, count := range result.Facets.Modes {
			fmt.Printf("  mode %s: %d\n", mode, count)
		}
		for author, count := range result.Facets.Authors {
			fmt.Printf("  author %s: %d\n", author, count)
		}
		for domain, count := range result.Facets.Domains {
			fmt.Printf("  domain %s: %d\n", domain, count)
		}
	}
}

func exportCommand(c *cli.Context) error {
	output := os.Stdout
	if path := c.String("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	return lib.Export(context.Background(), output, c.String("format"))
}

func reindexCommand(c *cli.Context) error {
	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	count, err := lib.Reindex(context.Background())
	if err != nil {
		return fmt.Errorf("reindex failed: %w", err)
	}
	fmt.Fprintf(os.Stderr, "reindexed %d sessions\n", count)
	return nil
}

func backupCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one backup file path")
	}

	f, err := os.Create(c.Args().First())
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer f.Close()

	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	if err := lib.Backup(f); err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}
	return nil
}

func restoreCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one backup file path")
	}

	f, err := os.Open(c.Args().First())
	if err != nil {
		return fmt.Errorf("failed to open backup file: %w", err)
	}
	defer f.Close()

	lib, err := openLibrary(c)
	if err != nil {
		return err
	}
	defer lib.Close()

	if err := lib.Restore(context.Background(), f); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
