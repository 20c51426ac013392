package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/reasonit/core"
	"github.com/poiesic/reasonit/search"
)

// searchFlags mirrors the flag set of the search command so buildQuery can
// be exercised without opening a database.
func searchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "text", Aliases: []string{"t"}},
		&cli.StringSliceFlag{Name: "mode", Aliases: []string{"m"}},
		&cli.StringFlag{Name: "author"},
		&cli.StringFlag{Name: "domain"},
		&cli.StringSliceFlag{Name: "category"},
		&cli.StringSliceFlag{Name: "type"},
		&cli.TimestampFlag{Name: "created-after", Layout: time.RFC3339},
		&cli.TimestampFlag{Name: "created-before", Layout: time.RFC3339},
		&cli.StringFlag{Name: "sort"},
		&cli.IntFlag{Name: "offset"},
		&cli.IntFlag{Name: "limit", Value: search.DefaultLimit},
		&cli.BoolFlag{Name: "facets"},
	}
}

func runBuildQuery(t *testing.T, args ...string) (search.Query, error) {
	t.Helper()

	var query search.Query
	var buildErr error
	app := &cli.App{
		Name:  "reasonit",
		Flags: searchFlags(),
		Action: func(c *cli.Context) error {
			query, buildErr = buildQuery(c)
			return nil
		},
	}

	require.NoError(t, app.Run(append([]string{"reasonit"}, args...)))
	return query, buildErr
}

func TestBuildQuery(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		query, err := runBuildQuery(t)
		require.NoError(t, err)
		assert.Empty(t, query.Text)
		assert.Empty(t, query.Modes)
		assert.Zero(t, query.Offset)
		assert.Equal(t, search.DefaultLimit, query.Limit)
		assert.False(t, query.IncludeFacets)
		assert.True(t, query.CreatedAfter.IsZero())
		assert.True(t, query.CreatedBefore.IsZero())
	})

	t.Run("all flags", func(t *testing.T) {
		query, err := runBuildQuery(t,
			"--text", "entropy gradient",
			"--mode", "physics",
			"--mode", "mathematical",
			"--author", "alice",
			"--domain", "thermodynamics",
			"--category", "science",
			"--type", "analysis",
			"--created-after", "2025-01-01T00:00:00Z",
			"--created-before", "2025-06-01T00:00:00Z",
			"--sort", "date",
			"--offset", "40",
			"--limit", "10",
			"--facets",
		)
		require.NoError(t, err)
		assert.Equal(t, "entropy gradient", query.Text)
		assert.Equal(t, []core.Mode{core.ModePhysics, core.ModeMathematical}, query.Modes)
		assert.Equal(t, "alice", query.Author)
		assert.Equal(t, "thermodynamics", query.Domain)
		assert.Equal(t, []string{"science"}, query.TaxonomyCategories)
		assert.Equal(t, []string{"analysis"}, query.TaxonomyTypes)
		assert.Equal(t, search.SortDate, query.Sort)
		assert.Equal(t, 40, query.Offset)
		assert.Equal(t, 10, query.Limit)
		assert.True(t, query.IncludeFacets)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), query.CreatedAfter)
		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), query.CreatedBefore)
	})

	t.Run("unknown mode fails", func(t *testing.T) {
		_, err := runBuildQuery(t, "--mode", "quantum")
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrUnknownMode)
	})

	t.Run("unknown sort fails", func(t *testing.T) {
		_, err := runBuildQuery(t, "--sort", "shuffle")
		require.Error(t, err)
		assert.ErrorIs(t, err, search.ErrUnknownSort)
	})
}

func TestSetupLogger(t *testing.T) {
	newApp := func() *cli.App {
		return &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "log-level",
					Aliases: []string{"l"},
					Value:   "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				return nil
			},
		}
	}

	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			t.Run(level, func(t *testing.T) {
				err := newApp().Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("case insensitive log levels", func(t *testing.T) {
		for _, level := range []string{"DEBUG", "Info", "WaRn", "ERROR"} {
			t.Run(level, func(t *testing.T) {
				err := newApp().Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := newApp().Run([]string{"test", "--log-level", "loud"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("log-level flag has alias -l", func(t *testing.T) {
		err := newApp().Run([]string{"test", "-l", "debug"})
		require.NoError(t, err)
	})
}

func TestMain(m *testing.M) {
	code := m.Run()
	os.Exit(code)
}
