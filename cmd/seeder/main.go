package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/poiesic/reasonit"
	"github.com/poiesic/reasonit/core"
	"github.com/poiesic/reasonit/export"
	"github.com/poiesic/reasonit/search"
)

var (
	dbPath       = flag.String("db", "./sessions_db", "path to the session database")
	seedFileName = flag.String("src", "", "JSON file of seed sessions")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func thoughts(contents ...string) []core.Thought {
	result := make([]core.Thought, len(contents))
	for i, content := range contents {
		result[i] = core.Thought{Number: i + 1, Content: content}
	}
	return result
}

func sampleSessions() []*core.Session {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return []*core.Session{
		{
			Title:  "Heat loss through a cabin wall",
			Mode:   core.ModePhysics,
			Author: "alice",
			Domain: "thermodynamics",
			Thoughts: thoughts(
				"Model the wall as a slab with steady-state conduction.",
				"Apply Fourier's law with the measured conductivity of pine.",
				"The dominant loss is the single-pane window, not the wall.",
			),
			Tags:      []string{"heat", "conduction"},
			Taxonomy:  &core.Taxonomy{Categories: []string{"science"}, Types: []string{"analysis"}},
			CreatedAt: base,
		},
		{
			Title:  "Convergence of a geometric series",
			Mode:   core.ModeMathematical,
			Author: "alice",
			Domain: "analysis",
			Thoughts: thoughts(
				"Write the partial sum in closed form.",
				"The ratio is less than one, so the partial sums converge.",
				"The limit is a/(1-r).",
			),
			Tags:      []string{"series", "limits"},
			CreatedAt: base.Add(24 * time.Hour),
		},
		{
			Title:  "Why the deploy failed on Friday",
			Mode:   core.ModeCausal,
			Author: "bob",
			Domain: "operations",
			Thoughts: thoughts(
				"The deploy coincided with a certificate rotation.",
				"Rotation invalidated the cached service tokens.",
				"Services that retried with fresh tokens recovered; the batch jobs did not.",
			),
			Tags:      []string{"incident", "postmortem"},
			Taxonomy:  &core.Taxonomy{Categories: []string{"engineering"}, Types: []string{"retrospective"}},
			CreatedAt: base.Add(48 * time.Hour),
		},
		{
			Title:  "Feedback loops in a reservation system",
			Mode:   core.ModeSystems,
			Author: "bob",
			Domain: "architecture",
			Thoughts: thoughts(
				"Overbooking compensates for no-shows, which trains users to overbook.",
				"The compensating loop amplifies the original problem.",
				"Dampen the loop by pricing cancellations instead of padding capacity.",
			),
			Tags:      []string{"feedback", "incentives"},
			CreatedAt: base.Add(72 * time.Hour),
		},
		{
			Title:  "Should the parser be rewritten",
			Mode:   core.ModeDialectical,
			Author: "carol",
			Thoughts: thoughts(
				"Thesis: the parser accumulates patches and should be rewritten.",
				"Antithesis: rewrites discard encoded edge-case knowledge.",
				"Synthesis: extract the grammar into tables and regenerate the core.",
			),
			Tags:      []string{"parser", "tradeoffs"},
			CreatedAt: base.Add(96 * time.Hour),
		},
		{
			Title:  "Choosing a cache eviction policy",
			Mode:   core.ModeLinear,
			Author: "carol",
			Domain: "performance",
			Thoughts: thoughts(
				"Measure the access distribution before choosing a policy.",
				"The workload is scan-heavy, which defeats plain LRU.",
				"Segmented LRU keeps the hot set resident through scans.",
			),
			CreatedAt: base.Add(120 * time.Hour),
		},
	}
}

func loadSessions(filename string) ([]*core.Session, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return export.ParseSessions(f, "json")
}

func main() {
	lib, err := reasonit.OpenLibrary(*dbPath)
	if err != nil {
		panic(err)
	}
	defer lib.Close()

	ctx := context.Background()

	sessions := sampleSessions()
	if *seedFileName != "" {
		sessions, err = loadSessions(*seedFileName)
		if err != nil {
			panic(err)
		}
	}

	for _, session := range sessions {
		if _, err := lib.AddSession(ctx, session); err != nil {
			panic(err)
		}
	}
	fmt.Printf("Seeded %d sessions\n", len(sessions))

	// Quick smoke query over the seeded corpus.
	result := lib.Search(search.Query{Text: "loop", IncludeFacets: true})
	fmt.Printf("Found %d hits for 'loop' (%s)\n", result.Total, result.ExecutionTime)
	for i, session := range result.Sessions {
		fmt.Printf("%d: '%s' [%s] (%s)\n", i, session.Title, session.Mode, session.Id)
	}
}
