package reasonit

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/reasonit/core"
	"github.com/poiesic/reasonit/search"
	"github.com/poiesic/reasonit/storage"
)

func openTestLibrary(t *testing.T) *Library {
	t.Helper()

	lib, err := OpenMemoryLibrary()
	require.NoError(t, err)
	t.Cleanup(func() { lib.Close() })
	return lib
}

func newTestSession(title string, mode core.Mode, contents ...string) *core.Session {
	thoughts := make([]core.Thought, len(contents))
	for i, content := range contents {
		thoughts[i] = core.Thought{Number: i + 1, Content: content}
	}
	return &core.Session{
		Title:    title,
		Mode:     mode,
		Thoughts: thoughts,
	}
}

func TestLibrary_AddAndSearch(t *testing.T) {
	lib := openTestLibrary(t)
	ctx := context.Background()

	session := newTestSession("Entropy always wins", core.ModeCausal, "Entropy increases over time")
	stored, err := lib.AddSession(ctx, session)
	require.NoError(t, err)

	assert.NotEmpty(t, stored.Id, "an id is assigned on add")
	assert.False(t, stored.CreatedAt.IsZero(), "created timestamp is set on add")

	result := lib.Search(search.Query{Text: "entropy"})
	require.Len(t, result.Sessions, 1)
	assert.Equal(t, stored.Id, result.Sessions[0].Id)

	retrieved, err := lib.GetSession(ctx, stored.Id)
	require.NoError(t, err)
	assert.Equal(t, "Entropy always wins", retrieved.Title)
}

func TestLibrary_AddValidates(t *testing.T) {
	lib := openTestLibrary(t)
	ctx := context.Background()

	t.Run("empty title", func(t *testing.T) {
		_, err := lib.AddSession(ctx, newTestSession("", core.ModeLinear, "content"))
		assert.ErrorIs(t, err, core.ErrEmptyTitle)
	})

	t.Run("nil session", func(t *testing.T) {
		_, err := lib.AddSession(ctx, nil)
		assert.ErrorIs(t, err, core.ErrInvalidSession)
	})

	t.Run("mode rules enforced", func(t *testing.T) {
		_, err := lib.AddSession(ctx, newTestSession("Proof sketch", core.ModeMathematical, "step"))
		assert.ErrorIs(t, err, core.ErrMissingDomain)
	})

	t.Run("rejected sessions are not stored", func(t *testing.T) {
		result := lib.Search(search.Query{})
		assert.Zero(t, result.Total)
	})
}

func TestLibrary_Update(t *testing.T) {
	lib := openTestLibrary(t)
	ctx := context.Background()

	stored, err := lib.AddSession(ctx, newTestSession("Original title", core.ModeLinear, "alpha content"))
	require.NoError(t, err)

	stored.Title = "Revised title"
	stored.Thoughts = []core.Thought{{Number: 1, Content: "bravo content"}}
	_, err = lib.UpdateSession(ctx, stored)
	require.NoError(t, err)

	t.Run("stale tokens no longer match", func(t *testing.T) {
		result := lib.Search(search.Query{Text: "alpha"})
		assert.Zero(t, result.Total)
	})

	t.Run("new tokens match", func(t *testing.T) {
		result := lib.Search(search.Query{Text: "bravo"})
		require.Len(t, result.Sessions, 1)
		assert.Equal(t, "Revised title", result.Sessions[0].Title)
	})

	t.Run("storage reflects the update", func(t *testing.T) {
		retrieved, err := lib.GetSession(ctx, stored.Id)
		require.NoError(t, err)
		assert.Equal(t, "Revised title", retrieved.Title)
	})

	t.Run("updating a missing session fails", func(t *testing.T) {
		missing := newTestSession("Ghost", core.ModeLinear, "content")
		missing.Id = "no-such-id"
		_, err := lib.UpdateSession(ctx, missing)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestLibrary_Delete(t *testing.T) {
	lib := openTestLibrary(t)
	ctx := context.Background()

	stored, err := lib.AddSession(ctx, newTestSession("Disposable", core.ModeLinear, "ephemeral"))
	require.NoError(t, err)

	require.NoError(t, lib.DeleteSession(ctx, stored.Id))

	result := lib.Search(search.Query{Text: "ephemeral"})
	assert.Zero(t, result.Total)

	_, err = lib.GetSession(ctx, stored.Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.ErrorIs(t, lib.DeleteSession(ctx, stored.Id), storage.ErrNotFound)
}

func TestLibrary_Reindex(t *testing.T) {
	lib := openTestLibrary(t)
	ctx := context.Background()

	for _, title := range []string{"First", "Second", "Third"} {
		_, err := lib.AddSession(ctx, newTestSession(title, core.ModeLinear, "searchable"))
		require.NoError(t, err)
	}

	count, err := lib.Reindex(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	result := lib.Search(search.Query{Text: "searchable"})
	assert.Equal(t, 3, result.Total)
}

func TestLibrary_Export(t *testing.T) {
	lib := openTestLibrary(t)
	ctx := context.Background()

	_, err := lib.AddSession(ctx, newTestSession("Exported session", core.ModeLinear, "payload"))
	require.NoError(t, err)

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, lib.Export(ctx, &buf, "json"))
		assert.Contains(t, buf.String(), `"Exported session"`)
	})

	t.Run("markdown", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, lib.Export(ctx, &buf, "markdown"))
		assert.Contains(t, buf.String(), "# Exported session")
	})

	t.Run("unknown format", func(t *testing.T) {
		err := lib.Export(ctx, &bytes.Buffer{}, "csv")
		assert.Error(t, err)
	})

	t.Run("empty library exports empty document", func(t *testing.T) {
		empty := openTestLibrary(t)
		var buf bytes.Buffer
		require.NoError(t, empty.Export(ctx, &buf, "json"))
		assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
	})
}

func TestLibrary_BackupRestore(t *testing.T) {
	source := openTestLibrary(t)
	ctx := context.Background()

	stored, err := source.AddSession(ctx, newTestSession("Survivor", core.ModeLinear, "durable content"))
	require.NoError(t, err)

	var stream bytes.Buffer
	require.NoError(t, source.Backup(&stream))

	target := openTestLibrary(t)
	require.NoError(t, target.Restore(ctx, &stream))

	restored, err := target.GetSession(ctx, stored.Id)
	require.NoError(t, err)
	assert.Equal(t, "Survivor", restored.Title)

	// Restore rebuilds the index, so the restored data is searchable.
	result := target.Search(search.Query{Text: "durable"})
	require.Len(t, result.Sessions, 1)
	assert.Equal(t, stored.Id, result.Sessions[0].Id)
}

func TestLibrary_SearchFacetsAndPagination(t *testing.T) {
	lib := openTestLibrary(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		session := newTestSession("Paginated", core.ModeLinear, "common token")
		session.Author = "alice"
		_, err := lib.AddSession(ctx, session)
		require.NoError(t, err)
	}

	result := lib.Search(search.Query{Text: "common", Limit: 2, IncludeFacets: true})
	assert.Equal(t, 5, result.Total)
	assert.Len(t, result.Sessions, 2)
	assert.True(t, result.HasMore)
	require.NotNil(t, result.Facets)
	assert.Equal(t, map[string]int{"alice": 5}, result.Facets.Authors)
}
