package badger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/reasonit/core"
)

func TestOpenBackend_InMemory(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestOpenBackend_FileSystem(t *testing.T) {
	tmpDir := t.TempDir()
	backend, err := OpenBackend(tmpDir, false)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestOpenBackend_CreatesDirectory(t *testing.T) {
	path := t.TempDir() + "/nested/sessions_db"
	backend, err := OpenBackend(path, false)
	require.NoError(t, err)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestBackendClose(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)

	assert.False(t, backend.IsClosed())
	require.NoError(t, backend.Close())
	assert.True(t, backend.IsClosed())
}

func TestBackupRestore(t *testing.T) {
	source, sourceBackend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		source.Close()
		sourceBackend.Close()
	}()

	ctx := context.Background()
	sessions := []*core.Session{
		{Id: "a", Title: "First", Mode: core.ModeLinear},
		{Id: "b", Title: "Second", Mode: core.ModeCausal},
		{Id: "c", Title: "Third", Mode: core.ModeSystems},
	}
	require.NoError(t, source.PutSessions(ctx, sessions...))

	var stream bytes.Buffer
	require.NoError(t, sourceBackend.Backup(&stream))
	assert.NotZero(t, stream.Len())

	target, targetBackend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		target.Close()
		targetBackend.Close()
	}()

	require.NoError(t, targetBackend.Restore(&stream))

	count, err := target.CountSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	restored, err := target.GetSession(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "Second", restored.Title)
	assert.Equal(t, core.ModeCausal, restored.Mode)
}
