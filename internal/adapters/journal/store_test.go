package journal_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/anvil/internal/adapters/journal"
	"go.trai.ch/anvil/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	store, err := journal.NewStore(filepath.Join(t.TempDir(), ".anvil", "journal.json"))
	require.NoError(t, err)

	got, err := store.Get("demo", "compile")
	require.NoError(t, err)
	assert.Nil(t, got)

	rec := domain.TargetRecord{
		Project:  "demo",
		Target:   "compile",
		Status:   domain.TargetStatusCompleted,
		Duration: 2 * time.Second,
	}
	require.NoError(t, store.Put(rec))

	got, err = store.Get("demo", "compile")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec, *got)
}

func TestStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")

	first, err := journal.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Put(domain.TargetRecord{
		Project: "demo",
		Target:  "test",
		Status:  domain.TargetStatusFailed,
		Error:   "exit status 1",
	}))

	second, err := journal.NewStore(path)
	require.NoError(t, err)
	got, err := second.Get("demo", "test")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.TargetStatusFailed, got.Status)
	assert.Equal(t, "exit status 1", got.Error)
}

func TestStore_ListIsOrdered(t *testing.T) {
	store, err := journal.NewStore(filepath.Join(t.TempDir(), "journal.json"))
	require.NoError(t, err)

	for _, rec := range []domain.TargetRecord{
		{Project: "shared", Target: "lib"},
		{Project: "demo", Target: "test"},
		{Project: "demo", Target: "compile"},
	} {
		require.NoError(t, store.Put(rec))
	}

	list, err := store.List()
	require.NoError(t, err)
	var names []string
	for _, rec := range list {
		names = append(names, rec.Project+"/"+rec.Target)
	}
	assert.Equal(t, []string{"demo/compile", "demo/test", "shared/lib"}, names)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := journal.NewStore(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrJournalReadFailed))
}

func TestStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	store, err := journal.NewStore(path)
	require.NoError(t, err)
	list, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStore_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("file"), 0o600))

	store, err := journal.NewStore(filepath.Join(blocker, "journal.json"))
	require.NoError(t, err)

	err = store.Put(domain.TargetRecord{Project: "demo", Target: "compile"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrJournalWriteFailed))
}
