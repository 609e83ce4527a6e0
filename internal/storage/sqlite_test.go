package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_SaveAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a := &RepoAnalysis{
		RepoURL:         "https://github.com/user/repo",
		Modules:         `{"api":"HTTP layer"}`,
		Architecture:    "layered",
		TechnicalDebt:   "- no tests",
		OnboardingGuide: "run make",
	}
	require.NoError(t, store.SaveAnalysis(ctx, a))

	got, err := store.GetAnalysis(ctx, a.RepoURL)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, a.RepoURL, got.RepoURL)
	assert.Equal(t, a.Modules, got.Modules)
	assert.Equal(t, a.Architecture, got.Architecture)
	assert.NotZero(t, got.ID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestSQLiteStore_UpsertByURL(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	url := "https://github.com/user/repo"
	require.NoError(t, store.SaveAnalysis(ctx, &RepoAnalysis{RepoURL: url, Architecture: "v1"}))
	require.NoError(t, store.SaveAnalysis(ctx, &RepoAnalysis{RepoURL: url, Architecture: "v2"}))

	got, err := store.GetAnalysis(ctx, url)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "v2", got.Architecture)

	// Still a single row.
	var count int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM repo_analysis").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	store := newTestStore(t)

	got, err := store.GetAnalysis(context.Background(), "https://github.com/none/none")
	require.NoError(t, err)
	assert.Nil(t, got)
}
