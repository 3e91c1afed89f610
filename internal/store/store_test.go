package store

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_Pragmas(t *testing.T) {
	s := openTestStore(t)

	var timeout int
	require.NoError(t, s.DB().QueryRow("PRAGMA busy_timeout").Scan(&timeout))
	assert.Equal(t, 5000, timeout)

	var sync int
	require.NoError(t, s.DB().QueryRow("PRAGMA synchronous").Scan(&sync))
	assert.Equal(t, 1, sync, "NORMAL")

	var mode string
	require.NoError(t, s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestOpen_MigrateIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "again.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.BestStatsRepo().Save(context.Background(), "easy", BestStats{Streak: 1}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.BestStatsRepo().Load(context.Background(), "easy")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint32(1), got.Streak)
}

func TestBestStats_LoadMissing(t *testing.T) {
	repo := openTestStore(t).BestStatsRepo()

	got, err := repo.Load(context.Background(), "hard")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBestStats_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).BestStatsRepo()

	tests := []struct {
		name  string
		stats BestStats
	}{
		{"typical", BestStats{Streak: 5, Correct: 8, Total: 10, AvgMs: 1000}},
		{"zero", BestStats{}},
		{"max uint32", BestStats{Streak: math.MaxUint32, Correct: math.MaxUint32, Total: math.MaxUint32, AvgMs: math.MaxUint32}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, repo.Save(ctx, "medium", tt.stats))
			got, err := repo.Load(ctx, "medium")
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.stats, *got)
		})
	}
}

func TestBestStats_SaveOverwritesInFull(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).BestStatsRepo()

	require.NoError(t, repo.Save(ctx, "easy", BestStats{Streak: 5, Correct: 8, Total: 10, AvgMs: 1000}))
	require.NoError(t, repo.Save(ctx, "easy", BestStats{Streak: 6, Correct: 3, Total: 10, AvgMs: 5000}))

	got, err := repo.Load(ctx, "easy")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, BestStats{Streak: 6, Correct: 3, Total: 10, AvgMs: 5000}, *got)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestBestStats_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).BestStatsRepo()

	require.NoError(t, repo.Save(ctx, "easy", BestStats{Correct: 10}))
	require.NoError(t, repo.Save(ctx, "hard", BestStats{Correct: 2}))

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]BestStats{
		"easy": {Correct: 10},
		"hard": {Correct: 2},
	}, all)
}

func TestBestStats_Reset(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).BestStatsRepo()

	for _, k := range []string{"easy", "medium", "hard"} {
		require.NoError(t, repo.Save(ctx, k, BestStats{Total: 10}))
	}

	require.NoError(t, repo.Reset(ctx, "medium"))
	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.NotContains(t, all, "medium")

	require.NoError(t, repo.Reset(ctx))
	all, err = repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDefaultDBPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "mathdrill", "mathdrill.db"), p)
	assert.DirExists(t, filepath.Join(dir, "mathdrill"))
}
