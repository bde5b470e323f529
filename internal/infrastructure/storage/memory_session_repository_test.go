package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"facemask/internal/domain/entity"
)

func TestMemorySessionRepository_GetCreatesSession(t *testing.T) {
	repo := NewMemorySessionRepository()
	ctx := context.Background()

	s, err := repo.Get(ctx, 42)
	require.NoError(t, err)
	require.Equal(t, int64(42), s.ChatID)
	require.Equal(t, entity.StateIdle, s.State)
}

func TestMemorySessionRepository_SaveAndDelete(t *testing.T) {
	repo := NewMemorySessionRepository()
	ctx := context.Background()

	s, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	s.MoveTo(3)

	// Изменения не видны до Save
	stored, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 0, stored.Cursor)

	require.NoError(t, repo.Save(ctx, s))
	stored, err = repo.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 3, stored.Cursor)
	require.Equal(t, entity.StateBrowsing, stored.State)

	require.NoError(t, repo.Delete(ctx, 1))
	stored, err = repo.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, entity.StateIdle, stored.State)
}
