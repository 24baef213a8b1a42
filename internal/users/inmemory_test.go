package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository_CreateAndLookups(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &User{ID: "u-1", Name: "Ann", Email: "ann@x.com", PasswordHash: "h"})
	require.NoError(t, err)
	require.Equal(t, "u-1", created.ID)

	byEmail, err := repo.GetByEmail(ctx, "ann@x.com")
	require.NoError(t, err)
	require.Equal(t, "u-1", byEmail.ID)

	byID, err := repo.GetByID(ctx, "u-1")
	require.NoError(t, err)
	require.Equal(t, "ann@x.com", byID.Email)

	_, err = repo.GetByEmail(ctx, "nobody@x.com")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = repo.GetByID(ctx, "u-404")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryRepository_FirstEmailMatchWins(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	// Email uniqueness is not enforced at the data-model level.
	_, err := repo.Create(ctx, &User{ID: "u-1", Email: "dup@x.com"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &User{ID: "u-2", Email: "dup@x.com"})
	require.NoError(t, err)

	got, err := repo.GetByEmail(ctx, "dup@x.com")
	require.NoError(t, err)
	require.Equal(t, "u-1", got.ID)
}

func TestInMemoryRepository_TokenHash(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, &User{ID: "u-1", Email: "ann@x.com"})
	require.NoError(t, err)

	updated, err := repo.SetTokenHash(ctx, "u-1", "digest-1")
	require.NoError(t, err)
	require.Equal(t, "digest-1", updated.TokenHash)

	found, err := repo.GetByTokenHash(ctx, "digest-1")
	require.NoError(t, err)
	require.Equal(t, "u-1", found.ID)

	// An empty hash never matches, even after logout leaves the column empty.
	_, err = repo.SetTokenHash(ctx, "u-1", "")
	require.NoError(t, err)
	_, err = repo.GetByTokenHash(ctx, "")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = repo.SetTokenHash(ctx, "u-404", "digest-2")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryRepository_EnsureByEmail(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	first, err := repo.EnsureByEmail(ctx, &User{ID: "u-1", Email: "ann@x.com", PasswordHash: "h1"})
	require.NoError(t, err)
	require.Equal(t, "u-1", first.ID)

	// Second call returns the existing row; the candidate is discarded.
	second, err := repo.EnsureByEmail(ctx, &User{ID: "u-2", Email: "ann@x.com", PasswordHash: "h2"})
	require.NoError(t, err)
	require.Equal(t, "u-1", second.ID)
	require.Equal(t, "h1", second.PasswordHash)
}

func TestInMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &User{ID: "u-1", Email: "ann@x.com"})
	require.NoError(t, err)

	created.Email = "mutated@x.com"

	stored, err := repo.GetByID(ctx, "u-1")
	require.NoError(t, err)
	if stored.Email != "ann@x.com" {
		t.Fatalf("mutating a returned row leaked into the store: %+v", stored)
	}
	_, err = repo.GetByEmail(ctx, "mutated@x.com")
	require.ErrorIs(t, err, ErrNotFound)
}
