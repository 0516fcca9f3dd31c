package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crescoflow/crescoflow-core/internal/entity"
)

func TestConfigRepository_PutAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewConfigRepository(db)
	ctx := context.Background()

	cfg := entity.NewDefaultConfig("user@crescoflow.be")
	cfg.Username = "Jan"
	cfg.CRMAPIKey = "sleutel-123"

	require.NoError(t, repo.Put(ctx, cfg))

	got, err := repo.Get(ctx, "user@crescoflow.be")
	require.NoError(t, err)
	assert.Equal(t, "Jan", got.Username)
	assert.Equal(t, "sleutel-123", got.CRMAPIKey)
}

func TestConfigRepository_CachedReadReturnsCopy(t *testing.T) {
	db := openTestDB(t)
	repo := NewConfigRepository(db)
	ctx := context.Background()

	cfg := entity.NewDefaultConfig("user@crescoflow.be")
	require.NoError(t, repo.Put(ctx, cfg))

	first, err := repo.Get(ctx, "user@crescoflow.be")
	require.NoError(t, err)
	first.Username = "gewijzigd"

	second, err := repo.Get(ctx, "user@crescoflow.be")
	require.NoError(t, err)
	assert.NotEqual(t, "gewijzigd", second.Username)
}

func TestConfigRepository_PutRefreshesCache(t *testing.T) {
	db := openTestDB(t)
	repo := NewConfigRepository(db)
	ctx := context.Background()

	cfg := entity.NewDefaultConfig("user@crescoflow.be")
	require.NoError(t, repo.Put(ctx, cfg))
	_, err := repo.Get(ctx, "user@crescoflow.be")
	require.NoError(t, err)

	cfg.Username = "Piet"
	require.NoError(t, repo.Put(ctx, cfg))

	got, err := repo.Get(ctx, "user@crescoflow.be")
	require.NoError(t, err)
	assert.Equal(t, "Piet", got.Username)
}

func TestConfigRepository_GetAllSpansAccounts(t *testing.T) {
	db := openTestDB(t)
	repo := NewConfigRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, entity.NewDefaultConfig("alice@crescoflow.be")))
	require.NoError(t, repo.Put(ctx, entity.NewDefaultConfig("bob@crescoflow.be")))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestConfigRepository_RejectsMissingEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewConfigRepository(db)

	err := repo.Put(context.Background(), &entity.UserConfig{Username: "anoniem"})
	assert.ErrorIs(t, err, entity.ErrMalformedRecord)
}
