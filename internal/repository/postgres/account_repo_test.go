package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/pinpin/travel-backend/internal/repository/postgres"
	"github.com/pinpin/travel-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_GetByAccountName(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewAccountRepository(testDB.DB)
	ctx := context.Background()

	account, _ := testutil.NewAccountBuilder().
		WithAccountName("lookup").
		Build(t, testDB.DB)

	t.Run("existing account", func(t *testing.T) {
		got, err := repo.GetByAccountName(ctx, nil, "lookup")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, account.ID, got.ID)
	})

	t.Run("missing account returns nil without error", func(t *testing.T) {
		got, err := repo.GetByAccountName(ctx, nil, "nosuch")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("soft-deleted account is invisible", func(t *testing.T) {
		now := time.Now()
		require.NoError(t, testDB.DB.Model(account).Update("deleted_at", &now).Error)

		got, err := repo.GetByAccountName(ctx, nil, "lookup")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestAccountRepository_GetByIDWithProfileAndAvatar(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewAccountRepository(testDB.DB)
	ctx := context.Background()

	defaults := testutil.SeedDefaultAvatars(t, testDB.DB, 1)
	account, _ := testutil.NewAccountBuilder().
		WithNickname("loaded").
		WithAvatar(&defaults[0]).
		Build(t, testDB.DB)

	got, err := repo.GetByIDWithProfileAndAvatar(ctx, nil, account.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.Profile)
	assert.Equal(t, "loaded", got.Profile.Nickname)
	assert.Equal(t, defaults[0].PublicID, got.Profile.Avatar.PublicID)

	got, err = repo.GetByIDWithProfileAndAvatar(ctx, nil, 99999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAccountRepository_Save_UpdatesExisting(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewAccountRepository(testDB.DB)
	ctx := context.Background()

	account, _ := testutil.NewAccountBuilder().Build(t, testDB.DB)

	email := "saved@example.com"
	account.Email = &email
	saved, err := repo.Save(ctx, nil, account)
	require.NoError(t, err)
	assert.Equal(t, account.ID, saved.ID)

	reloaded, err := repo.GetByID(ctx, nil, account.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.Email)
	assert.Equal(t, email, *reloaded.Email)
}
