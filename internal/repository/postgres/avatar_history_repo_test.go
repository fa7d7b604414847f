package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/pinpin/travel-backend/internal/domain"
	"github.com/pinpin/travel-backend/internal/repository/postgres"
	"github.com/pinpin/travel-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvatarHistoryRepository_LatestPerAvatar(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewAvatarHistoryRepository(testDB.DB)
	ctx := context.Background()

	defaults := testutil.SeedDefaultAvatars(t, testDB.DB, 3)
	account, _ := testutil.NewAccountBuilder().
		WithAvatar(&defaults[0]).
		Build(t, testDB.DB)
	profileID := account.Profile.ID

	// The builder already wrote the initial row for defaults[0]. Append
	// B, then A again, then C, with strictly increasing timestamps.
	base := time.Now()
	for i, avatarID := range []uint{defaults[1].ID, defaults[0].ID, defaults[2].ID} {
		_, err := repo.Append(ctx, nil, &domain.AvatarChangeHistory{
			ProfileID:  profileID,
			AvatarID:   avatarID,
			ChangeDate: base.Add(time.Duration(i+1) * time.Second),
		})
		require.NoError(t, err)
	}

	entries, err := repo.LatestPerAvatar(ctx, profileID)
	require.NoError(t, err)

	// Four rows collapse to one per distinct avatar, newest first.
	require.Len(t, entries, 3)
	assert.Equal(t, defaults[2].ID, entries[0].AvatarID)
	assert.Equal(t, defaults[0].ID, entries[1].AvatarID)
	assert.Equal(t, defaults[1].ID, entries[2].AvatarID)

	for _, entry := range entries {
		require.NotNil(t, entry.Avatar)
		assert.NotEmpty(t, entry.Avatar.PublicID)
	}
}

func TestAvatarHistoryRepository_LatestPerAvatar_ScopedToProfile(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewAvatarHistoryRepository(testDB.DB)
	ctx := context.Background()

	defaults := testutil.SeedDefaultAvatars(t, testDB.DB, 2)
	first, _ := testutil.NewAccountBuilder().WithAvatar(&defaults[0]).Build(t, testDB.DB)
	second, _ := testutil.NewAccountBuilder().WithAvatar(&defaults[1]).Build(t, testDB.DB)

	entries, err := repo.LatestPerAvatar(ctx, first.Profile.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, defaults[0].ID, entries[0].AvatarID)

	entries, err = repo.LatestPerAvatar(ctx, second.Profile.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, defaults[1].ID, entries[0].AvatarID)
}
