package postgres

import (
	"context"

	"github.com/pinpin/travel-backend/internal/domain"
	"gorm.io/gorm"
)

type avatarHistoryRepository struct {
	db *gorm.DB
}

func NewAvatarHistoryRepository(db *gorm.DB) *avatarHistoryRepository {
	return &avatarHistoryRepository{db: db}
}

func (r *avatarHistoryRepository) handle(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

func (r *avatarHistoryRepository) Append(ctx context.Context, tx *gorm.DB, entry *domain.AvatarChangeHistory) (*domain.AvatarChangeHistory, error) {
	if err := r.handle(ctx, tx).Create(entry).Error; err != nil {
		return nil, domain.WrapStorage("avatar history append", err)
	}
	return entry, nil
}

// LatestPerAvatar deduplicates the append-only log: re-assigning an avatar a
// profile already held produces a new row, but the timeline only shows the
// newest row per distinct avatar. A correlated subquery keeps the row with
// the maximum change date per (profile, avatar) pair.
func (r *avatarHistoryRepository) LatestPerAvatar(ctx context.Context, profileID uint) ([]domain.AvatarChangeHistory, error) {
	var entries []domain.AvatarChangeHistory
	err := r.db.WithContext(ctx).
		Preload("Avatar").
		Where("profile_id = ?", profileID).
		Where(`change_date = (
			SELECT MAX(h2.change_date)
			FROM avatar_change_histories h2
			WHERE h2.profile_id = avatar_change_histories.profile_id
			AND h2.avatar_id = avatar_change_histories.avatar_id
		)`).
		Order("change_date DESC").
		Find(&entries).Error
	if err != nil {
		return nil, domain.WrapStorage("avatar history latest per avatar", err)
	}
	return entries, nil
}
