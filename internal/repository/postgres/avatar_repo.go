package postgres

import (
	"context"
	"errors"

	"github.com/pinpin/travel-backend/internal/domain"
	"gorm.io/gorm"
)

type avatarRepository struct {
	db *gorm.DB
}

func NewAvatarRepository(db *gorm.DB) *avatarRepository {
	return &avatarRepository{db: db}
}

func (r *avatarRepository) handle(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

func (r *avatarRepository) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.Avatar, error) {
	var avatar domain.Avatar
	err := r.handle(ctx, tx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&avatar).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.WrapStorage("avatar get by id", err)
	}
	return &avatar, nil
}

func (r *avatarRepository) AllDefault(ctx context.Context) ([]domain.Avatar, error) {
	var avatars []domain.Avatar
	err := r.db.WithContext(ctx).
		Where("type = ? AND deleted_at IS NULL", domain.AvatarTypeDefault).
		Find(&avatars).Error
	if err != nil {
		return nil, domain.WrapStorage("avatar list defaults", err)
	}
	return avatars, nil
}

func (r *avatarRepository) ListByAccountID(ctx context.Context, accountID uint) ([]domain.Avatar, error) {
	var avatars []domain.Avatar
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND deleted_at IS NULL", accountID).
		Order("created_at DESC").
		Find(&avatars).Error
	if err != nil {
		return nil, domain.WrapStorage("avatar list by account", err)
	}
	return avatars, nil
}

func (r *avatarRepository) Save(ctx context.Context, tx *gorm.DB, avatar *domain.Avatar) (*domain.Avatar, error) {
	if err := r.handle(ctx, tx).Save(avatar).Error; err != nil {
		return nil, domain.WrapStorage("avatar save", err)
	}
	return avatar, nil
}
