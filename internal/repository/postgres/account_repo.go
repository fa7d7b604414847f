package postgres

import (
	"context"
	"errors"

	"github.com/pinpin/travel-backend/internal/domain"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *accountRepository {
	return &accountRepository{db: db}
}

// handle picks the transaction when one is supplied, the repository's own
// connection otherwise.
func (r *accountRepository) handle(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

func (r *accountRepository) GetByAccountName(ctx context.Context, tx *gorm.DB, accountName string) (*domain.Account, error) {
	var account domain.Account
	err := r.handle(ctx, tx).
		Where("account_name = ? AND deleted_at IS NULL", accountName).
		First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.WrapStorage("account get by name", err)
	}
	return &account, nil
}

func (r *accountRepository) GetByAccountNameWithProfile(ctx context.Context, tx *gorm.DB, accountName string) (*domain.Account, error) {
	var account domain.Account
	err := r.handle(ctx, tx).
		Preload("Profile", "deleted_at IS NULL").
		Preload("Profile.Avatar", "deleted_at IS NULL").
		Where("account_name = ? AND deleted_at IS NULL", accountName).
		First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.WrapStorage("account get by name with profile", err)
	}
	return &account, nil
}

func (r *accountRepository) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.Account, error) {
	var account domain.Account
	err := r.handle(ctx, tx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.WrapStorage("account get by id", err)
	}
	return &account, nil
}

func (r *accountRepository) GetByIDWithProfileAndAvatar(ctx context.Context, tx *gorm.DB, id uint) (*domain.Account, error) {
	var account domain.Account
	err := r.handle(ctx, tx).
		Preload("Profile", "deleted_at IS NULL").
		Preload("Profile.Avatar", "deleted_at IS NULL").
		Where("id = ? AND deleted_at IS NULL", id).
		First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.WrapStorage("account get by id with profile", err)
	}
	return &account, nil
}

func (r *accountRepository) Save(ctx context.Context, tx *gorm.DB, account *domain.Account) (*domain.Account, error) {
	if err := r.handle(ctx, tx).Save(account).Error; err != nil {
		return nil, domain.WrapStorage("account save", err)
	}
	return account, nil
}
