package repository

import (
	"context"

	"github.com/pinpin/travel-backend/internal/domain"
	"gorm.io/gorm"
)

// Every store method takes an optional transaction handle. A nil tx runs the
// statement on the store's own connection in autocommit mode; a non-nil tx
// joins the surrounding transaction. Lookups return (nil, nil) when no row
// matches; only driver failures produce an error, wrapped as
// domain.StorageError.

// Transactor runs a function inside one database transaction. Any error
// returned by fn rolls the whole transaction back.
type Transactor interface {
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type AccountRepository interface {
	GetByAccountName(ctx context.Context, tx *gorm.DB, accountName string) (*domain.Account, error)
	GetByAccountNameWithProfile(ctx context.Context, tx *gorm.DB, accountName string) (*domain.Account, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.Account, error)
	GetByIDWithProfileAndAvatar(ctx context.Context, tx *gorm.DB, id uint) (*domain.Account, error)
	// Save persists the account (cascading an unsaved profile and its pending
	// avatar history) and returns the post-write entity so generated ids are
	// visible to the caller.
	Save(ctx context.Context, tx *gorm.DB, account *domain.Account) (*domain.Account, error)
}

type ProfileRepository interface {
	// GetByAccountIDWithAll inflates the avatar, the origin country, the five
	// many-to-many taxonomy sets and the owning account in one query.
	GetByAccountIDWithAll(ctx context.Context, tx *gorm.DB, accountID uint) (*domain.Profile, error)
	// Save overwrites the profile's scalar columns and replaces every
	// taxonomy association with the sets carried on the entity.
	Save(ctx context.Context, tx *gorm.DB, profile *domain.Profile) (*domain.Profile, error)
}

type AvatarRepository interface {
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.Avatar, error)
	AllDefault(ctx context.Context) ([]domain.Avatar, error)
	ListByAccountID(ctx context.Context, accountID uint) ([]domain.Avatar, error)
	Save(ctx context.Context, tx *gorm.DB, avatar *domain.Avatar) (*domain.Avatar, error)
}

type TaxonomyRepository interface {
	// AllCountries lists the full country reference set for the profile form.
	AllCountries(ctx context.Context) ([]domain.Country, error)
}

type AvatarHistoryRepository interface {
	Append(ctx context.Context, tx *gorm.DB, entry *domain.AvatarChangeHistory) (*domain.AvatarChangeHistory, error)
	// LatestPerAvatar returns, for each distinct avatar ever assigned to the
	// profile, only the row with the maximum change date for that
	// (profile, avatar) pair, ordered newest-first, avatars inflated.
	LatestPerAvatar(ctx context.Context, profileID uint) ([]domain.AvatarChangeHistory, error)
}

type Repositories struct {
	Transactor    Transactor
	Account       AccountRepository
	Profile       ProfileRepository
	Avatar        AvatarRepository
	AvatarHistory AvatarHistoryRepository
	Taxonomy      TaxonomyRepository
}
