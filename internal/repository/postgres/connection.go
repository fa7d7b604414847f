package postgres

import (
	"context"

	"github.com/pinpin/travel-backend/internal/domain"
	"github.com/pinpin/travel-backend/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Country{},
		&domain.Language{},
		&domain.Currency{},
		&domain.TravelInterest{},
		&domain.TravelStyle{},
		&domain.Avatar{},
		&domain.Account{},
		&domain.Profile{},
		&domain.AvatarChangeHistory{},
	)
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Transactor:    NewTransactor(db),
		Account:       NewAccountRepository(db),
		Profile:       NewProfileRepository(db),
		Avatar:        NewAvatarRepository(db),
		AvatarHistory: NewAvatarHistoryRepository(db),
		Taxonomy:      NewTaxonomyRepository(db),
	}
}

type transactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) *transactor {
	return &transactor{db: db}
}

func (t *transactor) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return t.db.WithContext(ctx).Transaction(fn)
}
