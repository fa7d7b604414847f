package postgres

import (
	"context"
	"errors"

	"github.com/pinpin/travel-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *profileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) handle(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

func (r *profileRepository) GetByAccountIDWithAll(ctx context.Context, tx *gorm.DB, accountID uint) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.handle(ctx, tx).
		Preload("Avatar", "deleted_at IS NULL").
		Preload("OriginCountry").
		Preload("VisitedCountries").
		Preload("Languages").
		Preload("Currencies").
		Preload("TravelInterests").
		Preload("TravelStyles").
		Preload("Account", "deleted_at IS NULL").
		Where("account_id = ? AND deleted_at IS NULL", accountID).
		First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.WrapStorage("profile get by account id", err)
	}
	return &profile, nil
}

// Save writes the profile's scalar columns and then replaces each taxonomy
// association with the set carried on the entity. Relation entries only need
// their ids. The `<relation>.*` omit keeps gorm from upserting the taxonomy
// rows themselves: only join rows are written, so an unknown id fails the
// foreign key instead of planting an empty-named taxonomy row. An empty or
// nil set clears the relation.
func (r *profileRepository) Save(ctx context.Context, tx *gorm.DB, profile *domain.Profile) (*domain.Profile, error) {
	h := r.handle(ctx, tx)

	if err := h.Omit(clause.Associations).Save(profile).Error; err != nil {
		return nil, domain.WrapStorage("profile save", err)
	}

	if err := h.Model(profile).Omit("VisitedCountries.*").Association("VisitedCountries").Replace(&profile.VisitedCountries); err != nil {
		return nil, domain.WrapStorage("profile replace visited countries", err)
	}
	if err := h.Model(profile).Omit("Languages.*").Association("Languages").Replace(&profile.Languages); err != nil {
		return nil, domain.WrapStorage("profile replace languages", err)
	}
	if err := h.Model(profile).Omit("Currencies.*").Association("Currencies").Replace(&profile.Currencies); err != nil {
		return nil, domain.WrapStorage("profile replace currencies", err)
	}
	if err := h.Model(profile).Omit("TravelInterests.*").Association("TravelInterests").Replace(&profile.TravelInterests); err != nil {
		return nil, domain.WrapStorage("profile replace travel interests", err)
	}
	if err := h.Model(profile).Omit("TravelStyles.*").Association("TravelStyles").Replace(&profile.TravelStyles); err != nil {
		return nil, domain.WrapStorage("profile replace travel styles", err)
	}

	return profile, nil
}
