package postgres

import (
	"context"

	"github.com/pinpin/travel-backend/internal/domain"
	"gorm.io/gorm"
)

type taxonomyRepository struct {
	db *gorm.DB
}

func NewTaxonomyRepository(db *gorm.DB) *taxonomyRepository {
	return &taxonomyRepository{db: db}
}

func (r *taxonomyRepository) AllCountries(ctx context.Context) ([]domain.Country, error) {
	var countries []domain.Country
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&countries).Error
	if err != nil {
		return nil, domain.WrapStorage("country list", err)
	}
	return countries, nil
}
