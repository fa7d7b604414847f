package service

import (
	"context"

	"github.com/pinpin/travel-backend/internal/repository"
)

// CategoryService serves the taxonomy reference data the profile form needs.
type CategoryService struct {
	taxonomies repository.TaxonomyRepository
}

func NewCategoryService(taxonomies repository.TaxonomyRepository) *CategoryService {
	return &CategoryService{taxonomies: taxonomies}
}

type CountryView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

func (s *CategoryService) Countries(ctx context.Context) ([]CountryView, error) {
	countries, err := s.taxonomies.AllCountries(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]CountryView, 0, len(countries))
	for _, c := range countries {
		views = append(views, CountryView{ID: c.ID, Name: c.Name, Code: c.Code})
	}
	return views, nil
}
