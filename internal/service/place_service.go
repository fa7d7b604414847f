package service

import (
	"context"

	"github.com/pinpin/travel-backend/internal/client"
)

// PlaceSearcher is the outbound boundary to the place-search provider.
type PlaceSearcher interface {
	TextSearch(ctx context.Context, query, pageToken string, pageSize int) (*client.PlaceSearchResult, error)
	Autocomplete(ctx context.Context, input, sessionToken string) ([]client.PlaceSuggestion, error)
}

type PlaceService struct {
	searcher PlaceSearcher
}

func NewPlaceService(searcher PlaceSearcher) *PlaceService {
	return &PlaceService{searcher: searcher}
}

func (s *PlaceService) TextSearch(ctx context.Context, query, pageToken string, pageSize int) (*client.PlaceSearchResult, error) {
	return s.searcher.TextSearch(ctx, query, pageToken, pageSize)
}

func (s *PlaceService) Autocomplete(ctx context.Context, input, sessionToken string) ([]client.PlaceSuggestion, error) {
	return s.searcher.Autocomplete(ctx, input, sessionToken)
}
