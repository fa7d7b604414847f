package testutil

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/pinpin/travel-backend/internal/client"
)

// MemoryImageStore is an in-memory stand-in for the avatar image storage.
type MemoryImageStore struct {
	mu      sync.Mutex
	counter int
	Objects map[string][]byte
}

func NewMemoryImageStore() *MemoryImageStore {
	return &MemoryImageStore{Objects: make(map[string][]byte)}
}

func (s *MemoryImageStore) Put(ctx context.Context, data io.Reader, size int64, contentType string) (string, error) {
	raw, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter++
	key := fmt.Sprintf("avatars/test-%d", s.counter)
	s.Objects[key] = raw
	return key, nil
}

// StubPlaceSearcher returns canned place results.
type StubPlaceSearcher struct{}

func (s *StubPlaceSearcher) TextSearch(ctx context.Context, query, pageToken string, pageSize int) (*client.PlaceSearchResult, error) {
	return &client.PlaceSearchResult{
		Places: []client.Place{{ID: "stub-place", DisplayName: query}},
	}, nil
}

func (s *StubPlaceSearcher) Autocomplete(ctx context.Context, input, sessionToken string) ([]client.PlaceSuggestion, error) {
	return []client.PlaceSuggestion{{PlaceID: "stub-place", Text: input}}, nil
}

// StubWeatherProvider returns canned current conditions.
type StubWeatherProvider struct{}

func (s *StubWeatherProvider) CurrentWeather(ctx context.Context, lat, lon float64) (*client.CurrentWeather, error) {
	return &client.CurrentWeather{
		City:        "Testville",
		Description: "clear sky",
		Temp:        21.5,
	}, nil
}
