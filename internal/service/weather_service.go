package service

import (
	"context"

	"github.com/pinpin/travel-backend/internal/client"
	"github.com/pinpin/travel-backend/internal/logger"
	"go.uber.org/zap"
)

// WeatherProvider is the outbound boundary to the weather provider.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, lat, lon float64) (*client.CurrentWeather, error)
}

// WeatherCache stores recent lookups. A nil cache disables caching.
type WeatherCache interface {
	Get(ctx context.Context, lat, lon float64) (*client.CurrentWeather, error)
	Set(ctx context.Context, lat, lon float64, weather *client.CurrentWeather) error
}

type WeatherService struct {
	provider WeatherProvider
	cache    WeatherCache
}

func NewWeatherService(provider WeatherProvider, cache WeatherCache) *WeatherService {
	return &WeatherService{provider: provider, cache: cache}
}

// CurrentWeather serves from cache when possible. Cache failures are logged
// and fall through to the provider; they never fail the request.
func (s *WeatherService) CurrentWeather(ctx context.Context, lat, lon float64) (*client.CurrentWeather, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, lat, lon)
		if err != nil {
			logger.Warn("weather cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	weather, err := s.provider.CurrentWeather(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, lat, lon, weather); err != nil {
			logger.Warn("weather cache write failed", zap.Error(err))
		}
	}
	return weather, nil
}
