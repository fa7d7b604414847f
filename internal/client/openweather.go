package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// OpenWeatherClient fetches current weather conditions by coordinates.
type OpenWeatherClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewOpenWeatherClient(baseURL, apiKey string) *OpenWeatherClient {
	return &OpenWeatherClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type CurrentWeather struct {
	City        string  `json:"city"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Temp        float64 `json:"temp"`
	FeelsLike   float64 `json:"feelsLike"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
}

func (c *OpenWeatherClient) CurrentWeather(ctx context.Context, lat, lon float64) (*CurrentWeather, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather request failed with status %d", resp.StatusCode)
	}

	var raw struct {
		Name    string `json:"name"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  int     `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	weather := &CurrentWeather{
		City:      raw.Name,
		Temp:      raw.Main.Temp,
		FeelsLike: raw.Main.FeelsLike,
		Humidity:  raw.Main.Humidity,
		WindSpeed: raw.Wind.Speed,
	}
	if len(raw.Weather) > 0 {
		weather.Description = raw.Weather[0].Description
		weather.Icon = raw.Weather[0].Icon
	}
	return weather, nil
}
