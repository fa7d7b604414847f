package handlers

import (
	"net/http"
	"strconv"

	"github.com/pinpin/travel-backend/internal/service"
)

// WeatherHandler serves current conditions for a coordinate pair.
type WeatherHandler struct {
	weather *service.WeatherService
}

func NewWeatherHandler(weather *service.WeatherService) *WeatherHandler {
	return &WeatherHandler{weather: weather}
}

func (h *WeatherHandler) Current(w http.ResponseWriter, r *http.Request) {
	lat, err := parseCoord(r.URL.Query().Get("lat"), 90)
	if err != nil {
		writeError(w, http.StatusBadRequest, "lat must be a number between -90 and 90")
		return
	}
	lon, err := parseCoord(r.URL.Query().Get("lon"), 180)
	if err != nil {
		writeError(w, http.StatusBadRequest, "lon must be a number between -180 and 180")
		return
	}

	weather, err := h.weather.CurrentWeather(r.Context(), lat, lon)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, "weather fetched", weather)
}

func parseCoord(raw string, bound float64) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if value < -bound || value > bound {
		return 0, strconv.ErrRange
	}
	return value, nil
}
