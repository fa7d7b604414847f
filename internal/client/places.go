package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// PlacesClient talks to the Google Places REST API. Only the fields this
// backend consumes are decoded; the provider's protocol stays behind this
// boundary.
type PlacesClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewPlacesClient(baseURL, apiKey string) *PlacesClient {
	return &PlacesClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type Place struct {
	ID              string  `json:"id"`
	DisplayName     string  `json:"displayName"`
	PrimaryType     string  `json:"primaryType,omitempty"`
	Address         string  `json:"address,omitempty"`
	Rating          float64 `json:"rating,omitempty"`
	UserRatingCount int     `json:"userRatingCount,omitempty"`
	PriceLevel      string  `json:"priceLevel,omitempty"`
}

type PlaceSearchResult struct {
	Places        []Place `json:"places"`
	NextPageToken string  `json:"nextPageToken,omitempty"`
}

type PlaceSuggestion struct {
	PlaceID string `json:"placeId"`
	Text    string `json:"text"`
}

const placesFieldMask = "places.id,places.displayName,places.primaryType," +
	"places.shortFormattedAddress,places.rating,places.userRatingCount,places.priceLevel,nextPageToken"

// TextSearch runs a free-text place query.
func (c *PlacesClient) TextSearch(ctx context.Context, query, pageToken string, pageSize int) (*PlaceSearchResult, error) {
	body := map[string]interface{}{
		"textQuery":    query,
		"languageCode": "zh-TW",
	}
	if pageToken != "" {
		body["pageToken"] = pageToken
	}
	if pageSize > 0 {
		body["pageSize"] = pageSize
	}

	var raw struct {
		Places []struct {
			ID          string `json:"id"`
			DisplayName struct {
				Text string `json:"text"`
			} `json:"displayName"`
			PrimaryType           string  `json:"primaryType"`
			ShortFormattedAddress string  `json:"shortFormattedAddress"`
			Rating                float64 `json:"rating"`
			UserRatingCount       int     `json:"userRatingCount"`
			PriceLevel            string  `json:"priceLevel"`
		} `json:"places"`
		NextPageToken string `json:"nextPageToken"`
	}
	if err := c.post(ctx, "/places:searchText", placesFieldMask, body, &raw); err != nil {
		return nil, err
	}

	result := &PlaceSearchResult{NextPageToken: raw.NextPageToken}
	for _, p := range raw.Places {
		result.Places = append(result.Places, Place{
			ID:              p.ID,
			DisplayName:     p.DisplayName.Text,
			PrimaryType:     p.PrimaryType,
			Address:         p.ShortFormattedAddress,
			Rating:          p.Rating,
			UserRatingCount: p.UserRatingCount,
			PriceLevel:      p.PriceLevel,
		})
	}
	return result, nil
}

// Autocomplete suggests places for a partial query. The session token groups
// keystrokes into one billing session.
func (c *PlacesClient) Autocomplete(ctx context.Context, input, sessionToken string) ([]PlaceSuggestion, error) {
	body := map[string]interface{}{
		"input":        input,
		"languageCode": "zh-TW",
	}
	if sessionToken != "" {
		body["sessionToken"] = sessionToken
	}

	var raw struct {
		Suggestions []struct {
			PlacePrediction struct {
				PlaceID string `json:"placeId"`
				Text    struct {
					Text string `json:"text"`
				} `json:"text"`
			} `json:"placePrediction"`
		} `json:"suggestions"`
	}
	if err := c.post(ctx, "/places:autocomplete", "", body, &raw); err != nil {
		return nil, err
	}

	suggestions := make([]PlaceSuggestion, 0, len(raw.Suggestions))
	for _, s := range raw.Suggestions {
		suggestions = append(suggestions, PlaceSuggestion{
			PlaceID: s.PlacePrediction.PlaceID,
			Text:    s.PlacePrediction.Text.Text,
		})
	}
	return suggestions, nil
}

func (c *PlacesClient) post(ctx context.Context, path, fieldMask string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	if fieldMask != "" {
		req.Header.Set("X-Goog-FieldMask", fieldMask)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("places request failed with status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
