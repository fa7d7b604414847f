package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/pinpin/travel-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRoutes_Countries(t *testing.T) {
	ts := testutil.NewTestServer(t)
	tax := testutil.SeedTaxonomies(t, ts.DB.DB)

	resp, err := http.Get(ts.APIURL("/category/countries"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope testutil.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	var countries []struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &countries))
	require.Len(t, countries, len(tax.Countries))
	assert.Equal(t, tax.Countries[0].ID, countries[0].ID)
	assert.Equal(t, "Taiwan", countries[0].Name)
	assert.Equal(t, "TW", countries[0].Code)
}

func TestCategoryRoutes_Countries_EmptySet(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp, err := http.Get(ts.APIURL("/category/countries"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope testutil.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	var countries []struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &countries))
	assert.Empty(t, countries)
}
