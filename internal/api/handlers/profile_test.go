package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/pinpin/travel-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRoutes_UpdateAndRead(t *testing.T) {
	ts := testutil.NewTestServer(t)
	testutil.SeedDefaultAvatars(t, ts.DB.DB, 1)
	tax := testutil.SeedTaxonomies(t, ts.DB.DB)

	_, cookie := testutil.NewAccountBuilder().
		WithNickname("roamer").
		BuildAndAuthenticate(t, ts)

	update := map[string]interface{}{
		"nickname":         "wanderer",
		"motto":            "keep moving",
		"originCountry":    tax.Countries[0].ID,
		"visitedCountries": []uint{tax.Countries[1].ID},
		"languages":        []uint{tax.Languages[0].ID, tax.Languages[1].ID},
	}
	req := testutil.NewSessionRequest(t, http.MethodPost, ts.APIURL("/users/updateUserProfile"), update, cookie)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req = testutil.NewSessionRequest(t, http.MethodGet, ts.APIURL("/users/profile"), nil, cookie)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope testutil.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	var view struct {
		Nickname         string  `json:"nickname"`
		Motto            *string `json:"motto"`
		OriginCountry    *uint   `json:"originCountry"`
		VisitedCountries []uint  `json:"visitedCountries"`
		Languages        []uint  `json:"languages"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &view))
	assert.Equal(t, "wanderer", view.Nickname)
	require.NotNil(t, view.Motto)
	assert.Equal(t, "keep moving", *view.Motto)
	require.NotNil(t, view.OriginCountry)
	assert.Equal(t, tax.Countries[0].ID, *view.OriginCountry)
	assert.ElementsMatch(t, []uint{tax.Countries[1].ID}, view.VisitedCountries)
	assert.ElementsMatch(t, []uint{tax.Languages[0].ID, tax.Languages[1].ID}, view.Languages)
}

func TestProfileRoutes_MissingNickname(t *testing.T) {
	ts := testutil.NewTestServer(t)
	testutil.SeedDefaultAvatars(t, ts.DB.DB, 1)

	_, cookie := testutil.NewAccountBuilder().BuildAndAuthenticate(t, ts)

	req := testutil.NewSessionRequest(t, http.MethodPost, ts.APIURL("/users/updateUserProfile"),
		map[string]interface{}{"motto": "no name"}, cookie)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProfileRoutes_UpdateAvatarAndHistory(t *testing.T) {
	ts := testutil.NewTestServer(t)
	testutil.SeedDefaultAvatars(t, ts.DB.DB, 1)

	_, cookie := testutil.NewAccountBuilder().BuildAndAuthenticate(t, ts)

	// Seeded after registration, so the account cannot already hold it.
	target := testutil.SeedDefaultAvatars(t, ts.DB.DB, 1)[0]

	// Swap to the new avatar through the query-parameter form.
	url := fmt.Sprintf("%s?avatarId=%d", ts.APIURL("/users/updateAvatar"), target.ID)
	req := testutil.NewSessionRequest(t, http.MethodPost, url, nil, cookie)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Unknown avatar ids come back 404.
	req = testutil.NewSessionRequest(t, http.MethodPost, ts.APIURL("/users/updateAvatar"),
		map[string]int{"avatarId": 99999}, cookie)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// The timeline shows the swap on top of the registration assignment.
	req = testutil.NewSessionRequest(t, http.MethodGet, ts.APIURL("/users/avatarHistory"), nil, cookie)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope testutil.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	var entries []struct {
		AvatarID uint `json:"avatarId"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, target.ID, entries[0].AvatarID)
}
