package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/pinpin/travel-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(raw))
	require.NoError(t, err)
	return resp
}

func TestUserRoutes_RegisterLoginCheck(t *testing.T) {
	ts := testutil.NewTestServer(t)
	testutil.SeedDefaultAvatars(t, ts.DB.DB, 2)

	// Register sets the session cookie and returns the identity fields.
	resp := postJSON(t, ts.APIURL("/user/register"), map[string]string{
		"accountName": "alice",
		"password":    "password123",
		"nickname":    "ali",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var envelope testutil.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, http.StatusCreated, envelope.StatusCode)

	var identity struct {
		Nickname       string `json:"nickname"`
		AvatarPublicID string `json:"avatar_public_id"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &identity))
	assert.Equal(t, "ali", identity.Nickname)
	assert.NotEmpty(t, identity.AvatarPublicID)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == ts.Config.CookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	// Registering the same account name again conflicts.
	resp = postJSON(t, ts.APIURL("/user/register"), map[string]string{
		"accountName": "alice",
		"password":    "otherpassword",
		"nickname":    "imposter",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Wrong password and unknown account both come back 401.
	resp = postJSON(t, ts.APIURL("/user/login"), map[string]string{
		"accountName": "alice",
		"password":    "wrongpassword",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = postJSON(t, ts.APIURL("/user/login"), map[string]string{
		"accountName": "nobody",
		"password":    "password123",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Check succeeds with the cookie and fails without it.
	req := testutil.NewSessionRequest(t, http.MethodGet, ts.APIURL("/user/check"), nil, cookie)
	checkResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	checkResp.Body.Close()
	assert.Equal(t, http.StatusOK, checkResp.StatusCode)

	req = testutil.NewSessionRequest(t, http.MethodGet, ts.APIURL("/user/check"), nil, nil)
	checkResp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	checkResp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, checkResp.StatusCode)
}

func TestSessionGuard_UnauthorizedEnvelope(t *testing.T) {
	ts := testutil.NewTestServer(t)
	testutil.SeedDefaultAvatars(t, ts.DB.DB, 1)

	// Guard rejections carry the same JSON envelope as handler errors.
	resp, err := http.Get(ts.APIURL("/users/profile"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	var body struct {
		StatusCode int    `json:"statusCode"`
		Message    string `json:"message"`
		Error      string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, http.StatusUnauthorized, body.StatusCode)
	assert.Equal(t, "unauthorized", body.Message)
	assert.Equal(t, http.StatusText(http.StatusUnauthorized), body.Error)
}

func TestUserRoutes_Logout(t *testing.T) {
	ts := testutil.NewTestServer(t)
	testutil.SeedDefaultAvatars(t, ts.DB.DB, 1)

	resp, err := http.Get(ts.APIURL("/user/logout"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The response clears the cookie.
	var cleared *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == ts.Config.CookieName {
			cleared = c
		}
	}
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}

func TestUserRoutes_UpdateAccount(t *testing.T) {
	ts := testutil.NewTestServer(t)
	testutil.SeedDefaultAvatars(t, ts.DB.DB, 1)

	_, cookie := testutil.NewAccountBuilder().
		WithAccountName("patcher").
		BuildAndAuthenticate(t, ts)

	req := testutil.NewSessionRequest(t, http.MethodPatch, ts.APIURL("/user/account"),
		map[string]string{"email": "patcher@example.com"}, cookie)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope testutil.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	var view struct {
		AccountName string  `json:"accountName"`
		Email       *string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &view))
	assert.Equal(t, "patcher", view.AccountName)
	require.NotNil(t, view.Email)
	assert.Equal(t, "patcher@example.com", *view.Email)

	// Blank password patches are rejected before they reach storage.
	req = testutil.NewSessionRequest(t, http.MethodPatch, ts.APIURL("/user/account"),
		map[string]string{"password": ""}, cookie)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
