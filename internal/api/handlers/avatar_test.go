package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"github.com/pinpin/travel-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadRequest(t *testing.T, url string, field, contentType string, payload []byte, cookie *http.Cookie) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="avatar.png"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return req
}

func TestAvatarRoutes_UploadAndMine(t *testing.T) {
	ts := testutil.NewTestServer(t)
	testutil.SeedDefaultAvatars(t, ts.DB.DB, 1)

	_, cookie := testutil.NewAccountBuilder().BuildAndAuthenticate(t, ts)

	req := uploadRequest(t, ts.APIURL("/avatar/upload"), "file", "image/png", []byte("fake-png-bytes"), cookie)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var envelope testutil.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	var uploaded struct {
		ID       uint   `json:"id"`
		PublicID string `json:"publicId"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &uploaded))
	assert.NotZero(t, uploaded.ID)
	assert.NotEmpty(t, uploaded.PublicID)

	// The upload shows under the account's own avatars.
	mineReq := testutil.NewSessionRequest(t, http.MethodGet, ts.APIURL("/avatar/mine"), nil, cookie)
	mineResp, err := http.DefaultClient.Do(mineReq)
	require.NoError(t, err)
	defer mineResp.Body.Close()
	require.Equal(t, http.StatusOK, mineResp.StatusCode)

	require.NoError(t, json.NewDecoder(mineResp.Body).Decode(&envelope))
	var mine []struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &mine))
	require.Len(t, mine, 1)
	assert.Equal(t, uploaded.ID, mine[0].ID)
}

func TestAvatarRoutes_UploadValidation(t *testing.T) {
	ts := testutil.NewTestServer(t)
	testutil.SeedDefaultAvatars(t, ts.DB.DB, 1)

	_, cookie := testutil.NewAccountBuilder().BuildAndAuthenticate(t, ts)

	tests := []struct {
		name       string
		field      string
		mimeType   string
		cookie     *http.Cookie
		wantStatus int
	}{
		{
			name:       "wrong field name",
			field:      "image",
			mimeType:   "image/png",
			cookie:     cookie,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non-image content type",
			field:      "file",
			mimeType:   "application/pdf",
			cookie:     cookie,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no session",
			field:      "file",
			mimeType:   "image/png",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := uploadRequest(t, ts.APIURL("/avatar/upload"), tt.field, tt.mimeType, []byte("payload"), tt.cookie)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestAvatarRoutes_Defaults(t *testing.T) {
	ts := testutil.NewTestServer(t)
	testutil.SeedDefaultAvatars(t, ts.DB.DB, 4)

	resp, err := http.Get(ts.APIURL("/avatar/defaults"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope testutil.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	var views []struct {
		ID   uint `json:"id"`
		Type int  `json:"type"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &views))
	assert.Len(t, views, 4)
}
