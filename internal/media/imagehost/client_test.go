package imagehost

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbiomeds/newsdesk/internal/media"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(ClientConfig{
		BaseURL:   srv.URL,
		CloudName: "rbiomeds",
		APIKey:    "key",
		APISecret: "secret",
	})
	require.NoError(t, err)
	return client, srv
}

func TestClient_Upload(t *testing.T) {
	var gotPath string
	var gotForm map[string]string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"file":      r.PostFormValue("file"),
			"folder":    r.PostFormValue("folder"),
			"api_key":   r.PostFormValue("api_key"),
			"timestamp": r.PostFormValue("timestamp"),
			"signature": r.PostFormValue("signature"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"secure_url":"https://media.example.com/articles/abc.png"}`))
	})

	url, err := client.Upload(context.Background(), []byte{0x89, 0x50}, "image/png")

	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/articles/abc.png", url)
	assert.Equal(t, "/v1_1/rbiomeds/image/upload", gotPath)
	assert.True(t, strings.HasPrefix(gotForm["file"], "data:image/png;base64,"))
	assert.Equal(t, media.Folder, gotForm["folder"])
	assert.Equal(t, "key", gotForm["api_key"])
	assert.NotEmpty(t, gotForm["timestamp"])
	assert.Equal(t, client.sign(gotForm["timestamp"]), gotForm["signature"])
}

func TestClient_Upload_DefaultsMimeType(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.True(t, strings.HasPrefix(r.PostFormValue("file"), "data:application/octet-stream;base64,"))
		_, _ = w.Write([]byte(`{"secure_url":"https://media.example.com/articles/abc"}`))
	})

	_, err := client.Upload(context.Background(), []byte("bytes"), "")
	require.NoError(t, err)
}

func TestClient_Upload_SurfacesHostErrorMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid API key"}}`))
	})

	_, err := client.Upload(context.Background(), []byte("bytes"), "image/png")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API key")
	assert.Contains(t, err.Error(), "401")
}

func TestClient_Upload_RejectsResponseWithoutURL(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := client.Upload(context.Background(), []byte("bytes"), "image/png")
	assert.Error(t, err)
}

func TestNewClient_RequiresCloudName(t *testing.T) {
	_, err := NewClient(ClientConfig{})
	assert.Error(t, err)
}
