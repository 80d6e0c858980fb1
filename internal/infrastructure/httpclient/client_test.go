package httpclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SetsIdentifyingHeaders(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := New(time.Second, map[string]string{
		"User-Agent": "PharmacyLocator/1.0 (ops@example.com)",
		"From":       "ops@example.com",
	})

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "Go-http-client/1.1")

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "PharmacyLocator/1.0 (ops@example.com)", got.Get("User-Agent"))
	assert.Equal(t, "ops@example.com", got.Get("From"))
	// the caller's request is not mutated
	assert.Equal(t, "Go-http-client/1.1", req.Header.Get("User-Agent"))
}

func TestNew_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := New(20*time.Millisecond, nil)
	_, err := client.Get(server.URL)
	assert.Error(t, err)
}
