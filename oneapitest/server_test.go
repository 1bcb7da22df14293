package oneapitest

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, url, token string) (int, string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestServer(t *testing.T) {
	srv := NewServer()
	defer srv.Close()

	t.Run("fixture with raw query", func(t *testing.T) {
		status, body := get(t, srv.BaseURL()+"/movie?name=/el/i", "k")
		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, MoviesNameEl, body)
	})

	t.Run("missing token", func(t *testing.T) {
		status, body := get(t, srv.BaseURL()+"/movie?name=/el/i", "")
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.JSONEq(t, Unauthorized, body)
	})

	t.Run("unknown route", func(t *testing.T) {
		status, body := get(t, srv.BaseURL()+"/movie/a/b/c", "k")
		assert.Equal(t, http.StatusNotFound, status)
		assert.JSONEq(t, NotFound, body)
	})

	t.Run("custom status", func(t *testing.T) {
		srv.SetStatus("/book", "", http.StatusServiceUnavailable, "down")
		status, body := get(t, srv.BaseURL()+"/book", "k")
		assert.Equal(t, http.StatusServiceUnavailable, status)
		assert.Equal(t, "down", body)
	})

	t.Run("requests are recorded", func(t *testing.T) {
		reqs := srv.Requests()
		require.Len(t, reqs, 4)
		assert.Equal(t, Recorded{Path: "/v2/movie", RawQuery: "name=/el/i", Authorization: "Bearer k"}, reqs[0])
		assert.Empty(t, reqs[1].Authorization)
	})
}
