package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchSendsUserAgent(t *testing.T) {
	var ua string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.UserAgent()
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	c := NewClient(Config{UserAgent: "Mozilla/5.0 test"}, nil)
	resp, err := c.Fetch(context.Background(), srv.URL+"/board.png")
	require.NoError(t, err)
	assert.Equal(t, "Mozilla/5.0 test", ua)
	assert.Equal(t, []byte("png-bytes"), resp.Body)
	assert.Equal(t, "image/png", resp.ContentType)
}

func TestFetchStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClient(Config{}, nil).Fetch(context.Background(), srv.URL+"/menu.pdf")
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
}

func TestFetchNetworkErrorIsNotStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(Config{Timeout: 2 * time.Second}, nil).Fetch(context.Background(), url)
	require.Error(t, err)

	var se *StatusError
	assert.False(t, errors.As(err, &se))
}

func TestFetchTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(make([]byte, 64))
	}))
	defer srv.Close()

	_, err := NewClient(Config{MaxBytes: 16}, nil).Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrTooLarge)
}
