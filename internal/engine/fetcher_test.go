package engine_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wetonku/go-weton/internal/config"
	"github.com/wetonku/go-weton/internal/engine"
)

const sampleCard = "BEGIN:VCARD\nVERSION:4.0\nFN:Siti Rahayu\nBDAY:19900515\nEND:VCARD"

// TestHTTPFetcher_Fetch_WithBasicAuth verifies the full download path when the
// source requires credentials: the auth header, the User-Agent constant and
// the body delivered to the caller.
func TestHTTPFetcher_Fetch_WithBasicAuth(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok, "credentials were supplied, Authorization header expected")
		assert.Equal(t, "dav-user", user)
		assert.Equal(t, "dav-secret", pass)
		assert.Equal(t, config.UserAgent, r.Header.Get("User-Agent"),
			"requests must identify themselves with the application User-Agent")

		_, _ = io.WriteString(w, sampleCard)
	}))
	defer ts.Close()

	rc, err := engine.NewHTTPFetcher().Fetch(context.Background(), ts.URL, "dav-user", "dav-secret")
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, sampleCard, string(body))
}

// TestHTTPFetcher_Fetch_NoAuth verifies that empty credentials suppress the
// Authorization header entirely instead of sending an empty basic-auth pair.
func TestHTTPFetcher_Fetch_NoAuth(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _, ok := r.BasicAuth()
		assert.False(t, ok, "no credentials given, no Authorization header expected")
		_, _ = io.WriteString(w, sampleCard)
	}))
	defer ts.Close()

	rc, err := engine.NewHTTPFetcher().Fetch(context.Background(), ts.URL, "", "")
	require.NoError(t, err)
	_ = rc.Close()
}

func TestHTTPFetcher_Fetch_ErrorStatus(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"Unauthorized", http.StatusUnauthorized},
		{"Forbidden", http.StatusForbidden},
		{"NotFound", http.StatusNotFound},
		{"ServerError", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer ts.Close()

			rc, err := engine.NewHTTPFetcher().Fetch(context.Background(), ts.URL, "", "")

			require.Error(t, err)
			assert.Nil(t, rc, "no body may leak to the caller on a non-200 status")
			assert.Contains(t, err.Error(), http.StatusText(tt.statusCode))
		})
	}
}

// TestHTTPFetcher_Fetch_LimitedReader verifies the size-limited wrapper
// passes a multi-chunk body through intact and releases the connection on
// Close.
func TestHTTPFetcher_Fetch_LimitedReader(t *testing.T) {
	payload := strings.Repeat(sampleCard+"\n", 512)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, payload)
	}))
	defer ts.Close()

	rc, err := engine.NewHTTPFetcher().Fetch(context.Background(), ts.URL, "", "")
	require.NoError(t, err)

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Len(t, body, len(payload), "body must pass through the size limiter unmodified")
	assert.NoError(t, rc.Close())
}

func TestHTTPFetcher_Fetch_ContextDeadline(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := engine.NewHTTPFetcher().Fetch(ctx, ts.URL, "", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHTTPFetcher_Fetch_BadInput(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr string
	}{
		// 0x7f is a control character url.Parse rejects.
		{"UnparseableURL", string([]byte{0x7f}), config.ErrInvalidURL},
		{"FTPScheme", "ftp://contacts.example.com/all.vcf", config.ErrProtocol},
		{"FileScheme", "file:///etc/passwd", config.ErrProtocol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.NewHTTPFetcher().Fetch(context.Background(), tt.url, "", "")

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
