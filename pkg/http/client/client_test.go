package client

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

func TestClientCreation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		baseURL     string
		timeout     time.Duration
		wantTimeout time.Duration
	}{
		{
			name:        "default configuration",
			baseURL:     "https://api.example.com",
			timeout:     0,
			wantTimeout: 30 * time.Second,
		},
		{
			name:        "custom configuration",
			baseURL:     "https://api.test.com",
			timeout:     5 * time.Second,
			wantTimeout: 5 * time.Second,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := New(Options{
				BaseURL: tt.baseURL,
				Timeout: tt.timeout,
			})

			assert.Equal(t, tt.baseURL, client.baseURL)
			assert.Equal(t, tt.wantTimeout, client.httpClient.Timeout)
		})
	}
}

func TestRequestFormatting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		wantURL string
	}{
		{
			name:    "relative path with base URL",
			path:    "/test",
			wantURL: "/test",
		},
		{
			name:    "path with query string",
			path:    "/search?q=fuel&radius=5000",
			wantURL: "/search",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{}`))
			}))
			defer srv.Close()

			client := New(Options{BaseURL: srv.URL})
			resp, err := client.Get(context.Background(), tt.path)

			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.wantURL, gotPath)
			assert.Equal(t, []byte(`{}`), resp.Body)
		})
	}
}

func TestNonSuccessStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := New(Options{BaseURL: srv.URL})
	resp, err := client.Get(context.Background(), "/denied")

	assert.Nil(t, resp)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusForbidden, statusErr.Code)
}

func TestGetFuncOverride(t *testing.T) {
	t.Parallel()

	client := New(Options{BaseURL: "https://unused.example.com"})
	client.GetFunc = func(_ context.Context, path string) (*Response, error) {
		if path == "/boom" {
			return nil, errors.New("boom")
		}
		return &Response{StatusCode: http.StatusOK, Body: []byte(path)}, nil
	}

	resp, err := client.Get(context.Background(), "/ok")
	require.NoError(t, err)
	assert.Equal(t, []byte("/ok"), resp.Body)

	_, err = client.Get(context.Background(), "/boom")
	assert.Error(t, err)
}

func TestContextCancellation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	client := New(Options{BaseURL: srv.URL})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Get(ctx, "/slow")
	assert.Error(t, err)
}
