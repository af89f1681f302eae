// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mojang_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/mcslp/src/mojang"
	"github.com/H0llyW00dzZ/mcslp/src/slp"
)

// startFeedServer serves body with the given status code and counts
// requests.
func startFeedServer(t *testing.T, code int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(code)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

const feed = `[{"minecraft.net":"green"},{"auth.mojang.com":"red"}]`

func TestFetch(t *testing.T) {
	srv, hits := startFeedServer(t, http.StatusOK, feed)

	a := mojang.New(mojang.WithURL(srv.URL))
	got, err := a.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []mojang.ServiceStatus{
		{Name: "minecraft.net", State: mojang.Online},
		{Name: "auth.mojang.com", State: mojang.Offline},
	}, got)
	assert.Equal(t, int32(1), hits.Load())
}

func TestFetchIsNotCached(t *testing.T) {
	srv, hits := startFeedServer(t, http.StatusOK, feed)

	a := mojang.New(mojang.WithURL(srv.URL))
	for i := 0; i < 3; i++ {
		_, err := a.Fetch(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), hits.Load())
}

func TestFetchStatusCode(t *testing.T) {
	for _, code := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusMovedPermanently} {
		t.Run(http.StatusText(code), func(t *testing.T) {
			srv, _ := startFeedServer(t, code, feed)

			a := mojang.New(mojang.WithURL(srv.URL), mojang.WithHTTPClient(&http.Client{
				CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
			}))
			_, err := a.Fetch(context.Background())
			assert.ErrorIs(t, err, mojang.ErrFetch)
			assert.ErrorIs(t, err, mojang.ErrStatusCode)
		})
	}
}

func TestFetchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := mojang.New(mojang.WithURL(url))
	_, err := a.Fetch(context.Background())
	assert.ErrorIs(t, err, mojang.ErrFetch)
	assert.NotErrorIs(t, err, mojang.ErrStatusCode)
}

func TestFetchTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	a := mojang.New(mojang.WithURL(srv.URL), mojang.WithTimeout(100*time.Millisecond))

	start := time.Now()
	_, err := a.Fetch(context.Background())
	assert.ErrorIs(t, err, mojang.ErrFetch)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestFetchMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>down</html>"},
		{"object", `{"minecraft.net":"green"}`},
		{"null", `null`},
		{"two keys", `[{"minecraft.net":"green","api.mojang.com":"green"}]`},
		{"no keys", `[{}]`},
		{"repeated key", `[{"minecraft.net":"green","minecraft.net":"red"}]`},
		{"trailing data", `[{"minecraft.net":"green"}] []`},
		{"unterminated", `[{"minecraft.net":"green"}`},
		{"null entry", `[null]`},
		{"number value", `[{"minecraft.net":1}]`},
		{"null value", `[{"minecraft.net":null}]`},
		{"nested value", `[{"minecraft.net":{"color":"green"}}]`},
		{"one bad entry rejects all", `[{"minecraft.net":"green"},{"api.mojang.com":false}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := startFeedServer(t, http.StatusOK, tt.body)

			a := mojang.New(mojang.WithURL(srv.URL))
			got, err := a.Fetch(context.Background())
			assert.Nil(t, got)
			assert.ErrorIs(t, err, mojang.ErrFetch)
			assert.ErrorIs(t, err, mojang.ErrMalformedFeed)
		})
	}
}

func TestParseFeed(t *testing.T) {
	got, err := mojang.ParseFeed([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = mojang.ParseFeed([]byte(`[{"a":"green"},{"a":"yellow"},{"b":""}]`))
	require.NoError(t, err)
	assert.Equal(t, []mojang.ServiceStatus{
		{Name: "a", State: mojang.Online},
		{Name: "a", State: mojang.Offline},
		{Name: "b", State: mojang.Offline},
	}, got)

	_, err = mojang.ParseFeed([]byte(`[{"minecraft.net":"green","minecraft.net":"red"}]`))
	assert.ErrorIs(t, err, mojang.ErrMalformedFeed, "a repeated key is a second member")
}

func TestSummary(t *testing.T) {
	srv, _ := startFeedServer(t, http.StatusOK, feed)

	t.Run("grouped", func(t *testing.T) {
		a := mojang.New(mojang.WithURL(srv.URL), mojang.WithMarkup(slp.IRC{}))
		s, err := a.Summary(context.Background(), mojang.PolicyGrouped)
		require.NoError(t, err)

		assert.Equal(t, []string{"Website"}, s.Online)
		assert.Equal(t, []string{"Legacy Auth"}, s.Offline)
		assert.Equal(t, "\x0303Online\x03: Website - \x0304Offline\x03: Legacy Auth", s.Text)
	})

	t.Run("inline", func(t *testing.T) {
		a := mojang.New(mojang.WithURL(srv.URL))
		s, err := a.Summary(context.Background(), mojang.PolicyInline)
		require.NoError(t, err)
		assert.Equal(t, "Website | Legacy Auth", s.Text)
	})

	t.Run("custom labels", func(t *testing.T) {
		a := mojang.New(mojang.WithURL(srv.URL), mojang.WithLabels(map[string]string{
			"minecraft.net": "Site",
		}))
		s, err := a.Summary(context.Background(), mojang.PolicyGrouped)
		require.NoError(t, err)
		assert.Equal(t, "Online: Site - Offline: Legacy Auth", s.Text)

		// The package defaults are not modified.
		assert.Equal(t, "Website", mojang.DefaultLabels["minecraft.net"])
	})

	t.Run("unknown policy", func(t *testing.T) {
		a := mojang.New(mojang.WithURL(srv.URL))
		_, err := a.Summary(context.Background(), mojang.Policy(9))
		assert.ErrorIs(t, err, mojang.ErrUnknownPolicy)
	})

	t.Run("fetch error", func(t *testing.T) {
		down, _ := startFeedServer(t, http.StatusServiceUnavailable, "")
		a := mojang.New(mojang.WithURL(down.URL))
		_, err := a.Summary(context.Background(), mojang.PolicyGrouped)
		assert.ErrorIs(t, err, mojang.ErrFetch)
	})
}

func TestNewDefaults(t *testing.T) {
	a := mojang.New(mojang.WithURL(""), mojang.WithTimeout(-1), mojang.WithMarkup(nil), mojang.WithHTTPClient(nil))
	assert.Equal(t, mojang.DefaultURL, a.URL())
	assert.Equal(t, mojang.DefaultLabels, a.Labels())
}

func TestFetchLive(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping live status feed test in short mode")
	}

	a := mojang.New(mojang.WithTimeout(5 * time.Second))
	_, err := a.Fetch(context.Background())
	if err != nil {
		// The historical feed has been retired; a typed error is the
		// expected outcome.
		assert.ErrorIs(t, err, mojang.ErrFetch)
	}
}
