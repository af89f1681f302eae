// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mojang

import (
	"maps"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/H0llyW00dzZ/mcslp/src/slp"
)

// Option is a functional option for configuring an [Aggregator].
type Option func(*Aggregator)

// WithURL sets the status feed URL. Empty values are ignored.
func WithURL(url string) Option {
	return func(a *Aggregator) {
		if url = strings.TrimSpace(url); url != "" {
			a.url = url
		}
	}
}

// WithTimeout sets the timeout of a single fetch, including reading
// the body. The default is 10 seconds. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(a *Aggregator) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// WithLabels adds or overrides display labels used by
// [Aggregator.Summary] on top of [DefaultLabels].
func WithLabels(labels map[string]string) Option {
	return func(a *Aggregator) {
		maps.Copy(a.labels, labels)
	}
}

// WithMarkup sets the markup [Aggregator.Summary] renders with.
// The default is [slp.Plain]. Passing nil is a no-op.
func WithMarkup(m slp.Markup) Option {
	return func(a *Aggregator) {
		if m != nil {
			a.markup = m
		}
	}
}

// WithHTTPClient sets the HTTP client used to fetch the feed.
// Passing nil is a no-op.
func WithHTTPClient(client *http.Client) Option {
	return func(a *Aggregator) {
		if client != nil {
			a.httpClient = client
		}
	}
}

// WithLogger sets the logger receiving debug events about fetches.
// By default nothing is logged.
func WithLogger(l zerolog.Logger) Option {
	return func(a *Aggregator) {
		a.logger = l
	}
}
