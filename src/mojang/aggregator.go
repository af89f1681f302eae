// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mojang

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/html/charset"

	"github.com/H0llyW00dzZ/mcslp/src/slp"
)

// Default configuration values.
const (
	// DefaultURL is the historical Mojang status feed.
	DefaultURL = "http://status.mojang.com/check"

	defaultTimeout = 10 * time.Second

	// maxFeedSize bounds the body read from the feed.
	maxFeedSize = 1 << 20

	onlineColor = "green"
)

// Aggregator fetches a service status feed and summarizes it.
//
// An Aggregator only holds configuration; it is safe for concurrent use
// and never caches a feed between calls.
type Aggregator struct {
	url        string
	timeout    time.Duration
	labels     map[string]string
	markup     slp.Markup
	httpClient *http.Client
	logger     zerolog.Logger
}

// New creates a new [Aggregator]. Use functional options to customize behavior.
//
//	a := mojang.New(
//	    mojang.WithURL("https://status.example.com/check"),
//	    mojang.WithTimeout(5 * time.Second),
//	)
func New(opts ...Option) *Aggregator {
	a := &Aggregator{
		url:     DefaultURL,
		timeout: defaultTimeout,
		labels:  maps.Clone(DefaultLabels),
		markup:  slp.Plain{},
		logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.httpClient == nil {
		a.httpClient = &http.Client{}
	}

	return a
}

// URL returns the configured feed URL.
func (a *Aggregator) URL() string { return a.url }

// Labels returns a copy of the display labels used by [Aggregator.Summary].
func (a *Aggregator) Labels() map[string]string { return maps.Clone(a.labels) }

// Fetch performs a single GET on the feed and parses it.
//
// The feed must be a JSON array of objects holding exactly one key with
// a string value, for example:
//
//	[{"minecraft.net":"green"},{"auth.mojang.com":"red"}]
//
// "green" is [Online]; any other string is [Offline]. Any other shape
// rejects the whole document with [ErrMalformedFeed]. Every error
// matches [ErrFetch].
func (a *Aggregator) Fetch(ctx context.Context) ([]ServiceStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := a.httpClient.Do(req)
	if err != nil {
		a.logger.Debug().Err(err).Str("url", a.url).Msg("status fetch failed")
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		a.logger.Debug().Int("status", resp.StatusCode).Str("url", a.url).Msg("status feed rejected request")
		return nil, fmt.Errorf("%w: %w: %s", ErrFetch, ErrStatusCode, resp.Status)
	}

	body, err := charset.NewReader(io.LimitReader(resp.Body, maxFeedSize), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrFetch, err)
	}

	statuses, err := ParseFeed(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	a.logger.Debug().
		Str("url", a.url).
		Int("services", len(statuses)).
		Dur("took", time.Since(start)).
		Msg("status feed fetched")
	return statuses, nil
}

// ParseFeed parses a status feed document. Errors match [ErrMalformedFeed].
//
// The document must be an array of objects with exactly one member
// each, whose value is a string. Repeated keys count as members.
func ParseFeed(data []byte) ([]ServiceStatus, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := expectDelim(dec, '['); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFeed, err)
	}

	statuses := make([]ServiceStatus, 0)
	for i := 0; dec.More(); i++ {
		status, err := parseEntry(dec)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrMalformedFeed, i, err)
		}
		statuses = append(statuses, status)
	}
	if err := expectDelim(dec, ']'); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFeed, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: data after the array", ErrMalformedFeed)
	}
	return statuses, nil
}

// parseEntry reads one {"name": "color"} object from dec.
func parseEntry(dec *json.Decoder) (ServiceStatus, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return ServiceStatus{}, err
	}

	var (
		status  ServiceStatus
		members int
	)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return ServiceStatus{}, err
		}
		name, _ := tok.(string)

		// Decoding into any rejects null, which a string would accept.
		var value any
		if err := dec.Decode(&value); err != nil {
			return ServiceStatus{}, err
		}
		color, ok := value.(string)
		if !ok {
			return ServiceStatus{}, fmt.Errorf("%s is not a string", name)
		}

		members++
		status = ServiceStatus{Name: name, State: Offline}
		if color == onlineColor {
			status.State = Online
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return ServiceStatus{}, err
	}

	if members != 1 {
		return ServiceStatus{}, fmt.Errorf("%d members", members)
	}
	return status, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %v, found %v", want, tok)
	}
	return nil
}

// Summary fetches the feed, applies the display labels and renders it
// under policy with the configured markup.
func (a *Aggregator) Summary(ctx context.Context, policy Policy) (Summary, error) {
	if policy != PolicyGrouped && policy != PolicyInline {
		return Summary{}, fmt.Errorf("%w: %v", ErrUnknownPolicy, policy)
	}

	statuses, err := a.Fetch(ctx)
	if err != nil {
		return Summary{}, err
	}

	statuses = ApplyLabels(statuses, a.labels)
	if policy == PolicyGrouped {
		return SummarizeGrouped(statuses, a.markup), nil
	}
	return SummarizeInline(statuses, a.markup), nil
}
