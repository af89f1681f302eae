// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mojang

import "errors"

// Sentinel errors for the mojang package.
var (
	// ErrFetch is returned when the status feed cannot be retrieved or
	// understood. Every error returned by [Aggregator.Fetch] matches it.
	ErrFetch = errors.New("mojang: status fetch failed")

	// ErrStatusCode is returned alongside [ErrFetch] when the feed
	// answers with a non-2xx HTTP status.
	ErrStatusCode = errors.New("mojang: unexpected HTTP status")

	// ErrMalformedFeed is returned alongside [ErrFetch] when the feed
	// is not an array of single-key objects with string values.
	ErrMalformedFeed = errors.New("mojang: malformed status feed")

	// ErrUnknownPolicy is returned by [Aggregator.Summary] when the
	// policy is neither [PolicyGrouped] nor [PolicyInline].
	ErrUnknownPolicy = errors.New("mojang: unknown summary policy")
)
