// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mojang fetches the Mojang service status feed and renders it
// as a one-line summary.
//
// The feed is a JSON array of single-key objects mapping a service host
// to a color:
//
//	[{"minecraft.net":"green"},{"session.minecraft.net":"red"}]
//
// "green" means the service is online; any other color means offline.
//
// # Quick Start
//
//	a := mojang.New(mojang.WithMarkup(slp.ANSI{}))
//
//	s, err := a.Summary(ctx, mojang.PolicyGrouped)
//	if errors.Is(err, mojang.ErrFetch) {
//	    fmt.Println("Status checker is down!")
//	    return
//	}
//	fmt.Println(s) // Online: Website, API - Offline: Legacy Session
//
// # Policies
//
//   - [PolicyGrouped]: "Online: a, b - Offline: c", see [SummarizeGrouped]
//   - [PolicyInline]: every service colored by state, joined by " | ", see [SummarizeInline]
//
// Both summarizers are pure functions and can be used on statuses
// obtained elsewhere. Host names are replaced by [DefaultLabels] (plus
// [WithLabels]) before rendering.
//
// # Errors
//
//	var (
//	    ErrFetch         // Transport failure, non-2xx status or bad document
//	    ErrStatusCode    // Non-2xx HTTP status (also matches ErrFetch)
//	    ErrMalformedFeed // Document shape rejected (also matches ErrFetch)
//	    ErrUnknownPolicy // Unsupported Policy value
//	)
package mojang
