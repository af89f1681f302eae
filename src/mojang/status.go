// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mojang

import (
	"fmt"
	"strings"

	"github.com/H0llyW00dzZ/mcslp/src/slp"
)

// ServiceState is the health of a single service in the feed.
type ServiceState int

const (
	// Offline is any feed color other than "green".
	Offline ServiceState = iota

	// Online is the feed color "green".
	Online
)

func (s ServiceState) String() string {
	if s == Online {
		return "online"
	}
	return "offline"
}

// ServiceStatus is one entry of the status feed.
type ServiceStatus struct {
	// Name is the service host name, or its display label once
	// [ApplyLabels] ran.
	Name string

	// State is the reported health.
	State ServiceState
}

// Policy selects how a [Summary] is rendered.
type Policy int

const (
	// PolicyGrouped lists online services, then offline ones:
	// "Online: a, b - Offline: c".
	PolicyGrouped Policy = iota

	// PolicyInline colors every service by its state and joins them
	// with " | ", keeping feed order.
	PolicyInline
)

func (p Policy) String() string {
	switch p {
	case PolicyGrouped:
		return "grouped"
	case PolicyInline:
		return "inline"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps "grouped" (or "list") and "inline" to a [Policy].
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "grouped", "list":
		return PolicyGrouped, nil
	case "inline", "":
		return PolicyInline, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Summary is the rendered view of a status feed.
type Summary struct {
	// Policy is the policy Text was rendered with.
	Policy Policy

	// Online and Offline hold the service names in feed order.
	Online  []string
	Offline []string

	// Text is the rendered summary. It is empty when the feed was empty.
	Text string
}

func (s Summary) String() string { return s.Text }

// Labels shown in front of each group by [SummarizeGrouped].
const (
	OnlineLabel  = "Online"
	OfflineLabel = "Offline"
)

// DefaultLabels maps the canonical Mojang service hosts to short
// display labels.
var DefaultLabels = map[string]string{
	"minecraft.net":            "Website",
	"account.mojang.com":       "Account web",
	"login.minecraft.net":      "Legacy Login",
	"session.minecraft.net":    "Legacy Session",
	"auth.mojang.com":          "Legacy Auth",
	"skins.minecraft.net":      "Skin server",
	"authserver.mojang.com":    "Auth server",
	"sessionserver.mojang.com": "Session server",
	"api.mojang.com":           "API",
	"textures.minecraft.net":   "Textures",
}

// ApplyLabels returns a copy of statuses with every name found in
// labels replaced by its label. Unknown names are kept unchanged.
func ApplyLabels(statuses []ServiceStatus, labels map[string]string) []ServiceStatus {
	out := make([]ServiceStatus, len(statuses))
	for i, s := range statuses {
		if label, ok := labels[s.Name]; ok {
			s.Name = label
		}
		out[i] = s
	}
	return out
}

// partition splits names by state, keeping feed order.
func partition(statuses []ServiceStatus) (online, offline []string) {
	for _, s := range statuses {
		if s.State == Online {
			online = append(online, s.Name)
		} else {
			offline = append(offline, s.Name)
		}
	}
	return online, offline
}

// SummarizeGrouped renders statuses as
//
//	Online: a, b - Offline: c
//
// with both labels styled through m. A group with no services is left
// out along with its label, and the " - " separator only appears when
// both groups are present.
func SummarizeGrouped(statuses []ServiceStatus, m slp.Markup) Summary {
	online, offline := partition(statuses)

	var clauses []string
	if len(online) > 0 {
		clauses = append(clauses, m.Span(slp.StyleDarkGreen, OnlineLabel)+": "+strings.Join(online, ", "))
	}
	if len(offline) > 0 {
		clauses = append(clauses, m.Span(slp.StyleRed, OfflineLabel)+": "+strings.Join(offline, ", "))
	}

	return Summary{
		Policy:  PolicyGrouped,
		Online:  online,
		Offline: offline,
		Text:    strings.Join(clauses, " - "),
	}
}

// SummarizeInline renders every service as a span colored by its state,
// joined by " | " in feed order.
func SummarizeInline(statuses []ServiceStatus, m slp.Markup) Summary {
	online, offline := partition(statuses)

	tokens := make([]string, 0, len(statuses))
	for _, s := range statuses {
		style := slp.StyleRed
		if s.State == Online {
			style = slp.StyleDarkGreen
		}
		tokens = append(tokens, m.Span(style, s.Name))
	}

	return Summary{
		Policy:  PolicyInline,
		Online:  online,
		Offline: offline,
		Text:    strings.Join(tokens, " | "),
	}
}
