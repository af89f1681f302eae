// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package slp

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/idna"
)

// ParseAddress parses "host" or "host:port" into a [ServerAddress].
//
// The string is split at the first colon. A missing port defaults to
// [DefaultPort]. A port that is not a number is kept as -1 so that
// [Client.Ping] rejects it with [ErrInvalidPort]; range checks are left
// to Ping as well.
//
// Internationalized host names are converted to their ASCII (punycode)
// form. An empty or unconvertible host returns [ErrInvalidHost].
func ParseAddress(s string) (ServerAddress, error) {
	host, portStr, hasPort := strings.Cut(strings.TrimSpace(s), ":")

	port := DefaultPort
	if hasPort {
		p, err := strconv.Atoi(strings.TrimSpace(portStr))
		if err != nil {
			p = -1
		}
		port = p
	}

	host, err := normalizeHost(host)
	if err != nil {
		return ServerAddress{}, err
	}

	return ServerAddress{Host: host, Port: port}, nil
}

// normalizeHost trims host and converts it to ASCII.
func normalizeHost(host string) (string, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return "", fmt.Errorf("%w: empty host", ErrInvalidHost)
	}

	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidHost, host, err)
	}
	return ascii, nil
}

// validPort reports whether port is within [0, MaxPort].
func validPort(port int) bool {
	return port >= 0 && port <= MaxPort
}
