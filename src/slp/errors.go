// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package slp

import (
	"errors"
	"fmt"
)

// Sentinel errors for the slp package.
var (
	// ErrInvalidPort is returned when a port is outside the accepted
	// range [0, 65565]. No connection is attempted.
	ErrInvalidPort = errors.New("slp: invalid port")

	// ErrConnectionFailed is returned when the server cannot be reached
	// (refused, DNS failure, timeout) or the handshake cannot be written.
	ErrConnectionFailed = errors.New("slp: connection failed")

	// ErrTruncatedResponse is returned when the server closes the
	// connection or times out before the full response was read.
	ErrTruncatedResponse = errors.New("slp: truncated response")

	// ErrUnexpectedMarker is returned when the first response byte is
	// not the 0xFF kick-packet marker.
	ErrUnexpectedMarker = errors.New("slp: unexpected packet marker")

	// ErrMalformedPayload is returned when the decoded response text
	// matches neither legacy response format.
	ErrMalformedPayload = errors.New("slp: malformed payload")

	// ErrInvalidHost is returned when a host is empty or cannot be
	// converted to its ASCII form.
	ErrInvalidHost = errors.New("slp: invalid host")

	// ErrNoSRVRecord is returned by [Client.Resolve] when the host has
	// no _minecraft._tcp SRV record. The returned address is still usable.
	ErrNoSRVRecord = errors.New("slp: no SRV record")

	// ErrInternalPanic is returned when an internal panic is recovered during execution.
	ErrInternalPanic = errors.New("slp: internal panic recovered")
)

// PingError describes a failed ping. It records the address that was
// pinged and the state the exchange was in when it failed.
//
// PingError matches both its kind (one of the sentinel errors above)
// and the underlying cause with [errors.Is].
type PingError struct {
	Address ServerAddress
	State   State
	Kind    error
	Err     error
}

func (e *PingError) Error() string {
	switch {
	case e.Err == nil:
		return fmt.Sprintf("%v: %s (%s)", e.Kind, e.Address, e.State)
	case errors.Is(e.Err, e.Kind):
		// The cause already names the kind.
		return fmt.Sprintf("%s (%s): %v", e.Address, e.State, e.Err)
	default:
		return fmt.Sprintf("%v: %s (%s): %v", e.Kind, e.Address, e.State, e.Err)
	}
}

// Unwrap returns the error kind and, if present, the underlying cause.
func (e *PingError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
