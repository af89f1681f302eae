// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package slp

import (
	"net"
	"strconv"
	"time"
)

// ServerAddress identifies a Minecraft server to ping.
type ServerAddress struct {
	// Host is a domain name or IP address.
	Host string

	// Port is the TCP port. It is an int rather than a uint16 because the
	// accepted range is [0, 65565], see [MaxPort].
	Port int
}

// String returns the address in host:port form.
func (a ServerAddress) String() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Format identifies which legacy response grammar produced a [Response].
type Format int

const (
	// FormatShort is the "motd§online§max" response of servers
	// from Beta 1.8 to 1.3.
	FormatShort Format = iota + 1

	// FormatExtended is the NUL-separated response of servers
	// from 1.4 to 1.6 (and newer servers answering legacy pings).
	FormatExtended
)

func (f Format) String() string {
	switch f {
	case FormatShort:
		return "short"
	case FormatExtended:
		return "extended"
	default:
		return "unknown"
	}
}

// Response is a decoded legacy status response.
//
// Format tells which shape was decoded. Version and Protocol are only
// set for [FormatExtended].
type Response struct {
	Format Format

	// MOTD is the server banner, still carrying any § style codes.
	MOTD string

	// Version is the game version name reported by the server.
	Version string

	// Protocol is the protocol number reported by the server, verbatim.
	Protocol string

	// Online is the number of players currently connected.
	Online int

	// Max is the player limit.
	Max int
}

// Result represents the outcome of pinging a single server as part
// of [Client.PingAll].
type Result struct {
	// Address is the server that was pinged.
	Address ServerAddress

	// Response is the decoded status. Only meaningful when Error is nil.
	Response Response

	// Latency is the wall time of the whole exchange, connect included.
	Latency time.Duration

	// Error is non-nil if the ping failed.
	Error error
}

// State is a step of the ping exchange.
type State int

// Ping states, in the order a successful exchange walks through them.
const (
	StateIdle State = iota
	StateConnecting
	StateHandshakeSent
	StateAwaitingMarker
	StateAwaitingLength
	StateAwaitingPayload
	StateDecoded
)

var stateNames = [...]string{
	StateIdle:            "idle",
	StateConnecting:      "connecting",
	StateHandshakeSent:   "handshake sent",
	StateAwaitingMarker:  "awaiting marker",
	StateAwaitingLength:  "awaiting length",
	StateAwaitingPayload: "awaiting payload",
	StateDecoded:         "decoded",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
	return stateNames[s]
}
