// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package slp

import (
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"
	"github.com/rs/zerolog"
)

// Option is a functional option for configuring a [Client].
type Option func(*Client)

// WithConnectTimeout sets the timeout for establishing the TCP connection.
// The default is 5 seconds. Non-positive values are ignored.
func WithConnectTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.connectTimeout = d
		}
	}
}

// WithReadTimeout sets the time allowed for writing the handshake and
// reading the whole response. The default is 5 seconds.
// Non-positive values are ignored.
func WithReadTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.readTimeout = d
		}
	}
}

// WithProtocolVersion sets the protocol byte sent in the handshake.
// The default is 78.
func WithProtocolVersion(v byte) Option {
	return func(c *Client) {
		c.protocolVersion = v
	}
}

// WithPingToken sets the plugin channel name sent in the handshake.
// The default is "MC|PingHost". Empty values are ignored.
func WithPingToken(token string) Option {
	return func(c *Client) {
		if token != "" {
			c.token = token
		}
	}
}

// WithConcurrency sets the maximum number of concurrent pings run by
// [Client.PingAll]. The default is 16.
func WithConcurrency(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithDialer sets the [Dialer] used to open connections, for example to
// go through a proxy. Passing nil is a no-op.
func WithDialer(d Dialer) Option {
	return func(c *Client) {
		if d != nil {
			c.dialer = d
		}
	}
}

// WithResolver sets the DNS server used by [Client.Resolve] for SRV
// lookups. A missing port defaults to 53.
//
// By default the first nameserver of /etc/resolv.conf is used.
func WithResolver(addr string) Option {
	return func(c *Client) {
		addr = strings.TrimSpace(addr)
		if addr == "" {
			return
		}
		if _, _, err := net.SplitHostPort(addr); err != nil {
			addr = net.JoinHostPort(addr, "53")
		}
		c.resolver = addr
	}
}

// WithDNSClient sets a custom [dns.Client] for SRV lookups (TCP,
// DNS-over-TLS, custom dialer, ...). Passing nil is a no-op.
func WithDNSClient(client *dns.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.dnsClient = client
		}
	}
}

// WithLogger sets the logger receiving debug events about ping state
// transitions. By default nothing is logged.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}
