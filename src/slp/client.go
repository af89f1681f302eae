// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package slp

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/miekg/dns"
	"github.com/rs/zerolog"
)

// Default configuration values.
const (
	defaultConnectTimeout = 5 * time.Second
	defaultReadTimeout    = 5 * time.Second
	defaultConcurrency    = 16
)

// Dialer opens stream connections. [net.Dialer] implements it.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Client pings Minecraft servers with the legacy (pre-1.7) Server
// List Ping protocol.
//
// A Client only holds configuration; it is safe for concurrent use and
// keeps no state between pings.
type Client struct {
	connectTimeout  time.Duration
	readTimeout     time.Duration
	protocolVersion byte
	token           string
	concurrency     int
	dialer          Dialer
	resolver        string
	dnsClient       *dns.Client
	logger          zerolog.Logger
}

// New creates a new [Client]. Use functional options to customize behavior.
//
//	// Default configuration:
//	c := slp.New()
//
//	// Custom configuration:
//	c := slp.New(
//	    slp.WithConnectTimeout(2 * time.Second),
//	    slp.WithReadTimeout(3 * time.Second),
//	)
func New(opts ...Option) *Client {
	c := &Client{
		connectTimeout:  defaultConnectTimeout,
		readTimeout:     defaultReadTimeout,
		protocolVersion: DefaultProtocolVersion,
		token:           DefaultPingToken,
		concurrency:     defaultConcurrency,
		logger:          zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.dialer == nil {
		c.dialer = &net.Dialer{}
	}

	if c.resolver == "" {
		c.resolver = systemResolver()
	}

	if c.dnsClient == nil {
		c.dnsClient = &dns.Client{
			Timeout: c.connectTimeout,
			Net:     "udp",
		}
	}

	return c
}

// Ping performs one legacy ping exchange against addr and returns the
// decoded status.
//
// The exchange is strictly sequential: connect, write the handshake,
// read the marker, the length and the payload, decode. The connection
// is closed before Ping returns, whatever the outcome. Nothing is
// retried.
//
// Errors are [*PingError] values matching [ErrInvalidPort],
// [ErrConnectionFailed], [ErrTruncatedResponse], [ErrUnexpectedMarker]
// or [ErrMalformedPayload] with [errors.Is].
//
// The connect and read timeouts bound the call. A ctx deadline
// shortens them and cancelling ctx aborts the exchange.
func (c *Client) Ping(ctx context.Context, addr ServerAddress) (Response, error) {
	state := StateIdle
	log := c.logger.With().Str("address", addr.String()).Logger()

	enter := func(s State) {
		state = s
		log.Debug().Stringer("state", s).Msg("ping state")
	}
	fail := func(kind, err error) (Response, error) {
		log.Debug().Err(err).Stringer("state", state).Msg("ping failed")
		return Response{}, &PingError{Address: addr, State: state, Kind: kind, Err: err}
	}

	if !validPort(addr.Port) {
		return fail(ErrInvalidPort, fmt.Errorf("port %d outside [0, %d]", addr.Port, MaxPort))
	}

	enter(StateConnecting)
	dialCtx, cancel := context.WithTimeout(ctx, c.connectTimeout)
	conn, err := c.dialer.DialContext(dialCtx, "tcp", addr.String())
	cancel()
	if err != nil {
		return fail(ErrConnectionFailed, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(c.readTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return fail(ErrConnectionFailed, err)
	}

	// Registered after the deadline above so a cancellation is never
	// overwritten by it.
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Unix(1, 0))
	})
	defer stop()

	if _, err := conn.Write(EncodeHandshake(addr.Host, addr.Port, c.protocolVersion, c.token)); err != nil {
		return fail(ErrConnectionFailed, err)
	}
	enter(StateHandshakeSent)

	resp, err := readResponse(conn, enter)
	if err != nil {
		return fail(errorKind(err), err)
	}

	enter(StateDecoded)
	return resp, nil
}

// PingAll pings multiple servers concurrently. It returns a [Result]
// for each address, in the same order.
//
// At most the configured concurrency (see [WithConcurrency]) pings run
// at once. Each ping is independent; a failure only sets the Error
// field of its own Result.
func (c *Client) PingAll(ctx context.Context, addrs ...ServerAddress) ([]Result, error) {
	results := make([]Result, len(addrs))
	var wg sync.WaitGroup

	// Semaphore to limit concurrency.
	sem := make(chan struct{}, c.concurrency)

Loop:
	for i, addr := range addrs {
		select {
		case <-ctx.Done():
			// Fill remaining results with context error.
			for j := i; j < len(addrs); j++ {
				results[j] = Result{
					Address: addrs[j],
					Error:   ctx.Err(),
				}
			}
			// Active goroutines still have to finish.
			break Loop
		default:
		}

		wg.Add(1)
		sem <- struct{}{}

		go func(idx int, a ServerAddress) {
			defer wg.Done()
			defer func() { <-sem }() // Release semaphore
			defer func() {
				if r := recover(); r != nil {
					results[idx] = Result{
						Address: a,
						Error:   fmt.Errorf("%w: %v", ErrInternalPanic, r),
					}
				}
			}()

			start := time.Now()
			resp, err := c.Ping(ctx, a)
			results[idx] = Result{
				Address:  a,
				Response: resp,
				Latency:  time.Since(start),
				Error:    err,
			}
		}(i, addr)
	}

	wg.Wait()
	if ctx.Err() != nil {
		return results, ctx.Err()
	}
	return results, nil
}
