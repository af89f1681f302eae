// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package slp provides a client for the legacy Minecraft Server List
// Ping (SLP) protocol used by Java Edition servers before 1.7.
//
// It opens a TCP connection, sends the 1.6 style handshake, reads the
// single "kick" packet the server answers with and decodes it into a
// [Response] carrying the message of the day, the version string and
// the player counts.
//
// # Features
//
//   - Concurrent pinging: ping multiple servers in parallel with a
//     single call
//   - Short (1.3 and older) and extended (1.4 to 1.6) response formats
//   - SRV lookup: resolve _minecraft._tcp records via [Client.Resolve]
//   - Color translation: turn § formatting codes into IRC, ANSI or plain
//     text with [TranslateColorStyle]
//   - Typed errors: every failure is a [*PingError] carrying the address,
//     the protocol state and a sentinel kind for [errors.Is] matching
//   - Panic recovery: goroutines started by [Client.PingAll] are
//     protected and report [ErrInternalPanic]
//   - Context-aware: cancellation and deadlines via [context.Context]
//     on top of the connect and read timeouts
//   - Stateless: a [Client] only holds configuration, nothing is
//     cached between pings
//
// # Quick Start
//
//	c := slp.New()
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	addr, err := slp.ParseAddress("mc.example.com:25565")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := c.Ping(ctx, addr)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(resp.Describe(slp.ANSI{}))
//
// # Configuration
//
//	c := slp.New(
//	    // Give up on unreachable servers quickly.
//	    slp.WithConnectTimeout(2 * time.Second),
//
//	    // Slow servers get a little longer to answer.
//	    slp.WithReadTimeout(8 * time.Second),
//
//	    // Ping at most 4 servers at a time in PingAll.
//	    slp.WithConcurrency(4),
//
//	    // Query a specific DNS server for SRV records.
//	    slp.WithResolver("1.1.1.1"),
//	)
//
// Available options:
//
//   - [WithConnectTimeout]  : TCP connect timeout (default: 5s)
//   - [WithReadTimeout]     : time allowed for the whole exchange after connecting (default: 5s)
//   - [WithProtocolVersion] : protocol byte sent in the handshake (default: 78)
//   - [WithPingToken]       : plugin channel name sent in the handshake (default: "MC|PingHost")
//   - [WithConcurrency]     : max concurrent pings in PingAll (default: 16)
//   - [WithDialer]          : custom [Dialer], for example a SOCKS proxy
//   - [WithResolver]        : DNS server for SRV lookups (default: first nameserver in /etc/resolv.conf)
//   - [WithDNSClient]       : custom [dns.Client] for SRV lookups
//   - [WithLogger]          : zerolog logger for debug events (default: disabled)
//
// # Wire Format
//
// The handshake is written in one piece:
//
//	FE 01 FA                      ping marker
//	u16 len, UTF-16BE "MC|PingHost"
//	u16 7 + 2*len(host)           length of the remaining bytes
//	u8  78                        protocol version
//	u16 len, UTF-16BE host
//	u32 port
//
// The server answers with:
//
//	FF                            kick marker
//	u16 n                         payload length in UTF-16 code units
//	2n bytes UTF-16BE payload
//
// A payload made of exactly three fields separated by § is the short
// format: motd, online, max. A payload of six or more NUL separated
// fields is the extended format: "§1", protocol, version, motd, online,
// max. Anything else is reported as [ErrMalformedPayload].
//
// # Errors
//
// Sentinel errors for use with [errors.Is]:
//
//	var (
//	    ErrInvalidPort       // Port outside [0, 65565]; nothing was dialed
//	    ErrConnectionFailed  // Dial or handshake write failed
//	    ErrTruncatedResponse // Connection closed or timed out mid-response
//	    ErrUnexpectedMarker  // First response byte was not 0xFF
//	    ErrMalformedPayload  // Payload matches neither response format
//	    ErrInvalidHost       // Host is empty or not convertible to ASCII
//	    ErrNoSRVRecord       // No usable SRV record; the fallback address is returned
//	    ErrInternalPanic     // A panic was recovered in PingAll
//	)
//
// The upper bound of 65565 for ports is kept for compatibility with
// existing configurations; such ports simply fail to connect.
//
// [dns.Client]: https://pkg.go.dev/github.com/miekg/dns#Client
package slp
