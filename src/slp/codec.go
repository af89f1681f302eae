// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package slp

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// Legacy handshake constants.
const (
	// DefaultProtocolVersion is the protocol byte sent in the handshake (1.6.4).
	DefaultProtocolVersion byte = 78

	// DefaultPingToken is the plugin channel name of the ping plugin message.
	DefaultPingToken = "MC|PingHost"

	// DefaultPort is the port used when an address does not carry one.
	DefaultPort = 25565

	// MaxPort is the highest accepted port. It is above 65535 on purpose:
	// the bound is kept as the legacy bot had it.
	MaxPort = 65565
)

// Wire markers.
const (
	markerPing          byte = 0xFE
	markerPingPayload   byte = 0x01
	markerPluginMessage byte = 0xFA
	markerKick          byte = 0xFF
)

// Payload separators.
const (
	extendedSeparator = "\x00"
	shortSeparator    = "§"
)

// Field positions of an extended payload:
// "§1" NUL protocol NUL version NUL motd NUL online NUL max.
const (
	extendedFields     = 6
	extendedProtocolAt = 1
	extendedVersionAt  = 2
	extendedMOTDAt     = 3
	extendedOnlineAt   = 4
	extendedMaxAt      = 5
	shortFields        = 3
)

var utf16be = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// encodeUTF16 returns the UTF-16BE form of s. Invalid UTF-8 is
// replaced with U+FFFD first so the encoder cannot fail.
func encodeUTF16(s string) []byte {
	b, err := utf16be.NewEncoder().Bytes([]byte(strings.ToValidUTF8(s, "\uFFFD")))
	if err != nil {
		return nil
	}
	return b
}

// utf16Units returns the number of UTF-16 code units needed to encode s.
func utf16Units(s string) int {
	return len(encodeUTF16(s)) / 2
}

// EncodeLengthPrefixedUTF16 returns s as a big-endian uint16 count of
// UTF-16 code units followed by its UTF-16BE bytes.
//
// The count is not checked: s must not need more than 65535 code units.
func EncodeLengthPrefixedUTF16(s string) []byte {
	data := encodeUTF16(s)
	out := make([]byte, 2+len(data))
	binary.BigEndian.PutUint16(out[:2], uint16(len(data)/2))
	copy(out[2:], data)
	return out
}

// EncodeHandshake builds the legacy ping frame for host and port.
//
// Format:
//
//	[0xFE][0x01][0xFA]
//	[token: len-prefixed UTF-16BE]
//	[remaining: uint16 = 7 + 2*units(host)]
//	[protocol: 1]
//	[host: len-prefixed UTF-16BE]
//	[port: uint32]
func EncodeHandshake(host string, port int, protocolVersion byte, token string) []byte {
	var buf bytes.Buffer
	buf.WriteByte(markerPing)
	buf.WriteByte(markerPingPayload)
	buf.WriteByte(markerPluginMessage)
	buf.Write(EncodeLengthPrefixedUTF16(token))
	_ = binary.Write(&buf, binary.BigEndian, uint16(7+2*utf16Units(host)))
	buf.WriteByte(protocolVersion)
	buf.Write(EncodeLengthPrefixedUTF16(host))
	_ = binary.Write(&buf, binary.BigEndian, uint32(port))
	return buf.Bytes()
}

// EncodeResponse builds a kick frame carrying text, as a legacy
// server would answer a ping.
func EncodeResponse(text string) []byte {
	return append([]byte{markerKick}, EncodeLengthPrefixedUTF16(text)...)
}

// DecodeResponse decodes a complete kick frame.
//
// It never panics: any input yields either a [Response] or an error
// matching one of [ErrUnexpectedMarker], [ErrTruncatedResponse] or
// [ErrMalformedPayload].
func DecodeResponse(data []byte) (Response, error) {
	return ReadResponse(bytes.NewReader(data))
}

// ReadResponse reads one kick frame from r and decodes it. It performs
// exactly three reads: the marker byte, the length and the payload.
func ReadResponse(r io.Reader) (Response, error) {
	return readResponse(r, nil)
}

// readResponse is [ReadResponse] reporting each step to enter, if set.
func readResponse(r io.Reader, enter func(State)) (Response, error) {
	if enter == nil {
		enter = func(State) {}
	}

	enter(StateAwaitingMarker)
	var marker [1]byte
	if _, err := io.ReadFull(r, marker[:]); err != nil {
		return Response{}, fmt.Errorf("%w: reading marker: %w", ErrTruncatedResponse, err)
	}
	if marker[0] != markerKick {
		return Response{}, fmt.Errorf("%w: 0x%02X", ErrUnexpectedMarker, marker[0])
	}

	enter(StateAwaitingLength)
	var length uint16
	if err := binary.Read(r, binary.BigEndian, &length); err != nil {
		return Response{}, fmt.Errorf("%w: reading length: %w", ErrTruncatedResponse, err)
	}

	enter(StateAwaitingPayload)
	payload := make([]byte, int(length)*2)
	if _, err := io.ReadFull(r, payload); err != nil {
		return Response{}, fmt.Errorf("%w: reading %d byte payload: %w", ErrTruncatedResponse, len(payload), err)
	}

	text, err := utf16be.NewDecoder().Bytes(payload)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	return parsePayload(string(text))
}

// parsePayload splits the decoded response text into a [Response].
func parsePayload(text string) (Response, error) {
	fields := strings.Split(text, extendedSeparator)

	switch {
	case len(fields) == 1:
		parts := strings.Split(text, shortSeparator)
		if len(parts) != shortFields {
			return Response{}, fmt.Errorf("%w: %d section-separated fields", ErrMalformedPayload, len(parts))
		}
		online, limit, err := parseCounts(parts[1], parts[2])
		if err != nil {
			return Response{}, err
		}
		return Response{
			Format: FormatShort,
			MOTD:   parts[0],
			Online: online,
			Max:    limit,
		}, nil

	case len(fields) >= extendedFields:
		online, limit, err := parseCounts(fields[extendedOnlineAt], fields[extendedMaxAt])
		if err != nil {
			return Response{}, err
		}
		return Response{
			Format:   FormatExtended,
			MOTD:     fields[extendedMOTDAt],
			Version:  fields[extendedVersionAt],
			Protocol: fields[extendedProtocolAt],
			Online:   online,
			Max:      limit,
		}, nil

	default:
		return Response{}, fmt.Errorf("%w: %d NUL-separated fields", ErrMalformedPayload, len(fields))
	}
}

func parseCounts(online, limit string) (int, int, error) {
	o, err := strconv.Atoi(online)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: online count %q", ErrMalformedPayload, online)
	}
	m, err := strconv.Atoi(limit)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: max count %q", ErrMalformedPayload, limit)
	}
	return o, m, nil
}

// errorKind returns the sentinel error err matches, or nil.
func errorKind(err error) error {
	for _, kind := range []error{
		ErrInvalidPort,
		ErrConnectionFailed,
		ErrTruncatedResponse,
		ErrUnexpectedMarker,
		ErrMalformedPayload,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
