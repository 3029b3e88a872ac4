/************************************************************************************
 *
 * goda (Golang Optimized Discord API), A Lightweight Go library for Discord API
 *
 * SPDX-License-Identifier: BSD-3-Clause
 *
 * Copyright 2025 Marouane Souiri
 *
 * Licensed under the BSD 3-Clause License.
 * See the LICENSE file for details.
 *
 ************************************************************************************/

package goda

// CompressionMode selects how a shard's gateway transport is compressed.
type CompressionMode int

const (
	// CompressionOff sends and receives uncompressed JSON text frames.
	CompressionOff CompressionMode = iota

	// CompressionZlibStream enables Discord's transport-wide zlib stream
	// compression (the `compress=zlib-stream` gateway URL parameter): every
	// payload the gateway sends is a fragment of one continuous zlib
	// stream for the life of the connection, flushed after each message
	// with the four-byte suffix 00 00 FF FF.
	CompressionZlibStream

	// CompressionZstdStream enables Discord's zstd transport compression
	// (the `compress=zstd-stream` gateway URL parameter), the newer
	// alternative to zlib-stream with the same one-stream-per-connection
	// framing contract.
	CompressionZstdStream
)

// queryParam returns the `compress=` URL query value for this mode, or the
// empty string for CompressionOff (no parameter is sent).
func (m CompressionMode) queryParam() string {
	switch m {
	case CompressionZlibStream:
		return "zlib-stream"
	case CompressionZstdStream:
		return "zstd-stream"
	default:
		return ""
	}
}

// Inflater incrementally decompresses a shard's gateway transport stream.
//
// Discord's stream compression modes compress the entire connection as one
// continuous stream rather than message-by-message, so an Inflater must
// accumulate raw bytes across calls and only yield a decoded message once a
// complete one has arrived.
type Inflater interface {
	// Extend appends a chunk of raw bytes read off the websocket to the
	// inflater's internal buffer.
	Extend(data []byte) error

	// TryTakeMessage attempts to decode one complete message from the bytes
	// accumulated so far. It returns (nil, false, nil) when no complete
	// message is available yet and more input is needed.
	TryTakeMessage() ([]byte, bool, error)

	// Reset clears all internal state, discarding any partially buffered
	// message. Called when a shard reconnects, since compression streams
	// are not valid across connections.
	Reset()
}

// passthroughInflater is the CompressionOff Inflater: every Extend call is
// itself a complete message.
type passthroughInflater struct {
	buf []byte
}

// newPassthroughInflater constructs the no-compression Inflater.
func newPassthroughInflater() Inflater {
	return &passthroughInflater{}
}

func (p *passthroughInflater) Extend(data []byte) error {
	p.buf = append(p.buf[:0], data...)
	return nil
}

func (p *passthroughInflater) TryTakeMessage() ([]byte, bool, error) {
	if len(p.buf) == 0 {
		return nil, false, nil
	}
	msg := p.buf
	p.buf = nil
	return msg, true, nil
}

func (p *passthroughInflater) Reset() {
	p.buf = nil
}

// NewInflater constructs the Inflater appropriate for the given compression
// mode.
func NewInflater(mode CompressionMode) Inflater {
	switch mode {
	case CompressionZlibStream:
		return newZlibInflater()
	case CompressionZstdStream:
		return newZstdInflater()
	default:
		return newPassthroughInflater()
	}
}
