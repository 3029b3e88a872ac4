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

import (
	"io"

	"github.com/valyala/gozstd"
)

// zstdChanWriter is an io.Writer that forwards every Write call as one
// decoded chunk on a channel, so a streaming zstd reader running on its own
// goroutine can hand decoded bytes back to the inflater without blocking.
type zstdChanWriter struct {
	ch chan []byte
}

func (w *zstdChanWriter) Write(d []byte) (int, error) {
	out := AcquireBytes(len(d))
	*out = append(*out, d...)
	w.ch <- *out
	return len(d), nil
}

// zstdInflater implements Inflater for Discord's zstd-stream transport
// compression. A streaming gozstd.Reader runs on its own goroutine, fed
// through an io.Pipe by Extend and draining decoded chunks onto a channel
// that TryTakeMessage polls.
type zstdInflater struct {
	pw      *io.PipeWriter
	decoded chan []byte
}

// newZstdInflater constructs a zstd-stream Inflater.
func newZstdInflater() Inflater {
	z := &zstdInflater{}
	z.start()
	return z
}

func (z *zstdInflater) start() {
	pr, pw := io.Pipe()
	decoded := make(chan []byte, 4)
	zr := gozstd.NewReader(pr)
	go zr.WriteTo(&zstdChanWriter{ch: decoded})
	z.pw = pw
	z.decoded = decoded
}

func (z *zstdInflater) Extend(data []byte) error {
	_, err := z.pw.Write(data)
	return err
}

func (z *zstdInflater) TryTakeMessage() ([]byte, bool, error) {
	select {
	case buf := <-z.decoded:
		return buf, true, nil
	default:
		return nil, false, nil
	}
}

// Reset tears down the current pipe/reader goroutine and starts a fresh
// one. zstd frame state is not valid across a reconnect, the same as
// zlib-stream.
func (z *zstdInflater) Reset() {
	if z.pw != nil {
		z.pw.CloseWithError(io.ErrClosedPipe)
	}
	z.start()
}
