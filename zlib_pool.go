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
	"bytes"
	"compress/zlib"
	"io"
	"sync"
)

// zlibSuffix is the zlib flush suffix that Discord sends at the end of compressed messages.
// This indicates the end of a complete zlib-compressed payload.
var zlibSuffix = []byte{0x00, 0x00, 0xff, 0xff}

// zlibInflaterPool recycles zlibInflater instances (and the zlib.Reader
// they own) across shard reconnects, so a reconnect storm across many
// shards doesn't spike zlib decompressor allocations.
var zlibInflaterPool = sync.Pool{
	New: func() any { return &zlibInflater{} },
}

// AcquireZlibInflater gets a zlib-stream Inflater from the pool, already
// Reset and ready for a fresh connection.
func AcquireZlibInflater() Inflater {
	z := zlibInflaterPool.Get().(*zlibInflater)
	z.Reset()
	return z
}

// ReleaseZlibInflater returns a zlib-stream Inflater obtained from
// AcquireZlibInflater back to the pool.
func ReleaseZlibInflater(i Inflater) {
	if z, ok := i.(*zlibInflater); ok {
		z.Reset()
		zlibInflaterPool.Put(z)
	}
}

// zlibInflater implements Inflater for Discord's zlib-stream transport
// compression: incoming bytes accumulate in buf until they end with
// zlibSuffix, at which point the whole buffer is one complete zlib stream
// fragment ready to inflate.
type zlibInflater struct {
	buf    bytes.Buffer
	reader io.ReadCloser
}

// newZlibInflater constructs a zlib-stream Inflater.
func newZlibInflater() Inflater {
	return &zlibInflater{}
}

func (z *zlibInflater) Extend(data []byte) error {
	z.buf.Write(data)
	return nil
}

func (z *zlibInflater) TryTakeMessage() ([]byte, bool, error) {
	if !bytes.HasSuffix(z.buf.Bytes(), zlibSuffix) {
		return nil, false, nil
	}

	if z.reader == nil {
		reader, err := zlib.NewReader(&z.buf)
		if err != nil {
			return nil, false, err
		}
		z.reader = reader
	} else if resetter, ok := z.reader.(zlib.Resetter); ok {
		if err := resetter.Reset(&z.buf, nil); err != nil {
			return nil, false, err
		}
	}

	out := AcquireBytes(z.buf.Len() * 4)
	writer := bytes.NewBuffer(*out)
	if _, err := writer.ReadFrom(z.reader); err != nil && err != io.EOF {
		ReleaseBytes(out)
		return nil, false, err
	}
	z.buf.Reset()

	return writer.Bytes(), true, nil
}

func (z *zlibInflater) Reset() {
	z.buf.Reset()
	if z.reader != nil {
		z.reader.Close()
		z.reader = nil
	}
}

// DecompressOneShot decompresses a single zlib-compressed message outside
// of a streaming session (e.g. a buffered REST payload, not gateway
// traffic).
func DecompressOneShot(data []byte) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	return io.ReadAll(reader)
}

// IsZlibCompressed checks if data appears to be zlib-compressed.
// Zlib data starts with a specific header based on compression level.
func IsZlibCompressed(data []byte) bool {
	if len(data) < 2 {
		return false
	}
	// Check for zlib header (CMF + FLG)
	// Common values: 0x78 0x01, 0x78 0x9C, 0x78 0xDA
	return data[0] == 0x78 && (data[1] == 0x01 || data[1] == 0x9C || data[1] == 0xDA)
}

// HasZlibSuffix checks if data ends with the Discord zlib flush suffix.
func HasZlibSuffix(data []byte) bool {
	return bytes.HasSuffix(data, zlibSuffix)
}
