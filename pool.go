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
	"sync"
)

// bytesPool provides reusable byte slices for JSON marshaling/unmarshaling.
// Using different sizes for different use cases reduces allocations.
var (
	// smallBytesPool for small JSON payloads (< 4KB)
	smallBytesPool = sync.Pool{
		New: func() any {
			b := make([]byte, 0, 4096)
			return &b
		},
	}

	// mediumBytesPool for medium JSON payloads (< 64KB)
	mediumBytesPool = sync.Pool{
		New: func() any {
			b := make([]byte, 0, 65536)
			return &b
		},
	}

	// largeBytesPool for large JSON payloads (< 1MB)
	largeBytesPool = sync.Pool{
		New: func() any {
			b := make([]byte, 0, 1048576)
			return &b
		},
	}
)

// AcquireBytes gets a byte slice from the appropriate pool based on size hint.
// The returned slice has len=0; its capacity is that of the size class's
// pooled slices (4096, 65536 or 1048576 bytes when newly allocated), so for a
// sizeHint above 1048576 it is smaller than sizeHint.
func AcquireBytes(sizeHint int) *[]byte {
	if sizeHint <= 4096 {
		return smallBytesPool.Get().(*[]byte)
	} else if sizeHint <= 65536 {
		return mediumBytesPool.Get().(*[]byte)
	}
	return largeBytesPool.Get().(*[]byte)
}

// ReleaseBytes returns a byte slice to the appropriate pool.
// The slice is reset (len=0) but capacity is preserved.
func ReleaseBytes(b *[]byte) {
	if b == nil || *b == nil {
		return
	}

	// Reset length but keep capacity
	*b = (*b)[:0]

	cap := cap(*b)
	if cap <= 4096 {
		smallBytesPool.Put(b)
	} else if cap <= 65536 {
		mediumBytesPool.Put(b)
	} else if cap <= 1048576 {
		largeBytesPool.Put(b)
	}
	// Don't pool extremely large slices to avoid memory bloat
}
