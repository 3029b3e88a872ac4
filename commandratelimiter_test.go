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
	"context"
	"testing"
	"time"
)

func TestCommandRatelimiterCapacity(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
		want     int
	}{
		{"60s heartbeat", 60 * time.Second, 118},
		{"42500ms heartbeat", 42500 * time.Millisecond, 116},
		{"30s heartbeat", 30 * time.Second, 116},
		{"29999ms heartbeat", 29999 * time.Millisecond, 114},
		{"1ms heartbeat floors at 110", time.Millisecond, 110},
		{"500ms heartbeat floors at 110", 500 * time.Millisecond, 110},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := commandRatelimiterCapacity(tt.interval)
			if got != tt.want {
				t.Fatalf("commandRatelimiterCapacity(%s) = %d, want %d", tt.interval, got, tt.want)
			}
		})
	}
}

func TestCommandRatelimiterStartsFull(t *testing.T) {
	r := NewCommandRatelimiter(41250 * time.Millisecond)
	if got := r.Available(); got != r.Max() {
		t.Fatalf("Available() = %d, want %d (Max)", got, r.Max())
	}
}

func TestCommandRatelimiterAcquireConsumesPermit(t *testing.T) {
	r := NewCommandRatelimiter(60 * time.Second)
	before := r.Available()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := r.Acquire(ctx); err != nil {
		t.Fatalf("Acquire() returned error: %v", err)
	}
	if got := r.Available(); got != before-1 {
		t.Fatalf("Available() after Acquire = %d, want %d", got, before-1)
	}
}

func TestCommandRatelimiterAcquireBlocksWhenExhausted(t *testing.T) {
	r := NewCommandRatelimiter(60 * time.Second)
	for i := 0; i < r.Max(); i++ {
		if err := r.Acquire(context.Background()); err != nil {
			t.Fatalf("Acquire() %d returned error: %v", i, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := r.Acquire(ctx); err == nil {
		t.Fatalf("Acquire() on exhausted ratelimiter should have blocked until ctx deadline")
	}
}
