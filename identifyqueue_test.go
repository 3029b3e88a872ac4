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

func TestIdentifyQueueZeroConcurrencyGrantsInstantly(t *testing.T) {
	q := NewIdentifyQueue(0, nil)
	defer q.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	if err := q.Request(ctx, 3); err != nil {
		t.Fatalf("Request() returned error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Fatalf("Request() with max_concurrency=0 took %s, want near-instant", elapsed)
	}
}

func TestIdentifyQueueGrantsInShardOrder(t *testing.T) {
	q := NewIdentifyQueue(1, nil)
	defer q.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	order := make(chan int, 3)
	for _, shard := range []int{2, 0, 1} {
		shard := shard
		go func() {
			if err := q.Request(ctx, shard); err == nil {
				order <- shard
			}
		}()
	}
	// Give all three requests time to enqueue before the first tick fires.
	time.Sleep(50 * time.Millisecond)

	var got []int
	for i := 0; i < 3; i++ {
		select {
		case s := <-order:
			got = append(got, s)
		case <-ctx.Done():
			t.Fatalf("timed out waiting for grant %d", i)
		}
	}

	want := []int{0, 1, 2}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("grant order = %v, want %v", got, want)
		}
	}
}

func TestIdentifyQueueDuplicateRequestSupersedes(t *testing.T) {
	q := NewIdentifyQueue(1, nil)
	defer q.Close()

	staleCtx, staleCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer staleCancel()
	staleErr := make(chan error, 1)
	go func() { staleErr <- q.Request(staleCtx, 5) }()
	time.Sleep(20 * time.Millisecond)

	freshCtx, freshCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer freshCancel()
	if err := q.Request(freshCtx, 5); err != nil {
		t.Fatalf("fresh Request() for shard 5 returned error: %v", err)
	}

	select {
	case err := <-staleErr:
		if err == nil {
			t.Fatalf("stale Request() should have been canceled, not granted")
		}
	case <-time.After(time.Second):
		t.Fatalf("stale Request() never returned after being superseded")
	}
}
