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

func TestHTTPRatelimiterGrantsImmediatelyWhenUnknown(t *testing.T) {
	rl := NewHTTPRatelimiter(nil)
	defer rl.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	receiver, err := rl.Ticket(ctx, "GET:/users/:id")
	if err != nil {
		t.Fatalf("Ticket() error = %v", err)
	}
	sender, err := receiver.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	sender.Headers(nil)
}

func TestHTTPRatelimiterSerializesSameBucket(t *testing.T) {
	rl := NewHTTPRatelimiter(nil)
	defer rl.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	order := make(chan int, 2)

	first, err := rl.Ticket(ctx, "POST:/channels/1/messages")
	if err != nil {
		t.Fatalf("Ticket() error = %v", err)
	}
	firstSender, err := first.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}

	go func() {
		second, err := rl.Ticket(ctx, "POST:/channels/1/messages")
		if err != nil {
			return
		}
		if _, err := second.Wait(ctx); err != nil {
			return
		}
		order <- 2
	}()

	time.Sleep(50 * time.Millisecond)
	order <- 1
	firstSender.Headers(&RatelimitHeaders{Bucket: "shared", Limit: 5, Remaining: 4})

	var got []int
	for i := 0; i < 2; i++ {
		select {
		case v := <-order:
			got = append(got, v)
		case <-ctx.Done():
			t.Fatalf("timed out waiting for ticket %d", i)
		}
	}

	if got[0] != 1 || got[1] != 2 {
		t.Fatalf("grant order = %v, want [1 2] (second ticket must wait for the first)", got)
	}
}

func TestHTTPRatelimiterWaitsForBucketReset(t *testing.T) {
	rl := NewHTTPRatelimiter(nil)
	defer rl.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	first, err := rl.Ticket(ctx, "POST:/channels/1/messages")
	if err != nil {
		t.Fatalf("Ticket() error = %v", err)
	}
	firstSender, err := first.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	firstSender.Headers(&RatelimitHeaders{
		Bucket:       "shared",
		Limit:        1,
		Remaining:    0,
		ResetAfterMS: 200,
		ResetAtMS:    uint64(time.Now().Add(200 * time.Millisecond).UnixMilli()),
	})

	start := time.Now()
	second, err := rl.Ticket(ctx, "POST:/channels/1/messages")
	if err != nil {
		t.Fatalf("Ticket() error = %v", err)
	}
	if _, err := second.Wait(ctx); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed < 150*time.Millisecond {
		t.Fatalf("second ticket granted after %s, want at least ~200ms", elapsed)
	}
}

func TestHTTPRatelimiterCanceledContextFreesSlot(t *testing.T) {
	rl := NewHTTPRatelimiter(nil)
	defer rl.Close()

	blockCtx, blockCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer blockCancel()

	first, err := rl.Ticket(blockCtx, "GET:/guilds/1")
	if err != nil {
		t.Fatalf("Ticket() error = %v", err)
	}
	firstSender, err := first.Wait(blockCtx)
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	firstSender.Headers(&RatelimitHeaders{
		Bucket: "g1", Limit: 1, Remaining: 0,
		ResetAtMS: uint64(time.Now().Add(time.Hour).UnixMilli()),
	})

	canceledCtx, cancel := context.WithCancel(context.Background())
	canceled, err := rl.Ticket(canceledCtx, "GET:/guilds/1")
	if err != nil {
		t.Fatalf("Ticket() error = %v", err)
	}
	cancel()
	if _, err := canceled.Wait(canceledCtx); err == nil {
		t.Fatalf("Wait() on canceled context should have returned an error")
	}
}
