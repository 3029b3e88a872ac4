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
	"sort"
	"time"
)

// identifyDelay is the fixed pacing interval between grant ticks. Discord
// allows one Identify per max_concurrency shards every 5 seconds.
const identifyDelay = 5 * time.Second

// unboundedDailyTotal is the remaining/total seed used before the first
// Update call has reported a real session-start-limit snapshot. It lets a
// queue built with a nonzero max_concurrency grant permits from the moment
// it's constructed instead of behaving as if its daily budget were already
// exhausted; real callers always follow construction with an Update call
// carrying Discord's actual remaining/total figures.
const unboundedDailyTotal = 1 << 30

// IdentifyQueue paces Identify requests across a bot's shards so they never
// exceed Discord's session-start-limit concurrency and daily budget.
//
// A single IdentifyQueue instance is shared by every shard of a bot; each
// shard calls Request with its own shard number when it wants to identify
// and blocks until granted.
type IdentifyQueue interface {
	// Request blocks until the given shard number is granted permission to
	// identify, ctx is done, or the request is superseded by a later
	// Request call for the same shard number.
	Request(ctx context.Context, shardNumber int) error

	// Update applies a fresh session-start-limit snapshot, typically read
	// from a GET /gateway/bot response.
	Update(maxConcurrency, remaining int, resetAfter time.Duration, total int)

	// Close stops the queue's background actor, canceling any pending
	// requests.
	Close()
}

type identifyRequest struct {
	shard int
	done  chan bool
}

type identifyUpdate struct {
	maxConcurrency int
	remaining      int
	resetAfter     time.Duration
	total          int
}

// localIdentifyQueue is a single-writer-actor IdentifyQueue, grounded on
// twilight-rs's gateway-queue local queue: one goroutine owns all mutable
// state and is the only thing that touches the pending map, so no locking
// is needed anywhere else in this file.
//
// It handles both the single-bucket case (max_concurrency == 1, a small
// bot) and the large-bot bucketed case (max_concurrency > 1) uniformly:
// each 5 second tick grants up to max_concurrency identifies, which is
// exactly what a large bot's per-bucket concurrency allows.
type localIdentifyQueue struct {
	reqCh    chan identifyRequest
	updateCh chan identifyUpdate
	closeCh  chan struct{}
	logger   Logger
}

// NewIdentifyQueue constructs an IdentifyQueue starting from the given
// max_concurrency. A max_concurrency of 0 is treated as "unbounded": every
// request is granted instantly with no queueing at all.
func NewIdentifyQueue(maxConcurrency int, logger Logger) IdentifyQueue {
	q := &localIdentifyQueue{
		reqCh:    make(chan identifyRequest),
		updateCh: make(chan identifyUpdate),
		closeCh:  make(chan struct{}),
		logger:   logger,
	}
	go q.run(maxConcurrency)
	return q
}

func (q *localIdentifyQueue) Request(ctx context.Context, shardNumber int) error {
	done := make(chan bool, 1)
	select {
	case q.reqCh <- identifyRequest{shard: shardNumber, done: done}:
	case <-q.closeCh:
		return ErrCanceled
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case granted, ok := <-done:
		if !ok || !granted {
			return ErrCanceled
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *localIdentifyQueue) Update(maxConcurrency, remaining int, resetAfter time.Duration, total int) {
	select {
	case q.updateCh <- identifyUpdate{maxConcurrency: maxConcurrency, remaining: remaining, resetAfter: resetAfter, total: total}:
	case <-q.closeCh:
	}
}

func (q *localIdentifyQueue) Close() {
	select {
	case <-q.closeCh:
	default:
		close(q.closeCh)
	}
}

// run is the queue's single-writer actor loop. pending holds one
// outstanding request per shard number; order keeps the pending shard
// numbers sorted so the smallest-numbered shard is always granted first,
// matching the source's BTreeMap-ordered pop.
func (q *localIdentifyQueue) run(maxConcurrency int) {
	pending := make(map[int]chan bool)
	var order []int
	total := unboundedDailyTotal
	remaining := unboundedDailyTotal
	resetAt := time.Now().Add(24 * time.Hour)

	ticker := time.NewTicker(identifyDelay)
	defer ticker.Stop()

	insert := func(shard int, done chan bool) {
		if old, ok := pending[shard]; ok {
			// A newer request for the same shard supersedes the old one;
			// the old waiter is canceled, not granted.
			close(old)
		} else {
			i := sort.SearchInts(order, shard)
			order = append(order, 0)
			copy(order[i+1:], order[i:])
			order[i] = shard
		}
		pending[shard] = done
	}

	popSmallest := func() (chan bool, bool) {
		if len(order) == 0 {
			return nil, false
		}
		shard := order[0]
		order = order[1:]
		done := pending[shard]
		delete(pending, shard)
		return done, true
	}

	cancelAll := func() {
		for _, done := range pending {
			close(done)
		}
		pending = nil
		order = nil
	}

	for {
		select {
		case <-q.closeCh:
			cancelAll()
			return

		case u := <-q.updateCh:
			maxConcurrency = u.maxConcurrency
			remaining = u.remaining
			total = u.total
			if u.resetAfter > 0 {
				resetAt = time.Now().Add(u.resetAfter)
			}

		case req := <-q.reqCh:
			if maxConcurrency == 0 {
				req.done <- true
				continue
			}
			insert(req.shard, req.done)

		case <-ticker.C:
			if maxConcurrency == 0 {
				continue
			}
			granted := 0
			for granted < maxConcurrency {
				if len(order) == 0 {
					break
				}
				if remaining == 0 {
					wait := time.Until(resetAt)
					if wait > 0 {
						timer := time.NewTimer(wait)
						select {
						case <-timer.C:
						case <-q.closeCh:
							timer.Stop()
							cancelAll()
							return
						}
					}
					remaining = total
					resetAt = time.Now().Add(24 * time.Hour)
				}
				done, ok := popSmallest()
				if !ok {
					break
				}
				done <- true
				remaining--
				granted++
			}
		}
	}
}
