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
	"sync"
	"sync/atomic"
	"time"
)

// globalRateLimit stores the earliest time any bucket may resume, shared by
// every bucket actor of an HTTPRatelimiter.
type globalRateLimit int64

func (g *globalRateLimit) set(t time.Time) {
	newVal := t.UnixNano()
	for {
		oldVal := atomic.LoadInt64((*int64)(g))
		if newVal <= oldVal {
			return
		}
		if atomic.CompareAndSwapInt64((*int64)(g), oldVal, newVal) {
			return
		}
	}
}

func (g *globalRateLimit) get() time.Time {
	return time.Unix(0, atomic.LoadInt64((*int64)(g)))
}

// ticketRequest is one pending admission to a bucket's queue, grounded on
// twilight's ticket.rs channel-handshake: a caller deposits a request and a
// grant channel, and the bucket actor that owns the queue replies once the
// bucket (and the global lock) allow it.
type ticketRequest struct {
	ctx      context.Context
	routeKey string
	grant    chan TicketSender
}

// TicketReceiver is returned by HTTPRatelimiter.Ticket. Wait blocks until
// the ratelimiter grants a TicketSender, the caller's context is done (in
// which case the slot is freed, not consumed, per 4.6 "dropping the
// receiver cancels the request"), or the ratelimiter is closed.
type TicketReceiver struct {
	ch     chan TicketSender
	closed <-chan struct{}
}

// Wait blocks for the ticket to be granted.
func (r TicketReceiver) Wait(ctx context.Context) (TicketSender, error) {
	select {
	case s, ok := <-r.ch:
		if !ok {
			return TicketSender{}, ErrCanceled
		}
		return s, nil
	case <-r.closed:
		select {
		case s := <-r.ch:
			return s, nil
		default:
		}
		return TicketSender{}, ErrCanceled
	case <-ctx.Done():
		return TicketSender{}, ctx.Err()
	}
}

// TicketSender is handed to the caller once its ticket is granted. The
// caller must issue its HTTP request and report the response's parsed
// ratelimit headers exactly once via Headers.
type TicketSender struct {
	headersCh chan *RatelimitHeaders
}

// Headers reports the response's parsed ratelimit headers (nil if none were
// available, e.g. the request errored before a response arrived). Calling it
// more than once, or not at all, is safe: the bucket actor only ever reads
// the first value and otherwise treats the ticket conservatively.
func (s TicketSender) Headers(h *RatelimitHeaders) {
	select {
	case s.headersCh <- h:
	default:
	}
}

// HTTPRatelimiter serializes REST requests per route bucket and honors
// Discord's global ratelimit, discovering the bucket mapping for a route
// from the ratelimit headers callers report back after each request.
type HTTPRatelimiter interface {
	// Ticket requests admission to send a request matching routeKey (see
	// generateRouteKey). The returned TicketReceiver resolves once the
	// route's bucket (and the global lock) admit the request.
	Ticket(ctx context.Context, routeKey string) (TicketReceiver, error)

	// Close stops every per-bucket actor goroutine. Pending tickets are
	// canceled.
	Close()
}

// localHTTPRatelimiter is the default HTTPRatelimiter: one actor goroutine
// per discovered bucket, aliasing unlabeled route keys onto the bucket
// Discord eventually reports for them.
type localHTTPRatelimiter struct {
	mu            sync.Mutex
	bucketsByKey  map[string]*ratelimitBucket
	bucketsByName map[string]*ratelimitBucket

	global  globalRateLimit
	closeCh chan struct{}
	logger  Logger
}

// NewHTTPRatelimiter constructs an HTTPRatelimiter with no pre-seeded
// buckets; every route key discovers its bucket on its first response.
func NewHTTPRatelimiter(logger Logger) HTTPRatelimiter {
	return &localHTTPRatelimiter{
		bucketsByKey:  make(map[string]*ratelimitBucket),
		bucketsByName: make(map[string]*ratelimitBucket),
		closeCh:       make(chan struct{}),
		logger:        logger,
	}
}

func (rl *localHTTPRatelimiter) Ticket(ctx context.Context, routeKey string) (TicketReceiver, error) {
	b := rl.bucketFor(routeKey)

	req := ticketRequest{
		ctx:      ctx,
		routeKey: routeKey,
		grant:    make(chan TicketSender, 1),
	}

	select {
	case b.queue <- req:
		return TicketReceiver{ch: req.grant, closed: rl.closeCh}, nil
	case <-rl.closeCh:
		return TicketReceiver{}, ErrCanceled
	case <-ctx.Done():
		return TicketReceiver{}, ctx.Err()
	}
}

func (rl *localHTTPRatelimiter) Close() {
	select {
	case <-rl.closeCh:
	default:
		close(rl.closeCh)
	}
}

// bucketFor returns the bucket currently aliased to routeKey, creating (and
// starting an actor for) a fresh one-request bucket on first sight. A route
// key whose bucket is still unknown therefore queues behind at most one
// in-flight request for the same key: both enqueue onto the same actor.
func (rl *localHTTPRatelimiter) bucketFor(routeKey string) *ratelimitBucket {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if b, ok := rl.bucketsByKey[routeKey]; ok {
		return b
	}

	b := newRatelimitBucket()
	rl.bucketsByKey[routeKey] = b
	go rl.runBucket(b)
	return b
}

// runBucket is the single-writer actor for one bucket: it admits requests
// strictly one at a time, in arrival order, waiting out both the bucket's
// own reset and the shared global lock before each grant.
func (rl *localHTTPRatelimiter) runBucket(b *ratelimitBucket) {
	for {
		select {
		case <-rl.closeCh:
			return

		case req := <-b.queue:
			if req.ctx.Err() != nil {
				continue
			}

			if err := rl.awaitReady(req.ctx, b); err != nil {
				continue
			}

			headersCh := make(chan *RatelimitHeaders, 1)
			select {
			case req.grant <- TicketSender{headersCh: headersCh}:
			case <-req.ctx.Done():
				continue
			case <-rl.closeCh:
				return
			}

			select {
			case h := <-headersCh:
				rl.applyHeaders(req.routeKey, b, h)
			case <-req.ctx.Done():
				rl.applyHeaders(req.routeKey, b, nil)
			case <-rl.closeCh:
				return
			}
		}
	}
}

// awaitReady blocks until both the bucket's own window and the global lock
// admit a request, or ctx/closeCh end the wait early.
func (rl *localHTTPRatelimiter) awaitReady(ctx context.Context, b *ratelimitBucket) error {
	for {
		wait := b.earliestAdmissible()
		if g := rl.global.get(); g.After(time.Now()) {
			if d := time.Until(g); d > wait {
				wait = d
			}
		}
		if wait <= 0 {
			return nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-rl.closeCh:
			timer.Stop()
			return ErrCanceled
		}
	}
}

// applyHeaders folds a ticket's reported headers into its bucket and, once
// a bucket name is learned, aliases routeKey directly onto the named bucket
// (merging it with any other route key Discord groups under that name) so
// future tickets for routeKey queue on the shared bucket immediately.
func (rl *localHTTPRatelimiter) applyHeaders(routeKey string, b *ratelimitBucket, h *RatelimitHeaders) {
	b.apply(h)

	if h.IsGlobal() {
		rl.global.set(time.Now().Add(time.Duration(h.ResetAfterMS) * time.Millisecond))
	}
	if h == nil || h.globalOnly || h.Bucket == "" {
		return
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if named, ok := rl.bucketsByName[h.Bucket]; ok {
		rl.bucketsByKey[routeKey] = named
	} else {
		rl.bucketsByName[h.Bucket] = b
		rl.bucketsByKey[routeKey] = b
	}
}
