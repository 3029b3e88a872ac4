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
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	reSnowflake     = regexp.MustCompile(`\d{17,19}`)
	reReactions     = regexp.MustCompile(`/reactions/.*`)
	reWebhooksToken = regexp.MustCompile(`/webhooks/(\d{17,19})/[^/?]+`)
)

const oldMessageCutoffMS = 14 * 24 * 60 * 60 * 1000 // 14 days in milliseconds

// generateRouteKey derives the 3.6 route-key for a request: the HTTP method
// plus the path with every snowflake normalized to a placeholder, except the
// major-parameter occurrence (channel id, guild id, or a webhook id+token
// pair), which is kept verbatim so routes sharing a major parameter share a
// bucket while routes differing only in a minor id (e.g. message id) don't.
func generateRouteKey(method, endpoint string) string {
	if strings.HasPrefix(endpoint, "/interactions/") && strings.HasSuffix(endpoint, "/callback") {
		return method + ":/interactions/:id/:token/callback"
	}

	majorParam := reSnowflake.FindString(endpoint)

	if majorParam == "" {
		baseRoute := reSnowflake.ReplaceAllString(endpoint, ":id")
		baseRoute = reReactions.ReplaceAllString(baseRoute, "/reactions/:reaction")
		baseRoute = reWebhooksToken.ReplaceAllString(baseRoute, "/webhooks/:id/:token")
		return method + ":" + baseRoute
	}

	var b strings.Builder
	b.Grow(len(endpoint) + 20)

	start := 0
	firstFound := false
	for _, loc := range reSnowflake.FindAllStringIndex(endpoint, -1) {
		b.WriteString(endpoint[start:loc[0]])

		id := endpoint[loc[0]:loc[1]]
		if !firstFound && id == majorParam {
			b.WriteString(id)
			firstFound = true
		} else {
			b.WriteString(":id")
		}
		start = loc[1]
	}
	b.WriteString(endpoint[start:])

	baseRoute := b.String()

	baseRoute = reReactions.ReplaceAllString(baseRoute, "/reactions/:reaction")

	if method == "DELETE" && strings.HasPrefix(endpoint, "/channels/") && strings.Contains(endpoint, "/messages/") {
		lastSlash := strings.LastIndex(endpoint, "/")
		if lastSlash != -1 && lastSlash < len(endpoint)-1 {
			messageIDStr := endpoint[lastSlash+1:]
			if messageID, err := strconv.ParseUint(messageIDStr, 10, 64); err == nil {
				snow := Snowflake(messageID)
				if time.Now().UnixMilli()-snow.Timestamp().UnixMilli() > oldMessageCutoffMS {
					baseRoute += "/oldmessage"
				}
			}
		}
	}

	return method + ":" + baseRoute
}

// ratelimitBucket is the 3.6 ratelimit bucket record. Its queue channel is
// the bucket's FIFO actor inbox: a single goroutine (run by httpRatelimiter)
// owns name/limit/remaining/resetAt/resetAfter, so they're only ever
// touched with the mutex held by that goroutine or by a ticket applying the
// headers it collected.
type ratelimitBucket struct {
	sync.Mutex

	name       string
	limit      uint64
	remaining  uint64
	resetAt    time.Time
	resetAfter time.Duration

	queue chan ticketRequest
}

// newRatelimitBucket creates a bucket optimistic about its first request:
// remaining starts at 1 so a route with an as-yet-undiscovered bucket isn't
// blocked waiting on a reset that was never observed.
func newRatelimitBucket() *ratelimitBucket {
	return &ratelimitBucket{
		remaining: 1,
		queue:     make(chan ticketRequest),
	}
}

// earliestAdmissible returns how long, from now, a caller must wait before
// this bucket admits another request.
func (b *ratelimitBucket) earliestAdmissible() time.Duration {
	b.Lock()
	defer b.Unlock()

	if b.remaining > 0 || b.resetAt.IsZero() {
		return 0
	}
	return time.Until(b.resetAt)
}

// apply folds a parsed header set into the bucket's state. A nil headers
// value (no information available) conservatively decrements remaining
// without touching resetAt, per 4.6 item 5 / the ticket.rs drop semantics.
func (b *ratelimitBucket) apply(h *RatelimitHeaders) {
	b.Lock()
	defer b.Unlock()

	if h == nil {
		if b.remaining > 0 {
			b.remaining--
		}
		return
	}
	if h.globalOnly {
		return
	}

	b.name = h.Bucket
	b.limit = h.Limit
	b.remaining = h.Remaining
	b.resetAt = time.UnixMilli(int64(h.ResetAtMS))
	b.resetAfter = time.Duration(h.ResetAfterMS) * time.Millisecond
}
