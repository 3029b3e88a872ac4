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
	"time"
)

const (
	// commandsPerReset is the number of gateway commands Discord allows per
	// rolling 60 second window.
	commandsPerReset = 120

	// resetDuration is the width of the rolling window commandsPerReset is
	// measured over.
	resetDuration = 60 * time.Second

	// maxNonreservedCommandsPerReset is the floor a shard's usable capacity
	// never drops below, regardless of how frequently it must heartbeat.
	// Discord reserves headroom above this so a shard can always heartbeat
	// even if it has spent its command budget.
	maxNonreservedCommandsPerReset = commandsPerReset - 10
)

// CommandRatelimiter limits how many gateway commands (other than
// heartbeats, which always bypass it) a single shard may send per rolling
// 60 second window.
//
// Capacity shrinks as the shard's heartbeat interval shortens, since more
// frequent heartbeats reserve more of the 120-command budget; it never
// drops below maxNonreservedCommandsPerReset.
type CommandRatelimiter struct {
	max int

	permits chan struct{}
}

// commandRatelimiterCapacity computes the usable (non-heartbeat-reserved)
// capacity for a given heartbeat interval, per the formula:
//
//	reserved  = ceil(resetDuration / heartbeatInterval)
//	capacity  = max(commandsPerReset - 2*reserved, maxNonreservedCommandsPerReset)
func commandRatelimiterCapacity(heartbeatInterval time.Duration) int {
	if heartbeatInterval <= 0 {
		return maxNonreservedCommandsPerReset
	}
	reserved := int((resetDuration + heartbeatInterval - 1) / heartbeatInterval)
	capacity := commandsPerReset - 2*reserved
	if capacity < maxNonreservedCommandsPerReset {
		capacity = maxNonreservedCommandsPerReset
	}
	return capacity
}

// NewCommandRatelimiter constructs a CommandRatelimiter sized for the given
// heartbeat interval, starting fully loaded (every permit immediately
// available).
func NewCommandRatelimiter(heartbeatInterval time.Duration) *CommandRatelimiter {
	max := commandRatelimiterCapacity(heartbeatInterval)
	r := &CommandRatelimiter{
		max:     max,
		permits: make(chan struct{}, max),
	}
	for i := 0; i < max; i++ {
		r.permits <- struct{}{}
	}
	return r
}

// Max returns the ratelimiter's total capacity.
func (r *CommandRatelimiter) Max() int {
	return r.max
}

// Available reports how many permits are immediately available without
// blocking.
func (r *CommandRatelimiter) Available() int {
	return len(r.permits)
}

// Acquire blocks until a permit is available or ctx is done, consuming one
// permit on success. The permit is returned to the pool independently,
// resetDuration after being acquired — not in a single bulk refill, but one
// at a time as each individual permit's window elapses.
func (r *CommandRatelimiter) Acquire(ctx context.Context) error {
	select {
	case <-r.permits:
		time.AfterFunc(resetDuration, r.release)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// release returns a single permit to the pool. If the pool is already full,
// the permit is simply dropped.
func (r *CommandRatelimiter) release() {
	select {
	case r.permits <- struct{}{}:
	default:
	}
}
