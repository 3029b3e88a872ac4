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
	"fmt"
)

// ShardId identifies a single shard within a bot's total shard count.
//
// A guild is handled by the shard for which (guild_id >> 22) % total == number.
type ShardId struct {
	number int
	total  int
}

// NewShardId constructs a ShardId, panicking if number >= total or total < 1.
//
// Use this constructor rather than a struct literal: it is the only place
// the (number < total, total >= 1) invariant is enforced.
func NewShardId(number, total int) ShardId {
	if total < 1 {
		panic(fmt.Sprintf("goda: shard total must be >= 1, got %d", total))
	}
	if number < 0 || number >= total {
		panic(fmt.Sprintf("goda: shard number %d out of range for total %d", number, total))
	}
	return ShardId{number: number, total: total}
}

// Number returns the zero-based shard number.
func (s ShardId) Number() int {
	return s.number
}

// Total returns the total number of shards.
func (s ShardId) Total() int {
	return s.total
}

// OwnsGuild reports whether this shard is responsible for the given guild.
func (s ShardId) OwnsGuild(guildID Snowflake) bool {
	if s.total == 1 {
		return true
	}
	return int((uint64(guildID)>>22)%uint64(s.total)) == s.number
}

// String renders the shard id as "[number, total]", matching Discord's own
// shard-array representation.
func (s ShardId) String() string {
	return fmt.Sprintf("[%d, %d]", s.number, s.total)
}
