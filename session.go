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
	"sync/atomic"

	"github.com/bytedance/sonic"
)

// Session is a shard's server-side session state, produced by a Ready event
// and reusable via Resume for a short grace period.
//
// A Session can be persisted between process restarts so that a shard can
// resume instead of re-identifying on the next run; it is the only piece of
// gateway state this library intends consumers to persist.
type Session struct {
	id  string
	seq atomic.Uint64
}

// NewSession constructs a Session from a session id and starting sequence.
func NewSession(id string, sequence uint64) *Session {
	s := &Session{id: id}
	s.seq.Store(sequence)
	return s
}

// ID returns the session id assigned by Discord in the Ready event.
func (s *Session) ID() string {
	if s == nil {
		return ""
	}
	return s.id
}

// Sequence returns the last sequence number observed on this session.
func (s *Session) Sequence() uint64 {
	if s == nil {
		return 0
	}
	return s.seq.Load()
}

// UpdateSequence advances the stored sequence number. Dispatch events carry
// monotonically increasing sequence numbers within a session; out-of-order
// updates (a smaller seq arriving after a larger one) are ignored.
func (s *Session) UpdateSequence(seq uint64) {
	for {
		cur := s.seq.Load()
		if seq <= cur {
			return
		}
		if s.seq.CompareAndSwap(cur, seq) {
			return
		}
	}
}

// sessionJSON is the serializable shape of Session: {id, sequence}.
type sessionJSON struct {
	ID       string `json:"id"`
	Sequence uint64 `json:"sequence"`
}

// MarshalJSON encodes the session as {"id": ..., "sequence": ...} so a
// consumer can persist it across process restarts.
func (s *Session) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(sessionJSON{ID: s.ID(), Sequence: s.Sequence()})
}

// UnmarshalJSON decodes a previously persisted session.
func (s *Session) UnmarshalJSON(buf []byte) error {
	var v sessionJSON
	if err := sonic.Unmarshal(buf, &v); err != nil {
		return err
	}
	s.id = v.ID
	s.seq.Store(v.Sequence)
	return nil
}
