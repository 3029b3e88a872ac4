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
	"math"
	"net/http"
	"strconv"
	"unicode/utf8"
)

// Ratelimit header names, as reported by Discord on every REST response.
const (
	headerBucket     = "X-RateLimit-Bucket"
	headerLimit      = "X-RateLimit-Limit"
	headerRemaining  = "X-RateLimit-Remaining"
	headerReset      = "X-RateLimit-Reset"
	headerResetAfter = "X-RateLimit-Reset-After"
	headerGlobal     = "X-RateLimit-Global"
	headerRetryAfter = "Retry-After"
	headerScope      = "X-RateLimit-Scope"
)

// RatelimitHeaders is the parsed form of a REST response's ratelimit
// headers, as reported back to an HTTPRatelimiter through a TicketSender.
//
// A nil *RatelimitHeaders means "no ratelimit information available" (the
// request errored before headers could be read, or the connection was
// dropped); the ratelimiter treats this conservatively rather than as
// "not ratelimited".
type RatelimitHeaders struct {
	// Bucket is the opaque bucket name Discord groups this route under.
	// Empty when the response carried no bucket name.
	Bucket string

	// Global is true when this response was limited by the global
	// ratelimit rather than (or in addition to) its bucket.
	Global bool

	// Limit is the bucket's total permit count per window.
	Limit uint64

	// Remaining is the number of permits left in the current window.
	Remaining uint64

	// ResetAtMS is the bucket's reset time, in Unix milliseconds.
	ResetAtMS uint64

	// ResetAfterMS is how long until the bucket resets, in milliseconds.
	ResetAfterMS uint64

	// globalOnly is set when the only tracked header present was
	// X-RateLimit-Global, i.e. a 429 with no per-bucket information.
	globalOnly bool
}

// IsGlobal reports whether h represents (or coincides with) a global
// ratelimit hit. A nil receiver is never global.
func (h *RatelimitHeaders) IsGlobal() bool {
	return h != nil && (h.globalOnly || h.Global)
}

// ParseRatelimitHeaders parses Discord's X-RateLimit-* response headers.
//
// Per 6.2: some-but-not-all of the tracked headers present is an error
// (HeaderMissing/HeaderNotUtf8/ParsingBool/ParsingFloat/ParsingInt); none
// present at all means the route is not ratelimited and (nil, nil) is
// returned, unless X-RateLimit-Global is set on its own, in which case a
// global-only result is returned.
func ParseRatelimitHeaders(h http.Header) (*RatelimitHeaders, error) {
	tracked := [...]string{headerBucket, headerLimit, headerRemaining, headerReset}

	parsed, err := parseRatelimitHeaderSet(h)
	if err == nil {
		return parsed, nil
	}

	for _, name := range tracked {
		if h.Get(name) != "" {
			return nil, err
		}
	}

	if h.Get(headerGlobal) == "" {
		return nil, nil
	}

	resetAfter, rerr := headerFloat(h, headerResetAfter)
	if rerr != nil {
		return &RatelimitHeaders{globalOnly: true}, nil
	}

	return &RatelimitHeaders{globalOnly: true, ResetAfterMS: floatSecondsToMS(resetAfter)}, nil
}

func parseRatelimitHeaderSet(h http.Header) (*RatelimitHeaders, error) {
	bucket, _ := headerStr(h, headerBucket)
	global, _ := headerBool(h, headerGlobal)

	limit, err := headerUint(h, headerLimit)
	if err != nil {
		return nil, err
	}
	remaining, err := headerUint(h, headerRemaining)
	if err != nil {
		return nil, err
	}
	reset, err := headerFloat(h, headerReset)
	if err != nil {
		return nil, err
	}
	resetAfter, err := headerFloat(h, headerResetAfter)
	if err != nil {
		return nil, err
	}

	return &RatelimitHeaders{
		Bucket:       bucket,
		Global:       global,
		Limit:        limit,
		Remaining:    remaining,
		ResetAtMS:    floatSecondsToMS(reset),
		ResetAfterMS: floatSecondsToMS(resetAfter),
	}, nil
}

func floatSecondsToMS(seconds float64) uint64 {
	return uint64(math.Ceil(seconds * 1000))
}

func headerStr(h http.Header, name string) (string, error) {
	v := h.Get(name)
	if v == "" {
		return "", fmt.Errorf("%w: %s", ErrHeaderMissing, name)
	}
	if !utf8.ValidString(v) {
		return "", fmt.Errorf("%w: %s", ErrHeaderNotUtf8, name)
	}
	return v, nil
}

func headerBool(h http.Header, name string) (bool, error) {
	s, err := headerStr(h, name)
	if err != nil {
		return false, err
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrParsingBool, name)
	}
	return v, nil
}

func headerUint(h http.Header, name string) (uint64, error) {
	s, err := headerStr(h, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrParsingInt, name)
	}
	return v, nil
}

func headerFloat(h http.Header, name string) (float64, error) {
	s, err := headerStr(h, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrParsingFloat, name)
	}
	return v, nil
}
