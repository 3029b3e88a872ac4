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
	"errors"
	"net/http"
	"testing"
)

func TestParseRatelimitHeadersNoneIsUnlimited(t *testing.T) {
	h, err := ParseRatelimitHeaders(http.Header{})
	if err != nil {
		t.Fatalf("ParseRatelimitHeaders() error = %v, want nil", err)
	}
	if h != nil {
		t.Fatalf("ParseRatelimitHeaders() = %+v, want nil", h)
	}
}

func TestParseRatelimitHeadersAllPresent(t *testing.T) {
	header := http.Header{}
	header.Set(headerBucket, "abcd1234")
	header.Set(headerLimit, "5")
	header.Set(headerRemaining, "3")
	header.Set(headerReset, "1.25")
	header.Set(headerResetAfter, "0.5")

	h, err := ParseRatelimitHeaders(header)
	if err != nil {
		t.Fatalf("ParseRatelimitHeaders() error = %v", err)
	}
	if h.Bucket != "abcd1234" || h.Limit != 5 || h.Remaining != 3 {
		t.Fatalf("parsed headers = %+v, want bucket=abcd1234 limit=5 remaining=3", h)
	}
	if h.ResetAtMS != 1250 {
		t.Fatalf("ResetAtMS = %d, want 1250", h.ResetAtMS)
	}
	if h.ResetAfterMS != 500 {
		t.Fatalf("ResetAfterMS = %d, want 500", h.ResetAfterMS)
	}
}

func TestParseRatelimitHeadersSomeButNotAllIsError(t *testing.T) {
	header := http.Header{}
	header.Set(headerBucket, "abcd1234")
	header.Set(headerLimit, "5")
	// remaining, reset, reset-after deliberately missing.

	_, err := ParseRatelimitHeaders(header)
	if !errors.Is(err, ErrHeaderMissing) {
		t.Fatalf("ParseRatelimitHeaders() error = %v, want ErrHeaderMissing", err)
	}
}

func TestParseRatelimitHeadersUnparsableIsError(t *testing.T) {
	header := http.Header{}
	header.Set(headerBucket, "abcd1234")
	header.Set(headerLimit, "not-a-number")
	header.Set(headerRemaining, "3")
	header.Set(headerReset, "1.25")
	header.Set(headerResetAfter, "0.5")

	_, err := ParseRatelimitHeaders(header)
	if !errors.Is(err, ErrParsingInt) {
		t.Fatalf("ParseRatelimitHeaders() error = %v, want ErrParsingInt", err)
	}
}

func TestParseRatelimitHeadersGlobalOnly(t *testing.T) {
	header := http.Header{}
	header.Set(headerGlobal, "true")
	header.Set(headerResetAfter, "2")

	h, err := ParseRatelimitHeaders(header)
	if err != nil {
		t.Fatalf("ParseRatelimitHeaders() error = %v", err)
	}
	if !h.IsGlobal() {
		t.Fatalf("IsGlobal() = false, want true")
	}
	if h.ResetAfterMS != 2000 {
		t.Fatalf("ResetAfterMS = %d, want 2000", h.ResetAfterMS)
	}
}
