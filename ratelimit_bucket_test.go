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

import "testing"

func TestGenerateRouteKeyMajorParameterKept(t *testing.T) {
	got := generateRouteKey("DELETE", "/channels/123456789012345678/messages/987654321098765432")
	want := "DELETE:/channels/123456789012345678/messages/:id"
	if got != want {
		t.Fatalf("generateRouteKey() = %q, want %q", got, want)
	}
}

func TestGenerateRouteKeySameTemplateSameMajorShareBucket(t *testing.T) {
	a := generateRouteKey("DELETE", "/channels/123456789012345678/messages/111111111111111111")
	b := generateRouteKey("DELETE", "/channels/123456789012345678/messages/222222222222222222")
	if a != b {
		t.Fatalf("route keys for the same channel differ: %q vs %q", a, b)
	}
}

func TestGenerateRouteKeyDifferentMajorParamDiffers(t *testing.T) {
	a := generateRouteKey("DELETE", "/channels/111111111111111111/messages/999999999999999999")
	b := generateRouteKey("DELETE", "/channels/222222222222222222/messages/999999999999999999")
	if a == b {
		t.Fatalf("route keys for different channels should not share a bucket: %q", a)
	}
}

func TestGenerateRouteKeyWebhookTokenKept(t *testing.T) {
	got := generateRouteKey("POST", "/webhooks/123456789012345678/some-webhook-token")
	want := "POST:/webhooks/123456789012345678/some-webhook-token"
	if got != want {
		t.Fatalf("generateRouteKey() = %q, want %q", got, want)
	}
}

func TestGenerateRouteKeyInteractionCallback(t *testing.T) {
	got := generateRouteKey("POST", "/interactions/123456789012345678/some-token/callback")
	want := "POST:/interactions/:id/:token/callback"
	if got != want {
		t.Fatalf("generateRouteKey() = %q, want %q", got, want)
	}
}

func TestRatelimitBucketApplyNilConservativelyDecrements(t *testing.T) {
	b := newRatelimitBucket()
	b.remaining = 3

	b.apply(nil)

	if b.remaining != 2 {
		t.Fatalf("remaining = %d, want 2", b.remaining)
	}
}

func TestRatelimitBucketApplyHeadersOverwritesState(t *testing.T) {
	b := newRatelimitBucket()

	b.apply(&RatelimitHeaders{
		Bucket:       "abcd",
		Limit:        5,
		Remaining:    4,
		ResetAtMS:    1000,
		ResetAfterMS: 500,
	})

	if b.name != "abcd" || b.limit != 5 || b.remaining != 4 {
		t.Fatalf("bucket state after apply = %+v, want name=abcd limit=5 remaining=4", b)
	}
}
