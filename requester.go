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
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"
)

/***********************
 *   Constants         *
 ***********************/

const (
	apiVersion    = "v10"
	baseApiUrl    = "https://discord.com/api/" + apiVersion
	maxRetries    = 5
	maxRequestAge = 10 * time.Second
	headerReason  = "X-Audit-Log-Reason"
)

/***********************
 *   Requester         *
 ***********************/

// requester handles HTTP requests with Discord rate limit compliance,
// serializing every request through an HTTPRatelimiter ticket.
type requester struct {
	client               *http.Client
	token                string
	ratelimiter          HTTPRatelimiter
	userAgent            string
	logger               Logger
	retryableStatusCodes map[int]struct{}
}

// newRequester creates a new Requester with the given bot token and logger.
func newRequester(client *http.Client, token string, logger Logger) *requester {
	if client == nil {
		client = &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,

				MaxIdleConns:        500,
				MaxIdleConnsPerHost: 100,
				MaxConnsPerHost:     200,

				IdleConnTimeout:       120 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,

				DisableKeepAlives: false,
				ForceAttemptHTTP2: true,
			},
		}
	}

	return &requester{
		client:      client,
		token:       "Bot " + token,
		ratelimiter: NewHTTPRatelimiter(logger),
		userAgent:   "DiscordBot (goda)",
		logger:      logger,
		retryableStatusCodes: map[int]struct{}{
			429: {}, 500: {}, 502: {}, 503: {}, 504: {},
		},
	}
}

// Shutdown gracefully closes the underlying HTTP client's idle connections
// and stops the ratelimiter's bucket actors.
//
// It should be called before exiting your application to ensure
// that any idle connections in the HTTP transport are closed cleanly,
// preventing resource leaks and keeping a clean shutdown process.
func (r *requester) Shutdown() {
	if r.client != nil {
		if tr, ok := r.client.Transport.(interface{ CloseIdleConnections() }); ok {
			tr.CloseIdleConnections()
		}
	}
	r.ratelimiter.Close()
}

// do sends an HTTP request, admitted through the ratelimiter's ticket
// protocol, with retry handling for 429s and retryable server errors.
func (r *requester) do(method, url string, body []byte, authenticateWithToken bool, reason string) (*http.Response, error) {
	routeKey := generateRouteKey(method, url)
	ctx := context.Background()

	for tries := range maxRetries {
		r.logger.Debug(fmt.Sprintf("Attempt #%d %s %s", tries+1, method, url))

		receiver, err := r.ratelimiter.Ticket(ctx, routeKey)
		if err != nil {
			return nil, err
		}
		sender, err := receiver.Wait(ctx)
		if err != nil {
			return nil, err
		}

		req, err := http.NewRequest(method, baseApiUrl+url, bytes.NewReader(body))
		if err != nil {
			r.logger.Error(fmt.Sprintf("Failed building request for %s %s: %v", method, url, err))
			sender.Headers(nil)
			return nil, err
		}

		if authenticateWithToken {
			req.Header.Set("Authorization", r.token)
		}
		req.Header.Set("User-Agent", r.userAgent)
		if method == "POST" || method == "PUT" || method == "PATCH" {
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("Accept", "application/json")

		if reason != "" {
			req.Header.Set(headerReason, reason)
		}

		resp, err := r.client.Do(req)
		if err != nil {
			r.logger.Warn(fmt.Sprintf("HTTP request error for %s %s: %v", method, url, err))
			sender.Headers(nil)
			time.Sleep(time.Second)
			continue
		}

		headers, herr := ParseRatelimitHeaders(resp.Header)
		if herr != nil {
			r.logger.Warn(fmt.Sprintf("Failed parsing ratelimit headers for %s %s: %v", method, url, herr))
		}

		if resp.StatusCode == 429 {
			retryAfter := parseRetryAfter(resp.Header)

			r.logger.Debug(fmt.Sprintf("429 rate limit hit on route %s, retrying after %v", routeKey, retryAfter))

			sender.Headers(headers)
			resp.Body.Close()
			time.Sleep(retryAfter)
			continue
		}

		if _, retry := r.retryableStatusCodes[resp.StatusCode]; retry {
			r.logger.Warn(fmt.Sprintf("Retryable status %d for %s %s, retrying...", resp.StatusCode, method, url))
			sender.Headers(headers)
			resp.Body.Close()
			time.Sleep(time.Second)
			continue
		}

		sender.Headers(headers)
		return resp, nil
	}

	r.logger.Error(fmt.Sprintf("Max retries reached for %s %s", method, url))
	return nil, errors.New("max retries reached")
}

// parseRetryAfter reads the Retry-After header Discord sends on a 429,
// falling back to one second when absent or unparsable.
func parseRetryAfter(h http.Header) time.Duration {
	retry := h.Get(headerRetryAfter)
	if retry == "" {
		return time.Second
	}
	sec, err := strconv.ParseFloat(retry, 64)
	if err != nil {
		return time.Second
	}
	whole, frac := math.Modf(sec)
	return time.Duration(whole)*time.Second + time.Duration(frac*1000)*time.Millisecond
}
