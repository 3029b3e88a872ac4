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
	"log"
	"os"
	"strings"
	"time"
)

/*****************************
 *          Client
 *****************************/

// Client manages your Discord connection at a high level, grouping multiple shards together.
//
// It provides:
//   - Central configuration for your bot token, intents, and logger.
//   - REST API access via restApi.
//   - Event dispatching via dispatcher.
//   - Shard management for scalable Gateway connections.
//
// Create a Client using goda.New() with desired options, then call Start().
type Client struct {
	ctx            context.Context
	Logger         Logger        // logger used throughout the client
	workerPool     WorkerPool    // worker pool used to run tasks asynchronously
	identifyQueue  IdentifyQueue // paces Identify payloads across shards
	token          string        // bot token (without "Bot " prefix)
	intents        GatewayIntent // configured Gateway intents
	compression    CompressionMode
	largeThreshold int
	cacheFlags     CacheFlags
	messageCacheSize int
	shards         []*Shard // managed Gateway shards
	*restApi                // REST API client
	CacheManager            // CacheManager for caching discord entities
	*dispatcher              // event dispatcher
}

// clientOption defines a function used to configure Client during creation.
type clientOption func(*Client)

/*****************************
 *       Options
 *****************************/

// WithToken sets the bot token for your client.
//
// Usage:
//
//	y := goda.New(context.Background(), goda.WithToken("your_bot_token"))
//
// Notes:
//   - Logs fatal and exits if token is empty or obviously invalid (< 50 chars).
//   - Removes "Bot " prefix automatically if provided.
//
// Warning: Never share your bot token publicly.
func WithToken(token string) clientOption {
	if token == "" {
		log.Fatal("WithToken: token must not be empty")
	}
	if len(token) < 50 {
		log.Fatal("WithToken: token invalid")
	}
	if strings.HasPrefix(token, "Bot ") {
		token = strings.Split(token, " ")[1]
	}
	return func(c *Client) {
		c.token = token
	}
}

// WithLogger sets a custom Logger implementation for your client.
//
// Usage:
//
//	y := goda.New(context.Background(), goda.WithLogger(myLogger))
//
// Logs fatal and exits if logger is nil.
func WithLogger(logger Logger) clientOption {
	if logger == nil {
		log.Fatal("WithLogger: logger must not be nil")
	}
	return func(c *Client) {
		c.Logger = logger
	}
}

// WithWorkerPool sets a custom workerpool implementation for your client.
//
// Usage:
//
//	y := goda.New(context.Background(), goda.WithWorkerPool(myWorkerPool))
//
// Logs fatal and exits if workerpool is nil.
func WithWorkerPool(workerPool WorkerPool) clientOption {
	if workerPool == nil {
		log.Fatal("WithWorkerPool: workerPool must not be nil")
	}
	return func(c *Client) {
		c.workerPool = workerPool
	}
}

// WithCacheManager sets a custom CacheManager implementation for your client.
//
// Usage:
//
//	y := goda.New(context.Background(), goda.WithCacheManager(myCacheManager))
//
// Logs fatal and exits if cacheManager is nil.
func WithCacheManager(cacheManager CacheManager) clientOption {
	if cacheManager == nil {
		log.Fatal("WithCacheManager: cacheManager must not be nil")
	}
	return func(c *Client) {
		c.CacheManager = cacheManager
	}
}

// WithIdentifyQueue sets a custom IdentifyQueue implementation for pacing
// Identify payloads across the client's shards.
//
// Usage:
//
//	y := goda.New(context.Background(), goda.WithIdentifyQueue(myQueue))
//
// Logs fatal and exits if the provided queue is nil.
func WithIdentifyQueue(queue IdentifyQueue) clientOption {
	if queue == nil {
		log.Fatal("WithIdentifyQueue: queue must not be nil")
	}
	return func(c *Client) {
		c.identifyQueue = queue
	}
}

// WithCompression sets the gateway transport compression mode for every
// shard the client creates.
func WithCompression(mode CompressionMode) clientOption {
	return func(c *Client) {
		c.compression = mode
	}
}

// WithLargeThreshold sets the member count threshold (50-250) above which
// a guild is considered "large" and offline members are not sent in the
// initial Guild Create.
func WithLargeThreshold(threshold int) clientOption {
	return func(c *Client) {
		c.largeThreshold = threshold
	}
}

// WithCacheFlags selects which resource kinds the client's cache tracks.
// Defaults to every resource kind enabled.
func WithCacheFlags(flags CacheFlags) clientOption {
	return func(c *Client) {
		c.cacheFlags = flags
	}
}

// WithMessageCacheSize sets the per-channel message ring capacity. Must be
// > 0 if the MESSAGE resource kind is enabled (the default).
func WithMessageCacheSize(size int) clientOption {
	if size <= 0 {
		log.Fatal("WithMessageCacheSize: size must be > 0")
	}
	return func(c *Client) {
		c.messageCacheSize = size
	}
}

// WithIntents sets Gateway intents for the client shards.
//
// Usage:
//
//	y := goda.New(context.Background(), goda.WithIntents(GatewayIntentGuilds, GatewayIntentMessageContent))
//
// Also supports bitwise OR usage:
//
//	y := goda.New(context.Background(), goda.WithIntents(GatewayIntentGuilds | GatewayIntentMessageContent))
func WithIntents(intents ...GatewayIntent) clientOption {
	var totalIntents GatewayIntent
	for _, intent := range intents {
		totalIntents |= intent
	}
	return func(c *Client) {
		c.intents = totalIntents
	}
}

/*****************************
 *       Constructor
 *****************************/

// New creates a new Client instance with provided options.
//
// Example:
//
//	y := goda.New(
//	    context.Background(),
//	    goda.WithToken("my_bot_token"),
//	    goda.WithIntents(GatewayIntentGuilds, GatewayIntentMessageContent),
//	    goda.WithLogger(myLogger),
//	)
//
// Defaults:
//   - Logger: stdout logger at Info level.
//   - Intents: GatewayIntentGuilds | GatewayIntentGuildMessages | GatewayIntentGuildMembers
func New(ctx context.Context, options ...clientOption) *Client {
	if ctx == nil {
		ctx = context.Background()
	}

	client := &Client{
		ctx:    ctx,
		Logger: NewDefaultLogger(os.Stdout, LogLevelInfoLevel),
		intents: GatewayIntentGuilds |
			GatewayIntentGuildMessages |
			GatewayIntentGuildMembers,
		compression:      CompressionZlibStream,
		largeThreshold:   defaultLargeThreshold,
		cacheFlags:       CacheFlagsAll,
		messageCacheSize: 100,
	}

	for _, option := range options {
		option(client)
	}

	if client.workerPool == nil {
		client.workerPool = NewDefaultWorkerPool(client.Logger)
	}

	client.restApi = newRestApi(
		newRequester(nil, client.token, client.Logger),
		client.Logger,
	)
	client.CacheManager = NewDefaultCache(client.cacheFlags, client.messageCacheSize)
	client.dispatcher = newDispatcher(client.Logger, client.workerPool, client.CacheManager)
	return client
}

/*****************************
 *       Start
 *****************************/

// Start initializes and connects all shards for the client.
//
// It performs the following steps:
//  1. Retrieves Gateway information from Discord.
//  2. Creates and connects shards with appropriate rate limiting.
//  3. Starts listening to Gateway events.
//
// The lifetime of the client is controlled by the context passed to New:
//   - If that context is `nil` (which New replaces with `context.Background()`)
//     or `context.Background()`, Start will block forever, running the client
//     until the program exits.
//   - If it is cancellable (e.g., created via context.WithCancel or context.WithTimeout),
//     the client will run until the context is cancelled or times out.
//     When the context is done, the client will shutdown gracefully and Start will return.
//
// This design gives you full control over the client's lifecycle.
// For typical usage where you want the bot to run continuously,
// simply pass `nil` as the context to New (recommended for beginners).
//
// Example usage:
//
//	// Run the client indefinitely (blocks forever)
//	client := goda.New(nil, goda.WithToken("my_bot_token"))
//	err := client.Start()
//
//	// Run the client with manual cancellation control
//	ctx, cancel := context.WithCancel(context.Background())
//	client := goda.New(ctx, goda.WithToken("my_bot_token"))
//	go func() {
//	    time.Sleep(time.Hour)
//	    cancel() // stops the client after 1 hour
//	}()
//	err := client.Start()
//
// Returns an error if Gateway information retrieval or shard connection fails.
func (c *Client) Start() error {
	gatewayBotData, err := c.restApi.FetchGatewayBot()
	if err != nil {
		return err
	}

	limit := gatewayBotData.SessionStartLimit
	if c.identifyQueue == nil {
		c.identifyQueue = NewIdentifyQueue(limit.MaxConcurrency, c.Logger)
	}
	c.identifyQueue.Update(
		limit.MaxConcurrency, limit.Remaining,
		time.Duration(limit.ResetAfter)*time.Millisecond, limit.Total,
	)

	for i := range gatewayBotData.Shards {
		shard := newShard(
			NewShardId(i, gatewayBotData.Shards), c.token, c.intents, c.largeThreshold,
			c.Logger, c.dispatcher, c.identifyQueue, c.compression,
		)
		if err := shard.Connect(c.ctx); err != nil {
			return err
		}
		c.shards = append(c.shards, shard)
	}

	<-c.ctx.Done()
	if err := c.ctx.Err(); err != nil {
		c.Logger.WithField("err", err).Error("Client shutdown due to context error")
	}
	c.Shutdown()
	return nil
}

/*****************************
 *       Shutdown
 *****************************/

// Shutdown cleanly shuts down the Client.
//
// It:
//   - Logs shutdown message.
//   - Shuts down the REST API client (closes idle connections).
//   - Shuts down all managed shards.
func (c *Client) Shutdown() {
	c.Logger.Info("Client shutting down")
	c.restApi.Shutdown()
	c.restApi = nil
	if c.identifyQueue != nil {
		c.identifyQueue.Close()
	}
	c.Logger = nil
	c.workerPool = nil
	for _, shard := range c.shards {
		shard.Shutdown()
	}
	c.shards = nil
}
