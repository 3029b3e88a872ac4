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
	"os"
	"runtime/debug"
	"sync"
)

/*****************************
 *   EventhandlersManager
 *****************************/

// eventhandlersManager defines the interface for managing event handlers of a specific event type.
//
// Implementations must support adding handlers and dispatching raw JSON event data to those handlers.
type eventhandlersManager interface {
	// handleEvent unmarshals the raw JSON data and calls all registered handlers.
	handleEvent(cache CacheManager, shardID int, buf []byte)
	// addHandler adds a new handler function for the event type.
	addHandler(handler any)
}

/*****************************
 *        dispatcher
 *****************************/

// dispatcher manages registration of event handlers and dispatching of events.
//
// It stores handlers by event name string and invokes the correct handlers for incoming events.
//
// WARNING:
//   - This implementation is not fully thread-safe for handler registration. You must register
//     all handlers sequentially before starting event dispatching (usually at startup).
//   - Dispatching handlers is done asynchronously: each event is submitted as a task to the worker pool.
type dispatcher struct {
	logger             Logger
	cacheManager       CacheManager
	workerPool         WorkerPool
	handlersManagers   map[string]eventhandlersManager
	reconnectingHandlers []func(ReconnectingEvent)
	mu                 sync.RWMutex
}

// newDispatcher creates a new dispatcher instance.
//
// Every event that the cache can consume is preregistered here, even if no
// user handler is ever added for it, so cache population never depends on
// the caller having called an OnXxx method first.
//
// If logger is nil, it creates a default logger that writes to os.Stdout with info-level logging.
func newDispatcher(logger Logger, workerPool WorkerPool, cacheManager CacheManager) *dispatcher {
	if logger == nil {
		logger = NewDefaultLogger(os.Stdout, LogLevelInfoLevel)
	}
	if workerPool == nil {
		workerPool = NewDefaultWorkerPool(logger)
	}
	d := &dispatcher{
		logger:           logger,
		workerPool:       workerPool,
		cacheManager:     cacheManager,
		handlersManagers: make(map[string]eventhandlersManager, 48),
	}

	d.handlersManagers["READY"] = &readyHandlers{logger: logger}
	d.handlersManagers["RESUMED"] = &resumedHandlers{logger: logger}

	d.handlersManagers["GUILD_CREATE"] = &guildCreateHandlers{logger: logger}
	d.handlersManagers["GUILD_UPDATE"] = &guildUpdateHandlers{logger: logger}
	d.handlersManagers["GUILD_DELETE"] = &guildDeleteHandlers{logger: logger}
	d.handlersManagers["GUILD_EMOJIS_UPDATE"] = &guildEmojisUpdateHandlers{logger: logger}
	d.handlersManagers["GUILD_STICKERS_UPDATE"] = &guildStickersUpdateHandlers{logger: logger}
	d.handlersManagers["GUILD_INTEGRATIONS_UPDATE"] = &guildIntegrationsUpdateHandlers{logger: logger}

	d.handlersManagers["CHANNEL_CREATE"] = &channelCreateHandlers{logger: logger}
	d.handlersManagers["CHANNEL_UPDATE"] = &channelUpdateHandlers{logger: logger}
	d.handlersManagers["CHANNEL_DELETE"] = &channelDeleteHandlers{logger: logger}
	d.handlersManagers["CHANNEL_PINS_UPDATE"] = &channelPinsUpdateHandlers{logger: logger}

	d.handlersManagers["THREAD_CREATE"] = &threadCreateHandlers{logger: logger}
	d.handlersManagers["THREAD_UPDATE"] = &threadUpdateHandlers{logger: logger}
	d.handlersManagers["THREAD_DELETE"] = &threadDeleteHandlers{logger: logger}

	d.handlersManagers["GUILD_ROLE_CREATE"] = &guildRoleCreateHandlers{logger: logger}
	d.handlersManagers["GUILD_ROLE_UPDATE"] = &guildRoleUpdateHandlers{logger: logger}
	d.handlersManagers["GUILD_ROLE_DELETE"] = &guildRoleDeleteHandlers{logger: logger}

	d.handlersManagers["GUILD_MEMBER_ADD"] = &guildMemberAddHandlers{logger: logger}
	d.handlersManagers["GUILD_MEMBER_UPDATE"] = &guildMemberUpdateHandlers{logger: logger}
	d.handlersManagers["GUILD_MEMBER_REMOVE"] = &guildMemberRemoveHandlers{logger: logger}
	d.handlersManagers["GUILD_MEMBERS_CHUNK"] = &guildMembersChunkHandlers{logger: logger}

	d.handlersManagers["MESSAGE_CREATE"] = &messageCreateHandlers{logger: logger}
	d.handlersManagers["MESSAGE_UPDATE"] = &messageUpdateHandlers{logger: logger}
	d.handlersManagers["MESSAGE_DELETE"] = &messageDeleteHandlers{logger: logger}
	d.handlersManagers["MESSAGE_DELETE_BULK"] = &messageDeleteBulkHandlers{logger: logger}
	d.handlersManagers["MESSAGE_REACTION_ADD"] = &messageReactionAddHandlers{logger: logger}
	d.handlersManagers["MESSAGE_REACTION_REMOVE"] = &messageReactionRemoveHandlers{logger: logger}
	d.handlersManagers["MESSAGE_REACTION_REMOVE_ALL"] = &messageReactionRemoveAllHandlers{logger: logger}
	d.handlersManagers["MESSAGE_REACTION_REMOVE_EMOJI"] = &messageReactionRemoveEmojiHandlers{logger: logger}

	d.handlersManagers["VOICE_STATE_UPDATE"] = &voiceStateUpdateHandlers{logger: logger}
	d.handlersManagers["PRESENCE_UPDATE"] = &presenceUpdateHandlers{logger: logger}
	d.handlersManagers["USER_UPDATE"] = &userUpdateHandlers{logger: logger}

	d.handlersManagers["INTEGRATION_CREATE"] = &integrationCreateHandlers{logger: logger}
	d.handlersManagers["INTEGRATION_UPDATE"] = &integrationUpdateHandlers{logger: logger}
	d.handlersManagers["INTEGRATION_DELETE"] = &integrationDeleteHandlers{logger: logger}

	d.handlersManagers["STAGE_INSTANCE_CREATE"] = &stageInstanceCreateHandlers{logger: logger}
	d.handlersManagers["STAGE_INSTANCE_UPDATE"] = &stageInstanceUpdateHandlers{logger: logger}
	d.handlersManagers["STAGE_INSTANCE_DELETE"] = &stageInstanceDeleteHandlers{logger: logger}

	d.handlersManagers["GUILD_SCHEDULED_EVENT_CREATE"] = &guildScheduledEventCreateHandlers{logger: logger}
	d.handlersManagers["GUILD_SCHEDULED_EVENT_UPDATE"] = &guildScheduledEventUpdateHandlers{logger: logger}
	d.handlersManagers["GUILD_SCHEDULED_EVENT_DELETE"] = &guildScheduledEventDeleteHandlers{logger: logger}
	d.handlersManagers["GUILD_SCHEDULED_EVENT_USER_ADD"] = &guildScheduledEventUserAddHandlers{logger: logger}
	d.handlersManagers["GUILD_SCHEDULED_EVENT_USER_REMOVE"] = &guildScheduledEventUserRemoveHandlers{logger: logger}

	d.handlersManagers["INTERACTION_CREATE"] = &interactionCreateHandlers{logger: logger}

	return d
}

/*****************************
 *     Dispatch Event
 *****************************/

// dispatch sends raw event JSON data to all registered handlers for that event name.
//
// The eventName must exactly match the Discord event string (e.g., "MESSAGE_CREATE").
//
// This method submits each dispatch to the worker pool to avoid blocking the main event loop;
// if the pool's queue is full, the event is dropped and a warning is logged.
func (d *dispatcher) dispatch(shardID int, eventName string, data []byte) {
	d.logger.Debug("Event '" + eventName + "' dispatched")
	if !d.workerPool.Submit(func() {
		defer func() {
			if r := recover(); r != nil {
				d.logger.WithField("event", eventName).
					WithField("shard_id", shardID).
					WithField("panic", r).
					WithField("stack", string(debug.Stack())).
					Error("Recovered from panic while handling event")
			}
		}()

		d.mu.RLock()
		hm, ok := d.handlersManagers[eventName]
		d.mu.RUnlock()

		if ok {
			hm.handleEvent(d.cacheManager, shardID, data)
		}
	}) {
		d.logger.Warn("Dispatcher: dropped event '" + eventName + "' due to full queue")
	}
}

// dispatchReconnecting notifies listeners that a shard has begun a reconnect
// attempt. Unlike dispatch, this does not correspond to a Discord gateway
// payload, so it bypasses the handlersManagers table entirely.
func (d *dispatcher) dispatchReconnecting(shardID int, resuming bool) {
	d.mu.RLock()
	handlers := d.reconnectingHandlers
	d.mu.RUnlock()
	if len(handlers) == 0 {
		return
	}

	evt := ReconnectingEvent{ShardsID: shardID, Resuming: resuming}
	if !d.workerPool.Submit(func() {
		defer func() {
			if r := recover(); r != nil {
				d.logger.WithField("event", "RECONNECTING").
					WithField("shard_id", shardID).
					WithField("panic", r).
					Error("Recovered from panic while handling event")
			}
		}()
		for _, handler := range handlers {
			handler(evt)
		}
	}) {
		d.logger.Warn("Dispatcher: dropped synthetic 'RECONNECTING' event due to full queue")
	}
}

/*****************************
 *      Register Handlers
 *****************************/

// registerHandler is a helper used by every OnXxx method below: it looks up
// (or lazily creates via newManager) the eventhandlersManager for key and
// appends handler to it.
func (d *dispatcher) registerHandler(key string, newManager func() eventhandlersManager, handler any) {
	d.logger.Debug(key + " event handler registered")

	d.mu.Lock()
	defer d.mu.Unlock()

	hm, ok := d.handlersManagers[key]
	if !ok {
		hm = newManager()
		d.handlersManagers[key] = hm
	}
	hm.addHandler(handler)
}

// OnReady registers a handler function for 'READY' events.
func (d *dispatcher) OnReady(h func(ReadyEvent)) {
	d.registerHandler("READY", func() eventhandlersManager { return &readyHandlers{logger: d.logger} }, h)
}

// OnResumed registers a handler function for 'RESUMED' events.
func (d *dispatcher) OnResumed(h func(ResumedEvent)) {
	d.registerHandler("RESUMED", func() eventhandlersManager { return &resumedHandlers{logger: d.logger} }, h)
}

// OnReconnecting registers a handler function for the synthetic reconnecting
// event, fired whenever a shard begins a resume or fresh identify attempt.
func (d *dispatcher) OnReconnecting(h func(ReconnectingEvent)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.reconnectingHandlers = append(d.reconnectingHandlers, h)
}

// OnGuildCreate registers a handler function for 'GUILD_CREATE' events.
func (d *dispatcher) OnGuildCreate(h func(GuildCreateEvent)) {
	d.registerHandler("GUILD_CREATE", func() eventhandlersManager { return &guildCreateHandlers{logger: d.logger} }, h)
}

// OnGuildUpdate registers a handler function for 'GUILD_UPDATE' events.
func (d *dispatcher) OnGuildUpdate(h func(GuildUpdateEvent)) {
	d.registerHandler("GUILD_UPDATE", func() eventhandlersManager { return &guildUpdateHandlers{logger: d.logger} }, h)
}

// OnGuildDelete registers a handler function for 'GUILD_DELETE' events.
func (d *dispatcher) OnGuildDelete(h func(GuildDeleteEvent)) {
	d.registerHandler("GUILD_DELETE", func() eventhandlersManager { return &guildDeleteHandlers{logger: d.logger} }, h)
}

// OnGuildEmojisUpdate registers a handler function for 'GUILD_EMOJIS_UPDATE' events.
func (d *dispatcher) OnGuildEmojisUpdate(h func(GuildEmojisUpdateEvent)) {
	d.registerHandler("GUILD_EMOJIS_UPDATE", func() eventhandlersManager { return &guildEmojisUpdateHandlers{logger: d.logger} }, h)
}

// OnGuildStickersUpdate registers a handler function for 'GUILD_STICKERS_UPDATE' events.
func (d *dispatcher) OnGuildStickersUpdate(h func(GuildStickersUpdateEvent)) {
	d.registerHandler("GUILD_STICKERS_UPDATE", func() eventhandlersManager { return &guildStickersUpdateHandlers{logger: d.logger} }, h)
}

// OnGuildIntegrationsUpdate registers a handler function for 'GUILD_INTEGRATIONS_UPDATE' events.
func (d *dispatcher) OnGuildIntegrationsUpdate(h func(GuildIntegrationsUpdateEvent)) {
	d.registerHandler("GUILD_INTEGRATIONS_UPDATE", func() eventhandlersManager { return &guildIntegrationsUpdateHandlers{logger: d.logger} }, h)
}

// OnChannelCreate registers a handler function for 'CHANNEL_CREATE' events.
func (d *dispatcher) OnChannelCreate(h func(ChannelCreateEvent)) {
	d.registerHandler("CHANNEL_CREATE", func() eventhandlersManager { return &channelCreateHandlers{logger: d.logger} }, h)
}

// OnChannelUpdate registers a handler function for 'CHANNEL_UPDATE' events.
func (d *dispatcher) OnChannelUpdate(h func(ChannelUpdateEvent)) {
	d.registerHandler("CHANNEL_UPDATE", func() eventhandlersManager { return &channelUpdateHandlers{logger: d.logger} }, h)
}

// OnChannelDelete registers a handler function for 'CHANNEL_DELETE' events.
func (d *dispatcher) OnChannelDelete(h func(ChannelDeleteEvent)) {
	d.registerHandler("CHANNEL_DELETE", func() eventhandlersManager { return &channelDeleteHandlers{logger: d.logger} }, h)
}

// OnChannelPinsUpdate registers a handler function for 'CHANNEL_PINS_UPDATE' events.
func (d *dispatcher) OnChannelPinsUpdate(h func(ChannelPinsUpdateEvent)) {
	d.registerHandler("CHANNEL_PINS_UPDATE", func() eventhandlersManager { return &channelPinsUpdateHandlers{logger: d.logger} }, h)
}

// OnThreadCreate registers a handler function for 'THREAD_CREATE' events.
func (d *dispatcher) OnThreadCreate(h func(ThreadCreateEvent)) {
	d.registerHandler("THREAD_CREATE", func() eventhandlersManager { return &threadCreateHandlers{logger: d.logger} }, h)
}

// OnThreadUpdate registers a handler function for 'THREAD_UPDATE' events.
func (d *dispatcher) OnThreadUpdate(h func(ThreadUpdateEvent)) {
	d.registerHandler("THREAD_UPDATE", func() eventhandlersManager { return &threadUpdateHandlers{logger: d.logger} }, h)
}

// OnThreadDelete registers a handler function for 'THREAD_DELETE' events.
func (d *dispatcher) OnThreadDelete(h func(ThreadDeleteEvent)) {
	d.registerHandler("THREAD_DELETE", func() eventhandlersManager { return &threadDeleteHandlers{logger: d.logger} }, h)
}

// OnGuildRoleCreate registers a handler function for 'GUILD_ROLE_CREATE' events.
func (d *dispatcher) OnGuildRoleCreate(h func(GuildRoleCreateEvent)) {
	d.registerHandler("GUILD_ROLE_CREATE", func() eventhandlersManager { return &guildRoleCreateHandlers{logger: d.logger} }, h)
}

// OnGuildRoleUpdate registers a handler function for 'GUILD_ROLE_UPDATE' events.
func (d *dispatcher) OnGuildRoleUpdate(h func(GuildRoleUpdateEvent)) {
	d.registerHandler("GUILD_ROLE_UPDATE", func() eventhandlersManager { return &guildRoleUpdateHandlers{logger: d.logger} }, h)
}

// OnGuildRoleDelete registers a handler function for 'GUILD_ROLE_DELETE' events.
func (d *dispatcher) OnGuildRoleDelete(h func(GuildRoleDeleteEvent)) {
	d.registerHandler("GUILD_ROLE_DELETE", func() eventhandlersManager { return &guildRoleDeleteHandlers{logger: d.logger} }, h)
}

// OnGuildMemberAdd registers a handler function for 'GUILD_MEMBER_ADD' events.
func (d *dispatcher) OnGuildMemberAdd(h func(GuildMemberAddEvent)) {
	d.registerHandler("GUILD_MEMBER_ADD", func() eventhandlersManager { return &guildMemberAddHandlers{logger: d.logger} }, h)
}

// OnGuildMemberUpdate registers a handler function for 'GUILD_MEMBER_UPDATE' events.
func (d *dispatcher) OnGuildMemberUpdate(h func(GuildMemberUpdateEvent)) {
	d.registerHandler("GUILD_MEMBER_UPDATE", func() eventhandlersManager { return &guildMemberUpdateHandlers{logger: d.logger} }, h)
}

// OnGuildMemberRemove registers a handler function for 'GUILD_MEMBER_REMOVE' events.
func (d *dispatcher) OnGuildMemberRemove(h func(GuildMemberRemoveEvent)) {
	d.registerHandler("GUILD_MEMBER_REMOVE", func() eventhandlersManager { return &guildMemberRemoveHandlers{logger: d.logger} }, h)
}

// OnGuildMembersChunk registers a handler function for 'GUILD_MEMBERS_CHUNK' events.
func (d *dispatcher) OnGuildMembersChunk(h func(GuildMembersChunkEvent)) {
	d.registerHandler("GUILD_MEMBERS_CHUNK", func() eventhandlersManager { return &guildMembersChunkHandlers{logger: d.logger} }, h)
}

// OnMessageCreate registers a handler function for 'MESSAGE_CREATE' events.
//
// Note:
//   - This method is thread-safe via internal locking.
//   - However, it is strongly recommended to register all event handlers sequentially during startup,
//     before starting event dispatching, to avoid runtime mutations and ensure stable configuration.
//   - Handlers are called sequentially when dispatching in the order they were added.
func (d *dispatcher) OnMessageCreate(h func(MessageCreateEvent)) {
	d.registerHandler("MESSAGE_CREATE", func() eventhandlersManager { return &messageCreateHandlers{logger: d.logger} }, h)
}

// OnMessageDelete registers a handler function for 'MESSAGE_DELETE' events.
func (d *dispatcher) OnMessageDelete(h func(MessageDeleteEvent)) {
	d.registerHandler("MESSAGE_DELETE", func() eventhandlersManager { return &messageDeleteHandlers{logger: d.logger} }, h)
}

// OnMessageUpdate registers a handler function for 'MESSAGE_UPDATE' events.
func (d *dispatcher) OnMessageUpdate(h func(MessageUpdateEvent)) {
	d.registerHandler("MESSAGE_UPDATE", func() eventhandlersManager { return &messageUpdateHandlers{logger: d.logger} }, h)
}

// OnMessageDeleteBulk registers a handler function for 'MESSAGE_DELETE_BULK' events.
func (d *dispatcher) OnMessageDeleteBulk(h func(MessageDeleteBulkEvent)) {
	d.registerHandler("MESSAGE_DELETE_BULK", func() eventhandlersManager { return &messageDeleteBulkHandlers{logger: d.logger} }, h)
}

// OnMessageReactionAdd registers a handler function for 'MESSAGE_REACTION_ADD' events.
func (d *dispatcher) OnMessageReactionAdd(h func(MessageReactionAddEvent)) {
	d.registerHandler("MESSAGE_REACTION_ADD", func() eventhandlersManager { return &messageReactionAddHandlers{logger: d.logger} }, h)
}

// OnMessageReactionRemove registers a handler function for 'MESSAGE_REACTION_REMOVE' events.
func (d *dispatcher) OnMessageReactionRemove(h func(MessageReactionRemoveEvent)) {
	d.registerHandler("MESSAGE_REACTION_REMOVE", func() eventhandlersManager { return &messageReactionRemoveHandlers{logger: d.logger} }, h)
}

// OnMessageReactionRemoveAll registers a handler function for 'MESSAGE_REACTION_REMOVE_ALL' events.
func (d *dispatcher) OnMessageReactionRemoveAll(h func(MessageReactionRemoveAllEvent)) {
	d.registerHandler("MESSAGE_REACTION_REMOVE_ALL", func() eventhandlersManager { return &messageReactionRemoveAllHandlers{logger: d.logger} }, h)
}

// OnMessageReactionRemoveEmoji registers a handler function for 'MESSAGE_REACTION_REMOVE_EMOJI' events.
func (d *dispatcher) OnMessageReactionRemoveEmoji(h func(MessageReactionRemoveEmojiEvent)) {
	d.registerHandler("MESSAGE_REACTION_REMOVE_EMOJI", func() eventhandlersManager { return &messageReactionRemoveEmojiHandlers{logger: d.logger} }, h)
}

// OnInteractionCreate registers a handler function for 'INTERACTION_CREATE' events.
func (d *dispatcher) OnInteractionCreate(h func(InteractionCreateEvent)) {
	d.registerHandler("INTERACTION_CREATE", func() eventhandlersManager { return &interactionCreateHandlers{logger: d.logger} }, h)
}

// OnVoiceStateUpdate registers a handler function for 'VOICE_STATE_UPDATE' events.
func (d *dispatcher) OnVoiceStateUpdate(h func(VoiceStateUpdateEvent)) {
	d.registerHandler("VOICE_STATE_UPDATE", func() eventhandlersManager { return &voiceStateUpdateHandlers{logger: d.logger} }, h)
}

// OnPresenceUpdate registers a handler function for 'PRESENCE_UPDATE' events.
func (d *dispatcher) OnPresenceUpdate(h func(PresenceUpdateEvent)) {
	d.registerHandler("PRESENCE_UPDATE", func() eventhandlersManager { return &presenceUpdateHandlers{logger: d.logger} }, h)
}

// OnUserUpdate registers a handler function for 'USER_UPDATE' events.
func (d *dispatcher) OnUserUpdate(h func(UserUpdateEvent)) {
	d.registerHandler("USER_UPDATE", func() eventhandlersManager { return &userUpdateHandlers{logger: d.logger} }, h)
}

// OnIntegrationCreate registers a handler function for 'INTEGRATION_CREATE' events.
func (d *dispatcher) OnIntegrationCreate(h func(IntegrationCreateEvent)) {
	d.registerHandler("INTEGRATION_CREATE", func() eventhandlersManager { return &integrationCreateHandlers{logger: d.logger} }, h)
}

// OnIntegrationUpdate registers a handler function for 'INTEGRATION_UPDATE' events.
func (d *dispatcher) OnIntegrationUpdate(h func(IntegrationUpdateEvent)) {
	d.registerHandler("INTEGRATION_UPDATE", func() eventhandlersManager { return &integrationUpdateHandlers{logger: d.logger} }, h)
}

// OnIntegrationDelete registers a handler function for 'INTEGRATION_DELETE' events.
func (d *dispatcher) OnIntegrationDelete(h func(IntegrationDeleteEvent)) {
	d.registerHandler("INTEGRATION_DELETE", func() eventhandlersManager { return &integrationDeleteHandlers{logger: d.logger} }, h)
}

// OnStageInstanceCreate registers a handler function for 'STAGE_INSTANCE_CREATE' events.
func (d *dispatcher) OnStageInstanceCreate(h func(StageInstanceCreateEvent)) {
	d.registerHandler("STAGE_INSTANCE_CREATE", func() eventhandlersManager { return &stageInstanceCreateHandlers{logger: d.logger} }, h)
}

// OnStageInstanceUpdate registers a handler function for 'STAGE_INSTANCE_UPDATE' events.
func (d *dispatcher) OnStageInstanceUpdate(h func(StageInstanceUpdateEvent)) {
	d.registerHandler("STAGE_INSTANCE_UPDATE", func() eventhandlersManager { return &stageInstanceUpdateHandlers{logger: d.logger} }, h)
}

// OnStageInstanceDelete registers a handler function for 'STAGE_INSTANCE_DELETE' events.
func (d *dispatcher) OnStageInstanceDelete(h func(StageInstanceDeleteEvent)) {
	d.registerHandler("STAGE_INSTANCE_DELETE", func() eventhandlersManager { return &stageInstanceDeleteHandlers{logger: d.logger} }, h)
}

// OnGuildScheduledEventCreate registers a handler function for 'GUILD_SCHEDULED_EVENT_CREATE' events.
func (d *dispatcher) OnGuildScheduledEventCreate(h func(GuildScheduledEventCreateEvent)) {
	d.registerHandler("GUILD_SCHEDULED_EVENT_CREATE", func() eventhandlersManager { return &guildScheduledEventCreateHandlers{logger: d.logger} }, h)
}

// OnGuildScheduledEventUpdate registers a handler function for 'GUILD_SCHEDULED_EVENT_UPDATE' events.
func (d *dispatcher) OnGuildScheduledEventUpdate(h func(GuildScheduledEventUpdateEvent)) {
	d.registerHandler("GUILD_SCHEDULED_EVENT_UPDATE", func() eventhandlersManager { return &guildScheduledEventUpdateHandlers{logger: d.logger} }, h)
}

// OnGuildScheduledEventDelete registers a handler function for 'GUILD_SCHEDULED_EVENT_DELETE' events.
func (d *dispatcher) OnGuildScheduledEventDelete(h func(GuildScheduledEventDeleteEvent)) {
	d.registerHandler("GUILD_SCHEDULED_EVENT_DELETE", func() eventhandlersManager { return &guildScheduledEventDeleteHandlers{logger: d.logger} }, h)
}

// OnGuildScheduledEventUserAdd registers a handler function for 'GUILD_SCHEDULED_EVENT_USER_ADD' events.
func (d *dispatcher) OnGuildScheduledEventUserAdd(h func(GuildScheduledEventUserAddEvent)) {
	d.registerHandler("GUILD_SCHEDULED_EVENT_USER_ADD", func() eventhandlersManager { return &guildScheduledEventUserAddHandlers{logger: d.logger} }, h)
}

// OnGuildScheduledEventUserRemove registers a handler function for 'GUILD_SCHEDULED_EVENT_USER_REMOVE' events.
func (d *dispatcher) OnGuildScheduledEventUserRemove(h func(GuildScheduledEventUserRemoveEvent)) {
	d.registerHandler("GUILD_SCHEDULED_EVENT_USER_REMOVE", func() eventhandlersManager { return &guildScheduledEventUserRemoveHandlers{logger: d.logger} }, h)
}
