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

import "encoding/json"

// reactionMatches reports whether a cached Reaction entry corresponds to the
// PartialEmoji carried by a reaction gateway event; custom emojis match by
// ID, Unicode emojis match by Name.
func reactionMatches(r Reaction, emoji PartialEmoji) bool {
	if emoji.ID != 0 {
		return r.Emoji.ID == emoji.ID
	}
	return r.Emoji.Name == emoji.Name
}

/*****************************
 * MESSAGE_REACTION_ADD Handler
 *****************************/

// messageReactionAddHandlers manages all registered handlers for MESSAGE_REACTION_ADD events.
type messageReactionAddHandlers struct {
	logger   Logger
	handlers []func(MessageReactionAddEvent)
}

func (h *messageReactionAddHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := MessageReactionAddEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("messageReactionAddHandlers: Failed parsing event data")
		return
	}

	if cache.Flags().Has(CacheFlagReactions) {
		if message, ok := cache.GetMessage(evt.MessageID); ok {
			found := false
			for i, r := range message.Reactions {
				if reactionMatches(r, evt.Emoji) {
					message.Reactions[i].Count++
					if evt.Burst {
						message.Reactions[i].CountDetails.Burst++
					} else {
						message.Reactions[i].CountDetails.Normal++
					}
					found = true
					break
				}
			}
			if !found {
				reaction := Reaction{Count: 1, Emoji: evt.Emoji}
				if evt.Burst {
					reaction.CountDetails.Burst = 1
				} else {
					reaction.CountDetails.Normal = 1
				}
				message.Reactions = append(message.Reactions, reaction)
			}
			cache.PutMessage(message)
		}
	}

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *messageReactionAddHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(MessageReactionAddEvent)))
}

/*****************************
 * MESSAGE_REACTION_REMOVE Handler
 *****************************/

// messageReactionRemoveHandlers manages all registered handlers for MESSAGE_REACTION_REMOVE events.
type messageReactionRemoveHandlers struct {
	logger   Logger
	handlers []func(MessageReactionRemoveEvent)
}

func (h *messageReactionRemoveHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := MessageReactionRemoveEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("messageReactionRemoveHandlers: Failed parsing event data")
		return
	}

	if cache.Flags().Has(CacheFlagReactions) {
		if message, ok := cache.GetMessage(evt.MessageID); ok {
			for i, r := range message.Reactions {
				if reactionMatches(r, evt.Emoji) {
					message.Reactions[i].Count--
					if evt.Burst {
						message.Reactions[i].CountDetails.Burst--
					} else {
						message.Reactions[i].CountDetails.Normal--
					}
					if message.Reactions[i].Count <= 0 {
						message.Reactions = append(message.Reactions[:i], message.Reactions[i+1:]...)
					}
					break
				}
			}
			cache.PutMessage(message)
		}
	}

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *messageReactionRemoveHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(MessageReactionRemoveEvent)))
}

/*****************************
 * MESSAGE_REACTION_REMOVE_ALL Handler
 *****************************/

// messageReactionRemoveAllHandlers manages all registered handlers for MESSAGE_REACTION_REMOVE_ALL events.
type messageReactionRemoveAllHandlers struct {
	logger   Logger
	handlers []func(MessageReactionRemoveAllEvent)
}

func (h *messageReactionRemoveAllHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := MessageReactionRemoveAllEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("messageReactionRemoveAllHandlers: Failed parsing event data")
		return
	}

	if cache.Flags().Has(CacheFlagReactions) {
		if message, ok := cache.GetMessage(evt.MessageID); ok {
			message.Reactions = nil
			cache.PutMessage(message)
		}
	}

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *messageReactionRemoveAllHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(MessageReactionRemoveAllEvent)))
}

/*****************************
 * MESSAGE_REACTION_REMOVE_EMOJI Handler
 *****************************/

// messageReactionRemoveEmojiHandlers manages all registered handlers for MESSAGE_REACTION_REMOVE_EMOJI events.
type messageReactionRemoveEmojiHandlers struct {
	logger   Logger
	handlers []func(MessageReactionRemoveEmojiEvent)
}

func (h *messageReactionRemoveEmojiHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := MessageReactionRemoveEmojiEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("messageReactionRemoveEmojiHandlers: Failed parsing event data")
		return
	}

	if cache.Flags().Has(CacheFlagReactions) {
		if message, ok := cache.GetMessage(evt.MessageID); ok {
			for i, r := range message.Reactions {
				if reactionMatches(r, evt.Emoji) {
					message.Reactions = append(message.Reactions[:i], message.Reactions[i+1:]...)
					break
				}
			}
			cache.PutMessage(message)
		}
	}

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *messageReactionRemoveEmojiHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(MessageReactionRemoveEmojiEvent)))
}

/*****************************
 * MESSAGE_DELETE_BULK Handler
 *****************************/

// messageDeleteBulkHandlers manages all registered handlers for MESSAGE_DELETE_BULK events.
type messageDeleteBulkHandlers struct {
	logger   Logger
	handlers []func(MessageDeleteBulkEvent)
}

func (h *messageDeleteBulkHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := MessageDeleteBulkEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("messageDeleteBulkHandlers: Failed parsing event data")
		return
	}

	for _, id := range evt.IDs {
		if message, ok := cache.GetMessage(id); ok {
			evt.Messages = append(evt.Messages, message)
		}
		cache.DelMessage(id)
	}

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *messageDeleteBulkHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(MessageDeleteBulkEvent)))
}

/*****************************
 * INTEGRATION_CREATE Handler
 *****************************/

// integrationCreateHandlers manages all registered handlers for INTEGRATION_CREATE events.
type integrationCreateHandlers struct {
	logger   Logger
	handlers []func(IntegrationCreateEvent)
}

func (h *integrationCreateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := IntegrationCreateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.Integration); err != nil {
		h.logger.Error("integrationCreateHandlers: Failed parsing event data")
		return
	}
	evt.GuildID = evt.Integration.GuildID

	cache.PutIntegration(evt.Integration)

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *integrationCreateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(IntegrationCreateEvent)))
}

/*****************************
 * INTEGRATION_UPDATE Handler
 *****************************/

// integrationUpdateHandlers manages all registered handlers for INTEGRATION_UPDATE events.
type integrationUpdateHandlers struct {
	logger   Logger
	handlers []func(IntegrationUpdateEvent)
}

func (h *integrationUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := IntegrationUpdateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.Integration); err != nil {
		h.logger.Error("integrationUpdateHandlers: Failed parsing event data")
		return
	}
	evt.GuildID = evt.Integration.GuildID

	cache.PutIntegration(evt.Integration)

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *integrationUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(IntegrationUpdateEvent)))
}

/*****************************
 * INTEGRATION_DELETE Handler
 *****************************/

// integrationDeleteHandlers manages all registered handlers for INTEGRATION_DELETE events.
type integrationDeleteHandlers struct {
	logger   Logger
	handlers []func(IntegrationDeleteEvent)
}

func (h *integrationDeleteHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := IntegrationDeleteEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("integrationDeleteHandlers: Failed parsing event data")
		return
	}

	cache.DelIntegration(evt.GuildID, evt.IntegrationID)

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *integrationDeleteHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(IntegrationDeleteEvent)))
}

/*****************************
 * STAGE_INSTANCE_CREATE Handler
 *****************************/

// stageInstanceCreateHandlers manages all registered handlers for STAGE_INSTANCE_CREATE events.
type stageInstanceCreateHandlers struct {
	logger   Logger
	handlers []func(StageInstanceCreateEvent)
}

func (h *stageInstanceCreateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := StageInstanceCreateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.StageInstance); err != nil {
		h.logger.Error("stageInstanceCreateHandlers: Failed parsing event data")
		return
	}

	cache.PutStageInstance(evt.StageInstance)

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *stageInstanceCreateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(StageInstanceCreateEvent)))
}

/*****************************
 * STAGE_INSTANCE_UPDATE Handler
 *****************************/

// stageInstanceUpdateHandlers manages all registered handlers for STAGE_INSTANCE_UPDATE events.
type stageInstanceUpdateHandlers struct {
	logger   Logger
	handlers []func(StageInstanceUpdateEvent)
}

func (h *stageInstanceUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := StageInstanceUpdateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.NewStageInstance); err != nil {
		h.logger.Error("stageInstanceUpdateHandlers: Failed parsing event data")
		return
	}

	if oldInstance, ok := cache.GetStageInstance(evt.NewStageInstance.ID); ok {
		evt.OldStageInstance = oldInstance
	} else {
		evt.OldStageInstance = evt.NewStageInstance
	}

	cache.PutStageInstance(evt.NewStageInstance)

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *stageInstanceUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(StageInstanceUpdateEvent)))
}

/*****************************
 * STAGE_INSTANCE_DELETE Handler
 *****************************/

// stageInstanceDeleteHandlers manages all registered handlers for STAGE_INSTANCE_DELETE events.
type stageInstanceDeleteHandlers struct {
	logger   Logger
	handlers []func(StageInstanceDeleteEvent)
}

func (h *stageInstanceDeleteHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := StageInstanceDeleteEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.StageInstance); err != nil {
		h.logger.Error("stageInstanceDeleteHandlers: Failed parsing event data")
		return
	}

	cache.DelStageInstance(evt.StageInstance.GuildID, evt.StageInstance.ID)

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *stageInstanceDeleteHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(StageInstanceDeleteEvent)))
}

/*****************************
 * GUILD_SCHEDULED_EVENT_CREATE Handler
 *****************************/

// guildScheduledEventCreateHandlers manages all registered handlers for GUILD_SCHEDULED_EVENT_CREATE events.
type guildScheduledEventCreateHandlers struct {
	logger   Logger
	handlers []func(GuildScheduledEventCreateEvent)
}

func (h *guildScheduledEventCreateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildScheduledEventCreateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.Event); err != nil {
		h.logger.Error("guildScheduledEventCreateHandlers: Failed parsing event data")
		return
	}

	cache.PutScheduledEvent(evt.Event)

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildScheduledEventCreateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildScheduledEventCreateEvent)))
}

/*****************************
 * GUILD_SCHEDULED_EVENT_UPDATE Handler
 *****************************/

// guildScheduledEventUpdateHandlers manages all registered handlers for GUILD_SCHEDULED_EVENT_UPDATE events.
type guildScheduledEventUpdateHandlers struct {
	logger   Logger
	handlers []func(GuildScheduledEventUpdateEvent)
}

func (h *guildScheduledEventUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildScheduledEventUpdateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.NewEvent); err != nil {
		h.logger.Error("guildScheduledEventUpdateHandlers: Failed parsing event data")
		return
	}

	if oldEvent, ok := cache.GetScheduledEvent(evt.NewEvent.ID); ok {
		evt.OldEvent = oldEvent
	} else {
		evt.OldEvent = evt.NewEvent
	}

	cache.PutScheduledEvent(evt.NewEvent)

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildScheduledEventUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildScheduledEventUpdateEvent)))
}

/*****************************
 * GUILD_SCHEDULED_EVENT_DELETE Handler
 *****************************/

// guildScheduledEventDeleteHandlers manages all registered handlers for GUILD_SCHEDULED_EVENT_DELETE events.
type guildScheduledEventDeleteHandlers struct {
	logger   Logger
	handlers []func(GuildScheduledEventDeleteEvent)
}

func (h *guildScheduledEventDeleteHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildScheduledEventDeleteEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.Event); err != nil {
		h.logger.Error("guildScheduledEventDeleteHandlers: Failed parsing event data")
		return
	}

	cache.DelScheduledEvent(evt.Event.GuildID, evt.Event.ID)

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildScheduledEventDeleteHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildScheduledEventDeleteEvent)))
}

/*****************************
 * GUILD_SCHEDULED_EVENT_USER_ADD Handler
 *****************************/

// guildScheduledEventUserAddHandlers manages all registered handlers for GUILD_SCHEDULED_EVENT_USER_ADD events.
//
// Subscriber lists are not cached, only the UserCount on the scheduled event
// itself, which Discord does not update via this event; this handler only
// forwards it to listeners.
type guildScheduledEventUserAddHandlers struct {
	logger   Logger
	handlers []func(GuildScheduledEventUserAddEvent)
}

func (h *guildScheduledEventUserAddHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildScheduledEventUserAddEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("guildScheduledEventUserAddHandlers: Failed parsing event data")
		return
	}

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildScheduledEventUserAddHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildScheduledEventUserAddEvent)))
}

/*****************************
 * GUILD_SCHEDULED_EVENT_USER_REMOVE Handler
 *****************************/

// guildScheduledEventUserRemoveHandlers manages all registered handlers for GUILD_SCHEDULED_EVENT_USER_REMOVE events.
type guildScheduledEventUserRemoveHandlers struct {
	logger   Logger
	handlers []func(GuildScheduledEventUserRemoveEvent)
}

func (h *guildScheduledEventUserRemoveHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildScheduledEventUserRemoveEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("guildScheduledEventUserRemoveHandlers: Failed parsing event data")
		return
	}

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildScheduledEventUserRemoveHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildScheduledEventUserRemoveEvent)))
}

/*****************************
 *      RESUMED Handler
 *****************************/

// resumedHandlers manages all registered handlers for RESUMED events.
type resumedHandlers struct {
	logger   Logger
	handlers []func(ResumedEvent)
}

func (h *resumedHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := ResumedEvent{ShardsID: shardID}

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *resumedHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(ResumedEvent)))
}
