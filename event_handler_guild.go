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

/*****************************
 *   GUILD_UPDATE Handler
 *****************************/

// guildUpdateHandlers manages all registered handlers for GUILD_UPDATE events.
type guildUpdateHandlers struct {
	logger   Logger
	handlers []func(GuildUpdateEvent)
}

func (h *guildUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildUpdateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.NewGuild); err != nil {
		h.logger.Error("guildUpdateHandlers: Failed parsing event data")
		return
	}

	if oldGuild, ok := cache.GetGuild(evt.NewGuild.ID); ok {
		evt.OldGuild = oldGuild
	} else {
		evt.OldGuild = evt.NewGuild
	}

	cache.PutGuild(evt.NewGuild)

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildUpdateEvent)))
}

/*****************************
 *   GUILD_DELETE Handler
 *****************************/

// guildDeleteHandlers manages all registered handlers for GUILD_DELETE events.
type guildDeleteHandlers struct {
	logger   Logger
	handlers []func(GuildDeleteEvent)
}

func (h *guildDeleteHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	var payload struct {
		ID          Snowflake `json:"id"`
		Unavailable bool      `json:"unavailable"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		h.logger.Error("guildDeleteHandlers: Failed parsing event data")
		return
	}

	evt := GuildDeleteEvent{ShardsID: shardID, Unavailable: payload.Unavailable}
	if guild, ok := cache.GetGuild(payload.ID); ok {
		evt.Guild = guild
	} else {
		evt.Guild.ID = payload.ID
	}
	evt.Guild.Unavailable = payload.Unavailable

	// A guild reported unavailable (outage) is not the same as the bot
	// leaving it; Discord will send GUILD_CREATE again once it recovers.
	// Evicting it here would just force a needless full re-population.
	if !payload.Unavailable {
		cache.DelGuild(payload.ID)
	} else {
		cache.PutGuild(evt.Guild)
	}

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildDeleteHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildDeleteEvent)))
}

/*****************************
 * GUILD_EMOJIS_UPDATE Handler
 *****************************/

// guildEmojisUpdateHandlers manages all registered handlers for GUILD_EMOJIS_UPDATE events.
type guildEmojisUpdateHandlers struct {
	logger   Logger
	handlers []func(GuildEmojisUpdateEvent)
}

func (h *guildEmojisUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	var payload struct {
		GuildID Snowflake `json:"guild_id"`
		Emojis  []Emoji   `json:"emojis"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		h.logger.Error("guildEmojisUpdateHandlers: Failed parsing event data")
		return
	}

	evt := GuildEmojisUpdateEvent{ShardsID: shardID, GuildID: payload.GuildID, NewEmojis: payload.Emojis}
	if oldEmojis, ok := cache.GetGuildEmojis(payload.GuildID); ok {
		for _, emoji := range oldEmojis {
			evt.OldEmojis = append(evt.OldEmojis, emoji)
		}
	}

	// Reconcile the cached set against the new authoritative snapshot: drop
	// whatever is no longer present, then (re)insert everything sent.
	cache.DelGuildEmojis(payload.GuildID)
	for _, emoji := range payload.Emojis {
		cache.PutEmoji(payload.GuildID, emoji)
	}

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildEmojisUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildEmojisUpdateEvent)))
}

/*****************************
 * GUILD_STICKERS_UPDATE Handler
 *****************************/

// guildStickersUpdateHandlers manages all registered handlers for GUILD_STICKERS_UPDATE events.
type guildStickersUpdateHandlers struct {
	logger   Logger
	handlers []func(GuildStickersUpdateEvent)
}

func (h *guildStickersUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	var payload struct {
		GuildID  Snowflake `json:"guild_id"`
		Stickers []Sticker `json:"stickers"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		h.logger.Error("guildStickersUpdateHandlers: Failed parsing event data")
		return
	}

	evt := GuildStickersUpdateEvent{ShardsID: shardID, GuildID: payload.GuildID, NewStickers: payload.Stickers}
	if oldStickers, ok := cache.GetGuildStickers(payload.GuildID); ok {
		for _, sticker := range oldStickers {
			evt.OldStickers = append(evt.OldStickers, sticker)
		}
	}

	cache.DelGuildStickers(payload.GuildID)
	for _, sticker := range payload.Stickers {
		cache.PutSticker(payload.GuildID, sticker)
	}

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildStickersUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildStickersUpdateEvent)))
}

/*****************************
 * GUILD_INTEGRATIONS_UPDATE Handler
 *****************************/

// guildIntegrationsUpdateHandlers manages all registered handlers for GUILD_INTEGRATIONS_UPDATE events.
//
// Discord does not include the integration list in this payload, so there is
// nothing for the cache to update here; it exists purely to notify listeners
// that the guild's integrations changed.
type guildIntegrationsUpdateHandlers struct {
	logger   Logger
	handlers []func(GuildIntegrationsUpdateEvent)
}

func (h *guildIntegrationsUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildIntegrationsUpdateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("guildIntegrationsUpdateHandlers: Failed parsing event data")
		return
	}

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildIntegrationsUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildIntegrationsUpdateEvent)))
}

/*****************************
 *   CHANNEL_CREATE Handler
 *****************************/

// channelCreateHandlers manages all registered handlers for CHANNEL_CREATE events.
type channelCreateHandlers struct {
	logger   Logger
	handlers []func(ChannelCreateEvent)
}

func (h *channelCreateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := ChannelCreateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("channelCreateHandlers: Failed parsing event data")
		return
	}

	cache.PutChannel(evt.Channel)

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *channelCreateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(ChannelCreateEvent)))
}

/*****************************
 *   CHANNEL_UPDATE Handler
 *****************************/

// channelUpdateHandlers manages all registered handlers for CHANNEL_UPDATE events.
type channelUpdateHandlers struct {
	logger   Logger
	handlers []func(ChannelUpdateEvent)
}

func (h *channelUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	newChannel, err := UnmarshalChannel(data)
	if err != nil {
		h.logger.Error("channelUpdateHandlers: Failed parsing event data")
		return
	}

	evt := ChannelUpdateEvent{ShardsID: shardID, NewChannel: newChannel}
	if oldChannel, ok := cache.GetChannel(newChannel.GetID()); ok {
		evt.OldChannel = oldChannel
	} else {
		evt.OldChannel = newChannel
	}

	cache.PutChannel(newChannel)

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *channelUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(ChannelUpdateEvent)))
}

/*****************************
 *   CHANNEL_DELETE Handler
 *****************************/

// channelDeleteHandlers manages all registered handlers for CHANNEL_DELETE events.
type channelDeleteHandlers struct {
	logger   Logger
	handlers []func(ChannelDeleteEvent)
}

func (h *channelDeleteHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := ChannelDeleteEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("channelDeleteHandlers: Failed parsing event data")
		return
	}

	if channel, ok := cache.GetChannel(evt.Channel.GetID()); ok {
		evt.Channel = channel
	}
	cache.DelChannel(evt.Channel.GetID())

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *channelDeleteHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(ChannelDeleteEvent)))
}

/*****************************
 * CHANNEL_PINS_UPDATE Handler
 *****************************/

// channelPinsUpdateHandlers manages all registered handlers for CHANNEL_PINS_UPDATE events.
//
// Pin timestamps are not tracked on cached channel objects, so this handler
// only forwards the event; it does not mutate the cache.
type channelPinsUpdateHandlers struct {
	logger   Logger
	handlers []func(ChannelPinsUpdateEvent)
}

func (h *channelPinsUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := ChannelPinsUpdateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("channelPinsUpdateHandlers: Failed parsing event data")
		return
	}

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *channelPinsUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(ChannelPinsUpdateEvent)))
}

/*****************************
 *   THREAD_CREATE Handler
 *****************************/

// threadCreateHandlers manages all registered handlers for THREAD_CREATE events.
type threadCreateHandlers struct {
	logger   Logger
	handlers []func(ThreadCreateEvent)
}

func (h *threadCreateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := ThreadCreateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.Thread); err != nil {
		h.logger.Error("threadCreateHandlers: Failed parsing event data")
		return
	}

	cache.PutChannel(&evt.Thread)

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *threadCreateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(ThreadCreateEvent)))
}

/*****************************
 *   THREAD_UPDATE Handler
 *****************************/

// threadUpdateHandlers manages all registered handlers for THREAD_UPDATE events.
type threadUpdateHandlers struct {
	logger   Logger
	handlers []func(ThreadUpdateEvent)
}

func (h *threadUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := ThreadUpdateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.NewThread); err != nil {
		h.logger.Error("threadUpdateHandlers: Failed parsing event data")
		return
	}

	if oldChannel, ok := cache.GetChannel(evt.NewThread.ID); ok {
		if oldThread, isThread := oldChannel.(*ThreadChannel); isThread {
			evt.OldThread = *oldThread
		}
	} else {
		evt.OldThread = evt.NewThread
	}

	cache.PutChannel(&evt.NewThread)

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *threadUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(ThreadUpdateEvent)))
}

/*****************************
 *   THREAD_DELETE Handler
 *****************************/

// threadDeleteHandlers manages all registered handlers for THREAD_DELETE events.
type threadDeleteHandlers struct {
	logger   Logger
	handlers []func(ThreadDeleteEvent)
}

func (h *threadDeleteHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := ThreadDeleteEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("threadDeleteHandlers: Failed parsing event data")
		return
	}

	cache.DelChannel(evt.ThreadID)

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *threadDeleteHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(ThreadDeleteEvent)))
}

/*****************************
 *  GUILD_ROLE_CREATE Handler
 *****************************/

// guildRoleCreateHandlers manages all registered handlers for GUILD_ROLE_CREATE events.
type guildRoleCreateHandlers struct {
	logger   Logger
	handlers []func(GuildRoleCreateEvent)
}

func (h *guildRoleCreateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildRoleCreateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("guildRoleCreateHandlers: Failed parsing event data")
		return
	}

	evt.Role.GuildID = evt.GuildID
	cache.PutRole(evt.Role)

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildRoleCreateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildRoleCreateEvent)))
}

/*****************************
 *  GUILD_ROLE_UPDATE Handler
 *****************************/

// guildRoleUpdateHandlers manages all registered handlers for GUILD_ROLE_UPDATE events.
type guildRoleUpdateHandlers struct {
	logger   Logger
	handlers []func(GuildRoleUpdateEvent)
}

func (h *guildRoleUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	var payload struct {
		GuildID Snowflake `json:"guild_id"`
		Role    Role      `json:"role"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		h.logger.Error("guildRoleUpdateHandlers: Failed parsing event data")
		return
	}
	payload.Role.GuildID = payload.GuildID

	evt := GuildRoleUpdateEvent{ShardsID: shardID, NewRole: payload.Role}
	if oldRole, ok := cache.GetRole(payload.Role.ID); ok {
		evt.OldRole = oldRole
	} else {
		evt.OldRole = payload.Role
	}

	cache.PutRole(payload.Role)

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildRoleUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildRoleUpdateEvent)))
}

/*****************************
 *  GUILD_ROLE_DELETE Handler
 *****************************/

// guildRoleDeleteHandlers manages all registered handlers for GUILD_ROLE_DELETE events.
type guildRoleDeleteHandlers struct {
	logger   Logger
	handlers []func(GuildRoleDeleteEvent)
}

func (h *guildRoleDeleteHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildRoleDeleteEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("guildRoleDeleteHandlers: Failed parsing event data")
		return
	}

	if role, ok := cache.GetRole(evt.RoleID); ok {
		evt.Role = role
	}
	cache.DelRole(evt.GuildID, evt.RoleID)

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildRoleDeleteHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildRoleDeleteEvent)))
}
