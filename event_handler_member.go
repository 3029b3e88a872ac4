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
 *  GUILD_MEMBER_ADD Handler
 *****************************/

// guildMemberAddHandlers manages all registered handlers for GUILD_MEMBER_ADD events.
type guildMemberAddHandlers struct {
	logger   Logger
	handlers []func(GuildMemberAddEvent)
}

func (h *guildMemberAddHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildMemberAddEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.Member); err != nil {
		h.logger.Error("guildMemberAddHandlers: Failed parsing event data")
		return
	}

	cache.PutMember(evt.Member)
	cache.PutUser(evt.Member.User)

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildMemberAddHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildMemberAddEvent)))
}

/*****************************
 * GUILD_MEMBER_UPDATE Handler
 *****************************/

// guildMemberUpdateHandlers manages all registered handlers for GUILD_MEMBER_UPDATE events.
type guildMemberUpdateHandlers struct {
	logger   Logger
	handlers []func(GuildMemberUpdateEvent)
}

func (h *guildMemberUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildMemberUpdateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.NewMember); err != nil {
		h.logger.Error("guildMemberUpdateHandlers: Failed parsing event data")
		return
	}

	if oldMember, ok := cache.GetMember(evt.NewMember.GuildID, evt.NewMember.User.ID); ok {
		evt.OldMember = oldMember
	} else {
		evt.OldMember = evt.NewMember
	}

	cache.PutMember(evt.NewMember)
	cache.PutUser(evt.NewMember.User)

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildMemberUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildMemberUpdateEvent)))
}

/*****************************
 * GUILD_MEMBER_REMOVE Handler
 *****************************/

// guildMemberRemoveHandlers manages all registered handlers for GUILD_MEMBER_REMOVE events.
type guildMemberRemoveHandlers struct {
	logger   Logger
	handlers []func(GuildMemberRemoveEvent)
}

func (h *guildMemberRemoveHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildMemberRemoveEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("guildMemberRemoveHandlers: Failed parsing event data")
		return
	}

	cache.DelMember(evt.GuildID, evt.User.ID)

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildMemberRemoveHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildMemberRemoveEvent)))
}

/*****************************
 * GUILD_MEMBERS_CHUNK Handler
 *****************************/

// guildMembersChunkHandlers manages all registered handlers for GUILD_MEMBERS_CHUNK events.
type guildMembersChunkHandlers struct {
	logger   Logger
	handlers []func(GuildMembersChunkEvent)
}

func (h *guildMembersChunkHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := GuildMembersChunkEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("guildMembersChunkHandlers: Failed parsing event data")
		return
	}

	for i := range evt.Members {
		evt.Members[i].GuildID = evt.GuildID
		cache.PutMember(evt.Members[i])
		cache.PutUser(evt.Members[i].User)
	}
	for i := range evt.Presences {
		cache.PutPresence(evt.Presences[i])
	}

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *guildMembersChunkHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(GuildMembersChunkEvent)))
}

/*****************************
 *   PRESENCE_UPDATE Handler
 *****************************/

// presenceUpdateHandlers manages all registered handlers for PRESENCE_UPDATE events.
type presenceUpdateHandlers struct {
	logger   Logger
	handlers []func(PresenceUpdateEvent)
}

func (h *presenceUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := PresenceUpdateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt); err != nil {
		h.logger.Error("presenceUpdateHandlers: Failed parsing event data")
		return
	}

	if oldPresence, ok := cache.GetPresence(evt.NewPresence.GuildID, evt.NewPresence.UserID); ok {
		evt.OldPresence = oldPresence
	} else {
		evt.OldPresence = evt.NewPresence
	}

	if evt.NewPresence.Status == PresenceStatusOffline {
		cache.DelPresence(evt.NewPresence.GuildID, evt.NewPresence.UserID)
	} else {
		cache.PutPresence(evt.NewPresence)
	}

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *presenceUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(PresenceUpdateEvent)))
}

/*****************************
 *    USER_UPDATE Handler
 *****************************/

// userUpdateHandlers manages all registered handlers for USER_UPDATE events.
type userUpdateHandlers struct {
	logger   Logger
	handlers []func(UserUpdateEvent)
}

func (h *userUpdateHandlers) handleEvent(cache CacheManager, shardID int, data []byte) {
	evt := UserUpdateEvent{ShardsID: shardID}
	if err := json.Unmarshal(data, &evt.NewUser); err != nil {
		h.logger.Error("userUpdateHandlers: Failed parsing event data")
		return
	}

	if oldUser, ok := cache.GetUser(evt.NewUser.ID); ok {
		evt.OldUser = oldUser
	} else {
		evt.OldUser = evt.NewUser
	}

	cache.PutUser(evt.NewUser)
	// USER_UPDATE for the gateway session's own account always refers to the
	// current user; refresh the single-value cell too.
	cache.SetCurrentUser(evt.NewUser)

	for _, handler := range h.handlers {
		handler(evt)
	}
}

func (h *userUpdateHandlers) addHandler(handler any) {
	h.handlers = append(h.handlers, handler.(func(UserUpdateEvent)))
}
