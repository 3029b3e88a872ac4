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

import "sync"

// CacheFlags selects which Discord resource kinds the cache tracks.
// Disabling a flag makes Put for that kind a no-op and Has for that kind
// report false; Get, Count and Del do not consult the flags and act on
// whatever is already stored. Events that would only update a disabled
// resource kind are skipped, not buffered for later.
type CacheFlags int

const (
	CacheFlagGuilds CacheFlags = 1 << iota
	CacheFlagChannels
	CacheFlagMembers
	CacheFlagRoles
	CacheFlagEmojis
	CacheFlagStickers
	CacheFlagPresences
	CacheFlagVoiceStates
	CacheFlagMessages
	CacheFlagReactions
	CacheFlagUsers
	CacheFlagCurrentUser
	CacheFlagIntegrations
	CacheFlagStageInstances
	CacheFlagScheduledEvents

	CacheFlagsNone CacheFlags = 0

	CacheFlagsAll = CacheFlagGuilds | CacheFlagChannels | CacheFlagMembers | CacheFlagRoles |
		CacheFlagEmojis | CacheFlagStickers | CacheFlagPresences | CacheFlagVoiceStates |
		CacheFlagMessages | CacheFlagReactions | CacheFlagUsers | CacheFlagCurrentUser |
		CacheFlagIntegrations | CacheFlagStageInstances | CacheFlagScheduledEvents
)

func (f CacheFlags) Has(bits ...CacheFlags) bool {
	return BitFieldHas(f, bits...)
}

// SnowflakePairKey identifies a resource owned jointly by a guild and a second
// entity (a user, a role, an emoji, ...). A is always the owning guild ID; B
// is the second ID. Keep this ordering consistent across every lookup site,
// since the zero value and the swapped pair hash to different map buckets.
type SnowflakePairKey struct {
	A Snowflake
	B Snowflake
}

// CacheManager is the interface implemented by the client's in-memory store
// of entities observed over the Gateway. All methods are safe for concurrent
// use by multiple goroutines.
type CacheManager interface {
	Flags() CacheFlags
	SetFlags(flags ...CacheFlags)

	GetUser(userID Snowflake) (User, bool)
	GetCurrentUser() (User, bool)
	GetGuild(guildID Snowflake) (Guild, bool)
	GetMember(guildID, userID Snowflake) (Member, bool)
	GetChannel(channelID Snowflake) (Channel, bool)
	GetMessage(messageID Snowflake) (Message, bool)
	GetVoiceState(guildID, userID Snowflake) (VoiceState, bool)
	GetRole(roleID Snowflake) (Role, bool)
	GetEmoji(emojiID Snowflake) (Emoji, bool)
	GetSticker(stickerID Snowflake) (Sticker, bool)
	GetPresence(guildID, userID Snowflake) (Presence, bool)
	GetIntegration(guildID, integrationID Snowflake) (Integration, bool)
	GetStageInstance(stageInstanceID Snowflake) (StageInstance, bool)
	GetScheduledEvent(eventID Snowflake) (GuildScheduledEvent, bool)

	GetGuildChannels(guildID Snowflake) (map[Snowflake]GuildChannel, bool)
	GetGuildMembers(guildID Snowflake) (map[Snowflake]Member, bool)
	GetGuildVoiceStates(guildID Snowflake) (map[Snowflake]VoiceState, bool)
	GetGuildRoles(guildID Snowflake) (map[Snowflake]Role, bool)
	GetGuildEmojis(guildID Snowflake) (map[Snowflake]Emoji, bool)
	GetGuildStickers(guildID Snowflake) (map[Snowflake]Sticker, bool)
	GetGuildPresences(guildID Snowflake) (map[Snowflake]Presence, bool)
	GetGuildIntegrations(guildID Snowflake) (map[Snowflake]Integration, bool)
	GetGuildStageInstances(guildID Snowflake) (map[Snowflake]StageInstance, bool)
	GetGuildScheduledEvents(guildID Snowflake) (map[Snowflake]GuildScheduledEvent, bool)
	GetChannelMessages(channelID Snowflake) ([]Message, bool)

	HasUser(userID Snowflake) bool
	HasGuild(guildID Snowflake) bool
	HasMember(guildID, userID Snowflake) bool
	HasChannel(channelID Snowflake) bool
	HasMessage(messageID Snowflake) bool
	HasVoiceState(guildID, userID Snowflake) bool
	HasRole(roleID Snowflake) bool
	HasEmoji(emojiID Snowflake) bool
	HasSticker(stickerID Snowflake) bool
	HasIntegration(guildID, integrationID Snowflake) bool
	HasStageInstance(stageInstanceID Snowflake) bool
	HasScheduledEvent(eventID Snowflake) bool
	HasGuildChannels(guildID Snowflake) bool
	HasGuildMembers(guildID Snowflake) bool
	HasGuildVoiceStates(guildID Snowflake) bool
	HasGuildRoles(guildID Snowflake) bool

	CountUsers() int
	CountGuilds() int
	CountMembers() int
	CountChannels() int
	CountMessages() int
	CountVoiceStates() int
	CountRoles() int
	CountEmojis() int
	CountStickers() int
	CountIntegrations() int
	CountStageInstances() int
	CountScheduledEvents() int
	CountGuildChannels(guildID Snowflake) int
	CountGuildMembers(guildID Snowflake) int
	CountGuildRoles(guildID Snowflake) int

	PutUser(user User) User
	SetCurrentUser(user User)
	PutGuild(guild Guild)
	PutMember(member Member)
	PutChannel(channel Channel)
	PutMessage(message Message)
	PutVoiceState(voiceState VoiceState)
	PutRole(role Role)
	PutEmoji(guildID Snowflake, emoji Emoji)
	PutSticker(guildID Snowflake, sticker Sticker)
	PutPresence(presence Presence)
	PutIntegration(integration Integration)
	PutStageInstance(stageInstance StageInstance)
	PutScheduledEvent(event GuildScheduledEvent)

	DelUser(userID Snowflake) bool
	DelGuild(guildID Snowflake) bool
	DelMember(guildID, userID Snowflake) bool
	DelChannel(channelID Snowflake) bool
	DelMessage(messageID Snowflake) bool
	DelVoiceState(guildID, userID Snowflake) bool
	DelRole(guildID, roleID Snowflake) bool
	DelEmoji(guildID, emojiID Snowflake) bool
	DelSticker(guildID, stickerID Snowflake) bool
	DelPresence(guildID, userID Snowflake) bool
	DelIntegration(guildID, integrationID Snowflake) bool
	DelStageInstance(guildID, stageInstanceID Snowflake) bool
	DelScheduledEvent(guildID, eventID Snowflake) bool
	DelGuildChannels(guildID Snowflake) bool
	DelGuildMembers(guildID Snowflake) bool
	DelGuildRoles(guildID Snowflake) bool
	DelGuildEmojis(guildID Snowflake) bool
	DelGuildStickers(guildID Snowflake) bool
	DelGuildVoiceStates(guildID Snowflake) bool
	DelGuildIntegrations(guildID Snowflake) bool
	DelGuildStageInstances(guildID Snowflake) bool
	DelGuildScheduledEvents(guildID Snowflake) bool
}

// messageRing is a fixed-capacity FIFO of message IDs for one channel, used
// to bound per-channel message retention. Pushing past capacity evicts the
// oldest ID, which the caller must also remove from messagesCache.
type messageRing struct {
	ids []Snowflake
	cap int
}

func newMessageRing(capacity int) *messageRing {
	return &messageRing{ids: make([]Snowflake, 0, capacity), cap: capacity}
}

// push appends id to the ring and returns the evicted ID (and true) if the
// ring was already at capacity.
func (r *messageRing) push(id Snowflake) (evicted Snowflake, didEvict bool) {
	r.ids = append(r.ids, id)
	if len(r.ids) > r.cap {
		evicted = r.ids[0]
		r.ids = r.ids[1:]
		didEvict = true
	}
	return
}

func (r *messageRing) remove(id Snowflake) {
	for i, existing := range r.ids {
		if existing == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			return
		}
	}
}

func (r *messageRing) snapshot() []Snowflake {
	out := make([]Snowflake, len(r.ids))
	copy(out, r.ids)
	return out
}

// DefaultCache is the built-in CacheManager, backed by sharded maps guarded
// by per-resource RWMutexes. Guild-owned resources (members, channels,
// roles, emojis, stickers, voice states, presences, integrations, stage
// instances, scheduled events) are additionally indexed by a guildID -> set
// index so that guild-scoped queries and bulk eviction on GUILD_DELETE avoid
// a full table scan.
type DefaultCache struct {
	flags CacheFlags

	messageCacheSize int

	currentUser   *User
	currentUserMu sync.RWMutex

	// usersCache and messagesCache are the two highest-cardinality,
	// highest-churn resource kinds (every message and every distinct
	// author crosses them), so they're backed by a 256-way ShardMap
	// instead of a single RWMutex to keep lock contention down on bots
	// with many guilds.
	usersCache *ShardMap[Snowflake, User]

	guildsCache   map[Snowflake]Guild
	guildsCacheMu sync.RWMutex

	membersCache   map[SnowflakePairKey]Member
	membersCacheMu sync.RWMutex

	channelsCache   map[Snowflake]Channel
	channelsCacheMu sync.RWMutex

	messagesCache *ShardMap[Snowflake, Message]

	channelMessageOrder   map[Snowflake]*messageRing
	channelMessageOrderMu sync.Mutex

	voiceStatesCache   map[SnowflakePairKey]VoiceState
	voiceStatesCacheMu sync.RWMutex

	rolesCache   map[Snowflake]Role
	rolesCacheMu sync.RWMutex

	emojisCache   map[SnowflakePairKey]Emoji
	emojisCacheMu sync.RWMutex

	stickersCache   map[SnowflakePairKey]Sticker
	stickersCacheMu sync.RWMutex

	presencesCache   map[SnowflakePairKey]Presence
	presencesCacheMu sync.RWMutex

	integrationsCache   map[SnowflakePairKey]Integration
	integrationsCacheMu sync.RWMutex

	stageInstancesCache   map[Snowflake]StageInstance
	stageInstancesCacheMu sync.RWMutex

	scheduledEventsCache   map[Snowflake]GuildScheduledEvent
	scheduledEventsCacheMu sync.RWMutex

	guildToMemberIDs   map[Snowflake]map[Snowflake]struct{}
	guildToMemberIDsMu sync.RWMutex

	guildToChannelIDs   map[Snowflake]map[Snowflake]struct{}
	guildToChannelIDsMu sync.RWMutex

	guildToVoiceStateUserIDs   map[Snowflake]map[Snowflake]struct{}
	guildToVoiceStateUserIDsMu sync.RWMutex

	guildToRoleIDs   map[Snowflake]map[Snowflake]struct{}
	guildToRoleIDsMu sync.RWMutex

	guildToEmojiIDs   map[Snowflake]map[Snowflake]struct{}
	guildToEmojiIDsMu sync.RWMutex

	guildToStickerIDs   map[Snowflake]map[Snowflake]struct{}
	guildToStickerIDsMu sync.RWMutex

	guildToPresenceUserIDs   map[Snowflake]map[Snowflake]struct{}
	guildToPresenceUserIDsMu sync.RWMutex

	guildToIntegrationIDs   map[Snowflake]map[Snowflake]struct{}
	guildToIntegrationIDsMu sync.RWMutex

	guildToStageInstanceIDs   map[Snowflake]map[Snowflake]struct{}
	guildToStageInstanceIDsMu sync.RWMutex

	guildToScheduledEventIDs   map[Snowflake]map[Snowflake]struct{}
	guildToScheduledEventIDsMu sync.RWMutex
}

// NewDefaultCache creates the built-in CacheManager.
//
// messageCacheSize bounds how many messages are retained per channel; once a
// channel holds that many cached messages, putting a new one evicts the
// oldest. A value of zero or less is replaced by 100. It has no effect when
// CacheFlagMessages is not set.
func NewDefaultCache(flags CacheFlags, messageCacheSize int) CacheManager {
	if messageCacheSize <= 0 {
		messageCacheSize = 100
	}
	return &DefaultCache{
		flags:                    flags,
		messageCacheSize:         messageCacheSize,
		usersCache:               NewSnowflakeShardMap[User](),
		guildsCache:              make(map[Snowflake]Guild),
		membersCache:             make(map[SnowflakePairKey]Member),
		channelsCache:            make(map[Snowflake]Channel),
		messagesCache:            NewSnowflakeShardMap[Message](),
		channelMessageOrder:      make(map[Snowflake]*messageRing),
		voiceStatesCache:         make(map[SnowflakePairKey]VoiceState),
		rolesCache:               make(map[Snowflake]Role),
		emojisCache:              make(map[SnowflakePairKey]Emoji),
		stickersCache:            make(map[SnowflakePairKey]Sticker),
		presencesCache:           make(map[SnowflakePairKey]Presence),
		integrationsCache:        make(map[SnowflakePairKey]Integration),
		stageInstancesCache:      make(map[Snowflake]StageInstance),
		scheduledEventsCache:     make(map[Snowflake]GuildScheduledEvent),
		guildToMemberIDs:         make(map[Snowflake]map[Snowflake]struct{}),
		guildToChannelIDs:        make(map[Snowflake]map[Snowflake]struct{}),
		guildToVoiceStateUserIDs: make(map[Snowflake]map[Snowflake]struct{}),
		guildToRoleIDs:           make(map[Snowflake]map[Snowflake]struct{}),
		guildToEmojiIDs:          make(map[Snowflake]map[Snowflake]struct{}),
		guildToStickerIDs:        make(map[Snowflake]map[Snowflake]struct{}),
		guildToPresenceUserIDs:   make(map[Snowflake]map[Snowflake]struct{}),
		guildToIntegrationIDs:    make(map[Snowflake]map[Snowflake]struct{}),
		guildToStageInstanceIDs:  make(map[Snowflake]map[Snowflake]struct{}),
		guildToScheduledEventIDs: make(map[Snowflake]map[Snowflake]struct{}),
	}
}

func (c *DefaultCache) Flags() CacheFlags {
	return c.flags
}

func (c *DefaultCache) SetFlags(flags ...CacheFlags) {
	c.flags = CacheFlagsNone
	for _, f := range flags {
		c.flags |= f
	}
}

/*****************************
 *           Get
 *****************************/

func (c *DefaultCache) GetUser(userID Snowflake) (user User, ok bool) {
	return c.usersCache.Get(userID)
}

func (c *DefaultCache) GetCurrentUser() (user User, ok bool) {
	c.currentUserMu.RLock()
	defer c.currentUserMu.RUnlock()
	if c.currentUser == nil {
		return User{}, false
	}
	return *c.currentUser, true
}

func (c *DefaultCache) GetGuild(guildID Snowflake) (guild Guild, ok bool) {
	c.guildsCacheMu.RLock()
	guild, ok = c.guildsCache[guildID]
	c.guildsCacheMu.RUnlock()
	return
}

func (c *DefaultCache) GetMember(guildID, userID Snowflake) (member Member, ok bool) {
	c.membersCacheMu.RLock()
	member, ok = c.membersCache[SnowflakePairKey{A: guildID, B: userID}]
	c.membersCacheMu.RUnlock()
	return
}

func (c *DefaultCache) GetChannel(channelID Snowflake) (channel Channel, ok bool) {
	c.channelsCacheMu.RLock()
	channel, ok = c.channelsCache[channelID]
	c.channelsCacheMu.RUnlock()
	return
}

func (c *DefaultCache) GetMessage(messageID Snowflake) (message Message, ok bool) {
	return c.messagesCache.Get(messageID)
}

func (c *DefaultCache) GetVoiceState(guildID, userID Snowflake) (voiceState VoiceState, ok bool) {
	c.voiceStatesCacheMu.RLock()
	voiceState, ok = c.voiceStatesCache[SnowflakePairKey{A: guildID, B: userID}]
	c.voiceStatesCacheMu.RUnlock()
	return
}

func (c *DefaultCache) GetRole(roleID Snowflake) (role Role, ok bool) {
	c.rolesCacheMu.RLock()
	role, ok = c.rolesCache[roleID]
	c.rolesCacheMu.RUnlock()
	return
}

func (c *DefaultCache) GetEmoji(emojiID Snowflake) (emoji Emoji, ok bool) {
	c.emojisCacheMu.RLock()
	defer c.emojisCacheMu.RUnlock()
	for key, e := range c.emojisCache {
		if key.B == emojiID {
			return e, true
		}
	}
	return Emoji{}, false
}

func (c *DefaultCache) GetSticker(stickerID Snowflake) (sticker Sticker, ok bool) {
	c.stickersCacheMu.RLock()
	defer c.stickersCacheMu.RUnlock()
	for key, s := range c.stickersCache {
		if key.B == stickerID {
			return s, true
		}
	}
	return Sticker{}, false
}

func (c *DefaultCache) GetPresence(guildID, userID Snowflake) (presence Presence, ok bool) {
	c.presencesCacheMu.RLock()
	presence, ok = c.presencesCache[SnowflakePairKey{A: guildID, B: userID}]
	c.presencesCacheMu.RUnlock()
	return
}

func (c *DefaultCache) GetIntegration(guildID, integrationID Snowflake) (integration Integration, ok bool) {
	c.integrationsCacheMu.RLock()
	integration, ok = c.integrationsCache[SnowflakePairKey{A: guildID, B: integrationID}]
	c.integrationsCacheMu.RUnlock()
	return
}

func (c *DefaultCache) GetStageInstance(stageInstanceID Snowflake) (stageInstance StageInstance, ok bool) {
	c.stageInstancesCacheMu.RLock()
	stageInstance, ok = c.stageInstancesCache[stageInstanceID]
	c.stageInstancesCacheMu.RUnlock()
	return
}

func (c *DefaultCache) GetScheduledEvent(eventID Snowflake) (event GuildScheduledEvent, ok bool) {
	c.scheduledEventsCacheMu.RLock()
	event, ok = c.scheduledEventsCache[eventID]
	c.scheduledEventsCacheMu.RUnlock()
	return
}

func (c *DefaultCache) GetGuildChannels(guildID Snowflake) (map[Snowflake]GuildChannel, bool) {
	c.guildToChannelIDsMu.RLock()
	set, ok := c.guildToChannelIDs[guildID]
	c.guildToChannelIDsMu.RUnlock()
	if !ok {
		return nil, false
	}
	c.channelsCacheMu.RLock()
	defer c.channelsCacheMu.RUnlock()
	res := make(map[Snowflake]GuildChannel, len(set))
	for channelID := range set {
		if channel, exists := c.channelsCache[channelID]; exists {
			if gc, isGuildChannel := channel.(GuildChannel); isGuildChannel {
				res[channelID] = gc
			}
		}
	}
	return res, true
}

func (c *DefaultCache) GetGuildMembers(guildID Snowflake) (map[Snowflake]Member, bool) {
	c.guildToMemberIDsMu.RLock()
	set, ok := c.guildToMemberIDs[guildID]
	c.guildToMemberIDsMu.RUnlock()
	if !ok {
		return nil, false
	}
	c.membersCacheMu.RLock()
	defer c.membersCacheMu.RUnlock()
	res := make(map[Snowflake]Member, len(set))
	for userID := range set {
		key := SnowflakePairKey{A: guildID, B: userID}
		if member, exists := c.membersCache[key]; exists {
			res[userID] = member
		}
	}
	return res, true
}

func (c *DefaultCache) GetGuildVoiceStates(guildID Snowflake) (map[Snowflake]VoiceState, bool) {
	c.guildToVoiceStateUserIDsMu.RLock()
	set, ok := c.guildToVoiceStateUserIDs[guildID]
	c.guildToVoiceStateUserIDsMu.RUnlock()
	if !ok {
		return nil, false
	}
	c.voiceStatesCacheMu.RLock()
	defer c.voiceStatesCacheMu.RUnlock()
	res := make(map[Snowflake]VoiceState, len(set))
	for userID := range set {
		key := SnowflakePairKey{A: guildID, B: userID}
		if voiceState, exists := c.voiceStatesCache[key]; exists {
			res[userID] = voiceState
		}
	}
	return res, true
}

func (c *DefaultCache) GetGuildRoles(guildID Snowflake) (map[Snowflake]Role, bool) {
	c.guildToRoleIDsMu.RLock()
	set, ok := c.guildToRoleIDs[guildID]
	c.guildToRoleIDsMu.RUnlock()
	if !ok {
		return nil, false
	}
	c.rolesCacheMu.RLock()
	defer c.rolesCacheMu.RUnlock()
	res := make(map[Snowflake]Role, len(set))
	for roleID := range set {
		if role, exists := c.rolesCache[roleID]; exists {
			res[roleID] = role
		}
	}
	return res, true
}

func (c *DefaultCache) GetGuildEmojis(guildID Snowflake) (map[Snowflake]Emoji, bool) {
	c.guildToEmojiIDsMu.RLock()
	set, ok := c.guildToEmojiIDs[guildID]
	c.guildToEmojiIDsMu.RUnlock()
	if !ok {
		return nil, false
	}
	c.emojisCacheMu.RLock()
	defer c.emojisCacheMu.RUnlock()
	res := make(map[Snowflake]Emoji, len(set))
	for emojiID := range set {
		if emoji, exists := c.emojisCache[SnowflakePairKey{A: guildID, B: emojiID}]; exists {
			res[emojiID] = emoji
		}
	}
	return res, true
}

func (c *DefaultCache) GetGuildStickers(guildID Snowflake) (map[Snowflake]Sticker, bool) {
	c.guildToStickerIDsMu.RLock()
	set, ok := c.guildToStickerIDs[guildID]
	c.guildToStickerIDsMu.RUnlock()
	if !ok {
		return nil, false
	}
	c.stickersCacheMu.RLock()
	defer c.stickersCacheMu.RUnlock()
	res := make(map[Snowflake]Sticker, len(set))
	for stickerID := range set {
		if sticker, exists := c.stickersCache[SnowflakePairKey{A: guildID, B: stickerID}]; exists {
			res[stickerID] = sticker
		}
	}
	return res, true
}

func (c *DefaultCache) GetGuildPresences(guildID Snowflake) (map[Snowflake]Presence, bool) {
	c.guildToPresenceUserIDsMu.RLock()
	set, ok := c.guildToPresenceUserIDs[guildID]
	c.guildToPresenceUserIDsMu.RUnlock()
	if !ok {
		return nil, false
	}
	c.presencesCacheMu.RLock()
	defer c.presencesCacheMu.RUnlock()
	res := make(map[Snowflake]Presence, len(set))
	for userID := range set {
		if presence, exists := c.presencesCache[SnowflakePairKey{A: guildID, B: userID}]; exists {
			res[userID] = presence
		}
	}
	return res, true
}

func (c *DefaultCache) GetGuildIntegrations(guildID Snowflake) (map[Snowflake]Integration, bool) {
	c.guildToIntegrationIDsMu.RLock()
	set, ok := c.guildToIntegrationIDs[guildID]
	c.guildToIntegrationIDsMu.RUnlock()
	if !ok {
		return nil, false
	}
	c.integrationsCacheMu.RLock()
	defer c.integrationsCacheMu.RUnlock()
	res := make(map[Snowflake]Integration, len(set))
	for integrationID := range set {
		if integration, exists := c.integrationsCache[SnowflakePairKey{A: guildID, B: integrationID}]; exists {
			res[integrationID] = integration
		}
	}
	return res, true
}

func (c *DefaultCache) GetGuildStageInstances(guildID Snowflake) (map[Snowflake]StageInstance, bool) {
	c.guildToStageInstanceIDsMu.RLock()
	set, ok := c.guildToStageInstanceIDs[guildID]
	c.guildToStageInstanceIDsMu.RUnlock()
	if !ok {
		return nil, false
	}
	c.stageInstancesCacheMu.RLock()
	defer c.stageInstancesCacheMu.RUnlock()
	res := make(map[Snowflake]StageInstance, len(set))
	for id := range set {
		if instance, exists := c.stageInstancesCache[id]; exists {
			res[id] = instance
		}
	}
	return res, true
}

func (c *DefaultCache) GetGuildScheduledEvents(guildID Snowflake) (map[Snowflake]GuildScheduledEvent, bool) {
	c.guildToScheduledEventIDsMu.RLock()
	set, ok := c.guildToScheduledEventIDs[guildID]
	c.guildToScheduledEventIDsMu.RUnlock()
	if !ok {
		return nil, false
	}
	c.scheduledEventsCacheMu.RLock()
	defer c.scheduledEventsCacheMu.RUnlock()
	res := make(map[Snowflake]GuildScheduledEvent, len(set))
	for id := range set {
		if event, exists := c.scheduledEventsCache[id]; exists {
			res[id] = event
		}
	}
	return res, true
}

func (c *DefaultCache) GetChannelMessages(channelID Snowflake) ([]Message, bool) {
	c.channelMessageOrderMu.Lock()
	ring, ok := c.channelMessageOrder[channelID]
	var ids []Snowflake
	if ok {
		ids = ring.snapshot()
	}
	c.channelMessageOrderMu.Unlock()
	if !ok {
		return nil, false
	}
	res := make([]Message, 0, len(ids))
	for _, id := range ids {
		if message, exists := c.messagesCache.Get(id); exists {
			res = append(res, message)
		}
	}
	return res, true
}

/*****************************
 *           Has
 *****************************/

func (c *DefaultCache) HasUser(userID Snowflake) bool {
	if !c.flags.Has(CacheFlagUsers) {
		return false
	}
	return c.usersCache.Has(userID)
}

func (c *DefaultCache) HasGuild(guildID Snowflake) bool {
	if !c.flags.Has(CacheFlagGuilds) {
		return false
	}
	c.guildsCacheMu.RLock()
	_, exists := c.guildsCache[guildID]
	c.guildsCacheMu.RUnlock()
	return exists
}

func (c *DefaultCache) HasMember(guildID, userID Snowflake) bool {
	if !c.flags.Has(CacheFlagMembers) {
		return false
	}
	c.membersCacheMu.RLock()
	_, exists := c.membersCache[SnowflakePairKey{A: guildID, B: userID}]
	c.membersCacheMu.RUnlock()
	return exists
}

func (c *DefaultCache) HasChannel(channelID Snowflake) bool {
	if !c.flags.Has(CacheFlagChannels) {
		return false
	}
	c.channelsCacheMu.RLock()
	_, exists := c.channelsCache[channelID]
	c.channelsCacheMu.RUnlock()
	return exists
}

func (c *DefaultCache) HasMessage(messageID Snowflake) bool {
	if !c.flags.Has(CacheFlagMessages) {
		return false
	}
	return c.messagesCache.Has(messageID)
}

func (c *DefaultCache) HasVoiceState(guildID, userID Snowflake) bool {
	if !c.flags.Has(CacheFlagVoiceStates) {
		return false
	}
	c.voiceStatesCacheMu.RLock()
	_, exists := c.voiceStatesCache[SnowflakePairKey{A: guildID, B: userID}]
	c.voiceStatesCacheMu.RUnlock()
	return exists
}

func (c *DefaultCache) HasRole(roleID Snowflake) bool {
	if !c.flags.Has(CacheFlagRoles) {
		return false
	}
	c.rolesCacheMu.RLock()
	_, exists := c.rolesCache[roleID]
	c.rolesCacheMu.RUnlock()
	return exists
}

func (c *DefaultCache) HasEmoji(emojiID Snowflake) bool {
	if !c.flags.Has(CacheFlagEmojis) {
		return false
	}
	_, ok := c.GetEmoji(emojiID)
	return ok
}

func (c *DefaultCache) HasSticker(stickerID Snowflake) bool {
	if !c.flags.Has(CacheFlagStickers) {
		return false
	}
	_, ok := c.GetSticker(stickerID)
	return ok
}

func (c *DefaultCache) HasIntegration(guildID, integrationID Snowflake) bool {
	if !c.flags.Has(CacheFlagIntegrations) {
		return false
	}
	c.integrationsCacheMu.RLock()
	_, exists := c.integrationsCache[SnowflakePairKey{A: guildID, B: integrationID}]
	c.integrationsCacheMu.RUnlock()
	return exists
}

func (c *DefaultCache) HasStageInstance(stageInstanceID Snowflake) bool {
	if !c.flags.Has(CacheFlagStageInstances) {
		return false
	}
	c.stageInstancesCacheMu.RLock()
	_, exists := c.stageInstancesCache[stageInstanceID]
	c.stageInstancesCacheMu.RUnlock()
	return exists
}

func (c *DefaultCache) HasScheduledEvent(eventID Snowflake) bool {
	if !c.flags.Has(CacheFlagScheduledEvents) {
		return false
	}
	c.scheduledEventsCacheMu.RLock()
	_, exists := c.scheduledEventsCache[eventID]
	c.scheduledEventsCacheMu.RUnlock()
	return exists
}

func (c *DefaultCache) HasGuildChannels(guildID Snowflake) bool {
	if !c.flags.Has(CacheFlagChannels) {
		return false
	}
	c.guildToChannelIDsMu.RLock()
	_, exists := c.guildToChannelIDs[guildID]
	c.guildToChannelIDsMu.RUnlock()
	return exists
}

func (c *DefaultCache) HasGuildMembers(guildID Snowflake) bool {
	if !c.flags.Has(CacheFlagMembers) {
		return false
	}
	c.guildToMemberIDsMu.RLock()
	_, exists := c.guildToMemberIDs[guildID]
	c.guildToMemberIDsMu.RUnlock()
	return exists
}

func (c *DefaultCache) HasGuildVoiceStates(guildID Snowflake) bool {
	if !c.flags.Has(CacheFlagVoiceStates) {
		return false
	}
	c.guildToVoiceStateUserIDsMu.RLock()
	_, exists := c.guildToVoiceStateUserIDs[guildID]
	c.guildToVoiceStateUserIDsMu.RUnlock()
	return exists
}

func (c *DefaultCache) HasGuildRoles(guildID Snowflake) bool {
	if !c.flags.Has(CacheFlagRoles) {
		return false
	}
	c.guildToRoleIDsMu.RLock()
	_, exists := c.guildToRoleIDs[guildID]
	c.guildToRoleIDsMu.RUnlock()
	return exists
}

/*****************************
 *          Count
 *****************************/

func (c *DefaultCache) CountUsers() int {
	return c.usersCache.Len()
}

func (c *DefaultCache) CountGuilds() int {
	c.guildsCacheMu.RLock()
	count := len(c.guildsCache)
	c.guildsCacheMu.RUnlock()
	return count
}

func (c *DefaultCache) CountMembers() int {
	c.membersCacheMu.RLock()
	count := len(c.membersCache)
	c.membersCacheMu.RUnlock()
	return count
}

func (c *DefaultCache) CountChannels() int {
	c.channelsCacheMu.RLock()
	count := len(c.channelsCache)
	c.channelsCacheMu.RUnlock()
	return count
}

func (c *DefaultCache) CountMessages() int {
	return c.messagesCache.Len()
}

func (c *DefaultCache) CountVoiceStates() int {
	c.voiceStatesCacheMu.RLock()
	count := len(c.voiceStatesCache)
	c.voiceStatesCacheMu.RUnlock()
	return count
}

func (c *DefaultCache) CountRoles() int {
	c.rolesCacheMu.RLock()
	count := len(c.rolesCache)
	c.rolesCacheMu.RUnlock()
	return count
}

func (c *DefaultCache) CountEmojis() int {
	c.emojisCacheMu.RLock()
	count := len(c.emojisCache)
	c.emojisCacheMu.RUnlock()
	return count
}

func (c *DefaultCache) CountStickers() int {
	c.stickersCacheMu.RLock()
	count := len(c.stickersCache)
	c.stickersCacheMu.RUnlock()
	return count
}

func (c *DefaultCache) CountIntegrations() int {
	c.integrationsCacheMu.RLock()
	count := len(c.integrationsCache)
	c.integrationsCacheMu.RUnlock()
	return count
}

func (c *DefaultCache) CountStageInstances() int {
	c.stageInstancesCacheMu.RLock()
	count := len(c.stageInstancesCache)
	c.stageInstancesCacheMu.RUnlock()
	return count
}

func (c *DefaultCache) CountScheduledEvents() int {
	c.scheduledEventsCacheMu.RLock()
	count := len(c.scheduledEventsCache)
	c.scheduledEventsCacheMu.RUnlock()
	return count
}

func (c *DefaultCache) CountGuildChannels(guildID Snowflake) int {
	c.guildToChannelIDsMu.RLock()
	set, exists := c.guildToChannelIDs[guildID]
	c.guildToChannelIDsMu.RUnlock()
	if !exists {
		return 0
	}
	return len(set)
}

func (c *DefaultCache) CountGuildMembers(guildID Snowflake) int {
	c.guildToMemberIDsMu.RLock()
	set, exists := c.guildToMemberIDs[guildID]
	c.guildToMemberIDsMu.RUnlock()
	if !exists {
		return 0
	}
	return len(set)
}

func (c *DefaultCache) CountGuildRoles(guildID Snowflake) int {
	c.guildToRoleIDsMu.RLock()
	set, exists := c.guildToRoleIDs[guildID]
	c.guildToRoleIDsMu.RUnlock()
	if !exists {
		return 0
	}
	return len(set)
}

/*****************************
 *           Put
 *****************************/

// PutUser stores user in the cache, merging it into any existing guild
// membership's embedded user data is the caller's responsibility; PutUser
// only ever touches the flat user table. It returns the stored value so
// callers that pooled the argument can release it immediately after.
func (c *DefaultCache) PutUser(user User) User {
	if !c.flags.Has(CacheFlagUsers) {
		return user
	}
	c.usersCache.Set(user.ID, user)
	return user
}

func (c *DefaultCache) SetCurrentUser(user User) {
	if !c.flags.Has(CacheFlagCurrentUser) {
		return
	}
	c.currentUserMu.Lock()
	c.currentUser = &user
	c.currentUserMu.Unlock()
}

func (c *DefaultCache) PutGuild(guild Guild) {
	if !c.flags.Has(CacheFlagGuilds) {
		return
	}
	c.guildsCacheMu.Lock()
	c.guildsCache[guild.ID] = guild
	c.guildsCacheMu.Unlock()
}

func (c *DefaultCache) PutMember(member Member) {
	if !c.flags.Has(CacheFlagMembers) {
		return
	}
	userID := member.User.ID
	guildID := member.GuildID
	key := SnowflakePairKey{A: guildID, B: userID}
	c.membersCacheMu.Lock()
	c.membersCache[key] = member
	c.membersCacheMu.Unlock()
	c.guildToMemberIDsMu.Lock()
	if _, exists := c.guildToMemberIDs[guildID]; !exists {
		c.guildToMemberIDs[guildID] = make(map[Snowflake]struct{})
	}
	c.guildToMemberIDs[guildID][userID] = struct{}{}
	c.guildToMemberIDsMu.Unlock()
}

func (c *DefaultCache) PutChannel(channel Channel) {
	if !c.flags.Has(CacheFlagChannels) {
		return
	}
	channelID := channel.GetID()
	c.channelsCacheMu.Lock()
	c.channelsCache[channelID] = channel
	c.channelsCacheMu.Unlock()
	if guildChannel, ok := channel.(GuildChannel); ok {
		guildID := guildChannel.GetGuildID()
		c.guildToChannelIDsMu.Lock()
		if _, exists := c.guildToChannelIDs[guildID]; !exists {
			c.guildToChannelIDs[guildID] = make(map[Snowflake]struct{})
		}
		c.guildToChannelIDs[guildID][channelID] = struct{}{}
		c.guildToChannelIDsMu.Unlock()
	}
}

// PutMessage stores message and appends it to its channel's retention ring.
// If the channel is already at messageCacheSize, the oldest message in that
// channel is evicted from both the ring and the message table.
func (c *DefaultCache) PutMessage(message Message) {
	if !c.flags.Has(CacheFlagMessages) {
		return
	}
	_, alreadyCached := c.messagesCache.Get(message.ID)
	c.messagesCache.Set(message.ID, message)

	if alreadyCached {
		return
	}

	c.channelMessageOrderMu.Lock()
	ring, ok := c.channelMessageOrder[message.ChannelID]
	if !ok {
		ring = newMessageRing(c.messageCacheSize)
		c.channelMessageOrder[message.ChannelID] = ring
	}
	evicted, didEvict := ring.push(message.ID)
	c.channelMessageOrderMu.Unlock()

	if didEvict {
		c.messagesCache.Delete(evicted)
	}
}

func (c *DefaultCache) PutVoiceState(voiceState VoiceState) {
	if !c.flags.Has(CacheFlagVoiceStates) {
		return
	}
	guildID := voiceState.GuildID
	userID := voiceState.UserID
	key := SnowflakePairKey{A: guildID, B: userID}
	c.voiceStatesCacheMu.Lock()
	c.voiceStatesCache[key] = voiceState
	c.voiceStatesCacheMu.Unlock()
	c.guildToVoiceStateUserIDsMu.Lock()
	if _, exists := c.guildToVoiceStateUserIDs[guildID]; !exists {
		c.guildToVoiceStateUserIDs[guildID] = make(map[Snowflake]struct{})
	}
	c.guildToVoiceStateUserIDs[guildID][userID] = struct{}{}
	c.guildToVoiceStateUserIDsMu.Unlock()
}

func (c *DefaultCache) PutRole(role Role) {
	if !c.flags.Has(CacheFlagRoles) {
		return
	}
	guildID := role.GuildID
	roleID := role.ID
	c.rolesCacheMu.Lock()
	c.rolesCache[roleID] = role
	c.rolesCacheMu.Unlock()
	c.guildToRoleIDsMu.Lock()
	if _, exists := c.guildToRoleIDs[guildID]; !exists {
		c.guildToRoleIDs[guildID] = make(map[Snowflake]struct{})
	}
	c.guildToRoleIDs[guildID][roleID] = struct{}{}
	c.guildToRoleIDsMu.Unlock()
}

func (c *DefaultCache) PutEmoji(guildID Snowflake, emoji Emoji) {
	if !c.flags.Has(CacheFlagEmojis) {
		return
	}
	key := SnowflakePairKey{A: guildID, B: emoji.ID}
	c.emojisCacheMu.Lock()
	c.emojisCache[key] = emoji
	c.emojisCacheMu.Unlock()
	c.guildToEmojiIDsMu.Lock()
	if _, exists := c.guildToEmojiIDs[guildID]; !exists {
		c.guildToEmojiIDs[guildID] = make(map[Snowflake]struct{})
	}
	c.guildToEmojiIDs[guildID][emoji.ID] = struct{}{}
	c.guildToEmojiIDsMu.Unlock()
}

func (c *DefaultCache) PutSticker(guildID Snowflake, sticker Sticker) {
	if !c.flags.Has(CacheFlagStickers) {
		return
	}
	key := SnowflakePairKey{A: guildID, B: sticker.ID}
	c.stickersCacheMu.Lock()
	c.stickersCache[key] = sticker
	c.stickersCacheMu.Unlock()
	c.guildToStickerIDsMu.Lock()
	if _, exists := c.guildToStickerIDs[guildID]; !exists {
		c.guildToStickerIDs[guildID] = make(map[Snowflake]struct{})
	}
	c.guildToStickerIDs[guildID][sticker.ID] = struct{}{}
	c.guildToStickerIDsMu.Unlock()
}

func (c *DefaultCache) PutPresence(presence Presence) {
	if !c.flags.Has(CacheFlagPresences) {
		return
	}
	guildID := presence.GuildID
	userID := presence.UserID
	key := SnowflakePairKey{A: guildID, B: userID}
	c.presencesCacheMu.Lock()
	c.presencesCache[key] = presence
	c.presencesCacheMu.Unlock()
	c.guildToPresenceUserIDsMu.Lock()
	if _, exists := c.guildToPresenceUserIDs[guildID]; !exists {
		c.guildToPresenceUserIDs[guildID] = make(map[Snowflake]struct{})
	}
	c.guildToPresenceUserIDs[guildID][userID] = struct{}{}
	c.guildToPresenceUserIDsMu.Unlock()
}

func (c *DefaultCache) PutIntegration(integration Integration) {
	if !c.flags.Has(CacheFlagIntegrations) {
		return
	}
	guildID := integration.GuildID
	key := SnowflakePairKey{A: guildID, B: integration.ID}
	c.integrationsCacheMu.Lock()
	c.integrationsCache[key] = integration
	c.integrationsCacheMu.Unlock()
	c.guildToIntegrationIDsMu.Lock()
	if _, exists := c.guildToIntegrationIDs[guildID]; !exists {
		c.guildToIntegrationIDs[guildID] = make(map[Snowflake]struct{})
	}
	c.guildToIntegrationIDs[guildID][integration.ID] = struct{}{}
	c.guildToIntegrationIDsMu.Unlock()
}

func (c *DefaultCache) PutStageInstance(stageInstance StageInstance) {
	if !c.flags.Has(CacheFlagStageInstances) {
		return
	}
	guildID := stageInstance.GuildID
	c.stageInstancesCacheMu.Lock()
	c.stageInstancesCache[stageInstance.ID] = stageInstance
	c.stageInstancesCacheMu.Unlock()
	c.guildToStageInstanceIDsMu.Lock()
	if _, exists := c.guildToStageInstanceIDs[guildID]; !exists {
		c.guildToStageInstanceIDs[guildID] = make(map[Snowflake]struct{})
	}
	c.guildToStageInstanceIDs[guildID][stageInstance.ID] = struct{}{}
	c.guildToStageInstanceIDsMu.Unlock()
}

func (c *DefaultCache) PutScheduledEvent(event GuildScheduledEvent) {
	if !c.flags.Has(CacheFlagScheduledEvents) {
		return
	}
	guildID := event.GuildID
	c.scheduledEventsCacheMu.Lock()
	c.scheduledEventsCache[event.ID] = event
	c.scheduledEventsCacheMu.Unlock()
	c.guildToScheduledEventIDsMu.Lock()
	if _, exists := c.guildToScheduledEventIDs[guildID]; !exists {
		c.guildToScheduledEventIDs[guildID] = make(map[Snowflake]struct{})
	}
	c.guildToScheduledEventIDs[guildID][event.ID] = struct{}{}
	c.guildToScheduledEventIDsMu.Unlock()
}

/*****************************
 *           Del
 *****************************/

func (c *DefaultCache) DelUser(userID Snowflake) bool {
	return c.usersCache.Delete(userID)
}

func (c *DefaultCache) DelGuild(guildID Snowflake) bool {
	c.guildsCacheMu.Lock()
	_, ok := c.guildsCache[guildID]
	if ok {
		delete(c.guildsCache, guildID)
	}
	c.guildsCacheMu.Unlock()
	if ok {
		c.DelGuildMembers(guildID)
		c.DelGuildChannels(guildID)
		c.DelGuildRoles(guildID)
		c.DelGuildEmojis(guildID)
		c.DelGuildStickers(guildID)
		c.DelGuildVoiceStates(guildID)
		c.DelGuildIntegrations(guildID)
		c.DelGuildStageInstances(guildID)
		c.DelGuildScheduledEvents(guildID)
		c.guildToPresenceUserIDsMu.Lock()
		presenceUsers, hasPresences := c.guildToPresenceUserIDs[guildID]
		delete(c.guildToPresenceUserIDs, guildID)
		c.guildToPresenceUserIDsMu.Unlock()
		if hasPresences {
			c.presencesCacheMu.Lock()
			for userID := range presenceUsers {
				delete(c.presencesCache, SnowflakePairKey{A: guildID, B: userID})
			}
			c.presencesCacheMu.Unlock()
		}
	}
	return ok
}

func (c *DefaultCache) DelMember(guildID, userID Snowflake) bool {
	key := SnowflakePairKey{A: guildID, B: userID}
	c.membersCacheMu.Lock()
	_, ok := c.membersCache[key]
	if ok {
		delete(c.membersCache, key)
	}
	c.membersCacheMu.Unlock()
	if ok {
		c.guildToMemberIDsMu.Lock()
		if m, has := c.guildToMemberIDs[guildID]; has {
			delete(m, userID)
			if len(m) == 0 {
				delete(c.guildToMemberIDs, guildID)
			}
		}
		c.guildToMemberIDsMu.Unlock()
	}
	return ok
}

func (c *DefaultCache) DelChannel(channelID Snowflake) bool {
	c.channelsCacheMu.Lock()
	channel, ok := c.channelsCache[channelID]
	if ok {
		delete(c.channelsCache, channelID)
	}
	c.channelsCacheMu.Unlock()
	if ok {
		if guildChannel, isGuildChannel := channel.(GuildChannel); isGuildChannel {
			guildID := guildChannel.GetGuildID()
			c.guildToChannelIDsMu.Lock()
			if m, has := c.guildToChannelIDs[guildID]; has {
				delete(m, channelID)
				if len(m) == 0 {
					delete(c.guildToChannelIDs, guildID)
				}
			}
			c.guildToChannelIDsMu.Unlock()
		}
		c.channelMessageOrderMu.Lock()
		ring, hasRing := c.channelMessageOrder[channelID]
		delete(c.channelMessageOrder, channelID)
		c.channelMessageOrderMu.Unlock()
		if hasRing {
			for _, id := range ring.snapshot() {
				c.messagesCache.Delete(id)
			}
		}
	}
	return ok
}

func (c *DefaultCache) DelMessage(messageID Snowflake) bool {
	message, ok := c.messagesCache.Get(messageID)
	if ok {
		c.messagesCache.Delete(messageID)
	}
	if ok {
		c.channelMessageOrderMu.Lock()
		if ring, has := c.channelMessageOrder[message.ChannelID]; has {
			ring.remove(messageID)
		}
		c.channelMessageOrderMu.Unlock()
	}
	return ok
}

func (c *DefaultCache) DelVoiceState(guildID, userID Snowflake) bool {
	key := SnowflakePairKey{A: guildID, B: userID}
	c.voiceStatesCacheMu.Lock()
	_, ok := c.voiceStatesCache[key]
	if ok {
		delete(c.voiceStatesCache, key)
	}
	c.voiceStatesCacheMu.Unlock()
	if ok {
		c.guildToVoiceStateUserIDsMu.Lock()
		if m, has := c.guildToVoiceStateUserIDs[guildID]; has {
			delete(m, userID)
			if len(m) == 0 {
				delete(c.guildToVoiceStateUserIDs, guildID)
			}
		}
		c.guildToVoiceStateUserIDsMu.Unlock()
	}
	return ok
}

func (c *DefaultCache) DelRole(guildID, roleID Snowflake) bool {
	c.rolesCacheMu.Lock()
	_, ok := c.rolesCache[roleID]
	if ok {
		delete(c.rolesCache, roleID)
	}
	c.rolesCacheMu.Unlock()
	if ok {
		c.guildToRoleIDsMu.Lock()
		if m, has := c.guildToRoleIDs[guildID]; has {
			delete(m, roleID)
			if len(m) == 0 {
				delete(c.guildToRoleIDs, guildID)
			}
		}
		c.guildToRoleIDsMu.Unlock()
	}
	return ok
}

func (c *DefaultCache) DelEmoji(guildID, emojiID Snowflake) bool {
	key := SnowflakePairKey{A: guildID, B: emojiID}
	c.emojisCacheMu.Lock()
	_, ok := c.emojisCache[key]
	if ok {
		delete(c.emojisCache, key)
	}
	c.emojisCacheMu.Unlock()
	if ok {
		c.guildToEmojiIDsMu.Lock()
		if m, has := c.guildToEmojiIDs[guildID]; has {
			delete(m, emojiID)
			if len(m) == 0 {
				delete(c.guildToEmojiIDs, guildID)
			}
		}
		c.guildToEmojiIDsMu.Unlock()
	}
	return ok
}

func (c *DefaultCache) DelSticker(guildID, stickerID Snowflake) bool {
	key := SnowflakePairKey{A: guildID, B: stickerID}
	c.stickersCacheMu.Lock()
	_, ok := c.stickersCache[key]
	if ok {
		delete(c.stickersCache, key)
	}
	c.stickersCacheMu.Unlock()
	if ok {
		c.guildToStickerIDsMu.Lock()
		if m, has := c.guildToStickerIDs[guildID]; has {
			delete(m, stickerID)
			if len(m) == 0 {
				delete(c.guildToStickerIDs, guildID)
			}
		}
		c.guildToStickerIDsMu.Unlock()
	}
	return ok
}

func (c *DefaultCache) DelPresence(guildID, userID Snowflake) bool {
	key := SnowflakePairKey{A: guildID, B: userID}
	c.presencesCacheMu.Lock()
	_, ok := c.presencesCache[key]
	if ok {
		delete(c.presencesCache, key)
	}
	c.presencesCacheMu.Unlock()
	if ok {
		c.guildToPresenceUserIDsMu.Lock()
		if m, has := c.guildToPresenceUserIDs[guildID]; has {
			delete(m, userID)
			if len(m) == 0 {
				delete(c.guildToPresenceUserIDs, guildID)
			}
		}
		c.guildToPresenceUserIDsMu.Unlock()
	}
	return ok
}

func (c *DefaultCache) DelIntegration(guildID, integrationID Snowflake) bool {
	key := SnowflakePairKey{A: guildID, B: integrationID}
	c.integrationsCacheMu.Lock()
	_, ok := c.integrationsCache[key]
	if ok {
		delete(c.integrationsCache, key)
	}
	c.integrationsCacheMu.Unlock()
	if ok {
		c.guildToIntegrationIDsMu.Lock()
		if m, has := c.guildToIntegrationIDs[guildID]; has {
			delete(m, integrationID)
			if len(m) == 0 {
				delete(c.guildToIntegrationIDs, guildID)
			}
		}
		c.guildToIntegrationIDsMu.Unlock()
	}
	return ok
}

func (c *DefaultCache) DelStageInstance(guildID, stageInstanceID Snowflake) bool {
	c.stageInstancesCacheMu.Lock()
	_, ok := c.stageInstancesCache[stageInstanceID]
	if ok {
		delete(c.stageInstancesCache, stageInstanceID)
	}
	c.stageInstancesCacheMu.Unlock()
	if ok {
		c.guildToStageInstanceIDsMu.Lock()
		if m, has := c.guildToStageInstanceIDs[guildID]; has {
			delete(m, stageInstanceID)
			if len(m) == 0 {
				delete(c.guildToStageInstanceIDs, guildID)
			}
		}
		c.guildToStageInstanceIDsMu.Unlock()
	}
	return ok
}

func (c *DefaultCache) DelScheduledEvent(guildID, eventID Snowflake) bool {
	c.scheduledEventsCacheMu.Lock()
	_, ok := c.scheduledEventsCache[eventID]
	if ok {
		delete(c.scheduledEventsCache, eventID)
	}
	c.scheduledEventsCacheMu.Unlock()
	if ok {
		c.guildToScheduledEventIDsMu.Lock()
		if m, has := c.guildToScheduledEventIDs[guildID]; has {
			delete(m, eventID)
			if len(m) == 0 {
				delete(c.guildToScheduledEventIDs, guildID)
			}
		}
		c.guildToScheduledEventIDsMu.Unlock()
	}
	return ok
}

func (c *DefaultCache) DelGuildChannels(guildID Snowflake) bool {
	c.guildToChannelIDsMu.Lock()
	set, ok := c.guildToChannelIDs[guildID]
	if ok {
		delete(c.guildToChannelIDs, guildID)
	}
	c.guildToChannelIDsMu.Unlock()
	if ok {
		c.channelsCacheMu.Lock()
		for channelID := range set {
			delete(c.channelsCache, channelID)
		}
		c.channelsCacheMu.Unlock()
	}
	return ok
}

func (c *DefaultCache) DelGuildMembers(guildID Snowflake) bool {
	c.guildToMemberIDsMu.Lock()
	set, ok := c.guildToMemberIDs[guildID]
	if ok {
		delete(c.guildToMemberIDs, guildID)
	}
	c.guildToMemberIDsMu.Unlock()
	if ok {
		c.membersCacheMu.Lock()
		for userID := range set {
			key := SnowflakePairKey{A: guildID, B: userID}
			delete(c.membersCache, key)
		}
		c.membersCacheMu.Unlock()
	}
	return ok
}

func (c *DefaultCache) DelGuildRoles(guildID Snowflake) bool {
	c.guildToRoleIDsMu.Lock()
	set, ok := c.guildToRoleIDs[guildID]
	if ok {
		delete(c.guildToRoleIDs, guildID)
	}
	c.guildToRoleIDsMu.Unlock()
	if ok {
		c.rolesCacheMu.Lock()
		for roleID := range set {
			delete(c.rolesCache, roleID)
		}
		c.rolesCacheMu.Unlock()
	}
	return ok
}

func (c *DefaultCache) DelGuildEmojis(guildID Snowflake) bool {
	c.guildToEmojiIDsMu.Lock()
	set, ok := c.guildToEmojiIDs[guildID]
	if ok {
		delete(c.guildToEmojiIDs, guildID)
	}
	c.guildToEmojiIDsMu.Unlock()
	if ok {
		c.emojisCacheMu.Lock()
		for emojiID := range set {
			delete(c.emojisCache, SnowflakePairKey{A: guildID, B: emojiID})
		}
		c.emojisCacheMu.Unlock()
	}
	return ok
}

func (c *DefaultCache) DelGuildStickers(guildID Snowflake) bool {
	c.guildToStickerIDsMu.Lock()
	set, ok := c.guildToStickerIDs[guildID]
	if ok {
		delete(c.guildToStickerIDs, guildID)
	}
	c.guildToStickerIDsMu.Unlock()
	if ok {
		c.stickersCacheMu.Lock()
		for stickerID := range set {
			delete(c.stickersCache, SnowflakePairKey{A: guildID, B: stickerID})
		}
		c.stickersCacheMu.Unlock()
	}
	return ok
}

func (c *DefaultCache) DelGuildVoiceStates(guildID Snowflake) bool {
	c.guildToVoiceStateUserIDsMu.Lock()
	set, ok := c.guildToVoiceStateUserIDs[guildID]
	if ok {
		delete(c.guildToVoiceStateUserIDs, guildID)
	}
	c.guildToVoiceStateUserIDsMu.Unlock()
	if ok {
		c.voiceStatesCacheMu.Lock()
		for userID := range set {
			delete(c.voiceStatesCache, SnowflakePairKey{A: guildID, B: userID})
		}
		c.voiceStatesCacheMu.Unlock()
	}
	return ok
}

func (c *DefaultCache) DelGuildIntegrations(guildID Snowflake) bool {
	c.guildToIntegrationIDsMu.Lock()
	set, ok := c.guildToIntegrationIDs[guildID]
	if ok {
		delete(c.guildToIntegrationIDs, guildID)
	}
	c.guildToIntegrationIDsMu.Unlock()
	if ok {
		c.integrationsCacheMu.Lock()
		for integrationID := range set {
			delete(c.integrationsCache, SnowflakePairKey{A: guildID, B: integrationID})
		}
		c.integrationsCacheMu.Unlock()
	}
	return ok
}

func (c *DefaultCache) DelGuildStageInstances(guildID Snowflake) bool {
	c.guildToStageInstanceIDsMu.Lock()
	set, ok := c.guildToStageInstanceIDs[guildID]
	if ok {
		delete(c.guildToStageInstanceIDs, guildID)
	}
	c.guildToStageInstanceIDsMu.Unlock()
	if ok {
		c.stageInstancesCacheMu.Lock()
		for id := range set {
			delete(c.stageInstancesCache, id)
		}
		c.stageInstancesCacheMu.Unlock()
	}
	return ok
}

func (c *DefaultCache) DelGuildScheduledEvents(guildID Snowflake) bool {
	c.guildToScheduledEventIDsMu.Lock()
	set, ok := c.guildToScheduledEventIDs[guildID]
	if ok {
		delete(c.guildToScheduledEventIDs, guildID)
	}
	c.guildToScheduledEventIDsMu.Unlock()
	if ok {
		c.scheduledEventsCacheMu.Lock()
		for id := range set {
			delete(c.scheduledEventsCache, id)
		}
		c.scheduledEventsCacheMu.Unlock()
	}
	return ok
}
