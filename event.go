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

// ReadyEvent Shard is ready
type ReadyEvent struct {
	ShardsID int // shard that dispatched this event
	User     User
	Guilds   []Guild
}

// ResumedEvent Shard session was resumed after a reconnect
type ResumedEvent struct {
	ShardsID int // shard that dispatched this event
}

// ReconnectingEvent is a synthetic, library-internal event fired whenever a
// shard begins a reconnect attempt (resume or fresh identify). It never
// corresponds to a Discord payload; it exists purely for observability.
type ReconnectingEvent struct {
	ShardsID int
	Resuming bool
}

// GuildCreateEvent Guild was created, or became available again
type GuildCreateEvent struct {
	ShardsID int // shard that dispatched this event
	Guild    GatewayGuild
}

// GuildUpdateEvent Guild settings were updated
type GuildUpdateEvent struct {
	ShardsID int // shard that dispatched this event
	OldGuild Guild
	NewGuild Guild
}

// GuildDeleteEvent Guild was removed, either left, kicked, or became unavailable
type GuildDeleteEvent struct {
	ShardsID    int // shard that dispatched this event
	Guild       Guild
	Unavailable bool
}

// GuildEmojisUpdateEvent Guild's custom emojis were updated
type GuildEmojisUpdateEvent struct {
	ShardsID   int // shard that dispatched this event
	GuildID    Snowflake
	OldEmojis  []Emoji
	NewEmojis  []Emoji
}

// GuildStickersUpdateEvent Guild's custom stickers were updated
type GuildStickersUpdateEvent struct {
	ShardsID    int // shard that dispatched this event
	GuildID     Snowflake
	OldStickers []Sticker
	NewStickers []Sticker
}

// GuildIntegrationsUpdateEvent Guild integrations were updated
type GuildIntegrationsUpdateEvent struct {
	ShardsID int // shard that dispatched this event
	GuildID  Snowflake
}

// ChannelCreateEvent Channel was created
type ChannelCreateEvent struct {
	ShardsID int // shard that dispatched this event
	Channel  Channel
}

var _ json.Unmarshaler = (*ChannelCreateEvent)(nil)

// UnmarshalJSON implements json.Unmarshaler for ChannelCreateEvent.
func (c *ChannelCreateEvent) UnmarshalJSON(buf []byte) error {
	channel, err := UnmarshalChannel(buf)
	if err == nil {
		c.Channel = channel
	}
	return err
}

// ChannelUpdateEvent Channel settings were updated
type ChannelUpdateEvent struct {
	ShardsID   int // shard that dispatched this event
	OldChannel Channel
	NewChannel Channel
}

// ChannelDeleteEvent Channel was deleted
type ChannelDeleteEvent struct {
	ShardsID int // shard that dispatched this event
	Channel  Channel
}

var _ json.Unmarshaler = (*ChannelDeleteEvent)(nil)

// UnmarshalJSON implements json.Unmarshaler for ChannelDeleteEvent.
func (c *ChannelDeleteEvent) UnmarshalJSON(buf []byte) error {
	channel, err := UnmarshalChannel(buf)
	if err == nil {
		c.Channel = channel
	}
	return err
}

// ChannelPinsUpdateEvent a channel's pinned messages changed
type ChannelPinsUpdateEvent struct {
	ShardsID         int // shard that dispatched this event
	GuildID          Snowflake `json:"guild_id,omitempty"`
	ChannelID        Snowflake `json:"channel_id"`
	LastPinTimestamp *string   `json:"last_pin_timestamp,omitempty"`
}

// ThreadCreateEvent Thread was created, or the current user was added to one
type ThreadCreateEvent struct {
	ShardsID int // shard that dispatched this event
	Thread   ThreadChannel
}

// ThreadUpdateEvent Thread settings were updated
type ThreadUpdateEvent struct {
	ShardsID  int // shard that dispatched this event
	OldThread ThreadChannel
	NewThread ThreadChannel
}

// ThreadDeleteEvent Thread was deleted
type ThreadDeleteEvent struct {
	ShardsID int // shard that dispatched this event
	ThreadID Snowflake `json:"id"`
	GuildID  Snowflake `json:"guild_id"`
	ParentID Snowflake `json:"parent_id"`
	Type     ChannelType `json:"type"`
}

// MessageCreateEvent Message was created
type MessageCreateEvent struct {
	ShardsID int // shard that dispatched this event
	Message  Message
}

// MessageUpdateEvent Message was edited
type MessageUpdateEvent struct {
	ShardsID   int // shard that dispatched this event
	OldMessage Message
	NewMessage Message
}

// MessageDeleteEvent Message was deleted
type MessageDeleteEvent struct {
	ShardsID int // shard that dispatched this event
	Message  Message
}

// MessageDeleteBulkEvent Multiple messages were deleted at once
type MessageDeleteBulkEvent struct {
	ShardsID   int // shard that dispatched this event
	IDs        []Snowflake `json:"ids"`
	ChannelID  Snowflake   `json:"channel_id"`
	GuildID    Snowflake   `json:"guild_id,omitempty"`
	Messages   []Message   // cached messages found for the deleted IDs, in no particular order
}

// MessageReactionAddEvent A user reacted to a message
type MessageReactionAddEvent struct {
	ShardsID  int // shard that dispatched this event
	UserID    Snowflake    `json:"user_id"`
	ChannelID Snowflake    `json:"channel_id"`
	MessageID Snowflake    `json:"message_id"`
	GuildID   Snowflake    `json:"guild_id,omitempty"`
	Member    *Member      `json:"member,omitempty"`
	Emoji     PartialEmoji `json:"emoji"`
	Burst     bool         `json:"burst"`
}

// MessageReactionRemoveEvent A user removed a reaction from a message
type MessageReactionRemoveEvent struct {
	ShardsID  int // shard that dispatched this event
	UserID    Snowflake    `json:"user_id"`
	ChannelID Snowflake    `json:"channel_id"`
	MessageID Snowflake    `json:"message_id"`
	GuildID   Snowflake    `json:"guild_id,omitempty"`
	Emoji     PartialEmoji `json:"emoji"`
	Burst     bool         `json:"burst"`
}

// MessageReactionRemoveAllEvent All reactions were removed from a message
type MessageReactionRemoveAllEvent struct {
	ShardsID  int // shard that dispatched this event
	ChannelID Snowflake `json:"channel_id"`
	MessageID Snowflake `json:"message_id"`
	GuildID   Snowflake `json:"guild_id,omitempty"`
}

// MessageReactionRemoveEmojiEvent All reactions for one emoji were removed from a message
type MessageReactionRemoveEmojiEvent struct {
	ShardsID  int // shard that dispatched this event
	ChannelID Snowflake    `json:"channel_id"`
	MessageID Snowflake    `json:"message_id"`
	GuildID   Snowflake    `json:"guild_id,omitempty"`
	Emoji     PartialEmoji `json:"emoji"`
}

// GuildMemberAddEvent A user joined a guild
type GuildMemberAddEvent struct {
	ShardsID int // shard that dispatched this event
	Member   Member
}

// GuildMemberUpdateEvent A member's guild profile was updated
type GuildMemberUpdateEvent struct {
	ShardsID  int // shard that dispatched this event
	OldMember Member
	NewMember Member
}

// GuildMemberRemoveEvent A user left, or was removed from, a guild
type GuildMemberRemoveEvent struct {
	ShardsID int // shard that dispatched this event
	GuildID  Snowflake `json:"guild_id"`
	User     User      `json:"user"`
}

// GuildMembersChunkEvent Response to a request guild members gateway command
type GuildMembersChunkEvent struct {
	ShardsID   int // shard that dispatched this event
	GuildID    Snowflake   `json:"guild_id"`
	Members    []Member    `json:"members"`
	ChunkIndex int         `json:"chunk_index"`
	ChunkCount int         `json:"chunk_count"`
	NotFound   []Snowflake `json:"not_found,omitempty"`
	Presences  []Presence  `json:"presences,omitempty"`
	Nonce      string      `json:"nonce,omitempty"`
}

// GuildRoleCreateEvent A role was created
type GuildRoleCreateEvent struct {
	ShardsID int // shard that dispatched this event
	GuildID  Snowflake `json:"guild_id"`
	Role     Role      `json:"role"`
}

// GuildRoleUpdateEvent A role was updated
type GuildRoleUpdateEvent struct {
	ShardsID int // shard that dispatched this event
	OldRole  Role
	NewRole  Role
}

// GuildRoleDeleteEvent A role was deleted
type GuildRoleDeleteEvent struct {
	ShardsID int // shard that dispatched this event
	GuildID  Snowflake `json:"guild_id"`
	RoleID   Snowflake `json:"role_id"`
	Role     Role      // the cached role, if it was present
}

// VoiceStateUpdateEvent VoiceState was updated
type VoiceStateUpdateEvent struct {
	ShardsID int // shard that dispatched this event
	OldState VoiceState
	NewState VoiceState
}

// PresenceUpdateEvent A user's presence was updated
type PresenceUpdateEvent struct {
	ShardsID    int // shard that dispatched this event
	OldPresence Presence
	NewPresence Presence
}

var _ json.Unmarshaler = (*PresenceUpdateEvent)(nil)

// UnmarshalJSON implements json.Unmarshaler for PresenceUpdateEvent, since
// Discord nests the user id under a "user" sub-object rather than at the
// top level of the presence payload.
func (e *PresenceUpdateEvent) UnmarshalJSON(buf []byte) error {
	var payload struct {
		Presence
		User struct {
			ID Snowflake `json:"id"`
		} `json:"user"`
	}
	if err := json.Unmarshal(buf, &payload); err != nil {
		return err
	}
	e.NewPresence = payload.Presence
	e.NewPresence.UserID = payload.User.ID
	return nil
}

// UserUpdateEvent The current user's account was updated
type UserUpdateEvent struct {
	ShardsID int // shard that dispatched this event
	OldUser  User
	NewUser  User
}

// IntegrationCreateEvent A guild integration was created
type IntegrationCreateEvent struct {
	ShardsID    int // shard that dispatched this event
	GuildID     Snowflake `json:"guild_id"`
	Integration Integration
}

// IntegrationUpdateEvent A guild integration was updated
type IntegrationUpdateEvent struct {
	ShardsID    int // shard that dispatched this event
	GuildID     Snowflake `json:"guild_id"`
	Integration Integration
}

// IntegrationDeleteEvent A guild integration was deleted
type IntegrationDeleteEvent struct {
	ShardsID      int // shard that dispatched this event
	GuildID       Snowflake `json:"guild_id"`
	IntegrationID Snowflake `json:"id"`
	ApplicationID Snowflake `json:"application_id,omitempty"`
}

// StageInstanceCreateEvent A Stage instance was created
type StageInstanceCreateEvent struct {
	ShardsID      int // shard that dispatched this event
	StageInstance StageInstance
}

// StageInstanceUpdateEvent A Stage instance was updated
type StageInstanceUpdateEvent struct {
	ShardsID         int // shard that dispatched this event
	OldStageInstance StageInstance
	NewStageInstance StageInstance
}

// StageInstanceDeleteEvent A Stage instance was deleted
type StageInstanceDeleteEvent struct {
	ShardsID      int // shard that dispatched this event
	StageInstance StageInstance
}

// GuildScheduledEventCreateEvent A scheduled event was created
type GuildScheduledEventCreateEvent struct {
	ShardsID int // shard that dispatched this event
	Event    GuildScheduledEvent
}

// GuildScheduledEventUpdateEvent A scheduled event was updated
type GuildScheduledEventUpdateEvent struct {
	ShardsID int // shard that dispatched this event
	OldEvent GuildScheduledEvent
	NewEvent GuildScheduledEvent
}

// GuildScheduledEventDeleteEvent A scheduled event was deleted
type GuildScheduledEventDeleteEvent struct {
	ShardsID int // shard that dispatched this event
	Event    GuildScheduledEvent
}

// GuildScheduledEventUserAddEvent A user subscribed to a scheduled event
type GuildScheduledEventUserAddEvent struct {
	ShardsID int // shard that dispatched this event
	GuildID  Snowflake `json:"guild_id"`
	EventID  Snowflake `json:"guild_scheduled_event_id"`
	UserID   Snowflake `json:"user_id"`
}

// GuildScheduledEventUserRemoveEvent A user unsubscribed from a scheduled event
type GuildScheduledEventUserRemoveEvent struct {
	ShardsID int // shard that dispatched this event
	GuildID  Snowflake `json:"guild_id"`
	EventID  Snowflake `json:"guild_scheduled_event_id"`
	UserID   Snowflake `json:"user_id"`
}

// InteractionCreateEvent Interaction created
type InteractionCreateEvent struct {
	ShardsID    int // shard that dispatched this event
	Interaction Interaction
}

var _ json.Unmarshaler = (*InteractionCreateEvent)(nil)

// UnmarshalJSON implements json.Unmarshaler for InteractionCreateEvent.
func (c *InteractionCreateEvent) UnmarshalJSON(buf []byte) error {
	interaction, err := UnmarshalInteraction(buf)
	if err == nil {
		c.Interaction = interaction
	}
	return err
}
