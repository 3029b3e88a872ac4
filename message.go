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

import "time"

// MessageType identifies the kind of content a message carries.
//
// Reference: https://discord.com/developers/docs/resources/message#message-object-message-types
type MessageType int

const (
	MessageTypeDefault                    MessageType = 0
	MessageTypeRecipientAdd               MessageType = 1
	MessageTypeRecipientRemove             MessageType = 2
	MessageTypeCall                        MessageType = 3
	MessageTypeChannelNameChange           MessageType = 4
	MessageTypeChannelIconChange           MessageType = 5
	MessageTypeChannelPinnedMessage        MessageType = 6
	MessageTypeUserJoin                    MessageType = 7
	MessageTypeGuildBoost                  MessageType = 8
	MessageTypeGuildBoostTier1             MessageType = 9
	MessageTypeGuildBoostTier2             MessageType = 10
	MessageTypeGuildBoostTier3             MessageType = 11
	MessageTypeChannelFollowAdd            MessageType = 12
	MessageTypeGuildDiscoveryDisqualified  MessageType = 14
	MessageTypeGuildDiscoveryRequalified   MessageType = 15
	MessageTypeThreadCreated               MessageType = 18
	MessageTypeReply                       MessageType = 19
	MessageTypeChatInputCommand            MessageType = 20
	MessageTypeThreadStarterMessage        MessageType = 21
	MessageTypeContextMenuCommand          MessageType = 23
	MessageTypeAutoModerationAction        MessageType = 24
)

// MessageFlags represents bit flags carried on a message.
//
// Reference: https://discord.com/developers/docs/resources/message#message-object-message-flags
type MessageFlags int

const (
	MessageFlagCrossposted          MessageFlags = 1 << 0
	MessageFlagIsCrosspost          MessageFlags = 1 << 1
	MessageFlagSuppressEmbeds       MessageFlags = 1 << 2
	MessageFlagSourceMessageDeleted MessageFlags = 1 << 3
	MessageFlagUrgent               MessageFlags = 1 << 4
	MessageFlagHasThread            MessageFlags = 1 << 5
	MessageFlagEphemeral            MessageFlags = 1 << 6
	MessageFlagLoading              MessageFlags = 1 << 7
	MessageFlagSuppressNotifications MessageFlags = 1 << 12
	MessageFlagIsVoiceMessage       MessageFlags = 1 << 13
	MessageFlagIsComponentsV2       MessageFlags = 1 << 15
)

// Embed represents a rich embed attached to a message.
//
// Reference: https://discord.com/developers/docs/resources/message#embed-object
type Embed struct {
	Title       string         `json:"title,omitempty"`
	Type        string         `json:"type,omitempty"`
	Description string         `json:"description,omitempty"`
	URL         string         `json:"url,omitempty"`
	Timestamp   *time.Time     `json:"timestamp,omitempty"`
	Color       *Color         `json:"color,omitempty"`
	Footer      *EmbedFooter   `json:"footer,omitempty"`
	Image       *EmbedImage    `json:"image,omitempty"`
	Thumbnail   *EmbedImage    `json:"thumbnail,omitempty"`
	Video       *EmbedImage    `json:"video,omitempty"`
	Provider    *EmbedProvider `json:"provider,omitempty"`
	Author      *EmbedAuthor   `json:"author,omitempty"`
	Fields      []EmbedField   `json:"fields,omitempty"`
}

// EmbedFooter is the footer of an Embed.
type EmbedFooter struct {
	Text    string `json:"text"`
	IconURL string `json:"icon_url,omitempty"`
}

// EmbedImage describes an image, thumbnail, or video attached to an Embed.
type EmbedImage struct {
	URL    string `json:"url"`
	Height int    `json:"height,omitempty"`
	Width  int    `json:"width,omitempty"`
}

// EmbedProvider names the service that generated an Embed.
type EmbedProvider struct {
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

// EmbedAuthor is the author block of an Embed.
type EmbedAuthor struct {
	Name    string `json:"name"`
	URL     string `json:"url,omitempty"`
	IconURL string `json:"icon_url,omitempty"`
}

// EmbedField is one name/value pair of an Embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// MessageReference points a message at another message, channel, or guild,
// used for replies, forwards, and pin announcements.
//
// Reference: https://discord.com/developers/docs/resources/message#message-reference-object
type MessageReference struct {
	Type            int       `json:"type,omitempty"`
	MessageID       Snowflake `json:"message_id,omitempty"`
	ChannelID       Snowflake `json:"channel_id,omitempty"`
	GuildID         Snowflake `json:"guild_id,omitempty"`
	FailIfNotExists *bool     `json:"fail_if_not_exists,omitempty"`
}

// ReactionCountDetails breaks a Reaction's Count down by reaction type.
type ReactionCountDetails struct {
	Burst  int `json:"burst"`
	Normal int `json:"normal"`
}

// Reaction aggregates every user who reacted to a message with the same emoji.
//
// Reference: https://discord.com/developers/docs/resources/message#reaction-object
type Reaction struct {
	// Count is the total number of times this emoji has been used to react.
	Count int `json:"count"`
	// CountDetails splits Count into normal and "burst" (super) reactions.
	CountDetails ReactionCountDetails `json:"count_details"`
	// Me reports whether the current user reacted using this emoji.
	Me bool `json:"me"`
	// MeBurst reports whether the current user super-reacted using this emoji.
	MeBurst bool `json:"me_burst"`
	// Emoji is the partial emoji object this reaction counts.
	Emoji PartialEmoji `json:"emoji"`
}

// Message represents a Discord message object.
//
// Reference: https://discord.com/developers/docs/resources/message#message-object
type Message struct {
	EntityBase

	// ID is the message's unique Discord snowflake ID.
	ID Snowflake `json:"id"`
	// ChannelID is the channel the message was sent in.
	ChannelID Snowflake `json:"channel_id"`
	// GuildID is the guild the message was sent in.
	//
	// Optional:
	//  - Unset for DM messages.
	GuildID Snowflake `json:"guild_id,omitempty"`
	// Author is the user who sent this message.
	//
	// Info:
	//  - Not guaranteed to be a valid user if the message was sent by a webhook.
	Author User `json:"author"`
	// Member is partial guild member data for the Author, if sent in a guild.
	Member *Member `json:"member,omitempty"`
	// Content is the message contents.
	//
	// Info:
	//  - Empty unless the MESSAGE_CONTENT intent is enabled, or the message
	//    mentions the current user, or was authored by the current user.
	Content string `json:"content"`
	// Timestamp is when this message was sent.
	Timestamp time.Time `json:"timestamp"`
	// EditedTimestamp is when this message was last edited, if ever.
	EditedTimestamp *time.Time `json:"edited_timestamp"`
	// TTS reports whether this was a text-to-speech message.
	TTS bool `json:"tts"`
	// MentionEveryone reports whether this message mentions @everyone.
	MentionEveryone bool `json:"mention_everyone"`
	// Mentions lists the users specifically mentioned in this message.
	Mentions []User `json:"mentions"`
	// MentionRoles lists the role IDs mentioned in this message.
	MentionRoles []Snowflake `json:"mention_roles"`
	// MentionChannels lists channels mentioned in this message, if a crosspost.
	MentionChannels []ChannelMention `json:"mention_channels,omitempty"`
	// Attachments lists files attached to this message.
	Attachments []Attachment `json:"attachments"`
	// Embeds lists rich embeds attached to this message.
	Embeds []Embed `json:"embeds"`
	// Reactions lists the reactions applied to this message.
	Reactions []Reaction `json:"reactions,omitempty"`
	// Nonce is used to verify a message was sent, via the gateway.
	Nonce any `json:"nonce,omitempty"`
	// Pinned reports whether this message is pinned.
	Pinned bool `json:"pinned"`
	// WebhookID is the webhook that generated this message, if any.
	WebhookID Snowflake `json:"webhook_id,omitempty"`
	// Type is the kind of message this is.
	Type MessageType `json:"type"`
	// ApplicationID is the application that sent this message, if an interaction response.
	ApplicationID Snowflake `json:"application_id,omitempty"`
	// MessageReference is set for replies, forwards, and pin announcements.
	MessageReference *MessageReference `json:"message_reference,omitempty"`
	// Flags is a bitfield combining MessageFlags.
	Flags MessageFlags `json:"flags,omitempty"`
	// ReferencedMessage is the message this one replies to, if any and resolvable.
	ReferencedMessage *Message `json:"referenced_message,omitempty"`
	// Components lists the top level message components, if any.
	Components []LayoutComponent `json:"components,omitempty"`
	// StickerItems lists stickers sent with the message.
	StickerItems []Sticker `json:"sticker_items,omitempty"`
}

// ChannelMention identifies a channel mentioned within a crossposted message.
type ChannelMention struct {
	ID      Snowflake   `json:"id"`
	GuildID Snowflake   `json:"guild_id"`
	Type    ChannelType `json:"type"`
	Name    string      `json:"name"`
}

// CreatedAt returns the time this message was created, derived from its ID.
func (m *Message) CreatedAt() time.Time {
	return m.ID.Timestamp()
}

// AllowedMentions configures which mentions are notified when sending a message.
//
// Reference: https://discord.com/developers/docs/resources/message#allowed-mentions-object
type AllowedMentions struct {
	Parse       []string    `json:"parse,omitempty"`
	Roles       []Snowflake `json:"roles,omitempty"`
	Users       []Snowflake `json:"users,omitempty"`
	RepliedUser bool        `json:"replied_user,omitempty"`
}

// MessageCreateOptions are options for sending a new message.
//
// Reference: https://discord.com/developers/docs/resources/message#create-message
type MessageCreateOptions struct {
	// Content is the message text. Up to 2000 characters.
	Content string `json:"content,omitempty"`
	// TTS sends this message as a text-to-speech message.
	TTS bool `json:"tts,omitempty"`
	// Embeds attaches up to 10 rich embeds.
	Embeds []Embed `json:"embeds,omitempty"`
	// AllowedMentions overrides the default mention behavior.
	AllowedMentions *AllowedMentions `json:"allowed_mentions,omitempty"`
	// MessageReference sends this message as a reply or forward.
	MessageReference *MessageReference `json:"message_reference,omitempty"`
	// Components attaches interactive components to the message.
	Components []LayoutComponent `json:"components,omitempty"`
	// StickerIDs attaches up to 3 stickers by ID.
	StickerIDs []Snowflake `json:"sticker_ids,omitempty"`
	// Flags combines MessageFlags, only SuppressEmbeds and IsComponentsV2 are settable.
	Flags MessageFlags `json:"flags,omitempty"`
}
