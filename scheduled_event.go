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

// GuildScheduledEventPrivacyLevel is the privacy level of a scheduled event.
type GuildScheduledEventPrivacyLevel int

const (
	GuildScheduledEventPrivacyLevelGuildOnly GuildScheduledEventPrivacyLevel = 2
)

// GuildScheduledEventStatus is the lifecycle status of a scheduled event.
//
// Reference: https://discord.com/developers/docs/resources/guild-scheduled-event#guild-scheduled-event-object-guild-scheduled-event-status
type GuildScheduledEventStatus int

const (
	GuildScheduledEventStatusScheduled GuildScheduledEventStatus = 1
	GuildScheduledEventStatusActive    GuildScheduledEventStatus = 2
	GuildScheduledEventStatusCompleted GuildScheduledEventStatus = 3
	GuildScheduledEventStatusCanceled  GuildScheduledEventStatus = 4
)

// GuildScheduledEventEntityType identifies where a scheduled event takes place.
type GuildScheduledEventEntityType int

const (
	GuildScheduledEventEntityTypeStageInstance GuildScheduledEventEntityType = 1
	GuildScheduledEventEntityTypeVoice         GuildScheduledEventEntityType = 2
	GuildScheduledEventEntityTypeExternal      GuildScheduledEventEntityType = 3
)

// GuildScheduledEventEntityMetadata carries entity-type specific fields.
type GuildScheduledEventEntityMetadata struct {
	Location string `json:"location,omitempty"`
}

// GuildScheduledEvent represents an event scheduled within a guild.
//
// Reference: https://discord.com/developers/docs/resources/guild-scheduled-event#guild-scheduled-event-object
type GuildScheduledEvent struct {
	// ID is the scheduled event's unique Discord snowflake ID.
	ID Snowflake `json:"id"`
	// GuildID is the guild this event belongs to.
	GuildID Snowflake `json:"guild_id"`
	// ChannelID is the channel this event takes place in, if any.
	//
	// Optional:
	//  - Unset when EntityType is External.
	ChannelID Snowflake `json:"channel_id,omitempty"`
	// CreatorID is the user that created this event.
	CreatorID Snowflake `json:"creator_id,omitempty"`
	// Name is the event's name (1-100 characters).
	Name string `json:"name"`
	// Description is the event's description, if set.
	Description *string `json:"description,omitempty"`
	// ScheduledStartTime is when the event is scheduled to start.
	ScheduledStartTime time.Time `json:"scheduled_start_time"`
	// ScheduledEndTime is when the event is scheduled to end, if set.
	ScheduledEndTime *time.Time `json:"scheduled_end_time,omitempty"`
	// PrivacyLevel is the privacy level of the event.
	PrivacyLevel GuildScheduledEventPrivacyLevel `json:"privacy_level"`
	// Status is the event's current lifecycle status.
	Status GuildScheduledEventStatus `json:"status"`
	// EntityType identifies where the event takes place.
	EntityType GuildScheduledEventEntityType `json:"entity_type"`
	// EntityID is the id of the associated entity, if applicable.
	EntityID Snowflake `json:"entity_id,omitempty"`
	// EntityMetadata carries additional data for External events.
	EntityMetadata *GuildScheduledEventEntityMetadata `json:"entity_metadata,omitempty"`
	// Creator is the user that created this event.
	//
	// Optional:
	//  - Only present for events created after October 25th, 2021.
	Creator *User `json:"creator,omitempty"`
	// UserCount is the number of users subscribed to this event.
	UserCount int `json:"user_count,omitempty"`
	// Image is the cover image hash of this event, if set.
	Image string `json:"image,omitempty"`
}

// CreatedAt returns the time this scheduled event was created, derived from its ID.
func (e *GuildScheduledEvent) CreatedAt() time.Time {
	return e.ID.Timestamp()
}
