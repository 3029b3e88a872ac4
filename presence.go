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

// PresenceStatus is a user's online status within a guild.
//
// Reference: https://discord.com/developers/docs/events/gateway-events#update-presence-status-types
type PresenceStatus string

const (
	PresenceStatusOnline       PresenceStatus = "online"
	PresenceStatusDoNotDisturb PresenceStatus = "dnd"
	PresenceStatusIdle         PresenceStatus = "idle"
	PresenceStatusInvisible    PresenceStatus = "invisible"
	PresenceStatusOffline      PresenceStatus = "offline"
)

// ActivityType categorizes what an Activity represents.
//
// Reference: https://discord.com/developers/docs/events/gateway-events#activity-object-activity-types
type ActivityType int

const (
	ActivityTypeGame      ActivityType = 0
	ActivityTypeStreaming ActivityType = 1
	ActivityTypeListening ActivityType = 2
	ActivityTypeWatching  ActivityType = 3
	ActivityTypeCustom    ActivityType = 4
	ActivityTypeCompeting ActivityType = 5
)

// ActivityTimestamps holds unix millisecond timestamps for an Activity's span.
type ActivityTimestamps struct {
	Start int64 `json:"start,omitempty"`
	End   int64 `json:"end,omitempty"`
}

// Activity describes a single entry in a user's presence activity list.
//
// Reference: https://discord.com/developers/docs/events/gateway-events#activity-object
type Activity struct {
	Name       string              `json:"name"`
	Type       ActivityType        `json:"type"`
	URL        string              `json:"url,omitempty"`
	CreatedAt  int64               `json:"created_at"`
	Timestamps *ActivityTimestamps `json:"timestamps,omitempty"`
	ApplicationID Snowflake        `json:"application_id,omitempty"`
	Details    *string             `json:"details,omitempty"`
	State      *string             `json:"state,omitempty"`
}

// ClientStatus reports which platform(s) a user is active from.
type ClientStatus struct {
	Desktop PresenceStatus `json:"desktop,omitempty"`
	Mobile  PresenceStatus `json:"mobile,omitempty"`
	Web     PresenceStatus `json:"web,omitempty"`
}

// Presence represents a guild member's current status and activities.
//
// Reference: https://discord.com/developers/docs/events/gateway-events#presence-update
type Presence struct {
	// UserID is the ID of the user this presence belongs to.
	UserID Snowflake `json:"-"`
	// GuildID is the guild this presence was observed in.
	GuildID Snowflake `json:"guild_id"`
	// Status is the user's overall status in this guild.
	Status PresenceStatus `json:"status"`
	// Activities lists the user's current activities.
	Activities []Activity `json:"activities"`
	// ClientStatus breaks Status down per platform.
	ClientStatus ClientStatus `json:"client_status"`
}
