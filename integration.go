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

// Integration represents a guild integration (Twitch, YouTube, Discord bot, etc.).
//
// Reference: https://discord.com/developers/docs/resources/guild#integration-object
type Integration struct {
	ID                Snowflake    `json:"id"`
	GuildID           Snowflake    `json:"guild_id,omitempty"`
	Name              string       `json:"name"`
	Type              string       `json:"type"`
	Enabled           bool         `json:"enabled"`
	Syncing           bool         `json:"syncing"`
	RoleID            Snowflake    `json:"role_id"`
	EnableEmoticons   bool         `json:"enable_emoticons"`
	ExpireBehavior    int          `json:"expire_behavior"`
	ExpireGracePeriod int          `json:"expire_grace_period"`
	User              *User        `json:"user"`
	Account           Account      `json:"account"`
	SyncedAt          string       `json:"synced_at"`
	SubscriberCount   int          `json:"subscriber_count"`
	Revoked           bool         `json:"revoked"`
	Application       *Application `json:"application"`
}

// Account represents an integration account.
type Account struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
