// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package content

import "github.com/bureau-foundation/statewire/lib/ref"

// CanonicalAliasContent is the payload of a TypeRoomCanonicalAlias
// state event: the room's primary alias.
type CanonicalAliasContent struct {
	// Alias is the canonical alias. The zero value means the canonical
	// alias was unset.
	Alias ref.RoomAlias `json:"alias,omitempty"`
}

// EventType returns TypeRoomCanonicalAlias.
func (CanonicalAliasContent) EventType() ref.EventType { return TypeRoomCanonicalAlias }

// NameContent is the payload of a TypeRoomName state event.
type NameContent struct {
	// Name is the room's human-readable name. Empty unsets it.
	Name string `json:"name"`
}

// EventType returns TypeRoomName.
func (NameContent) EventType() ref.EventType { return TypeRoomName }

// TopicContent is the payload of a TypeRoomTopic state event.
type TopicContent struct {
	// Topic is the room's topic. Empty unsets it.
	Topic string `json:"topic"`
}

// EventType returns TypeRoomTopic.
func (TopicContent) EventType() ref.EventType { return TypeRoomTopic }
