// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package content

import "github.com/bureau-foundation/statewire/lib/ref"

// Standard Matrix state event types. These are the "type" field in
// state events: the discriminator selecting which content schema the
// payload carries.
const (
	// TypeRoomAliases lists the aliases a given server maintains for
	// the room.
	//
	// State key: the server name that owns the aliases.
	TypeRoomAliases ref.EventType = "m.room.aliases"

	// TypeRoomAvatar sets the room's avatar image.
	//
	// State key: "" (singleton per room)
	TypeRoomAvatar ref.EventType = "m.room.avatar"

	// TypeRoomCanonicalAlias marks one alias as the room's canonical
	// (primary) alias.
	//
	// State key: "" (singleton per room)
	TypeRoomCanonicalAlias ref.EventType = "m.room.canonical_alias"

	// TypeRoomMember tracks a single user's membership in the room:
	// invited, joined, left, banned, or knocking.
	//
	// State key: the affected user's full Matrix user ID.
	TypeRoomMember ref.EventType = "m.room.member"

	// TypeRoomName sets the room's human-readable name.
	//
	// State key: "" (singleton per room)
	TypeRoomName ref.EventType = "m.room.name"

	// TypeRoomTopic sets the room's topic.
	//
	// State key: "" (singleton per room)
	TypeRoomTopic ref.EventType = "m.room.topic"
)
