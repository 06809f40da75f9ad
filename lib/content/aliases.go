// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package content

import "github.com/bureau-foundation/statewire/lib/ref"

// AliasesContent is the payload of a TypeRoomAliases state event: the
// aliases a single server maintains for the room. The event's state
// key is the server name that owns them, so each server's alias list
// overwrites only its own.
type AliasesContent struct {
	// Aliases is the list of room aliases the server maintains.
	Aliases []ref.RoomAlias `json:"aliases"`
}

// EventType returns TypeRoomAliases.
func (AliasesContent) EventType() ref.EventType { return TypeRoomAliases }
