// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package content

import "github.com/bureau-foundation/statewire/lib/ref"

// Membership states carried by a TypeRoomMember event.
const (
	MembershipInvite = "invite"
	MembershipJoin   = "join"
	MembershipLeave  = "leave"
	MembershipBan    = "ban"
	MembershipKnock  = "knock"
)

// MemberContent is the payload of a TypeRoomMember state event: one
// user's membership in the room. The event's state key is the affected
// user's ID, so each user's membership overwrites only their own.
type MemberContent struct {
	// Membership is the user's membership state: one of the
	// Membership* constants.
	Membership string `json:"membership"`

	// DisplayName is the user's display name in this room. The wire
	// name has no underscore, unlike every other field in the
	// protocol; the wire format is stuck with it.
	DisplayName string `json:"displayname,omitempty"`

	// AvatarURL is the user's avatar in this room (mxc:// URI).
	AvatarURL string `json:"avatar_url,omitempty"`

	// IsDirect signals that the room is a direct chat, set on the
	// invite membership event that creates it.
	IsDirect bool `json:"is_direct,omitempty"`

	// Reason is an optional human-readable reason for the membership
	// change (kick/ban reasons, knock messages).
	Reason string `json:"reason,omitempty"`
}

// EventType returns TypeRoomMember.
func (MemberContent) EventType() ref.EventType { return TypeRoomMember }
