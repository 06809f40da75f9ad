// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"time"

	"github.com/bureau-foundation/statewire/lib/ref"
)

// StateEvent is the typed envelope around a state-event content
// payload. A state event carries a mutable, overwritable fact about a
// room — membership, topic, aliases, avatar — keyed by (room, event
// type, state key).
//
// An envelope is produced either by [Decode] from a wire object or by
// direct construction from validated in-memory values (for outbound
// events). Treat it as immutable after construction: it is consumed by
// [Encode] or handed to downstream protocol logic, never mutated.
type StateEvent[C Content] struct {
	// Content is the typed payload. Its EventType() is the envelope's
	// discriminator — the wire "type" field.
	Content C

	// EventID is the globally unique identifier the origin server
	// assigned to this event.
	EventID ref.EventID

	// Sender is the fully qualified ID of the user who sent the event.
	Sender ref.UserID

	// OriginServerTS is the wall-clock instant at which the origin
	// server received the event. Wire form is integer milliseconds
	// since the Unix epoch; see EncodeTimestamp for the bounds.
	OriginServerTS time.Time

	// RoomID identifies the room this event belongs to.
	RoomID ref.RoomID

	// StateKey, together with the event type and room, defines the
	// overwrite key for this piece of room state. Often an empty
	// string; membership events use the affected user's ID.
	StateKey string

	// PrevContent is the state value this event superseded, parsed
	// with the same discriminator as Content. Nil unless the server
	// chose to include it.
	PrevContent *C

	// Unsigned is server-attached data excluded from the event's
	// cryptographic signature. The zero value means none; empty
	// unsigned data is omitted from the wire encoding.
	Unsigned Unsigned
}

// MarshalJSON implements json.Marshaler by delegating to [Encode], so
// an envelope embedded in a larger structure serializes in canonical
// wire form.
func (e *StateEvent[C]) MarshalJSON() ([]byte, error) {
	return Encode(e)
}

// Unsigned carries the key-value side channel a server may attach to
// an event without covering it by the event's signature.
type Unsigned struct {
	// Age is the time in milliseconds that has elapsed since the event
	// was sent, computed by the local server. Nil when absent — zero
	// is a meaningful age.
	Age *int64 `json:"age,omitempty"`

	// TransactionID is the client-supplied transaction identifier,
	// echoed back only to the client that sent the event.
	TransactionID string `json:"transaction_id,omitempty"`
}

// IsEmpty reports whether no unsigned data is present. The encoder
// omits the "unsigned" key entirely for empty values.
func (u Unsigned) IsEmpty() bool {
	return u.Age == nil && u.TransactionID == ""
}
