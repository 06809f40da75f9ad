// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

// EventType identifies a Matrix state or timeline event type. It is
// the wire "type" field — the discriminator that selects which content
// schema applies to an event's payload. Constants for the standard
// m.room.* state event types live in lib/content.
//
// EventType is a named string type, not a struct wrapper: event types
// are opaque identifiers that need no parsing or validation. The type
// exists purely for compile-time safety — preventing accidental use of
// a state key where an event type is expected (or vice versa).
type EventType string

// String returns the event type string (e.g., "m.room.aliases").
func (t EventType) String() string { return string(t) }
