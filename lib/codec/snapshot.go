// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"crypto/sha256"

	"github.com/bureau-foundation/statewire/lib/canonical"
	"github.com/bureau-foundation/statewire/lib/ref"
)

// EventSnapshot is the archival record written for one validated state
// event: the overwrite key fields broken out for indexing, the full
// canonical JSON for replay, and the reference hash for integrity
// checks. Snapshots are CBOR-only; they never travel the wire.
type EventSnapshot struct {
	EventID        ref.EventID       `cbor:"event_id"`
	RoomID         ref.RoomID        `cbor:"room_id"`
	EventType      ref.EventType     `cbor:"type"`
	StateKey       string            `cbor:"state_key"`
	Sender         ref.UserID        `cbor:"sender"`
	OriginServerTS int64             `cbor:"origin_server_ts"`
	Canonical      []byte            `cbor:"canonical"`
	ReferenceHash  [sha256.Size]byte `cbor:"reference_hash"`
}

// BuildSnapshot constructs the archival record for a validated wire
// event. wireJSON is the event as received; the key fields are taken
// from the already-decoded envelope rather than re-parsed.
func BuildSnapshot(wireJSON []byte, eventID ref.EventID, roomID ref.RoomID, eventType ref.EventType, stateKey string, sender ref.UserID, originServerTS int64) (*EventSnapshot, error) {
	canonicalJSON, err := canonical.JSON(wireJSON)
	if err != nil {
		return nil, err
	}
	hash, err := canonical.ReferenceHash(wireJSON)
	if err != nil {
		return nil, err
	}
	return &EventSnapshot{
		EventID:        eventID,
		RoomID:         roomID,
		EventType:      eventType,
		StateKey:       stateKey,
		Sender:         sender,
		OriginServerTS: originServerTS,
		Canonical:      canonicalJSON,
		ReferenceHash:  hash,
	}, nil
}
