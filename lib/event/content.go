// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"encoding/json"

	"github.com/bureau-foundation/statewire/lib/ref"
)

// Content is the capability a concrete content type must provide to be
// embeddable in a [StateEvent] envelope. EventType returns the value's
// discriminator — the string the encoder emits as the wire "type"
// field.
type Content interface {
	EventType() ref.EventType
}

// ContentFactory constructs a typed content value from an envelope's
// discriminator and the raw, unparsed bytes of a "content" or
// "prev_content" field. The decoder calls the factory only after the
// whole wire object has been read and the discriminator is known —
// once for content, and once more for prev_content when present, with
// the same discriminator both times.
//
// A factory must fail for discriminators it does not recognize and for
// payloads that do not match the discriminator's schema. Adding a new
// event type means registering a new schema with the factory's
// backing catalog; the envelope codec itself never changes.
// lib/content provides FromParts, a factory over the standard schema
// catalog.
type ContentFactory[C Content] func(eventType ref.EventType, raw json.RawMessage) (C, error)
