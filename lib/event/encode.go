// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Encode projects a typed envelope back to its canonical wire form.
// Fields are written exactly once, in fixed order: type (taken from
// the content's EventType), content, event_id, sender,
// origin_server_ts, room_id, state_key — then prev_content only when
// present, and unsigned only when non-empty. An absent prev_content is
// never encoded as null; the key is omitted.
//
// An OriginServerTS before the Unix epoch or beyond MaxTimestamp fails
// with *TimestampOverflowError.
func Encode[C Content](e *StateEvent[C]) ([]byte, error) {
	millis, err := EncodeTimestamp(e.OriginServerTS)
	if err != nil {
		return nil, err
	}

	var buffer bytes.Buffer
	buffer.WriteByte('{')
	if err := writeField(&buffer, "type", e.Content.EventType(), false); err != nil {
		return nil, err
	}
	if err := writeField(&buffer, "content", e.Content, true); err != nil {
		return nil, err
	}
	if err := writeField(&buffer, "event_id", e.EventID, true); err != nil {
		return nil, err
	}
	if err := writeField(&buffer, "sender", e.Sender, true); err != nil {
		return nil, err
	}
	if err := writeField(&buffer, "origin_server_ts", millis, true); err != nil {
		return nil, err
	}
	if err := writeField(&buffer, "room_id", e.RoomID, true); err != nil {
		return nil, err
	}
	if err := writeField(&buffer, "state_key", e.StateKey, true); err != nil {
		return nil, err
	}
	if e.PrevContent != nil {
		if err := writeField(&buffer, "prev_content", *e.PrevContent, true); err != nil {
			return nil, err
		}
	}
	if !e.Unsigned.IsEmpty() {
		if err := writeField(&buffer, "unsigned", e.Unsigned, true); err != nil {
			return nil, err
		}
	}
	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}

// writeField appends one `"name":value` pair to the wire object. Field
// names are plain ASCII identifiers, so the key needs no escaping.
func writeField(buffer *bytes.Buffer, name string, value any, comma bool) error {
	if comma {
		buffer.WriteByte(',')
	}
	buffer.WriteByte('"')
	buffer.WriteString(name)
	buffer.WriteString(`":`)
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("state event: field %q: %w", name, err)
	}
	buffer.Write(encoded)
	return nil
}
