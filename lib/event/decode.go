// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bureau-foundation/statewire/lib/ref"
)

// Decode parses a wire-format state event (a JSON object) into a typed
// envelope, resolving the content payloads through factory.
//
// The wire format does not guarantee key order, and the "type" field —
// needed to interpret "content" and "prev_content" — may appear after
// them. Decode therefore walks the object's entries once in wire
// order, keeping the payload bytes raw and parsing every other
// recognized field eagerly into one slot per field, with an explicit
// already-seen check before each assignment. Once the walk completes,
// the payloads are resolved through factory using the single
// discriminator, and the required fields are checked for presence.
//
// A recognized field appearing twice fails with *DuplicateFieldError
// regardless of whether the values agree. A required field that never
// appears fails with *MissingFieldError naming it. Factory rejections
// surface as *ContentError carrying the discriminator. An
// origin_server_ts outside [0, MaxTimestamp] fails with
// *TimestampOverflowError. Unknown top-level keys are skipped for
// forward compatibility. Decode either fully succeeds or fails — no
// partially populated envelope is returned.
func Decode[C Content](data []byte, factory ContentFactory[C]) (*StateEvent[C], error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	opening, err := decoder.Token()
	if err != nil {
		return nil, fmt.Errorf("state event: %w", err)
	}
	if delim, ok := opening.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("state event: expected JSON object, got %v", opening)
	}

	// One slot per recognized field. The payload slots stay raw until
	// the discriminator is known.
	var (
		eventType   *ref.EventType
		rawContent  json.RawMessage
		eventID     *ref.EventID
		sender      *ref.UserID
		timestampMS *int64
		roomID      *ref.RoomID
		stateKey    *string
		rawPrev     json.RawMessage
		unsigned    *Unsigned
	)

	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("state event: %w", err)
		}
		key, ok := keyToken.(string)
		if !ok {
			return nil, fmt.Errorf("state event: expected object key, got %v", keyToken)
		}

		switch key {
		case "type":
			if eventType != nil {
				return nil, &DuplicateFieldError{Field: key}
			}
			var value *string
			if err := decoder.Decode(&value); err != nil {
				return nil, fieldError(key, err)
			}
			if value == nil {
				return nil, fieldError(key, errors.New("null is not a valid event type"))
			}
			typed := ref.EventType(*value)
			eventType = &typed

		case "content":
			if rawContent != nil {
				return nil, &DuplicateFieldError{Field: key}
			}
			if err := decoder.Decode(&rawContent); err != nil {
				return nil, fieldError(key, err)
			}

		case "event_id":
			if eventID != nil {
				return nil, &DuplicateFieldError{Field: key}
			}
			value, err := decodeIdentifier(decoder, key, ref.ParseEventID)
			if err != nil {
				return nil, err
			}
			eventID = &value

		case "sender":
			if sender != nil {
				return nil, &DuplicateFieldError{Field: key}
			}
			value, err := decodeIdentifier(decoder, key, ref.ParseUserID)
			if err != nil {
				return nil, err
			}
			sender = &value

		case "origin_server_ts":
			if timestampMS != nil {
				return nil, &DuplicateFieldError{Field: key}
			}
			var number json.Number
			if err := decoder.Decode(&number); err != nil {
				return nil, fieldError(key, err)
			}
			millis, err := number.Int64()
			if err != nil {
				return nil, fieldError(key, fmt.Errorf("not an integer: %q", number))
			}
			if millis < 0 || millis > MaxTimestamp {
				return nil, &TimestampOverflowError{Millis: millis}
			}
			timestampMS = &millis

		case "room_id":
			if roomID != nil {
				return nil, &DuplicateFieldError{Field: key}
			}
			value, err := decodeIdentifier(decoder, key, ref.ParseRoomID)
			if err != nil {
				return nil, err
			}
			roomID = &value

		case "state_key":
			if stateKey != nil {
				return nil, &DuplicateFieldError{Field: key}
			}
			var value *string
			if err := decoder.Decode(&value); err != nil {
				return nil, fieldError(key, err)
			}
			if value == nil {
				return nil, fieldError(key, errors.New("null is not a valid state key"))
			}
			stateKey = value

		case "prev_content":
			if rawPrev != nil {
				return nil, &DuplicateFieldError{Field: key}
			}
			if err := decoder.Decode(&rawPrev); err != nil {
				return nil, fieldError(key, err)
			}

		case "unsigned":
			if unsigned != nil {
				return nil, &DuplicateFieldError{Field: key}
			}
			var value Unsigned
			if err := decoder.Decode(&value); err != nil {
				return nil, fieldError(key, err)
			}
			unsigned = &value

		default:
			// Unknown top-level keys are ignored for forward
			// compatibility. The value must still be consumed to keep
			// the token stream aligned.
			var skipped json.RawMessage
			if err := decoder.Decode(&skipped); err != nil {
				return nil, fieldError(key, err)
			}
		}
	}

	// Closing '}'.
	if _, err := decoder.Token(); err != nil {
		return nil, fmt.Errorf("state event: %w", err)
	}

	// Resolution pass: everything the walk collected is now checked
	// for completeness, and the buffered payloads are interpreted
	// using the one discriminator.
	if eventType == nil {
		return nil, &MissingFieldError{Field: "type"}
	}
	if rawContent == nil {
		return nil, &MissingFieldError{Field: "content"}
	}
	content, err := factory(*eventType, rawContent)
	if err != nil {
		return nil, &ContentError{EventType: *eventType, Field: "content", Err: err}
	}

	if eventID == nil {
		return nil, &MissingFieldError{Field: "event_id"}
	}
	if sender == nil {
		return nil, &MissingFieldError{Field: "sender"}
	}
	if timestampMS == nil {
		return nil, &MissingFieldError{Field: "origin_server_ts"}
	}
	if roomID == nil {
		return nil, &MissingFieldError{Field: "room_id"}
	}
	if stateKey == nil {
		return nil, &MissingFieldError{Field: "state_key"}
	}

	var prevContent *C
	if rawPrev != nil {
		prev, err := factory(*eventType, rawPrev)
		if err != nil {
			return nil, &ContentError{EventType: *eventType, Field: "prev_content", Err: err}
		}
		prevContent = &prev
	}

	result := &StateEvent[C]{
		Content:        content,
		EventID:        *eventID,
		Sender:         *sender,
		OriginServerTS: DecodeTimestamp(*timestampMS),
		RoomID:         *roomID,
		StateKey:       *stateKey,
		PrevContent:    prevContent,
	}
	if unsigned != nil {
		result.Unsigned = *unsigned
	}
	return result, nil
}

// decodeIdentifier reads the next JSON value as a string and parses it
// with parse. JSON null and the empty string are rejected — the wire
// format requires a populated identifier.
func decodeIdentifier[T any](decoder *json.Decoder, field string, parse func(string) (T, error)) (T, error) {
	var zero T
	var raw *string
	if err := decoder.Decode(&raw); err != nil {
		return zero, fieldError(field, err)
	}
	if raw == nil {
		return zero, fieldError(field, errors.New("null is not a valid identifier"))
	}
	value, err := parse(*raw)
	if err != nil {
		return zero, fieldError(field, err)
	}
	return value, nil
}

// fieldError wraps a parse failure for a single recognized wire field.
func fieldError(field string, err error) error {
	return fmt.Errorf("state event: field %q: %w", field, err)
}
