// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/bureau-foundation/statewire/lib/event"
	"github.com/bureau-foundation/statewire/lib/ref"
)

// registry maps each registered event type to its payload
// deserializer. Guarded by registryMu: registration happens at program
// initialization, decoding takes read locks only.
var (
	registryMu sync.RWMutex
	registry   = map[ref.EventType]func(raw json.RawMessage) (event.Content, error){}
)

func init() {
	Register(TypeRoomAliases, unmarshalFactory[AliasesContent]())
	Register(TypeRoomAvatar, unmarshalFactory[AvatarContent]())
	Register(TypeRoomCanonicalAlias, unmarshalFactory[CanonicalAliasContent]())
	Register(TypeRoomMember, unmarshalFactory[MemberContent]())
	Register(TypeRoomName, unmarshalFactory[NameContent]())
	Register(TypeRoomTopic, unmarshalFactory[TopicContent]())
}

// Register adds a content schema to the catalog. The factory receives
// the raw payload bytes of a content or prev_content field and returns
// the typed value. Call Register from a package init function;
// registration after decoding has started is a programming error.
// Panics if eventType is already registered.
func Register(eventType ref.EventType, factory func(raw json.RawMessage) (event.Content, error)) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[eventType]; exists {
		panic(fmt.Sprintf("content.Register: event type %q already registered", eventType))
	}
	registry[eventType] = factory
}

// UnknownEventTypeError reports a discriminator with no registered
// content schema.
type UnknownEventTypeError struct {
	// EventType is the unrecognized discriminator.
	EventType ref.EventType
}

func (e *UnknownEventTypeError) Error() string {
	return fmt.Sprintf("no content schema registered for event type %q", e.EventType)
}

// Any holds a state-event content value of any registered type. It is
// the content parameter for envelopes whose event type is not known in
// advance: decode as StateEvent[Any], then type-switch on Value for
// the concrete schema.
//
// The zero Any is not valid; it is only constructed by [Wrap] and
// [FromParts].
type Any struct {
	content event.Content
}

// Wrap packages a concrete content value as an Any, for constructing
// outbound envelopes. Panics if value is nil.
func Wrap(value event.Content) Any {
	if value == nil {
		panic("content.Wrap: nil content value")
	}
	return Any{content: value}
}

// Value returns the concrete content value.
func (a Any) Value() event.Content { return a.content }

// EventType returns the discriminator of the wrapped value.
func (a Any) EventType() ref.EventType { return a.content.EventType() }

// MarshalJSON serializes the wrapped value, so an Any embedded in an
// envelope encodes as the concrete schema's payload object.
func (a Any) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.content)
}

// FromParts is an event.ContentFactory over the registered catalog: it
// looks up the discriminator and deserializes the payload with the
// registered schema. Fails with *UnknownEventTypeError for
// unregistered discriminators.
func FromParts(eventType ref.EventType, raw json.RawMessage) (Any, error) {
	registryMu.RLock()
	factory, ok := registry[eventType]
	registryMu.RUnlock()
	if !ok {
		return Any{}, &UnknownEventTypeError{EventType: eventType}
	}
	value, err := factory(raw)
	if err != nil {
		return Any{}, err
	}
	return Any{content: value}, nil
}

// TypedFactory returns an event.ContentFactory for a single concrete
// schema. The returned factory rejects every discriminator except
// want, so callers that expect exactly one event type get a concretely
// typed envelope without going through Any.
func TypedFactory[C event.Content](want ref.EventType) event.ContentFactory[C] {
	return func(eventType ref.EventType, raw json.RawMessage) (C, error) {
		var value C
		if eventType != want {
			return value, &UnknownEventTypeError{EventType: eventType}
		}
		if err := unmarshalPayload(raw, &value); err != nil {
			var zero C
			return zero, err
		}
		return value, nil
	}
}

// unmarshalFactory adapts a concrete schema type to the registry's
// factory signature.
func unmarshalFactory[C event.Content]() func(raw json.RawMessage) (event.Content, error) {
	return func(raw json.RawMessage) (event.Content, error) {
		var value C
		if err := unmarshalPayload(raw, &value); err != nil {
			return nil, err
		}
		return value, nil
	}
}

// unmarshalPayload deserializes a payload into dst. JSON null is
// rejected: encoding/json treats null as a no-op, which would turn an
// explicit null payload into a silently zero-valued schema.
func unmarshalPayload(raw json.RawMessage, dst any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return errors.New("payload is null")
	}
	return json.Unmarshal(raw, dst)
}
