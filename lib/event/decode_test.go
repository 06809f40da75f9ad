// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event_test

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/bureau-foundation/statewire/lib/content"
	"github.com/bureau-foundation/statewire/lib/event"
)

// aliasFields holds one well-formed m.room.aliases event, one raw JSON
// fragment per wire field. Tests assemble these in whatever key order
// (or with whatever omissions) the scenario needs.
var aliasFields = map[string]string{
	"type":             `"m.room.aliases"`,
	"content":          `{"aliases": ["#somewhere:example.org"]}`,
	"event_id":         `"$h29iv0s8:example.com"`,
	"sender":           `"@carl:example.com"`,
	"origin_server_ts": `1`,
	"room_id":          `"!roomid:room.com"`,
	"state_key":        `"example.com"`,
	"prev_content":     `{"aliases": ["#inner:localhost"]}`,
	"unsigned":         `{"age": 1234}`,
}

// buildJSON assembles a JSON object from aliasFields in the given key
// order, applying overrides (an override value of "" drops the key).
func buildJSON(order []string, overrides map[string]string) []byte {
	var entries []string
	for _, key := range order {
		value, overridden := overrides[key]
		if !overridden {
			value = aliasFields[key]
		}
		if value == "" {
			continue
		}
		entries = append(entries, fmt.Sprintf("%q: %s", key, value))
	}
	return []byte("{" + strings.Join(entries, ", ") + "}")
}

var wireOrder = []string{
	"type", "content", "event_id", "sender",
	"origin_server_ts", "room_id", "state_key",
	"prev_content", "unsigned",
}

func decodeAliases(t *testing.T, data []byte) *event.StateEvent[content.AliasesContent] {
	t.Helper()
	decoded, err := event.Decode(data, content.TypedFactory[content.AliasesContent](content.TypeRoomAliases))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return decoded
}

func TestDecodeAliases(t *testing.T) {
	decoded := decodeAliases(t, buildJSON(wireOrder, nil))

	if got := decoded.EventID.String(); got != "$h29iv0s8:example.com" {
		t.Errorf("event_id = %q", got)
	}
	if got := decoded.Sender.String(); got != "@carl:example.com" {
		t.Errorf("sender = %q", got)
	}
	if !decoded.OriginServerTS.Equal(time.UnixMilli(1)) {
		t.Errorf("origin_server_ts = %v, want 1ms after epoch", decoded.OriginServerTS)
	}
	if got := decoded.RoomID.String(); got != "!roomid:room.com" {
		t.Errorf("room_id = %q", got)
	}
	if decoded.StateKey != "example.com" {
		t.Errorf("state_key = %q", decoded.StateKey)
	}
	if len(decoded.Content.Aliases) != 1 || decoded.Content.Aliases[0].String() != "#somewhere:example.org" {
		t.Errorf("content = %+v", decoded.Content)
	}
	if decoded.PrevContent == nil {
		t.Fatal("prev_content is nil")
	}
	if len(decoded.PrevContent.Aliases) != 1 || decoded.PrevContent.Aliases[0].String() != "#inner:localhost" {
		t.Errorf("prev_content = %+v", *decoded.PrevContent)
	}
	if decoded.Unsigned.Age == nil || *decoded.Unsigned.Age != 1234 {
		t.Errorf("unsigned = %+v", decoded.Unsigned)
	}
}

func TestDecodeOrderIndependence(t *testing.T) {
	// The discriminator may arrive after the payloads it interprets.
	// Every permutation must produce an identical envelope; type-last
	// with prev_content leading is the adversarial extreme.
	orders := [][]string{
		wireOrder,
		{"prev_content", "content", "unsigned", "state_key", "room_id",
			"origin_server_ts", "sender", "event_id", "type"},
		{"content", "type", "prev_content", "event_id", "sender",
			"origin_server_ts", "room_id", "state_key", "unsigned"},
	}

	reference := decodeAliases(t, buildJSON(orders[0], nil))
	for _, order := range orders[1:] {
		decoded := decodeAliases(t, buildJSON(order, nil))
		if !reflect.DeepEqual(decoded, reference) {
			t.Errorf("order %v produced a different envelope:\n got %+v\nwant %+v",
				order, decoded, reference)
		}
	}
}

func TestDecodeWithoutOptionalFields(t *testing.T) {
	decoded := decodeAliases(t, buildJSON(wireOrder, map[string]string{
		"prev_content": "",
		"unsigned":     "",
	}))
	if decoded.PrevContent != nil {
		t.Errorf("prev_content = %+v, want nil", *decoded.PrevContent)
	}
	if !decoded.Unsigned.IsEmpty() {
		t.Errorf("unsigned = %+v, want empty", decoded.Unsigned)
	}
}

func TestDecodeEmptyStateKey(t *testing.T) {
	decoded := decodeAliases(t, buildJSON(wireOrder, map[string]string{"state_key": `""`}))
	if decoded.StateKey != "" {
		t.Errorf("state_key = %q, want empty string", decoded.StateKey)
	}
}

func TestDecodeAvatar(t *testing.T) {
	data := []byte(`{
		"content": {
			"url": "mxc://matrix.org/rnsldl8srs98IRrs",
			"info": {
				"h": 398,
				"w": 394,
				"mimetype": "image/jpeg",
				"size": 31037,
				"thumbnail_url": "mxc://matrix.org/rnsldl8srs98IRrs",
				"thumbnail_info": {"h": 16, "w": 16, "mimetype": "image/jpeg", "size": 1027}
			}
		},
		"event_id": "$143273582443PhrSn:example.org",
		"origin_server_ts": 1432735824653,
		"room_id": "!jEsUZKDJdhlrceRyVU:example.org",
		"sender": "@example:example.org",
		"state_key": "",
		"type": "m.room.avatar",
		"unsigned": {"age": 1234}
	}`)

	decoded, err := event.Decode[content.Any](data, content.FromParts)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	avatar, ok := decoded.Content.Value().(content.AvatarContent)
	if !ok {
		t.Fatalf("content is %T, want AvatarContent", decoded.Content.Value())
	}
	if avatar.URL != "mxc://matrix.org/rnsldl8srs98IRrs" {
		t.Errorf("url = %q", avatar.URL)
	}
	if avatar.Info == nil {
		t.Fatal("info is nil")
	}
	if avatar.Info.Height != 398 || avatar.Info.Width != 394 || avatar.Info.Size != 31037 {
		t.Errorf("info = %+v", avatar.Info)
	}
	if avatar.Info.ThumbnailInfo == nil || avatar.Info.ThumbnailInfo.Height != 16 {
		t.Errorf("thumbnail_info = %+v", avatar.Info.ThumbnailInfo)
	}
	if decoded.StateKey != "" {
		t.Errorf("state_key = %q, want empty", decoded.StateKey)
	}
}

func TestDecodeDuplicateFields(t *testing.T) {
	for _, field := range wireOrder {
		t.Run(field, func(t *testing.T) {
			// Repeat the field at the end, after one full valid copy.
			doubled := append(append([]string{}, wireOrder...), field)
			_, err := event.Decode(buildJSON(doubled, nil),
				content.TypedFactory[content.AliasesContent](content.TypeRoomAliases))
			if !event.IsDuplicateField(err, field) {
				t.Errorf("got %v, want duplicate-field error for %q", err, field)
			}
		})
	}
}

func TestDecodeDuplicateBeatsMissing(t *testing.T) {
	// A duplicated field fails during the walk, before presence checks:
	// here event_id appears twice while sender is absent, and the
	// duplicate is what gets reported.
	data := []byte(`{
		"type": "m.room.aliases",
		"event_id": "$a:example.com",
		"event_id": "$a:example.com"
	}`)
	_, err := event.Decode(data, content.TypedFactory[content.AliasesContent](content.TypeRoomAliases))
	if !event.IsDuplicateField(err, "event_id") {
		t.Errorf("got %v, want duplicate-field error for event_id", err)
	}
}

func TestDecodeMissingFields(t *testing.T) {
	required := []string{
		"type", "content", "event_id", "sender",
		"origin_server_ts", "room_id", "state_key",
	}
	for _, field := range required {
		t.Run(field, func(t *testing.T) {
			_, err := event.Decode(buildJSON(wireOrder, map[string]string{field: ""}),
				content.TypedFactory[content.AliasesContent](content.TypeRoomAliases))
			if !event.IsMissingField(err, field) {
				t.Errorf("got %v, want missing-field error for %q", err, field)
			}
		})
	}
}

func TestDecodeIgnoresUnknownKeys(t *testing.T) {
	data := buildJSON(wireOrder, nil)
	// Splice unknown keys, including a nested object, into the front.
	extended := []byte(`{"origin": "example.com", "hashes": {"sha256": "abc"}, ` + string(data[1:]))
	decoded := decodeAliases(t, extended)
	if got := decoded.EventID.String(); got != "$h29iv0s8:example.com" {
		t.Errorf("event_id = %q", got)
	}
}

func TestDecodeTimestampBounds(t *testing.T) {
	maxValue := fmt.Sprintf("%d", event.MaxTimestamp)

	t.Run("zero is the epoch", func(t *testing.T) {
		decoded := decodeAliases(t, buildJSON(wireOrder, map[string]string{"origin_server_ts": "0"}))
		if !decoded.OriginServerTS.Equal(time.UnixMilli(0)) {
			t.Errorf("origin_server_ts = %v", decoded.OriginServerTS)
		}
	})
	t.Run("maximum is accepted", func(t *testing.T) {
		decoded := decodeAliases(t, buildJSON(wireOrder, map[string]string{"origin_server_ts": maxValue}))
		if got := decoded.OriginServerTS.UnixMilli(); got != event.MaxTimestamp {
			t.Errorf("origin_server_ts = %d", got)
		}
	})

	overflows := map[string]string{
		"negative":       "-1",
		"beyond maximum": fmt.Sprintf("%d", event.MaxTimestamp+1),
	}
	for name, value := range overflows {
		t.Run(name, func(t *testing.T) {
			_, err := event.Decode(buildJSON(wireOrder, map[string]string{"origin_server_ts": value}),
				content.TypedFactory[content.AliasesContent](content.TypeRoomAliases))
			var overflow *event.TimestampOverflowError
			if !errors.As(err, &overflow) {
				t.Fatalf("got %v, want *TimestampOverflowError", err)
			}
		})
	}

	t.Run("fractional is rejected", func(t *testing.T) {
		_, err := event.Decode(buildJSON(wireOrder, map[string]string{"origin_server_ts": "1.5"}),
			content.TypedFactory[content.AliasesContent](content.TypeRoomAliases))
		if err == nil {
			t.Fatal("expected error for fractional origin_server_ts")
		}
	})
}

func TestDecodeRejectsNullFields(t *testing.T) {
	for _, field := range []string{"type", "event_id", "sender", "room_id", "state_key"} {
		t.Run(field, func(t *testing.T) {
			_, err := event.Decode(buildJSON(wireOrder, map[string]string{field: "null"}),
				content.TypedFactory[content.AliasesContent](content.TypeRoomAliases))
			if err == nil {
				t.Fatalf("expected error for null %s", field)
			}
		})
	}
}

func TestDecodeNullContent(t *testing.T) {
	_, err := event.Decode(buildJSON(wireOrder, map[string]string{"content": "null"}),
		content.TypedFactory[content.AliasesContent](content.TypeRoomAliases))
	var contentErr *event.ContentError
	if !errors.As(err, &contentErr) {
		t.Fatalf("got %v, want *ContentError", err)
	}
	if contentErr.Field != "content" {
		t.Errorf("Field = %q, want %q", contentErr.Field, "content")
	}
}

func TestDecodeUnknownDiscriminator(t *testing.T) {
	_, err := event.Decode[content.Any](
		buildJSON(wireOrder, map[string]string{"type": `"com.example.custom"`}),
		content.FromParts)
	var contentErr *event.ContentError
	if !errors.As(err, &contentErr) {
		t.Fatalf("got %v, want *ContentError", err)
	}
	if contentErr.EventType != "com.example.custom" {
		t.Errorf("EventType = %q", contentErr.EventType)
	}
	var unknown *content.UnknownEventTypeError
	if !errors.As(err, &unknown) {
		t.Errorf("error chain lacks *UnknownEventTypeError: %v", err)
	}
}

func TestDecodeBadPrevContent(t *testing.T) {
	// Valid content, prev_content that fails the same schema.
	_, err := event.Decode(buildJSON(wireOrder, map[string]string{"prev_content": `{"aliases": "not-a-list"}`}),
		content.TypedFactory[content.AliasesContent](content.TypeRoomAliases))
	var contentErr *event.ContentError
	if !errors.As(err, &contentErr) {
		t.Fatalf("got %v, want *ContentError", err)
	}
	if contentErr.Field != "prev_content" {
		t.Errorf("Field = %q, want %q", contentErr.Field, "prev_content")
	}
}

func TestDecodeRejectsNonObject(t *testing.T) {
	for _, data := range []string{`[]`, `"string"`, `42`, `null`, ``} {
		if _, err := event.Decode([]byte(data),
			content.TypedFactory[content.AliasesContent](content.TypeRoomAliases)); err == nil {
			t.Errorf("Decode(%q): expected error", data)
		}
	}
}
