// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"encoding/json"
	"testing"
)

func TestParseEventID(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		// Valid: room version 4+ hash-based IDs.
		{"$abc123xyz", false},
		{"$VGhpcyBpcyBhIHRlc3Q", false},
		// Valid: legacy format with server.
		{"$something:example.com", false},
		// Invalid: empty.
		{"", true},
		// Invalid: wrong sigil.
		{"!abc123", true},
		{"@abc123", true},
		{"#abc123", true},
		{"abc123", true},
		// Invalid: only the prefix.
		{"$", true},
	}

	for _, test := range tests {
		_, err := ParseEventID(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseEventID(%q): err=%v, wantErr=%v", test.input, err, test.wantErr)
		}
	}
}

func TestParseRoomID(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"!abc123:example.com", false},
		{"!abc123:example.com:8448", false},
		// Invalid: empty.
		{"", true},
		// Invalid: wrong sigil.
		{"#abc123:example.com", true},
		{"abc123:example.com", true},
		// Invalid: missing server.
		{"!abc123", true},
		{"!abc123:", true},
		// Invalid: empty local part.
		{"!:example.com", true},
	}

	for _, test := range tests {
		_, err := ParseRoomID(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseRoomID(%q): err=%v, wantErr=%v", test.input, err, test.wantErr)
		}
	}
}

func TestParseUserID(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"@alice:example.com", false},
		{"@carl:example.com", false},
		{"@a:b", false},
		// Invalid: empty.
		{"", true},
		// Invalid: wrong sigil.
		{"alice:example.com", true},
		{"#alice:example.com", true},
		// Invalid: missing server.
		{"@alice", true},
		{"@alice:", true},
		// Invalid: empty localpart.
		{"@:example.com", true},
		// Invalid: whitespace in server.
		{"@alice:exa mple.com", true},
	}

	for _, test := range tests {
		_, err := ParseUserID(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseUserID(%q): err=%v, wantErr=%v", test.input, err, test.wantErr)
		}
	}
}

func TestParseRoomAlias(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"#lobby:example.com", false},
		{"#somewhere:localhost", false},
		// Invalid: empty.
		{"", true},
		// Invalid: wrong sigil.
		{"@lobby:example.com", true},
		{"lobby:example.com", true},
		// Invalid: missing server.
		{"#lobby", true},
		{"#lobby:", true},
		// Invalid: empty localpart.
		{"#:example.com", true},
	}

	for _, test := range tests {
		_, err := ParseRoomAlias(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseRoomAlias(%q): err=%v, wantErr=%v", test.input, err, test.wantErr)
		}
	}
}

func TestParseServerName(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"example.com", false},
		{"matrix.example.com:8448", false},
		{"localhost", false},
		{"", true},
		{"exa mple.com", true},
		{"@example.com", true},
		{"#example.com", true},
	}

	for _, test := range tests {
		_, err := ParseServerName(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseServerName(%q): err=%v, wantErr=%v", test.input, err, test.wantErr)
		}
	}
}

func TestUserIDParts(t *testing.T) {
	user := MustParseUserID("@carl:example.com")
	if got := user.Localpart(); got != "carl" {
		t.Errorf("Localpart() = %q, want %q", got, "carl")
	}
	if got := user.Server(); got != "example.com" {
		t.Errorf("Server() = %q, want %q", got, "example.com")
	}
}

func TestRoomAliasParts(t *testing.T) {
	alias := MustParseRoomAlias("#lobby:example.com")
	if got := alias.Localpart(); got != "lobby" {
		t.Errorf("Localpart() = %q, want %q", got, "lobby")
	}
	if got := alias.Server(); got != "example.com" {
		t.Errorf("Server() = %q, want %q", got, "example.com")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	type wrapper struct {
		EventID   EventID    `json:"event_id"`
		RoomID    RoomID     `json:"room_id"`
		Sender    UserID     `json:"sender"`
		Alias     RoomAlias  `json:"alias"`
		Server    ServerName `json:"server"`
		EventType EventType  `json:"type"`
	}
	original := wrapper{
		EventID:   MustParseEventID("$h29iv0s8:example.com"),
		RoomID:    MustParseRoomID("!roomid:room.com"),
		Sender:    MustParseUserID("@carl:example.com"),
		Alias:     MustParseRoomAlias("#somewhere:localhost"),
		Server:    MustParseServerName("example.com"),
		EventType: "m.room.aliases",
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded wrapper
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != original {
		t.Errorf("round-trip: got %+v, want %+v", decoded, original)
	}
}

func TestUnmarshalRejectsInvalid(t *testing.T) {
	var eventID EventID
	if err := json.Unmarshal([]byte(`"not-an-event-id"`), &eventID); err == nil {
		t.Error("event ID: Unmarshal succeeded, want error")
	}
	var roomID RoomID
	if err := json.Unmarshal([]byte(`"not-a-room-id"`), &roomID); err == nil {
		t.Error("room ID: Unmarshal succeeded, want error")
	}
	var userID UserID
	if err := json.Unmarshal([]byte(`"not-a-user-id"`), &userID); err == nil {
		t.Error("user ID: Unmarshal succeeded, want error")
	}
	var alias RoomAlias
	if err := json.Unmarshal([]byte(`"not-an-alias"`), &alias); err == nil {
		t.Error("room alias: Unmarshal succeeded, want error")
	}
}

func TestZeroValues(t *testing.T) {
	if !(EventID{}).IsZero() || !(RoomID{}).IsZero() || !(UserID{}).IsZero() ||
		!(RoomAlias{}).IsZero() || !(ServerName{}).IsZero() {
		t.Error("zero values should report IsZero")
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseEventID should panic on invalid input")
		}
	}()
	MustParseEventID("")
}
