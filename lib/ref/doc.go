// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package ref provides strongly typed, immutable identity references
// for Matrix protocol entities: event IDs, room IDs, user IDs, room
// aliases, and server names.
//
// All constructors validate their inputs and return errors for invalid
// identifiers. Once constructed, a ref is immutable — String returns
// the full wire form at zero allocation cost. Identifiers arrive from
// the wire (event envelopes, API responses) and are parsed into these
// types at the boundary; code past the boundary never handles raw
// identifier strings.
//
// JSON marshaling uses the full Matrix identifier via
// encoding.TextMarshaler:
//   - EventID: $opaque or $opaque:server (legacy room versions)
//   - RoomID: !localpart:server
//   - UserID: @localpart:server
//   - RoomAlias: #localpart:server
package ref
