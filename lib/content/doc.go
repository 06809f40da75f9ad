// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package content provides the catalog of state-event content schemas
// and the registry that maps a wire discriminator ("m.room.aliases",
// "m.room.member", ...) to its payload deserializer.
//
// [Any] is the registered tagged union: an envelope decoded as
// StateEvent[Any] accepts every registered event type, and callers
// type-switch on Any.Value for the concrete schema. [FromParts] is the
// event.ContentFactory backing it. Programs that expect exactly one
// event type use [TypedFactory] instead and get a concretely typed
// envelope.
//
// The catalog is open: [Register] adds external schemas, typically
// from a package init function. Registration happens during program
// initialization only; afterwards the registry is read-only and safe
// for concurrent use.
package content
