// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package event implements the envelope codec for Matrix state events.
//
// A state event is wire-encoded as a JSON object whose interpretation
// is polymorphic: the "type" field selects which schema the "content"
// (and optional "prev_content") payload must be parsed as, out of an
// open, externally registered set. JSON object key order is not
// guaranteed, so "type" may arrive after the payloads it describes.
// [Decode] therefore walks the object once in wire order, buffers the
// raw payload bytes, and resolves them through a [ContentFactory] only
// after the full object has been read. [Encode] is the inverse: it
// projects a typed [StateEvent] back to the canonical wire object with
// a fixed field order, omitting prev_content when absent and unsigned
// when empty.
//
// The codec is generic over any content type satisfying [Content] and
// never special-cases individual schemas — lib/content supplies the
// registered schema catalog and a factory over it. Decoding and
// encoding are pure, synchronous transforms with no shared mutable
// state; independent envelopes may be processed concurrently without
// coordination.
//
// All failures are typed: [MissingFieldError], [DuplicateFieldError],
// [ContentError], and [TimestampOverflowError]. Decode either fully
// succeeds or fails atomically — no partially populated envelope is
// ever returned.
package event
