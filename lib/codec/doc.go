// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the standard CBOR encoding configuration for
// event snapshots.
//
// Two serialization formats with a clear boundary:
//
//   - JSON for the wire: state events as they travel the Matrix
//     federation and Client-Server APIs, and as CLI input/output.
//   - CBOR for storage: decoded-event snapshots written to disk by
//     tooling that wants a compact, deterministic archival form.
//
// This package provides the shared CBOR encoding and decoding modes so
// that every caller encodes identically without duplicating
// configuration. The encoder uses Core Deterministic Encoding (RFC 8949
// §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. Same logical data always produces identical
// bytes, so snapshot files can be compared byte-for-byte.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations (snapshot files holding many events):
//
//	encoder := codec.NewEncoder(file)
//	decoder := codec.NewDecoder(file)
package codec
