// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package canonical produces the canonical JSON form of wire events and
// the SHA-256 reference hash derived from it.
//
// Matrix defines event identity over canonical JSON: object keys sorted
// lexicographically, no insignificant whitespace, shortest-form number
// encoding. Two events with the same canonical form are the same event,
// regardless of how their wire bytes were ordered or spaced. The
// reference hash additionally strips the fields servers may rewrite in
// transit (unsigned, signatures) before hashing, so it is stable across
// federation hops.
package canonical
