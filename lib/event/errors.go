// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/statewire/lib/ref"
)

// MissingFieldError reports a required wire field that never appeared
// in the decoded object. The input is malformed, not transient — the
// caller should reject it, not retry. Callers can use errors.As to
// extract the field name:
//
//	var missing *event.MissingFieldError
//	if errors.As(err, &missing) {
//	    if missing.Field == "state_key" { ... }
//	}
type MissingFieldError struct {
	// Field is the wire name of the absent field (e.g., "origin_server_ts").
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("state event: missing required field %q", e.Field)
}

// DuplicateFieldError reports a recognized wire field that appeared
// more than once in the decoded object. Duplicates are a protocol
// violation and are never resolved by precedence, even when the
// repeated values are identical.
type DuplicateFieldError struct {
	// Field is the wire name of the repeated field.
	Field string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("state event: duplicate field %q", e.Field)
}

// ContentError reports that a content payload could not be resolved:
// either the discriminator is not recognized by the factory, or the
// payload does not match the discriminator's schema. It carries the
// offending discriminator for diagnostics and wraps the factory's
// underlying error.
type ContentError struct {
	// EventType is the envelope discriminator the factory was given.
	EventType ref.EventType

	// Field is the payload slot that failed: "content" or "prev_content".
	Field string

	// Err is the factory's underlying error.
	Err error
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("state event: field %q: resolving %q content: %v", e.Field, e.EventType, e.Err)
}

func (e *ContentError) Unwrap() error { return e.Err }

// TimestampOverflowError reports an origin_server_ts outside the
// representable wire range [0, MaxTimestamp]. It is returned on decode
// for out-of-range wire integers and on encode for instants before the
// Unix epoch or beyond the wire maximum.
type TimestampOverflowError struct {
	// Millis is the offending millisecond value: the wire integer on
	// decode, or the computed elapsed milliseconds on encode.
	Millis int64
}

func (e *TimestampOverflowError) Error() string {
	return fmt.Sprintf("state event: origin_server_ts %d outside representable range [0, %d]", e.Millis, MaxTimestamp)
}

// IsMissingField checks whether err is a *MissingFieldError for the
// given wire field name.
func IsMissingField(err error, field string) bool {
	var missing *MissingFieldError
	if errors.As(err, &missing) {
		return missing.Field == field
	}
	return false
}

// IsDuplicateField checks whether err is a *DuplicateFieldError for
// the given wire field name.
func IsDuplicateField(err error, field string) bool {
	var duplicate *DuplicateFieldError
	if errors.As(err, &duplicate) {
		return duplicate.Field == field
	}
	return false
}
