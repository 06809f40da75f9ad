// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package event

import "time"

// MaxTimestamp is the largest wire value for origin_server_ts:
// 2^53 − 1 milliseconds since the Unix epoch. Matrix canonical JSON
// restricts integers to the IEEE 754 double-precision safe range, so
// larger values cannot travel the wire without loss.
const MaxTimestamp = int64(1)<<53 - 1

var (
	epochStart  = time.UnixMilli(0)
	wireMaximum = time.UnixMilli(MaxTimestamp)
)

// EncodeTimestamp converts an instant to its wire form: the count of
// milliseconds since the Unix epoch. Instants before the epoch are not
// representable; those and instants beyond MaxTimestamp fail with
// *TimestampOverflowError. Sub-millisecond precision is truncated.
func EncodeTimestamp(t time.Time) (int64, error) {
	if t.Before(epochStart) || t.After(wireMaximum) {
		return 0, &TimestampOverflowError{Millis: t.UnixMilli()}
	}
	return t.UnixMilli(), nil
}

// DecodeTimestamp converts a wire millisecond count to an instant in
// UTC. It performs no validation — the decoder checks the value is a
// non-negative integer within [0, MaxTimestamp] before calling.
func DecodeTimestamp(millis int64) time.Time {
	return time.UnixMilli(millis).UTC()
}
