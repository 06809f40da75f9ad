// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package canonical

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
)

// JSON converts a JSON document to its canonical form (RFC 8785): keys
// sorted, whitespace removed, numbers in shortest form. Fails if data
// is not valid JSON.
func JSON(data []byte) ([]byte, error) {
	canonical, err := jcs.Transform(data)
	if err != nil {
		return nil, fmt.Errorf("canonical JSON: %w", err)
	}
	return canonical, nil
}

// ReferenceHash computes the SHA-256 reference hash of a wire event:
// the hash of the canonical form with the server-mutable fields
// (unsigned, signatures) removed. eventJSON must be a JSON object.
func ReferenceHash(eventJSON []byte) ([sha256.Size]byte, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(eventJSON, &fields); err != nil {
		return [sha256.Size]byte{}, fmt.Errorf("reference hash: %w", err)
	}
	delete(fields, "unsigned")
	delete(fields, "signatures")

	stripped, err := json.Marshal(fields)
	if err != nil {
		return [sha256.Size]byte{}, fmt.Errorf("reference hash: %w", err)
	}
	canonical, err := JSON(stripped)
	if err != nil {
		return [sha256.Size]byte{}, err
	}
	return sha256.Sum256(canonical), nil
}
