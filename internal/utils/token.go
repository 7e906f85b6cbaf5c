// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// SessionIDBytes is the entropy of a session identifier (256 bits).
const SessionIDBytes = 32

// SessionIDLen is the length of a hex-encoded session identifier.
const SessionIDLen = SessionIDBytes * 2

// NewSessionID reads [SessionIDBytes] bytes from the OS CSPRNG and returns
// them hex-encoded.
func NewSessionID() (string, error) {
	b := make([]byte, SessionIDBytes)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return "", fmt.Errorf("error generating session id: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// ValidSessionID reports whether id has the shape produced by NewSessionID:
// exactly SessionIDLen lowercase hex characters.
func ValidSessionID(id string) bool {
	if len(id) != SessionIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// ShortID returns the first 8 characters of id, safe to log.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
