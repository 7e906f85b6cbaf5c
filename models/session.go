// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session maps an opaque session identifier to the owning user.
//
// The expiration policy is not part of the record: it is configured on the
// registry and evaluated against CreatedAt at lookup time.
type Session struct {
	ID        string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// ExpiredAt reports whether the session is past its lifetime ttl at t.
// A non-positive ttl means the session never expires.
func (s Session) ExpiredAt(t time.Time, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return t.After(s.CreatedAt.Add(ttl))
}
