// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the persisted identity record of an account.
//
// HashedPassword is an opaque hash produced by a crypto.PasswordHasher and
// must never be compared against plaintext directly. ResetToken and SessionID
// are nullable: nil means "no active value".
type User struct {
	// ID is a stable surrogate key (UUIDv7), assigned at registration.
	ID string `json:"id"`

	// Email is unique across users and compared case-sensitively.
	Email string `json:"email"`

	// HashedPassword is never serialized.
	HashedPassword []byte `json:"-"`

	// ResetToken holds the single active password reset token, if any.
	ResetToken *string `json:"-"`

	// SessionID is the single session slot of the user.
	SessionID *string `json:"-"`

	// CreatedAt is the registration timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasSession reports whether the session slot is occupied.
func (u User) HasSession() bool {
	return u.SessionID != nil && *u.SessionID != ""
}

// Credentials is a transient email/password pair. It is never persisted
// and must never be logged.
type Credentials struct {
	Email    string
	Password string
}

// PasswordUpdate carries the fields of a password reset redemption.
// Email is optional; when set it must belong to the token owner.
type PasswordUpdate struct {
	Email       string
	ResetToken  string
	NewPassword string
}
