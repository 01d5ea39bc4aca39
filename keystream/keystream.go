// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package keystream derives deterministic pseudorandom byte sequences
// from a password, salt and iteration count, and provides the raw
// HMAC-SHA256 primitive used by the verification layer. Every ROT500K
// transform derives its own keystream and holds its own cursor; there
// is no shared or mutable state in this package.
package keystream

import (
	"crypto/hmac"
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// MinLength is the floor on derived keystream length: callers asking
// for fewer bytes still get this many.
const MinLength = 32

// Derive returns a PBKDF2-HMAC-SHA256 keystream of
// max(needBytes, MinLength) bytes for (password, salt, iterations).
// password and salt are treated as UTF-8 byte sequences; iterations is
// floored to 1.
func Derive(password, salt string, iterations, needBytes int) []byte {
	if iterations < 1 {
		iterations = 1
	}
	if needBytes < MinLength {
		needBytes = MinLength
	}
	return pbkdf2.Key([]byte(password), []byte(salt), iterations, needBytes, sha256.New)
}

// HMACSHA256 returns the HMAC-SHA256 of msg under key, both taken as
// UTF-8 byte sequences.
func HMACSHA256(key, msg string) [sha256.Size]byte {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(msg))
	var out [sha256.Size]byte
	copy(out[:], mac.Sum(nil))
	return out
}

// Cursor walks a keystream, wrapping to the start on exhaustion. It is
// the only mutable piece of state in the ROT500K engine, and it is
// always local to a single transform call.
type Cursor struct {
	bytes []byte
	pos   int
}

// NewCursor wraps a derived keystream for sequential byte-at-a-time
// consumption.
func NewCursor(bytes []byte) *Cursor {
	return &Cursor{bytes: bytes}
}

// Next returns the next keystream byte and advances the cursor,
// wrapping to 0 if the stream is exhausted.
func (c *Cursor) Next() byte {
	b := c.bytes[c.pos]
	c.pos++
	if c.pos >= len(c.bytes) {
		c.pos = 0
	}
	return b
}
