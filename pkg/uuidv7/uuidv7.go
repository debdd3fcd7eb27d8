// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package uuidv7 wraps google/uuid to generate time-ordered UUIDv7 values.
//
// Artist identifiers are UUIDv7 strings: opaque to clients, unique, and
// sortable by registration time.
package uuidv7

import (
	"github.com/google/uuid"
)

// New generates a new UUIDv7 string.
//
// # Safety
//
// It panics only if the OS random source is unavailable.
// OS entropy failure is an unrecoverable system-level error.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("uuidv7: failed to generate UUID: " + err.Error())
	}

	return id.String()
}
