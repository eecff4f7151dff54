// Package idgen produces asset identifiers.
package idgen

import "github.com/google/uuid"

// Generator returns a fresh, globally unique identifier on every call.
type Generator interface {
	NewID() string
}

// UUID generates random (version 4) UUIDs.
type UUID struct{}

func (UUID) NewID() string {
	return uuid.NewString()
}

// Func adapts a plain function to Generator.
type Func func() string

func (f Func) NewID() string { return f() }
