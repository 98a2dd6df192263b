// Package ident hands out item identifiers.
package ident

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator returns a fresh identifier on every call.
type Generator interface {
	NewID() string
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func() string

func (f GeneratorFunc) NewID() string { return f() }

// UUID generates random (version 4) UUIDs backed by crypto/rand.
type UUID struct{}

func (UUID) NewID() string { return uuid.NewString() }

// Check probes the random source once. uuid.NewString panics when the
// source fails, so callers run this before the screen starts.
func Check() error {
	if _, err := uuid.NewRandom(); err != nil {
		return fmt.Errorf("identifier source unavailable: %w", err)
	}
	return nil
}
