// Package ident generates identifiers for new notes.
//
// Generators check every candidate against the ids already in the store and
// retry on collision, so a small id space degrades into ErrExhausted instead
// of silently overwriting a note.
package ident

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// DefaultLength is the length of numeric ids.
const DefaultLength = 5

// DefaultMaxAttempts bounds the check-and-retry loop.
const DefaultMaxAttempts = 32

// ErrExhausted is returned when every attempt collided with an existing id.
var ErrExhausted = errors.New("could not generate a unique id")

// Generator produces ids for new notes.
// exists reports whether a candidate is already taken; it may be nil.
type Generator interface {
	NewID(ctx context.Context, exists func(id string) bool) (string, error)
}

// Numeric generates fixed-length strings of decimal digits.
type Numeric struct {
	Length      int
	MaxAttempts int
	// Rand is the entropy source. Defaults to crypto/rand.
	Rand io.Reader
}

// NewID implements Generator.
func (g Numeric) NewID(ctx context.Context, exists func(string) bool) (string, error) {
	length := g.Length
	if length <= 0 {
		length = DefaultLength
	}
	return retry(ctx, g.MaxAttempts, exists, func() (string, error) {
		return digits(g.source(), length)
	})
}

func (g Numeric) source() io.Reader {
	if g.Rand != nil {
		return g.Rand
	}
	return rand.Reader
}

// UUID generates random 128-bit identifiers.
type UUID struct {
	MaxAttempts int
}

// NewID implements Generator.
func (g UUID) NewID(ctx context.Context, exists func(string) bool) (string, error) {
	return retry(ctx, g.MaxAttempts, exists, func() (string, error) {
		id, err := uuid.NewRandom()
		if err != nil {
			return "", err
		}
		return id.String(), nil
	})
}

// FromName builds a generator from its configuration name.
func FromName(kind string, length int) (Generator, error) {
	switch strings.ToLower(kind) {
	case "", "numeric":
		return Numeric{Length: length}, nil
	case "uuid":
		return UUID{}, nil
	}
	return nil, fmt.Errorf("unknown id generator %q (want numeric or uuid)", kind)
}

func retry(ctx context.Context, attempts int, exists func(string) bool, next func() (string, error)) (string, error) {
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}
	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		id, err := next()
		if err != nil {
			return "", fmt.Errorf("read entropy: %w", err)
		}
		if exists == nil || !exists(id) {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w after %d attempts", ErrExhausted, attempts)
}

// digits draws n uniformly distributed decimal digits from r.
func digits(r io.Reader, n int) (string, error) {
	out := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			// 250 is the largest multiple of 10 below 256.
			if b >= 250 {
				continue
			}
			out = append(out, '0'+b%10)
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}
