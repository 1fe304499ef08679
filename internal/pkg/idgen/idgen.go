// Package idgen mints roster session ids
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces a fresh id on every call
type Generator interface {
	Generate() string
}

// withPrefix joins prefix and id as "prefix_id", or returns id alone
func withPrefix(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}

// UUIDGenerator mints random v4 ids. It is safe for concurrent use.
type UUIDGenerator struct {
	prefix string
}

// NewUUID returns a generator of "prefix_<uuid>" ids
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate implements Generator
func (g *UUIDGenerator) Generate() string {
	return withPrefix(g.prefix, uuid.NewString())
}

// SequentialGenerator mints "prefix_1", "prefix_2", ... so tests can
// predict roster ids.
type SequentialGenerator struct {
	prefix string
	next   atomic.Uint64
}

// NewSequential returns a generator that starts counting at 1
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate implements Generator
func (g *SequentialGenerator) Generate() string {
	return withPrefix(g.prefix, strconv.FormatUint(g.next.Add(1), 10))
}
