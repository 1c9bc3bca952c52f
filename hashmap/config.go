package hashmap

import (
	"fmt"
	"hash/maphash"
	"math"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/exp/constraints"
)

const (
	DefaultCapacity   = 100
	DefaultLoadFactor = 0.9

	// MaxCapacity bounds the initial table length so rounding up cannot
	// overflow.
	MaxCapacity = 1 << 30
)

// Hasher maps a key to a 64 bit hash. Only the low bits select a bucket, so
// a hasher should spread entropy into them.
type Hasher[K comparable] func(key K) uint64

// Config holds the construction parameters of a Map.
type Config[K comparable] struct {
	// Capacity is rounded up to the next power of two to give the initial
	// table length.
	Capacity int

	// LoadFactor is the largest ratio of entries to buckets tolerated before
	// the table doubles.
	LoadFactor float64

	// Hash defaults to a seeded maphash over the key when nil.
	Hash Hasher[K]

	// Logger defaults to a null logger when nil.
	Logger hclog.Logger
}

func DefaultConfig[K comparable]() Config[K] {
	return Config[K]{
		Capacity:   DefaultCapacity,
		LoadFactor: DefaultLoadFactor,
	}
}

// Validate reports every problem with the config at once.
func (c Config[K]) Validate() error {
	var result error

	validCapacity := c.Capacity >= 1 && c.Capacity <= MaxCapacity
	if !validCapacity {
		result = multierror.Append(result, fmt.Errorf("capacity must be between 1 and %d, got %d", MaxCapacity, c.Capacity))
	}

	switch {
	case math.IsNaN(c.LoadFactor) || math.IsInf(c.LoadFactor, 0) || c.LoadFactor <= 0:
		result = multierror.Append(result, fmt.Errorf("load factor must be a positive number, got %v", c.LoadFactor))
	case validCapacity && c.LoadFactor*float64(roundUpPowerOf2(c.Capacity)) < 1:
		// the table must hold at least one entry before it grows
		result = multierror.Append(result, fmt.Errorf("load factor %v leaves no room for an entry in %d buckets", c.LoadFactor, roundUpPowerOf2(c.Capacity)))
	}

	if result != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, result)
	}

	return nil
}

// MaphashHasher returns a hasher over any comparable key, seeded once so that
// a key keeps its hash for the lifetime of the map.
func MaphashHasher[K comparable]() Hasher[K] {
	seed := maphash.MakeSeed()
	return func(key K) uint64 {
		return maphash.Comparable(seed, key)
	}
}

// IdentityHasher uses an integer key as its own hash, which makes bucket
// placement predictable.
func IdentityHasher[K constraints.Integer]() Hasher[K] {
	return func(key K) uint64 {
		return uint64(key)
	}
}
