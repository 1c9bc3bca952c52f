// Package kv provides the key/value pair shared by the containers in this
// module, and the read-only view both maps expose.
package kv

import (
	"fmt"
	"iter"
)

// Entry is an ordered key/value pair. Containers place entries by Key, so a
// key must not be reassigned while the entry is stored in a map.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// NewEntry returns a pair holding key and value.
func NewEntry[K any, V any](key K, value V) *Entry[K, V] {
	return &Entry[K, V]{Key: key, Value: value}
}

// SetValue replaces the value and returns the one it replaced.
func (e *Entry[K, V]) SetValue(value V) V {
	old := e.Value
	e.Value = value
	return old
}

func (e *Entry[K, V]) SetKey(key K) {
	e.Key = key
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", e.Key, e.Value)
}

// Store is the read-only view shared by the hash map and the tree map.
type Store[K any, V any] interface {
	Get(key K) (V, bool)
	Len() int
	Values() []V
	All() iter.Seq2[K, V]
}
