// Package hashmap provides a generic hash table that resolves collisions by
// separate chaining. Each bucket holds a linked list of entries; the table
// length is always a power of two so a bucket index is a mask of the hash.
package hashmap

import (
	"iter"
	"math/bits"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/hashicorp/go-hclog"

	"github.com/Priyanshu23/containers/kv"
	"github.com/Priyanshu23/containers/linkedlist"
)

// Map is a hash table keyed by K. It is not safe for concurrent use.
type Map[K comparable, V any] struct {
	buckets    []*linkedlist.List[*kv.Entry[K, V]]
	occupied   *bitset.BitSet // bit i set iff buckets[i] holds at least one entry
	size       int
	loadFactor float64
	hash       Hasher[K]
	logger     hclog.Logger
}

var _ kv.Store[string, int] = (*Map[string, int])(nil)

// New returns an empty map with the default capacity and load factor.
func New[K comparable, V any]() *Map[K, V] {
	m, err := NewWithConfig[K, V](DefaultConfig[K]())
	if err != nil {
		panic(err) // the default config is always valid
	}
	return m
}

func NewWithConfig[K comparable, V any](cfg Config[K]) (*Map[K, V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	hash := cfg.Hash
	if hash == nil {
		hash = MaphashHasher[K]()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	length := roundUpPowerOf2(cfg.Capacity)

	return &Map[K, V]{
		buckets:    make([]*linkedlist.List[*kv.Entry[K, V]], length),
		occupied:   bitset.New(uint(length)),
		loadFactor: cfg.LoadFactor,
		hash:       hash,
		logger:     logger.Named("hashmap"),
	}, nil
}

// roundUpPowerOf2 returns the smallest power of two >= c, for c >= 1.
func roundUpPowerOf2(c int) int {
	return 1 << bits.Len(uint(c-1))
}

func (m *Map[K, V]) Len() int {
	return m.size
}

func (m *Map[K, V]) IsEmpty() bool {
	return m.size == 0
}

// Buckets returns the current table length.
func (m *Map[K, V]) Buckets() int {
	return len(m.buckets)
}

func (m *Map[K, V]) index(key K) int {
	return int(m.hash(key) & uint64(len(m.buckets)-1))
}

func (m *Map[K, V]) lookup(key K) *kv.Entry[K, V] {
	c := m.buckets[m.index(key)]
	if c == nil {
		return nil
	}

	for e := range c.All() {
		if e.Key == key {
			return e
		}
	}

	return nil
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	if e := m.lookup(key); e != nil {
		return e.Value, true
	}

	return *new(V), false
}

func (m *Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Put associates value with key. If the key is already present its value is
// replaced in place and the previous value is returned; otherwise the table
// grows if the new entry would exceed the load factor, the entry is added and
// value itself is returned.
func (m *Map[K, V]) Put(key K, value V) V {
	if e := m.lookup(key); e != nil {
		return e.SetValue(value)
	}

	for float64(m.size+1) > float64(len(m.buckets))*m.loadFactor {
		m.rehash()
	}

	m.insert(kv.NewEntry(key, value))
	m.size++

	return value
}

// insert appends e to its chain without touching size.
func (m *Map[K, V]) insert(e *kv.Entry[K, V]) {
	i := m.index(e.Key)

	if m.buckets[i] == nil {
		m.buckets[i] = linkedlist.New[*kv.Entry[K, V]]()
		m.occupied.Set(uint(i))
	}

	m.buckets[i].AddLast(e)
}

// Remove deletes key and reports whether it was present.
func (m *Map[K, V]) Remove(key K) bool {
	i := m.index(key)
	c := m.buckets[i]
	if c == nil {
		return false
	}

	for e := range c.All() {
		if e.Key != key {
			continue
		}

		c.Remove(e)
		m.size--

		if c.IsEmpty() {
			m.buckets[i] = nil
			m.occupied.Clear(uint(i))
		}

		return true
	}

	return false
}

// rehash doubles the table and reinserts every entry under its new index.
func (m *Map[K, V]) rehash() {
	old := m.buckets
	oldOccupied := m.occupied

	m.buckets = make([]*linkedlist.List[*kv.Entry[K, V]], len(old)<<1)
	m.occupied = bitset.New(uint(len(m.buckets)))

	for i, ok := oldOccupied.NextSet(0); ok; i, ok = oldOccupied.NextSet(i + 1) {
		for e := range old[i].All() {
			m.insert(e)
		}
	}

	m.logger.Trace("grew table", "from", len(old), "to", len(m.buckets), "entries", m.size)
}

// Clear removes every entry. The table keeps its current length.
func (m *Map[K, V]) Clear() {
	for i, ok := m.occupied.NextSet(0); ok; i, ok = m.occupied.NextSet(i + 1) {
		m.buckets[i] = nil
	}

	m.occupied.ClearAll()
	m.size = 0
}

// entries yields the stored entries bucket by bucket, each chain in insertion
// order. The order changes when the table grows.
func (m *Map[K, V]) entries() iter.Seq[*kv.Entry[K, V]] {
	return func(yield func(*kv.Entry[K, V]) bool) {
		for i, ok := m.occupied.NextSet(0); ok; i, ok = m.occupied.NextSet(i + 1) {
			for e := range m.buckets[i].All() {
				if !yield(e) {
					return
				}
			}
		}
	}
}

func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range m.entries() {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.size)
	for e := range m.entries() {
		values = append(values, e.Value)
	}

	return values
}

func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for e := range m.entries() {
		keys = append(keys, e.Key)
	}

	return keys
}

// Entries returns a copy of every stored pair.
func (m *Map[K, V]) Entries() []kv.Entry[K, V] {
	entries := make([]kv.Entry[K, V], 0, m.size)
	for e := range m.entries() {
		entries = append(entries, *e)
	}

	return entries
}

// String lists the pairs of each non-empty bucket on its own line.
func (m *Map[K, V]) String() string {
	var sb strings.Builder

	sb.WriteByte('[')
	for i, ok := m.occupied.NextSet(0); ok; i, ok = m.occupied.NextSet(i + 1) {
		for e := range m.buckets[i].All() {
			sb.WriteString(e.String())
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte(']')

	return sb.String()
}
