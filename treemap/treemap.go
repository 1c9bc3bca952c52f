// Package treemap provides an ordered map backed by an unbalanced binary
// search tree. Keys are ordered either naturally or by a supplied comparator.
// The tree is never rebalanced, so sorted insertion degrades it to a list.
package treemap

import (
	"cmp"
	"iter"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/Priyanshu23/containers/kv"
)

// Comparator returns a negative number when a orders before b, zero when they
// are the same key and a positive number otherwise.
type Comparator[K any] func(a, b K) int

// Reverse returns a comparator with the opposite order of c.
func Reverse[K any](c Comparator[K]) Comparator[K] {
	return func(a, b K) int {
		return c(b, a)
	}
}

type node[K any, V any] struct {
	entry *kv.Entry[K, V]
	left  *node[K, V]
	right *node[K, V]
}

// Map is an ordered map. It is not safe for concurrent use.
type Map[K any, V any] struct {
	root    *node[K, V]
	size    int
	compare Comparator[K]
}

var _ kv.Store[string, int] = (*Map[string, int])(nil)

// New returns an empty map ordered by the natural order of K.
func New[K constraints.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{compare: cmp.Compare[K]}
}

// NewWithComparator returns an empty map ordered by c. The same comparator is
// used for the lifetime of the map.
func NewWithComparator[K any, V any](c Comparator[K]) *Map[K, V] {
	if c == nil {
		panic("treemap: nil comparator")
	}
	return &Map[K, V]{compare: c}
}

func (t *Map[K, V]) Len() int {
	return t.size
}

func (t *Map[K, V]) IsEmpty() bool {
	return t.size == 0
}

func (t *Map[K, V]) Clear() {
	t.root = nil
	t.size = 0
}

func (t *Map[K, V]) find(key K) *node[K, V] {
	n := t.root
	for n != nil {
		switch c := t.compare(key, n.entry.Key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}

	return nil
}

func (t *Map[K, V]) Contains(key K) bool {
	return t.find(key) != nil
}

func (t *Map[K, V]) Get(key K) (V, bool) {
	if n := t.find(key); n != nil {
		return n.entry.Value, true
	}

	return *new(V), false
}

// Add inserts a new key. It returns false and leaves the tree untouched when
// the key is already present.
func (t *Map[K, V]) Add(key K, value V) bool {
	link := &t.root
	for *link != nil {
		switch c := t.compare(key, (*link).entry.Key); {
		case c < 0:
			link = &(*link).left
		case c > 0:
			link = &(*link).right
		default:
			return false
		}
	}

	*link = &node[K, V]{entry: kv.NewEntry(key, value)}
	t.size++

	return true
}

// Remove deletes key and reports whether it was present. A node with two
// children takes over the entry of its in-order predecessor, and the
// predecessor node is unlinked instead.
func (t *Map[K, V]) Remove(key K) bool {
	link := &t.root
	for *link != nil {
		c := t.compare(key, (*link).entry.Key)
		if c == 0 {
			break
		}
		if c < 0 {
			link = &(*link).left
		} else {
			link = &(*link).right
		}
	}

	n := *link
	if n == nil {
		return false
	}

	switch {
	case n.left == nil:
		*link = n.right
	case n.right == nil:
		*link = n.left
	default:
		// rightmost node of the left subtree; it has no right child
		pred := &n.left
		for (*pred).right != nil {
			pred = &(*pred).right
		}
		n.entry = (*pred).entry
		*pred = (*pred).left
	}

	t.size--

	return true
}

// Height returns the number of nodes on the longest root to leaf path.
func (t *Map[K, V]) Height() int {
	return height(t.root)
}

func height[K any, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}

	return 1 + max(height(n.left), height(n.right))
}

// InOrder yields the entries in ascending key order.
func (t *Map[K, V]) InOrder() iter.Seq[kv.Entry[K, V]] {
	return func(yield func(kv.Entry[K, V]) bool) {
		inorder(t.root, yield)
	}
}

// PreOrder yields each node before its subtrees.
func (t *Map[K, V]) PreOrder() iter.Seq[kv.Entry[K, V]] {
	return func(yield func(kv.Entry[K, V]) bool) {
		preorder(t.root, yield)
	}
}

// PostOrder yields each node after its subtrees.
func (t *Map[K, V]) PostOrder() iter.Seq[kv.Entry[K, V]] {
	return func(yield func(kv.Entry[K, V]) bool) {
		postorder(t.root, yield)
	}
}

// The walkers return false once yield asks to stop.

func inorder[K any, V any](n *node[K, V], yield func(kv.Entry[K, V]) bool) bool {
	if n == nil {
		return true
	}

	return inorder(n.left, yield) && yield(*n.entry) && inorder(n.right, yield)
}

func preorder[K any, V any](n *node[K, V], yield func(kv.Entry[K, V]) bool) bool {
	if n == nil {
		return true
	}

	return yield(*n.entry) && preorder(n.left, yield) && preorder(n.right, yield)
}

func postorder[K any, V any](n *node[K, V], yield func(kv.Entry[K, V]) bool) bool {
	if n == nil {
		return true
	}

	return postorder(n.left, yield) && postorder(n.right, yield) && yield(*n.entry)
}

func (t *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range t.InOrder() {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Values returns the values in ascending key order.
func (t *Map[K, V]) Values() []V {
	values := make([]V, 0, t.size)
	for e := range t.InOrder() {
		values = append(values, e.Value)
	}

	return values
}

func (t *Map[K, V]) Keys() []K {
	keys := make([]K, 0, t.size)
	for e := range t.InOrder() {
		keys = append(keys, e.Key)
	}

	return keys
}

func (t *Map[K, V]) String() string {
	var sb strings.Builder

	sb.WriteByte('[')
	first := true
	for e := range t.InOrder() {
		if !first {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.String())
		first = false
	}
	sb.WriteByte(']')

	return sb.String()
}
