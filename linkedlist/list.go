// Package linkedlist provides a generic doubly linked list with constant time
// operations at both ends and linear time positional operations.
package linkedlist

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

type node[E comparable] struct {
	value E
	next  *node[E]
	prev  *node[E]
}

// List is a doubly linked list. The zero value is an empty list ready to use.
// A List is not safe for concurrent use.
type List[E comparable] struct {
	head *node[E]
	tail *node[E]
	size int
}

func New[E comparable]() *List[E] {
	return &List[E]{}
}

func (l *List[E]) Len() int {
	return l.size
}

func (l *List[E]) IsEmpty() bool {
	return l.size == 0
}

// Clear drops every node at once; the nodes are not visited.
func (l *List[E]) Clear() {
	l.head = nil
	l.tail = nil
	l.size = 0
}

// Add appends value at the tail. It is the same as AddLast.
func (l *List[E]) Add(value E) {
	l.AddLast(value)
}

func (l *List[E]) AddFirst(value E) {
	n := &node[E]{value: value}

	if l.head == nil {
		l.head, l.tail = n, n
	} else {
		n.next = l.head
		l.head.prev = n
		l.head = n
	}

	l.size++
}

func (l *List[E]) AddLast(value E) {
	n := &node[E]{value: value}

	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		l.tail.next = n
		n.prev = l.tail
		l.tail = n
	}

	l.size++
}

// Insert places value before the element currently at index. Valid indices
// are 0 through Len(); inserting at Len() appends.
func (l *List[E]) Insert(index int, value E) error {
	if index < 0 || index > l.size {
		return l.outOfRange(index)
	}

	switch index {
	case 0:
		l.AddFirst(value)
	case l.size:
		l.AddLast(value)
	default:
		current := l.nodeAt(index)
		n := &node[E]{value: value, prev: current.prev, next: current}
		current.prev.next = n
		current.prev = n
		l.size++
	}

	return nil
}

func (l *List[E]) Get(index int) (E, error) {
	if err := l.checkElementIndex(index); err != nil {
		return *new(E), err
	}

	return l.nodeAt(index).value, nil
}

// Set replaces the element at index and returns the previous element.
func (l *List[E]) Set(index int, value E) (E, error) {
	if err := l.checkElementIndex(index); err != nil {
		return *new(E), err
	}

	n := l.nodeAt(index)
	old := n.value
	n.value = value

	return old, nil
}

func (l *List[E]) First() (E, error) {
	if l.head == nil {
		return *new(E), errors.Wrap(ErrEmpty, "first")
	}

	return l.head.value, nil
}

func (l *List[E]) Last() (E, error) {
	if l.tail == nil {
		return *new(E), errors.Wrap(ErrEmpty, "last")
	}

	return l.tail.value, nil
}

func (l *List[E]) RemoveFirst() (E, error) {
	if l.head == nil {
		return *new(E), errors.Wrap(ErrEmpty, "remove first")
	}

	n := l.head
	l.unlink(n)

	return n.value, nil
}

func (l *List[E]) RemoveLast() (E, error) {
	if l.tail == nil {
		return *new(E), errors.Wrap(ErrEmpty, "remove last")
	}

	n := l.tail
	l.unlink(n)

	return n.value, nil
}

// RemoveAt removes the element at index and returns it.
func (l *List[E]) RemoveAt(index int) (E, error) {
	if err := l.checkElementIndex(index); err != nil {
		return *new(E), err
	}

	n := l.nodeAt(index)
	l.unlink(n)

	return n.value, nil
}

// Remove deletes the first element equal to value and reports whether one was
// found.
func (l *List[E]) Remove(value E) bool {
	for n := l.head; n != nil; n = n.next {
		if n.value == value {
			l.unlink(n)
			return true
		}
	}

	return false
}

func (l *List[E]) Contains(value E) bool {
	for n := l.head; n != nil; n = n.next {
		if n.value == value {
			return true
		}
	}

	return false
}

// All returns a sequence over the elements from head to tail. Each call
// starts a fresh pass. Mutating the list while ranging over it is allowed but
// the elements seen are unspecified.
func (l *List[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for n := l.head; n != nil; {
			next := n.next
			if !yield(n.value) {
				return
			}
			n = next
		}
	}
}

// Backward returns a sequence over the elements from tail to head.
func (l *List[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		for n := l.tail; n != nil; {
			prev := n.prev
			if !yield(n.value) {
				return
			}
			n = prev
		}
	}
}

func (l *List[E]) Values() []E {
	values := make([]E, 0, l.size)
	for v := range l.All() {
		values = append(values, v)
	}

	return values
}

func (l *List[E]) String() string {
	var sb strings.Builder

	sb.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		fmt.Fprintf(&sb, "%v", n.value)
		if n.next != nil {
			sb.WriteByte(' ')
		}
	}
	sb.WriteByte(']')

	return sb.String()
}

// nodeAt walks from the head. index must already be validated.
func (l *List[E]) nodeAt(index int) *node[E] {
	n := l.head
	for i := 0; i < index; i++ {
		n = n.next
	}

	return n
}

func (l *List[E]) unlink(n *node[E]) {
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}

	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}

	n.next = nil
	n.prev = nil
	l.size--
}

func (l *List[E]) checkElementIndex(index int) error {
	if index < 0 || index >= l.size {
		return l.outOfRange(index)
	}

	return nil
}

func (l *List[E]) outOfRange(index int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", index, l.size)
}
