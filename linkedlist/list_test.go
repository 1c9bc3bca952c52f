package linkedlist

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listOf(values ...int) *List[int] {
	l := New[int]()
	for _, v := range values {
		l.Add(v)
	}
	return l
}

// checkLinks walks the list both ways and verifies size, head/tail and
// back-link consistency.
func checkLinks[E comparable](t *testing.T, l *List[E]) {
	t.Helper()

	if l.size == 0 {
		require.Nil(t, l.head)
		require.Nil(t, l.tail)
		return
	}

	require.Nil(t, l.head.prev)
	require.Nil(t, l.tail.next)

	count := 0
	var last *node[E]
	for n := l.head; n != nil; n = n.next {
		if n.next != nil {
			require.Same(t, n, n.next.prev)
		}
		last = n
		count++
	}
	require.Equal(t, l.size, count)
	require.Same(t, l.tail, last)
}

func TestEmptyList(t *testing.T) {
	var l List[string]

	assert.Equal(t, 0, l.Len())
	assert.True(t, l.IsEmpty())
	assert.False(t, l.Contains("x"))
	assert.Equal(t, "[]", l.String())

	count := 0
	for range l.All() {
		count++
	}
	assert.Equal(t, 0, count)
}

func TestEmptyListErrors(t *testing.T) {
	l := New[int]()

	_, err := l.RemoveFirst()
	require.ErrorIs(t, err, ErrEmpty)
	require.Equal(t, 0, l.Len())

	_, err = l.First()
	require.ErrorIs(t, err, ErrEmpty)
	require.Equal(t, 0, l.Len())

	_, err = l.Last()
	require.ErrorIs(t, err, ErrEmpty)

	_, err = l.RemoveLast()
	require.ErrorIs(t, err, ErrEmpty)
	require.Equal(t, 0, l.Len())
	checkLinks(t, l)
}

func TestAddFirstAddLast(t *testing.T) {
	l := New[int]()
	l.AddLast(2)
	l.AddFirst(1)
	l.AddLast(3)
	l.Add(4)

	checkLinks(t, l)
	require.Equal(t, []int{1, 2, 3, 4}, l.Values())

	first, err := l.First()
	require.NoError(t, err)
	require.Equal(t, 1, first)

	last, err := l.Last()
	require.NoError(t, err)
	require.Equal(t, 4, last)
}

func TestFIFO(t *testing.T) {
	l := New[int]()
	var pushed []int

	for i := 0; i < 500; i++ {
		if rand.Intn(3) == 0 && !l.IsEmpty() {
			v, err := l.RemoveFirst()
			require.NoError(t, err)
			require.Equal(t, pushed[0], v)
			pushed = pushed[1:]
			continue
		}
		l.AddLast(i)
		pushed = append(pushed, i)
	}

	checkLinks(t, l)
	for _, want := range pushed {
		v, err := l.RemoveFirst()
		require.NoError(t, err)
		require.Equal(t, want, v)
	}
	require.True(t, l.IsEmpty())
	checkLinks(t, l)
}

func TestRemoveLastToEmpty(t *testing.T) {
	l := listOf(1, 2, 3)

	for _, want := range []int{3, 2, 1} {
		v, err := l.RemoveLast()
		require.NoError(t, err)
		require.Equal(t, want, v)
		checkLinks(t, l)
	}
	require.True(t, l.IsEmpty())
}

func TestIndexBounds(t *testing.T) {
	l := listOf(10, 20, 30)

	_, err := l.Get(3)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = l.Get(-1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = l.Set(3, 0)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = l.RemoveAt(3)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	require.ErrorIs(t, l.Insert(4, 40), ErrIndexOutOfRange)
	require.ErrorIs(t, l.Insert(-1, 40), ErrIndexOutOfRange)
	require.Equal(t, 3, l.Len())

	require.NoError(t, l.Insert(3, 40))
	require.Equal(t, []int{10, 20, 30, 40}, l.Values())
	checkLinks(t, l)
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []int
	}{
		{"head", 0, []int{99, 1, 2, 3}},
		{"middle", 1, []int{1, 99, 2, 3}},
		{"before tail", 2, []int{1, 2, 99, 3}},
		{"append", 3, []int{1, 2, 3, 99}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := listOf(1, 2, 3)
			require.NoError(t, l.Insert(tt.index, 99))
			if diff := cmp.Diff(tt.want, l.Values()); diff != "" {
				t.Fatalf("unexpected contents (-want +got):\n%s", diff)
			}
			checkLinks(t, l)
		})
	}
}

func TestInsertIntoEmpty(t *testing.T) {
	l := New[string]()
	require.NoError(t, l.Insert(0, "a"))
	require.Equal(t, []string{"a"}, l.Values())
	checkLinks(t, l)
}

func TestSetGet(t *testing.T) {
	l := listOf(1, 2, 3, 4, 5)

	for i := 0; i < l.Len(); i++ {
		old, err := l.Set(i, i*100)
		require.NoError(t, err)
		require.Equal(t, i+1, old)

		got, err := l.Get(i)
		require.NoError(t, err)
		require.Equal(t, i*100, got)
		require.Equal(t, 5, l.Len())
	}
}

func TestRemoveAt(t *testing.T) {
	l := listOf(1, 2, 3, 4, 5)

	v, err := l.RemoveAt(2)
	require.NoError(t, err)
	require.Equal(t, 3, v)
	checkLinks(t, l)

	v, err = l.RemoveAt(0)
	require.NoError(t, err)
	require.Equal(t, 1, v)
	checkLinks(t, l)

	v, err = l.RemoveAt(l.Len() - 1)
	require.NoError(t, err)
	require.Equal(t, 5, v)
	checkLinks(t, l)

	require.Equal(t, []int{2, 4}, l.Values())
}

func TestRemoveValue(t *testing.T) {
	l := listOf(1, 2, 3, 2, 4)

	require.True(t, l.Remove(2))
	require.Equal(t, []int{1, 3, 2, 4}, l.Values())
	checkLinks(t, l)

	// removing the tail must move the tail back
	require.True(t, l.Remove(4))
	require.Equal(t, []int{1, 3, 2}, l.Values())
	last, err := l.Last()
	require.NoError(t, err)
	require.Equal(t, 2, last)
	checkLinks(t, l)

	require.True(t, l.Remove(1))
	require.False(t, l.Remove(42))
	require.Equal(t, []int{3, 2}, l.Values())
	checkLinks(t, l)
}

func TestContains(t *testing.T) {
	l := listOf(5, 6, 7)

	require.True(t, l.Contains(5))
	require.True(t, l.Contains(7))
	require.False(t, l.Contains(8))
}

func TestClear(t *testing.T) {
	l := listOf(1, 2, 3)
	l.Clear()

	require.True(t, l.IsEmpty())
	checkLinks(t, l)

	l.Add(9)
	require.Equal(t, []int{9}, l.Values())
}

func TestIteratorEarlyStop(t *testing.T) {
	l := listOf(1, 2, 3, 4, 5, 6)

	var seen []int
	for v := range l.All() {
		seen = append(seen, v)
		if v == 3 {
			break
		}
	}
	require.Equal(t, []int{1, 2, 3}, seen)

	// a fresh sequence starts from the head again
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, l.Values())
}

func TestBackward(t *testing.T) {
	l := listOf(1, 2, 3)

	var seen []int
	for v := range l.Backward() {
		seen = append(seen, v)
	}
	require.Equal(t, []int{3, 2, 1}, seen)
}

func TestMutationDuringIteration(t *testing.T) {
	l := listOf(1, 2, 3, 4, 5)

	require.NotPanics(t, func() {
		for v := range l.All() {
			if v%2 == 0 {
				l.Remove(v)
			}
			if v == 3 {
				l.Clear()
			}
		}
	})
	checkLinks(t, l)
}

func TestString(t *testing.T) {
	require.Equal(t, "[1 2 3]", listOf(1, 2, 3).String())
	require.Equal(t, "[7]", listOf(7).String())
}

func TestErrorContext(t *testing.T) {
	_, err := listOf(1).Get(5)
	require.True(t, errors.Is(err, ErrIndexOutOfRange))
	require.Contains(t, err.Error(), "index 5, size 1")
}
