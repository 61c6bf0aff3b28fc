package acttrie

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndPositionAccessorsPanicWithSentinel(t *testing.T) {
	trie := New[int]()
	pos := trie.Begin()
	assert.True(t, pos.AtEnd())

	assertPanicsWithSentinel(t, func() { pos.Key() })
	assertPanicsWithSentinel(t, func() { pos.Value() })
	assertPanicsWithSentinel(t, func() { pos.SetValue(1) })
}

func TestExhaustedIteratorAccessorsPanicWithSentinel(t *testing.T) {
	trie := New[int]()
	it := trie.Iterator()
	assert.True(t, it.AtEnd())
	assertPanicsWithSentinel(t, func() { it.Key() })
	assertPanicsWithSentinel(t, func() { it.Value() })

	pit := trie.PrefixIterator(FromString("x"))
	assert.True(t, pit.AtEnd())
	assertPanicsWithSentinel(t, func() { pit.Key() })
	assertPanicsWithSentinel(t, func() { pit.Value() })
}

func assertPanicsWithSentinel(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected panic value to be an error, got %T", r)
		}
		assert.True(t, errors.Is(err, ErrExhaustedIterator))
	}()
	fn()
}
