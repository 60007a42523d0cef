package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	t.Run("ValueAndGet", func(t *testing.T) {
		s := New().Add("Hello", "world")
		assert.Equal(t, "world", s.Value("Hello"))

		value, found := s.Get("Hello")
		require.True(t, found)
		assert.Equal(t, "world", value)

		_, found = s.Get("missing")
		assert.False(t, found)
	})

	t.Run("CaseInsensitiveLookup", func(t *testing.T) {
		s := New().Add("Content-Type", "text/html")
		assert.Equal(t, "text/html", s.Value("content-type"))
		assert.Equal(t, "text/html", s.Value("CONTENT-TYPE"))
		assert.True(t, s.Has("cOnTeNt-TyPe"))
	})

	t.Run("DuplicatesKeptInOrder", func(t *testing.T) {
		s := New().
			Add("Accept", "one,two").
			Add("Accept", "three")
		assert.Equal(t, []string{"one,two", "three"}, s.Values("accept"))
		// the first occurrence wins for single-value lookup
		assert.Equal(t, "one,two", s.Value("Accept"))
	})

	t.Run("KeysAreUnique", func(t *testing.T) {
		s := New().
			Add("a", "1").
			Add("A", "2").
			Add("b", "3")
		assert.Equal(t, []string{"a", "b"}, s.Keys())
	})

	t.Run("ValueOr", func(t *testing.T) {
		s := New()
		assert.Equal(t, "fallback", s.ValueOr("missing", "fallback"))
	})

	t.Run("Unwrap", func(t *testing.T) {
		s := New().Add("k", "v")
		require.Len(t, s.Unwrap(), 1)
		assert.Equal(t, Pair{Key: "k", Value: "v"}, s.Unwrap()[0])
	})

	t.Run("Clone", func(t *testing.T) {
		s := New().Add("k", "v")
		clone := s.Clone()
		clone.Add("k2", "v2")
		assert.Equal(t, 1, s.Len())
		assert.Equal(t, 2, clone.Len())
	})

	t.Run("Clear", func(t *testing.T) {
		s := New().Add("k", "v")
		s.Clear()
		assert.Zero(t, s.Len())
		assert.False(t, s.Has("k"))
	})

	t.Run("NewFromMap", func(t *testing.T) {
		s := NewFromMap(map[string][]string{
			"accept": {"one", "two"},
		})
		assert.Equal(t, []string{"one", "two"}, s.Values("accept"))
	})
}
