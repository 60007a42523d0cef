package kv

import (
	"github.com/indigo-web/utils/strcomp"
)

type Pair struct {
	Key, Value string
}

// Storage is an insertion-order-preserving multimap of string pairs. Keys are
// stored exactly as inserted, duplicates included, while lookups compare
// case-insensitively. Linear search over a pair slice beats a map for the
// small entry counts headers and query parameters usually have.
type Storage struct {
	pairs      []Pair
	uniqueBuff []string
	valuesBuff []string
}

func New() *Storage {
	return new(Storage)
}

// NewPrealloc returns a Storage with pre-allocated room for n pairs.
func NewPrealloc(n int) *Storage {
	return &Storage{
		pairs: make([]Pair, 0, n),
	}
}

// NewFromMap returns a Storage filled with the entries of the map. As maps are
// unordered, so will be the resulting pairs.
func NewFromMap(m map[string][]string) *Storage {
	s := NewPrealloc(len(m))

	for key, values := range m {
		for _, value := range values {
			s.Add(key, value)
		}
	}

	return s
}

// Add appends a new pair. Existing entries under the same key are kept.
func (s *Storage) Add(key, value string) *Storage {
	s.pairs = append(s.pairs, Pair{
		Key:   key,
		Value: value,
	})
	return s
}

// Value returns the first value corresponding to the key, or an empty string.
func (s *Storage) Value(key string) string {
	return s.ValueOr(key, "")
}

// ValueOr returns the first value corresponding to the key, or the fallback.
func (s *Storage) ValueOr(key, or string) string {
	value, found := s.Get(key)
	if !found {
		return or
	}

	return value
}

// Get returns the first value corresponding to the key and whether it was
// found at all.
func (s *Storage) Get(key string) (string, bool) {
	for _, pair := range s.pairs {
		if strcomp.EqualFold(key, pair.Key) {
			return pair.Value, true
		}
	}

	return "", false
}

// Values returns all the values stored under the key, in insertion order, or
// nil if there are none.
//
// WARNING: the returned slice is re-used between calls. Copy it for safe keeping.
func (s *Storage) Values(key string) []string {
	s.valuesBuff = s.valuesBuff[:0]

	for _, pair := range s.pairs {
		if strcomp.EqualFold(pair.Key, key) {
			s.valuesBuff = append(s.valuesBuff, pair.Value)
		}
	}

	if len(s.valuesBuff) == 0 {
		return nil
	}

	return s.valuesBuff
}

// Keys returns all unique keys, first-seen order.
//
// WARNING: the returned slice is re-used between calls. Copy it for safe keeping.
func (s *Storage) Keys() []string {
	s.uniqueBuff = s.uniqueBuff[:0]

	for _, pair := range s.pairs {
		if containsFold(s.uniqueBuff, pair.Key) {
			continue
		}

		s.uniqueBuff = append(s.uniqueBuff, pair.Key)
	}

	return s.uniqueBuff
}

// Has reports whether at least one entry is stored under the key.
func (s *Storage) Has(key string) bool {
	for _, pair := range s.pairs {
		if strcomp.EqualFold(key, pair.Key) {
			return true
		}
	}

	return false
}

// Len returns the number of stored pairs, duplicates included.
func (s *Storage) Len() int {
	return len(s.pairs)
}

// Unwrap reveals the underlying pair slice. Avoid if possible.
func (s *Storage) Unwrap() []Pair {
	return s.pairs
}

// Clone makes a deep copy that stays valid after the original is cleared.
func (s *Storage) Clone() *Storage {
	return &Storage{
		pairs: append([]Pair(nil), s.pairs...),
	}
}

// Clear removes all the entries, keeping the allocated space.
func (s *Storage) Clear() {
	s.pairs = s.pairs[:0]
}

func containsFold(collection []string, key string) bool {
	for _, element := range collection {
		if strcomp.EqualFold(element, key) {
			return true
		}
	}

	return false
}
