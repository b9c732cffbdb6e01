// Package fuzzy implements the approximate string table that resolves
// program words against lexicon entries.
//
// A Map is parameterized by the set of characters that matter for matching.
// Every key is trimmed to that set before use, so with a character set of
// "acdefghijk.-" the words "hello" and "hel" collide on the key "he". A
// trimmed key also matches any stored key that differs from it in exactly
// one character of the set, provided the match is unambiguous: when two
// base keys share a one-substitution neighbor, that neighbor is poisoned
// and lookups of it report absence.
//
// All neighborhood expansion happens at insert time. A lookup never
// materializes new keys, which keeps it a single map access.
package fuzzy

import (
	"fmt"
	"strings"
)

// Map is an approximate string table. The zero value is not usable; create
// one with New.
type Map struct {
	chars   string
	strict  bool
	base    map[string]struct{}
	entries map[string]entry
}

// entry is a stored key. Ambiguous entries shadow a key that is reachable
// from more than one base key; they exist so that later inserts cannot
// silently claim the key, but they report absence on lookup.
type entry struct {
	value     string
	ambiguous bool
}

// KeyConflictError reports an insert whose trimmed key is already a base key
// of a strict Map.
type KeyConflictError struct {
	Key string
}

func (e *KeyConflictError) Error() string {
	return fmt.Sprintf("fuzzy: key conflict for %q", e.Key)
}

// Option configures a Map at creation time.
type Option func(*Map)

// Loose disables strict conflict checking. Inserting a key that is already a
// base key replaces its value instead of failing.
func Loose() Option {
	return func(m *Map) {
		m.strict = false
	}
}

// New creates an empty Map over the given character set. The Map is strict
// unless the Loose option is supplied.
func New(chars string, opts ...Option) *Map {
	m := &Map{
		chars:   chars,
		strict:  true,
		base:    make(map[string]struct{}),
		entries: make(map[string]entry),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Trim removes every character not in the Map's character set, preserving
// the order of the rest. Trim is idempotent.
func (m *Map) Trim(word string) string {
	var sb strings.Builder
	for _, r := range word {
		if strings.ContainsRune(m.chars, r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Insert stores the trimmed key with the given value and expands its
// one-substitution neighborhood. A neighbor that is already stored becomes
// ambiguous, including one stored by an earlier insert of the same key; an
// unstored neighbor inherits the value. Base keys
// are never overwritten by neighbor expansion.
//
// On a strict Map, inserting a key whose trimmed form is already a base key
// fails with a KeyConflictError.
func (m *Map) Insert(key, value string) error {
	key = m.Trim(key)
	if _, ok := m.base[key]; ok && m.strict {
		return &KeyConflictError{Key: key}
	}
	m.base[key] = struct{}{}
	m.entries[key] = entry{value: value}
	for _, neighbor := range m.neighbors(key) {
		if _, isBase := m.base[neighbor]; isBase {
			continue
		}
		if _, taken := m.entries[neighbor]; taken {
			m.entries[neighbor] = entry{ambiguous: true}
		} else {
			m.entries[neighbor] = entry{value: value}
		}
	}
	return nil
}

// Lookup resolves a word to a stored value. Absent keys and ambiguous keys
// are indistinguishable: both report ok == false.
func (m *Map) Lookup(word string) (string, bool) {
	e, ok := m.entries[m.Trim(word)]
	if !ok || e.ambiguous {
		return "", false
	}
	return e.value, true
}

// Contains reports whether the trimmed word resolves to a value.
func (m *Map) Contains(word string) bool {
	_, ok := m.Lookup(word)
	return ok
}

// Clone returns an independent copy of the Map.
func (m *Map) Clone() *Map {
	c := &Map{
		chars:   m.chars,
		strict:  m.strict,
		base:    make(map[string]struct{}, len(m.base)),
		entries: make(map[string]entry, len(m.entries)),
	}
	for k := range m.base {
		c.base[k] = struct{}{}
	}
	for k, e := range m.entries {
		c.entries[k] = e
	}
	return c
}

// neighbors returns every string obtained by substituting one character of
// the trimmed key with a different character of the set. Positions where no
// substitution changes the string are skipped, so the key itself is never a
// neighbor of itself.
func (m *Map) neighbors(key string) []string {
	runes := []rune(key)
	out := make([]string, 0, len(runes)*len(m.chars))
	for i, old := range runes {
		for _, sub := range m.chars {
			if sub == old {
				continue
			}
			prev := runes[i]
			runes[i] = sub
			out = append(out, string(runes))
			runes[i] = prev
		}
	}
	return out
}
