package query

import "strings"

// Key identifies a cached resource as an ordered tuple, e.g. ["products", storeID].
type Key []string

// NewKey builds a Key from its parts.
func NewKey(parts ...string) Key {
	return Key(parts)
}

// String returns the map key form of k.
func (k Key) String() string {
	return strings.Join(k, "\x1f")
}

// HasPrefix reports whether every element of prefix matches the start of k.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i := range prefix {
		if k[i] != prefix[i] {
			return false
		}
	}

	return true
}
