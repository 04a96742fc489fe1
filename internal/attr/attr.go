// Package attr implements the typed attribute sets that identify build
// variants. An attribute is a key with a declared cty type and a cty value;
// downstream consumers match variants across components by comparing these
// sets, so insertion order and equality semantics are kept deterministic.
package attr

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Key names an attribute and declares the cty type its values must carry.
type Key struct {
	Name string
	Type cty.Type
}

// BoolKey returns a Key whose values must be cty booleans.
func BoolKey(name string) Key { return Key{Name: name, Type: cty.Bool} }

// StringKey returns a Key whose values must be cty strings.
func StringKey(name string) Key { return Key{Name: name, Type: cty.String} }

// Standard keys shared by all native components. Dimension definitions may
// add their own, but no two dimensions may populate the same key.
var (
	Debuggable      = BoolKey("debuggable")
	Optimized       = BoolKey("optimized")
	Linkage         = StringKey("linkage")
	OperatingSystem = StringKey("operating-system")
	Architecture    = StringKey("architecture")
	Usage           = StringKey("usage")
)

// Entry is a single key-value pair within a Set.
type Entry struct {
	Key   Key
	Value cty.Value
}

// Set is an ordered collection of attribute entries with unique key names.
// The zero value is not usable; call NewSet.
type Set struct {
	entries []Entry
	index   map[string]int
}

// NewSet returns an empty attribute set.
func NewSet() *Set {
	return &Set{index: make(map[string]int)}
}

// Put adds an entry to the set. It rejects values whose type does not match
// the key's declared type, and rejects a second entry for the same key name.
func (s *Set) Put(k Key, v cty.Value) error {
	if !v.Type().Equals(k.Type) {
		return fmt.Errorf("attribute %q expects %s, got %s", k.Name, k.Type.FriendlyName(), v.Type().FriendlyName())
	}
	if _, exists := s.index[k.Name]; exists {
		return fmt.Errorf("attribute %q already present", k.Name)
	}
	s.index[k.Name] = len(s.entries)
	s.entries = append(s.entries, Entry{Key: k, Value: v})
	return nil
}

// Get returns the value stored for the key, and whether it is present.
func (s *Set) Get(k Key) (cty.Value, bool) {
	i, ok := s.index[k.Name]
	if !ok {
		return cty.NilVal, false
	}
	return s.entries[i].Value, true
}

// Bool returns the boolean stored for the key, or false if the key is absent.
func (s *Set) Bool(k Key) bool {
	v, ok := s.Get(k)
	return ok && v.True()
}

// String returns the string stored for the key, or "" if the key is absent.
func (s *Set) String(k Key) string {
	v, ok := s.Get(k)
	if !ok {
		return ""
	}
	return v.AsString()
}

// Len returns the number of entries in the set.
func (s *Set) Len() int { return len(s.entries) }

// Entries returns a copy of the entries in insertion order.
func (s *Set) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Equal reports whether two sets hold the same key-value pairs, regardless
// of insertion order.
func (s *Set) Equal(other *Set) bool {
	if len(s.entries) != len(other.entries) {
		return false
	}
	for _, e := range s.entries {
		v, ok := other.Get(e.Key)
		if !ok || !v.RawEquals(e.Value) {
			return false
		}
	}
	return true
}

// Merge combines the given sets into a new one, preserving set order and
// entry order within each set. A key name appearing in more than one set is
// an error; the caller is expected to attribute it to the offending sources.
func Merge(sets ...*Set) (*Set, error) {
	merged := NewSet()
	for _, set := range sets {
		if set == nil {
			continue
		}
		for _, e := range set.entries {
			if _, exists := merged.index[e.Key.Name]; exists {
				return nil, fmt.Errorf("attribute %q declared more than once", e.Key.Name)
			}
			merged.index[e.Key.Name] = len(merged.entries)
			merged.entries = append(merged.entries, e)
		}
	}
	return merged, nil
}
