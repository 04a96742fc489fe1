package variant

import (
	"github.com/lunaticare/nativevariants/internal/attr"
)

// Variant is one fully-resolved combination of dimension values. Variants
// are immutable once the enumerator has published them to listeners.
type Variant struct {
	name       string
	values     map[string]Value
	attributes *attr.Set
	buildable  bool
	artifact   any
}

// Name returns the variant's unique synthesized name, e.g.
// "debugSharedLinuxX86-64".
func (v *Variant) Name() string { return v.name }

// Value returns the value this variant holds on the named dimension, or nil
// if the dimension is unknown.
func (v *Variant) Value(dimension string) Value {
	return v.values[dimension]
}

// Attributes returns the variant's identifying attribute set: the disjoint
// union of every dimension's contribution.
func (v *Variant) Attributes() *attr.Set { return v.attributes }

// Buildable reports whether the variant can be produced on the execution
// host. Non-buildable variants are still listed for dependency resolution.
func (v *Variant) Buildable() bool { return v.buildable }

// Artifact returns whatever the factory produced for a buildable variant,
// or nil for non-buildable ones.
func (v *Variant) Artifact() any { return v.artifact }

// Set is the complete, ordered collection of variants for one component.
// It is immutable after Finalize returns it.
type Set struct {
	variants []*Variant
	byName   map[string]*Variant
}

// Len returns the number of variants, buildable or not.
func (s *Set) Len() int { return len(s.variants) }

// Variants returns a copy of all variants in enumeration order.
func (s *Set) Variants() []*Variant {
	out := make([]*Variant, len(s.variants))
	copy(out, s.variants)
	return out
}

// Buildable returns the buildable subset, in enumeration order.
func (s *Set) Buildable() []*Variant {
	var out []*Variant
	for _, v := range s.variants {
		if v.buildable {
			out = append(out, v)
		}
	}
	return out
}

// ByName returns the variant with the given name, or nil.
func (s *Set) ByName(name string) *Variant {
	return s.byName[name]
}
