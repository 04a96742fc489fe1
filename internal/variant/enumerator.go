package variant

import (
	"context"
	"strings"
	"unicode"

	"github.com/lunaticare/nativevariants/internal/attr"
	"github.com/lunaticare/nativevariants/internal/ctxlog"
)

// Factory turns one buildable variant into a concrete build artifact. It is
// invoked exactly once per buildable combination, in enumeration order; an
// error aborts the whole Finalize call and is surfaced unchanged.
type Factory func(v *Variant) (any, error)

// Listener observes variants as they become known, in creation order. The
// development-binary selector is one such listener.
type Listener func(v *Variant)

// Enumerator computes the full Cartesian product of its registered
// dimensions. Dimensions are registered incrementally at configuration time;
// Finalize materializes the product once the configuration is frozen.
type Enumerator struct {
	dimensions []*Dimension
	listeners  []Listener
	finalized  bool
}

// NewEnumerator returns an empty enumerator.
func NewEnumerator() *Enumerator {
	return &Enumerator{}
}

// RegisterDimension adds an axis of variation. Dimensions are enumerated in
// registration order, which makes the resulting variant order deterministic.
// Registration is rejected once Finalize has succeeded.
func (e *Enumerator) RegisterDimension(d *Dimension) error {
	if e.finalized {
		return configErrorf(d.name, "cannot register a dimension after finalization")
	}
	for _, existing := range e.dimensions {
		if existing.name == d.name {
			return configErrorf(d.name, "dimension registered twice")
		}
	}
	e.dimensions = append(e.dimensions, d)
	return nil
}

// OnVariantKnown subscribes a listener. Listeners run synchronously on the
// Finalize goroutine, once per variant, in creation order.
func (e *Enumerator) OnVariantKnown(l Listener) {
	e.listeners = append(e.listeners, l)
}

// Finalize computes the Cartesian product of all registered dimensions and
// returns the resulting variant set. Every dimension must hold at least one
// value and no two dimensions may declare the same attribute key; both are
// ConfigurationErrors raised before any factory invocation. A nil factory
// produces variants without artifacts.
//
// Finalize may be called again on the same frozen configuration and yields
// an equivalent set; it only mutates the enumerator by blocking further
// dimension registration.
func (e *Enumerator) Finalize(ctx context.Context, factory Factory) (*Set, error) {
	logger := ctxlog.FromContext(ctx)

	if len(e.dimensions) == 0 {
		return nil, configErrorf("", "at least one dimension needs to be specified")
	}
	for _, d := range e.dimensions {
		if len(d.values) == 0 {
			return nil, configErrorf(d.name, "a value needs to be specified")
		}
	}

	// Resolve every value's attributes up front so key collisions between
	// dimensions surface before the factory runs.
	resolved := make(map[*Dimension][]*attr.Set, len(e.dimensions))
	keyOwner := make(map[string]string)
	for _, d := range e.dimensions {
		sets := make([]*attr.Set, len(d.values))
		for i, v := range d.values {
			set := d.attributesOf(v)
			for _, entry := range set.Entries() {
				owner, claimed := keyOwner[entry.Key.Name]
				if claimed && owner != d.name {
					return nil, configErrorf(d.name, "attribute %q is already declared by dimension %q", entry.Key.Name, owner)
				}
				keyOwner[entry.Key.Name] = d.name
			}
			sets[i] = set
		}
		resolved[d] = sets
	}

	set := &Set{byName: make(map[string]*Variant)}

	// Odometer over the value indices, last dimension varying fastest.
	indices := make([]int, len(e.dimensions))
	for {
		v, err := e.buildVariant(indices, resolved)
		if err != nil {
			return nil, err
		}
		if set.byName[v.name] != nil {
			return nil, configErrorf("", "two variants produce the name %q; name fragments must disambiguate every combination", v.name)
		}
		if v.buildable && factory != nil {
			artifact, err := factory(v)
			if err != nil {
				// Factory failures belong to the caller's domain; no
				// partial set is returned and nothing is rolled back.
				return nil, err
			}
			v.artifact = artifact
		}
		set.variants = append(set.variants, v)
		set.byName[v.name] = v
		for _, l := range e.listeners {
			l(v)
		}

		if !advance(indices, e.dimensions) {
			break
		}
	}

	e.finalized = true
	logger.Debug("Variant enumeration complete.", "dimensions", len(e.dimensions), "variants", set.Len())
	return set, nil
}

// buildVariant assembles the variant for one tuple of value indices.
func (e *Enumerator) buildVariant(indices []int, resolved map[*Dimension][]*attr.Set) (*Variant, error) {
	chosen := make(map[string]Value, len(e.dimensions))
	sets := make([]*attr.Set, 0, len(e.dimensions))
	buildable := true
	var fragments []string

	for i, d := range e.dimensions {
		v := d.values[indices[i]]
		chosen[d.name] = v
		sets = append(sets, resolved[d][indices[i]])
		if d.buildable != nil && !d.buildable(v) {
			buildable = false
		}
		if fragment := d.fragmentOf(v); fragment != "" {
			fragments = append(fragments, fragment)
		}
	}

	merged, err := attr.Merge(sets...)
	if err != nil {
		// Covered by the up-front collision check; kept as a guard.
		return nil, configErrorf("", "%s", err.Error())
	}

	return &Variant{
		name:       variantName(fragments),
		values:     chosen,
		attributes: merged,
		buildable:  buildable,
	}, nil
}

// variantName joins fragments camel-case style: the first stays as written,
// later ones get their first rune capitalized. A product where every
// dimension is single-valued has no fragments and falls back to "main".
func variantName(fragments []string) string {
	if len(fragments) == 0 {
		return "main"
	}
	var b strings.Builder
	b.WriteString(fragments[0])
	for _, f := range fragments[1:] {
		b.WriteString(capitalize(f))
	}
	return b.String()
}

// capitalize upper-cases the first rune of s.
func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// advance moves the odometer to the next tuple; false means it wrapped.
func advance(indices []int, dimensions []*Dimension) bool {
	for i := len(indices) - 1; i >= 0; i-- {
		indices[i]++
		if indices[i] < len(dimensions[i].values) {
			return true
		}
		indices[i] = 0
	}
	return false
}
