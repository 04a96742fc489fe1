package variant

import "github.com/lunaticare/nativevariants/internal/attr"

// Value is a single candidate on a dimension axis, e.g. the "debug" build
// type or the "shared" linkage.
type Value interface {
	Name() string
}

// StringValue adapts a plain string into a dimension Value.
type StringValue string

// Name returns the string itself.
func (s StringValue) Name() string { return string(s) }

// AttributeFunc derives the identifying attributes of one dimension value.
// A nil return contributes no attributes.
type AttributeFunc func(v Value) *attr.Set

// FragmentFunc derives the name fragment a dimension value contributes to a
// variant name. It is only consulted when the dimension has more than one
// candidate value; `all` is the dimension's full candidate list so the
// function can suppress parts that are unambiguous across it.
type FragmentFunc func(v Value, all []Value) string

// BuildableFunc decides whether variants holding this dimension value can be
// produced on the execution host.
type BuildableFunc func(v Value) bool

// Dimension is one orthogonal axis of build configuration variation: an
// ordered list of candidate values plus the rules that turn a chosen value
// into attributes, a name fragment, and a buildability verdict.
type Dimension struct {
	name       string
	values     []Value
	attributes AttributeFunc
	fragment   FragmentFunc
	buildable  BuildableFunc
}

// DimensionOption configures a Dimension under construction.
type DimensionOption func(*Dimension)

// WithValues sets the dimension's candidate values, in the order variants
// will be enumerated.
func WithValues(values ...Value) DimensionOption {
	return func(d *Dimension) { d.values = append(d.values, values...) }
}

// WithAttributes sets the attribute-mapping function.
func WithAttributes(fn AttributeFunc) DimensionOption {
	return func(d *Dimension) { d.attributes = fn }
}

// WithNameFragment overrides the default name fragment, which is the value's
// own name.
func WithNameFragment(fn FragmentFunc) DimensionOption {
	return func(d *Dimension) { d.fragment = fn }
}

// WithBuildablePredicate marks the dimension as governing buildability,
// typically the target-machine axis compared against the host probe.
func WithBuildablePredicate(fn BuildableFunc) DimensionOption {
	return func(d *Dimension) { d.buildable = fn }
}

// NewDimension creates a dimension with the given name and options.
func NewDimension(name string, opts ...DimensionOption) *Dimension {
	d := &Dimension{name: name}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Name returns the dimension's name.
func (d *Dimension) Name() string { return d.name }

// Values returns a copy of the candidate values in enumeration order.
func (d *Dimension) Values() []Value {
	out := make([]Value, len(d.values))
	copy(out, d.values)
	return out
}

// attributesOf resolves the attribute set for one value, never nil.
func (d *Dimension) attributesOf(v Value) *attr.Set {
	if d.attributes == nil {
		return attr.NewSet()
	}
	set := d.attributes(v)
	if set == nil {
		return attr.NewSet()
	}
	return set
}

// fragmentOf resolves the name fragment for one value. Single-valued
// dimensions never contribute a fragment.
func (d *Dimension) fragmentOf(v Value) string {
	if len(d.values) < 2 {
		return ""
	}
	if d.fragment == nil {
		return v.Name()
	}
	return d.fragment(v, d.Values())
}
