package component

import (
	"context"
	"unicode"

	"github.com/zclconf/go-cty/cty"

	"github.com/lunaticare/nativevariants/internal/attr"
	"github.com/lunaticare/nativevariants/internal/platform"
	"github.com/lunaticare/nativevariants/internal/variant"
)

// Component is a logical native component whose build variants can be
// planned. Plan is the finalize boundary: configuration is frozen, the
// Cartesian product is materialized and the development binary is chosen.
type Component interface {
	Name() string
	Kind() string
	Plan(ctx context.Context) (*variant.Set, error)
	// DevelopmentBinary returns the variant a plain build command targets,
	// or nil before Plan has run or when no buildable variant exists.
	DevelopmentBinary() *variant.Variant
}

// BuildType is an optimization profile. Release builds stay debuggable;
// stripping debug information is a packaging concern, not a variant axis.
type BuildType struct {
	name       string
	debuggable bool
	optimized  bool
}

// The standard build types.
var (
	Debug   = BuildType{name: "debug", debuggable: true, optimized: false}
	Release = BuildType{name: "release", debuggable: true, optimized: true}
)

// DefaultBuildTypes is the axis used when a manifest declares none.
var DefaultBuildTypes = []BuildType{Debug, Release}

// NewBuildType creates a custom build type, e.g. a profiling profile.
func NewBuildType(name string, debuggable, optimized bool) BuildType {
	return BuildType{name: name, debuggable: debuggable, optimized: optimized}
}

// Name implements variant.Value.
func (b BuildType) Name() string { return b.name }

// Debuggable reports whether binaries of this type carry debug information.
func (b BuildType) Debuggable() bool { return b.debuggable }

// Optimized reports whether binaries of this type are optimized.
func (b BuildType) Optimized() bool { return b.optimized }

// Linkage is the way a library is linked into its consumers.
type Linkage string

// The supported linkages.
const (
	Shared Linkage = "shared"
	Static Linkage = "static"
)

// Name implements variant.Value.
func (l Linkage) Name() string { return string(l) }

// machineValue adapts a platform.Machine into a variant.Value.
type machineValue struct {
	platform.Machine
}

func (m machineValue) Name() string { return m.Machine.String() }

// buildTypeDimension is the debug/release axis shared by every kind.
func buildTypeDimension(buildTypes []BuildType) *variant.Dimension {
	values := make([]variant.Value, len(buildTypes))
	for i, bt := range buildTypes {
		values[i] = bt
	}
	return variant.NewDimension("buildType",
		variant.WithValues(values...),
		variant.WithAttributes(func(v variant.Value) *attr.Set {
			bt := v.(BuildType)
			s := attr.NewSet()
			mustPut(s, attr.Debuggable, cty.BoolVal(bt.debuggable))
			mustPut(s, attr.Optimized, cty.BoolVal(bt.optimized))
			return s
		}))
}

// linkageDimension is the shared/static axis of libraries.
func linkageDimension(linkages []Linkage) *variant.Dimension {
	values := make([]variant.Value, len(linkages))
	for i, l := range linkages {
		values[i] = l
	}
	return variant.NewDimension("linkage",
		variant.WithValues(values...),
		variant.WithAttributes(func(v variant.Value) *attr.Set {
			s := attr.NewSet()
			mustPut(s, attr.Linkage, cty.StringVal(v.Name()))
			return s
		}))
}

// machineDimension is the target-machine axis. Its name fragment only names
// the parts that actually vary: with two machines differing only in
// architecture, the OS family stays out of every variant name. Buildability
// follows the host probe's OS family.
func machineDimension(machines []platform.Machine, host platform.HostProbe) *variant.Dimension {
	values := make([]variant.Value, len(machines))
	osFamilies := make(map[platform.OSFamily]struct{})
	architectures := make(map[platform.Architecture]struct{})
	for i, m := range machines {
		values[i] = machineValue{m}
		osFamilies[m.OS] = struct{}{}
		architectures[m.Arch] = struct{}{}
	}

	return variant.NewDimension("targetMachine",
		variant.WithValues(values...),
		variant.WithAttributes(func(v variant.Value) *attr.Set {
			m := v.(machineValue)
			s := attr.NewSet()
			mustPut(s, attr.OperatingSystem, cty.StringVal(m.OS.String()))
			mustPut(s, attr.Architecture, cty.StringVal(m.Arch.String()))
			return s
		}),
		variant.WithNameFragment(func(v variant.Value, all []variant.Value) string {
			m := v.(machineValue)
			fragment := ""
			if len(osFamilies) > 1 {
				fragment = m.OS.String()
			}
			if len(architectures) > 1 {
				if fragment == "" {
					fragment = m.Arch.String()
				} else {
					fragment += capitalize(m.Arch.String())
				}
			}
			return fragment
		}),
		variant.WithBuildablePredicate(func(v variant.Value) bool {
			return v.(machineValue).OS == host().OS
		}))
}

// mustPut inserts an attribute built from trusted in-process values; a
// failure is a programmer error.
func mustPut(s *attr.Set, k attr.Key, v cty.Value) {
	if err := s.Put(k, v); err != nil {
		panic(err)
	}
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
