package component

import (
	"context"
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/lunaticare/nativevariants/internal/attr"
	"github.com/lunaticare/nativevariants/internal/ctxlog"
	"github.com/lunaticare/nativevariants/internal/platform"
	"github.com/lunaticare/nativevariants/internal/variant"
)

// Config holds the settings shared by every component kind. Zero fields are
// filled with conventions: the base name defaults to the component name, the
// build types to debug and release, the target machines to the host.
type Config struct {
	Name       string
	BaseName   string
	BuildTypes []BuildType
	Machines   []platform.Machine
	Host       platform.HostProbe
}

// normalize applies the conventions to unset fields.
func (c *Config) normalize() {
	if c.Host == nil {
		c.Host = platform.Host
	}
	if c.BaseName == "" {
		c.BaseName = c.Name
	}
	if c.BuildTypes == nil {
		c.BuildTypes = DefaultBuildTypes
	}
	if c.Machines == nil {
		c.Machines = []platform.Machine{c.Host()}
	}
}

// UsageContext is one published consumption view of a library variant: the
// variant's attributes plus a usage discriminator, so downstream resolution
// can tell link-time inputs from runtime ones.
type UsageContext struct {
	Name       string
	Attributes *attr.Set
}

// The usage discriminator values.
const (
	UsageNativeLink    = "native-link"
	UsageNativeRuntime = "native-runtime"
)

// Library is a native library component. Its variants span build type,
// linkage and target machine.
type Library struct {
	cfg      Config
	linkages []Linkage
	selector *variant.DevelopmentBinarySelector
	variants *variant.Set
	usages   []UsageContext
}

// NewLibrary creates a library component. A nil linkage slice picks the
// shared-only convention; an explicitly empty one is kept and will fail
// Plan, mirroring "a linkage needs to be specified".
func NewLibrary(cfg Config, linkages []Linkage) *Library {
	cfg.normalize()
	if linkages == nil {
		linkages = []Linkage{Shared}
	}
	return &Library{cfg: cfg, linkages: linkages}
}

// Name returns the component name.
func (l *Library) Name() string { return l.cfg.Name }

// Kind returns "library".
func (l *Library) Kind() string { return "library" }

// Linkages returns the linkage axis in effect.
func (l *Library) Linkages() []Linkage {
	out := make([]Linkage, len(l.linkages))
	copy(out, l.linkages)
	return out
}

// Plan materializes the library's variant set. Each buildable variant gets
// an artifact named after the platform's library conventions, and every
// variant, buildable or not, gets a link and a runtime usage context for
// downstream attribute matching.
func (l *Library) Plan(ctx context.Context) (*variant.Set, error) {
	logger := ctxlog.FromContext(ctx)

	e := variant.NewEnumerator()
	dimensions := []*variant.Dimension{
		buildTypeDimension(l.cfg.BuildTypes),
		linkageDimension(l.linkages),
		machineDimension(l.cfg.Machines, l.cfg.Host),
	}
	for _, d := range dimensions {
		if err := e.RegisterDimension(d); err != nil {
			return nil, err
		}
	}

	l.selector = variant.NewDevelopmentBinarySelector()
	l.usages = nil
	e.OnVariantKnown(l.selector.Consider)
	e.OnVariantKnown(l.addUsageContexts)

	set, err := e.Finalize(ctx, l.createBinary)
	if err != nil {
		return nil, err
	}
	l.variants = set
	logger.Debug("Library planned.", "component", l.cfg.Name, "variants", set.Len(), "buildable", len(set.Buildable()))
	return set, nil
}

// DevelopmentBinary returns the selected development variant, or nil.
func (l *Library) DevelopmentBinary() *variant.Variant {
	if l.selector == nil {
		return nil
	}
	return l.selector.Selected()
}

// UsageContexts returns the published usage contexts in variant order, two
// per variant.
func (l *Library) UsageContexts() []UsageContext {
	out := make([]UsageContext, len(l.usages))
	copy(out, l.usages)
	return out
}

// createBinary is the library's artifact factory.
func (l *Library) createBinary(v *variant.Variant) (any, error) {
	os := platform.OSFamily(v.Attributes().String(attr.OperatingSystem))
	switch Linkage(v.Attributes().String(attr.Linkage)) {
	case Shared:
		return &Artifact{Kind: SharedLibrary, File: sharedLibraryFile(l.cfg.BaseName, os)}, nil
	case Static:
		return &Artifact{Kind: StaticLibrary, File: staticLibraryFile(l.cfg.BaseName, os)}, nil
	}
	return nil, fmt.Errorf("library %q: invalid linkage in variant %q", l.cfg.Name, v.Name())
}

// addUsageContexts records the link and runtime views of a known variant.
func (l *Library) addUsageContexts(v *variant.Variant) {
	for _, usage := range []string{UsageNativeLink, UsageNativeRuntime} {
		usageSet := attr.NewSet()
		mustPut(usageSet, attr.Usage, cty.StringVal(usage))
		merged, err := attr.Merge(v.Attributes(), usageSet)
		if err != nil {
			// Variant attributes never carry a usage key.
			panic(err)
		}
		name := v.Name() + "Link"
		if usage == UsageNativeRuntime {
			name = v.Name() + "Runtime"
		}
		l.usages = append(l.usages, UsageContext{Name: name, Attributes: merged})
	}
}
