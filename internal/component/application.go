package component

import (
	"context"

	"github.com/lunaticare/nativevariants/internal/attr"
	"github.com/lunaticare/nativevariants/internal/ctxlog"
	"github.com/lunaticare/nativevariants/internal/platform"
	"github.com/lunaticare/nativevariants/internal/variant"
)

// Application is a native executable component. Its variants span build type
// and target machine; there is no linkage axis.
type Application struct {
	cfg      Config
	selector *variant.DevelopmentBinarySelector
	variants *variant.Set
}

// NewApplication creates an application component.
func NewApplication(cfg Config) *Application {
	cfg.normalize()
	return &Application{cfg: cfg}
}

// Name returns the component name.
func (a *Application) Name() string { return a.cfg.Name }

// Kind returns "application".
func (a *Application) Kind() string { return "application" }

// Plan materializes the application's variant set, producing an executable
// artifact per buildable variant.
func (a *Application) Plan(ctx context.Context) (*variant.Set, error) {
	logger := ctxlog.FromContext(ctx)

	e := variant.NewEnumerator()
	dimensions := []*variant.Dimension{
		buildTypeDimension(a.cfg.BuildTypes),
		machineDimension(a.cfg.Machines, a.cfg.Host),
	}
	for _, d := range dimensions {
		if err := e.RegisterDimension(d); err != nil {
			return nil, err
		}
	}

	a.selector = variant.NewDevelopmentBinarySelector()
	e.OnVariantKnown(a.selector.Consider)

	set, err := e.Finalize(ctx, a.createBinary)
	if err != nil {
		return nil, err
	}
	a.variants = set
	logger.Debug("Application planned.", "component", a.cfg.Name, "variants", set.Len(), "buildable", len(set.Buildable()))
	return set, nil
}

// DevelopmentBinary returns the selected development variant, or nil.
func (a *Application) DevelopmentBinary() *variant.Variant {
	if a.selector == nil {
		return nil
	}
	return a.selector.Selected()
}

// createBinary is the application's artifact factory.
func (a *Application) createBinary(v *variant.Variant) (any, error) {
	os := platform.OSFamily(v.Attributes().String(attr.OperatingSystem))
	return &Artifact{Kind: Executable, File: executableFile(a.cfg.BaseName, os)}, nil
}
