package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/lunaticare/nativevariants/internal/config"
	"github.com/lunaticare/nativevariants/internal/ctxlog"
)

// ValidateModel performs a strict check of the loaded model against the
// registry before any component is created: every kind must be registered,
// every component needs a name, and names must be unique across the model.
func (r *Registry) ValidateModel(ctx context.Context, model *config.Model) error {
	logger := ctxlog.FromContext(ctx)

	var errs []string
	seen := make(map[string]bool)
	for _, c := range model.Components {
		if c.Name == "" {
			errs = append(errs, fmt.Sprintf("component of kind '%s' has no name", c.Kind))
			continue
		}
		if _, ok := r.factories[c.Kind]; !ok {
			errs = append(errs, fmt.Sprintf("component '%s': unknown kind '%s' (known kinds: %v)", c.Name, c.Kind, r.Kinds()))
		}
		if seen[c.Name] {
			errs = append(errs, fmt.Sprintf("component name '%s' is declared more than once", c.Name))
		}
		seen[c.Name] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("manifest validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	logger.Debug("Manifest validation passed.", "components", len(model.Components))
	return nil
}
