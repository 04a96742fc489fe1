package app

import (
	"context"
	"fmt"

	"github.com/lunaticare/nativevariants/internal/ctxlog"
)

// Run plans every component in the loaded model and writes the variant
// report to the application's output writer. Components are processed in
// manifest order; the first failure aborts the run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if len(a.model.Components) == 0 {
		a.logger.Warn("No components found in manifests, nothing to plan.")
		return nil
	}

	for _, cfg := range a.model.Components {
		comp, err := a.registry.Create(cfg, a.host)
		if err != nil {
			return fmt.Errorf("failed to create component %q: %w", cfg.Name, err)
		}

		set, err := comp.Plan(ctx)
		if err != nil {
			return fmt.Errorf("failed to plan component %q: %w", cfg.Name, err)
		}
		a.logger.Info("Component planned.", "component", comp.Name(), "kind", comp.Kind(), "variants", set.Len(), "buildable", len(set.Buildable()))

		if err := a.writePlan(comp, set); err != nil {
			return fmt.Errorf("failed to write plan for component %q: %w", cfg.Name, err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
