package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/lunaticare/nativevariants/internal/config"
	"github.com/lunaticare/nativevariants/internal/ctxlog"
	"github.com/lunaticare/nativevariants/internal/platform"
	"github.com/lunaticare/nativevariants/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	model    *config.Model
	host     platform.HostProbe
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and registry. A
// failure to load or validate the manifests is a fatal startup error and
// panics; the entrypoint recovers it into a clean exit.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, reg *registry.Registry) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	host, err := resolveHost(appConfig)
	if err != nil {
		panic(fmt.Errorf("failed to resolve host platform: %w", err))
	}
	logger.Debug("Host platform resolved.", "host", host().String())

	model, err := loader.Load(ctx, appConfig.ManifestPath)
	if err != nil {
		panic(fmt.Errorf("failed to load manifests: %w", err))
	}
	logger.Debug("Manifests loaded and translated into unified model.")

	if reg == nil {
		reg = registry.Default()
	}
	if err := reg.ValidateModel(ctx, model); err != nil {
		panic(err)
	}
	logger.Debug("Manifest validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		model:    model,
		host:     host,
	}
}

// Model returns the loaded manifest model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}

// resolveHost turns the optional host overrides into a HostProbe.
func resolveHost(appConfig *Config) (platform.HostProbe, error) {
	if appConfig.HostOS == "" && appConfig.HostArch == "" {
		return platform.Host, nil
	}
	machine := platform.Host()
	if appConfig.HostOS != "" {
		os, err := platform.ParseOSFamily(appConfig.HostOS)
		if err != nil {
			return nil, err
		}
		machine.OS = os
	}
	if appConfig.HostArch != "" {
		arch, err := platform.ParseArchitecture(appConfig.HostArch)
		if err != nil {
			return nil, err
		}
		machine.Arch = arch
	}
	return platform.FixedHost(machine), nil
}
