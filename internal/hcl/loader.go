// Package hcl provides the concrete HCL implementation of the manifest
// loading interface defined in the `config` package. It is responsible for
// file discovery, parsing and HCL-to-model translation.
package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lunaticare/nativevariants/internal/config"
	"github.com/lunaticare/nativevariants/internal/ctxlog"
	"github.com/lunaticare/nativevariants/internal/fsutil"
	"github.com/lunaticare/nativevariants/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load orchestrates the manifest loading process. Each path may be a single
// .hcl file or a directory searched recursively; component blocks from all
// files are merged into one model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findManifestFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered manifest files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest file %s: %w", file, diags)
		}

		var manifest schema.Manifest
		diags = gohcl.DecodeBody(hclFile.Body, nil, &manifest)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode manifest file %s: %w", file, diags)
		}

		for _, c := range manifest.Components {
			model.Components = append(model.Components, translateComponent(c))
		}
	}

	logger.Debug("Manifests translated into unified model.", "components", len(model.Components))
	return model, nil
}

// findManifestFiles expands the given paths into the list of .hcl files.
func (l *Loader) findManifestFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("manifest path %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("searching %s for manifests: %w", path, err)
		}
		files = append(files, found...)
	}
	return files, nil
}
