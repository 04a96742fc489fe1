// Package schema holds the HCL decoding structs for manifest files. The
// structs mirror the on-disk block layout; the hcl package translates them
// into the format-agnostic config model.
package schema

import "github.com/hashicorp/hcl/v2"

// TargetMachine represents a `target_machine` block within a component.
type TargetMachine struct {
	OS           string `hcl:"os"`
	Architecture string `hcl:"architecture,optional"`
}

// BuildType represents a `build_type` block overriding the default
// debug/release axis.
type BuildType struct {
	Name       string `hcl:"name,label"`
	Debuggable bool   `hcl:"debuggable,optional"`
	Optimized  bool   `hcl:"optimized,optional"`
}

// Component represents a `component` block from a manifest file.
type Component struct {
	Kind           string           `hcl:"kind,label"`
	Name           string           `hcl:"component_name,label"`
	BaseName       string           `hcl:"base_name,optional"`
	Linkages       []string         `hcl:"linkages,optional"`
	TargetMachines []*TargetMachine `hcl:"target_machine,block"`
	BuildTypes     []*BuildType     `hcl:"build_type,block"`
}

// Manifest represents the top-level structure of a manifest file.
type Manifest struct {
	Components []*Component `hcl:"component,block"`
	Body       hcl.Body     `hcl:",remain"`
}
