package config

// Model is the unified representation of every loaded manifest.
type Model struct {
	Components []*Component
}

// Component is the format-agnostic representation of a `component` block.
// Slices distinguish nil (not specified, conventions apply) from empty
// (specified as empty, a configuration error surfaced at planning time).
type Component struct {
	Kind     string
	Name     string
	BaseName string

	// Linkages applies to libraries only.
	Linkages []string

	TargetMachines []*TargetMachine
	BuildTypes     []*BuildType
}

// TargetMachine is one `target_machine` block.
type TargetMachine struct {
	OS           string
	Architecture string
}

// BuildType is one `build_type` block overriding the debug/release default.
type BuildType struct {
	Name       string
	Debuggable bool
	Optimized  bool
}
