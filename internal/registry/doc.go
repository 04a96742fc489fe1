// Package registry maps the component kind names used in manifests (e.g.
// "library") onto the Go factories that build component instances. It is
// populated at startup and validated against the loaded model before any
// component is created, so unknown kinds and duplicate component names fail
// fast rather than mid-plan.
package registry
