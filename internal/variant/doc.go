// Package variant implements the build-variant enumeration core. It takes a
// set of orthogonal configuration dimensions, computes their Cartesian
// product, assigns every combination a unique name and attribute set,
// decides which combinations are buildable on the execution host, and
// applies the development-binary selection rule.
//
// The package is deliberately free of any file format or CLI concern; the
// `component` package assembles dimensions for concrete component kinds and
// the `hcl` package feeds it from manifests.
package variant
