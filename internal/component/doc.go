// Package component assembles the variant enumerator for concrete native
// component kinds. A library varies over build type, linkage and target
// machine; an application varies over build type and target machine. Each
// kind wires the standard attribute keys, the host buildability predicate,
// the development-binary selector and an artifact-naming factory.
package component
