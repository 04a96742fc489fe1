// Package platform models the operating-system families, machine
// architectures and target machines a native component can be built for,
// plus the probe that identifies the current execution host.
package platform

import (
	"fmt"
	"runtime"
)

// OSFamily is a canonical operating-system family name, e.g. "linux".
type OSFamily string

// Canonical operating-system families.
const (
	Linux   OSFamily = "linux"
	MacOS   OSFamily = "macos"
	Windows OSFamily = "windows"
)

// String returns the canonical name of the family.
func (f OSFamily) String() string { return string(f) }

// Architecture is a canonical machine-architecture name, e.g. "x86-64".
type Architecture string

// Canonical machine architectures.
const (
	X86     Architecture = "x86"
	X8664   Architecture = "x86-64"
	Aarch64 Architecture = "aarch64"
)

// String returns the canonical name of the architecture.
func (a Architecture) String() string { return string(a) }

// Machine is a target machine: an operating-system family paired with a
// machine architecture.
type Machine struct {
	OS   OSFamily
	Arch Architecture
}

// String returns a stable "os:arch" rendering, used in logs and error messages.
func (m Machine) String() string {
	return fmt.Sprintf("%s:%s", m.OS, m.Arch)
}

// ParseOSFamily maps a user-supplied name onto a canonical OSFamily. It
// accepts the Go runtime spelling "darwin" as an alias for macos.
func ParseOSFamily(name string) (OSFamily, error) {
	switch name {
	case "linux":
		return Linux, nil
	case "macos", "darwin":
		return MacOS, nil
	case "windows":
		return Windows, nil
	}
	return "", fmt.Errorf("unknown operating system family %q (expected linux, macos or windows)", name)
}

// ParseArchitecture maps a user-supplied name onto a canonical Architecture.
// It accepts the Go runtime spellings "amd64", "386" and "arm64" as aliases.
func ParseArchitecture(name string) (Architecture, error) {
	switch name {
	case "x86", "386", "i386":
		return X86, nil
	case "x86-64", "x86_64", "amd64":
		return X8664, nil
	case "aarch64", "arm64":
		return Aarch64, nil
	}
	return "", fmt.Errorf("unknown machine architecture %q (expected x86, x86-64 or aarch64)", name)
}

// HostProbe reports the machine the current process is executing on. It is a
// function type so tests and cross-host planning can substitute a fixed host.
type HostProbe func() Machine

// Host is the default HostProbe, derived from the Go runtime.
func Host() Machine {
	os, err := ParseOSFamily(runtime.GOOS)
	if err != nil {
		// Unsupported build hosts simply produce no buildable variants.
		os = OSFamily(runtime.GOOS)
	}
	arch, err := ParseArchitecture(runtime.GOARCH)
	if err != nil {
		arch = Architecture(runtime.GOARCH)
	}
	return Machine{OS: os, Arch: arch}
}

// FixedHost returns a HostProbe that always reports the given machine.
func FixedHost(m Machine) HostProbe {
	return func() Machine { return m }
}
