package component

import "github.com/lunaticare/nativevariants/internal/platform"

// ArtifactKind classifies the primary output of a buildable variant.
type ArtifactKind string

// The produced artifact kinds.
const (
	SharedLibrary ArtifactKind = "shared-library"
	StaticLibrary ArtifactKind = "static-library"
	Executable    ArtifactKind = "executable"
)

// Artifact describes the primary output file of one buildable variant.
// Producing the file is the toolchain's job, not this library's; the
// artifact only fixes the platform-conventional name.
type Artifact struct {
	Kind ArtifactKind
	File string
}

// sharedLibraryFile returns the conventional shared-library file name for
// the target OS family.
func sharedLibraryFile(baseName string, os platform.OSFamily) string {
	switch os {
	case platform.Windows:
		return baseName + ".dll"
	case platform.MacOS:
		return "lib" + baseName + ".dylib"
	default:
		return "lib" + baseName + ".so"
	}
}

// staticLibraryFile returns the conventional static-library file name for
// the target OS family.
func staticLibraryFile(baseName string, os platform.OSFamily) string {
	if os == platform.Windows {
		return baseName + ".lib"
	}
	return "lib" + baseName + ".a"
}

// executableFile returns the conventional executable file name for the
// target OS family.
func executableFile(baseName string, os platform.OSFamily) string {
	if os == platform.Windows {
		return baseName + ".exe"
	}
	return baseName
}
