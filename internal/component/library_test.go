package component

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunaticare/nativevariants/internal/attr"
	"github.com/lunaticare/nativevariants/internal/platform"
	"github.com/lunaticare/nativevariants/internal/variant"
)

var (
	linuxX64   = platform.Machine{OS: platform.Linux, Arch: platform.X8664}
	linuxArm   = platform.Machine{OS: platform.Linux, Arch: platform.Aarch64}
	windowsX64 = platform.Machine{OS: platform.Windows, Arch: platform.X8664}
)

func TestLibraryPlan_BothLinkages(t *testing.T) {
	lib := NewLibrary(Config{
		Name: "store",
		Host: platform.FixedHost(linuxX64),
	}, []Linkage{Shared, Static})

	set, err := lib.Plan(context.Background())
	require.NoError(t, err)
	require.Equal(t, 4, set.Len())

	names := make([]string, 0, set.Len())
	for _, v := range set.Variants() {
		names = append(names, v.Name())
	}
	// Single target machine, so no OS or architecture fragment anywhere.
	assert.Equal(t, []string{"debugShared", "debugStatic", "releaseShared", "releaseStatic"}, names)

	t.Run("artifacts follow platform conventions", func(t *testing.T) {
		shared := set.ByName("debugShared").Artifact().(*Artifact)
		assert.Equal(t, SharedLibrary, shared.Kind)
		assert.Equal(t, "libstore.so", shared.File)

		static := set.ByName("debugStatic").Artifact().(*Artifact)
		assert.Equal(t, StaticLibrary, static.Kind)
		assert.Equal(t, "libstore.a", static.File)
	})

	t.Run("debug shared library is the development binary", func(t *testing.T) {
		dev := lib.DevelopmentBinary()
		require.NotNil(t, dev)
		assert.Equal(t, "debugShared", dev.Name())
	})

	t.Run("usage contexts come in link/runtime pairs", func(t *testing.T) {
		usages := lib.UsageContexts()
		require.Len(t, usages, 8)
		assert.Equal(t, "debugSharedLink", usages[0].Name)
		assert.Equal(t, "debugSharedRuntime", usages[1].Name)
		assert.Equal(t, UsageNativeLink, usages[0].Attributes.String(attr.Usage))
		assert.Equal(t, UsageNativeRuntime, usages[1].Attributes.String(attr.Usage))
		// The usage view carries the variant's own attributes too.
		assert.Equal(t, "shared", usages[0].Attributes.String(attr.Linkage))
	})
}

func TestLibraryPlan_DefaultLinkage(t *testing.T) {
	lib := NewLibrary(Config{Name: "store", Host: platform.FixedHost(linuxX64)}, nil)

	set, err := lib.Plan(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, set.Len())

	// The sole shared linkage stays out of the names but keeps its attribute.
	debug := set.ByName("debug")
	require.NotNil(t, debug)
	assert.Equal(t, "shared", debug.Attributes().String(attr.Linkage))

	dev := lib.DevelopmentBinary()
	require.NotNil(t, dev)
	assert.Equal(t, "debug", dev.Name())
}

func TestLibraryPlan_EmptyLinkages(t *testing.T) {
	lib := NewLibrary(Config{Name: "store", Host: platform.FixedHost(linuxX64)}, []Linkage{})

	_, err := lib.Plan(context.Background())
	var cfgErr *variant.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "linkage", cfgErr.Dimension)
}

func TestLibraryPlan_CrossMachine(t *testing.T) {
	lib := NewLibrary(Config{
		Name:     "store",
		Machines: []platform.Machine{linuxX64, windowsX64},
		Host:     platform.FixedHost(linuxX64),
	}, []Linkage{Shared})

	set, err := lib.Plan(context.Background())
	require.NoError(t, err)
	require.Equal(t, 4, set.Len())

	t.Run("machines differing in OS contribute an OS fragment only", func(t *testing.T) {
		assert.NotNil(t, set.ByName("debugLinux"))
		assert.NotNil(t, set.ByName("debugWindows"))
		assert.NotNil(t, set.ByName("releaseLinux"))
		assert.NotNil(t, set.ByName("releaseWindows"))
	})

	t.Run("only host-OS variants are buildable", func(t *testing.T) {
		assert.True(t, set.ByName("debugLinux").Buildable())
		assert.False(t, set.ByName("debugWindows").Buildable())
		assert.Len(t, set.Buildable(), 2)
	})

	t.Run("non-buildable variants carry no artifact but keep attributes", func(t *testing.T) {
		win := set.ByName("debugWindows")
		assert.Nil(t, win.Artifact())
		assert.Equal(t, "windows", win.Attributes().String(attr.OperatingSystem))
		assert.Equal(t, "x86-64", win.Attributes().String(attr.Architecture))
	})

	t.Run("development binary is the buildable debug shared variant", func(t *testing.T) {
		dev := lib.DevelopmentBinary()
		require.NotNil(t, dev)
		assert.Equal(t, "debugLinux", dev.Name())
	})
}

func TestLibraryPlan_MachinesVaryingOnlyInArchitecture(t *testing.T) {
	lib := NewLibrary(Config{
		Name:     "store",
		Machines: []platform.Machine{linuxX64, linuxArm},
		Host:     platform.FixedHost(linuxX64),
	}, []Linkage{Shared})

	set, err := lib.Plan(context.Background())
	require.NoError(t, err)

	// The shared OS family stays out of the names; the architecture alone
	// disambiguates.
	assert.NotNil(t, set.ByName("debugX86-64"))
	assert.NotNil(t, set.ByName("debugAarch64"))
	assert.Nil(t, set.ByName("debugLinuxX86-64"))
}

func TestLibraryPlan_CustomBuildTypes(t *testing.T) {
	lib := NewLibrary(Config{
		Name:       "store",
		BuildTypes: []BuildType{Debug, Release, NewBuildType("profiling", true, true)},
		Host:       platform.FixedHost(linuxX64),
	}, []Linkage{Static})

	set, err := lib.Plan(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, set.Len())
	require.NotNil(t, set.ByName("profiling"))
	assert.True(t, set.ByName("profiling").Attributes().Bool(attr.Optimized))
}

func TestLibraryConfig_Defaults(t *testing.T) {
	lib := NewLibrary(Config{Name: "store", Host: platform.FixedHost(windowsX64)}, []Linkage{Shared, Static})

	set, err := lib.Plan(context.Background())
	require.NoError(t, err)

	// Default target machine is the host, so everything is buildable and
	// artifacts use Windows naming with the component name as base name.
	for _, v := range set.Variants() {
		assert.True(t, v.Buildable())
	}
	assert.Equal(t, "store.dll", set.ByName("debugShared").Artifact().(*Artifact).File)
	assert.Equal(t, "store.lib", set.ByName("debugStatic").Artifact().(*Artifact).File)
}
