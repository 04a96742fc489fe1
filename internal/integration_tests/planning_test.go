package integration_tests

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunaticare/nativevariants/internal/testutil"
)

// TestPlanning_LibraryEndToEnd runs a full manifest-to-report pass for a
// cross-machine library and checks the report's load-bearing lines.
func TestPlanning_LibraryEndToEnd(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	manifestHCL := `
		component "library" "store" {
			linkages = ["shared", "static"]

			target_machine {
				os           = "linux"
				architecture = "x86-64"
			}
			target_machine {
				os           = "windows"
				architecture = "x86-64"
			}
		}
	`
	files := map[string]string{"main.hcl": manifestHCL}

	// --- Act ---
	result := testutil.RunPlan(t, files, testutil.PlanOptions{HostOS: "linux", HostArch: "x86-64"})

	// --- Assert ---
	require.NoError(t, result.Err)
	assert.Contains(t, result.Output, "component store (library): 8 variants, 4 buildable")
	assert.Contains(t, result.Output, "debugSharedLinux")
	assert.Contains(t, result.Output, "shared-library libstore.so")
	assert.Contains(t, result.Output, "static-library libstore.a")
	assert.Contains(t, result.Output, "[development]")
	assert.Contains(t, result.Output, "known, not buildable on this host")
	assert.Contains(t, result.Output, "operating-system=windows")
}

// TestPlanning_MultipleComponents checks that every component block in the
// manifests is planned, in manifest order.
func TestPlanning_MultipleComponents(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"lib.hcl": `
			component "library" "engine" {}
		`,
		"tool.hcl": `
			component "application" "tool" {}
		`,
	}

	// --- Act ---
	result := testutil.RunPlan(t, files, testutil.PlanOptions{HostOS: "linux", HostArch: "x86-64"})

	// --- Assert ---
	require.NoError(t, result.Err)
	assert.Contains(t, result.Output, "component engine (library)")
	assert.Contains(t, result.Output, "component tool (application)")
	// Files load in sorted order, so the library comes first.
	assert.Less(t,
		strings.Index(result.Output, "component engine"),
		strings.Index(result.Output, "component tool"))
}

// TestPlanning_UnknownKind_FailsStartup checks that manifest validation
// rejects unknown component kinds before anything is planned.
func TestPlanning_UnknownKind_FailsStartup(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{"main.hcl": `component "plugin" "weird" {}`}

	// --- Act ---
	result := testutil.RunPlan(t, files, testutil.PlanOptions{})

	// --- Assert ---
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "application startup panicked")
	assert.Contains(t, result.Err.Error(), "unknown kind 'plugin'")
}

// TestPlanning_EmptyLinkages_FailsPlan checks that an explicitly empty
// linkage axis aborts planning with an error naming the dimension.
func TestPlanning_EmptyLinkages_FailsPlan(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{"main.hcl": `
		component "library" "store" {
			linkages = []
		}
	`}

	// --- Act ---
	result := testutil.RunPlan(t, files, testutil.PlanOptions{})

	// --- Assert ---
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), `failed to plan component "store"`)
	assert.Contains(t, result.Err.Error(), `dimension "linkage"`)
	assert.Contains(t, result.Err.Error(), "a value needs to be specified")
}

// TestPlanning_InvalidHCL_IsRejected checks that a syntax error fails
// startup with a parse error.
func TestPlanning_InvalidHCL_IsRejected(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{"main.hcl": `
		component "library" "store" {
			linkages = ["shared"
	`}

	// --- Act ---
	result := testutil.RunPlan(t, files, testutil.PlanOptions{})

	// --- Assert ---
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "application startup panicked")
	assert.Contains(t, result.Err.Error(), "failed to parse")
}
