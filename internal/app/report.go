package app

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/lunaticare/nativevariants/internal/attr"
	"github.com/lunaticare/nativevariants/internal/component"
	"github.com/lunaticare/nativevariants/internal/variant"
)

// writePlan renders one component's variant set as a human-readable report.
func (a *App) writePlan(comp component.Component, set *variant.Set) error {
	dev := comp.DevelopmentBinary()

	if _, err := fmt.Fprintf(a.outW, "component %s (%s): %d variants, %d buildable\n", comp.Name(), comp.Kind(), set.Len(), len(set.Buildable())); err != nil {
		return err
	}
	for _, v := range set.Variants() {
		marker := "-"
		note := "known, not buildable on this host"
		if v.Buildable() {
			marker = "*"
			note = artifactNote(v)
		}
		if dev != nil && v.Name() == dev.Name() {
			note += "  [development]"
		}
		if _, err := fmt.Fprintf(a.outW, "  %s %-32s %s\n", marker, v.Name(), note); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(a.outW, "      %s\n", renderAttributes(v.Attributes())); err != nil {
			return err
		}
	}
	return nil
}

// artifactNote renders the artifact produced for a buildable variant.
func artifactNote(v *variant.Variant) string {
	artifact, ok := v.Artifact().(*component.Artifact)
	if !ok {
		return "buildable"
	}
	return fmt.Sprintf("%s %s", artifact.Kind, artifact.File)
}

// renderAttributes renders an attribute set as "key=value" pairs in
// insertion order.
func renderAttributes(set *attr.Set) string {
	parts := make([]string, 0, set.Len())
	for _, e := range set.Entries() {
		parts = append(parts, fmt.Sprintf("%s=%s", e.Key.Name, renderValue(e.Value)))
	}
	return strings.Join(parts, " ")
}

// renderValue renders the cty value kinds the attribute model uses.
func renderValue(v cty.Value) string {
	switch v.Type() {
	case cty.String:
		return v.AsString()
	case cty.Bool:
		if v.True() {
			return "true"
		}
		return "false"
	}
	return v.GoString()
}
