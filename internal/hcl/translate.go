package hcl

import (
	"github.com/lunaticare/nativevariants/internal/config"
	"github.com/lunaticare/nativevariants/internal/schema"
)

// translateComponent converts the HCL-specific component schema into the
// agnostic model. Nil slices are preserved so the component layer can tell
// "not specified" from "specified as empty".
func translateComponent(c *schema.Component) *config.Component {
	out := &config.Component{
		Kind:     c.Kind,
		Name:     c.Name,
		BaseName: c.BaseName,
		Linkages: c.Linkages,
	}
	for _, tm := range c.TargetMachines {
		out.TargetMachines = append(out.TargetMachines, &config.TargetMachine{
			OS:           tm.OS,
			Architecture: tm.Architecture,
		})
	}
	for _, bt := range c.BuildTypes {
		out.BuildTypes = append(out.BuildTypes, &config.BuildType{
			Name:       bt.Name,
			Debuggable: bt.Debuggable,
			Optimized:  bt.Optimized,
		})
	}
	return out
}
