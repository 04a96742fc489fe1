package component

import (
	"github.com/lunaticare/nativevariants/internal/config"
	"github.com/lunaticare/nativevariants/internal/platform"
	"github.com/lunaticare/nativevariants/internal/variant"
)

// ParseLinkage maps a manifest linkage name onto a Linkage.
func ParseLinkage(name string) (Linkage, error) {
	switch name {
	case "shared":
		return Shared, nil
	case "static":
		return Static, nil
	}
	return "", &variant.ConfigurationError{Dimension: "linkage", Reason: "unknown linkage " + name + " (expected shared or static)"}
}

// NewLibraryFromConfig builds a library component from its manifest block.
func NewLibraryFromConfig(c *config.Component, host platform.HostProbe) (Component, error) {
	cfg, err := configFromModel(c, host)
	if err != nil {
		return nil, err
	}

	var linkages []Linkage
	if c.Linkages != nil {
		linkages = make([]Linkage, 0, len(c.Linkages))
		for _, name := range c.Linkages {
			linkage, err := ParseLinkage(name)
			if err != nil {
				return nil, err
			}
			linkages = append(linkages, linkage)
		}
	}
	return NewLibrary(cfg, linkages), nil
}

// NewApplicationFromConfig builds an application component from its manifest
// block.
func NewApplicationFromConfig(c *config.Component, host platform.HostProbe) (Component, error) {
	cfg, err := configFromModel(c, host)
	if err != nil {
		return nil, err
	}
	return NewApplication(cfg), nil
}

// configFromModel translates the shared manifest fields. A target machine
// with no architecture targets the host's, mirroring the convention that a
// bare OS family means "this OS, my architecture".
func configFromModel(c *config.Component, host platform.HostProbe) (Config, error) {
	if host == nil {
		host = platform.Host
	}
	cfg := Config{Name: c.Name, BaseName: c.BaseName, Host: host}

	if c.TargetMachines != nil {
		cfg.Machines = make([]platform.Machine, 0, len(c.TargetMachines))
		for _, tm := range c.TargetMachines {
			os, err := platform.ParseOSFamily(tm.OS)
			if err != nil {
				return Config{}, &variant.ConfigurationError{Dimension: "targetMachine", Reason: err.Error()}
			}
			arch := host().Arch
			if tm.Architecture != "" {
				arch, err = platform.ParseArchitecture(tm.Architecture)
				if err != nil {
					return Config{}, &variant.ConfigurationError{Dimension: "targetMachine", Reason: err.Error()}
				}
			}
			cfg.Machines = append(cfg.Machines, platform.Machine{OS: os, Arch: arch})
		}
	}

	if c.BuildTypes != nil {
		cfg.BuildTypes = make([]BuildType, 0, len(c.BuildTypes))
		for _, bt := range c.BuildTypes {
			cfg.BuildTypes = append(cfg.BuildTypes, NewBuildType(bt.Name, bt.Debuggable, bt.Optimized))
		}
	}
	return cfg, nil
}
