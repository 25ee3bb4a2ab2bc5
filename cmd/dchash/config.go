package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/dcnet-server/dcnet/internal/dc"
)

type overridesFile struct {
	VirtualInheritance    bool `toml:"virtual_inheritance"`
	SortInheritanceByFile bool `toml:"sort_inheritance_by_file"`
}

// loadOverrides applies compatibility-flag overrides on top of base, only
// touching flags the file actually defines.
func loadOverrides(path string, base dc.FileOptions) (dc.FileOptions, error) {
	var raw overridesFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return dc.FileOptions{}, fmt.Errorf("load overrides: %w", err)
	}
	if meta.IsDefined("virtual_inheritance") {
		base.VirtualInheritance = raw.VirtualInheritance
	}
	if meta.IsDefined("sort_inheritance_by_file") {
		base.SortInheritanceByFile = raw.SortInheritanceByFile
	}
	return base, nil
}
