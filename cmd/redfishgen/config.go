package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// buildConfig mirrors the command line flags in a YAML file, so a service
// profile can be checked in next to its schema bundle instead of living
// in a build script.
type buildConfig struct {
	// Root is the service root singleton name.
	Root string `yaml:"root"`
	// IncludeRootPatterns adds entity types to the root set by pattern.
	IncludeRootPatterns []string `yaml:"includeRootPatterns"`
	// EntityTypePatterns widens which navigation targets compile in full.
	EntityTypePatterns []string `yaml:"entityTypePatterns"`
	// NeverPrunePatterns protects base types from the optimizer.
	NeverPrunePatterns []string `yaml:"neverPrunePatterns"`
	// Package is the generated Go package name.
	Package string `yaml:"package"`
	// Schemas lists CSDL JSON files, appended to positional arguments.
	Schemas []string `yaml:"schemas"`
}

func loadBuildConfig(path string) (*buildConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg buildConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// multiFlag collects a repeatable string flag.
type multiFlag []string

func (m *multiFlag) String() string {
	if m == nil {
		return ""
	}
	s := ""
	for i, v := range *m {
		if i > 0 {
			s += ","
		}
		s += v
	}
	return s
}

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}
