// Package objimportcfg loads a YAML manifest describing a batch of OBJ
// files to import, in a load-then-unmarshal style.
package objimportcfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is a batch-import job description: a set of named OBJ files
// to run through objimport.Import, with per-entry overrides.
type Manifest struct {
	Jobs []Job `yaml:"jobs"`
}

// Job describes one OBJ file to import.
type Job struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`

	// IgnoreNormals skips surfacing vn-derived data to downstream
	// consumers even when present in the file.
	IgnoreNormals bool `yaml:"ignore_normals"`
}

// Load reads and parses a manifest from data.
func Load(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("objimportcfg: yaml %w", err)
	}
	for _, job := range m.Jobs {
		if job.Path == "" {
			return m, fmt.Errorf("objimportcfg: job %q: empty path", job.Name)
		}
	}
	return m, nil
}

// LoadFile reads the manifest at path and parses it.
func LoadFile(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("objimportcfg: %w", err)
	}
	return Load(data)
}
