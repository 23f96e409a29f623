package fixture

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CodeRename substitutes one code value for another at a fixed
// (element, component) position within segments carrying the given tag.
type CodeRename struct {
	Tag            string `yaml:"tag"`
	ElementIndex   int    `yaml:"element_index"`
	ComponentIndex int    `yaml:"component_index"`
	From           string `yaml:"from"`
	To             string `yaml:"to"`
}

// SchemaDiff describes the structural changes between two MIG schema
// versions, authored by hand as YAML and loaded with LoadDiff.
type SchemaDiff struct {
	OldVersion         string       `yaml:"old_version"`
	NewVersion         string       `yaml:"new_version"`
	RemovedSegments    []string     `yaml:"removed_segments"`
	CodeRenames        []CodeRename `yaml:"code_renames"`
	RestructuredGroups []string     `yaml:"restructured_groups"`
	AddedGroups        []string     `yaml:"added_groups"`
}

// LoadDiff decodes a schema-diff YAML document.
func LoadDiff(data []byte) (*SchemaDiff, error) {
	var d SchemaDiff
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("fixture: invalid schema diff: %w", err)
	}
	return &d, nil
}
