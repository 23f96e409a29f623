package mapping

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// tomlDefinition mirrors the on-disk TOML shape for one mapping
// definition; LoadDefinitions converts it to a Definition.
type tomlDefinition struct {
	Entity        string              `toml:"entity"`
	GroupPath     []string            `toml:"group_path"`
	Discriminator *tomlDiscriminator  `toml:"discriminator"`
	Fields        []tomlField         `toml:"field"`
	Companions    []tomlDefinition    `toml:"companion"`
}

type tomlDiscriminator struct {
	ElementIndex int    `toml:"element_index"`
	Value        string `toml:"value"`
}

type tomlField struct {
	Path       string            `toml:"path"`
	SchemaPath string            `toml:"schema_path"`
	Key        string            `toml:"key"`
	Default    string            `toml:"default"`
	Codes      map[string]string `toml:"codes"`
}

type tomlFile struct {
	Definitions []tomlDefinition `toml:"definition"`
}

// LoadDefinitions parses a TOML document of declarative field mappings
// into Definitions. Symbolic paths are expected to already have been
// resolved to numeric TAG.element.component form by the caller (via the
// navigator, component M) before the document reaches here.
func LoadDefinitions(data []byte) ([]Definition, error) {
	var file tomlFile
	if _, err := toml.Decode(string(data), &file); err != nil {
		return nil, fmt.Errorf("mapping: decoding definitions: %w", err)
	}

	defs := make([]Definition, len(file.Definitions))
	for i, td := range file.Definitions {
		d, err := fromTOML(td)
		if err != nil {
			return nil, err
		}
		defs[i] = d
	}
	return defs, nil
}

func fromTOML(td tomlDefinition) (Definition, error) {
	if td.Entity == "" {
		return Definition{}, fmt.Errorf("mapping: definition missing entity")
	}
	d := Definition{
		Entity:    td.Entity,
		GroupPath: td.GroupPath,
	}
	if td.Discriminator != nil {
		d.Discriminator = &Discriminator{
			ElementIndex: td.Discriminator.ElementIndex,
			Value:        td.Discriminator.Value,
		}
	}
	for _, tf := range td.Fields {
		if tf.Path == "" || tf.Key == "" {
			return Definition{}, fmt.Errorf("mapping: field in %q missing path or key", td.Entity)
		}
		d.Fields = append(d.Fields, Field{
			Path:       tf.Path,
			SchemaPath: tf.SchemaPath,
			Key:        tf.Key,
			Default:    tf.Default,
			Codes:      tf.Codes,
		})
	}
	for _, tc := range td.Companions {
		cd, err := fromTOML(tc)
		if err != nil {
			return Definition{}, err
		}
		d.Companions = append(d.Companions, cd)
	}
	return d, nil
}
