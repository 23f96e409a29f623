// Package mapping implements the bidirectional mapping engine (component
// H): projecting an assembled tree to BO4E-shaped JSON (forward) and
// reconstructing a partial assembled tree from BO4E JSON (reverse),
// driven by declarative Definitions loaded from TOML.
package mapping

import (
	"fmt"
	"strconv"
	"strings"
)

// Field is one source-path-to-target-key entry in a Definition.
type Field struct {
	// Path addresses a component inside the selected group instance's
	// segments as "TAG.element.component", e.g. "LOC.1.0". Only this
	// numeric form is accepted: neither LoadDefinitions nor Forward/Reverse
	// resolve symbolic (qualifier-name) paths such as "loc.c517.d3225",
	// and a field whose path does not parse as numeric is skipped by
	// Forward and makes Reverse return an error.
	Path string
	// SchemaPath, if set, is the symbolic AHB-style path this field also
	// answers to (e.g. "SG4/SG5/LOC/C517/3225") — the same addressing the
	// validator's field rules use, kept so BuildBO4EIndex can cross-
	// reference a validation issue's schema path back to its BO4E key.
	SchemaPath string
	// Key is the target JSON key, dot-separated for nested objects
	// (e.g. "adresse.strasse").
	Key string
	// Default fills the target key when the source component is absent.
	Default string
	// Codes maps allowed code values to their human-readable meaning.
	// A non-nil map marks this field as a code field: Forward emits
	// {"code": v, "meaning": m} instead of a bare string.
	Codes map[string]string
}

// Discriminator restricts a Definition to group repetitions whose lead
// segment's element at ElementIndex equals Value.
type Discriminator struct {
	ElementIndex int
	Value        string
}

// Definition is one declarative mapping between an assembled-tree group
// and a BO4E entity.
type Definition struct {
	// Entity is the target key under which this definition's result is
	// merged (MapAll) or the JSON key read on reverse.
	Entity string
	// GroupPath is the chain of group IDs from the current scope down to
	// the group instance Fields are read from/written to. An empty path
	// means Fields apply to the scope's own top-level segments.
	GroupPath []string
	// Discriminator, if set, applies at the final GroupPath level.
	Discriminator *Discriminator
	Fields        []Field
	// Companions are nested definitions merged under this definition's
	// result as "<entity>_edifact" (forward) or read back from arrays/
	// objects keyed by their own Entity (reverse).
	Companions []Definition
}

func parsePath(path string) (tag string, elIdx, compIdx int, err error) {
	parts := strings.Split(path, ".")
	if len(parts) != 3 {
		return "", 0, 0, fmt.Errorf("mapping: malformed path %q, want TAG.element.component", path)
	}
	tag = parts[0]
	elIdx, err = strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, 0, fmt.Errorf("mapping: non-numeric element index in %q: %w", path, err)
	}
	compIdx, err = strconv.Atoi(parts[2])
	if err != nil {
		return "", 0, 0, fmt.Errorf("mapping: non-numeric component index in %q: %w", path, err)
	}
	return tag, elIdx, compIdx, nil
}
