package mapping

// BuildBO4EIndex collects a symbolic schema path (as used by the
// validator's field rules, e.g. "SG4/SG5/LOC/C517/3225") to BO4E dot-path
// index out of every field (in every definition and companion) that
// carries a SchemaPath. An issue's schema path resolves through this
// index to the BO4E key the validator reports as bo4e_path.
func BuildBO4EIndex(defs []Definition) map[string]string {
	idx := map[string]string{}
	for _, d := range defs {
		collectBO4EIndex(d, idx)
	}
	return idx
}

func collectBO4EIndex(d Definition, idx map[string]string) {
	for _, f := range d.Fields {
		if f.SchemaPath != "" {
			idx[f.SchemaPath] = f.Key
		}
	}
	for _, c := range d.Companions {
		collectBO4EIndex(c, idx)
	}
}
