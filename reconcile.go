package matl

import "slices"

// MissingParameters returns the shader parameters that entry does not
// define, in shader order.
func MissingParameters(entry *Entry, shader *Shader) []ParamID {
	var out []ParamID
	for _, id := range shader.MaterialParameters {
		if !entry.Has(id) {
			out = append(out, id)
		}
	}

	return out
}

// UnusedParameters returns the parameters of entry that the shader does not
// read. Groups are scanned blend, float, bool, vector, texture, sampler,
// rasterizer; each in its current order.
func UnusedParameters(entry *Entry, shader *Shader) []ParamID {
	var out []ParamID
	for _, id := range entry.collectIDs(unusedScanOrder) {
		if !slices.Contains(shader.MaterialParameters, id) {
			out = append(out, id)
		}
	}

	return out
}

// AddParameters appends each id with its family default and re-sorts every
// group by ordinal. Ids without a family are skipped. Repeated ids are
// appended once per occurrence.
func AddParameters(entry *Entry, ids []ParamID) {
	for _, id := range ids {
		if !entry.appendDefault(id) {
			Logger().Debug("skipping parameter without family", "material", entry.MaterialLabel, "param", id.String())
		}
	}

	entry.sortGroups()
}

// RemoveParameters removes the first occurrence of each id and re-sorts
// every group by ordinal. Groups are searched blend, float, bool, vector,
// rasterizer, sampler, texture. Absent ids are ignored.
func RemoveParameters(entry *Entry, ids []ParamID) {
	for _, id := range ids {
		for _, f := range removeSearchOrder {
			if entry.group(f).swapRemove(id) {
				break
			}
		}
	}

	entry.sortGroups()
}

// Report lists the parameters changed by Reconcile.
type Report struct {
	Missing []ParamID `json:"missing,omitempty" yaml:"missing,omitempty"` // Parameters added with defaults
	Unused  []ParamID `json:"unused,omitempty" yaml:"unused,omitempty"`   // Parameters removed
}

// Changed reports whether Reconcile modified the entry.
func (r Report) Changed() bool {
	return len(r.Missing) != 0 || len(r.Unused) != 0
}

// Reconcile makes entry define exactly the parameters shader reads: unused
// parameters are removed and missing ones are added with defaults.
func Reconcile(entry *Entry, shader *Shader) Report {
	r := Report{
		Missing: MissingParameters(entry, shader),
		Unused:  UnusedParameters(entry, shader),
	}

	RemoveParameters(entry, r.Unused)
	AddParameters(entry, r.Missing)

	Logger().Debug("reconciled material",
		"material", entry.MaterialLabel,
		"shader", shader.Label,
		"added", len(r.Missing),
		"removed", len(r.Unused),
	)

	return r
}
