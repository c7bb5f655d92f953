/*
Package matl reconciles material parameters with the shaders that read them.

A material document holds entries, each a shader label plus seven typed
parameter groups (blend states, floats, booleans, vectors, rasterizer
states, samplers and textures). Every ParamID belongs to exactly one
group family; FamilyOf classifies ids in constant time.

Reconcile example:

	m, err := matl.DecodeFile("model.numatb.json", nil)
	if err != nil {
		// handle error
	}
	shaders, err := matl.DecodeShaderSetFile("shaders.json", nil)
	if err != nil {
		// handle error
	}
	for i := range m.Entries {
		if sh, ok := shaders.Lookup(m.Entries[i].ShaderLabel); ok {
			matl.Reconcile(&m.Entries[i], sh)
		}
	}

Missing and unused parameters can also be handled separately:

	missing := matl.MissingParameters(&entry, shader)
	matl.AddParameters(&entry, missing)

	unused := matl.UnusedParameters(&entry, shader)
	matl.RemoveParameters(&entry, unused)

After AddParameters or RemoveParameters every group is sorted by ParamID.

Preset example:

	presets, err := matl.LoadPresets("presets.json")
	if err != nil {
		// no presets available
	}
	entry = matl.ApplyPreset(&entry, &presets[0])

Writer example:

	out, err := matl.Format(m, &matl.FormatOptions{Format: matl.FormatYAML})
	if err != nil {
		// handle error
	}

Validator example:

	issues := matl.ValidateDocument(m, &matl.ValidateOptions{Shaders: shaders})
	if matl.HasErrors(issues) {
		// handle validation issues
	}
*/
package matl
