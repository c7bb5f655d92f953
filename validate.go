package matl

import (
	"fmt"
	"strings"
)

// IssueLevel represents severity of validation issue.
type IssueLevel string

const (
	// IssueError indicates a validation error.
	IssueError IssueLevel = "error"
	// IssueWarning indicates a validation warning.
	IssueWarning IssueLevel = "warning"
)

// Issue codes.
const (
	// CodeEmptyLabel marks a missing material or shader label.
	CodeEmptyLabel = "empty_label"
	// CodeDuplicateLabel marks a material label used by more than one entry.
	CodeDuplicateLabel = "duplicate_label"
	// CodeWrongFamily marks a parameter stored in another family's group.
	CodeWrongFamily = "wrong_family"
	// CodeDuplicateParam marks a parameter id repeated within a group.
	CodeDuplicateParam = "duplicate_param"
	// CodeUnsortedGroup marks a group not in ascending id order.
	CodeUnsortedGroup = "unsorted_group"
	// CodeNonFinite marks a NaN or infinite numeric value.
	CodeNonFinite = "non_finite"
	// CodeUnknownEnum marks an unrecognized blend, rasterizer or sampler value.
	CodeUnknownEnum = "unknown_enum"
	// CodeEmptyTexture marks an empty texture path.
	CodeEmptyTexture = "empty_texture"
	// CodeMissingParam marks a parameter the shader reads but the entry lacks.
	CodeMissingParam = "missing_param"
	// CodeUnusedParam marks a parameter the shader does not read.
	CodeUnusedParam = "unused_param"
	// CodeUnknownShader marks a shader label without a descriptor.
	CodeUnknownShader = "unknown_shader"
	// CodeUnknownParamID marks an id outside every family.
	CodeUnknownParamID = "unknown_param"
)

// Issue represents a validation issue.
type Issue struct {
	Level   IssueLevel `json:"level" yaml:"level"`                   // Severity level
	Code    string     `json:"code,omitempty" yaml:"code,omitempty"` // Machine-readable code
	Message string     `json:"message" yaml:"message"`               // Issue message
	Path    string     `json:"path,omitempty" yaml:"path,omitempty"` // Path to the affected parameter
}

// String formats the issue as "level code path: message".
func (i Issue) String() string {
	var b strings.Builder
	b.WriteString(string(i.Level))
	if i.Code != "" {
		b.WriteByte(' ')
		b.WriteString(i.Code)
	}
	if i.Path != "" {
		b.WriteByte(' ')
		b.WriteString(i.Path)
	}
	b.WriteString(": ")
	b.WriteString(i.Message)

	return b.String()
}

// HasErrors reports whether any issue is an error.
func HasErrors(issues []Issue) bool {
	for _, it := range issues {
		if it.Level == IssueError {
			return true
		}
	}

	return false
}

// Validate validates a material entry and returns issues.
func Validate(e *Entry, opt *ValidateOptions) []Issue {
	vopt := opt.normalize()
	var out []Issue

	if !vopt.DisableLabelCheck {
		if e.MaterialLabel == "" {
			out = append(out, Issue{Level: IssueWarning, Code: CodeEmptyLabel, Message: "material label missing"})
		}
		if e.ShaderLabel == "" {
			out = append(out, Issue{Level: IssueWarning, Code: CodeEmptyLabel, Message: "shader label missing"})
		}
	}

	out = append(out, validateGroup(FamilyBlendState, e.BlendStates, vopt, func(p Param[BlendState], path string) []Issue {
		return validateBlendState(p.Data, path, vopt)
	})...)
	out = append(out, validateGroup(FamilyFloat, e.Floats, vopt, func(p Param[float32], path string) []Issue {
		if !vopt.DisableFiniteCheck && !isFinite(p.Data) {
			return []Issue{{Level: IssueError, Code: CodeNonFinite, Message: "float is not finite", Path: path}}
		}
		return nil
	})...)
	out = append(out, validateGroup[bool](FamilyBoolean, e.Booleans, vopt, nil)...)
	out = append(out, validateGroup(FamilyVector, e.Vectors, vopt, func(p Param[Vector4], path string) []Issue {
		if !vopt.DisableFiniteCheck && !p.Data.IsFinite() {
			return []Issue{{Level: IssueError, Code: CodeNonFinite, Message: "vector has non-finite components", Path: path}}
		}
		return nil
	})...)
	out = append(out, validateGroup(FamilyRasterizerState, e.RasterizerStates, vopt, func(p Param[RasterizerState], path string) []Issue {
		return validateRasterizerState(p.Data, path, vopt)
	})...)
	out = append(out, validateGroup(FamilySampler, e.Samplers, vopt, func(p Param[Sampler], path string) []Issue {
		return validateSampler(p.Data, path, vopt)
	})...)
	out = append(out, validateGroup(FamilyTexture, e.Textures, vopt, func(p Param[string], path string) []Issue {
		if !vopt.DisableTextureCheck && strings.TrimSpace(p.Data) == "" {
			return []Issue{{Level: IssueWarning, Code: CodeEmptyTexture, Message: "texture path empty", Path: path}}
		}
		return nil
	})...)

	if vopt.Shader != nil {
		out = append(out, validateShader(e, vopt.Shader)...)
	} else if vopt.Shaders != nil {
		sh, ok := vopt.Shaders.Lookup(e.ShaderLabel)
		if !ok {
			out = append(out, Issue{Level: IssueWarning, Code: CodeUnknownShader, Message: "no descriptor for shader", Path: e.ShaderLabel})
		} else {
			out = append(out, validateShader(e, sh)...)
		}
	}

	return out
}

// ValidateDocument validates every entry of a document and checks that
// material labels are unique. Issue paths are prefixed with the label.
func ValidateDocument(m *Matl, opt *ValidateOptions) []Issue {
	var out []Issue

	seen := make(map[string]struct{}, len(m.Entries))
	for i := range m.Entries {
		e := &m.Entries[i]
		label := e.MaterialLabel
		if label == "" {
			label = fmt.Sprintf("entries[%d]", i)
		} else if _, ok := seen[label]; ok {
			out = append(out, Issue{Level: IssueError, Code: CodeDuplicateLabel, Message: "duplicate material label", Path: label})
		}
		seen[e.MaterialLabel] = struct{}{}

		for _, it := range Validate(e, opt) {
			out = append(out, withEntryContext(it, label))
		}
	}

	return out
}

// validateGroup checks family membership, uniqueness and order of a group,
// then runs check on each value.
func validateGroup[T any](f Family, p Params[T], opt ValidateOptions, check func(Param[T], string) []Issue) []Issue {
	var out []Issue

	group := f.String()
	seen := make(map[ParamID]struct{}, len(p))
	for _, v := range p {
		path := group + "." + v.ParamID.String()

		switch got := FamilyOf(v.ParamID); {
		case got == FamilyNone:
			out = append(out, Issue{Level: IssueError, Code: CodeUnknownParamID, Message: "unknown parameter id", Path: path})
		case got != f:
			out = append(out, Issue{Level: IssueError, Code: CodeWrongFamily, Message: "parameter belongs to " + got.String(), Path: path})
		}

		if _, ok := seen[v.ParamID]; ok {
			out = append(out, Issue{Level: IssueError, Code: CodeDuplicateParam, Message: "duplicate parameter", Path: path})
		}
		seen[v.ParamID] = struct{}{}

		if check != nil {
			out = append(out, check(v, path)...)
		}
	}

	if !opt.DisableOrderCheck && !p.isSorted() {
		out = append(out, Issue{Level: IssueWarning, Code: CodeUnsortedGroup, Message: "parameters not sorted by id", Path: group})
	}

	return out
}

// validateShader reports parameters missing from or unused by the shader.
func validateShader(e *Entry, sh *Shader) []Issue {
	var out []Issue
	for _, id := range MissingParameters(e, sh) {
		out = append(out, Issue{Level: IssueWarning, Code: CodeMissingParam, Message: "shader parameter missing", Path: id.String()})
	}
	for _, id := range UnusedParameters(e, sh) {
		out = append(out, Issue{Level: IssueWarning, Code: CodeUnusedParam, Message: "parameter not used by shader", Path: id.String()})
	}

	return out
}

func validateBlendState(b BlendState, path string, opt ValidateOptions) []Issue {
	if opt.DisableEnumCheck {
		return nil
	}

	var out []Issue
	out = appendUnknown(out, knownBlendFactors, b.SourceColor, path+".source_color")
	out = appendUnknown(out, knownBlendFactors, b.DestinationColor, path+".destination_color")
	return out
}

func validateRasterizerState(r RasterizerState, path string, opt ValidateOptions) []Issue {
	var out []Issue
	if !opt.DisableEnumCheck {
		out = appendUnknown(out, knownFillModes, r.FillMode, path+".fill_mode")
		out = appendUnknown(out, knownCullModes, r.CullMode, path+".cull_mode")
	}
	if !opt.DisableFiniteCheck && !isFinite(r.DepthBias) {
		out = append(out, Issue{Level: IssueError, Code: CodeNonFinite, Message: "depth bias is not finite", Path: path + ".depth_bias"})
	}

	return out
}

func validateSampler(s Sampler, path string, opt ValidateOptions) []Issue {
	var out []Issue
	if !opt.DisableEnumCheck {
		out = appendUnknown(out, knownWrapModes, s.WrapS, path+".wraps")
		out = appendUnknown(out, knownWrapModes, s.WrapT, path+".wrapt")
		out = appendUnknown(out, knownWrapModes, s.WrapR, path+".wrapr")
		out = appendUnknown(out, knownMinFilters, s.MinFilter, path+".min_filter")
		out = appendUnknown(out, knownMagFilters, s.MagFilter, path+".mag_filter")
		if s.MaxAnisotropy != nil {
			out = appendUnknown(out, knownAnisotropy, *s.MaxAnisotropy, path+".max_anisotropy")
		}
	}
	if !opt.DisableFiniteCheck {
		if !isFinite(s.LodBias) {
			out = append(out, Issue{Level: IssueError, Code: CodeNonFinite, Message: "lod bias is not finite", Path: path + ".lod_bias"})
		}
		if !s.BorderColor.IsFinite() {
			out = append(out, Issue{Level: IssueError, Code: CodeNonFinite, Message: "border color is not finite", Path: path + ".border_color"})
		}
	}

	return out
}

// appendUnknown appends an unknown_enum issue when v is not in known.
func appendUnknown[T ~string](out []Issue, known map[T]struct{}, v T, path string) []Issue {
	if _, ok := known[v]; ok {
		return out
	}

	return append(out, Issue{Level: IssueWarning, Code: CodeUnknownEnum, Message: fmt.Sprintf("unknown value %q", string(v)), Path: path})
}

// withEntryContext adds material context to an issue.
func withEntryContext(issue Issue, label string) Issue {
	if label == "" {
		return issue
	}

	if issue.Path == "" {
		issue.Path = label
		return issue
	}

	issue.Path = label + ": " + issue.Path
	return issue
}
