package matl

import (
	"path/filepath"
	"strings"
)

// DocumentFormat is the serialization used for documents.
type DocumentFormat string

const (
	// FormatJSON is the JSON document format.
	FormatJSON DocumentFormat = "json"
	// FormatYAML is the YAML document format.
	FormatYAML DocumentFormat = "yaml"
)

// FormatFromPath picks a format from the file extension. Unknown
// extensions default to JSON.
func FormatFromPath(path string) DocumentFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseOptions controls decoding.
type ParseOptions struct {
	// Format selects the document format. Empty means JSON, or for file
	// helpers the format implied by the file extension.
	Format DocumentFormat
	// DisallowUnknownFields rejects JSON objects with unknown keys.
	DisallowUnknownFields bool
}

// FormatOptions controls encoding.
type FormatOptions struct {
	// Format selects the document format, see ParseOptions.Format.
	Format DocumentFormat
	// Indent is the JSON indentation string (default is two spaces).
	// YAML output always uses two space indentation.
	Indent string
}

// ValidateOptions controls validation rules.
type ValidateOptions struct {
	// Shader enables missing/unused parameter checks against one shader.
	// It takes precedence over Shaders.
	Shader *Shader
	// Shaders enables missing/unused checks using each entry's shader label.
	Shaders *ShaderSet
	// DisableLabelCheck disables empty material and shader label warnings.
	DisableLabelCheck bool
	// DisableOrderCheck disables the canonical group order check.
	DisableOrderCheck bool
	// DisableFiniteCheck disables NaN and infinity checks on numeric values.
	DisableFiniteCheck bool
	// DisableEnumCheck disables validation of blend, rasterizer and sampler enum names.
	DisableEnumCheck bool
	// DisableTextureCheck disables empty texture path warnings.
	DisableTextureCheck bool
}

// normalize normalizes the ParseOptions.
func (o *ParseOptions) normalize(path string) ParseOptions {
	var out ParseOptions
	if o != nil {
		out = *o
	}
	if out.Format == "" {
		out.Format = FormatFromPath(path)
	}

	return out
}

// normalize normalizes the FormatOptions.
func (o *FormatOptions) normalize(path string) FormatOptions {
	out := FormatOptions{Indent: "  "}
	if o != nil {
		out = *o
		if out.Indent == "" {
			out.Indent = "  "
		}
	}
	if out.Format == "" {
		out.Format = FormatFromPath(path)
	}

	return out
}

// normalize normalizes the ValidateOptions.
func (o *ValidateOptions) normalize() ValidateOptions {
	if o == nil {
		return ValidateOptions{}
	}

	return *o
}
