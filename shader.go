package matl

import (
	"os"
	"strings"
)

// Shader describes the material parameters a compiled shader program reads.
// Descriptors come from shader reflection and are only read here.
type Shader struct {
	Label              string    `json:"label" yaml:"label"`                                             // Shader program name
	MaterialParameters []ParamID `json:"material_parameters" yaml:"material_parameters"`                 // Parameters read by the shader
	VertexAttributes   []string  `json:"vertex_attributes,omitempty" yaml:"vertex_attributes,omitempty"` // Required mesh attributes
	Discard            bool      `json:"discard,omitempty" yaml:"discard,omitempty"`                     // Whether the shader uses alpha testing
}

// ShaderSet is a collection of shader descriptors.
type ShaderSet struct {
	Shaders []Shader `json:"shaders" yaml:"shaders"` // Shader descriptors
	byLabel map[string]int
}

// renderPasses are the suffixes appended to a program name in shader labels.
var renderPasses = []string{"_opaque", "_sort", "_far", "_near"}

// ShaderProgramName strips the render pass suffix from a shader label,
// e.g. "SFX_PBS_0100000008008269_opaque" becomes "SFX_PBS_0100000008008269".
func ShaderProgramName(label string) string {
	for _, pass := range renderPasses {
		if strings.HasSuffix(label, pass) {
			return strings.TrimSuffix(label, pass)
		}
	}

	return label
}

// NewShaderSet builds a set from descriptors. Later duplicates win.
func NewShaderSet(shaders ...Shader) *ShaderSet {
	s := &ShaderSet{Shaders: shaders}
	s.index()
	return s
}

// index rebuilds the label lookup.
func (s *ShaderSet) index() {
	s.byLabel = make(map[string]int, len(s.Shaders))
	for i, sh := range s.Shaders {
		s.byLabel[sh.Label] = i
	}
}

// Lookup finds the descriptor for a material's shader label. The exact
// label is tried first, then the label without its render pass.
func (s *ShaderSet) Lookup(label string) (*Shader, bool) {
	if s == nil {
		return nil, false
	}
	if s.byLabel == nil {
		s.index()
	}

	if i, ok := s.byLabel[label]; ok {
		return &s.Shaders[i], true
	}
	if i, ok := s.byLabel[ShaderProgramName(label)]; ok {
		return &s.Shaders[i], true
	}

	return nil, false
}

// Len returns the number of descriptors.
func (s *ShaderSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.Shaders)
}

// ParseShaderSet parses a shader set document from bytes.
func ParseShaderSet(data []byte, opt *ParseOptions) (*ShaderSet, error) {
	return parseShaderSet(data, opt.normalize(""))
}

// DecodeShaderSetFile parses a shader set document from a file.
func DecodeShaderSetFile(path string, opt *ParseOptions) (*ShaderSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return parseShaderSet(data, opt.normalize(path))
}

func parseShaderSet(data []byte, opt ParseOptions) (*ShaderSet, error) {
	s := &ShaderSet{}
	if err := unmarshalDocument(data, opt, s); err != nil {
		return nil, err
	}

	s.index()
	return s, nil
}
