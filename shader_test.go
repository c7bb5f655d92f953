package matl

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderProgramName(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"SFX_PBS_0100000008008269_opaque", "SFX_PBS_0100000008008269"},
		{"SFX_PBS_010000000800826b_sort", "SFX_PBS_010000000800826b"},
		{"SFX_PBS_0d00000000000000_far", "SFX_PBS_0d00000000000000"},
		{"SFX_PBS_0d00000000000000_near", "SFX_PBS_0d00000000000000"},
		{"SFX_PBS_0100000008008269", "SFX_PBS_0100000008008269"},
		{"_opaque", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ShaderProgramName(tt.label), tt.label)
	}
}

func TestShaderSetLookup(t *testing.T) {
	set := NewShaderSet(
		Shader{Label: "SFX_PBS_0100000008008269", MaterialParameters: []ParamID{Texture0}},
		Shader{Label: "SFX_PBS_0100000008008269_far", MaterialParameters: []ParamID{Texture1}},
	)

	tests := []struct {
		label string
		want  ParamID
		ok    bool
	}{
		{"SFX_PBS_0100000008008269", Texture0, true},
		{"SFX_PBS_0100000008008269_opaque", Texture0, true},
		{"SFX_PBS_0100000008008269_far", Texture1, true},
		{"SFX_PBS_0000000000000000_opaque", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		sh, ok := set.Lookup(tt.label)
		require.Equal(t, tt.ok, ok, tt.label)
		if ok {
			assert.Equal(t, []ParamID{tt.want}, sh.MaterialParameters, tt.label)
		}
	}
}

func TestShaderSetNil(t *testing.T) {
	var set *ShaderSet
	_, ok := set.Lookup("SFX_PBS_0100000008008269_opaque")
	assert.False(t, ok)
	assert.Equal(t, 0, set.Len())
}

func TestShaderSetLiteralIndexesLazily(t *testing.T) {
	set := &ShaderSet{Shaders: []Shader{{Label: "S"}}}
	sh, ok := set.Lookup("S_sort")
	require.True(t, ok)
	assert.Equal(t, "S", sh.Label)
}

func TestDecodeShaderSetFile(t *testing.T) {
	set, err := DecodeShaderSetFile(filepath.Join("testdata", "shaders.json"), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())

	sh, ok := set.Lookup("SFX_PBS_010000000800826b_sort")
	require.True(t, ok)
	assert.True(t, sh.Discard)
	assert.Equal(t, []ParamID{BlendState0, RasterizerState0, CustomVector0, Sampler0, Texture0}, sh.MaterialParameters)
	assert.Equal(t, []string{"Position0", "Normal0", "map1"}, sh.VertexAttributes)
}

func TestParseShaderSetErrors(t *testing.T) {
	_, err := ParseShaderSet([]byte(`{"shaders": [{"label": "S", "material_parameters": ["Nope"]}]}`), nil)
	assert.ErrorIs(t, err, ErrUnknownParamID)
	assert.ErrorIs(t, err, ErrParse)

	set, err := ParseShaderSet([]byte("shaders:\n  - label: S\n    material_parameters: [Texture3]\n"), &ParseOptions{Format: FormatYAML})
	require.NoError(t, err)
	sh, ok := set.Lookup("S")
	require.True(t, ok)
	assert.Equal(t, []ParamID{Texture3}, sh.MaterialParameters)
}
