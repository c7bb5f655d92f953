package matl

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFamilyPredicatesPartitionIDs(t *testing.T) {
	wantCounts := map[Family]int{
		FamilyBlendState:      11,
		FamilyRasterizerState: 11,
		FamilyFloat:           20,
		FamilyBoolean:         20,
		FamilyVector:          64,
		FamilySampler:         20,
		FamilyTexture:         20,
	}

	counts := make(map[Family]int)
	for _, id := range AllParamIDs(FamilyNone) {
		preds := []bool{
			id.IsBlendState(), id.IsRasterizerState(), id.IsFloat(), id.IsBoolean(),
			id.IsVector(), id.IsSampler(), id.IsTexture(),
		}
		n := 0
		for _, p := range preds {
			if p {
				n++
			}
		}
		require.Equal(t, 1, n, "id %s matches %d families", id, n)
		require.NotEqual(t, FamilyNone, FamilyOf(id))
		counts[FamilyOf(id)]++
	}

	assert.Equal(t, wantCounts, counts)
}

func TestFamilyOfUnknown(t *testing.T) {
	for _, id := range []ParamID{0, Texture0 - 1, RasterizerState10 + 1, CustomVector63 + 1, 1 << 40} {
		assert.Equal(t, FamilyNone, FamilyOf(id), "id 0x%x", uint64(id))
		assert.Equal(t, -1, id.Slot())
	}
	assert.Equal(t, "ParamID(0x0)", ParamID(0).String())
}

func TestSlotsAscendWithinFamily(t *testing.T) {
	for f := FamilyBlendState; f < familyCount; f++ {
		ids := AllParamIDs(f)
		for i, id := range ids {
			if id.Slot() != i {
				t.Fatalf("%s: slot of %s is %d, want %d", f, id, id.Slot(), i)
			}
		}
	}
}

func TestParamIDNames(t *testing.T) {
	tests := []struct {
		id   ParamID
		name string
	}{
		{BlendState0, "BlendState0"},
		{BlendState10, "BlendState10"},
		{RasterizerState0, "RasterizerState0"},
		{CustomFloat19, "CustomFloat19"},
		{CustomBoolean3, "CustomBoolean3"},
		{CustomVector19, "CustomVector19"},
		{CustomVector20, "CustomVector20"},
		{CustomVector63, "CustomVector63"},
		{Sampler15, "Sampler15"},
		{Sampler16, "Sampler16"},
		{Texture15, "Texture15"},
		{Texture16, "Texture16"},
		{Texture19, "Texture19"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.id.String())

			got, err := ParseParamID(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.id, got)
		})
	}
}

func TestParseParamID(t *testing.T) {
	id, err := ParseParamID(" texture4 ")
	require.NoError(t, err)
	assert.Equal(t, Texture4, id)

	for _, name := range []string{"", "Texture20", "CustomVector64", "BlendState11", "Diffuse"} {
		_, err := ParseParamID(name)
		assert.ErrorIs(t, err, ErrUnknownParamID, name)
	}
}

func TestParamIDText(t *testing.T) {
	ids := []ParamID{Texture0, CustomVector20, BlendState0}

	b, err := json.Marshal(ids)
	require.NoError(t, err)
	assert.JSONEq(t, `["Texture0","CustomVector20","BlendState0"]`, string(b))

	var fromJSON []ParamID
	require.NoError(t, json.Unmarshal(b, &fromJSON))
	assert.Equal(t, ids, fromJSON)

	y, err := yaml.Marshal(ids)
	require.NoError(t, err)
	assert.Equal(t, "- Texture0\n- CustomVector20\n- BlendState0\n", string(y))

	var fromYAML []ParamID
	require.NoError(t, yaml.Unmarshal(y, &fromYAML))
	assert.Equal(t, ids, fromYAML)

	_, err = json.Marshal(ParamID(1))
	assert.ErrorIs(t, err, ErrUnknownParamID)
}

func TestFamilyString(t *testing.T) {
	assert.Equal(t, "blend_states", FamilyBlendState.String())
	assert.Equal(t, "textures", FamilyTexture.String())
	assert.Equal(t, "Family(42)", Family(42).String())
}
