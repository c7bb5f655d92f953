package matl

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPresetKeepsLabelAndTextures(t *testing.T) {
	entry := Entry{
		MaterialLabel: "material",
		ShaderLabel:   "123",
		Textures:      Params[string]{{ParamID: Texture0, Data: "a"}},
	}
	preset := Entry{
		MaterialLabel:    "preset",
		ShaderLabel:      "456",
		BlendStates:      Params[BlendState]{{ParamID: BlendState0, Data: DefaultBlendState()}},
		Floats:           Params[float32]{{ParamID: CustomFloat0}},
		Booleans:         Params[bool]{{ParamID: CustomBoolean0}},
		Vectors:          Params[Vector4]{{ParamID: CustomVector0}},
		RasterizerStates: Params[RasterizerState]{{ParamID: RasterizerState0, Data: DefaultRasterizerState()}},
		Samplers: Params[Sampler]{
			{ParamID: Sampler0, Data: DefaultSampler()},
			{ParamID: Sampler1, Data: DefaultSampler()},
		},
		Textures: Params[string]{
			{ParamID: Texture0, Data: "d"},
			{ParamID: Texture1, Data: "c"},
		},
	}

	got := ApplyPreset(&entry, &preset)

	want := preset
	want.MaterialLabel = "material"
	want.Textures = Params[string]{
		{ParamID: Texture0, Data: "a"},
		{ParamID: Texture1, Data: "/common/shader/sfxpbs/default_white"},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("preset result mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "material", entry.MaterialLabel, "entry must not change")
	assert.Equal(t, "d", preset.Textures[0].Data, "preset must not change")
}

func TestApplyPresetCopiesValues(t *testing.T) {
	four := AnisotropyFour
	preset := Entry{
		MaterialLabel: "preset",
		Floats:        Params[float32]{{ParamID: CustomFloat8, Data: 0.9}},
		Samplers:      Params[Sampler]{{ParamID: Sampler0, Data: Sampler{MaxAnisotropy: &four}}},
	}
	entry := DefaultMaterial()

	got := ApplyPreset(&entry, &preset)
	got.Floats[0].Data = 0.1
	*got.Samplers[0].Data.MaxAnisotropy = AnisotropyOne

	assert.Equal(t, float32(0.9), preset.Floats[0].Data)
	assert.Equal(t, AnisotropyFour, *preset.Samplers[0].Data.MaxAnisotropy)
	assert.Empty(t, got.Textures)
	assert.Equal(t, DefaultMaterialLabel, got.MaterialLabel)
}

func TestDefaultMaterial(t *testing.T) {
	m := DefaultMaterial()

	assert.Equal(t, "NEW_MATERIAL", m.MaterialLabel)
	assert.Equal(t, "SFX_PBS_0100000008008269_opaque", m.ShaderLabel)
	assert.Equal(t, Params[BlendState]{{ParamID: BlendState0, Data: BlendState{SourceColor: BlendOne, DestinationColor: BlendZero}}}, m.BlendStates)
	assert.Equal(t, Params[float32]{{ParamID: CustomFloat8, Data: 0.4}}, m.Floats)
	assert.Equal(t, Params[bool]{
		{ParamID: CustomBoolean1, Data: true},
		{ParamID: CustomBoolean3, Data: true},
		{ParamID: CustomBoolean4, Data: true},
	}, m.Booleans)
	assert.Equal(t, Params[Vector4]{
		{ParamID: CustomVector0, Data: Vector4{}},
		{ParamID: CustomVector13, Data: Vector4{X: 1, Y: 1, Z: 1, W: 1}},
		{ParamID: CustomVector14, Data: Vector4{X: 1, Y: 1, Z: 1, W: 1}},
		{ParamID: CustomVector8, Data: Vector4{X: 1, Y: 1, Z: 1, W: 1}},
	}, m.Vectors)
	assert.Equal(t, Params[RasterizerState]{{ParamID: RasterizerState0, Data: RasterizerState{FillMode: FillSolid, CullMode: CullBack}}}, m.RasterizerStates)
	assert.Equal(t, []ParamID{Sampler0, Sampler4, Sampler6, Sampler7}, m.Samplers.IDs())
	for _, s := range m.Samplers {
		assert.Equal(t, DefaultSampler(), s.Data)
	}
	assert.Equal(t, Params[string]{
		{ParamID: Texture0, Data: "/common/shader/sfxpbs/default_white"},
		{ParamID: Texture4, Data: "/common/shader/sfxpbs/fighter/default_normal"},
		{ParamID: Texture6, Data: "/common/shader/sfxpbs/fighter/default_params"},
		{ParamID: Texture7, Data: "#replace_cubemap"},
	}, m.Textures)
}

func TestLoadPresets(t *testing.T) {
	presets, err := LoadPresets(filepath.Join("testdata", "presets.json"))
	require.NoError(t, err)
	require.Len(t, presets, 2)

	assert.Equal(t, "PRESET_SKIN", presets[0].MaterialLabel)
	require.NotNil(t, presets[0].Samplers[0].Data.MaxAnisotropy)
	assert.Equal(t, AnisotropyFour, *presets[0].Samplers[0].Data.MaxAnisotropy)
	assert.Equal(t, []ParamID{Texture0, Texture5}, presets[0].Textures.IDs())
}

func TestLoadPresetsMissingFile(t *testing.T) {
	_, err := LoadPresets(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPresetLibrary(t *testing.T) {
	lib := NewPresetLibrary(filepath.Join("testdata", "presets.json"))
	assert.Equal(t, 0, lib.Len())
	require.NoError(t, lib.Reload())
	assert.Equal(t, 2, lib.Len())

	preset, ok := lib.Find("PRESET_METAL")
	require.True(t, ok)
	assert.Equal(t, Params[float32]{{ParamID: CustomFloat8, Data: 0.9}}, preset.Floats)

	entry := DefaultMaterial()
	entry.MaterialLabel = "body"
	got, err := lib.Apply(&entry, "PRESET_METAL")
	require.NoError(t, err)
	assert.Equal(t, "body", got.MaterialLabel)
	assert.Equal(t, Params[string]{{ParamID: Texture6, Data: TextureDefaultParams}}, got.Textures)

	_, err = lib.Apply(&entry, "PRESET_GLASS")
	assert.ErrorIs(t, err, ErrEntryNotFound)

	// Returned presets are copies.
	all := lib.Presets()
	all[1].Floats[0].Data = 0
	again, _ := lib.Find("PRESET_METAL")
	assert.Equal(t, float32(0.9), again.Floats[0].Data)
}

func TestPresetLibraryReloadFailureEmpties(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	writePresets(t, path, DefaultMaterial())

	lib := NewPresetLibrary(path)
	require.NoError(t, lib.Reload())
	assert.Equal(t, 1, lib.Len())

	require.NoError(t, os.WriteFile(path, []byte("{ not json"), 0o600))
	err := lib.Reload()
	assert.ErrorIs(t, err, ErrParse)
	assert.Equal(t, 0, lib.Len())
}

func TestPresetLibraryWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.json")
	writePresets(t, path, DefaultMaterial())

	lib := NewPresetLibrary(path)
	require.NoError(t, lib.Reload())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- lib.Watch(ctx) }()

	second := DefaultMaterial()
	second.MaterialLabel = "SECOND"

	// Rewrite until the watcher is registered and picks up the change.
	require.Eventually(t, func() bool {
		writePresets(t, path, DefaultMaterial(), second)
		_, ok := lib.Find("SECOND")
		return ok
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatalf("watch did not stop after cancel")
	}
}

func writePresets(t *testing.T, path string, entries ...Entry) {
	t.Helper()
	if err := EncodeFile(path, NewMatl(entries...), nil); err != nil {
		t.Fatalf("write presets: %v", err)
	}
}
