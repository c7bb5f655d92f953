package matl

import "testing"

func TestDefaultTexture(t *testing.T) {
	tests := []struct {
		id   ParamID
		want string
	}{
		{Texture0, "/common/shader/sfxpbs/default_white"},
		{Texture1, "/common/shader/sfxpbs/default_white"},
		{Texture2, "#replace_cubemap"},
		{Texture3, "/common/shader/sfxpbs/default_white"},
		{Texture4, "/common/shader/sfxpbs/fighter/default_normal"},
		{Texture5, "/common/shader/sfxpbs/default_black"},
		{Texture6, "/common/shader/sfxpbs/fighter/default_params"},
		{Texture7, "#replace_cubemap"},
		{Texture8, "#replace_cubemap"},
		{Texture9, "/common/shader/sfxpbs/default_black"},
		{Texture10, "/common/shader/sfxpbs/default_white"},
		{Texture14, "/common/shader/sfxpbs/default_black"},
		{Texture19, "/common/shader/sfxpbs/default_white"},
		{CustomFloat0, "/common/shader/sfxpbs/default_white"},
		{ParamID(0), "/common/shader/sfxpbs/default_white"},
	}
	for _, tt := range tests {
		if got := DefaultTexture(tt.id); got != tt.want {
			t.Fatalf("DefaultTexture(%s) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestTextureKindOf(t *testing.T) {
	if got := TextureKindOf("#replace_cubemap"); got != TextureKindPlaceholder {
		t.Fatalf("cubemap kind = %q", got)
	}
	if got := TextureKindOf("alp_mario_001_col"); got != TextureKindPath {
		t.Fatalf("path kind = %q", got)
	}
}

func TestIsDefaultTexture(t *testing.T) {
	if !IsDefaultTexture(`\common\shader\sfxpbs\default_white`) {
		t.Fatalf("expected backslash path to match default white")
	}
	if !IsDefaultTexture(TextureCubemap) {
		t.Fatalf("expected cubemap placeholder to be a default")
	}
	if IsDefaultTexture("alp_mario_001_col") {
		t.Fatalf("unexpected default match")
	}
}
