package matl

import "strings"

// Shared default textures from the game's common shader resources.
const (
	TextureDefaultWhite  = "/common/shader/sfxpbs/default_white"
	TextureDefaultBlack  = "/common/shader/sfxpbs/default_black"
	TextureDefaultNormal = "/common/shader/sfxpbs/fighter/default_normal"
	TextureDefaultParams = "/common/shader/sfxpbs/fighter/default_params"
	TextureCubemap       = "#replace_cubemap"
)

// defaultTextures maps each texture slot to its neutral default.
var defaultTextures = map[ParamID]string{
	Texture0:  TextureDefaultWhite,
	Texture1:  TextureDefaultWhite,
	Texture2:  TextureCubemap,
	Texture3:  TextureDefaultWhite,
	Texture4:  TextureDefaultNormal,
	Texture5:  TextureDefaultBlack,
	Texture6:  TextureDefaultParams,
	Texture7:  TextureCubemap,
	Texture8:  TextureCubemap,
	Texture9:  TextureDefaultBlack,
	Texture10: TextureDefaultWhite,
	Texture11: TextureDefaultWhite,
	Texture12: TextureDefaultWhite,
	Texture13: TextureDefaultWhite,
	Texture14: TextureDefaultBlack,
	Texture15: TextureDefaultWhite,
	Texture16: TextureDefaultWhite,
	Texture17: TextureDefaultWhite,
	Texture18: TextureDefaultWhite,
	Texture19: TextureDefaultWhite,
}

// DefaultTexture returns the default texture path for a texture slot.
// Ids without a table entry get the white texture.
func DefaultTexture(id ParamID) string {
	if p, ok := defaultTextures[id]; ok {
		return p
	}

	return TextureDefaultWhite
}

// IsDefaultTexture reports whether path is one of the shared default textures.
func IsDefaultTexture(path string) bool {
	switch NormalizeTexturePath(path) {
	case TextureDefaultWhite, TextureDefaultBlack, TextureDefaultNormal, TextureDefaultParams, TextureCubemap:
		return true
	default:
		return false
	}
}

// TextureKind indicates texture value type.
type TextureKind string

const (
	// TextureKindPath represents a texture file path.
	TextureKindPath TextureKind = "path"
	// TextureKindPlaceholder represents a token the game replaces at runtime, e.g. "#replace_cubemap".
	TextureKindPlaceholder TextureKind = "placeholder"
)

// TextureKindOf classifies a texture value.
func TextureKindOf(path string) TextureKind {
	if strings.HasPrefix(strings.TrimSpace(path), "#") {
		return TextureKindPlaceholder
	}

	return TextureKindPath
}

// NormalizeTexturePath trims whitespace and converts backslashes to forward slashes.
func NormalizeTexturePath(path string) string {
	return strings.ReplaceAll(strings.TrimSpace(path), "\\", "/")
}
