package matl

// BlendFactor is a blend equation factor.
type BlendFactor string

const (
	// BlendZero multiplies by zero.
	BlendZero BlendFactor = "Zero"
	// BlendOne multiplies by one.
	BlendOne BlendFactor = "One"
	// BlendSourceAlpha multiplies by the source alpha.
	BlendSourceAlpha BlendFactor = "SourceAlpha"
	// BlendDestinationAlpha multiplies by the destination alpha.
	BlendDestinationAlpha BlendFactor = "DestinationAlpha"
	// BlendSourceColor multiplies by the source color.
	BlendSourceColor BlendFactor = "SourceColor"
	// BlendDestinationColor multiplies by the destination color.
	BlendDestinationColor BlendFactor = "DestinationColor"
	// BlendOneMinusSourceAlpha multiplies by one minus the source alpha.
	BlendOneMinusSourceAlpha BlendFactor = "OneMinusSourceAlpha"
	// BlendOneMinusDestinationAlpha multiplies by one minus the destination alpha.
	BlendOneMinusDestinationAlpha BlendFactor = "OneMinusDestinationAlpha"
	// BlendOneMinusSourceColor multiplies by one minus the source color.
	BlendOneMinusSourceColor BlendFactor = "OneMinusSourceColor"
	// BlendOneMinusDestinationColor multiplies by one minus the destination color.
	BlendOneMinusDestinationColor BlendFactor = "OneMinusDestinationColor"
	// BlendSourceAlphaSaturate multiplies by the saturated source alpha.
	BlendSourceAlphaSaturate BlendFactor = "SourceAlphaSaturate"
)

// FillMode is the polygon fill mode.
type FillMode string

const (
	// FillLine draws polygon edges only.
	FillLine FillMode = "Line"
	// FillSolid fills polygons.
	FillSolid FillMode = "Solid"
)

// CullMode selects which faces are culled.
type CullMode string

const (
	// CullBack culls back faces.
	CullBack CullMode = "Back"
	// CullFront culls front faces.
	CullFront CullMode = "Front"
	// CullDisabled draws both faces.
	CullDisabled CullMode = "Disabled"
)

// WrapMode is a texture coordinate wrap mode.
type WrapMode string

const (
	// WrapRepeat tiles the texture.
	WrapRepeat WrapMode = "Repeat"
	// WrapClampToEdge clamps coordinates to the edge texels.
	WrapClampToEdge WrapMode = "ClampToEdge"
	// WrapMirroredRepeat tiles the texture, mirroring every other tile.
	WrapMirroredRepeat WrapMode = "MirroredRepeat"
	// WrapClampToBorder uses the border color outside the texture.
	WrapClampToBorder WrapMode = "ClampToBorder"
)

// MinFilter is the texture minification filter.
type MinFilter string

const (
	// MinNearest samples the nearest texel.
	MinNearest MinFilter = "Nearest"
	// MinLinearMipmapLinear filters trilinearly.
	MinLinearMipmapLinear MinFilter = "LinearMipmapLinear"
	// MinLinearMipmapLinear2 is the second trilinear variant used by the game.
	MinLinearMipmapLinear2 MinFilter = "LinearMipmapLinear2"
)

// MagFilter is the texture magnification filter.
type MagFilter string

const (
	// MagNearest samples the nearest texel.
	MagNearest MagFilter = "Nearest"
	// MagLinear filters bilinearly.
	MagLinear MagFilter = "Linear"
	// MagLinear2 is the second bilinear variant used by the game.
	MagLinear2 MagFilter = "Linear2"
)

// MaxAnisotropy is the anisotropic filtering level.
type MaxAnisotropy string

const (
	// AnisotropyOne is 1x anisotropic filtering.
	AnisotropyOne MaxAnisotropy = "One"
	// AnisotropyTwo is 2x anisotropic filtering.
	AnisotropyTwo MaxAnisotropy = "Two"
	// AnisotropyFour is 4x anisotropic filtering.
	AnisotropyFour MaxAnisotropy = "Four"
	// AnisotropyEight is 8x anisotropic filtering.
	AnisotropyEight MaxAnisotropy = "Eight"
	// AnisotropySixteen is 16x anisotropic filtering.
	AnisotropySixteen MaxAnisotropy = "Sixteen"
)

// BlendState is the value of a BlendState parameter.
type BlendState struct {
	SourceColor           BlendFactor `json:"source_color" yaml:"source_color"`                         // Source color factor
	DestinationColor      BlendFactor `json:"destination_color" yaml:"destination_color"`               // Destination color factor
	AlphaSampleToCoverage bool        `json:"alpha_sample_to_coverage" yaml:"alpha_sample_to_coverage"` // Alpha to coverage
}

// RasterizerState is the value of a RasterizerState parameter.
type RasterizerState struct {
	FillMode  FillMode `json:"fill_mode" yaml:"fill_mode"`   // Polygon fill mode
	CullMode  CullMode `json:"cull_mode" yaml:"cull_mode"`   // Face culling
	DepthBias float32  `json:"depth_bias" yaml:"depth_bias"` // Constant depth bias
}

// Sampler is the value of a Sampler parameter.
type Sampler struct {
	WrapS         WrapMode       `json:"wraps" yaml:"wraps"`                   // Wrap mode for S
	WrapT         WrapMode       `json:"wrapt" yaml:"wrapt"`                   // Wrap mode for T
	WrapR         WrapMode       `json:"wrapr" yaml:"wrapr"`                   // Wrap mode for R
	MinFilter     MinFilter      `json:"min_filter" yaml:"min_filter"`         // Minification filter
	MagFilter     MagFilter      `json:"mag_filter" yaml:"mag_filter"`         // Magnification filter
	BorderColor   Color4         `json:"border_color" yaml:"border_color"`     // Border color for ClampToBorder
	LodBias       float32        `json:"lod_bias" yaml:"lod_bias"`             // Mipmap level of detail bias
	MaxAnisotropy *MaxAnisotropy `json:"max_anisotropy" yaml:"max_anisotropy"` // Anisotropic filtering, nil when disabled
}

// DefaultBlendState returns an opaque blend state.
func DefaultBlendState() BlendState {
	return BlendState{SourceColor: BlendOne, DestinationColor: BlendZero}
}

// DefaultRasterizerState returns a solid, back-face culled rasterizer state.
func DefaultRasterizerState() RasterizerState {
	return RasterizerState{FillMode: FillSolid, CullMode: CullBack}
}

// DefaultSampler returns a repeating, trilinear sampler.
func DefaultSampler() Sampler {
	return Sampler{
		WrapS:     WrapRepeat,
		WrapT:     WrapRepeat,
		WrapR:     WrapRepeat,
		MinFilter: MinLinearMipmapLinear,
		MagFilter: MagLinear,
	}
}

var (
	knownBlendFactors = map[BlendFactor]struct{}{
		BlendZero: {}, BlendOne: {}, BlendSourceAlpha: {}, BlendDestinationAlpha: {},
		BlendSourceColor: {}, BlendDestinationColor: {}, BlendOneMinusSourceAlpha: {},
		BlendOneMinusDestinationAlpha: {}, BlendOneMinusSourceColor: {},
		BlendOneMinusDestinationColor: {}, BlendSourceAlphaSaturate: {},
	}
	knownFillModes  = map[FillMode]struct{}{FillLine: {}, FillSolid: {}}
	knownCullModes  = map[CullMode]struct{}{CullBack: {}, CullFront: {}, CullDisabled: {}}
	knownWrapModes  = map[WrapMode]struct{}{WrapRepeat: {}, WrapClampToEdge: {}, WrapMirroredRepeat: {}, WrapClampToBorder: {}}
	knownMinFilters = map[MinFilter]struct{}{MinNearest: {}, MinLinearMipmapLinear: {}, MinLinearMipmapLinear2: {}}
	knownMagFilters = map[MagFilter]struct{}{MagNearest: {}, MagLinear: {}, MagLinear2: {}}
	knownAnisotropy = map[MaxAnisotropy]struct{}{
		AnisotropyOne: {}, AnisotropyTwo: {}, AnisotropyFour: {}, AnisotropyEight: {}, AnisotropySixteen: {},
	}
)
