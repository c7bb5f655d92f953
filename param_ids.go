package matl

// Parameter ids are grouped in blocks by ordinal. Texture16+, Sampler16+ and
// CustomVector20+ were appended after the rasterizer states, so a family may
// span two ordinal ranges.

// Texture slots starting at 0.
const (
	Texture0 ParamID = 0x5C + iota
	Texture1
	Texture2
	Texture3
	Texture4
	Texture5
	Texture6
	Texture7
	Texture8
	Texture9
	Texture10
	Texture11
	Texture12
	Texture13
	Texture14
	Texture15
)

// Sampler slots starting at 0.
const (
	Sampler0 ParamID = 0x6C + iota
	Sampler1
	Sampler2
	Sampler3
	Sampler4
	Sampler5
	Sampler6
	Sampler7
	Sampler8
	Sampler9
	Sampler10
	Sampler11
	Sampler12
	Sampler13
	Sampler14
	Sampler15
)

// CustomVector slots starting at 0.
const (
	CustomVector0 ParamID = 0x98 + iota
	CustomVector1
	CustomVector2
	CustomVector3
	CustomVector4
	CustomVector5
	CustomVector6
	CustomVector7
	CustomVector8
	CustomVector9
	CustomVector10
	CustomVector11
	CustomVector12
	CustomVector13
	CustomVector14
	CustomVector15
	CustomVector16
	CustomVector17
	CustomVector18
	CustomVector19
)

// CustomFloat slots starting at 0.
const (
	CustomFloat0 ParamID = 0xC0 + iota
	CustomFloat1
	CustomFloat2
	CustomFloat3
	CustomFloat4
	CustomFloat5
	CustomFloat6
	CustomFloat7
	CustomFloat8
	CustomFloat9
	CustomFloat10
	CustomFloat11
	CustomFloat12
	CustomFloat13
	CustomFloat14
	CustomFloat15
	CustomFloat16
	CustomFloat17
	CustomFloat18
	CustomFloat19
)

// CustomBoolean slots starting at 0.
const (
	CustomBoolean0 ParamID = 0xE8 + iota
	CustomBoolean1
	CustomBoolean2
	CustomBoolean3
	CustomBoolean4
	CustomBoolean5
	CustomBoolean6
	CustomBoolean7
	CustomBoolean8
	CustomBoolean9
	CustomBoolean10
	CustomBoolean11
	CustomBoolean12
	CustomBoolean13
	CustomBoolean14
	CustomBoolean15
	CustomBoolean16
	CustomBoolean17
	CustomBoolean18
	CustomBoolean19
)

// BlendState slots starting at 0.
const (
	BlendState0 ParamID = 0x118 + iota
	BlendState1
	BlendState2
	BlendState3
	BlendState4
	BlendState5
	BlendState6
	BlendState7
	BlendState8
	BlendState9
	BlendState10
)

// RasterizerState slots starting at 0.
const (
	RasterizerState0 ParamID = 0x123 + iota
	RasterizerState1
	RasterizerState2
	RasterizerState3
	RasterizerState4
	RasterizerState5
	RasterizerState6
	RasterizerState7
	RasterizerState8
	RasterizerState9
	RasterizerState10
)

// Texture slots starting at 16.
const (
	Texture16 ParamID = 0x133 + iota
	Texture17
	Texture18
	Texture19
)

// Sampler slots starting at 16.
const (
	Sampler16 ParamID = 0x137 + iota
	Sampler17
	Sampler18
	Sampler19
)

// CustomVector slots starting at 20.
const (
	CustomVector20 ParamID = 0x13B + iota
	CustomVector21
	CustomVector22
	CustomVector23
	CustomVector24
	CustomVector25
	CustomVector26
	CustomVector27
	CustomVector28
	CustomVector29
	CustomVector30
	CustomVector31
	CustomVector32
	CustomVector33
	CustomVector34
	CustomVector35
	CustomVector36
	CustomVector37
	CustomVector38
	CustomVector39
	CustomVector40
	CustomVector41
	CustomVector42
	CustomVector43
	CustomVector44
	CustomVector45
	CustomVector46
	CustomVector47
	CustomVector48
	CustomVector49
	CustomVector50
	CustomVector51
	CustomVector52
	CustomVector53
	CustomVector54
	CustomVector55
	CustomVector56
	CustomVector57
	CustomVector58
	CustomVector59
	CustomVector60
	CustomVector61
	CustomVector62
	CustomVector63
)
