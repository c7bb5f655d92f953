package matl

import (
	"fmt"
	"strconv"
	"strings"
)

// ParamID identifies a material parameter slot.
type ParamID uint64

// Family is the semantic group a ParamID belongs to.
type Family uint8

const (
	// FamilyNone is returned for ids outside every known family.
	FamilyNone Family = iota
	// FamilyBlendState covers BlendState0..BlendState10.
	FamilyBlendState
	// FamilyRasterizerState covers RasterizerState0..RasterizerState10.
	FamilyRasterizerState
	// FamilyFloat covers CustomFloat0..CustomFloat19.
	FamilyFloat
	// FamilyBoolean covers CustomBoolean0..CustomBoolean19.
	FamilyBoolean
	// FamilyVector covers CustomVector0..CustomVector63.
	FamilyVector
	// FamilySampler covers Sampler0..Sampler19.
	FamilySampler
	// FamilyTexture covers Texture0..Texture19.
	FamilyTexture

	familyCount
)

// familyInfo describes how a family is named in documents and ids.
type familyInfo struct {
	group  string // Document group key
	prefix string // ParamID name prefix
}

var families = [familyCount]familyInfo{
	FamilyNone:            {group: "none"},
	FamilyBlendState:      {group: "blend_states", prefix: "BlendState"},
	FamilyRasterizerState: {group: "rasterizer_states", prefix: "RasterizerState"},
	FamilyFloat:           {group: "floats", prefix: "CustomFloat"},
	FamilyBoolean:         {group: "booleans", prefix: "CustomBoolean"},
	FamilyVector:          {group: "vectors", prefix: "CustomVector"},
	FamilySampler:         {group: "samplers", prefix: "Sampler"},
	FamilyTexture:         {group: "textures", prefix: "Texture"},
}

// String returns the document group name of the family.
func (f Family) String() string {
	if f >= familyCount {
		return "Family(" + strconv.Itoa(int(f)) + ")"
	}

	return families[f].group
}

// paramRange is a contiguous run of ordinals within one family.
type paramRange struct {
	first  ParamID // First ordinal of the run
	last   ParamID // Last ordinal of the run, inclusive
	family Family  // Family of every id in the run
	slot   int     // Slot index of first
}

var paramRanges = []paramRange{
	{first: Texture0, last: Texture15, family: FamilyTexture, slot: 0},
	{first: Sampler0, last: Sampler15, family: FamilySampler, slot: 0},
	{first: CustomVector0, last: CustomVector19, family: FamilyVector, slot: 0},
	{first: CustomFloat0, last: CustomFloat19, family: FamilyFloat, slot: 0},
	{first: CustomBoolean0, last: CustomBoolean19, family: FamilyBoolean, slot: 0},
	{first: BlendState0, last: BlendState10, family: FamilyBlendState, slot: 0},
	{first: RasterizerState0, last: RasterizerState10, family: FamilyRasterizerState, slot: 0},
	{first: Texture16, last: Texture19, family: FamilyTexture, slot: 16},
	{first: Sampler16, last: Sampler19, family: FamilySampler, slot: 16},
	{first: CustomVector20, last: CustomVector63, family: FamilyVector, slot: 20},
}

// paramEntry is the classification of one ordinal.
type paramEntry struct {
	family Family
	slot   uint8
}

// maxParamID is the largest ordinal with a family.
const maxParamID = CustomVector63

var (
	paramTable  [maxParamID + 1]paramEntry
	paramByName map[string]ParamID
)

func init() {
	paramByName = make(map[string]ParamID, 256)
	for _, r := range paramRanges {
		for id := r.first; id <= r.last; id++ {
			slot := r.slot + int(id-r.first)
			paramTable[id] = paramEntry{family: r.family, slot: uint8(slot)}
			paramByName[strings.ToLower(families[r.family].prefix+strconv.Itoa(slot))] = id
		}
	}
}

// FamilyOf returns the family of id, or FamilyNone for unknown ids.
func FamilyOf(id ParamID) Family {
	if id > maxParamID {
		return FamilyNone
	}

	return paramTable[id].family
}

// Family returns the family of the id.
func (id ParamID) Family() Family { return FamilyOf(id) }

// Slot returns the index of the id within its family, or -1.
func (id ParamID) Slot() int {
	if FamilyOf(id) == FamilyNone {
		return -1
	}

	return int(paramTable[id].slot)
}

// IsBlendState reports whether id is a blend state parameter.
func (id ParamID) IsBlendState() bool { return FamilyOf(id) == FamilyBlendState }

// IsRasterizerState reports whether id is a rasterizer state parameter.
func (id ParamID) IsRasterizerState() bool { return FamilyOf(id) == FamilyRasterizerState }

// IsFloat reports whether id is a custom float parameter.
func (id ParamID) IsFloat() bool { return FamilyOf(id) == FamilyFloat }

// IsBoolean reports whether id is a custom boolean parameter.
func (id ParamID) IsBoolean() bool { return FamilyOf(id) == FamilyBoolean }

// IsVector reports whether id is a custom vector parameter.
func (id ParamID) IsVector() bool { return FamilyOf(id) == FamilyVector }

// IsSampler reports whether id is a sampler parameter.
func (id ParamID) IsSampler() bool { return FamilyOf(id) == FamilySampler }

// IsTexture reports whether id is a texture parameter.
func (id ParamID) IsTexture() bool { return FamilyOf(id) == FamilyTexture }

// String returns the canonical parameter name, e.g. "Texture0".
func (id ParamID) String() string {
	f := FamilyOf(id)
	if f == FamilyNone {
		return "ParamID(0x" + strconv.FormatUint(uint64(id), 16) + ")"
	}

	return families[f].prefix + strconv.Itoa(int(paramTable[id].slot))
}

// ParseParamID parses a parameter name. Matching is case-insensitive.
func ParseParamID(name string) (ParamID, error) {
	id, ok := paramByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownParamID, name)
	}

	return id, nil
}

// MarshalText implements encoding.TextMarshaler.
func (id ParamID) MarshalText() ([]byte, error) {
	if FamilyOf(id) == FamilyNone {
		return nil, fmt.Errorf("%w: 0x%x", ErrUnknownParamID, uint64(id))
	}

	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ParamID) UnmarshalText(text []byte) error {
	v, err := ParseParamID(string(text))
	if err != nil {
		return err
	}

	*id = v
	return nil
}

// AllParamIDs returns every known id of family f in ascending order.
// FamilyNone returns ids of all families.
func AllParamIDs(f Family) []ParamID {
	var out []ParamID
	for id := ParamID(0); id <= maxParamID; id++ {
		pf := paramTable[id].family
		if pf == FamilyNone {
			continue
		}
		if f == FamilyNone || pf == f {
			out = append(out, id)
		}
	}

	return out
}
