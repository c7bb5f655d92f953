package matl

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/jinzhu/copier"
)

// Matl is a material document: a versioned list of material entries.
type Matl struct {
	MajorVersion uint16  `json:"major_version" yaml:"major_version"` // Document major version
	MinorVersion uint16  `json:"minor_version" yaml:"minor_version"` // Document minor version
	Entries      []Entry `json:"entries" yaml:"entries"`             // Material entries
}

// Entry is one material definition.
//
// MaterialLabel is referenced by other model files and must survive every
// transform. Each group holds parameters of exactly one Family.
type Entry struct {
	MaterialLabel    string                  `json:"material_label" yaml:"material_label"`       // Material name
	ShaderLabel      string                  `json:"shader_label" yaml:"shader_label"`           // Shader program and render pass
	BlendStates      Params[BlendState]      `json:"blend_states" yaml:"blend_states"`           // BlendState parameters
	Floats           Params[float32]         `json:"floats" yaml:"floats"`                       // CustomFloat parameters
	Booleans         Params[bool]            `json:"booleans" yaml:"booleans"`                   // CustomBoolean parameters
	Vectors          Params[Vector4]         `json:"vectors" yaml:"vectors"`                     // CustomVector parameters
	RasterizerStates Params[RasterizerState] `json:"rasterizer_states" yaml:"rasterizer_states"` // RasterizerState parameters
	Samplers         Params[Sampler]         `json:"samplers" yaml:"samplers"`                   // Sampler parameters
	Textures         Params[string]          `json:"textures" yaml:"textures"`                   // Texture paths
}

// Param is a single parameter value.
type Param[T any] struct {
	ParamID ParamID `json:"param_id" yaml:"param_id"` // Parameter slot
	Data    T       `json:"data" yaml:"data"`         // Parameter value
}

// Params is an ordered parameter group.
type Params[T any] []Param[T]

// Len returns the number of parameters.
func (p Params[T]) Len() int { return len(p) }

// Index returns the position of id, or -1.
func (p Params[T]) Index(id ParamID) int {
	return slices.IndexFunc(p, func(v Param[T]) bool { return v.ParamID == id })
}

// Get returns the value stored for id.
func (p Params[T]) Get(id ParamID) (T, bool) {
	if i := p.Index(id); i >= 0 {
		return p[i].Data, true
	}

	var zero T
	return zero, false
}

// Set replaces the value of id or appends it.
func (p *Params[T]) Set(id ParamID, v T) {
	if i := p.Index(id); i >= 0 {
		(*p)[i].Data = v
		return
	}

	*p = append(*p, Param[T]{ParamID: id, Data: v})
}

// IDs returns the parameter ids in group order.
func (p Params[T]) IDs() []ParamID {
	out := make([]ParamID, len(p))
	for i := range p {
		out[i] = p[i].ParamID
	}

	return out
}

// MarshalJSON writes an empty group as [] rather than null.
func (p Params[T]) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("[]"), nil
	}

	return json.Marshal([]Param[T](p))
}

func (p Params[T]) idAt(i int) ParamID { return p[i].ParamID }

// swapRemove removes the first occurrence of id by swapping in the last
// element. Order is restored by the sort that follows every removal pass.
func (p *Params[T]) swapRemove(id ParamID) bool {
	i := p.Index(id)
	if i < 0 {
		return false
	}

	s := *p
	last := len(s) - 1
	s[i] = s[last]
	var zero Param[T]
	s[last] = zero
	*p = s[:last]
	return true
}

// sortByID sorts by ordinal. The sort is stable so repeated ids keep their
// relative order.
func (p *Params[T]) sortByID() {
	slices.SortStableFunc(*p, func(a, b Param[T]) int { return cmp.Compare(a.ParamID, b.ParamID) })
}

func (p Params[T]) isSorted() bool {
	return slices.IsSortedFunc(p, func(a, b Param[T]) int { return cmp.Compare(a.ParamID, b.ParamID) })
}

// paramGroup is the family independent view of a Params group.
type paramGroup interface {
	Len() int
	idAt(i int) ParamID
	swapRemove(id ParamID) bool
	sortByID()
	isSorted() bool
}

// group returns the parameter group that stores family f, or nil.
func (e *Entry) group(f Family) paramGroup {
	switch f {
	case FamilyBlendState:
		return &e.BlendStates
	case FamilyRasterizerState:
		return &e.RasterizerStates
	case FamilyFloat:
		return &e.Floats
	case FamilyBoolean:
		return &e.Booleans
	case FamilyVector:
		return &e.Vectors
	case FamilySampler:
		return &e.Samplers
	case FamilyTexture:
		return &e.Textures
	default:
		return nil
	}
}

// appendDefault appends id with the default value of its family.
func (e *Entry) appendDefault(id ParamID) bool {
	switch FamilyOf(id) {
	case FamilyBlendState:
		e.BlendStates = append(e.BlendStates, Param[BlendState]{ParamID: id, Data: DefaultBlendState()})
	case FamilyRasterizerState:
		e.RasterizerStates = append(e.RasterizerStates, Param[RasterizerState]{ParamID: id, Data: DefaultRasterizerState()})
	case FamilyFloat:
		e.Floats = append(e.Floats, Param[float32]{ParamID: id})
	case FamilyBoolean:
		e.Booleans = append(e.Booleans, Param[bool]{ParamID: id})
	case FamilyVector:
		e.Vectors = append(e.Vectors, Param[Vector4]{ParamID: id})
	case FamilySampler:
		e.Samplers = append(e.Samplers, Param[Sampler]{ParamID: id, Data: DefaultSampler()})
	case FamilyTexture:
		e.Textures = append(e.Textures, Param[string]{ParamID: id, Data: DefaultTexture(id)})
	default:
		return false
	}

	return true
}

// Group orders used when scanning an entry.
var (
	// storageOrder is the order groups appear in documents.
	storageOrder = []Family{
		FamilyBlendState, FamilyFloat, FamilyBoolean, FamilyVector,
		FamilyRasterizerState, FamilySampler, FamilyTexture,
	}
	// unusedScanOrder is the order UnusedParameters reports ids in.
	unusedScanOrder = []Family{
		FamilyBlendState, FamilyFloat, FamilyBoolean, FamilyVector,
		FamilyTexture, FamilySampler, FamilyRasterizerState,
	}
	// removeSearchOrder is the order RemoveParameters searches groups in.
	removeSearchOrder = storageOrder
)

// ParamIDs returns every parameter id in the entry, in document order.
func (e *Entry) ParamIDs() []ParamID {
	return e.collectIDs(storageOrder)
}

// Has reports whether any group of the entry contains id.
func (e *Entry) Has(id ParamID) bool {
	for _, f := range storageOrder {
		g := e.group(f)
		for i := 0; i < g.Len(); i++ {
			if g.idAt(i) == id {
				return true
			}
		}
	}

	return false
}

// Len returns the total number of parameters.
func (e *Entry) Len() int {
	n := 0
	for _, f := range storageOrder {
		n += e.group(f).Len()
	}

	return n
}

// collectIDs returns ids of all groups, visiting families in order.
func (e *Entry) collectIDs(order []Family) []ParamID {
	var out []ParamID
	for _, f := range order {
		g := e.group(f)
		for i := 0; i < g.Len(); i++ {
			out = append(out, g.idAt(i))
		}
	}

	return out
}

// sortGroups restores ascending ordinal order in every group.
func (e *Entry) sortGroups() {
	for _, f := range storageOrder {
		e.group(f).sortByID()
	}
}

// Clone returns a deep copy of the entry.
//
// Source and destination are both *Entry, which holds only strings,
// numbers, slices and pointers to strings. CopyWithOption fails only for
// invalid or mismatched arguments, so an error is a bug and Clone panics
// rather than return a partial copy.
func (e *Entry) Clone() Entry {
	var out Entry
	if err := copier.CopyWithOption(&out, e, copier.Option{DeepCopy: true}); err != nil {
		panic(fmt.Sprintf("matl: clone entry %q: %v", e.MaterialLabel, err))
	}

	return out
}

// Find returns the index of the entry labelled label, or -1.
func (m *Matl) Find(label string) int {
	return slices.IndexFunc(m.Entries, func(e Entry) bool { return e.MaterialLabel == label })
}

// NewMatl returns a document with the current format version.
func NewMatl(entries ...Entry) *Matl {
	return &Matl{MajorVersion: 1, MinorVersion: 6, Entries: entries}
}
