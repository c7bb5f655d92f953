package matl

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Default material template values.
const (
	DefaultMaterialLabel = "NEW_MATERIAL"
	DefaultShaderLabel   = "SFX_PBS_0100000008008269_opaque"
)

// ApplyPreset returns preset with the identity and textures of entry.
//
// The material label of entry is kept so model and animation files that
// reference it stay valid. Texture slots come from the preset; paths that
// entry already assigns to the same slot are kept, the rest get
// DefaultTexture. All other values are copied from preset.
func ApplyPreset(entry, preset *Entry) Entry {
	out := preset.Clone()
	out.MaterialLabel = entry.MaterialLabel

	out.Textures = make(Params[string], 0, len(preset.Textures))
	for _, t := range preset.Textures {
		path, ok := entry.Textures.Get(t.ParamID)
		if !ok {
			path = DefaultTexture(t.ParamID)
		}
		out.Textures = append(out.Textures, Param[string]{ParamID: t.ParamID, Data: path})
	}

	return out
}

// DefaultMaterial returns the template for a new material.
func DefaultMaterial() Entry {
	return Entry{
		MaterialLabel: DefaultMaterialLabel,
		ShaderLabel:   DefaultShaderLabel,
		BlendStates: Params[BlendState]{
			{ParamID: BlendState0, Data: DefaultBlendState()},
		},
		Floats: Params[float32]{
			{ParamID: CustomFloat8, Data: 0.4},
		},
		Booleans: Params[bool]{
			{ParamID: CustomBoolean1, Data: true},
			{ParamID: CustomBoolean3, Data: true},
			{ParamID: CustomBoolean4, Data: true},
		},
		Vectors: Params[Vector4]{
			// All zeros so the material can be transparent.
			{ParamID: CustomVector0, Data: Vec4(0, 0, 0, 0)},
			{ParamID: CustomVector13, Data: Vec4Scalar(1)},
			{ParamID: CustomVector14, Data: Vec4Scalar(1)},
			{ParamID: CustomVector8, Data: Vec4Scalar(1)},
		},
		RasterizerStates: Params[RasterizerState]{
			{ParamID: RasterizerState0, Data: DefaultRasterizerState()},
		},
		Samplers: Params[Sampler]{
			{ParamID: Sampler0, Data: DefaultSampler()},
			{ParamID: Sampler4, Data: DefaultSampler()},
			{ParamID: Sampler6, Data: DefaultSampler()},
			{ParamID: Sampler7, Data: DefaultSampler()},
		},
		Textures: Params[string]{
			{ParamID: Texture0, Data: DefaultTexture(Texture0)},
			{ParamID: Texture4, Data: DefaultTexture(Texture4)},
			{ParamID: Texture6, Data: DefaultTexture(Texture6)},
			{ParamID: Texture7, Data: DefaultTexture(Texture7)},
		},
	}
}

// LoadPresets reads the entries of a preset document.
func LoadPresets(path string) ([]Entry, error) {
	m, err := DecodeFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("load presets %s: %w", path, err)
	}

	return m.Entries, nil
}

// PresetLibrary holds the presets of one preset file and can follow
// changes to it. It is safe for concurrent use.
type PresetLibrary struct {
	path    string
	mu      sync.RWMutex
	presets []Entry
}

// NewPresetLibrary returns an empty library for path. Call Reload or Watch
// to load it.
func NewPresetLibrary(path string) *PresetLibrary {
	return &PresetLibrary{path: path}
}

// Path returns the preset file path.
func (l *PresetLibrary) Path() string { return l.path }

// Reload reads the preset file. On failure the library is emptied, so a
// broken file means no presets are available.
func (l *PresetLibrary) Reload() error {
	presets, err := LoadPresets(l.path)

	l.mu.Lock()
	l.presets = presets
	l.mu.Unlock()

	if err != nil {
		Logger().Warn("material presets unavailable", "path", l.path, "err", err)
		return err
	}

	Logger().Info("loaded material presets", "path", l.path, "count", len(presets))
	return nil
}

// Len returns the number of loaded presets.
func (l *PresetLibrary) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.presets)
}

// Presets returns copies of the loaded presets.
func (l *PresetLibrary) Presets() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Entry, len(l.presets))
	for i := range l.presets {
		out[i] = l.presets[i].Clone()
	}

	return out
}

// Find returns a copy of the preset with the given material label.
func (l *PresetLibrary) Find(label string) (Entry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for i := range l.presets {
		if l.presets[i].MaterialLabel == label {
			return l.presets[i].Clone(), true
		}
	}

	return Entry{}, false
}

// Apply applies the preset named label to entry, see ApplyPreset.
func (l *PresetLibrary) Apply(entry *Entry, label string) (Entry, error) {
	preset, ok := l.Find(label)
	if !ok {
		return Entry{}, fmt.Errorf("%w: preset %q", ErrEntryNotFound, label)
	}

	return ApplyPreset(entry, &preset), nil
}

// Watch reloads the library whenever the preset file is written, created,
// renamed or removed. The parent directory is watched so editors that
// replace the file are followed. Watch blocks until ctx is done.
func (l *PresetLibrary) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	target := filepath.Clean(l.path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return err
	}

	const reloadOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || ev.Op&reloadOps == 0 {
				continue
			}
			// Failures are logged by Reload and leave the library empty.
			_ = l.Reload()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			Logger().Warn("preset watcher error", "path", l.path, "err", err)
		}
	}
}
