package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/woozymasta/matl"
)

var (
	errCheckFailed = errors.New("document has validation errors")
	errNoShaders   = errors.New("no shader descriptors, set --shaders")
	errNoPresets   = errors.New("no preset document, set --presets")
)

// app is the state shared by all subcommands.
type app struct {
	cfg    Config
	format matl.DocumentFormat
	stdout io.Writer
	stderr io.Writer
	log    *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	var (
		configPath string
		flags      = DefaultConfig()
	)

	root := &cobra.Command{
		Use:           "matlfix",
		Short:         "Check and repair material documents against shader descriptors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			cfg.merge(flags, cmd.Flags().Changed)
			return a.configure(cfg)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "TOML config file")
	pf.StringVar(&flags.Shaders, "shaders", "", "shader descriptor document")
	pf.StringVar(&flags.Presets, "presets", "", "preset material document")
	pf.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "log level: debug, info, warn, error")
	pf.StringVar(&flags.Format, "format", "", "output format: json or yaml (default from file extension)")
	pf.StringVar(&flags.Indent, "indent", flags.Indent, "JSON indentation")

	root.AddCommand(a.checkCmd(), a.fixCmd(), a.presetCmd(), a.presetsCmd(), a.newCmd())
	return root
}

// configure applies cfg and installs the library logger.
func (a *app) configure(cfg Config) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	format, err := cfg.DocumentFormat()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.format = format
	a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	matl.SetLogger(a.log)
	return nil
}

// shaders loads the configured shader set, or nil when none is set.
func (a *app) shaders() (*matl.ShaderSet, error) {
	if a.cfg.Shaders == "" {
		return nil, nil
	}

	set, err := matl.DecodeShaderSetFile(a.cfg.Shaders, nil)
	if err != nil {
		return nil, fmt.Errorf("load shaders %s: %w", a.cfg.Shaders, err)
	}

	a.log.Debug("loaded shader descriptors", "path", a.cfg.Shaders, "count", set.Len())
	return set, nil
}

// presets loads the configured preset library.
func (a *app) presets() (*matl.PresetLibrary, error) {
	if a.cfg.Presets == "" {
		return nil, errNoPresets
	}

	lib := matl.NewPresetLibrary(a.cfg.Presets)
	if err := lib.Reload(); err != nil {
		return nil, err
	}

	return lib, nil
}

// write encodes m to path with the configured format and indentation.
func (a *app) write(path string, m *matl.Matl) error {
	if err := matl.EncodeFile(path, m, &matl.FormatOptions{Format: a.format, Indent: a.cfg.Indent}); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	a.log.Info("wrote material document", "path", path, "entries", len(m.Entries))
	return nil
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <matl>",
		Short: "Validate a material document",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := matl.DecodeFile(args[0], nil)
			if err != nil {
				return err
			}
			shaders, err := a.shaders()
			if err != nil {
				return err
			}

			issues := matl.ValidateDocument(m, &matl.ValidateOptions{Shaders: shaders})
			for _, it := range issues {
				fmt.Fprintln(a.stdout, it)
			}
			if matl.HasErrors(issues) {
				return errCheckFailed
			}

			return nil
		},
	}
}

func (a *app) fixCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "fix <matl>",
		Short: "Add missing and remove unused parameters of every material",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			shaders, err := a.shaders()
			if err != nil {
				return err
			}
			if shaders == nil {
				return errNoShaders
			}
			m, err := matl.DecodeFile(args[0], nil)
			if err != nil {
				return err
			}

			for i := range m.Entries {
				e := &m.Entries[i]
				sh, ok := shaders.Lookup(e.ShaderLabel)
				if !ok {
					a.log.Warn("skipping material with unknown shader", "material", e.MaterialLabel, "shader", e.ShaderLabel)
					continue
				}

				r := matl.Reconcile(e, sh)
				if r.Changed() {
					fmt.Fprintf(a.stdout, "%s: added [%s] removed [%s]\n", e.MaterialLabel, joinIDs(r.Missing), joinIDs(r.Unused))
				}
			}

			return a.write(outputPath(out, args[0]), m)
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default overwrites the input)")
	return cmd
}

func (a *app) presetCmd() *cobra.Command {
	var material, preset, out string

	cmd := &cobra.Command{
		Use:   "preset <matl>",
		Short: "Apply a preset to one material, keeping its label and textures",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			lib, err := a.presets()
			if err != nil {
				return err
			}
			m, err := matl.DecodeFile(args[0], nil)
			if err != nil {
				return err
			}

			i := m.Find(material)
			if i < 0 {
				return fmt.Errorf("%w: %q", matl.ErrEntryNotFound, material)
			}
			e, err := lib.Apply(&m.Entries[i], preset)
			if err != nil {
				return err
			}
			m.Entries[i] = e

			return a.write(outputPath(out, args[0]), m)
		},
	}

	f := cmd.Flags()
	f.StringVar(&material, "material", "", "material label to change")
	f.StringVar(&preset, "preset", "", "preset material label")
	f.StringVarP(&out, "output", "o", "", "output file (default overwrites the input)")
	_ = cmd.MarkFlagRequired("material")
	_ = cmd.MarkFlagRequired("preset")
	return cmd
}

func (a *app) presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the available presets",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			lib, err := a.presets()
			if err != nil {
				return err
			}

			for _, p := range lib.Presets() {
				fmt.Fprintf(a.stdout, "%s\t%s\n", p.MaterialLabel, p.ShaderLabel)
			}
			return nil
		},
	}
}

func (a *app) newCmd() *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "new <out>",
		Short: "Write a document with one default material",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			e := matl.DefaultMaterial()
			if label != "" {
				e.MaterialLabel = label
			}

			return a.write(args[0], matl.NewMatl(e))
		},
	}

	cmd.Flags().StringVar(&label, "label", matl.DefaultMaterialLabel, "material label")
	return cmd
}

func outputPath(out, in string) string {
	if out != "" {
		return out
	}

	return in
}

func joinIDs(ids []matl.ParamID) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}

	return strings.Join(names, " ")
}
