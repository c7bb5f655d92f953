package matl

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// binaryMagic starts every binary ssbh file.
var binaryMagic = []byte("HBSS")

// Parse parses a material document from bytes.
func Parse(data []byte, opt *ParseOptions) (*Matl, error) {
	return parse(data, opt.normalize(""))
}

// Decode parses a material document from reader.
func Decode(r io.Reader, opt *ParseOptions) (*Matl, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return Parse(data, opt)
}

// DecodeFile parses a material document from a file. Without an explicit
// format, .yaml and .yml files are read as YAML and everything else as JSON.
func DecodeFile(path string, opt *ParseOptions) (*Matl, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return parse(data, opt.normalize(path))
}

// parse decodes a material document with normalized options.
func parse(data []byte, opt ParseOptions) (*Matl, error) {
	if bytes.HasPrefix(data, binaryMagic) {
		return nil, ErrBinaryMatl
	}

	m := &Matl{}
	if err := unmarshalDocument(data, opt, m); err != nil {
		return nil, err
	}

	return m, nil
}

// unmarshalDocument decodes data into v using the selected format.
func unmarshalDocument(data []byte, opt ParseOptions, v any) error {
	switch opt.Format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if opt.DisallowUnknownFields {
			dec.DisallowUnknownFields()
		}
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("%w: json: %w", ErrParse, err)
		}

	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(opt.DisallowUnknownFields)
		if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: yaml: %w", ErrParse, err)
		}

	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opt.Format)
	}

	return nil
}
