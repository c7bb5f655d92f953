package matl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Encode writes a material document to writer.
func Encode(w io.Writer, m *Matl, opt *FormatOptions) error {
	return marshalDocument(w, m, opt.normalize(""))
}

// EncodeFile writes a material document to a file, picking the format from
// the extension unless one is set.
func EncodeFile(path string, m *Matl, opt *FormatOptions) error {
	var buf bytes.Buffer
	if err := marshalDocument(&buf, m, opt.normalize(path)); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0o600)
}

// Format renders a material document to bytes.
func Format(m *Matl, opt *FormatOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, m, opt); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// marshalDocument encodes v to w using the selected format.
func marshalDocument(w io.Writer, v any, opt FormatOptions) error {
	switch opt.Format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", opt.Indent)
		return enc.Encode(v)

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()

	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opt.Format)
	}
}
