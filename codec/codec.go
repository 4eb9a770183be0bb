package codec

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/henke443/fast-graph/core"
)

// Format names a document encoding.
type Format string

// Supported formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ErrUnknownFormat indicates a format name or file extension codec cannot handle.
var ErrUnknownFormat = errors.New("codec: unknown format")

// ParseFormat accepts "json", "yaml" or "yml", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatOf infers the format from a file name extension.
func FormatOf(path string) (Format, error) { return ParseFormat(filepath.Ext(path)) }

// EncodeJSON writes g as an indented JSON snapshot.
func EncodeJSON[N, E any](w io.Writer, g *core.Graph[N, E]) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g.Snapshot()); err != nil {
		return fmt.Errorf("codec: encode json: %w", err)
	}

	return nil
}

// DecodeJSON reads a JSON snapshot and restores the graph.
func DecodeJSON[N, E any](r io.Reader, opts ...core.Option) (*core.Graph[N, E], error) {
	var s core.Snapshot[N, E]
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("codec: decode json: %w", err)
	}

	return core.FromSnapshot(s, opts...)
}

// EncodeYAML writes g as a YAML snapshot.
func EncodeYAML[N, E any](w io.Writer, g *core.Graph[N, E]) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(g.Snapshot()); err != nil {
		return fmt.Errorf("codec: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("codec: encode yaml: %w", err)
	}

	return nil
}

// DecodeYAML reads a YAML snapshot and restores the graph.
func DecodeYAML[N, E any](r io.Reader, opts ...core.Option) (*core.Graph[N, E], error) {
	var s core.Snapshot[N, E]
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("codec: decode yaml: %w", err)
	}

	return core.FromSnapshot(s, opts...)
}

// Encode writes g in format f.
func Encode[N, E any](w io.Writer, f Format, g *core.Graph[N, E]) error {
	switch f {
	case JSON:
		return EncodeJSON(w, g)
	case YAML:
		return EncodeYAML(w, g)
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// Decode reads a graph in format f.
func Decode[N, E any](r io.Reader, f Format, opts ...core.Option) (*core.Graph[N, E], error) {
	switch f {
	case JSON:
		return DecodeJSON[N, E](r, opts...)
	case YAML:
		return DecodeYAML[N, E](r, opts...)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// Unmarshal decodes a document in format f into v. It is the format switch
// used by Decode, exposed for callers with their own document types.
func Unmarshal(data []byte, f Format, v any) error {
	var err error
	switch f {
	case JSON:
		err = json.Unmarshal(data, v)
	case YAML:
		err = yaml.Unmarshal(data, v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
	if err != nil {
		return fmt.Errorf("codec: decode %s: %w", f, err)
	}

	return nil
}
