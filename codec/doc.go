// Package codec encodes and decodes graphs as JSON or YAML documents.
//
// Documents are core.Snapshot values: ids travel as opaque packed integers,
// so a decoded graph resolves every id the encoded one did and never reissues
// an id the original had already handed out. Node and edge data must be
// representable in the chosen format.
//
// JSON goes through github.com/goccy/go-json, YAML through gopkg.in/yaml.v3.
// The package reads and writes streams only; opening files is left to callers.
package codec
