package dataset

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/nav/errors"
	"github.com/grovetools/nav/schema"
)

// Format identifies a dataset file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// DetectFormat picks the encoding from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput,
		"unsupported dataset file extension (want .yml, .yaml, .json, or .toml)").
		WithDetail("path", path)
}

// Load reads a dataset file, validates the raw document against the embedded
// JSON Schema, and decodes it. Schema violations surface as DATASET_INVALID
// with the validator's findings attached.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.DatasetNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeDatasetInvalid, "failed to read dataset file").
			WithDetail("path", path)
	}

	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	return Decode(data, format)
}

// Decode parses raw bytes in the given format into a schema-validated
// document.
func Decode(data []byte, format Format) (*Document, error) {
	// Decode generically first: the schema check needs to see missing fields
	// and wrong shapes exactly as written, before struct decoding papers
	// over them with zero values.
	var raw interface{}
	if err := decode(data, format, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatasetInvalid, "failed to parse dataset file")
	}

	validator, err := schema.NewValidator()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to load dataset schema")
	}
	if err := validator.Validate(raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatasetInvalid, "dataset failed schema validation")
	}

	var doc Document
	if err := decode(data, format, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatasetInvalid, "failed to decode dataset file")
	}
	return &doc, nil
}

// Save writes the document back out in the encoding matching the path's
// extension.
func Save(doc *Document, path string) error {
	format, err := DetectFormat(path)
	if err != nil {
		return err
	}

	data, err := encode(doc, format)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to encode dataset").
			WithDetail("path", path)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to write dataset file").
			WithDetail("path", path)
	}
	return nil
}

func decode(data []byte, format Format, out interface{}) error {
	switch format {
	case FormatJSON:
		return json.Unmarshal(data, out)
	case FormatTOML:
		return toml.Unmarshal(data, out)
	default:
		return yaml.Unmarshal(data, out)
	}
}

func encode(doc *Document, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return yaml.Marshal(doc)
	}
}
