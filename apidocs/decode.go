package apidocs

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	"github.com/fdmota/breeze.js/errors"
)

// Format is the encoding of an apidocs document
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the format from the file extension; anything that is
// not .yaml/.yml is read as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and parses the document at path.
// A missing file surfaces the os error; callers that need ErrInputMissing check first.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read apidocs file %s", path)
	}

	doc, err := Parse(data, FormatForPath(path))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return doc, nil
}

// Parse decodes a document in the given format
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "invalid apidocs JSON")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "invalid apidocs YAML")
		}
	default:
		return nil, errors.Newf("unknown apidocs format: %s", format)
	}

	return &doc, nil
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw struct {
		Classes    json.RawMessage `json:"classes"`
		ClassItems json.RawMessage `json:"classitems"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	classes, err := decodeJSONRecords[RawClass](raw.Classes)
	if err != nil {
		return errors.Wrap(err, "classes")
	}
	items, err := decodeJSONRecords[RawClassItem](raw.ClassItems)
	if err != nil {
		return errors.Wrap(err, "classitems")
	}

	d.Classes = classes
	d.ClassItems = items
	return nil
}

// decodeJSONRecords accepts an array of records or an object of records keyed by name
func decodeJSONRecords[T any](raw json.RawMessage) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	switch raw[0] {
	case '[':
		var records []T
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, err
		}
		return records, nil
	case '{':
		om := orderedmap.New[string, T]()
		if err := json.Unmarshal(raw, om); err != nil {
			return nil, err
		}
		records := make([]T, 0, om.Len())
		for pair := om.Oldest(); pair != nil; pair = pair.Next() {
			records = append(records, pair.Value)
		}
		return records, nil
	default:
		return nil, errors.Newf("expected an array or an object, got %.20s", raw)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Document) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return errors.Newf("line %d: apidocs document must be a mapping", value.Line)
	}

	for i := 0; i+1 < len(value.Content); i += 2 {
		key, node := value.Content[i], value.Content[i+1]

		var err error
		switch key.Value {
		case "classes":
			d.Classes, err = decodeYAMLRecords[RawClass](node)
		case "classitems":
			d.ClassItems, err = decodeYAMLRecords[RawClassItem](node)
		}
		if err != nil {
			return errors.Wrap(err, key.Value)
		}
	}
	return nil
}

// decodeYAMLRecords is the YAML counterpart of decodeJSONRecords.
// Mapping nodes keep their key order in Content.
func decodeYAMLRecords[T any](node *yaml.Node) ([]T, error) {
	switch node.Kind {
	case yaml.SequenceNode:
		var records []T
		if err := node.Decode(&records); err != nil {
			return nil, err
		}
		return records, nil
	case yaml.MappingNode:
		records := make([]T, 0, len(node.Content)/2)
		for i := 1; i < len(node.Content); i += 2 {
			var record T
			if err := node.Content[i].Decode(&record); err != nil {
				return nil, err
			}
			records = append(records, record)
		}
		return records, nil
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, nil
		}
	}
	return nil, errors.Newf("line %d: expected a sequence or a mapping", node.Line)
}
