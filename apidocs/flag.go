package apidocs

import (
	"bytes"
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/fdmota/breeze.js/errors"
)

// Flag is a boolean that tolerates the encodings yuidoc emits.
// yuidoc writes "static": 1; hand-written fixtures use true or "true".
// Numbers are true when non-zero. Strings go through strconv.ParseBool and
// any other non-empty string is true.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler
func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = false
		return nil
	}

	switch data[0] {
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return errors.Wrap(err, "invalid flag")
		}
		*f = Flag(b)
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "invalid flag")
		}
		*f = parseFlagString(s)
	default:
		n, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return errors.Newf("invalid flag %s", data)
		}
		*f = n != 0
	}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (f *Flag) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.Newf("invalid flag at line %d: expected a scalar", value.Line)
	}

	switch value.Tag {
	case "!!null":
		*f = false
	case "!!bool":
		var b bool
		if err := value.Decode(&b); err != nil {
			return errors.Wrap(err, "invalid flag")
		}
		*f = Flag(b)
	case "!!int", "!!float":
		n, err := strconv.ParseFloat(value.Value, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid flag at line %d", value.Line)
		}
		*f = n != 0
	default:
		*f = parseFlagString(value.Value)
	}
	return nil
}

func parseFlagString(s string) Flag {
	if b, err := strconv.ParseBool(s); err == nil {
		return Flag(b)
	}
	return s != ""
}
