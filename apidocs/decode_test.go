package apidocs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yuidocJSON = `{
  "project": {"name": "breeze"},
  "classes": {
    "Zeta": {"name": "Zeta", "module": "core", "description": "Last by name", "static": 1},
    "Alpha": {"name": "Alpha", "module": "core", "description": "First by name"},
    "MetadataStore": {"name": "MetadataStore", "module": "meta"}
  },
  "classitems": [
    {
      "name": "fetch",
      "module": "core",
      "class": "Alpha",
      "itemtype": "method",
      "static": true,
      "params": [
        {"name": "query", "type": "EntityQuery", "description": "the query", "optional": true, "optdefault": "null"},
        {"name": "rest", "type": "Object", "multiple": true}
      ],
      "return": {"type": "Promise", "description": "resolves later"}
    },
    {"name": "changed", "module": "core", "class": "Alpha", "itemType": "event"},
    {"name": "size", "module": "core", "class": "Zeta", "itemtype": "property", "type": "Number"}
  ]
}`

func TestParseJSON_ObjectKeyOrderPreserved(t *testing.T) {
	doc, err := Parse([]byte(yuidocJSON), FormatJSON)
	require.NoError(t, err)

	require.Len(t, doc.Classes, 3)
	assert.Equal(t, "Zeta", doc.Classes[0].Name)
	assert.Equal(t, "Alpha", doc.Classes[1].Name)
	assert.Equal(t, "MetadataStore", doc.Classes[2].Name)
	assert.True(t, bool(doc.Classes[0].Static))
	assert.False(t, bool(doc.Classes[1].Static))
	assert.Equal(t, "meta", doc.Classes[2].Module)
}

func TestParseJSON_ClassItems(t *testing.T) {
	doc, err := Parse([]byte(yuidocJSON), FormatJSON)
	require.NoError(t, err)
	require.Len(t, doc.ClassItems, 3)

	fetch := doc.ClassItems[0]
	assert.Equal(t, "method", fetch.ItemType)
	assert.Empty(t, fetch.ItemTypeCamel)
	assert.True(t, bool(fetch.Static))
	require.Len(t, fetch.Params, 2)
	assert.Equal(t, "EntityQuery", fetch.Params[0].Type)
	assert.True(t, bool(fetch.Params[0].Optional))
	assert.Equal(t, "null", fetch.Params[0].OptDefault)
	assert.True(t, bool(fetch.Params[1].Multiple))
	require.NotNil(t, fetch.Return)
	assert.Equal(t, "Promise", fetch.Return.Type)

	changed := doc.ClassItems[1]
	assert.Empty(t, changed.ItemType, "camel-case key must not fill the lowercase field")
	assert.Equal(t, "event", changed.ItemTypeCamel)

	assert.Nil(t, doc.ClassItems[2].Return)
}

func TestParseJSON_ArraysAndMissingSections(t *testing.T) {
	doc, err := Parse([]byte(`{"classes": [{"name": "A", "module": "m"}]}`), FormatJSON)
	require.NoError(t, err)
	assert.Len(t, doc.Classes, 1)
	assert.Empty(t, doc.ClassItems)

	doc, err = Parse([]byte(`{"classes": null, "classitems": {}}`), FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, doc.Classes)
	assert.Empty(t, doc.ClassItems)
}

func TestParseJSON_Invalid(t *testing.T) {
	_, err := Parse([]byte(`{"classes": "nope"}`), FormatJSON)
	assert.Error(t, err)

	_, err = Parse([]byte(`{`), FormatJSON)
	assert.Error(t, err)

	_, err = Parse([]byte(`{}`), Format("xml"))
	assert.Error(t, err)
}

func TestParseYAML(t *testing.T) {
	data := `
classes:
  Zeta:
    name: Zeta
    module: core
    static: 1
  Alpha:
    name: Alpha
    module: core
classitems:
  - name: size
    module: core
    class: Zeta
    itemtype: property
    type: Number
    static: "true"
  - name: changed
    module: core
    class: Alpha
    itemType: event
`
	doc, err := Parse([]byte(data), FormatYAML)
	require.NoError(t, err)

	require.Len(t, doc.Classes, 2)
	assert.Equal(t, "Zeta", doc.Classes[0].Name)
	assert.True(t, bool(doc.Classes[0].Static))
	assert.Equal(t, "Alpha", doc.Classes[1].Name)

	require.Len(t, doc.ClassItems, 2)
	assert.True(t, bool(doc.ClassItems[0].Static))
	assert.Equal(t, "event", doc.ClassItems[1].ItemTypeCamel)
}

func TestParseYAML_Invalid(t *testing.T) {
	_, err := Parse([]byte("- just\n- a list\n"), FormatYAML)
	assert.Error(t, err)

	_, err = Parse([]byte("classes: 42\n"), FormatYAML)
	assert.Error(t, err)
}

func TestFlag(t *testing.T) {
	tests := []struct {
		json string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`1`, true},
		{`0`, false},
		{`null`, false},
		{`"true"`, true},
		{`"false"`, false},
		{`"0"`, false},
		{`"1"`, true},
		{`"static"`, true},
		{`""`, false},
	}
	for _, tt := range tests {
		var f Flag
		require.NoError(t, f.UnmarshalJSON([]byte(tt.json)), tt.json)
		assert.Equal(t, tt.want, bool(f), tt.json)
	}

	var f Flag
	assert.Error(t, f.UnmarshalJSON([]byte(`[1]`)))
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatForPath("docs/data.json"))
	assert.Equal(t, FormatYAML, FormatForPath("docs/data.yaml"))
	assert.Equal(t, FormatYAML, FormatForPath("docs/DATA.YML"))
	assert.Equal(t, FormatJSON, FormatForPath("docs/data"))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(path, []byte(yuidocJSON), 0644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, doc.Classes, 3)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
