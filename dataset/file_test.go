package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/nav/errors"
	"github.com/grovetools/nav/nav"
)

const sampleYAML = `
version: "1.0"
groups:
  - name: Morning
    items:
      - id: 1
        name: Item 1
        state: null
        handlers: []
      - id: 2
        name: Item 2
        state: view
        handlers: [ZAC]
  - items:
      - id: 3
        name: Item 3
        state: completed
        handlers: []
`

const sampleJSON = `{
  "groups": [
    {
      "items": [
        {"id": 1, "state": null, "handlers": []},
        {"id": 2, "state": "view", "handlers": ["ZAC"]}
      ]
    }
  ]
}`

const sampleTOML = `
version = "1.0"

[[groups]]
name = "Morning"

  [[groups.items]]
  id = 1
  handlers = []

  [[groups.items]]
  id = 2
  state = "view"
  handlers = ["ZAC"]
`

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0644))

	doc, err := Load(path)
	require.NoError(t, err)
	require.Len(t, doc.Groups, 2)
	assert.Equal(t, "Morning", doc.Groups[0].Name)
	assert.Equal(t, nav.StateUnset, doc.Groups[0].Items[0].State)
	assert.Equal(t, nav.StateViewed, doc.Groups[0].Items[1].State)
	assert.Equal(t, []string{"ZAC"}, doc.Groups[0].Items[1].Handlers)
	assert.Equal(t, nav.StateCompleted, doc.Groups[1].Items[0].State)
	assert.Equal(t, []string{"Morning", "Group 2"}, doc.GroupNames())
}

func TestDecodeJSON(t *testing.T) {
	doc, err := Decode([]byte(sampleJSON), FormatJSON)
	require.NoError(t, err)
	require.Len(t, doc.Groups, 1)
	assert.Equal(t, 2, doc.Groups[0].Items[1].ID)
}

func TestDecodeTOML(t *testing.T) {
	doc, err := Decode([]byte(sampleTOML), FormatTOML)
	require.NoError(t, err)
	require.Len(t, doc.Groups, 1)
	assert.Equal(t, nav.StateUnset, doc.Groups[0].Items[0].State)
	assert.Equal(t, nav.StateViewed, doc.Groups[0].Items[1].State)
}

func TestLoadRejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing handlers", `
groups:
  - items:
      - id: 1
        state: view
`},
		{"bad state", `
groups:
  - items:
      - id: 1
        state: finished
        handlers: []
`},
		{"string id", `
groups:
  - items:
      - id: one
        handlers: []
`},
		{"empty group", `
groups:
  - items: []
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.body), FormatYAML)
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeDatasetInvalid, errors.GetCode(err))
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeDatasetNotFound, errors.GetCode(err))
}

func TestUnsupportedExtension(t *testing.T) {
	_, err := DetectFormat("orders.csv")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.GetCode(err))
}

func TestToNavLiveReferences(t *testing.T) {
	doc, err := Decode([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)

	data := doc.ToNav()
	require.NoError(t, data.Validate())

	n, err := nav.New(data, "john")
	require.NoError(t, err)
	n.MarkCurrentItemComplete()

	// Navigator mutations land in the document, so Save persists them.
	assert.Equal(t, nav.StateCompleted, doc.Groups[0].Items[0].State)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	doc, err := Decode([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)

	for _, name := range []string{"out.yml", "out.json", "out.toml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(doc, path))

		loaded, err := Load(path)
		require.NoError(t, err, name)
		require.Len(t, loaded.Groups, 2, name)
		assert.Equal(t, doc.Groups[0].Items[1].Handlers, loaded.Groups[0].Items[1].Handlers, name)
	}
}

func TestFromNav(t *testing.T) {
	data := nav.Dataset{
		{&nav.Item{ID: 1, Handlers: []string{}}},
	}
	doc := FromNav(data)
	require.Len(t, doc.Groups, 1)
	assert.Equal(t, 1, doc.Groups[0].Items[0].ID)

	// FromNav copies; mutating the document must not touch the source.
	doc.Groups[0].Items[0].State = nav.StateCompleted
	assert.Equal(t, nav.StateUnset, data[0][0].State)
}
