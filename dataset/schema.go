package dataset

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// stateValue mirrors nav.State on the wire. Unset is encoded as either ""
// or null, so the schema is a bare enum with no string type constraint.
type stateValue string

func (stateValue) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Enum: []any{"", "view", "completed", nil},
	}
}

// GenerateSchema generates the JSON Schema for dataset documents. It reflects
// a local mirror of the document shape so reflection tags stay out of the
// runtime types. The committed schema/nav.embedded.schema.json is the
// canonical artifact; regenerate it with tools/schema-generator after
// changing the document shape.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
	}

	type schemaItem struct {
		ID       int                    `yaml:"id" jsonschema:"required,description=Stable item identifier"`
		Name     string                 `yaml:"name,omitempty" jsonschema:"description=Display name"`
		State    stateValue             `yaml:"state,omitempty" jsonschema:"description=Progress state (null or empty means unset)"`
		Handlers []string               `yaml:"handlers" jsonschema:"required,description=Handlers currently viewing the item"`
		Payload  map[string]interface{} `yaml:"payload,omitempty" jsonschema:"description=Opaque caller data carried with the item"`
	}
	type schemaGroup struct {
		Name  string       `yaml:"name,omitempty" jsonschema:"description=Group display name"`
		Items []schemaItem `yaml:"items" jsonschema:"required,minItems=1,description=Items in traversal order"`
	}
	type schemaDocument struct {
		Version string        `yaml:"version,omitempty" jsonschema:"description=Document format version"`
		Groups  []schemaGroup `yaml:"groups" jsonschema:"required,minItems=1,description=Groups in traversal order"`
	}

	schema := r.Reflect(&schemaDocument{})
	schema.Title = "Nav Dataset"
	schema.Description = "Grouped work items with per-item progress and handler claims."
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return json.MarshalIndent(schema, "", "  ")
}
