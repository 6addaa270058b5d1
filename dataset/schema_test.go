package dataset

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	if err != nil {
		t.Fatal(err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("generated schema is not valid JSON: %v", err)
	}

	expectedKeys := []string{"$schema", "title", "properties", "required"}
	for _, key := range expectedKeys {
		if _, ok := parsed[key]; !ok {
			t.Errorf("expected key '%s' in schema", key)
		}
	}

	props, ok := parsed["properties"].(map[string]interface{})
	if !ok {
		t.Fatal("expected properties to be an object")
	}
	if _, ok := props["groups"]; !ok {
		t.Error("expected 'groups' property")
	}

	required, ok := parsed["required"].([]interface{})
	if !ok {
		t.Fatal("expected required to be a list")
	}
	found := false
	for _, r := range required {
		if r == "groups" {
			found = true
		}
	}
	if !found {
		t.Error("expected 'groups' to be required")
	}
}

// The regenerated schema must keep accepting every state encoding the loader
// supports, null included, or running go:generate would break existing files.
func TestGeneratedSchemaStateEncodings(t *testing.T) {
	data, err := GenerateSchema()
	if err != nil {
		t.Fatal(err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("nav.json", bytes.NewReader(data)); err != nil {
		t.Fatal(err)
	}
	compiled, err := compiler.Compile("nav.json")
	if err != nil {
		t.Fatalf("generated schema does not compile: %v", err)
	}

	validate := func(state string) error {
		raw := `{
			"version": "1.0",
			"groups": [
				{"items": [{"id": 1, "state": ` + state + `, "handlers": []}]}
			]
		}`
		var doc interface{}
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			t.Fatal(err)
		}
		return compiled.Validate(doc)
	}

	for _, state := range []string{`null`, `""`, `"view"`, `"completed"`} {
		if err := validate(state); err != nil {
			t.Errorf("generated schema rejects state=%s: %v", state, err)
		}
	}
	if err := validate(`"done"`); err == nil {
		t.Error("generated schema accepts unknown state \"done\"")
	}
}
