package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDocument() map[string]interface{} {
	return map[string]interface{}{
		"version": "1.0",
		"groups": []interface{}{
			map[string]interface{}{
				"name": "Morning",
				"items": []interface{}{
					map[string]interface{}{
						"id":       1,
						"name":     "Item 1",
						"state":    nil,
						"handlers": []interface{}{},
					},
					map[string]interface{}{
						"id":       2,
						"state":    "view",
						"handlers": []interface{}{"ZAC"},
					},
				},
			},
		},
	}
}

func TestValidateAcceptsWellFormedDocument(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)
	assert.NoError(t, v.Validate(validDocument()))
}

func TestValidateRejections(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(doc map[string]interface{})
	}{
		{"missing groups", func(doc map[string]interface{}) {
			delete(doc, "groups")
		}},
		{"empty groups", func(doc map[string]interface{}) {
			doc["groups"] = []interface{}{}
		}},
		{"empty items", func(doc map[string]interface{}) {
			doc["groups"].([]interface{})[0].(map[string]interface{})["items"] = []interface{}{}
		}},
		{"bad state enum", func(doc map[string]interface{}) {
			item := doc["groups"].([]interface{})[0].(map[string]interface{})["items"].([]interface{})[0].(map[string]interface{})
			item["state"] = "done"
		}},
		{"non-integer id", func(doc map[string]interface{}) {
			item := doc["groups"].([]interface{})[0].(map[string]interface{})["items"].([]interface{})[0].(map[string]interface{})
			item["id"] = "one"
		}},
		{"missing handlers", func(doc map[string]interface{}) {
			item := doc["groups"].([]interface{})[0].(map[string]interface{})["items"].([]interface{})[0].(map[string]interface{})
			delete(item, "handlers")
		}},
		{"non-list handlers", func(doc map[string]interface{}) {
			item := doc["groups"].([]interface{})[0].(map[string]interface{})["items"].([]interface{})[0].(map[string]interface{})
			item["handlers"] = "ZAC"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.mutate(doc)
			assert.Error(t, v.Validate(doc))
		})
	}
}
