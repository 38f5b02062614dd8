package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-question",
		Description: "A test question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string"},
				"marks":    map[string]any{"type": "integer", "minimum": 0},
				"type":     map[string]any{"type": "string", "enum": []any{"single_choice", "multiple_choice"}},
			},
			"required": []any{"question", "marks"},
		},
	}
}

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("bad test JSON: %v", err)
	}
	return v
}

func TestValidateJSON_Valid(t *testing.T) {
	err := ValidateJSON(testSchema(), decode(t, `{"question":"2+2?","marks":1,"type":"single_choice"}`))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateJSON_ValidWithoutOptional(t *testing.T) {
	err := ValidateJSON(testSchema(), decode(t, `{"question":"2+2?","marks":1}`))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateJSON_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing required", `{"question":"2+2?"}`},
		{"wrong type", `{"question":"2+2?","marks":"one"}`},
		{"bad enum", `{"question":"2+2?","marks":1,"type":"essay"}`},
		{"negative marks", `{"question":"2+2?","marks":-1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSON(testSchema(), decode(t, tt.raw))
			if err == nil {
				t.Fatal("expected error")
			}
			var invErr *ErrInvalidResponse
			if !errors.As(err, &invErr) {
				t.Fatalf("expected ErrInvalidResponse, got: %T", err)
			}
		})
	}
}

func TestValidateJSON_NilSchema(t *testing.T) {
	if err := ValidateJSON(nil, "anything"); err != nil {
		t.Fatalf("expected nil for nil schema, got: %v", err)
	}
}

func TestValidateJSON_SchemaCaching(t *testing.T) {
	schema := testSchema()
	schema.Name = "cache-test"

	for i := 0; i < 2; i++ {
		if err := ValidateJSON(schema, decode(t, `{"question":"q","marks":2}`)); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
	if _, ok := schemaCache.Load("cache-test"); !ok {
		t.Fatal("expected schema to be cached")
	}
}
