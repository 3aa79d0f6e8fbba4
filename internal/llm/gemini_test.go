package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"skill":    map[string]any{"type": "string"},
			"level":    map[string]any{"type": "integer"},
			"priority": map[string]any{"type": "string", "enum": []any{"High", "Medium", "Low"}},
			"scores": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer"},
			},
		},
		"required": []any{"skill", "level"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["skill"].Type != "STRING" {
		t.Fatalf("expected STRING for skill, got %s", schema.Properties["skill"].Type)
	}
	if schema.Properties["level"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for level, got %s", schema.Properties["level"].Type)
	}
	if len(schema.Properties["priority"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["priority"].Enum))
	}
	if schema.Properties["scores"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for scores, got %s", schema.Properties["scores"].Type)
	}
	if schema.Properties["scores"].Items.Type != "INTEGER" {
		t.Fatalf("expected INTEGER for scores items, got %s", schema.Properties["scores"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
