package main

import (
	"encoding/json"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func decodeSchema(t *testing.T, raw string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("decode schema: %v", err)
	}
	return v
}

func TestToGeminiSchema(t *testing.T) {
	schema := decodeSchema(t, `{
		"type": "object",
		"required": ["job_id"],
		"properties": {
			"job_id": {"type": "string", "description": "Job identifier"},
			"merge": {"type": ["null", "boolean"]},
			"ids": {"type": "array", "items": {"type": "string"}}
		}
	}`)

	got := toGeminiSchema(schema)
	if got.Type != genai.TypeObject {
		t.Fatalf("Type = %v, want object", got.Type)
	}
	if len(got.Required) != 1 || got.Required[0] != "job_id" {
		t.Errorf("Required = %v", got.Required)
	}
	if p := got.Properties["job_id"]; p == nil || p.Type != genai.TypeString || p.Description != "Job identifier" {
		t.Errorf("job_id = %+v", p)
	}
	if p := got.Properties["merge"]; p == nil || p.Type != genai.TypeBoolean {
		t.Errorf("merge = %+v, want boolean", p)
	}
	if p := got.Properties["ids"]; p == nil || p.Type != genai.TypeArray || p.Items == nil || p.Items.Type != genai.TypeString {
		t.Errorf("ids = %+v", p)
	}
}

func TestToGeminiSchemaFallsBackToObject(t *testing.T) {
	for _, in := range []any{nil, "nope", map[string]any{}} {
		if got := toGeminiSchema(in); got.Type != genai.TypeObject || got.Properties != nil {
			t.Errorf("toGeminiSchema(%v) = %+v", in, got)
		}
	}
}
