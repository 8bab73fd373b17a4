package main

import (
	"github.com/google/generative-ai-go/genai"
)

// toGeminiSchema converts a decoded JSON schema, as listed by the MCP server,
// into a Gemini function parameter schema. Unknown shapes become objects.
func toGeminiSchema(schema any) *genai.Schema {
	m, ok := schema.(map[string]any)
	if !ok {
		return &genai.Schema{Type: genai.TypeObject}
	}

	out := &genai.Schema{Type: schemaType(m["type"])}

	if desc, ok := m["description"].(string); ok {
		out.Description = desc
	}

	if required, ok := m["required"].([]any); ok {
		for _, r := range required {
			if s, ok := r.(string); ok {
				out.Required = append(out.Required, s)
			}
		}
	}

	if props, ok := m["properties"].(map[string]any); ok && len(props) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(props))
		for name, prop := range props {
			out.Properties[name] = toGeminiSchema(prop)
		}
	}

	if items, ok := m["items"]; ok {
		out.Items = toGeminiSchema(items)
	}

	return out
}

// schemaType maps a JSON schema "type", which may be a list such as
// ["null", "string"], to a Gemini type.
func schemaType(v any) genai.Type {
	switch t := v.(type) {
	case string:
		switch t {
		case "string":
			return genai.TypeString
		case "integer":
			return genai.TypeInteger
		case "number":
			return genai.TypeNumber
		case "boolean":
			return genai.TypeBoolean
		case "array":
			return genai.TypeArray
		}
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && s != "null" {
				return schemaType(s)
			}
		}
	}
	return genai.TypeObject
}
