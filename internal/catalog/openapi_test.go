package catalog

import (
	"strings"
	"testing"
)

const sampleOpenAPI = `{
	"openapi": "3.0.1",
	"paths": {
		"/fields/api/fields": {
			"get": {
				"operationId": "list_fields",
				"summary": "List all fields.",
				"parameters": [
					{"name": "page", "in": "query", "schema": {"type": "integer", "minimum": 0}},
					{"name": "size", "in": "query", "schema": {"type": "integer", "minimum": 1, "maximum": 100}},
					{"name": "provider", "in": "query", "schema": {"type": "string"}},
					{"name": "X-Trace", "in": "header", "schema": {"type": "string"}}
				]
			}
		},
		"/fields/api/users/{leafUserId}/fields": {
			"post": {
				"operationId": "create_field",
				"description": "Create a field.",
				"parameters": [
					{"name": "leafUserId", "in": "path", "schema": {"type": "string", "format": "uuid"}}
				],
				"requestBody": {
					"required": true,
					"content": {"application/json": {"schema": {"type": "object"}}}
				}
			}
		},
		"/fields/api/users/{leafUserId}/fields/{fieldId}": {
			"get": {
				"summary": "Get one field.",
				"parameters": [
					{"name": "leafUserId", "in": "path", "required": true, "schema": {"type": "string", "format": "uuid"}},
					{"name": "fieldId", "in": "path", "required": true, "schema": {"type": "string", "format": "uuid"}}
				]
			}
		}
	}
}`

func TestDeriveFromOpenAPI_UsesOperationID(t *testing.T) {
	defs, err := DeriveFromOpenAPI([]byte(sampleOpenAPI))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byName := make(map[string]ToolDef)
	for _, d := range defs {
		byName[d.Name] = d
	}
	if _, ok := byName["list_fields"]; !ok {
		t.Error("expected list_fields derived from operationId")
	}
	if _, ok := byName["create_field"]; !ok {
		t.Error("expected create_field derived from operationId")
	}
}

func TestDeriveFromOpenAPI_SynthesizesNameWithoutOperationID(t *testing.T) {
	defs, err := DeriveFromOpenAPI([]byte(sampleOpenAPI))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, d := range defs {
		if d.Name == "get_fields_api_users_leafUserId_fields_fieldId" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected synthesized name for the operation without operationId, got %v", toolNames(defs))
	}
}

func TestDeriveFromOpenAPI_ParameterMapping(t *testing.T) {
	defs, err := DeriveFromOpenAPI([]byte(sampleOpenAPI))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var list ToolDef
	for _, d := range defs {
		if d.Name == "list_fields" {
			list = d
		}
	}
	if list.Method != "GET" || list.Path != "fields/api/fields" {
		t.Errorf("unexpected method/path: %s %s", list.Method, list.Path)
	}

	params := make(map[string]Param)
	for _, p := range list.Params {
		params[p.Name] = p
	}
	if _, ok := params["X-Trace"]; ok {
		t.Error("header parameters must not become tool params")
	}
	size, ok := params["size"]
	if !ok {
		t.Fatal("expected size param")
	}
	if size.Type != TypeNumber || size.In != InQuery {
		t.Errorf("unexpected size param shape: %+v", size)
	}
	if size.Min == nil || *size.Min != 1 || size.Max == nil || *size.Max != 100 {
		t.Errorf("expected size bounds [1, 100], got %+v", size)
	}
}

func TestDeriveFromOpenAPI_PathParamsForcedRequired(t *testing.T) {
	defs, err := DeriveFromOpenAPI([]byte(sampleOpenAPI))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, d := range defs {
		if d.Name != "create_field" {
			continue
		}
		for _, p := range d.Params {
			if p.In == InPath && !p.Required {
				t.Errorf("path param %s must be required", p.Name)
			}
		}
	}
}

func TestDeriveFromOpenAPI_RequestBodyBecomesBodyParam(t *testing.T) {
	defs, err := DeriveFromOpenAPI([]byte(sampleOpenAPI))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, d := range defs {
		if d.Name != "create_field" {
			continue
		}
		var body *Param
		for i := range d.Params {
			if d.Params[i].In == InBody {
				body = &d.Params[i]
			}
		}
		if body == nil {
			t.Fatal("expected a body param on create_field")
		}
		if body.Type != TypeObject || !body.Required {
			t.Errorf("unexpected body param shape: %+v", *body)
		}
		return
	}
	t.Fatal("create_field not derived")
}

func TestDeriveFromOpenAPI_FeedsCatalogConstruction(t *testing.T) {
	defs, err := DeriveFromOpenAPI([]byte(sampleOpenAPI))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := New(defs); err != nil {
		t.Errorf("derived catalogue failed validation: %v", err)
	}
}

func TestDeriveFromOpenAPI_Deterministic(t *testing.T) {
	first, err := DeriveFromOpenAPI([]byte(sampleOpenAPI))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := DeriveFromOpenAPI([]byte(sampleOpenAPI))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Join(toolNames(again), ",") != strings.Join(toolNames(first), ",") {
			t.Fatalf("derivation order changed between runs: %v vs %v", toolNames(first), toolNames(again))
		}
	}
}

func TestDeriveFromOpenAPI_DuplicateNameRejected(t *testing.T) {
	doc := `{
		"paths": {
			"/a": {"get": {"operationId": "same_name"}},
			"/b": {"get": {"operationId": "same_name"}}
		}
	}`
	_, err := DeriveFromOpenAPI([]byte(doc))
	if err == nil || !strings.Contains(err.Error(), "collides") {
		t.Errorf("expected collision error, got %v", err)
	}
}

func TestDeriveFromOpenAPI_NoPaths(t *testing.T) {
	_, err := DeriveFromOpenAPI([]byte(`{"openapi": "3.0.1", "paths": {}}`))
	if err == nil {
		t.Error("expected error for a document with no paths")
	}
}

func TestDeriveFromOpenAPI_MalformedDocument(t *testing.T) {
	_, err := DeriveFromOpenAPI([]byte(`{"paths": `))
	if err == nil {
		t.Error("expected parse error")
	}
}

func TestSynthesizeName(t *testing.T) {
	cases := []struct {
		method, path, want string
	}{
		{"get", "/fields/api/fields", "get_fields_api_fields"},
		{"post", "/fields/api/users/{leafUserId}/fields", "post_fields_api_users_leafUserId_fields"},
		{"get", "/weather/api/weather/forecast/{granularity}/{lat},{lon}", "get_weather_api_weather_forecast_granularity_lat_lon"},
		{"get", "/a//b", "get_a_b"},
	}
	for _, c := range cases {
		if got := synthesizeName(c.method, c.path); got != c.want {
			t.Errorf("synthesizeName(%s, %s) = %q, want %q", c.method, c.path, got, c.want)
		}
	}
}

func toolNames(defs []ToolDef) []string {
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name
	}
	return names
}
