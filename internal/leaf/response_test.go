package leaf

import "testing"

func TestNormalize_ValidJSON(t *testing.T) {
	got := Normalize(`{"a":1}`)
	if got != `{"a":1}` {
		t.Errorf("expected %q, got %q", `{"a":1}`, got)
	}
}

func TestNormalize_ReserializesWhitespace(t *testing.T) {
	got := Normalize("  {\n  \"a\" : 1\n}  ")
	if got != `{"a":1}` {
		t.Errorf("expected compact JSON, got %q", got)
	}
}

func TestNormalize_NotJSON(t *testing.T) {
	got := Normalize("not json")
	if got != "not json" {
		t.Errorf("expected raw text unchanged, got %q", got)
	}
}

func TestNormalize_EmptyString(t *testing.T) {
	got := Normalize("")
	if got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestNormalize_JSONArray(t *testing.T) {
	got := Normalize(`[1, 2, 3]`)
	if got != `[1,2,3]` {
		t.Errorf("expected %q, got %q", `[1,2,3]`, got)
	}
}

func TestNormalize_JSONScalar(t *testing.T) {
	got := Normalize(`"hello"`)
	if got != `"hello"` {
		t.Errorf("expected %q, got %q", `"hello"`, got)
	}
}

func TestNormalize_TruncatedJSON(t *testing.T) {
	got := Normalize(`{"a":`)
	if got != `{"a":` {
		t.Errorf("expected raw text unchanged for truncated JSON, got %q", got)
	}
}

func TestNormalize_HTMLErrorPage(t *testing.T) {
	raw := "<html><body>502 Bad Gateway</body></html>"
	got := Normalize(raw)
	if got != raw {
		t.Errorf("expected HTML unchanged, got %q", got)
	}
}
