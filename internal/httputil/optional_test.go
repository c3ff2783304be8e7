package httputil

import (
	"encoding/json"
	"testing"
)

type patchBody struct {
	Title      OptionalString `json:"title"`
	Summary    OptionalString `json:"summary"`
	OrderIndex OptionalInt    `json:"order_index"`
}

func TestOptionalString_TriState(t *testing.T) {
	var body patchBody
	if err := json.Unmarshal([]byte(`{"title":"Chapter 1","summary":null}`), &body); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	// Present with value
	if !body.Title.Present {
		t.Error("title should be present")
	}
	if body.Title.Value == nil || *body.Title.Value != "Chapter 1" {
		t.Errorf("title value wrong: %v", body.Title.Value)
	}

	// Present with explicit null
	if !body.Summary.Present {
		t.Error("summary should be present")
	}
	if body.Summary.Value != nil {
		t.Errorf("null summary should have nil value, got %v", *body.Summary.Value)
	}

	// Absent
	if body.OrderIndex.Present {
		t.Error("absent order_index should not be present")
	}
}

func TestOptionalString_EmptyString(t *testing.T) {
	var body patchBody
	if err := json.Unmarshal([]byte(`{"title":""}`), &body); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	// Empty string is a value, distinct from null
	if !body.Title.Present {
		t.Error("title should be present")
	}
	if body.Title.Value == nil || *body.Title.Value != "" {
		t.Error("empty string should be a non-nil value")
	}
}

func TestOptionalInt_TriState(t *testing.T) {
	cases := []struct {
		name    string
		json    string
		present bool
		value   *int
	}{
		{"with value", `{"order_index":3}`, true, func() *int { v := 3; return &v }()},
		{"explicit null", `{"order_index":null}`, true, nil},
		{"absent", `{}`, false, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var body patchBody
			if err := json.Unmarshal([]byte(tc.json), &body); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if body.OrderIndex.Present != tc.present {
				t.Errorf("present = %v, want %v", body.OrderIndex.Present, tc.present)
			}
			if (body.OrderIndex.Value == nil) != (tc.value == nil) {
				t.Fatalf("value = %v, want %v", body.OrderIndex.Value, tc.value)
			}
			if tc.value != nil && *body.OrderIndex.Value != *tc.value {
				t.Errorf("value = %d, want %d", *body.OrderIndex.Value, *tc.value)
			}
		})
	}
}

func TestOptionalInt_RejectsNonNumber(t *testing.T) {
	var body patchBody
	if err := json.Unmarshal([]byte(`{"order_index":"three"}`), &body); err == nil {
		t.Error("expected error for string order_index")
	}
}
