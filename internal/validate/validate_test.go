package validate

import (
	"testing"

	"github.com/tbourn/go-recipe-backend/internal/apperr"
)

type createCuisineProbe struct {
	Name        string  `json:"name" validate:"required,min=1,max=191"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

func TestStruct_Valid(t *testing.T) {
	if err := Struct(&createCuisineProbe{Name: "Italian"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStruct_AggregatesAllViolations(t *testing.T) {
	long := make([]byte, 501)
	for i := range long {
		long[i] = 'x'
	}
	d := string(long)

	err := Struct(&createCuisineProbe{Name: "", Description: &d})
	ae, ok := apperr.From(err)
	if !ok || ae.Kind != apperr.KindBadRequest {
		t.Fatalf("expected BadRequest, got %v", err)
	}
	details, ok := ae.Details.([]FieldViolation)
	if !ok {
		t.Fatalf("details = %#v", ae.Details)
	}
	if len(details) != 2 {
		t.Fatalf("expected both violations reported, got %+v", details)
	}
	seen := map[string]bool{}
	for _, d := range details {
		seen[d.Field] = true
	}
	if !seen["name"] || !seen["description"] {
		t.Fatalf("violations should use json field names: %+v", details)
	}
}

type isoProbe struct {
	ISOCode string `json:"isoCode" validate:"required,isocode"`
}

func TestStruct_ISOCodeRule(t *testing.T) {
	if err := Struct(&isoProbe{ISOCode: "en"}); err != nil {
		t.Fatalf("en should be valid: %v", err)
	}
	if err := Struct(&isoProbe{ISOCode: "pt-BR"}); err != nil {
		t.Fatalf("pt-BR should be valid: %v", err)
	}
	if err := Struct(&isoProbe{ISOCode: "not a code"}); err == nil {
		t.Fatalf("expected violation for malformed code")
	}
}

type uriProbe struct {
	ImageURL *string `json:"imageUrl" validate:"omitempty,uri,max=191"`
}

func TestStruct_OptionalURI(t *testing.T) {
	if err := Struct(&uriProbe{}); err != nil {
		t.Fatalf("nil optional should pass: %v", err)
	}
	u := "https://cdn.example.com/dish.jpg"
	if err := Struct(&uriProbe{ImageURL: &u}); err != nil {
		t.Fatalf("valid uri rejected: %v", err)
	}
	bad := "://nope"
	if err := Struct(&uriProbe{ImageURL: &bad}); err == nil {
		t.Fatalf("expected violation for malformed uri")
	}
}

type delFlagProbe struct {
	DelFlag *bool `json:"delFlag" validate:"required"`
}

func TestStruct_SoftDeleteFlagRequired(t *testing.T) {
	if err := Struct(&delFlagProbe{}); err == nil {
		t.Fatalf("missing delFlag should fail")
	}
	f := false
	if err := Struct(&delFlagProbe{DelFlag: &f}); err != nil {
		t.Fatalf("explicit false must be accepted: %v", err)
	}
}

func TestNumericParam(t *testing.T) {
	tests := []struct {
		raw    string
		want   uint
		wantOK bool
	}{
		{"1", 1, true},
		{" 42 ", 42, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"1.5", 0, false},
	}
	for _, tc := range tests {
		got, err := NumericParam(tc.raw)
		if tc.wantOK {
			if err != nil || got != tc.want {
				t.Errorf("NumericParam(%q) = %d, %v", tc.raw, got, err)
			}
			continue
		}
		ae, ok := apperr.From(err)
		if !ok || ae.Kind != apperr.KindBadRequest {
			t.Errorf("NumericParam(%q) should be BadRequest, got %v", tc.raw, err)
		}
	}
}

func TestTrimPtr(t *testing.T) {
	var s *string
	TrimPtr(&s)
	if s != nil {
		t.Fatalf("nil must stay nil")
	}
	raw := "  padded  "
	s = &raw
	TrimPtr(&s)
	if *s != "padded" {
		t.Fatalf("got %q", *s)
	}
}
