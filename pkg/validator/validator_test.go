package validator_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgvalidator "github.com/wardrobecapital/wardrobe/pkg/validator"
)

type draftStruct struct {
	OwnerID      string `json:"ownerId"      validate:"required,uuid"`
	Name         string `json:"name"         validate:"required,min=3,max=10"`
	WearsPerYear int    `json:"wearsPerYear" validate:"gte=0"`
	ImageURL     string `json:"imageUrl"     validate:"omitempty,url"`
	MimeType     string `json:"mimeType"     validate:"omitempty,startswith=image/"`
}

const owner = "550e8400-e29b-41d4-a716-446655440000"

func TestValidate_valid(t *testing.T) {
	s := draftStruct{OwnerID: owner, Name: "Blazer", ImageURL: "https://example.com/b.jpg", MimeType: "image/png"}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		input draftStruct
		field string
		want  string
	}{
		{"required", draftStruct{}, "ownerId", "This field is required"},
		{"uuid", draftStruct{OwnerID: "not-a-uuid", Name: "Blazer"}, "ownerId", "Must be a valid UUID"},
		{"min", draftStruct{OwnerID: owner, Name: "ab"}, "name", "Minimum length is 3"},
		{"max", draftStruct{OwnerID: owner, Name: "12345678901"}, "name", "Maximum length is 10"},
		{"gte", draftStruct{OwnerID: owner, Name: "Blazer", WearsPerYear: -1}, "wearsPerYear", "Must be greater than or equal to 0"},
		{"url", draftStruct{OwnerID: owner, Name: "Blazer", ImageURL: "nope"}, "imageUrl", "Must be a valid URL"},
		{"startswith", draftStruct{OwnerID: owner, Name: "Blazer", MimeType: "text/plain"}, "mimeType", `Must start with "image/"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&tt.input))
			if m[tt.field] != tt.want {
				t.Errorf("%s message = %q, want %q (all: %v)", tt.field, m[tt.field], tt.want, m)
			}
		})
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

type priced struct {
	Price json.Number `json:"price" validate:"required,money"`
}

func TestValidate_money(t *testing.T) {
	tests := []struct {
		price string
		ok    bool
	}{
		{"0", true},
		{"1500", true},
		{"19.99", true},
		{"999999999999.99", true},
		{"-1", false},
		{"1000000000000", false},
		{"1e10000000", false},
		{"19.999", false},
		{"1e400000000000", false},
		{"abc", false},
	}
	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			err := pkgvalidator.Validate(&priced{Price: json.Number(tt.price)})
			if (err == nil) != tt.ok {
				t.Fatalf("Validate(%q) error = %v, want ok=%v", tt.price, err, tt.ok)
			}
			if !tt.ok {
				if m := pkgvalidator.FormatValidationErrors(err); m["price"] != "Must be a non-negative amount below 1000000000000 with at most 2 decimal places" {
					t.Errorf("unexpected message: %v", m)
				}
			}
		})
	}
}

// --- ValidateRequest ---

type itemReq struct {
	Name  string      `json:"name"  validate:"required,min=1,max=255"`
	Price json.Number `json:"price" validate:"required,money"`
}

func TestValidateRequest_valid(t *testing.T) {
	body := `{"name":"Classic Flap","price":8800.50}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Name != "Classic Flap" || req.Price.String() != "8800.50" {
		t.Errorf("unexpected request: %+v", req)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid JSON") {
		t.Errorf("expected 'Invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_negativePrice(t *testing.T) {
	body := `{"name":"Classic Flap","price":-3}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if ok {
		t.Fatal("expected ok=false for negative price")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "non-negative") {
		t.Errorf("expected money error in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_missingField(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"price":10}`))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if ok {
		t.Fatal("expected ok=false for missing name")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Validation failed") {
		t.Errorf("expected 'Validation failed' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_bodyTooLarge(t *testing.T) {
	body := `{"name":"` + strings.Repeat("x", 200) + `","price":1}`
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Body = http.MaxBytesReader(w, r.Body, 64)

	if _, ok := pkgvalidator.ValidateRequest[itemReq](w, r); ok {
		t.Fatal("expected ok=false for oversized body")
	}
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", w.Code)
	}
}
