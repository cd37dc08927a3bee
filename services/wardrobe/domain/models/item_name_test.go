package models

import (
	"strings"
	"testing"
)

func TestNewItemName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ItemName
		wantErr bool
	}{
		{"plain", "Camel Coat", "Camel Coat", false},
		{"single character", "a", "a", false},
		{"punctuation", "Coat-No_5 (Archive)!", "Coat-No_5 (Archive)!", false},
		{"surrounding spaces are trimmed", "  Silk Scarf ", "Silk Scarf", false},
		{"255 characters", strings.Repeat("x", 255), ItemName(strings.Repeat("x", 255)), false},
		{"255 multibyte characters", strings.Repeat("é", 255), ItemName(strings.Repeat("é", 255)), false},
		{"empty", "", "", true},
		{"only whitespace", "   ", "", true},
		{"256 characters", strings.Repeat("x", 256), "", true},
		{"tab inside", "Silk\tScarf", "", true},
		{"newline inside", "Silk\nScarf", "", true},
		{"null byte", "Scarf\x00", "", true},
		{"DEL character", "Scarf\x7F", "", true},
		{"consecutive spaces", "Silk  Scarf", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewItemName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewItemName(%q) error = %v, wantErr = %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NewItemName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestItemName_Validate(t *testing.T) {
	// Names cast directly, as the store does, skip trimming.
	if err := ItemName(" Scarf").Validate(); err == nil {
		t.Error("leading space must be rejected")
	}
	if err := ItemName("Scarf").Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
