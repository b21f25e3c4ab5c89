package slugify

import (
	"testing"

	"estatehub_backend/pkg/errs"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "Studio Apartment", "studio-apartment"},
		{"punctuation runs", "Studio Apartment!!", "studio-apartment"},
		{"diacritics", "Çameli Köşk", "cameli-kosk"},
		{"mixed case and symbols", "2 BHK @ Gachibowli", "2-bhk-at-gachibowli"},
		{"leading and trailing junk", "--Hello World--", "hello-world"},
		{"numeric suffix is plain text", "Tower 2", "tower-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Make(tt.input)
			if err != nil {
				t.Fatalf("Make(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMakeEmpty(t *testing.T) {
	_, err := Make("!!!")
	if err == nil {
		t.Fatal("Make(\"!!!\") expected error, got nil")
	}
	if !errs.IsValidation(err) {
		t.Errorf("Make(\"!!!\") error = %v, want ValidationError", err)
	}
}

func TestMakeIdempotent(t *testing.T) {
	inputs := []string{
		"Studio Apartment",
		"Çameli Köşk",
		"2 BHK @ Gachibowli",
		"already-a-slug",
		"Tower 2",
	}
	for _, input := range inputs {
		once, err := Make(input)
		if err != nil {
			t.Fatalf("Make(%q) error = %v", input, err)
		}
		twice, err := Make(once)
		if err != nil {
			t.Fatalf("Make(%q) error = %v", once, err)
		}
		if once != twice {
			t.Errorf("Make not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}
