package domain

import (
	"errors"
	"testing"
)

func TestStringField(t *testing.T) {
	rec := &SpeakerRecord{
		Name:  "Ana Gray",
		Links: Links{Twitter: "https://twitter.com/anagray"},
		Slug:  "ana-gray",
		Meta: map[string]any{
			"pronouns":        "she/her",
			"favorite_number": 7,
		},
	}

	tests := []struct {
		field string
		def   string
		want  string
	}{
		{"name", "", "Ana Gray"},
		{"twitter", "", "https://twitter.com/anagray"},
		{"linkedin", "", ""},
		{"pronouns", "", "she/her"},
		{"shirt_size", "M", "M"},
	}
	for _, tt := range tests {
		got, err := rec.StringField(tt.field, tt.def)
		if err != nil {
			t.Errorf("StringField(%q): unexpected error: %v", tt.field, err)
			continue
		}
		if got != tt.want {
			t.Errorf("StringField(%q) = %q, want %q", tt.field, got, tt.want)
		}
	}
}

func TestStringFieldNonScalar(t *testing.T) {
	rec := &SpeakerRecord{
		Slug: "ana-gray",
		Meta: map[string]any{"favorite_number": 7},
	}

	_, err := rec.StringField("favorite_number", "")
	var terr *FieldTypeError
	if !errors.As(err, &terr) {
		t.Fatalf("Expected FieldTypeError, got %T: %v", err, err)
	}
	if terr.Record != "ana-gray" || terr.Field != "favorite_number" {
		t.Errorf("Expected record and field context, got %+v", terr)
	}
}
