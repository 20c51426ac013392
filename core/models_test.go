package core

import (
	"errors"
	"testing"
	"time"
)

func TestNewID_Unique(t *testing.T) {
	seen := make(map[ID]struct{})
	for i := 0; i < 100; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("NewID() returned empty ID")
		}
		if _, ok := seen[id]; ok {
			t.Fatalf("NewID() produced duplicate ID %s", id)
		}
		seen[id] = struct{}{}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Mode
		wantErr bool
	}{
		{name: "linear", input: "linear", want: ModeLinear},
		{name: "mathematical", input: "mathematical", want: ModeMathematical},
		{name: "physics", input: "physics", want: ModePhysics},
		{name: "causal", input: "causal", want: ModeCausal},
		{name: "systems", input: "systems", want: ModeSystems},
		{name: "dialectical", input: "dialectical", want: ModeDialectical},
		{name: "uppercase", input: "PHYSICS", want: ModePhysics},
		{name: "mixed case with spaces", input: "  Causal ", want: ModeCausal},
		{name: "unknown", input: "quantum", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownMode) {
					t.Errorf("ParseMode(%q) error = %v, want ErrUnknownMode", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMode_String(t *testing.T) {
	if got := ModeDialectical.String(); got != "dialectical" {
		t.Errorf("ModeDialectical.String() = %q, want %q", got, "dialectical")
	}
	if got := Mode(99).String(); got != "mode(99)" {
		t.Errorf("Mode(99).String() = %q, want %q", got, "mode(99)")
	}
}

func TestSession_ContentText(t *testing.T) {
	session := &Session{
		Title: "Heat loss",
		Thoughts: []Thought{
			{Number: 1, Content: "Model the wall as a slab."},
			{Number: 2, Content: "Apply Fourier's law."},
		},
	}

	want := "Heat loss Model the wall as a slab. Apply Fourier's law."
	if got := session.ContentText(); got != want {
		t.Errorf("ContentText() = %q, want %q", got, want)
	}
}

func TestFingerprintSession_Deterministic(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	build := func() *Session {
		return &Session{
			Id:        "s1",
			Title:     "Title",
			Mode:      ModeLinear,
			Author:    "alice",
			Thoughts:  []Thought{{Number: 1, Content: "thought"}},
			Tags:      []string{"a", "b"},
			CreatedAt: createdAt,
		}
	}

	fp1 := FingerprintSession(build())
	fp2 := FingerprintSession(build())
	if fp1 != fp2 {
		t.Errorf("FingerprintSession() produced different values for equal sessions: %d vs %d", fp1, fp2)
	}
}

func TestFingerprintSession_Different(t *testing.T) {
	base := Session{
		Id:       "s1",
		Title:    "Title",
		Mode:     ModeLinear,
		Thoughts: []Thought{{Number: 1, Content: "thought"}},
	}

	tests := []struct {
		name   string
		mutate func(s *Session)
	}{
		{name: "title change", mutate: func(s *Session) { s.Title = "Other" }},
		{name: "mode change", mutate: func(s *Session) { s.Mode = ModeCausal }},
		{name: "author change", mutate: func(s *Session) { s.Author = "bob" }},
		{name: "thought change", mutate: func(s *Session) { s.Thoughts[0].Content = "revised" }},
		{name: "tag added", mutate: func(s *Session) { s.Tags = []string{"new"} }},
		{name: "empty taxonomy added", mutate: func(s *Session) { s.Taxonomy = &Taxonomy{} }},
		{name: "timestamp change", mutate: func(s *Session) { s.CreatedAt = s.CreatedAt.Add(time.Second) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := base
			original.Thoughts = []Thought{{Number: 1, Content: "thought"}}
			mutated := base
			mutated.Thoughts = []Thought{{Number: 1, Content: "thought"}}
			tt.mutate(&mutated)

			if FingerprintSession(&original) == FingerprintSession(&mutated) {
				t.Error("FingerprintSession() produced same value for different sessions")
			}
		})
	}
}
