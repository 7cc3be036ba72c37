package model_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dropcap/internal/model"
)

func TestSequenceBuilderKeepsGroupOrder(t *testing.T) {
	b := model.NewSequenceBuilder().
		Append("content", model.FieldSpec{Key: "letter"}, model.FieldSpec{Key: "content", Label: "Body"}).
		Append("spacing", model.FieldSpec{Key: "drop_cap_letter_margin"})

	fields, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if diff := cmp.Diff([]string{"letter", "content", "drop_cap_letter_margin"}, model.Keys(fields)); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"content", "spacing"}, b.Groups()); diff != "" {
		t.Fatalf("groups mismatch (-want +got):\n%s", diff)
	}
	if fields[0].Label != "Letter" || fields[1].Label != "Body" {
		t.Fatalf("unexpected labels %q, %q", fields[0].Label, fields[1].Label)
	}
}

func TestSequenceBuilderRejectsDuplicates(t *testing.T) {
	_, err := model.NewSequenceBuilder().
		Append("a", model.FieldSpec{Key: "x"}).
		Append("b", model.FieldSpec{Key: "x"}).
		Append("a", model.FieldSpec{Key: "y"}).
		Append("c", model.FieldSpec{}).
		Build()
	if err == nil {
		t.Fatalf("expected error")
	}
	for _, fragment := range []string{`field "x" in group "b"`, `group "a" appended twice`, `group "c" has a field without key`} {
		if !strings.Contains(err.Error(), fragment) {
			t.Fatalf("expected %q in %v", fragment, err)
		}
	}
}

func TestSequenceBuilderMustBuildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	model.NewSequenceBuilder().Append("a", model.FieldSpec{}).MustBuild()
}

func TestFieldByKey(t *testing.T) {
	fields := []model.FieldSpec{{Key: "a"}, {Key: "b", Default: "2"}}
	field, ok := model.FieldByKey(fields, "b")
	if !ok || field.Default != "2" {
		t.Fatalf("unexpected lookup result %+v, %v", field, ok)
	}
	if _, ok := model.FieldByKey(fields, "missing"); ok {
		t.Fatalf("expected miss")
	}
}

func TestLabelers(t *testing.T) {
	tests := []struct {
		labeler func(string) string
		key     string
		want    string
	}{
		{model.DefaultLabeler, "drop_cap_letter", "Drop Cap Letter"},
		{model.DefaultLabeler, "customCss", "Custom CSS"},
		{model.DefaultLabeler, "image_url", "Image URL"},
		{model.DefaultLabeler, "h2Title", "H 2 Title"},
		{model.PrefixLabeler("drop_cap_letter"), "drop_cap_letter_background_color", "Background Color"},
		{model.PrefixLabeler("drop_cap_letter_"), "drop_cap_letter_margin", "Margin"},
		{model.PrefixLabeler("drop_cap_letter"), "letter", "Letter"},
	}
	for _, tt := range tests {
		if got := tt.labeler(tt.key); got != tt.want {
			t.Fatalf("label(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestRangeContainsAndTransitionClone(t *testing.T) {
	r := model.Range{Min: 1, Max: 100, Step: 1}
	if !r.Contains(1) || !r.Contains(100) || r.Contains(0) || r.Contains(100.5) {
		t.Fatalf("unexpected range behaviour for %+v", r)
	}

	base := model.TransitionMap{"a": {Property: "color", Selector: ".x"}}
	clone := base.Clone()
	clone["b"] = model.TransitionProp{Property: "margin"}
	if _, ok := base["b"]; ok {
		t.Fatalf("clone shares storage with base")
	}
}
