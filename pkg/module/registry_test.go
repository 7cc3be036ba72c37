package module

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dropcap/pkg/model"
)

type stubModule struct {
	descriptor model.ModuleDescriptor
	fields     []model.FieldSpec
}

func (s stubModule) Descriptor() model.ModuleDescriptor { return s.descriptor }
func (s stubModule) Fields() []model.FieldSpec          { return s.fields }
func (s stubModule) TransitionFields(base model.TransitionMap) model.TransitionMap {
	return base.Clone()
}
func (s stubModule) Render(context.Context, RenderRequest) (string, error) { return "", nil }

func stub(slug string) stubModule {
	return stubModule{
		descriptor: model.ModuleDescriptor{Name: "Stub " + slug, Slug: slug},
		fields:     []model.FieldSpec{{Key: "title"}},
	}
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	registry := NewRegistry()
	handle, err := registry.Register(stub("beta"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	registry.MustRegister(stub("alpha"))

	if handle.Slug() != "beta" || handle.Descriptor().Name != "Stub beta" {
		t.Fatalf("unexpected handle %+v", handle.Descriptor())
	}
	if diff := cmp.Diff([]string{"alpha", "beta"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has(" beta ") {
		t.Fatalf("expected Has to trim slug")
	}

	got, err := registry.Get("beta")
	if err != nil || got != handle {
		t.Fatalf("expected same handle, got %v, %v", got, err)
	}

	fields := handle.Fields()
	fields[0].Key = "mutated"
	if handle.Fields()[0].Key != "title" {
		t.Fatalf("handle fields are not copied")
	}
}

func TestRegistryDuplicateSlug(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(stub("dropcap_text"))

	_, err := registry.Register(stub("dropcap_text"))
	if !errors.Is(err, ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}
	var typed *Error
	if !errors.As(err, &typed) || typed.Kind != KindDuplicateSlug || typed.Slug != "dropcap_text" {
		t.Fatalf("expected typed duplicate error, got %#v", err)
	}
}

func TestRegistryInvalidAndUnknown(t *testing.T) {
	registry := NewRegistry()
	if _, err := registry.Register(nil); !errors.Is(err, ErrInvalidDescriptor) {
		t.Fatalf("expected invalid descriptor for nil module, got %v", err)
	}
	if _, err := registry.Register(stubModule{descriptor: model.ModuleDescriptor{Name: "x"}}); !errors.Is(err, ErrInvalidDescriptor) {
		t.Fatalf("expected invalid descriptor for empty slug, got %v", err)
	}
	if _, err := registry.Register(stubModule{descriptor: model.ModuleDescriptor{Slug: "x"}}); !errors.Is(err, ErrInvalidDescriptor) {
		t.Fatalf("expected invalid descriptor for empty name, got %v", err)
	}
	if _, err := registry.Get("missing"); !errors.Is(err, ErrUnknownModule) {
		t.Fatalf("expected unknown module, got %v", err)
	}
}
