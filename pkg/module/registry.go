package module

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-dropcap/pkg/model"
)

// Handle is returned by Register. Descriptor and fields are captured once
// at registration and handed out as deep copies.
type Handle struct {
	module     Module
	descriptor model.ModuleDescriptor
	fields     []model.FieldSpec
}

// Slug returns the registered slug.
func (h *Handle) Slug() string { return h.descriptor.Slug }

// Module returns the registered implementation.
func (h *Handle) Module() Module { return h.module }

// Descriptor returns a copy of the descriptor captured at registration.
func (h *Handle) Descriptor() model.ModuleDescriptor { return h.descriptor.Clone() }

// Fields returns a copy of the field schema captured at registration.
func (h *Handle) Fields() []model.FieldSpec {
	return model.CloneFields(h.fields)
}

// Registry stores module types by slug, providing discovery and duplication
// safeguards.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]*Handle
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]*Handle)}
}

// Register adds a module by its descriptor slug.
func (r *Registry) Register(m Module) (*Handle, error) {
	if m == nil {
		return nil, &Error{Kind: KindInvalidDescriptor, Reason: "module is required"}
	}
	descriptor := m.Descriptor()
	slug := strings.TrimSpace(descriptor.Slug)
	if slug == "" {
		return nil, &Error{Kind: KindInvalidDescriptor, Reason: "slug is required"}
	}
	if strings.TrimSpace(descriptor.Name) == "" {
		return nil, &Error{Kind: KindInvalidDescriptor, Slug: slug, Reason: "name is required"}
	}
	descriptor.Slug = slug

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.modules[slug]; exists {
		return nil, &Error{Kind: KindDuplicateSlug, Slug: slug, Reason: "already registered"}
	}
	handle := &Handle{
		module:     m,
		descriptor: descriptor.Clone(),
		fields:     model.CloneFields(m.Fields()),
	}
	r.modules[slug] = handle
	return handle, nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(m Module) *Handle {
	handle, err := r.Register(m)
	if err != nil {
		panic(err)
	}
	return handle
}

// Get retrieves a module by slug.
func (r *Registry) Get(slug string) (*Handle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handle, ok := r.modules[strings.TrimSpace(slug)]
	if !ok {
		return nil, &Error{Kind: KindUnknownModule, Slug: slug}
	}
	return handle, nil
}

// List returns the registered slugs, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slugs := make([]string, 0, len(r.modules))
	for slug := range r.modules {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

// Has reports whether slug is registered.
func (r *Registry) Has(slug string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.modules[strings.TrimSpace(slug)]
	return ok
}
