package module

import (
	"context"

	"github.com/goliatone/go-dropcap/pkg/css"
	"github.com/goliatone/go-dropcap/pkg/model"
	"github.com/goliatone/go-dropcap/pkg/style"
)

// Module is implemented by every content module type.
type Module interface {
	// Descriptor returns the static identity of the module type.
	Descriptor() model.ModuleDescriptor
	// Fields returns the ordered field schema. The result never depends on
	// render input.
	Fields() []model.FieldSpec
	// TransitionFields extends base with the module's own entries and
	// returns the merged map. base is not modified.
	TransitionFields(base model.TransitionMap) model.TransitionMap
	// Render produces the markup for one instance and writes its CSS into
	// req.Styles.
	Render(ctx context.Context, req RenderRequest) (string, error)
}

// RenderRequest carries everything one render call may read.
type RenderRequest struct {
	// Props are the resolved property values (defaults applied).
	Props style.Props
	// Attrs are the raw instance attributes as stored by the host.
	Attrs map[string]string
	// Content is passthrough text supplied by the host.
	Content string
	// Slug identifies the rendered instance.
	Slug string
	// OrderClass is the per-instance class, e.g. ".dropcap_text_0".
	OrderClass string
	// Styles receives generated rules. Selectors may still contain the
	// order class token.
	Styles css.Sink
}

// Schema bundles the descriptor and fields of m.
func Schema(m Module) model.ModuleSchema {
	return model.ModuleSchema{
		Descriptor: m.Descriptor(),
		Fields:     m.Fields(),
	}
}
