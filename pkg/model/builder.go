package model

import "github.com/goliatone/go-dropcap/internal/model"

// SequenceBuilder assembles field groups into one ordered sequence.
type SequenceBuilder = model.SequenceBuilder

// BuilderOption configures the sequence builder.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	labeler func(string) string
}

// WithLabeler overrides the default label generation function.
func WithLabeler(labeler func(string) string) BuilderOption {
	return func(opts *builderOptions) {
		opts.labeler = labeler
	}
}

// NewSequenceBuilder returns a builder backed by the internal implementation.
func NewSequenceBuilder(options ...BuilderOption) *SequenceBuilder {
	cfg := builderOptions{}
	for _, opt := range options {
		opt(&cfg)
	}

	builder := model.NewSequenceBuilder()
	if cfg.labeler != nil {
		builder.WithLabeler(cfg.labeler)
	}
	return builder
}
